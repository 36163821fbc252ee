package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/pathfinder/internal/cli/formatter"
	"github.com/alexanderramin/pathfinder/internal/service"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Export or import saved checklist progress",
	}

	cmd.AddCommand(
		newProgressExportCmd(app),
		newProgressImportCmd(app),
	)

	return cmd
}

func newProgressExportCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all saved progress as a JSON bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			bundle, err := app.Transfer.Export(cmd.Context())
			if err != nil {
				return err
			}

			defer warnSkipped(cmd, bundle)

			if outPath == "" {
				return service.WriteBundle(cmd.OutOrStdout(), bundle)
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outPath, err)
			}
			if err := service.WriteBundle(f, bundle); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", outPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d roadmap(s) to %s\n", len(bundle.Snapshots), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to FILE instead of stdout")

	return cmd
}

func warnSkipped(cmd *cobra.Command, bundle *service.Bundle) {
	for _, id := range bundle.Skipped {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warn(fmt.Sprintf("skipped %s: stored progress is unreadable", id)))
	}
}

func newProgressImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Restore progress from an exported bundle",
		Long:  "Restore progress from an exported bundle. Each roadmap in the bundle replaces the saved progress for that roadmap; all entries are written together or not at all.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			bundle, err := service.ReadBundle(f)
			if err != nil {
				return err
			}
			n, err := app.Transfer.Import(cmd.Context(), bundle)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d roadmap(s) from bundle %s\n", n, bundle.ID)
			return nil
		},
	}
}
