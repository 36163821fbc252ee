package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/pathfinder/internal/db"
	"github.com/alexanderramin/pathfinder/internal/domain"
	"github.com/alexanderramin/pathfinder/internal/repository"
	"github.com/alexanderramin/pathfinder/internal/tracker"
	"github.com/google/uuid"
)

// BundleFormat identifies the export wire format.
const BundleFormat = "pathfinder.progress-bundle"

var (
	// ErrInvalidBundle is returned when a bundle fails validation before import.
	ErrInvalidBundle = errors.New("invalid progress bundle")
	// ErrImportFailed is returned when writing a validated bundle fails and
	// the transaction was rolled back.
	ErrImportFailed = errors.New("progress import failed")
)

// Bundle is a portable copy of every stored roadmap snapshot.
type Bundle struct {
	Format     string        `json:"format"`
	ID         string        `json:"id"`
	ExportedAt time.Time     `json:"exported_at"`
	Snapshots  []BundleEntry `json:"snapshots"`

	// Skipped lists roadmap ids whose stored value could not be decoded.
	Skipped []string `json:"skipped,omitempty"`
}

type BundleEntry struct {
	RoadmapID string                 `json:"roadmap_id"`
	State     domain.CompletionState `json:"state"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// WriteBundle encodes b as indented JSON.
func WriteBundle(w io.Writer, b *Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}
	return nil
}

// ReadBundle decodes a bundle. Non-boolean state values fail decoding.
func ReadBundle(r io.Reader) (*Bundle, error) {
	var b Bundle
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	return &b, nil
}

// ValidateBundle checks a bundle before anything is written.
func ValidateBundle(b *Bundle) []error {
	var errs []error
	if b == nil {
		return []error{errors.New("bundle is empty")}
	}
	if b.Format != BundleFormat {
		errs = append(errs, fmt.Errorf("format: expected %q, got %q", BundleFormat, b.Format))
	}
	seen := make(map[string]bool, len(b.Snapshots))
	for i, e := range b.Snapshots {
		switch {
		case strings.TrimSpace(e.RoadmapID) == "":
			errs = append(errs, fmt.Errorf("snapshots[%d]: roadmap_id is required", i))
		case seen[e.RoadmapID]:
			errs = append(errs, fmt.Errorf("snapshots[%d]: duplicate roadmap_id %q", i, e.RoadmapID))
		}
		seen[e.RoadmapID] = true
		if e.State == nil {
			errs = append(errs, fmt.Errorf("snapshots[%d]: state must be an object", i))
		}
	}
	return errs
}

type transferService struct {
	kv       repository.KVStore
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTransferService(kv repository.KVStore, uow db.UnitOfWork, observers ...UseCaseObserver) TransferService {
	return &transferService{
		kv:       kv,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *transferService) Export(ctx context.Context) (bundle *Bundle, err error) {
	fields := map[string]any{}
	done := startUseCase(ctx, s.observer, UseCaseExportProgress, fields)
	defer func() { done(err) }()

	entries, err := s.kv.ListByPrefix(ctx, tracker.KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}

	bundle = &Bundle{
		Format:     BundleFormat,
		ID:         uuid.New().String(),
		ExportedAt: time.Now().UTC(),
		Snapshots:  make([]BundleEntry, 0, len(entries)),
	}
	for _, e := range entries {
		id := strings.TrimPrefix(e.Key, tracker.KeyPrefix)
		snap := tracker.DecodeSnapshot(e.Value)
		if snap.Status != tracker.SnapshotOK {
			bundle.Skipped = append(bundle.Skipped, id)
			continue
		}
		bundle.Snapshots = append(bundle.Snapshots, BundleEntry{
			RoadmapID: id,
			State:     snap.State,
			UpdatedAt: e.UpdatedAt,
		})
	}

	fields["bundle_id"] = bundle.ID
	fields["snapshot_count"] = len(bundle.Snapshots)
	fields["skipped_count"] = len(bundle.Skipped)
	return bundle, nil
}

// Import writes every snapshot in the bundle in one transaction, replacing
// the stored state of each named roadmap. Nothing is written when validation
// fails or any write fails.
func (s *transferService) Import(ctx context.Context, bundle *Bundle) (n int, err error) {
	fields := map[string]any{}
	done := startUseCase(ctx, s.observer, UseCaseImportProgress, fields)
	defer func() { done(err) }()

	if errs := ValidateBundle(bundle); len(errs) > 0 {
		return 0, fmt.Errorf("%w: %w", ErrInvalidBundle, errors.Join(errs...))
	}
	fields["bundle_id"] = bundle.ID

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		store := repository.NewSQLiteKVStore(tx)
		for _, e := range bundle.Snapshots {
			// Import failures never carry the degraded-storage sentinel.
			if err := tracker.Save(ctx, store, e.RoadmapID, e.State); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrImportFailed, e.RoadmapID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	fields["snapshot_count"] = len(bundle.Snapshots)
	return len(bundle.Snapshots), nil
}
