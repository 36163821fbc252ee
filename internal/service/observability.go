package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/alexanderramin/pathfinder/internal/tracker"
)

// Use-case names reported to observers.
const (
	UseCaseGetRoadmap     = "get-roadmap"
	UseCaseLoadProgress   = "load-progress"
	UseCaseSaveProgress   = "save-progress"
	UseCaseExportProgress = "export-progress"
	UseCaseImportProgress = "import-progress"
)

// UseCaseEvent is the telemetry emitted once per service use case.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
}

// Degraded reports whether the use case failed in a way the tracker
// recovers from (unreadable or unwritable progress).
func (e UseCaseEvent) Degraded() bool {
	return errors.Is(e.Err, tracker.ErrStorageUnavailable) || errors.Is(e.Err, tracker.ErrMalformedSnapshot)
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// LogFormat selects the slog handler used for use-case logs.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs each event as one slog record on w. Degraded
// progress failures log at WARN, other failures at ERROR.
func NewLogUseCaseObserver(w io.Writer, format LogFormat) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if format == LogFormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	}
	return &logUseCaseObserver{logger: slog.New(handler)}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]slog.Attr, 0, 4+len(event.Fields))
	attrs = append(attrs,
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success),
	)

	// Sorted so records for the same use case read the same way every time.
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}

	level := slog.LevelInfo
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		level = slog.LevelError
		if event.Degraded() {
			level = slog.LevelWarn
		}
	}
	o.logger.LogAttrs(ctx, level, "use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// startUseCase begins timing a use case. The returned func emits the event
// and reads fields at call time, so callers may keep adding to the map.
func startUseCase(ctx context.Context, obs UseCaseObserver, name string, fields map[string]any) func(err error) {
	startedAt := time.Now().UTC()
	return func(err error) {
		obs.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}
}
