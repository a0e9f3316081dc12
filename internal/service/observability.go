package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// VelocityEvent records one velocity evaluation. Velocity and Clamped are
// zero when Err is set.
type VelocityEvent struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Err       error

	HyperfocusTotal float64
	BookPages       uint8
	Load            float64

	Velocity float64
	Clamped  bool // raw product fell outside [0, 1]
}

func (e VelocityEvent) Success() bool {
	return e.Err == nil
}

// VelocityObserver receives one event per evaluation.
type VelocityObserver interface {
	ObserveVelocity(ctx context.Context, event VelocityEvent)
}

type NoopVelocityObserver struct{}

func (NoopVelocityObserver) ObserveVelocity(context.Context, VelocityEvent) {}

type logVelocityObserver struct {
	logger *slog.Logger
}

// NewLogVelocityObserver writes events as slog text records to w.
// A nil writer yields a no-op observer.
func NewLogVelocityObserver(w io.Writer) VelocityObserver {
	if w == nil {
		return NoopVelocityObserver{}
	}
	return &logVelocityObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logVelocityObserver) ObserveVelocity(ctx context.Context, e VelocityEvent) {
	attrs := []slog.Attr{
		slog.String("run_id", e.RunID),
		slog.Int64("duration_us", e.Duration.Microseconds()),
		slog.Float64("hyperfocus_total", e.HyperfocusTotal),
		slog.Int("book_pages", int(e.BookPages)),
		slog.Float64("load", e.Load),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
		o.logger.LogAttrs(ctx, slog.LevelError, "evaluate_velocity", attrs...)
		return
	}
	attrs = append(attrs,
		slog.Float64("velocity", e.Velocity),
		slog.Bool("clamped", e.Clamped),
	)
	o.logger.LogAttrs(ctx, slog.LevelInfo, "evaluate_velocity", attrs...)
}

func velocityObserverOrNoop(observers []VelocityObserver) VelocityObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopVelocityObserver{}
}
