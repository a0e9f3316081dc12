package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/velocity/internal/domain"
	"github.com/alexanderramin/velocity/internal/velocity"
	"github.com/google/uuid"
)

type velocityService struct {
	observer VelocityObserver
}

func NewVelocityService(observers ...VelocityObserver) VelocityService {
	return &velocityService{
		observer: velocityObserverOrNoop(observers),
	}
}

func (s *velocityService) Evaluate(ctx context.Context, record domain.WeekRecord) (result *velocity.Breakdown, err error) {
	event := VelocityEvent{
		RunID:           uuid.New().String(),
		StartedAt:       time.Now().UTC(),
		HyperfocusTotal: record.HyperfocusTotal(),
		BookPages:       record.BookPages,
		Load:            record.Load,
	}
	defer func() {
		event.Duration = time.Since(event.StartedAt)
		event.Err = err
		s.observer.ObserveVelocity(ctx, event)
	}()

	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluating velocity: %w", err)
	}

	b := velocity.Evaluate(record)
	event.Velocity = b.Velocity
	event.Clamped = b.Raw != b.Velocity
	return &b, nil
}
