package service

import (
	"context"

	"github.com/alexanderramin/velocity/internal/domain"
	"github.com/alexanderramin/velocity/internal/velocity"
)

type VelocityService interface {
	Evaluate(ctx context.Context, record domain.WeekRecord) (*velocity.Breakdown, error)
}
