package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/velocity/internal/domain"
	"github.com/alexanderramin/velocity/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []VelocityEvent
}

func (r *recordingObserver) ObserveVelocity(_ context.Context, event VelocityEvent) {
	r.events = append(r.events, event)
}

func TestVelocityService_Evaluate(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewVelocityService(obs)

	b, err := svc.Evaluate(context.Background(), testutil.BalancedWeek())
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.InDelta(t, 0.6817125, b.Velocity, 1e-12)

	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.True(t, ev.Success())
	assert.NoError(t, ev.Err)
	assert.Equal(t, 20.0, ev.HyperfocusTotal)
	assert.Equal(t, uint8(125), ev.BookPages)
	assert.Equal(t, 0.5, ev.Load)
	assert.Equal(t, b.Velocity, ev.Velocity)
	assert.False(t, ev.Clamped)
	assert.False(t, ev.StartedAt.IsZero())

	_, err = uuid.Parse(ev.RunID)
	assert.NoError(t, err)
}

func TestVelocityService_Evaluate_UniqueRunIDs(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewVelocityService(obs)

	for i := 0; i < 3; i++ {
		_, err := svc.Evaluate(context.Background(), domain.WeekRecord{})
		require.NoError(t, err)
	}

	require.Len(t, obs.events, 3)
	seen := map[string]bool{}
	for _, ev := range obs.events {
		seen[ev.RunID] = true
	}
	assert.Len(t, seen, 3)
}

func TestVelocityService_Evaluate_CancelledContext(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewVelocityService(obs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b, err := svc.Evaluate(ctx, testutil.BalancedWeek())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, b)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success())
	assert.ErrorIs(t, obs.events[0].Err, context.Canceled)
	assert.Zero(t, obs.events[0].Velocity)
}

func TestVelocityService_Evaluate_ReportsClamping(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewVelocityService(obs)

	b, err := svc.Evaluate(context.Background(), testutil.NewTestWeek(
		testutil.WithHyperfocus(0, 20),
		testutil.WithPages(255),
		testutil.WithHabitDays(7, 7),
		testutil.WithLoad(1),
	))
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.Velocity)
	assert.True(t, obs.events[0].Clamped)
}

func TestVelocityService_Evaluate_OverworkedWeek(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewVelocityService(obs)

	b, err := svc.Evaluate(context.Background(), testutil.OverworkedWeek())
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.Velocity)
	assert.Equal(t, 40.0, obs.events[0].HyperfocusTotal)
	assert.False(t, obs.events[0].Clamped)
}

func TestNewVelocityService_NoObserver(t *testing.T) {
	svc := NewVelocityService()
	b, err := svc.Evaluate(context.Background(), domain.WeekRecord{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.Velocity)
}
