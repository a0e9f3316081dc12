package testutil

import "github.com/alexanderramin/velocity/internal/domain"

// Week options
type WeekOption func(*domain.WeekRecord)

func WithHyperfocus(weekday, weekend uint8) WeekOption {
	return func(r *domain.WeekRecord) {
		r.HyperfocusHoursWeekday = weekday
		r.HyperfocusHoursWeekend = weekend
	}
}

func WithPages(pages uint8) WeekOption {
	return func(r *domain.WeekRecord) {
		r.BookPages = pages
	}
}

func WithHabitDays(sideSkills, constraints uint8) WeekOption {
	return func(r *domain.WeekRecord) {
		r.SideSkillsDays = sideSkills
		r.ConstraintsDays = constraints
	}
}

func WithLoad(load float64) WeekOption {
	return func(r *domain.WeekRecord) {
		r.Load = load
	}
}

// NewTestWeek returns an all-zero week with opts applied.
func NewTestWeek(opts ...WeekOption) domain.WeekRecord {
	var r domain.WeekRecord
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// BalancedWeek is 10+10 hyperfocus hours, the optimal 125 pages, full habit
// days and load at the pivot. It scores 0.682.
func BalancedWeek() domain.WeekRecord {
	return NewTestWeek(
		WithHyperfocus(10, 10),
		WithPages(125),
		WithHabitDays(7, 7),
		WithLoad(0.5),
	)
}

// OverworkedWeek doubles the hyperfocus cap with no reading at full load.
func OverworkedWeek() domain.WeekRecord {
	return NewTestWeek(WithHyperfocus(40, 0), WithLoad(1))
}
