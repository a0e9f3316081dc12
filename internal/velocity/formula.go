package velocity

import (
	"math"

	"github.com/alexanderramin/velocity/internal/domain"
)

// Calibration constants. These are fixed and not user-configurable.
const (
	HyperfocusCapHours = 20.0
	OptimalPages       = 125

	WeekdayQuality = 0.55
	WeekendQuality = 0.675

	daysPerWeek          = 7.0
	sideSkillBonus       = 0.06
	constraintBonus      = 0.05
	burnoutSteepness     = 4.0
	loadPivot            = 0.5
	loadLowSlope         = 0.1
	loadHighScale        = 1.6
	loadHighExponent     = 2.4
	loadHighGain         = 10.0
	baseVelocityMultiple = 2.0
)

// Breakdown exposes every factor that went into a velocity score.
type Breakdown struct {
	UHF           float64 // hyperfocus utilization
	Quality       float64
	Reading       float64
	Burnout       float64
	Momentum      float64
	LoadConvexity float64
	Raw           float64 // product before clamping
	Velocity      float64 // Raw clamped to [0, 1]
}

// HyperfocusUtilization returns sqrt(min(total, cap) / cap).
func HyperfocusUtilization(r domain.WeekRecord) float64 {
	capped := math.Min(r.HyperfocusTotal(), HyperfocusCapHours)
	return math.Sqrt(capped / HyperfocusCapHours)
}

// Quality blends the weekday and weekend quality weights by the hours spent
// in each. With no hyperfocus hours at all it falls back to the midpoint.
func Quality(r domain.WeekRecord, weekdayQ, weekendQ float64) float64 {
	total := r.HyperfocusTotal()
	if total == 0 {
		return (weekdayQ + weekendQ) / 2
	}
	weighted := float64(weekdayQ*float64(r.HyperfocusHoursWeekday)) + float64(weekendQ*float64(r.HyperfocusHoursWeekend))
	return weighted / total
}

// ReadingRatio maps pages/optimal through x/(1+x): 0.5 at the optimum,
// approaching 1 without a hard cap.
func ReadingRatio(r domain.WeekRecord, optimal uint8) float64 {
	if optimal == 0 {
		return 0
	}
	x := float64(r.BookPages) / float64(optimal)
	return x / (1 + x)
}

// BurnoutPenalty is 1 up to the hyperfocus cap and decays as exp(-4o²)
// with the overwork fraction o beyond it.
func BurnoutPenalty(r domain.WeekRecord) float64 {
	o := math.Max(0, r.HyperfocusTotal()/HyperfocusCapHours-1)
	return math.Exp(-burnoutSteepness * o * o)
}

// Momentum compounds the side-skill and constraint bonuses.
func Momentum(r domain.WeekRecord) float64 {
	side := 1 + float64(sideSkillBonus*(float64(r.SideSkillsDays)/daysPerWeek))
	constraints := 1 + float64(constraintBonus*(float64(r.ConstraintsDays)/daysPerWeek))
	return side * constraints
}

// LoadConvexity adjusts for external load. Load is clamped to [0, 1]; at or
// below the pivot it applies a mild linear discount, above it a convex bonus.
func LoadConvexity(r domain.WeekRecord) float64 {
	l := clamp(r.Load, 0, 1)
	if l > loadPivot {
		// Keep the scale*pow*gain order; folding into 16 changes the last bit.
		return 1 + float64(float64(loadHighScale*math.Pow(l-loadPivot, loadHighExponent))*loadHighGain)
	}
	return 1 - float64(loadLowSlope*(loadPivot-l))
}

// Calculate returns the weekly velocity for r, always within [0, 1].
func Calculate(r domain.WeekRecord) float64 {
	return Evaluate(r).Velocity
}

// Evaluate computes every factor and the clamped velocity.
func Evaluate(r domain.WeekRecord) Breakdown {
	b := Breakdown{
		UHF:           HyperfocusUtilization(r),
		Quality:       Quality(r, WeekdayQuality, WeekendQuality),
		Reading:       ReadingRatio(r, OptimalPages),
		Burnout:       BurnoutPenalty(r),
		Momentum:      Momentum(r),
		LoadConvexity: LoadConvexity(r),
	}
	base := baseVelocityMultiple * b.Quality * b.UHF * b.Reading
	b.Raw = base * b.Burnout * b.Momentum * b.LoadConvexity
	b.Velocity = clamp(b.Raw, 0, 1)
	return b
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
