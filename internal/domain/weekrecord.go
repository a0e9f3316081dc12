package domain

// WeekRecord holds one week's self-reported observations. It is a value type;
// every derived quantity is computed from it without mutation.
type WeekRecord struct {
	HyperfocusHoursWeekday uint8
	HyperfocusHoursWeekend uint8
	BookPages              uint8
	SideSkillsDays         uint8
	ConstraintsDays        uint8
	Load                   float64 // fraction of the week under external load, not clamped here
}

// HyperfocusTotal returns weekday plus weekend hyperfocus hours.
// The sum is taken in float64 so two large uint8 values never wrap.
func (r WeekRecord) HyperfocusTotal() float64 {
	return float64(r.HyperfocusHoursWeekday) + float64(r.HyperfocusHoursWeekend)
}
