package cli

import (
	"bufio"
	"io"

	"github.com/alexanderramin/velocity/internal/domain"
)

const (
	promptHyperfocusWeekday = "Hyperfocus hours (weekday):"
	promptHyperfocusWeekend = "Hyperfocus hours (weekend):"
	promptBookPages         = "Book pages read:"
	promptSideSkillDays     = "Side skill days met (0–7):"
	promptConstraintDays    = "Constraint days met (0–7):"
	promptLoad              = "Work/school load (0–1):"
)

// collectWeekRecordIO prompts for the six fields in order. Unparsable or
// missing answers become 0; collection itself never fails.
func collectWeekRecordIO(r io.Reader, out io.Writer) domain.WeekRecord {
	in := bufio.NewReader(r)
	return domain.WeekRecord{
		HyperfocusHoursWeekday: promptUint8IO(in, out, promptHyperfocusWeekday),
		HyperfocusHoursWeekend: promptUint8IO(in, out, promptHyperfocusWeekend),
		BookPages:              promptUint8IO(in, out, promptBookPages),
		SideSkillsDays:         promptUint8IO(in, out, promptSideSkillDays),
		ConstraintsDays:        promptUint8IO(in, out, promptConstraintDays),
		Load:                   promptLoadIO(in, out, promptLoad),
	}
}
