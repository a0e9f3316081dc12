package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexanderramin/velocity/internal/domain"
	"github.com/alexanderramin/velocity/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectWeekRecordIO_ReadsFieldsInOrder(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("10\n4\n125\n6\n3\n0.7\n")

	got := collectWeekRecordIO(in, &out)

	assert.Equal(t, domain.WeekRecord{
		HyperfocusHoursWeekday: 10,
		HyperfocusHoursWeekend: 4,
		BookPages:              125,
		SideSkillsDays:         6,
		ConstraintsDays:        3,
		Load:                   0.7,
	}, got)

	assert.Equal(t, strings.Join([]string{
		promptHyperfocusWeekday,
		promptHyperfocusWeekend,
		promptBookPages,
		promptSideSkillDays,
		promptConstraintDays,
		promptLoad,
	}, "\n")+"\n", out.String())
}

func TestCollectWeekRecordIO_InvalidFieldsDefaultToZero(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("abc\n4\n\n999\n-1\nlots\n")

	got := collectWeekRecordIO(in, &out)

	assert.Equal(t, domain.WeekRecord{HyperfocusHoursWeekend: 4}, got)
}

func TestCollectWeekRecordIO_ShortInputDefaultsRemainingToZero(t *testing.T) {
	var out bytes.Buffer
	got := collectWeekRecordIO(strings.NewReader("3\n2"), &out)

	assert.Equal(t, domain.WeekRecord{HyperfocusHoursWeekday: 3, HyperfocusHoursWeekend: 2}, got)
	assert.Equal(t, 6, strings.Count(out.String(), "\n"), "every prompt is still printed")
}

func TestWeekFormValues_Record(t *testing.T) {
	v := weekFormValues{
		HyperfocusWeekday: "12",
		HyperfocusWeekend: " 3 ",
		BookPages:         "",
		SideSkillDays:     "x",
		ConstraintDays:    "7",
		Load:              "0.9",
	}

	assert.Equal(t, domain.WeekRecord{
		HyperfocusHoursWeekday: 12,
		HyperfocusHoursWeekend: 3,
		ConstraintsDays:        7,
		Load:                   0.9,
	}, v.record())
}

func TestWeekForm_Builds(t *testing.T) {
	var v weekFormValues
	assert.NotNil(t, weekForm(&v))
	assert.NotNil(t, velocityHuhTheme())
}

func TestCollectWeekRecordIO_CRLFInput(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("10\r\n10\r\n125\r\n7\r\n7\r\n0.5\r\n")

	got := collectWeekRecordIO(in, &out)

	assert.Equal(t, testutil.BalancedWeek(), got)
}

func TestCollectWeekRecordIO_LoneCRDoesNotSplitLines(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("4\r5\n6\n")

	got := collectWeekRecordIO(in, &out)

	assert.Equal(t, domain.WeekRecord{HyperfocusHoursWeekend: 6}, got)
}
