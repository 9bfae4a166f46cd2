package domain_test

import (
	"testing"
	"time"

	"github.com/engiops/timesheet_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekOfYear(t *testing.T) {
	tests := []struct {
		name       string
		weekStart  time.Time
		wantYear   int
		wantWeek   int
	}{
		{
			name:      "mid-january monday",
			weekStart: date(2024, time.January, 15), // 14 days since Jan 1 -> ceil(15/7) = 3
			wantYear:  2024,
			wantWeek:  3,
		},
		{
			name:      "january first",
			weekStart: date(2024, time.January, 1),
			wantYear:  2024,
			wantWeek:  1,
		},
		{
			name:      "seventh day still week one",
			weekStart: date(2024, time.January, 7),
			wantYear:  2024,
			wantWeek:  1,
		},
		{
			name:      "eighth day rolls to week two",
			weekStart: date(2024, time.January, 8),
			wantYear:  2024,
			wantWeek:  2,
		},
		{
			name:      "year boundary week keeps start year",
			weekStart: date(2024, time.December, 30),
			wantYear:  2024,
			wantWeek:  53,
		},
		{
			name:      "time of day is ignored",
			weekStart: time.Date(2024, time.January, 15, 17, 45, 3, 0, time.UTC),
			wantYear:  2024,
			wantWeek:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, week := domain.WeekOfYear(tt.weekStart)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantWeek, week)
		})
	}
}

func TestTimesheet_Recalculate(t *testing.T) {
	ts := domain.Timesheet{
		WeekStartDate: date(2024, time.January, 15),
		WeekEndDate:   date(2024, time.January, 21),
		Entries: []domain.TimeEntry{
			{NormalHours: decimal.NewFromInt(8), OvertimeHours: decimal.Zero},
			{NormalHours: decimal.NewFromInt(4), OvertimeHours: decimal.NewFromInt(2)},
		},
	}

	ts.Recalculate()

	assert.True(t, ts.TotalNormalHours.Equal(decimal.NewFromInt(12)), "normal hours: %s", ts.TotalNormalHours)
	assert.True(t, ts.TotalOvertimeHours.Equal(decimal.NewFromInt(2)), "overtime hours: %s", ts.TotalOvertimeHours)
	assert.True(t, ts.TotalHours.Equal(decimal.NewFromInt(14)), "total hours: %s", ts.TotalHours)
	assert.Equal(t, 2024, ts.Year)
	assert.Equal(t, 3, ts.WeekNumber)
}

func TestTimesheet_Recalculate_Idempotent(t *testing.T) {
	ts := domain.Timesheet{
		WeekStartDate: date(2024, time.March, 4),
		Entries: []domain.TimeEntry{
			{NormalHours: decimal.NewFromFloat(7.5), OvertimeHours: decimal.NewFromFloat(1.25)},
			{NormalHours: decimal.NewFromFloat(8), OvertimeHours: decimal.Zero},
			{}, // zero-valued entry counts as zero hours
		},
	}

	ts.Recalculate()
	firstNormal, firstOvertime, firstTotal := ts.TotalNormalHours, ts.TotalOvertimeHours, ts.TotalHours

	ts.Recalculate()

	assert.True(t, ts.TotalNormalHours.Equal(firstNormal))
	assert.True(t, ts.TotalOvertimeHours.Equal(firstOvertime))
	assert.True(t, ts.TotalHours.Equal(firstTotal))
	assert.True(t, ts.TotalHours.Equal(decimal.NewFromFloat(16.75)))
}

func TestTimesheet_Recalculate_OverwritesClientTotals(t *testing.T) {
	ts := domain.Timesheet{
		WeekStartDate:    date(2024, time.May, 6),
		TotalNormalHours: decimal.NewFromInt(99), // never trusted
		TotalHours:       decimal.NewFromInt(99),
		WeekNumber:       42,
		Entries: []domain.TimeEntry{
			{NormalHours: decimal.NewFromInt(8)},
		},
	}

	ts.Recalculate()

	assert.True(t, ts.TotalNormalHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, ts.TotalHours.Equal(decimal.NewFromInt(8)))
	assert.Equal(t, 19, ts.WeekNumber)
}

func TestTimeEntry_IsMisc(t *testing.T) {
	assert.True(t, domain.TimeEntry{ActivityCode: "MISC"}.IsMisc())
	assert.True(t, domain.TimeEntry{ProjectCode: "Miscellaneous Activity", ActivityCode: "PC"}.IsMisc())
	assert.False(t, domain.TimeEntry{ProjectCode: "PL-100", ActivityCode: "PC"}.IsMisc())
}

func TestProject_ConsumedAndBalance(t *testing.T) {
	p := domain.Project{
		TotalHours:      decimal.NewFromInt(120),
		JuniorCompleted: decimal.NewFromInt(65),
		SeniorCompleted: decimal.NewFromInt(30),
	}

	assert.True(t, p.ConsumedHours().Equal(decimal.NewFromInt(95)))
	assert.True(t, p.BalanceHours().Equal(decimal.NewFromInt(25)))
}
