package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDaysInclusive(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", day(2026, 3, 10), day(2026, 3, 10), 1},
		{"four days", day(2026, 3, 10), day(2026, 3, 13), 4},
		{"across month boundary", day(2026, 1, 30), day(2026, 2, 2), 4},
		{"across leap day", day(2028, 2, 28), day(2028, 3, 1), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalDaysInclusive(tt.start, tt.end))
		})
	}
}

func TestCreateLeaveRequestValidate(t *testing.T) {
	valid := CreateLeaveRequest{
		PersonnelID: "p-1",
		Kind:        "annual",
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-13",
		ApprovedBy:  "admin-1",
	}
	assert.NoError(t, valid.Validate())

	reversed := valid
	reversed.StartDate, reversed.EndDate = reversed.EndDate, reversed.StartDate
	assert.Error(t, reversed.Validate())

	badKind := valid
	badKind.Kind = "sabbatical"
	assert.Error(t, badKind.Validate())

	noApprover := valid
	noApprover.ApprovedBy = ""
	assert.Error(t, noApprover.Validate())
}
