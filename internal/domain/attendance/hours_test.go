package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestComputeWorkHours(t *testing.T) {
	tests := []struct {
		name          string
		firstIn       *string
		firstOut      *string
		secondIn      *string
		secondOut     *string
		wantWorkHours float64
		wantOvertime  float64
	}{
		{
			name:          "full regular day across two shifts",
			firstIn:       strPtr("2025-03-10T08:00:00Z"),
			firstOut:      strPtr("2025-03-10T12:00:00Z"),
			secondIn:      strPtr("2025-03-10T13:00:00Z"),
			secondOut:     strPtr("2025-03-10T17:00:00Z"),
			wantWorkHours: 8,
			wantOvertime:  0,
		},
		{
			name:          "ten hour day splits into cap plus overtime",
			firstIn:       strPtr("2025-03-10T08:00:00Z"),
			firstOut:      strPtr("2025-03-10T13:00:00Z"),
			secondIn:      strPtr("2025-03-10T14:00:00Z"),
			secondOut:     strPtr("2025-03-10T19:00:00Z"),
			wantWorkHours: 8,
			wantOvertime:  2,
		},
		{
			name:          "single short shift stays below the cap",
			firstIn:       strPtr("2025-03-10T09:00:00Z"),
			firstOut:      strPtr("2025-03-10T14:30:00Z"),
			wantWorkHours: 5.5,
			wantOvertime:  0,
		},
		{
			name:          "missing first check-in zeroes everything",
			firstOut:      strPtr("2025-03-10T12:00:00Z"),
			secondIn:      strPtr("2025-03-10T13:00:00Z"),
			secondOut:     strPtr("2025-03-10T17:00:00Z"),
			wantWorkHours: 0,
			wantOvertime:  0,
		},
		{
			name:          "missing first check-out zeroes everything",
			firstIn:       strPtr("2025-03-10T08:00:00Z"),
			secondIn:      strPtr("2025-03-10T13:00:00Z"),
			secondOut:     strPtr("2025-03-10T17:00:00Z"),
			wantWorkHours: 0,
			wantOvertime:  0,
		},
		{
			name:          "unparseable first check-in zeroes everything",
			firstIn:       strPtr("not-a-timestamp"),
			firstOut:      strPtr("2025-03-10T12:00:00Z"),
			wantWorkHours: 0,
			wantOvertime:  0,
		},
		{
			name:          "all nil",
			wantWorkHours: 0,
			wantOvertime:  0,
		},
		{
			name:          "incomplete second pair is ignored",
			firstIn:       strPtr("2025-03-10T08:00:00Z"),
			firstOut:      strPtr("2025-03-10T12:00:00Z"),
			secondIn:      strPtr("2025-03-10T13:00:00Z"),
			wantWorkHours: 4,
			wantOvertime:  0,
		},
		{
			name:          "inverted first pair clamps to zero",
			firstIn:       strPtr("2025-03-10T17:00:00Z"),
			firstOut:      strPtr("2025-03-10T08:00:00Z"),
			wantWorkHours: 0,
			wantOvertime:  0,
		},
		{
			name:          "inverted second pair only counts the first",
			firstIn:       strPtr("2025-03-10T08:00:00Z"),
			firstOut:      strPtr("2025-03-10T12:00:00Z"),
			secondIn:      strPtr("2025-03-10T18:00:00Z"),
			secondOut:     strPtr("2025-03-10T13:00:00Z"),
			wantWorkHours: 4,
			wantOvertime:  0,
		},
		{
			name:          "exactly the standard shift has no overtime",
			firstIn:       strPtr("2025-03-10T08:00:00Z"),
			firstOut:      strPtr("2025-03-10T16:00:00Z"),
			wantWorkHours: 8,
			wantOvertime:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workHours, overtime := ComputeWorkHours(tt.firstIn, tt.firstOut, tt.secondIn, tt.secondOut)
			assert.InDelta(t, tt.wantWorkHours, workHours, 1e-9)
			assert.InDelta(t, tt.wantOvertime, overtime, 1e-9)
		})
	}
}
