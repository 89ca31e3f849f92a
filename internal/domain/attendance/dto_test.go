package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateAttendanceRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateAttendanceRequest
		wantErr bool
	}{
		{
			name: "complete day",
			req: UpdateAttendanceRequest{
				FirstCheckInTime:   strPtr("2025-03-10T08:00:00Z"),
				FirstCheckOutTime:  strPtr("2025-03-10T12:00:00Z"),
				SecondCheckInTime:  strPtr("2025-03-10T13:00:00Z"),
				SecondCheckOutTime: strPtr("2025-03-10T17:00:00Z"),
			},
		},
		{
			name: "empty request is a valid clear",
			req:  UpdateAttendanceRequest{},
		},
		{
			name: "bad timestamp",
			req: UpdateAttendanceRequest{
				FirstCheckInTime: strPtr("yesterday"),
			},
			wantErr: true,
		},
		{
			name: "first pair inverted",
			req: UpdateAttendanceRequest{
				FirstCheckInTime:  strPtr("2025-03-10T12:00:00Z"),
				FirstCheckOutTime: strPtr("2025-03-10T08:00:00Z"),
			},
			wantErr: true,
		},
		{
			name: "second shift without first",
			req: UpdateAttendanceRequest{
				SecondCheckInTime:  strPtr("2025-03-10T13:00:00Z"),
				SecondCheckOutTime: strPtr("2025-03-10T17:00:00Z"),
			},
			wantErr: true,
		},
		{
			name: "second shift overlaps first",
			req: UpdateAttendanceRequest{
				FirstCheckInTime:   strPtr("2025-03-10T08:00:00Z"),
				FirstCheckOutTime:  strPtr("2025-03-10T12:00:00Z"),
				SecondCheckInTime:  strPtr("2025-03-10T11:00:00Z"),
				SecondCheckOutTime: strPtr("2025-03-10T17:00:00Z"),
			},
			wantErr: true,
		},
		{
			name: "second pair inverted",
			req: UpdateAttendanceRequest{
				FirstCheckInTime:   strPtr("2025-03-10T08:00:00Z"),
				FirstCheckOutTime:  strPtr("2025-03-10T12:00:00Z"),
				SecondCheckInTime:  strPtr("2025-03-10T17:00:00Z"),
				SecondCheckOutTime: strPtr("2025-03-10T13:00:00Z"),
			},
			wantErr: true,
		},
		{
			name: "observation without type",
			req: UpdateAttendanceRequest{
				Observation: strPtr("llegó tarde"),
			},
			wantErr: true,
		},
		{
			name: "observation with type",
			req: UpdateAttendanceRequest{
				ObservationTypeID: strPtr("obs-1"),
				Observation:       strPtr("llegó tarde"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateAttendanceRequestValidate(t *testing.T) {
	valid := GenerateAttendanceRequest{DepartmentID: "dept-1", Date: "2025-03-10"}
	assert.NoError(t, valid.Validate())

	missingDept := GenerateAttendanceRequest{Date: "2025-03-10"}
	assert.Error(t, missingDept.Validate())

	badDate := GenerateAttendanceRequest{DepartmentID: "dept-1", Date: "10-03-2025"}
	assert.Error(t, badDate.Validate())
}
