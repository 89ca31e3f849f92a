package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/attendance"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func sampleViews() []attendance.View {
	checkIn := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)

	return []attendance.View{
		{
			ID:   "att-1",
			Date: "2025-03-10",
			Employee: attendance.EmployeeRef{
				ID:       "emp-1",
				Names:    "maría josé",
				Lastname: "pérez garcía",
				DNI:      "11111111",
				Department: attendance.DepartmentRef{
					ID:   "dept-1",
					Name: "Ventas",
				},
				JobPosition: &attendance.JobPositionRef{
					ID:   "jp-1",
					Name: "Vendedor",
				},
			},
			FirstCheckInTime:  timePtr(checkIn),
			FirstCheckOutTime: timePtr(checkOut),
			ObservationType: &attendance.ObservationTypeRef{
				ID:   "obs-1",
				Name: "Tardanza",
			},
			Observation: strPtr("llegó tarde"),
			WorkHours:   8,
			Overtime:    0,
		},
		{
			ID:   "att-2",
			Date: "2025-03-10",
			Employee: attendance.EmployeeRef{
				ID:       "emp-2",
				Names:    "juan",
				Lastname: "quispe",
				DNI:      "22222222",
				Department: attendance.DepartmentRef{
					ID:   "dept-1",
					Name: "Ventas",
				},
			},
			WorkHours: 0,
			Overtime:  0,
		},
	}
}

func TestBuildAttendanceReport(t *testing.T) {
	svc := NewReportService()

	buf, filename, err := svc.BuildAttendanceReport(sampleViews(), "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "Lista de asistencias 2025-03-10.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Asistencias"

	title, err := f.GetCellValue(sheet, "A5")
	require.NoError(t, err)
	assert.Equal(t, "REPORTE DE ASISTENCIAS", title)

	groupHeader, err := f.GetCellValue(sheet, "A7")
	require.NoError(t, err)
	assert.Equal(t, "DATOS DEL EMPLEADO", groupHeader)

	firstColumn, err := f.GetCellValue(sheet, "A8")
	require.NoError(t, err)
	assert.Equal(t, "Nombre Completo", firstColumn)

	// Filled record: proper casing, formatted times, numeric hours.
	fullName, err := f.GetCellValue(sheet, "A9")
	require.NoError(t, err)
	assert.Equal(t, "María José Pérez García", fullName)

	checkIn, err := f.GetCellValue(sheet, "E9")
	require.NoError(t, err)
	assert.Equal(t, "10-03-2025 08:00", checkIn)

	overtime, err := f.GetCellValue(sheet, "L9")
	require.NoError(t, err)
	assert.Equal(t, "Sin horas extras", overtime)

	// Blank generated record: pending and missing markers.
	missingCheckIn, err := f.GetCellValue(sheet, "E10")
	require.NoError(t, err)
	assert.Equal(t, "No registrado", missingCheckIn)

	missingPosition, err := f.GetCellValue(sheet, "D10")
	require.NoError(t, err)
	assert.Equal(t, "N/A", missingPosition)

	pendingHours, err := f.GetCellValue(sheet, "K10")
	require.NoError(t, err)
	assert.Equal(t, "Por calcular", pendingHours)
}

func TestBuildAttendanceReport_Empty(t *testing.T) {
	svc := NewReportService()

	_, _, err := svc.BuildAttendanceReport(nil, "2025-03-10")

	assert.Error(t, err)
}

func TestBuildEmployeeAttendanceReport(t *testing.T) {
	svc := NewReportService()
	views := sampleViews()[:1]

	buf, filename, err := svc.BuildEmployeeAttendanceReport(views, "2025-03-01", "2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, "Lista de asistencias María José Pérez García 2025-03-01 - 2025-03-31.xlsx", filename)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := "Asistencias"

	employeeBlock, err := f.GetCellValue(sheet, "A7")
	require.NoError(t, err)
	assert.Equal(t, "DATOS DEL EMPLEADO", employeeBlock)

	name, err := f.GetCellValue(sheet, "A9")
	require.NoError(t, err)
	assert.Equal(t, "María José Pérez García", name)

	dateCell, err := f.GetCellValue(sheet, "A13")
	require.NoError(t, err)
	assert.Equal(t, "10-03-2025", dateCell)

	hourCell, err := f.GetCellValue(sheet, "B13")
	require.NoError(t, err)
	assert.Equal(t, "08:00", hourCell)

	// Day total = worked + overtime.
	totalCell, err := f.GetCellValue(sheet, "J13")
	require.NoError(t, err)
	assert.Equal(t, "8", totalCell)
}

func TestStartCaseWithAccents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"maría josé", "María José"},
		{"PÉREZ GARCÍA", "Pérez García"},
		{"juan-carlos", "Juan Carlos"},
		{"ana_lucía", "Ana Lucía"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StartCaseWithAccents(tt.in))
	}
}
