package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/xuri/excelize/v2"

	"github.com/sigea-hr/attendance-backend-go/internal/domain/attendance"
)

// The workbook text is Spanish because that is what the HR team reads.
const (
	reportTitle       = "REPORTE DE ASISTENCIAS"
	notRegisteredMark = "No registrado"
	notApplicableMark = "N/A"
	pendingMark       = "Por calcular"
	noOvertimeMark    = "Sin horas extras"

	cellTimeLayout = "02-01-2006 15:04"
	hourOnlyLayout = "15:04"
	dateOnlyLayout = "02-01-2006"
)

type ReportService interface {
	// BuildAttendanceReport renders the filtered attendance list into a
	// workbook. label ends up in the download filename, typically the
	// filter date or department name.
	BuildAttendanceReport(list []attendance.View, label string) (*bytes.Buffer, string, error)

	// BuildEmployeeAttendanceReport renders one employee's records over a
	// date range, with an employee data block and a per-day summary.
	BuildEmployeeAttendanceReport(list []attendance.View, fromDate, toDate string) (*bytes.Buffer, string, error)
}

type reportServiceImpl struct{}

func NewReportService() ReportService {
	return &reportServiceImpl{}
}

func (s *reportServiceImpl) BuildAttendanceReport(list []attendance.View, label string) (*bytes.Buffer, string, error) {
	if len(list) == 0 {
		return nil, "", fmt.Errorf("no attendance records to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Asistencias"
	f.SetSheetName("Sheet1", sheet)

	titleStyle, groupStyle, headerStyle, dataStyle, err := buildStyles(f)
	if err != nil {
		return nil, "", err
	}

	// Rows 1-4 are left blank where the printed version carries the logo.
	if err := writeTitle(f, sheet, titleStyle, "A5", "L5"); err != nil {
		return nil, "", err
	}

	groups := []struct {
		title      string
		start, end string
	}{
		{"DATOS DEL EMPLEADO", "A7", "D7"},
		{"REGISTRO DE ASISTENCIA", "E7", "H7"},
		{"INFORMACIÓN ADICIONAL", "I7", "L7"},
	}
	for _, g := range groups {
		f.SetCellValue(sheet, g.start, g.title)
		if err := f.MergeCell(sheet, g.start, g.end); err != nil {
			return nil, "", fmt.Errorf("failed to merge header cells: %w", err)
		}
		f.SetCellStyle(sheet, g.start, g.end, groupStyle)
	}
	f.SetRowHeight(sheet, 7, 25)

	columns := []string{
		"Nombre Completo",
		"DNI",
		"Departamento",
		"Puesto de trabajo",
		"Entrada del primer turno",
		"Salida del primer turno",
		"Entrada del segundo turno",
		"Salida del segundo turno",
		"Tipo de observación",
		"Observación",
		"Horas trabajadas",
		"Horas extras",
	}
	for i, col := range columns {
		cell := fmt.Sprintf("%c8", 'A'+i)
		f.SetCellValue(sheet, cell, col)
	}
	f.SetCellStyle(sheet, "A8", "L8", headerStyle)
	f.SetRowHeight(sheet, 8, 30)

	for i, record := range list {
		rowNum := 9 + i
		jobPosition := notApplicableMark
		if record.Employee.JobPosition != nil {
			jobPosition = record.Employee.JobPosition.Name
		}

		row := []any{
			StartCaseWithAccents(record.Employee.Names) + " " + StartCaseWithAccents(record.Employee.Lastname),
			record.Employee.DNI,
			record.Employee.Department.Name,
			jobPosition,
			formatCheckTime(record.FirstCheckInTime, cellTimeLayout),
			formatCheckTime(record.FirstCheckOutTime, cellTimeLayout),
			formatCheckTime(record.SecondCheckInTime, cellTimeLayout),
			formatCheckTime(record.SecondCheckOutTime, cellTimeLayout),
			observationTypeCell(record),
			observationCell(record),
			workHoursCell(record),
			overtimeCell(record),
		}
		for j, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+j, rowNum)
			f.SetCellValue(sheet, cell, value)
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("L%d", rowNum), dataStyle)
		f.SetRowHeight(sheet, rowNum, 20)
	}

	widths := []float64{30, 15, 20, 25, 25, 25, 25, 25, 20, 30, 18, 18}
	for i, width := range widths {
		col := string(rune('A' + i))
		f.SetColWidth(sheet, col, col, width)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("Lista de asistencias %s.xlsx", label)
	return buf, filename, nil
}

func (s *reportServiceImpl) BuildEmployeeAttendanceReport(list []attendance.View, fromDate, toDate string) (*bytes.Buffer, string, error) {
	if len(list) == 0 {
		return nil, "", fmt.Errorf("no attendance records to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Asistencias"
	f.SetSheetName("Sheet1", sheet)

	titleStyle, groupStyle, headerStyle, dataStyle, err := buildStyles(f)
	if err != nil {
		return nil, "", err
	}

	if err := writeTitle(f, sheet, titleStyle, "A5", "J5"); err != nil {
		return nil, "", err
	}

	emp := list[0].Employee

	// Employee data block.
	f.SetCellValue(sheet, "A7", "DATOS DEL EMPLEADO")
	if err := f.MergeCell(sheet, "A7", "F7"); err != nil {
		return nil, "", fmt.Errorf("failed to merge header cells: %w", err)
	}
	f.SetCellStyle(sheet, "A7", "F7", groupStyle)

	personalHeaders := []struct {
		title      string
		start, end string
	}{
		{"Nombre Completo", "A8", "B8"},
		{"Departamento", "C8", "C8"},
		{"Puesto de trabajo", "D8", "E8"},
		{"DNI", "F8", "F8"},
	}
	for _, h := range personalHeaders {
		f.SetCellValue(sheet, h.start, h.title)
		if h.start != h.end {
			if err := f.MergeCell(sheet, h.start, h.end); err != nil {
				return nil, "", fmt.Errorf("failed to merge header cells: %w", err)
			}
		}
	}
	f.SetCellStyle(sheet, "A8", "F8", headerStyle)

	jobPosition := notApplicableMark
	if emp.JobPosition != nil {
		jobPosition = emp.JobPosition.Name
	}
	f.SetCellValue(sheet, "A9", StartCaseWithAccents(emp.Names)+" "+StartCaseWithAccents(emp.Lastname))
	if err := f.MergeCell(sheet, "A9", "B9"); err != nil {
		return nil, "", fmt.Errorf("failed to merge data cells: %w", err)
	}
	f.SetCellValue(sheet, "C9", emp.Department.Name)
	f.SetCellValue(sheet, "D9", jobPosition)
	if err := f.MergeCell(sheet, "D9", "E9"); err != nil {
		return nil, "", fmt.Errorf("failed to merge data cells: %w", err)
	}
	f.SetCellValue(sheet, "F9", emp.DNI)
	f.SetCellStyle(sheet, "A9", "F9", dataStyle)

	groups := []struct {
		title      string
		start, end string
	}{
		{"REGISTRO DE ASISTENCIA", "A11", "D11"},
		{"INFORMACIÓN ADICIONAL", "E11", "G11"},
		{"RESUMEN", "H11", "J11"},
	}
	for _, g := range groups {
		f.SetCellValue(sheet, g.start, g.title)
		if err := f.MergeCell(sheet, g.start, g.end); err != nil {
			return nil, "", fmt.Errorf("failed to merge header cells: %w", err)
		}
		f.SetCellStyle(sheet, g.start, g.end, groupStyle)
	}

	columns := []string{
		"Fecha",
		"Entrada del primer turno",
		"Salida del primer turno",
		"Entrada del segundo turno",
		"Salida del segundo turno",
		"Tipo de observación",
		"Observación",
		"Horas trabajadas",
		"Horas extras",
		"Total del día",
	}
	for i, col := range columns {
		cell := fmt.Sprintf("%c12", 'A'+i)
		f.SetCellValue(sheet, cell, col)
	}
	f.SetCellStyle(sheet, "A12", "J12", headerStyle)
	f.SetRowHeight(sheet, 12, 30)

	for i, record := range list {
		rowNum := 13 + i
		row := []any{
			formatDateKey(record.Date),
			formatCheckTime(record.FirstCheckInTime, hourOnlyLayout),
			formatCheckTime(record.FirstCheckOutTime, hourOnlyLayout),
			formatCheckTime(record.SecondCheckInTime, hourOnlyLayout),
			formatCheckTime(record.SecondCheckOutTime, hourOnlyLayout),
			observationTypeCell(record),
			observationCell(record),
			workHoursCell(record),
			overtimeCell(record),
			dayTotalCell(record),
		}
		for j, value := range row {
			cell := fmt.Sprintf("%c%d", 'A'+j, rowNum)
			f.SetCellValue(sheet, cell, value)
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("J%d", rowNum), dataStyle)
		f.SetRowHeight(sheet, rowNum, 20)
	}

	widths := []float64{20, 20, 20, 20, 20, 30, 15, 18, 18, 18}
	for i, width := range widths {
		col := string(rune('A' + i))
		f.SetColWidth(sheet, col, col, width)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("Lista de asistencias %s %s %s - %s.xlsx",
		StartCaseWithAccents(emp.Names),
		StartCaseWithAccents(emp.Lastname),
		fromDate,
		toDate,
	)
	return buf, filename, nil
}

func buildStyles(f *excelize.File) (title, group, header, data int, err error) {
	title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to build title style: %w", err)
	}

	thinBorder := []excelize.Border{
		{Type: "top", Style: 1},
		{Type: "left", Style: 1},
		{Type: "bottom", Style: 1},
		{Type: "right", Style: 1},
	}

	group, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FF0000"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to build group style: %w", err)
	}

	header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"000000"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder,
	})
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to build header style: %w", err)
	}

	data, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
		Border:    thinBorder,
	})
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to build data style: %w", err)
	}

	return title, group, header, data, nil
}

func writeTitle(f *excelize.File, sheet string, style int, start, end string) error {
	f.SetCellValue(sheet, start, reportTitle)
	if err := f.MergeCell(sheet, start, end); err != nil {
		return fmt.Errorf("failed to merge title cells: %w", err)
	}
	f.SetCellStyle(sheet, start, end, style)
	f.SetRowHeight(sheet, 5, 30)
	return nil
}

func formatCheckTime(t *time.Time, layout string) string {
	if t == nil {
		return notRegisteredMark
	}
	return t.Format(layout)
}

func formatDateKey(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format(dateOnlyLayout)
}

func observationTypeCell(record attendance.View) string {
	if record.ObservationType == nil {
		return notApplicableMark
	}
	return record.ObservationType.Name
}

func observationCell(record attendance.View) string {
	if record.Observation == nil || *record.Observation == "" {
		return notApplicableMark
	}
	return *record.Observation
}

// workHoursCell reports "pending" for blank generated records: zero hours
// with no registered check times means nobody filled the form yet.
func workHoursCell(record attendance.View) any {
	if record.WorkHours == 0 && record.FirstCheckInTime == nil && record.FirstCheckOutTime == nil {
		return pendingMark
	}
	return record.WorkHours
}

func overtimeCell(record attendance.View) any {
	if record.WorkHours == 0 && record.FirstCheckInTime == nil && record.FirstCheckOutTime == nil {
		return pendingMark
	}
	if record.Overtime == 0 && record.WorkHours == attendance.StandardShiftHours {
		return noOvertimeMark
	}
	return record.Overtime
}

func dayTotalCell(record attendance.View) any {
	if record.WorkHours == 0 && record.FirstCheckInTime == nil && record.FirstCheckOutTime == nil {
		return pendingMark
	}
	return record.WorkHours + record.Overtime
}

// StartCaseWithAccents lowercases the text and capitalizes the first letter
// of every word, keeping accented characters intact. Hyphens and underscores
// become word separators.
func StartCaseWithAccents(text string) string {
	if text == "" {
		return ""
	}

	prepared := strings.ToLower(text)
	prepared = strings.NewReplacer("-", " ", "_", " ").Replace(prepared)

	words := strings.Split(prepared, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}

	return strings.Join(words, " ")
}
