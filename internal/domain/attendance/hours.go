package attendance

import "time"

// StandardShiftHours separates regular worked hours from overtime.
const StandardShiftHours = 8.0

// ComputeWorkHours turns up to two shift windows into worked hours and
// overtime. Inputs are RFC3339 timestamps; nil or unparseable values degrade
// to zeros instead of failing, matching the lenient policy of the attendance
// form. A second shift is only counted when both of its ends are present, and
// is ignored entirely when the first pair is incomplete.
//
// A check-out earlier than its check-in would yield a negative span; spans
// are clamped at zero here even though the form rejects that ordering before
// it reaches storage.
func ComputeWorkHours(firstIn, firstOut, secondIn, secondOut *string) (workHours, overtime float64) {
	firstInTime, okIn := parseTimestamp(firstIn)
	firstOutTime, okOut := parseTimestamp(firstOut)
	if !okIn || !okOut {
		return 0, 0
	}

	total := clampSpan(firstOutTime.Sub(firstInTime))

	secondInTime, okIn := parseTimestamp(secondIn)
	secondOutTime, okOut := parseTimestamp(secondOut)
	if okIn && okOut {
		total += clampSpan(secondOutTime.Sub(secondInTime))
	}

	if total > StandardShiftHours {
		return StandardShiftHours, total - StandardShiftHours
	}
	return total, 0
}

func parseTimestamp(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func clampSpan(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return d.Hours()
}
