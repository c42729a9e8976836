package views

import (
	"fmt"
	"strconv"

	"github.com/iliyamo/no-pressure/internal/model"
)

// rowTimeLayout is how the recent-readings table displays timestamps.
const rowTimeLayout = "2006-01-02 15:04"

// SplitLatestPrevious returns the latest and previous readings from a
// newest-first slice.  Either result may be nil.
func SplitLatestPrevious(readings []model.Reading) (latest, previous *model.Reading) {
	if len(readings) > 0 {
		latest = &readings[0]
	}
	if len(readings) > 1 {
		previous = &readings[1]
	}
	return latest, previous
}

// BuildMetrics assembles the three metric cells from the latest and previous
// readings.  Missing readings display "--" values and "N/A" deltas.
func BuildMetrics(latest, previous *model.Reading) []Metric {
	fields := []struct {
		label string
		get   func(model.Reading) int
	}{
		{"Systolic (mmHg)", func(r model.Reading) int { return r.Systolic }},
		{"Diastolic (mmHg)", func(r model.Reading) int { return r.Diastolic }},
		{"Heart Rate (bpm)", func(r model.Reading) int { return r.HeartRate }},
	}
	out := make([]Metric, 0, len(fields))
	for _, f := range fields {
		out = append(out, Metric{
			Label: f.label,
			Value: formatValue(latest, f.get),
			Delta: FormatDelta(latest, previous, f.get),
		})
	}
	return out
}

// FormatDelta renders the signed difference between the latest and previous
// value of one field, e.g. "-4 vs last" or "+3 vs last".  Without both
// readings the delta is "N/A".
func FormatDelta(latest, previous *model.Reading, get func(model.Reading) int) string {
	if latest == nil || previous == nil {
		return "N/A"
	}
	delta := get(*latest) - get(*previous)
	if delta > 0 {
		return fmt.Sprintf("+%d vs last", delta)
	}
	return fmt.Sprintf("%d vs last", delta)
}

// BuildRows converts readings into display rows, keeping the newest-first
// order of the input.
func BuildRows(readings []model.Reading) []ReadingRow {
	rows := make([]ReadingRow, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, ReadingRow{
			Date: r.Timestamp.Format(rowTimeLayout),
			Sys:  r.Systolic,
			Dia:  r.Diastolic,
			HR:   r.HeartRate,
		})
	}
	return rows
}

func formatValue(r *model.Reading, get func(model.Reading) int) string {
	if r == nil {
		return "--"
	}
	return strconv.Itoa(get(*r))
}
