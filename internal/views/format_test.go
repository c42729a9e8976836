package views

import (
	"testing"
	"time"

	"github.com/iliyamo/no-pressure/internal/model"
)

func sys(r model.Reading) int { return r.Systolic }

func TestFormatDelta(t *testing.T) {
	latest := &model.Reading{Systolic: 118}
	previous := &model.Reading{Systolic: 122}

	if got := FormatDelta(latest, previous, sys); got != "-4 vs last" {
		t.Errorf("FormatDelta(118, 122) = %q; want \"-4 vs last\"", got)
	}
	if got := FormatDelta(previous, latest, sys); got != "+4 vs last" {
		t.Errorf("FormatDelta(122, 118) = %q; want \"+4 vs last\"", got)
	}
	if got := FormatDelta(latest, latest, sys); got != "0 vs last" {
		t.Errorf("FormatDelta(118, 118) = %q; want \"0 vs last\"", got)
	}
	if got := FormatDelta(latest, nil, sys); got != "N/A" {
		t.Errorf("FormatDelta without previous = %q; want \"N/A\"", got)
	}
	if got := FormatDelta(nil, nil, sys); got != "N/A" {
		t.Errorf("FormatDelta without readings = %q; want \"N/A\"", got)
	}
}

func TestBuildMetricsEmpty(t *testing.T) {
	metrics := BuildMetrics(nil, nil)
	if len(metrics) != 3 {
		t.Fatalf("BuildMetrics: got %d metrics, want 3", len(metrics))
	}
	for _, m := range metrics {
		if m.Value != "--" {
			t.Errorf("%s value = %q; want \"--\"", m.Label, m.Value)
		}
		if m.Delta != "N/A" {
			t.Errorf("%s delta = %q; want \"N/A\"", m.Label, m.Delta)
		}
	}
}

func TestBuildMetricsWithReadings(t *testing.T) {
	latest := &model.Reading{Systolic: 118, Diastolic: 76, HeartRate: 68}
	previous := &model.Reading{Systolic: 122, Diastolic: 74, HeartRate: 68}

	metrics := BuildMetrics(latest, previous)
	if len(metrics) != 3 {
		t.Fatalf("BuildMetrics: got %d metrics, want 3", len(metrics))
	}
	want := []Metric{
		{Label: "Systolic (mmHg)", Value: "118", Delta: "-4 vs last"},
		{Label: "Diastolic (mmHg)", Value: "76", Delta: "+2 vs last"},
		{Label: "Heart Rate (bpm)", Value: "68", Delta: "0 vs last"},
	}
	for i, w := range want {
		if metrics[i] != w {
			t.Errorf("metric %d = %+v; want %+v", i, metrics[i], w)
		}
	}
}

func TestSplitLatestPrevious(t *testing.T) {
	latest, previous := SplitLatestPrevious(nil)
	if latest != nil || previous != nil {
		t.Errorf("SplitLatestPrevious(nil) = %v, %v; want nil, nil", latest, previous)
	}

	one := []model.Reading{{ID: 2, Systolic: 118}}
	latest, previous = SplitLatestPrevious(one)
	if latest == nil || latest.ID != 2 {
		t.Errorf("latest = %v; want reading with id 2", latest)
	}
	if previous != nil {
		t.Errorf("previous = %v; want nil", previous)
	}

	two := []model.Reading{{ID: 2, Systolic: 118}, {ID: 1, Systolic: 122}}
	latest, previous = SplitLatestPrevious(two)
	if latest == nil || latest.ID != 2 {
		t.Errorf("latest = %v; want reading with id 2", latest)
	}
	if previous == nil || previous.ID != 1 {
		t.Errorf("previous = %v; want reading with id 1", previous)
	}
}

func TestBuildRows(t *testing.T) {
	readings := []model.Reading{
		{Timestamp: time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC), Systolic: 118, Diastolic: 76, HeartRate: 68},
	}
	rows := BuildRows(readings)
	if len(rows) != 1 {
		t.Fatalf("BuildRows: got %d rows, want 1", len(rows))
	}
	want := ReadingRow{Date: "2024-05-01 08:30", Sys: 118, Dia: 76, HR: 68}
	if rows[0] != want {
		t.Errorf("row = %+v; want %+v", rows[0], want)
	}
}
