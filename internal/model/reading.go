package model

import (
	"fmt"
	"time"
)

// Bounds for submitted values.  The HTML form mirrors these limits on its
// number inputs; Validate enforces them server-side.
const (
	SystolicMin  = 80
	SystolicMax  = 200
	DiastolicMin = 40
	DiastolicMax = 140
	HeartRateMin = 40
	HeartRateMax = 200
)

// Reading records one blood-pressure and heart-rate observation.  Rows are
// created on form submission and never updated or deleted; the only query
// shape is "most recent N ordered by timestamp descending".
//
// Fields:
//  ID        – primary key identifier, unique and monotonic.
//  Timestamp – when the reading was taken; defaults to insertion time
//              when not supplied.
//  Systolic  – systolic pressure in mmHg.
//  Diastolic – diastolic pressure in mmHg.
//  HeartRate – heart rate in bpm.
type Reading struct {
	ID        int64     `json:"id"`        // bp_readings.id
	Timestamp time.Time `json:"timestamp"` // bp_readings.timestamp
	Systolic  int       `json:"sys"`       // bp_readings.sys
	Diastolic int       `json:"dia"`       // bp_readings.dia
	HeartRate int       `json:"hr"`        // bp_readings.hr
}

// Validate checks the submitted values against the reading bounds and
// returns a message describing the first field that is out of range.
func Validate(systolic, diastolic, heartRate int) error {
	if systolic < SystolicMin || systolic > SystolicMax {
		return fmt.Errorf("systolic must be between %d and %d, got %d", SystolicMin, SystolicMax, systolic)
	}
	if diastolic < DiastolicMin || diastolic > DiastolicMax {
		return fmt.Errorf("diastolic must be between %d and %d, got %d", DiastolicMin, DiastolicMax, diastolic)
	}
	if heartRate < HeartRateMin || heartRate > HeartRateMax {
		return fmt.Errorf("heart rate must be between %d and %d, got %d", HeartRateMin, HeartRateMax, heartRate)
	}
	return nil
}
