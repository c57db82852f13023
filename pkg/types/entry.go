// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the vendor-neutral data model, configuration, and error
// kinds shared by the conversion stages.
package types

import "time"

// Epoch marks a BodyEntry whose source did not supply a timestamp. It is
// never a real measurement time.
var Epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// BodyEntry is one body-composition measurement in vendor-neutral form.
// Optional masses are nil when the source did not report them; a nil value
// and a zero value are different things and sinks must keep them apart.
type BodyEntry struct {
	// Timestamp is the calendar date and time of the measurement.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// TotalWeightKg is the total body weight. It is the only required measurement.
	TotalWeightKg float64 `json:"total_weight_kg" yaml:"total_weight_kg"`

	FatWeightKg    *float64 `json:"fat_weight_kg,omitempty" yaml:"fat_weight_kg,omitempty"`
	BoneWeightKg   *float64 `json:"bone_weight_kg,omitempty" yaml:"bone_weight_kg,omitempty"`
	MuscleWeightKg *float64 `json:"muscle_weight_kg,omitempty" yaml:"muscle_weight_kg,omitempty"`
	WaterWeightKg  *float64 `json:"water_weight_kg,omitempty" yaml:"water_weight_kg,omitempty"`

	// Comments is free text attached to the measurement; empty means none.
	Comments string `json:"comments,omitempty" yaml:"comments,omitempty"`
}

// NewBodyEntry returns an entry carrying only the total weight, with the
// timestamp set to Epoch.
func NewBodyEntry(totalKg float64) BodyEntry {
	return BodyEntry{
		Timestamp:     Epoch,
		TotalWeightKg: totalKg,
	}
}

// HasTimestamp reports whether the entry carries a real measurement time.
func (e BodyEntry) HasTimestamp() bool {
	return !e.Timestamp.IsZero() && !e.Timestamp.Equal(Epoch)
}

// Kg returns a pointer to v for populating optional mass fields.
func Kg(v float64) *float64 {
	return &v
}
