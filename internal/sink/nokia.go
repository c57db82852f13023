// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sink

import (
	"fmt"

	"github.com/pdiddy/body-convert/pkg/types"
)

const (
	nokiaHeader    = "Date,Weight,Fat mass,Bone mass,Muscle mass,Hydration,Comments"
	nokiaBatchSize = 300
	nokiaDateFmt   = "2006-01-02 15:04:05"
)

// NokiaWeight is one row of the Nokia (Withings) Health Mate weight import
// CSV. Weight is written as-is; the importer is unit agnostic and the
// entries are kilograms.
type NokiaWeight struct {
	Date       string
	Weight     float64
	FatMass    *float64
	BoneMass   *float64
	MuscleMass *float64
	Hydration  *float64
	Comments   string
}

// Columns returns the row in header order.
func (r NokiaWeight) Columns() []string {
	return []string{
		r.Date,
		formatFloat(r.Weight),
		optionalFloat(r.FatMass),
		optionalFloat(r.BoneMass),
		optionalFloat(r.MuscleMass),
		optionalFloat(r.Hydration),
		r.Comments,
	}
}

// Nokia is the Adapter for NokiaWeight rows.
type Nokia struct{}

// Name returns the format name.
func (Nokia) Name() string { return "NokiaWeight" }

// Header returns the import file header.
func (Nokia) Header() string { return nokiaHeader }

// BatchSize returns the number of rows the importer accepts per file.
func (Nokia) BatchSize() int { return nokiaBatchSize }

// FromEntry maps entry fields one to one. The date keeps the timestamp's own
// calendar fields; no timezone conversion is applied.
func (Nokia) FromEntry(e types.BodyEntry) Record {
	return NokiaWeight{
		Date:       e.Timestamp.Format(nokiaDateFmt),
		Weight:     e.TotalWeightKg,
		FatMass:    e.FatWeightKg,
		BoneMass:   e.BoneWeightKg,
		MuscleMass: e.MuscleWeightKg,
		Hydration:  e.WaterWeightKg,
		Comments:   e.Comments,
	}
}

// SerializeLine renders a NokiaWeight row as a CSV line.
func (Nokia) SerializeLine(r Record) (string, error) {
	row, ok := r.(NokiaWeight)
	if !ok {
		return "", fmt.Errorf("nokia weight: cannot serialize %T", r)
	}
	return csvLine(row.Columns())
}
