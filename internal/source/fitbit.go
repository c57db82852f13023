// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/body-convert/pkg/types"
)

// Date layouts accepted in the "date" field, tried in order. Fitbit's own
// export writes two-digit-year US dates.
var fitbitDateLayouts = []string{
	"2006-01-02",
	"01/02/06",
	"01/02/2006",
}

var fitbitTimeLayouts = []string{
	"15:04:05",
	"15:04",
}

// FitbitWeight reads entries from a Fitbit weight-log export, where each
// file is a JSON array of {"date", "time", "weight", "fat", ...} objects.
type FitbitWeight struct{}

// Name returns the format name.
func (FitbitWeight) Name() string { return "FitbitWeight" }

// Parse builds a BodyEntry from one Fitbit log object. The timestamp is the
// combination of "date" and "time" with no timezone conversion. A positive
// "fat" percentage becomes an absolute fat mass; a missing, empty, zero, or
// negative one leaves it absent. A "weight" or "fat" that is present but not
// a finite number is a ParseError rather than being read as zero. Bone,
// muscle, water, and comments are not carried by this format.
func (FitbitWeight) Parse(rec RawRecord) (types.BodyEntry, error) {
	ts, err := fitbitTimestamp(rec)
	if err != nil {
		return types.BodyEntry{}, &types.ParseError{Index: -1, Err: err}
	}

	total, ok, err := numberField(rec, "weight")
	if err != nil {
		return types.BodyEntry{}, &types.ParseError{Index: -1, Err: err}
	}
	if !ok {
		return types.BodyEntry{}, &types.ParseError{Index: -1, Err: errors.New(`missing "weight"`)}
	}

	entry := types.NewBodyEntry(total)
	entry.Timestamp = ts

	pct, ok, err := numberField(rec, "fat")
	if err != nil {
		return types.BodyEntry{}, &types.ParseError{Index: -1, Err: err}
	}
	if ok && pct > 0 {
		entry.FatWeightKg = types.Kg(pct * total / 100)
	}

	return entry, nil
}

func fitbitTimestamp(rec RawRecord) (time.Time, error) {
	dateStr, err := stringField(rec, "date")
	if err != nil {
		return time.Time{}, err
	}
	timeStr, err := stringField(rec, "time")
	if err != nil {
		return time.Time{}, err
	}

	date, err := parseFirst(fitbitDateLayouts, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", dateStr)
	}
	clock, err := parseFirst(fitbitTimeLayouts, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q", timeStr)
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC), nil
}

func parseFirst(layouts []string, s string) (time.Time, error) {
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func stringField(rec RawRecord, key string) (string, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return "", fmt.Errorf("missing %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q is %T, want string", key, v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("missing %q", key)
	}
	return s, nil
}

// numberField reads a JSON number or a numeric string. It reports ok=false
// when the key is absent, null, or an empty string.
func numberField(rec RawRecord, key string) (float64, bool, error) {
	v, ok := rec[key]
	if !ok || v == nil {
		return 0, false, nil
	}

	var text string
	switch n := v.(type) {
	case json.Number:
		text = n.String()
	case float64:
		text = strconv.FormatFloat(n, 'g', -1, 64)
	case string:
		text = strings.TrimSpace(n)
		if text == "" {
			return 0, false, nil
		}
	default:
		return 0, false, fmt.Errorf("%q is %T, want number", key, v)
	}

	// ParseFloat accepts "NaN" and "Inf" spellings; neither is a measurement.
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, fmt.Errorf("%q is not numeric: %q", key, text)
	}
	return f, true, nil
}
