package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/mail"
	"strconv"
	"strings"
	"time"
)

var errInvalidDateTime = errors.New("invalid datetime format")

// isoLayouts are tried, in order, for strings that are not RFC-1123 dates.
// Layouts without a zone are read as UTC.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// obsoleteZones are the RFC 822 zone names RFC 1123 dates may carry.
// time.Parse reads an unknown abbreviation as a zero offset.
var obsoleteZones = map[string]int{
	"UT":  0,
	"UTC": 0,
	"GMT": 0,
	"Z":   0,
	"AST": -4 * 3600,
	"ADT": -3 * 3600,
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// Unix seconds accepted from numeric datetimes: years 1 through 9999.
var (
	minUnixSeconds = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxUnixSeconds = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// DateTime accepts RFC-1123 strings, ISO-8601 strings and Unix seconds.
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return errInvalidDateTime
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return errInvalidDateTime
		}
		t, err := ParseDateTime(s)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	}

	secs, err := strconv.ParseFloat(string(b), 64)
	if err != nil || math.IsNaN(secs) || secs < float64(minUnixSeconds) || secs > float64(maxUnixSeconds) {
		return errInvalidDateTime
	}
	whole, frac := math.Modf(secs)
	d.Time = time.Unix(int64(whole), int64(frac*1e9)).UTC()
	return nil
}

// ParseDateTime parses s as an RFC-1123 date first (including the other HTTP date
// forms), then as ISO-8601. The result is in UTC.
func ParseDateTime(s string) (time.Time, error) {
	if t, err := http.ParseTime(s); err == nil {
		return t.UTC(), nil
	}
	// RFC 5322 forms: optional day of week and seconds, numeric or named zone
	if t, err := mail.ParseDate(s); err == nil {
		return withObsoleteZone(t).UTC(), nil
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errInvalidDateTime
}

// withObsoleteZone reinterprets t's wall clock in the zone its abbreviation names,
// when time.Parse could not resolve that abbreviation to an offset.
func withObsoleteZone(t time.Time) time.Time {
	name, offset := t.Zone()
	if offset != 0 {
		return t
	}
	zoneOffset, ok := obsoleteZones[strings.ToUpper(name)]
	if !ok || zoneOffset == 0 {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.FixedZone(name, zoneOffset))
}
