package token

import (
	"strconv"
	"strings"
	"time"

	"github.com/tonylang/confval/errs"
)

// timespanSuffixes is checked longest-first within each length class so
// that e.g. "ms" is matched before the shorter "s" in "10ms".
var timespanSuffixes = []string{"min", "ns", "us", "ms", "h", "s"}

var timespanUnit = map[string]time.Duration{
	"ns":  time.Nanosecond,
	"us":  time.Microsecond,
	"ms":  time.Millisecond,
	"s":   time.Second,
	"min": time.Minute,
	"h":   time.Hour,
}

// SplitTimespanSuffix splits s into its numeric prefix and unit suffix,
// trying the longest matching suffix first (so "ms" wins over "s").
// ok is false if s does not end in any recognized timespan suffix, or
// if the suffix consumes the entire string (leaving no numeric part).
func SplitTimespanSuffix(s string) (numPart, suffix string, ok bool) {
	for _, suf := range timespanSuffixes {
		if len(s) > len(suf) && strings.HasSuffix(s, suf) {
			return s[:len(s)-len(suf)], suf, true
		}
	}
	return "", "", false
}

// ParseTimespan parses s as an integer or real literal immediately
// followed by one of the timespan suffixes (spec §4.1). Integral
// numeric prefixes are scaled with integer arithmetic to avoid the
// precision loss a float64 multiplication would introduce for large
// counts.
func ParseTimespan(s string) (time.Duration, error) {
	numPart, suffix, ok := SplitTimespanSuffix(s)
	if !ok {
		return 0, errs.New(errs.ConversionFailed, "no recognized timespan suffix in %q", s)
	}
	unit := timespanUnit[suffix]
	if !LooksReal(numPart) {
		n, err := ParseInteger(numPart)
		if err != nil {
			return 0, errs.Wrap(errs.ConversionFailed, err, "invalid timespan %q", s)
		}
		return time.Duration(n) * unit, nil
	}
	f, err := ParseReal(numPart)
	if err != nil {
		return 0, errs.Wrap(errs.ConversionFailed, err, "invalid timespan %q", s)
	}
	return time.Duration(f * float64(unit)), nil
}

// FormatTimespan renders d using the largest unit that yields a whole
// number, trying h, min, s, ms, us, ns in that order (spec §4.4):
// timespan(4ns) -> "4ns", timespan(42s) -> "42s".
func FormatTimespan(d time.Duration) string {
	n := d.Nanoseconds()
	order := []struct {
		suffix string
		unit   int64
	}{
		{"h", int64(time.Hour)},
		{"min", int64(time.Minute)},
		{"s", int64(time.Second)},
		{"ms", int64(time.Millisecond)},
		{"us", int64(time.Microsecond)},
		{"ns", int64(time.Nanosecond)},
	}
	for _, o := range order {
		if n%o.unit == 0 {
			return strconv.FormatInt(n/o.unit, 10) + o.suffix
		}
	}
	return strconv.FormatInt(n, 10) + "ns"
}
