package report

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// FormatDuration renders d as H:MM:SS.fffffff with 100ns precision.
// Hours are not folded into days.
func FormatDuration(d time.Duration) string {
	sign := ""
	u := uint64(d)
	if d < 0 {
		sign = "-"
		u = uint64(-(d + 1)) + 1
	}

	const (
		tick   = uint64(100 * time.Nanosecond)
		second = uint64(time.Second)
		minute = uint64(time.Minute)
		hour   = uint64(time.Hour)
	)

	h := u / hour
	m := u % hour / minute
	s := u % minute / second
	f := u % second / tick

	return fmt.Sprintf("%s%d:%02d:%02d.%07d", sign, h, m, s, f)
}

var clockPattern = regexp.MustCompile(`^(-)?(\d+):([0-5]\d):([0-5]\d)(?:\.(\d{1,9}))?$`)

// ParseDuration accepts either a Go duration string ("1m30s") or the
// H:MM:SS[.fffffff] form produced by FormatDuration.
func ParseDuration(s string) (time.Duration, error) {
	if m := clockPattern.FindStringSubmatch(s); m != nil {
		h, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		mins, _ := strconv.ParseInt(m[3], 10, 64)
		secs, _ := strconv.ParseInt(m[4], 10, 64)
		var frac int64
		if m[5] != "" {
			digits := m[5] + "000000000"[len(m[5]):]
			frac, _ = strconv.ParseInt(digits, 10, 64)
		}
		d := time.Duration(h)*time.Hour + time.Duration(mins)*time.Minute +
			time.Duration(secs)*time.Second + time.Duration(frac)
		if m[1] == "-" {
			d = -d
		}
		return d, nil
	}
	return time.ParseDuration(s)
}
