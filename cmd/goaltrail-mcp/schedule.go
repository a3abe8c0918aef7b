package main

import (
	"fmt"
	"strconv"
	"strings"
)

// utcOffsets is the fixed set of UTC offsets accepted for scheduled story
// generation. Daylight saving is the caller's problem: they pick the offset
// that is correct at call time.
var utcOffsets = []string{
	"-12:00", "-11:00", "-10:00", "-09:00", "-08:00", "-07:00", "-06:00",
	"-05:00", "-04:00", "-03:00", "-02:00", "-01:00", "+00:00", "+01:00",
	"+02:00", "+03:00", "+04:00", "+05:00", "+06:00", "+07:00", "+08:00",
	"+09:00", "+10:00", "+11:00", "+12:00", "+13:00", "+14:00",
}

var utcOffsetSet = func() map[string]bool {
	set := make(map[string]bool, len(utcOffsets))
	for _, o := range utcOffsets {
		set[o] = true
	}
	return set
}()

// parseOffset converts a ±HH:MM offset into signed minutes. Membership in
// the enumerated set is checked first — anything else is a validation
// failure, not a best-effort parse.
func parseOffset(offset string) (int, error) {
	if !utcOffsetSet[offset] {
		return 0, fmt.Errorf("utc_offset %q is not a supported offset", offset)
	}
	sign := 1
	if strings.HasPrefix(offset, "-") {
		sign = -1
	}
	parts := strings.SplitN(offset[1:], ":", 2)
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("utc_offset %q is malformed", offset)
	}
	minutes := 0
	if len(parts) == 2 {
		minutes, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, fmt.Errorf("utc_offset %q is malformed", offset)
		}
	}
	return sign * (hours*60 + minutes), nil
}

// normalizeTimeSettings converts a local wall-clock preference
// (12-hour clock + AM/PM + UTC offset) into the UTC hour and minute the
// backend persists for a daily-recurring schedule. Date rollover is not
// tracked — only time-of-day matters.
func normalizeTimeSettings(hour, period, offset string) (int, int, error) {
	h, err := strconv.Atoi(hour)
	if err != nil || h < 1 || h > 12 {
		return 0, 0, fmt.Errorf("hour %q must be a value from 1 to 12", hour)
	}

	var local int
	switch strings.ToUpper(period) {
	case "AM":
		local = h % 12 // 12 AM -> 0
	case "PM":
		local = h%12 + 12 // 12 PM -> 12
	default:
		return 0, 0, fmt.Errorf("period %q must be AM or PM", period)
	}

	offsetMin, err := parseOffset(offset)
	if err != nil {
		return 0, 0, err
	}

	// Local time minus the offset yields UTC, wrapped to a single day.
	total := local*60 - offsetMin
	total = ((total % 1440) + 1440) % 1440
	return total / 60, total % 60, nil
}
