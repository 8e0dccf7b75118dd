package domain

import (
	"fmt"
	"strings"
	"time"
)

// Wire layouts for dates accepted in request bodies.
const (
	// ConferenceDateLayout accepts e.g. "Jan 01 2025" or "Jan 1 2025".
	ConferenceDateLayout = "Jan 2 2006"
	// TalkDateTimeLayout accepts e.g. "Jan 01 2025 09:30AM".
	TalkDateTimeLayout = "Jan 2 2006 3:04PM"
)

// ParseConferenceDate parses s using ConferenceDateLayout. The result is in UTC.
func ParseConferenceDate(field, s string) (time.Time, error) {
	return parseLayout(field, s, ConferenceDateLayout)
}

// ParseTalkDateTime parses s using TalkDateTimeLayout. The meridiem may be
// either case ("09:30am" or "09:30AM"). The result is in UTC.
func ParseTalkDateTime(field, s string) (time.Time, error) {
	t, err := parseLayout(field, upperMeridiem(s), TalkDateTimeLayout)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q does not match format %q", ErrValidation, field, s, TalkDateTimeLayout)
	}
	return t, nil
}

// upperMeridiem uppercases a trailing am/pm; time.Parse only accepts AM/PM.
func upperMeridiem(s string) string {
	if len(s) < 2 {
		return s
	}
	suffix := strings.ToUpper(s[len(s)-2:])
	if suffix != "AM" && suffix != "PM" {
		return s
	}
	return s[:len(s)-2] + suffix
}

func parseLayout(field, s, layout string) (time.Time, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q does not match format %q", ErrValidation, field, s, layout)
	}
	return t.UTC(), nil
}
