package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseError reports clock text that does not match the expected 12-hour
// format. It is recoverable: callers keep their previous selection.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid time %q: expected h:mm AM/PM", e.Input)
}

var clockTextPattern = regexp.MustCompile(`^([0-9]{1,2}):([0-9]{2})\s*([APap][Mm])$`)

// ParseClockText parses 12-hour clock text such as "1:12 PM" or "09:05 am"
// into an instant on day's calendar date, in day's location. The AM/PM marker
// is required. Hour 12 rolls to 00 for AM and stays 12 for PM.
func ParseClockText(text string, day time.Time) (time.Time, error) {
	m := clockTextPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return time.Time{}, &ParseError{Input: text}
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return time.Time{}, &ParseError{Input: text}
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil || minute > 59 {
		return time.Time{}, &ParseError{Input: text}
	}

	// Standard 12-hour decoding: 12 AM is midnight, 12 PM is noon.
	if strings.EqualFold(m[3], "am") {
		if hour == 12 {
			hour = 0
		}
	} else if hour != 12 {
		hour += 12
	}

	year, month, d := day.Date()
	return time.Date(year, month, d, hour, minute, 0, 0, day.Location()), nil
}
