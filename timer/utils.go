package timer

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime converts a number of seconds into a mm:ss string format.
func FormatTime(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// ParseDuration reads a duration typed by the user, either whole seconds
// ("90") or minutes and seconds ("1:30").
func ParseDuration(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, &ValidationError{Field: "duration", Reason: "must not be empty"}
	}

	var val int
	if strings.Contains(input, ":") {
		parts := strings.Split(input, ":")
		if len(parts) != 2 {
			return 0, &ValidationError{Field: "duration", Reason: "use seconds or mm:ss"}
		}
		min, err := strconv.Atoi(parts[0])
		if err != nil || min < 0 {
			return 0, &ValidationError{Field: "duration", Reason: "invalid minutes"}
		}
		sec, err := strconv.Atoi(parts[1])
		if err != nil || sec < 0 || sec >= 60 {
			return 0, &ValidationError{Field: "duration", Reason: "invalid seconds (must be 0-59)"}
		}
		val = min*60 + sec
	} else {
		n, err := strconv.Atoi(input)
		if err != nil {
			return 0, &ValidationError{Field: "duration", Reason: "not a whole number"}
		}
		val = n
	}

	if val <= 0 {
		return 0, &ValidationError{Field: "duration", Reason: "must be a positive number of seconds"}
	}
	return val, nil
}
