package format

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	secondSeconds int64 = 1
	minuteSeconds int64 = 60
	hourSeconds   int64 = 60 * minuteSeconds
	daySeconds    int64 = 24 * hourSeconds
	weekSeconds   int64 = 7 * daySeconds
)

var timeUnits = map[string]int64{
	"s": secondSeconds, "second": secondSeconds, "seconds": secondSeconds,
	"m": minuteSeconds, "minute": minuteSeconds, "minutes": minuteSeconds,
	"h": hourSeconds, "hour": hourSeconds, "hours": hourSeconds,
	"d": daySeconds, "day": daySeconds, "days": daySeconds,
	"w": weekSeconds, "week": weekSeconds, "weeks": weekSeconds,
}

var durationTokenRE = regexp.MustCompile(`(\d+)([A-Za-z]+)`)

// TimerFormat renders a countdown as H:MM:SS, or MM:SS under an hour.
func TimerFormat(seconds int64) (string, error) {
	if seconds < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeDuration, seconds)
	}
	hours := seconds / hourSeconds
	minutes := (seconds % hourSeconds) / minuteSeconds
	secs := seconds % minuteSeconds
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs), nil
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs), nil
}

// ToSeconds converts a remaining time string such as "1d 5h 10s" into the
// number of seconds it represents. Tokens with an unknown unit are skipped.
func ToSeconds(text string) int64 {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	var total int64
	for _, m := range durationTokenRE.FindAllStringSubmatch(compact, -1) {
		unit, ok := timeUnits[m[2]]
		if !ok {
			continue
		}
		value, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		total = saturatingAdd(total, saturatingMul(value, unit))
	}
	return total
}

// RemainingTime converts seconds into a compact breakdown such as "5m 10s".
// Zero components are omitted, so 0 yields "".
func RemainingTime(seconds int64) (string, error) {
	if seconds < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeDuration, seconds)
	}
	days := seconds / daySeconds
	seconds %= daySeconds
	hours := seconds / hourSeconds
	seconds %= hourSeconds
	minutes := seconds / minuteSeconds
	seconds %= minuteSeconds

	parts := make([]string, 0, 4)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, " "), nil
}

// both operands are non-negative here
func saturatingAdd(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func saturatingMul(a, b int64) int64 {
	if a != 0 && b > math.MaxInt64/a {
		return math.MaxInt64
	}
	return a * b
}
