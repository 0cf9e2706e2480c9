package format

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// suffixThreshold is the smallest value rendered with a tier letter.
const suffixThreshold = 100_000

// Tiers are powers of 1000 starting at 10^3.
var tiers = [...]string{"K", "M", "B", "T", "Q"}

var suffixedRE = regexp.MustCompile(`^(\d+(?:\.\d+)?)([A-Za-z])?$`)

// CommaFormat groups the digits of n in threes, e.g. 1234567 -> "1,234,567".
func CommaFormat(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// CommaFormatString groups the integer digits of a numeric string. A leading
// minus sign and any fractional part are kept as they are.
func CommaFormatString(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(s, ".")

	var groups []string
	for len(whole) > 3 {
		groups = append([]string{whole[len(whole)-3:]}, groups...)
		whole = whole[:len(whole)-3]
	}
	groups = append([]string{whole}, groups...)

	out := sign + strings.Join(groups, ",")
	if hasFrac {
		out += "." + frac
	}
	return out
}

// SuffixedNumber renders n compactly. Values below 100,000 are comma grouped;
// larger values are floored to one decimal of their tier, so 999,999 becomes
// "999.9K" and never rounds up into "1M".
func SuffixedNumber(n int64) string {
	if n < suffixThreshold {
		return CommaFormat(n)
	}

	tier := -1
	for v := n; v >= 1000 && tier < len(tiers)-1; v /= 1000 {
		tier++
	}
	tenths := n / (tierDivisor(tier) / 10)
	whole, frac := tenths/10, tenths%10
	if frac == 0 {
		return strconv.FormatInt(whole, 10) + tiers[tier]
	}
	return fmt.Sprintf("%d.%d%s", whole, frac, tiers[tier])
}

// ParseSuffixedNumber is the inverse of SuffixedNumber. Commas are ignored and
// the tier letter is matched case-insensitively. Values that do not fit in a
// float64 are rejected with ErrInvalidFormat even when well formed.
func ParseSuffixedNumber(text string) (float64, error) {
	clean := strings.ReplaceAll(text, ",", "")
	m := suffixedRE.FindStringSubmatch(clean)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}

	number, suffix := m[1], m[2]
	if suffix != "" {
		tier := tierIndex(suffix)
		if tier < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSuffix, text)
		}
		// scale in decimal so 1.1K is exactly 1100
		number = fmt.Sprintf("%se%d", number, (tier+1)*3)
	}

	v, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	return v, nil
}

// ParseSuffixedInt parses a suffixed number that must denote a whole count
// within the int64 range.
func ParseSuffixedInt(text string) (int64, error) {
	v, err := ParseSuffixedNumber(text)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidFormat, text)
	}
	n, err := safecast.Convert[int64](v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidFormat, text, err)
	}
	return n, nil
}

func tierIndex(letter string) int {
	for i, t := range tiers {
		if strings.EqualFold(t, letter) {
			return i
		}
	}
	return -1
}

func tierDivisor(tier int) int64 {
	d := int64(1000)
	for i := 0; i < tier; i++ {
		d *= 1000
	}
	return d
}
