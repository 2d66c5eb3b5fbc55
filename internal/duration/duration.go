// Package duration parses the human-friendly duration text admins type into
// slash command options ("10m", "1h", "2 days", "1.5h", "1h30m").
package duration

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/osse101/GiveawayBot_Go/internal/domain"
)

// MaxInputLength bounds the accepted input, longer strings are rejected outright
const MaxInputLength = 100

const (
	day  = 24 * time.Hour
	week = 7 * day
	year = time.Duration(365.25 * float64(day))
)

var pattern = regexp.MustCompile(`(?i)^(-?(?:\d+)?\.?\d+) *(milliseconds?|msecs?|ms|seconds?|secs?|s|minutes?|mins?|m|hours?|hrs?|h|days?|d|weeks?|w|years?|yrs?|y)?$`)

// Parse converts text into a positive duration.
// A bare number is read as milliseconds. Compound Go-style values such as
// "1h30m" are accepted as well. Zero, negative and malformed values return
// an error wrapping domain.ErrInvalidDuration.
func Parse(text string) (time.Duration, error) {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > MaxInputLength {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDuration, text)
	}

	d, err := parse(text)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q must be positive", domain.ErrInvalidDuration, text)
	}
	return d, nil
}

func parse(text string) (time.Duration, error) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		d, err := time.ParseDuration(strings.ReplaceAll(text, " ", ""))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDuration, text)
		}
		return d, nil
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDuration, text)
	}

	unit := unitFor(strings.ToLower(m[2]))
	total := n * float64(unit)
	if math.IsNaN(total) || math.Abs(total) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q is out of range", domain.ErrInvalidDuration, text)
	}
	return time.Duration(math.Round(total)), nil
}

func unitFor(suffix string) time.Duration {
	switch suffix {
	case "years", "year", "yrs", "yr", "y":
		return year
	case "weeks", "week", "w":
		return week
	case "days", "day", "d":
		return day
	case "hours", "hour", "hrs", "hr", "h":
		return time.Hour
	case "minutes", "minute", "mins", "min", "m":
		return time.Minute
	case "seconds", "second", "secs", "sec", "s":
		return time.Second
	default:
		// "", "ms", "msec", "msecs", "millisecond", "milliseconds"
		return time.Millisecond
	}
}

// Humanize formats a duration the short way the parser accepts it back, e.g. "2d", "1h", "90s".
func Humanize(d time.Duration) string {
	abs := d
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= day:
		return fmt.Sprintf("%dd", int64(math.Round(float64(d)/float64(day))))
	case abs >= time.Hour:
		return fmt.Sprintf("%dh", int64(math.Round(float64(d)/float64(time.Hour))))
	case abs >= time.Minute:
		return fmt.Sprintf("%dm", int64(math.Round(float64(d)/float64(time.Minute))))
	case abs >= time.Second:
		return fmt.Sprintf("%ds", int64(math.Round(float64(d)/float64(time.Second))))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}
