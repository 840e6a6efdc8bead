package search

import (
	"fmt"
	"strings"
	"time"
)

// Named pacing presets for animated runs.
const (
	SpeedFast   = 5 * time.Millisecond
	SpeedMedium = 20 * time.Millisecond
	SpeedSlow   = 50 * time.Millisecond
)

// ParseDelay accepts a preset name (fast, medium, slow), a Go duration
// ("15ms") or the empty string, which means no pacing.
// Negative or malformed values yield ErrOptionViolation.
func ParseDelay(s string) (time.Duration, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return 0, nil
	case "fast":
		return SpeedFast, nil
	case "medium":
		return SpeedMedium, nil
	case "slow":
		return SpeedSlow, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: delay %q: %w", ErrOptionViolation, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: delay cannot be negative (%s)", ErrOptionViolation, d)
	}

	return d, nil
}
