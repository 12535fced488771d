package domain

import (
	"fmt"
	"strings"
)

type DurationBucket int

const (
	DurationAny DurationBucket = iota
	DurationShort
	DurationMedium
	DurationLong
)

const (
	shortLimitSeconds = 240
	longLimitSeconds  = 1200
)

var DurationBuckets = []DurationBucket{DurationAny, DurationShort, DurationMedium, DurationLong}

func (b DurationBucket) String() string {
	switch b {
	case DurationShort:
		return "Short (<4min)"
	case DurationMedium:
		return "Medium (4-20min)"
	case DurationLong:
		return "Long (>20min)"
	default:
		return "Any"
	}
}

// Allows reports whether a video of the given length survives the bucket filter.
// Boundaries are inclusive on both sides of Medium.
func (b DurationBucket) Allows(seconds float64) bool {
	switch b {
	case DurationShort:
		return seconds <= shortLimitSeconds
	case DurationMedium:
		return seconds >= shortLimitSeconds && seconds <= longLimitSeconds
	case DurationLong:
		return seconds >= longLimitSeconds
	default:
		return true
	}
}

func (b DurationBucket) Next() DurationBucket {
	return DurationBuckets[(int(b)+1)%len(DurationBuckets)]
}

func (b DurationBucket) Prev() DurationBucket {
	n := len(DurationBuckets)
	return DurationBuckets[(int(b)+n-1)%n]
}

func ParseDurationBucket(s string) (DurationBucket, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, b := range DurationBuckets {
		if v == strings.ToLower(b.String()) {
			return b, nil
		}
	}

	switch v {
	case "", "any":
		return DurationAny, nil
	case "short":
		return DurationShort, nil
	case "medium":
		return DurationMedium, nil
	case "long":
		return DurationLong, nil
	}

	return DurationAny, fmt.Errorf("unknown duration filter %q (use any, short, medium or long)", s)
}
