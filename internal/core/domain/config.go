package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinLookbackDays     = 1
	MaxLookbackDays     = 30
	DefaultLookbackDays = 5
	DefaultMaxSubs      = 3000
	DefaultMinViews     = 1000
	SearchMaxResults    = 5
)

var (
	ErrMissingCredential = errors.New("API key is required")
	ErrNoResults         = errors.New("no results")
)

// DefaultKeywords is the keyword list the form starts with.
var DefaultKeywords = []string{
	"Affair Relationship Stories",
	"Reddit Relationship Advice",
	"Reddit Cheating",
	"Reddit Marriage",
	"True Cheating Story",
	"Wife Cheated I Can't Forgive",
}

type RunConfig struct {
	Credential     string
	Days           int
	Keywords       []string
	MaxSubscribers uint64
	MinViews       uint64
	Duration       DurationBucket
	SortBy         SortKey
}

func DefaultRunConfig() RunConfig {
	return RunConfig{
		Days:           DefaultLookbackDays,
		Keywords:       append([]string(nil), DefaultKeywords...),
		MaxSubscribers: DefaultMaxSubs,
		MinViews:       DefaultMinViews,
		Duration:       DurationAny,
		SortBy:         SortByViews,
	}
}

func (c RunConfig) Validate() error {
	if strings.TrimSpace(c.Credential) == "" {
		return ErrMissingCredential
	}
	if c.Days < MinLookbackDays || c.Days > MaxLookbackDays {
		return fmt.Errorf("lookback window must be between %d and %d days, got %d", MinLookbackDays, MaxLookbackDays, c.Days)
	}
	return nil
}

// ParseKeywords splits newline-delimited input, trimming blanks away.
func ParseKeywords(text string) []string {
	var keywords []string
	for _, line := range strings.Split(text, "\n") {
		if k := strings.TrimSpace(line); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// Report is what one fetch run hands to the presenter.
type Report struct {
	Records  []VideoRecord
	Warnings []string
	Keywords int
}
