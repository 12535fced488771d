package domain

import (
	"fmt"
	"sort"
	"strings"
)

type SortKey int

const (
	SortByViews SortKey = iota
	SortByRatio
	SortByRecency
)

var SortKeys = []SortKey{SortByViews, SortByRatio, SortByRecency}

func (k SortKey) String() string {
	switch k {
	case SortByRatio:
		return "View-to-Sub Ratio"
	case SortByRecency:
		return "Recency"
	default:
		return "Views"
	}
}

func (k SortKey) Next() SortKey {
	return SortKeys[(int(k)+1)%len(SortKeys)]
}

func (k SortKey) Prev() SortKey {
	n := len(SortKeys)
	return SortKeys[(int(k)+n-1)%n]
}

func ParseSortKey(s string) (SortKey, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, k := range SortKeys {
		if v == strings.ToLower(k.String()) {
			return k, nil
		}
	}

	switch v {
	case "", "views":
		return SortByViews, nil
	case "ratio":
		return SortByRatio, nil
	case "recency", "date", "published":
		return SortByRecency, nil
	}

	return SortByViews, fmt.Errorf("unknown sort key %q (use views, ratio or recency)", s)
}

type Records []VideoRecord

func (r Records) SortByViews() {
	sort.SliceStable(r, func(i, j int) bool {
		return r[i].ViewCount > r[j].ViewCount
	})
}

func (r Records) SortByRatio() {
	sort.SliceStable(r, func(i, j int) bool {
		return r[i].ViewToSubRatio > r[j].ViewToSubRatio
	})
}

// SortByRecency compares the ISO-8601 strings, which orders UTC timestamps chronologically.
func (r Records) SortByRecency() {
	sort.SliceStable(r, func(i, j int) bool {
		return r[i].PublishedAt > r[j].PublishedAt
	})
}

// Rank sorts records in place, descending by key, and returns them.
func Rank(records []VideoRecord, key SortKey) []VideoRecord {
	r := Records(records)
	switch key {
	case SortByRatio:
		r.SortByRatio()
	case SortByRecency:
		r.SortByRecency()
	default:
		r.SortByViews()
	}
	return records
}
