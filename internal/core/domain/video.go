package domain

import (
	"fmt"
	"strconv"
	"time"
)

const (
	watchURLPrefix    = "https://www.youtube.com/watch?v="
	maxDescriptionLen = 200
)

// SearchQuery is built once per keyword and thrown away after the search call.
type SearchQuery struct {
	Keyword        string
	PublishedAfter time.Time
	MaxResults     int64
}

func (q SearchQuery) PublishedAfterParam() string {
	return q.PublishedAfter.UTC().Truncate(time.Second).Format(time.RFC3339)
}

type Candidate struct {
	VideoID   string
	ChannelID string
}

type VideoRecord struct {
	ID              string
	Title           string
	Description     string
	ThumbnailURL    string
	PublishedAt     string
	ViewCount       uint64
	DurationSeconds float64
	SubscriberCount uint64
	ViewToSubRatio  float64
}

// CSVHeader is the column order of the exported file.
var CSVHeader = []string{"Title", "Description", "URL", "Thumbnail", "Published", "Views", "Subscribers", "Ratio"}

func (v VideoRecord) URL() string {
	return watchURLPrefix + v.ID
}

func (v VideoRecord) RatioString() string {
	return strconv.FormatFloat(v.ViewToSubRatio, 'f', -1, 64)
}

func (v VideoRecord) CSVRow() []string {
	return []string{
		v.Title,
		v.Description,
		v.URL(),
		v.ThumbnailURL,
		v.PublishedAt,
		strconv.FormatUint(v.ViewCount, 10),
		strconv.FormatUint(v.SubscriberCount, 10),
		v.RatioString(),
	}
}

func (v VideoRecord) String() string {
	return fmt.Sprintf("%s (%s)", v.Title, v.ID)
}

// TruncateDescription keeps the first 200 characters, counted in runes.
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= maxDescriptionLen {
		return s
	}
	return string(runes[:maxDescriptionLen])
}

// ViewToSubRatio is views/subs rounded to 2 decimals, or 0 for channels without subscribers.
func ViewToSubRatio(views, subs uint64) float64 {
	if subs == 0 {
		return 0
	}
	ratio := float64(views) / float64(subs)
	// format/parse rounds half-even on the binary value like round(x, 2); math.Round differs on ties
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(ratio, 'f', 2, 64), 64)
	if err != nil {
		return ratio
	}
	return rounded
}
