package ports

import (
	"TUI_viral_topics/internal/core/domain"
	"context"

	"google.golang.org/api/youtube/v3"
)

// YoutubePort returns the platform's own schema types; their layout is an
// external contract, so the usecase extracts fields itself.
type YoutubePort interface {
	SearchVideos(ctx context.Context, credential string, query domain.SearchQuery) ([]*youtube.SearchResult, error)
	GetVideos(ctx context.Context, credential string, videoIDs []string) ([]*youtube.Video, error)
	GetChannels(ctx context.Context, credential string, channelIDs []string) ([]*youtube.Channel, error)
}
