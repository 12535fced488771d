package ports

import (
	"context"
	"net/url"
)

type FetcherPort interface {
	Fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error)
}
