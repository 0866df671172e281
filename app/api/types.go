package api

import (
	"context"
	"net/url"

	"github.com/lenormf/news2rss/app/feed"
	"github.com/lenormf/news2rss/app/newsapi"
	"github.com/lenormf/news2rss/app/sources"
)

// ProviderInterface is the slice of the upstream client the handlers need.
// The provider is passed in explicitly; handlers never discover it.
type ProviderInterface interface {
	Everything(ctx context.Context, params url.Values) ([]newsapi.Article, int, error)
	TopHeadlines(ctx context.Context, params url.Values) ([]newsapi.Article, int, error)
}

var _ ProviderInterface = (*newsapi.Client)(nil)

type Handler struct {
	provider    ProviderInterface
	directory   *sources.Directory
	synthesizer *feed.Synthesizer
}
