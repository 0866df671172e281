package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lenormf/news2rss/app/cfg"
	"github.com/lenormf/news2rss/app/feed"
	"github.com/lenormf/news2rss/app/metrics"
	"github.com/lenormf/news2rss/app/newsapi"
	"github.com/lenormf/news2rss/app/query"
	"github.com/lenormf/news2rss/app/sources"
)

const (
	FeedTypeRSS = "rss"

	SubsetAll = "all"
	SubsetTop = "top"
)

func NewHandler(provider ProviderInterface, directory *sources.Directory) *Handler {
	return &Handler{
		provider:    provider,
		directory:   directory,
		synthesizer: feed.NewSynthesizer(directory),
	}
}

// GetFeed serves both accepted URL shapes. The path tail after the feed type
// is either "{subset}/{query_path...}" (general form) or
// "{source_id}/{subset}" (legacy single-source form); the two are told apart
// by whether the first segment is a valid subset.
func (h *Handler) GetFeed(c *gin.Context) {
	feedType := c.Param("feed_type")
	rest := strings.Trim(c.Param("rest"), "/")

	if feedType != FeedTypeRSS {
		c.String(http.StatusUnauthorized, "invalid feed type, must be one of: %s", FeedTypeRSS)
		return
	}

	first, tail, _ := strings.Cut(rest, "/")

	var q *query.Query
	var subset string

	if first == SubsetAll || first == SubsetTop {
		subset = first
		q = query.Parse(tail)
	} else {
		if _, ok := h.directory.ByID(first); !ok {
			c.String(http.StatusUnauthorized, "invalid source identifier")
			return
		}
		if tail != SubsetAll && tail != SubsetTop {
			c.String(http.StatusUnauthorized, "invalid subset, must be one of: %s, %s", SubsetAll, SubsetTop)
			return
		}
		subset = tail
		q = query.New()
		q.Set("sources", first)
		q.Set("page_size", query.DefaultPageSize)
	}

	meta := query.NewMeta(requestURL(c), q, h.directory)

	ctx := c.Request.Context()
	params := q.Values()

	var articles []newsapi.Article
	var total int
	var err error

	switch subset {
	case SubsetAll:
		articles, total, err = h.provider.Everything(ctx, params)
	case SubsetTop:
		articles, total, err = h.provider.TopHeadlines(ctx, params)
	}
	if err != nil {
		slog.Error("Unable to fetch articles", "subset", subset, "query", params.Encode(), "error", err)
		c.String(http.StatusUnauthorized, "an error occurred while fetching the articles")
		return
	}

	slog.Debug("Fetched articles", "subset", subset, "count", len(articles), "total", total)

	rss, err := h.synthesizer.Run(q, meta, articles)
	if err != nil {
		slog.Error("Unable to generate feed", "error", err)
		c.String(http.StatusUnauthorized, "an error occurred while generating the feed")
		return
	}

	metrics.FeedArticlesTotal.Add(float64(len(articles)))

	c.Header("X-Feed-Articles", strconv.Itoa(len(articles)))
	c.Data(http.StatusOK, "application/xml; charset=utf-8", rss)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"sources":   h.directory.Len(),
		"version":   cfg.GetVersion(),
	})
}

func requestURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, c.Request.URL.Path)
}
