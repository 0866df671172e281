package feed

import (
	"cmp"
	"log/slog"
	"strings"

	"github.com/lenormf/news2rss/app/newsapi"
	"github.com/lenormf/news2rss/app/query"
	"github.com/lenormf/news2rss/app/sources"
)

// Synthesizer turns an article list into a serialized feed. Feed-level
// metadata depends on how many distinct sources the articles reference.
type Synthesizer struct {
	directory *sources.Directory
	generator *Generator
}

func NewSynthesizer(directory *sources.Directory) *Synthesizer {
	return &Synthesizer{
		directory: directory,
		generator: NewGenerator(),
	}
}

// entryField describes how one article field maps onto an entry. Required
// fields abort rendering when absent.
type entryField struct {
	name     string
	required bool
	value    func(a newsapi.Article) string
	assign   func(e *Entry, v string)
}

var entryFields = []entryField{
	{"title", true, func(a newsapi.Article) string { return a.Title }, func(e *Entry, v string) { e.Title = v }},
	{"content", true, func(a newsapi.Article) string { return a.Content }, func(e *Entry, v string) { e.Content = v }},
	{"description", true, func(a newsapi.Article) string { return a.Description }, func(e *Entry, v string) { e.Description = v }},
	{"author", false, func(a newsapi.Article) string { return a.Author }, func(e *Entry, v string) { e.Author = v }},
	{"url", false, func(a newsapi.Article) string { return a.URL }, func(e *Entry, v string) { e.Link = v }},
	{"publishedAt", false, func(a newsapi.Article) string { return a.PublishedAt }, func(e *Entry, v string) { e.PublishedAt = v }},
}

func renderEntry(article newsapi.Article) (Entry, error) {
	var entry Entry

	for _, field := range entryFields {
		value := field.value(article)
		if value == "" {
			if field.required {
				return Entry{}, &RenderError{Reason: MissingField, Field: field.name}
			}
			continue
		}
		field.assign(&entry, value)
	}

	return entry, nil
}

// Run renders every article into an entry, accumulates the distinct set of
// referenced sources, decides feed-level metadata by source cardinality, and
// serializes the result. One invalid article invalidates the whole response.
func (s *Synthesizer) Run(q *query.Query, meta query.Meta, articles []newsapi.Article) ([]byte, error) {
	feed := Feed{
		Entries: make([]Entry, 0, len(articles)),
	}

	var distinct []newsapi.ArticleSource
	seen := make(map[newsapi.ArticleSource]bool)

	for _, article := range articles {
		slog.Debug("Rendering article", "title", article.Title, "source", article.Source.ID)

		entry, err := renderEntry(article)
		if err != nil {
			slog.Error("Unable to render article", "title", article.Title, "error", err)
			return nil, err
		}
		feed.Entries = append(feed.Entries, entry)

		if !seen[article.Source] {
			seen[article.Source] = true
			distinct = append(distinct, article.Source)
		}
	}

	switch len(distinct) {
	case 0:
		feed.Title = meta.Description
		feed.Link = meta.URL
		feed.Description = meta.Description
		s.copyQueryFields(&feed, q)
	case 1:
		src := distinct[0]
		if record, ok := s.directory.ByID(src.ID); ok {
			feed.Title = record.Name
			feed.Link = record.URL
			feed.Description = record.Description
			feed.ID = record.ID
			feed.Category = record.Category
			feed.Language = record.Language
		} else {
			feed.Title = meta.Description
			feed.Link = meta.URL
			feed.Description = "News articles from " + cmp.Or(src.Name, src.ID)
		}
	default:
		names := make([]string, 0, len(distinct))
		for _, src := range distinct {
			name := src.Name
			if name == "" {
				if record, ok := s.directory.ByID(src.ID); ok {
					name = record.Name
				} else {
					name = src.ID
				}
			}
			names = append(names, name)
		}
		feed.Title = meta.Description
		feed.Link = meta.URL
		feed.Description = "News articles from " + strings.Join(names, ", ")
		s.copyQueryFields(&feed, q)
	}

	return s.generator.Run(feed)
}

func (s *Synthesizer) copyQueryFields(feed *Feed, q *query.Query) {
	if category, ok := q.Get("category"); ok {
		feed.Category = category
	}
	if language, ok := q.Get("language"); ok {
		feed.Language = language
	}
}
