package feed

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"
)

func testFeed() Feed {
	return Feed{
		Title:       "ABC News",
		Link:        "https://abcnews.go.com",
		Description: "Your trusted source for breaking news",
		Category:    "general",
		Language:    "en",
		Entries: []Entry{
			{
				Title:       "Test Article 1",
				Content:     "Test Article 1 Content",
				Description: "Test Article 1 Description",
				Author:      "Jane Reporter",
				Link:        "https://abcnews.go.com/article1",
				PublishedAt: "2023-07-03T10:00:00Z",
			},
			{
				Title:       "Test Article 2",
				Content:     "Test Article 2 Content",
				Description: "Test Article 2 Description",
			},
		},
	}
}

func TestGenerateRSS(t *testing.T) {
	generator := NewGenerator()

	rssBytes, err := generator.Run(testFeed())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	rss := string(rssBytes)

	// Verify RSS structure
	if !strings.Contains(rss, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("RSS should contain XML declaration")
	}

	if !strings.Contains(rss, `<rss version="2.0"`) {
		t.Error("RSS should contain RSS 2.0 declaration")
	}

	if !strings.Contains(rss, `xmlns:content="http://purl.org/rss/1.0/modules/content/"`) {
		t.Error("RSS should contain content namespace")
	}

	if !strings.Contains(rss, `xmlns:atom="http://www.w3.org/2005/Atom"`) {
		t.Error("RSS should contain atom namespace")
	}

	// Verify channel metadata
	if !strings.Contains(rss, "<title>ABC News</title>") {
		t.Error("RSS should contain feed title")
	}

	if !strings.Contains(rss, "<link>https://abcnews.go.com</link>") {
		t.Error("RSS should contain feed link")
	}

	if !strings.Contains(rss, "<description>Your trusted source for breaking news</description>") {
		t.Error("RSS should contain feed description")
	}

	if !strings.Contains(rss, `<atom:link href="https://abcnews.go.com" rel="self" type="application/rss+xml" />`) {
		t.Error("RSS should contain atom:link self reference")
	}

	if !strings.Contains(rss, "<category>general</category>") {
		t.Error("RSS should contain feed category")
	}

	if !strings.Contains(rss, "<language>en</language>") {
		t.Error("RSS should contain feed language")
	}

	// Verify entries
	if !strings.Contains(rss, "<title>Test Article 1</title>") {
		t.Error("RSS should contain first entry title")
	}

	if !strings.Contains(rss, "<link>https://abcnews.go.com/article1</link>") {
		t.Error("RSS should contain first entry link")
	}

	if !strings.Contains(rss, "<description>Test Article 1 Description</description>") {
		t.Error("RSS should contain first entry description")
	}

	if !strings.Contains(rss, "<content:encoded><![CDATA[Test Article 1 Content]]></content:encoded>") {
		t.Error("RSS should contain first entry content")
	}

	if !strings.Contains(rss, "<author>e@ma.il (Jane Reporter)</author>") {
		t.Error("RSS should contain first entry author")
	}

	if !strings.Contains(rss, "<pubDate>Mon, 03 Jul 2023 10:00:00 +0000</pubDate>") {
		t.Error("RSS should contain first entry pubDate")
	}

	// Second entry has no optional fields
	if !strings.Contains(rss, "<title>Test Article 2</title>") {
		t.Error("RSS should contain second entry title")
	}
}

func TestGenerateRSSIsParseable(t *testing.T) {
	generator := NewGenerator()

	rssBytes, err := generator.Run(testFeed())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(rssBytes))
	if err != nil {
		t.Fatalf("Generated RSS should be parseable: %v", err)
	}

	if parsed.Title != "ABC News" {
		t.Errorf("Expected parsed title 'ABC News', got '%s'", parsed.Title)
	}
	if len(parsed.Items) != 2 {
		t.Fatalf("Expected 2 parsed items, got %d", len(parsed.Items))
	}
	if parsed.Items[0].Title != "Test Article 1" {
		t.Errorf("Expected first item title 'Test Article 1', got '%s'", parsed.Items[0].Title)
	}
	if parsed.Items[0].Content != "Test Article 1 Content" {
		t.Errorf("Expected first item content to round-trip, got '%s'", parsed.Items[0].Content)
	}
}

func TestGenerateRSSEscapesMarkup(t *testing.T) {
	generator := NewGenerator()

	feed := testFeed()
	feed.Title = "News & <Views>"
	feed.Entries = nil

	rssBytes, err := generator.Run(feed)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.Contains(string(rssBytes), "<title>News &amp; &lt;Views&gt;</title>") {
		t.Errorf("Expected escaped title in:\n%s", rssBytes)
	}
}

func TestGenerateRSSMissingChannelField(t *testing.T) {
	generator := NewGenerator()

	feed := testFeed()
	feed.Description = ""

	_, err := generator.Run(feed)

	var renderErr *RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("Expected a RenderError, got: %v", err)
	}
	if renderErr.Reason != MissingField {
		t.Errorf("Expected MissingField reason, got %d", renderErr.Reason)
	}
}

func TestGenerateRSSInvalidPublicationDate(t *testing.T) {
	generator := NewGenerator()

	feed := testFeed()
	feed.Entries[0].PublishedAt = "yesterday"

	_, err := generator.Run(feed)

	var renderErr *RenderError
	if !errors.As(err, &renderErr) {
		t.Fatalf("Expected a RenderError, got: %v", err)
	}
	if renderErr.Reason != SerializationFailed {
		t.Errorf("Expected SerializationFailed reason, got %d", renderErr.Reason)
	}
}
