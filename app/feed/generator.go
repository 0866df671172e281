package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"time"

	"github.com/lenormf/news2rss/app/cfg"
)

// Article authors come without email addresses, yet the RSS author element
// wants one.
const placeholderAuthorEmail = "e@ma.il"

// Generator serializes a Feed to RSS 2.0 XML. Output is deterministic: the
// same feed always serializes to the same bytes.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Run(feed Feed) ([]byte, error) {
	var buf bytes.Buffer

	if feed.Title == "" {
		return nil, &RenderError{Reason: MissingField, Field: "title"}
	}
	if feed.Link == "" {
		return nil, &RenderError{Reason: MissingField, Field: "link"}
	}
	if feed.Description == "" {
		return nil, &RenderError{Reason: MissingField, Field: "description"}
	}

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", feed.Title, 4)
	g.writeElement(&buf, "link", feed.Link, 4)
	g.writeElement(&buf, "description", feed.Description, 4)

	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(feed.Link)))

	g.writeElement(&buf, "generator", fmt.Sprintf("news2rss/%s", cfg.GetVersion()), 4)

	// RSS 2.0 has no channel-level id element; Feed.ID is not serialized.

	if feed.Category != "" {
		g.writeElement(&buf, "category", feed.Category, 4)
	}

	if feed.Language != "" {
		g.writeElement(&buf, "language", feed.Language, 4)
	}

	for _, entry := range feed.Entries {
		if err := g.writeEntry(&buf, entry); err != nil {
			return nil, err
		}
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.Bytes(), nil
}

func (g *Generator) writeEntry(buf *bytes.Buffer, entry Entry) error {
	buf.WriteString("    <item>\n")

	g.writeElement(buf, "title", entry.Title, 6)

	if entry.Link != "" {
		g.writeElement(buf, "link", entry.Link, 6)
	}

	g.writeElement(buf, "description", entry.Description, 6)

	buf.WriteString("      <content:encoded><![CDATA[")
	buf.WriteString(entry.Content)
	buf.WriteString("]]></content:encoded>\n")

	if entry.Author != "" {
		g.writeElement(buf, "author", fmt.Sprintf("%s (%s)", placeholderAuthorEmail, entry.Author), 6)
	}

	if entry.PublishedAt != "" {
		publishedAt, err := time.Parse(time.RFC3339, entry.PublishedAt)
		if err != nil {
			return &RenderError{Reason: SerializationFailed, Err: fmt.Errorf("invalid publication date %q: %w", entry.PublishedAt, err)}
		}
		g.writeElement(buf, "pubDate", publishedAt.Format(time.RFC1123Z), 6)
	}

	buf.WriteString("    </item>\n")

	return nil
}

func (g *Generator) writeElement(buf *bytes.Buffer, tag, content string, indent int) {
	if content == "" {
		return
	}

	for i := 0; i < indent; i++ {
		buf.WriteByte(' ')
	}

	buf.WriteString("<")
	buf.WriteString(tag)
	buf.WriteString(">")
	xml.EscapeText(buf, []byte(content))
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteString(">\n")
}
