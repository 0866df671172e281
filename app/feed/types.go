package feed

// Feed is the channel-level metadata plus the ordered entries rendered from
// the article list. Built fresh per request, never persisted.
type Feed struct {
	Title       string
	Link        string
	Description string
	ID          string
	Category    string
	Language    string

	Entries []Entry
}

// Entry is one article's representation within a feed. Title, Content and
// Description are required; the rest renders only when present.
type Entry struct {
	Title       string
	Content     string
	Description string
	Author      string
	Link        string
	PublishedAt string
}
