// Package sources holds the read-only directory of provider sources. The
// directory is populated once at startup and never mutated afterwards, so
// lookups need no locking.
package sources

import (
	"log/slog"

	"github.com/lenormf/news2rss/app/newsapi"
)

type Directory struct {
	byID    map[string]newsapi.Source
	ordered []newsapi.Source
}

func NewDirectory(records []newsapi.Source) *Directory {
	d := &Directory{
		byID:    make(map[string]newsapi.Source, len(records)),
		ordered: make([]newsapi.Source, 0, len(records)),
	}

	for _, record := range records {
		if record.ID == "" {
			slog.Debug("Skipping source without id", "name", record.Name)
			continue
		}
		if _, exists := d.byID[record.ID]; exists {
			continue
		}
		d.byID[record.ID] = record
		d.ordered = append(d.ordered, record)
	}

	return d
}

// ByID returns the source record for the given id.
func (d *Directory) ByID(id string) (newsapi.Source, bool) {
	record, ok := d.byID[id]
	return record, ok
}

func (d *Directory) Len() int {
	return len(d.ordered)
}

// All returns the records in catalog order.
func (d *Directory) All() []newsapi.Source {
	return d.ordered
}
