package query

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/lenormf/news2rss/app/sources"
)

// Meta is the per-request pair of canonical request URL and human-readable
// query description, derived once and passed down unchanged.
type Meta struct {
	URL         string
	Description string
}

func NewMeta(requestURL string, q *Query, directory *sources.Directory) Meta {
	return Meta{
		URL:         requestURL,
		Description: Describe(q, directory),
	}
}

// Describe renders a sentence fragment summarizing the query filters. A
// sources filter takes precedence over a country filter; category and search
// term clauses are appended independently.
func Describe(q *Query, directory *sources.Directory) string {
	var clauses []string

	if ids, ok := q.Get("sources"); ok {
		var names []string
		for _, id := range strings.Split(ids, ",") {
			if record, ok := directory.ByID(id); ok {
				names = append(names, record.Name)
			} else {
				names = append(names, id)
			}
		}
		clauses = append(clauses, "from "+strings.Join(names, ", "))
	} else if code, ok := q.Get("country"); ok {
		clauses = append(clauses, fmt.Sprintf("from country '%s'", countryName(code)))
	}

	if category, ok := q.Get("category"); ok {
		clauses = append(clauses, fmt.Sprintf("in category '%s'", category))
	}

	if term, ok := q.Get("q"); ok {
		clauses = append(clauses, fmt.Sprintf("that match '%s'", term))
	}

	return "News articles " + strings.Join(clauses, ", ")
}

// countryName resolves a two-letter country code to its English name,
// falling back to the raw code.
func countryName(code string) string {
	region, err := language.ParseRegion(code)
	if err != nil {
		return code
	}

	if name := display.Regions(language.English).Name(region); name != "" {
		return name
	}

	return code
}
