package query

import (
	"testing"
)

func TestParseKeyValuePairs(t *testing.T) {
	q := Parse("sources/abc-news,wired/q/golang")

	if value, _ := q.Get("sources"); value != "abc-news,wired" {
		t.Errorf("Expected sources 'abc-news,wired', got '%s'", value)
	}
	if value, _ := q.Get("q"); value != "golang" {
		t.Errorf("Expected q 'golang', got '%s'", value)
	}
}

func TestParseDropsTrailingUnmatchedToken(t *testing.T) {
	q := Parse("country/us/category")

	if value, _ := q.Get("country"); value != "us" {
		t.Errorf("Expected country 'us', got '%s'", value)
	}
	if q.Has("category") {
		t.Error("Expected unmatched trailing token to be dropped")
	}
}

func TestParseDefaultsPageSize(t *testing.T) {
	q := Parse("country/us")

	pageSize, ok := q.Int("page_size")
	if !ok {
		t.Fatal("Expected page_size to be present after parsing")
	}
	if pageSize != DefaultPageSize {
		t.Errorf("Expected page_size %d, got %d", DefaultPageSize, pageSize)
	}
}

func TestParseEmptyTailYieldsDefaultQuery(t *testing.T) {
	q := Parse("")

	if len(q.Keys()) != 1 {
		t.Errorf("Expected only page_size, got keys %v", q.Keys())
	}
	if pageSize, _ := q.Int("page_size"); pageSize != DefaultPageSize {
		t.Errorf("Expected page_size %d, got %d", DefaultPageSize, pageSize)
	}
}

func TestParseDoesNotClampPageSize(t *testing.T) {
	q := Parse("page_size/250")

	if pageSize, _ := q.Int("page_size"); pageSize != 250 {
		t.Errorf("Expected page_size 250, got %d", pageSize)
	}
}

func TestParseDropsNonNumericPage(t *testing.T) {
	q := Parse("page/abc/country/us")

	if q.Has("page") {
		t.Error("Expected non-numeric page to be dropped")
	}
	if value, _ := q.Get("country"); value != "us" {
		t.Errorf("Expected country 'us', got '%s'", value)
	}
}

func TestParseNonNumericPageSizeFallsBackToDefault(t *testing.T) {
	q := Parse("page_size/lots")

	if pageSize, _ := q.Int("page_size"); pageSize != DefaultPageSize {
		t.Errorf("Expected page_size %d, got %d", DefaultPageSize, pageSize)
	}
}

func TestValuesRendersProviderParameters(t *testing.T) {
	q := Parse("sources/wired/page/2")

	params := q.Values()
	if params.Get("sources") != "wired" {
		t.Errorf("Expected sources 'wired', got '%s'", params.Get("sources"))
	}
	if params.Get("page") != "2" {
		t.Errorf("Expected page '2', got '%s'", params.Get("page"))
	}
	if params.Get("pageSize") != "100" {
		t.Errorf("Expected pageSize '100', got '%s'", params.Get("pageSize"))
	}
	if params.Get("page_size") != "" {
		t.Error("Expected page_size to be renamed to pageSize")
	}
}

func TestSetPreservesInsertionOrder(t *testing.T) {
	q := New()
	q.Set("b", "2")
	q.Set("a", "1")
	q.Set("b", "3")

	keys := q.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("Expected keys [b a], got %v", keys)
	}
	if value, _ := q.Get("b"); value != "3" {
		t.Errorf("Expected replaced value '3', got '%s'", value)
	}
}
