package handlers

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		page, limit := parsePagination(url.Values{})
		if page != 1 || limit != 10 {
			t.Fatalf("expected 1/10, got %d/%d", page, limit)
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		q := url.Values{"page": {"3"}, "limit": {"25"}}
		page, limit := parsePagination(q)
		if page != 3 || limit != 25 {
			t.Fatalf("expected 3/25, got %d/%d", page, limit)
		}
	})

	t.Run("garbage falls back to defaults", func(t *testing.T) {
		q := url.Values{"page": {"abc"}, "limit": {"-5"}}
		page, limit := parsePagination(q)
		if page != 1 || limit != 10 {
			t.Fatalf("expected 1/10, got %d/%d", page, limit)
		}
	})
}

func TestParseOptionalFloat(t *testing.T) {
	t.Run("absent is nil", func(t *testing.T) {
		v, err := parseOptionalFloat(url.Values{}, "minPrice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != nil {
			t.Fatalf("expected nil, got %v", *v)
		}
	})

	t.Run("valid value binds", func(t *testing.T) {
		q := url.Values{"minPrice": {"100000.5"}}
		v, err := parseOptionalFloat(q, "minPrice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v == nil || *v != 100000.5 {
			t.Fatalf("expected 100000.5, got %v", v)
		}
	})

	t.Run("garbage is an error not nil", func(t *testing.T) {
		q := url.Values{"minPrice": {"cheap"}}
		v, err := parseOptionalFloat(q, "minPrice")
		if err == nil {
			t.Fatal("expected error for garbage value")
		}
		if v != nil {
			t.Fatalf("expected nil value on error, got %v", *v)
		}
	})
}

func TestParseOptionalInt(t *testing.T) {
	t.Run("zero is a real value", func(t *testing.T) {
		q := url.Values{"bedRooms": {"0"}}
		v, err := parseOptionalInt(q, "bedRooms")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v == nil || *v != 0 {
			t.Fatalf("expected 0, got %v", v)
		}
	})

	t.Run("float is rejected", func(t *testing.T) {
		q := url.Values{"bedRooms": {"2.5"}}
		if _, err := parseOptionalInt(q, "bedRooms"); err == nil {
			t.Fatal("expected error for non-integer value")
		}
	})
}
