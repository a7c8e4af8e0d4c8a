package repositories

import (
	"strings"
	"testing"

	"estateBack/internal/models"
)

func TestBuildPropertyFilters(t *testing.T) {
	t.Run("no filters keeps only the status condition", func(t *testing.T) {
		conditions, params := buildPropertyFilters(models.PropertyFilter{})

		if len(conditions) != 1 {
			t.Fatalf("expected 1 condition, got %d", len(conditions))
		}
		if conditions[0] != "p.status = ?" {
			t.Fatalf("expected status condition, got %q", conditions[0])
		}
		if len(params) != 1 || params[0] != models.PropertyStatusActive {
			t.Fatalf("expected active status param, got %v", params)
		}
	})

	t.Run("every filter adds a condition and a param", func(t *testing.T) {
		minPrice := 100000.0
		maxPrice := 500000.0
		bedRooms := 3

		conditions, params := buildPropertyFilters(models.PropertyFilter{
			Type:     "sale",
			Category: "house",
			City:     "Almaty",
			MinPrice: &minPrice,
			MaxPrice: &maxPrice,
			BedRooms: &bedRooms,
		})

		if len(conditions) != 7 {
			t.Fatalf("expected 7 conditions, got %d", len(conditions))
		}
		if len(params) != 7 {
			t.Fatalf("expected 7 params, got %d", len(params))
		}
		if params[3] != "%Almaty%" {
			t.Fatalf("expected wrapped city pattern, got %v", params[3])
		}
	})

	t.Run("search adds a parenthesized OR group with three params", func(t *testing.T) {
		conditions, params := buildPropertyFilters(models.PropertyFilter{Search: "garden"})

		last := conditions[len(conditions)-1]
		if !strings.HasPrefix(last, "(") || !strings.HasSuffix(last, ")") {
			t.Fatalf("expected parenthesized search group, got %q", last)
		}
		if len(params) != 4 {
			t.Fatalf("expected 4 params, got %d", len(params))
		}
		for _, p := range params[1:] {
			if p != "%garden%" {
				t.Fatalf("expected search pattern, got %v", p)
			}
		}
	})

	t.Run("zero valued pointers still bind", func(t *testing.T) {
		bedRooms := 0
		conditions, params := buildPropertyFilters(models.PropertyFilter{BedRooms: &bedRooms})

		if len(conditions) != 2 {
			t.Fatalf("expected 2 conditions, got %d", len(conditions))
		}
		if params[1] != 0 {
			t.Fatalf("expected bed rooms 0, got %v", params[1])
		}
	})
}

func TestWherePropertyClause(t *testing.T) {
	clause := wherePropertyClause([]string{"p.status = ?", "p.type = ?"})
	if clause != " WHERE p.status = ? AND p.type = ?" {
		t.Fatalf("unexpected clause %q", clause)
	}
}

func TestBuildPropertyUpdate(t *testing.T) {
	t.Run("nil fields produce no clauses", func(t *testing.T) {
		clauses, params := buildPropertyUpdate(models.PropertyUpdate{})

		if len(clauses) != 0 {
			t.Fatalf("expected 0 clauses, got %d", len(clauses))
		}
		if len(params) != 0 {
			t.Fatalf("expected 0 params, got %d", len(params))
		}
	})

	t.Run("set fields map to columns in order", func(t *testing.T) {
		title := "Updated villa"
		price := 250000.0
		featured := true

		clauses, params := buildPropertyUpdate(models.PropertyUpdate{
			Title:      &title,
			Price:      &price,
			IsFeatured: &featured,
		})

		want := []string{"title = ?", "price = ?", "is_featured = ?"}
		if len(clauses) != len(want) {
			t.Fatalf("expected %d clauses, got %d", len(want), len(clauses))
		}
		for i := range want {
			if clauses[i] != want[i] {
				t.Fatalf("expected clause %q, got %q", want[i], clauses[i])
			}
		}
		if params[0] != "Updated villa" || params[1] != 250000.0 || params[2] != true {
			t.Fatalf("unexpected params %v", params)
		}
	})

	t.Run("facilities serialize to json", func(t *testing.T) {
		facilities := []string{"pool", "garage"}
		clauses, params := buildPropertyUpdate(models.PropertyUpdate{Facilities: &facilities})

		if len(clauses) != 1 || clauses[0] != "facilities = ?" {
			t.Fatalf("expected facilities clause, got %v", clauses)
		}
		if params[0] != `["pool","garage"]` {
			t.Fatalf("expected json array, got %v", params[0])
		}
	})
}

func TestFacilitiesRoundTrip(t *testing.T) {
	if got := marshalFacilities(nil); got != "[]" {
		t.Fatalf("expected empty array for nil, got %q", got)
	}

	facilities := unmarshalFacilities("")
	if facilities == nil || len(facilities) != 0 {
		t.Fatalf("expected empty slice for empty column, got %v", facilities)
	}

	facilities = unmarshalFacilities("not json")
	if facilities == nil || len(facilities) != 0 {
		t.Fatalf("expected empty slice for bad column, got %v", facilities)
	}

	facilities = unmarshalFacilities(`["pool"]`)
	if len(facilities) != 1 || facilities[0] != "pool" {
		t.Fatalf("expected [pool], got %v", facilities)
	}
}
