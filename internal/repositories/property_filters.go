package repositories

import (
	"encoding/json"
	"strings"

	"estateBack/internal/models"
)

// Listings are always featured-first, newest-first, whatever the filters.
const propertyOrderClause = " ORDER BY p.is_featured DESC, p.created_at DESC"

// buildPropertyFilters turns the listing filters into WHERE conditions and
// bound parameters. The select and count queries must share its output so the
// total always agrees with the rows.
func buildPropertyFilters(f models.PropertyFilter) ([]string, []interface{}) {
	conditions := []string{"p.status = ?"}
	params := []interface{}{models.PropertyStatusActive}

	if f.Type != "" {
		conditions = append(conditions, "p.type = ?")
		params = append(params, f.Type)
	}
	if f.Category != "" {
		conditions = append(conditions, "p.category = ?")
		params = append(params, f.Category)
	}
	if f.City != "" {
		conditions = append(conditions, "p.city LIKE ?")
		params = append(params, "%"+f.City+"%")
	}
	if f.MinPrice != nil {
		conditions = append(conditions, "p.price >= ?")
		params = append(params, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		conditions = append(conditions, "p.price <= ?")
		params = append(params, *f.MaxPrice)
	}
	if f.BedRooms != nil {
		conditions = append(conditions, "p.bed_rooms = ?")
		params = append(params, *f.BedRooms)
	}
	if f.Search != "" {
		// Own parentheses so the OR group keeps AND precedence intact.
		conditions = append(conditions, "(p.title LIKE ? OR p.description LIKE ? OR p.address LIKE ?)")
		pattern := "%" + f.Search + "%"
		params = append(params, pattern, pattern, pattern)
	}

	return conditions, params
}

func wherePropertyClause(conditions []string) string {
	return " WHERE " + strings.Join(conditions, " AND ")
}

// buildPropertyUpdate maps the non-nil fields of a partial update onto SET
// clauses. Only the allow-listed columns can ever be written.
func buildPropertyUpdate(u models.PropertyUpdate) ([]string, []interface{}) {
	var (
		clauses []string
		params  []interface{}
	)

	set := func(column string, value interface{}) {
		clauses = append(clauses, column+" = ?")
		params = append(params, value)
	}

	if u.Title != nil {
		set("title", *u.Title)
	}
	if u.Description != nil {
		set("description", *u.Description)
	}
	if u.Price != nil {
		set("price", *u.Price)
	}
	if u.Type != nil {
		set("type", *u.Type)
	}
	if u.Category != nil {
		set("category", *u.Category)
	}
	if u.Address != nil {
		set("address", *u.Address)
	}
	if u.City != nil {
		set("city", *u.City)
	}
	if u.District != nil {
		set("district", *u.District)
	}
	if u.BedRooms != nil {
		set("bed_rooms", *u.BedRooms)
	}
	if u.BathRooms != nil {
		set("bath_rooms", *u.BathRooms)
	}
	if u.LandSize != nil {
		set("land_size", *u.LandSize)
	}
	if u.BuildingSize != nil {
		set("building_size", *u.BuildingSize)
	}
	if u.Facilities != nil {
		set("facilities", marshalFacilities(*u.Facilities))
	}
	if u.Status != nil {
		set("status", *u.Status)
	}
	if u.IsFeatured != nil {
		set("is_featured", *u.IsFeatured)
	}

	return clauses, params
}

// marshalFacilities serializes the facilities list for the TEXT column.
// Nil becomes an empty array so reads never see NULL.
func marshalFacilities(facilities []string) string {
	if facilities == nil {
		facilities = []string{}
	}
	data, err := json.Marshal(facilities)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func unmarshalFacilities(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var facilities []string
	if err := json.Unmarshal([]byte(raw), &facilities); err != nil {
		return []string{}
	}
	if facilities == nil {
		facilities = []string{}
	}
	return facilities
}
