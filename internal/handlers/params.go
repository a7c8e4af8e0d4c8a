package handlers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// actorFromContext reads the identity the JWT middleware stored.
func actorFromContext(ctx context.Context) (int, string) {
	id, _ := ctx.Value("user_id").(int)
	role, _ := ctx.Value("role").(string)
	return id, role
}

func parsePagination(q url.Values) (int, int) {
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

// parseOptionalFloat rejects garbage instead of binding it: an absent value
// is nil, a malformed one is an error.
func parseOptionalFloat(q url.Values, name string) (*float64, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &value, nil
}

func parseOptionalInt(q url.Values, name string) (*int, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return &value, nil
}
