package repositories

import (
	"context"
	"database/sql"

	"estateBack/internal/models"
)

// AdminRepository serves the dashboard aggregates. Each count is an
// independent query; the view tolerates slight skew under concurrent writes.
type AdminRepository struct {
	DB *sql.DB
}

func (r *AdminRepository) CountProperties(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM properties`)
}

func (r *AdminRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *AdminRepository) CountAgents(ctx context.Context) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = ?`, models.RoleAgent).Scan(&total)
	return total, err
}

func (r *AdminRepository) CountInquiries(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM inquiries`)
}

func (r *AdminRepository) count(ctx context.Context, query string) (int, error) {
	var total int
	err := r.DB.QueryRowContext(ctx, query).Scan(&total)
	return total, err
}

func (r *AdminRepository) RecentProperties(ctx context.Context, limit int) ([]models.Property, error) {
	query := `
		SELECT p.id, p.title, p.price, p.type, p.category, p.city, p.agent_id, p.is_featured,
			p.status, p.views_count, p.created_at, u.name
		FROM properties p
		LEFT JOIN users u ON p.agent_id = u.id
		ORDER BY p.created_at DESC
		LIMIT ?
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var (
			p         models.Property
			agentName sql.NullString
		)
		err := rows.Scan(
			&p.ID, &p.Title, &p.Price, &p.Type, &p.Category, &p.City, &p.AgentID, &p.IsFeatured,
			&p.Status, &p.ViewsCount, &p.CreatedAt, &agentName,
		)
		if err != nil {
			return nil, err
		}
		p.Agent.ID = p.AgentID
		p.Agent.Name = agentName.String
		p.Facilities = []string{}
		properties = append(properties, p)
	}

	return properties, rows.Err()
}
