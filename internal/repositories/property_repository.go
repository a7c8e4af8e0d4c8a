package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"estateBack/internal/models"
)

type PropertyRepository struct {
	DB *sql.DB
}

const propertyColumns = `p.id, p.title, p.description, p.price, p.type, p.category, p.address, p.city, p.district,
		p.bed_rooms, p.bath_rooms, p.land_size, p.building_size, p.facilities, p.agent_id,
		p.is_featured, p.status, p.views_count, p.created_at, p.updated_at`

// CreateProperty inserts the property and its images in one transaction.
// The first image of the batch becomes the primary one.
func (r *PropertyRepository) CreateProperty(ctx context.Context, p models.Property, imageURLs []string) (models.Property, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Property{}, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO properties
			(title, description, price, type, category, address, city, district,
			 bed_rooms, bath_rooms, land_size, building_size, facilities, agent_id, is_featured, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	status := p.Status
	if status == "" {
		status = models.PropertyStatusActive
	}
	result, err := tx.ExecContext(ctx, query,
		p.Title, p.Description, p.Price, p.Type, p.Category, p.Address, p.City, p.District,
		p.BedRooms, p.BathRooms, p.LandSize, p.BuildingSize, marshalFacilities(p.Facilities),
		p.AgentID, p.IsFeatured, status,
	)
	if err != nil {
		return models.Property{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Property{}, err
	}

	for i, url := range imageURLs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO property_images (property_id, image_url, is_primary) VALUES (?, ?, ?)`,
			id, url, i == 0,
		)
		if err != nil {
			return models.Property{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		return models.Property{}, err
	}

	return r.GetPropertyByID(ctx, int(id))
}

func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id int) (models.Property, error) {
	query := `
		SELECT ` + propertyColumns + `,
			u.name, u.email, u.phone, u.avatar
		FROM properties p
		LEFT JOIN users u ON p.agent_id = u.id
		WHERE p.id = ?
	`

	var (
		p          models.Property
		facilities string
		agentName  sql.NullString
		agentEmail sql.NullString
		agentPhone sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Type, &p.Category, &p.Address, &p.City, &p.District,
		&p.BedRooms, &p.BathRooms, &p.LandSize, &p.BuildingSize, &facilities, &p.AgentID,
		&p.IsFeatured, &p.Status, &p.ViewsCount, &p.CreatedAt, &p.UpdatedAt,
		&agentName, &agentEmail, &agentPhone, &p.Agent.Avatar,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Property{}, models.ErrPropertyNotFound
	}
	if err != nil {
		return models.Property{}, err
	}

	p.Facilities = unmarshalFacilities(facilities)
	p.Agent.ID = p.AgentID
	p.Agent.Name = agentName.String
	p.Agent.Email = agentEmail.String
	p.Agent.Phone = agentPhone.String

	images, err := r.getImages(ctx, id)
	if err != nil {
		return models.Property{}, err
	}
	p.Images = images

	return p, nil
}

func (r *PropertyRepository) getImages(ctx context.Context, propertyID int) ([]models.PropertyImage, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, property_id, image_url, is_primary FROM property_images WHERE property_id = ? ORDER BY is_primary DESC, id ASC`,
		propertyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []models.PropertyImage{}
	for rows.Next() {
		var img models.PropertyImage
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.ImageURL, &img.IsPrimary); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// GetPropertyOwner returns the agent_id without loading the full row.
func (r *PropertyRepository) GetPropertyOwner(ctx context.Context, id int) (int, error) {
	var agentID int
	err := r.DB.QueryRowContext(ctx, `SELECT agent_id FROM properties WHERE id = ?`, id).Scan(&agentID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.ErrPropertyNotFound
	}
	if err != nil {
		return 0, err
	}
	return agentID, nil
}

// ListProperties runs the filtered select and the companion count with the
// same WHERE clause and bound values.
func (r *PropertyRepository) ListProperties(ctx context.Context, f models.PropertyFilter, limit, offset int) ([]models.Property, int, error) {
	conditions, params := buildPropertyFilters(f)
	where := wherePropertyClause(conditions)

	query := `
		SELECT ` + propertyColumns + `,
			u.name, u.phone,
			(SELECT image_url FROM property_images WHERE property_id = p.id AND is_primary = TRUE LIMIT 1)
		FROM properties p
		LEFT JOIN users u ON p.agent_id = u.id` +
		where + propertyOrderClause + `
		LIMIT ? OFFSET ?`

	rows, err := r.DB.QueryContext(ctx, query, append(append([]interface{}{}, params...), limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var (
			p          models.Property
			facilities string
			agentName  sql.NullString
			agentPhone sql.NullString
		)
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Price, &p.Type, &p.Category, &p.Address, &p.City, &p.District,
			&p.BedRooms, &p.BathRooms, &p.LandSize, &p.BuildingSize, &facilities, &p.AgentID,
			&p.IsFeatured, &p.Status, &p.ViewsCount, &p.CreatedAt, &p.UpdatedAt,
			&agentName, &agentPhone, &p.PrimaryImage,
		)
		if err != nil {
			return nil, 0, err
		}
		p.Facilities = unmarshalFacilities(facilities)
		p.Agent.ID = p.AgentID
		p.Agent.Name = agentName.String
		p.Agent.Phone = agentPhone.String
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM properties p` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, params...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// UpdateProperty applies a partial update over the allow-listed columns and
// refreshes updated_at.
func (r *PropertyRepository) UpdateProperty(ctx context.Context, id int, u models.PropertyUpdate) (models.Property, error) {
	clauses, params := buildPropertyUpdate(u)
	if len(clauses) == 0 {
		return models.Property{}, models.ErrNoUpdatableFields
	}

	query := `UPDATE properties SET ` + strings.Join(clauses, ", ") + `, updated_at = ? WHERE id = ?`
	params = append(params, time.Now(), id)

	result, err := r.DB.ExecContext(ctx, query, params...)
	if err != nil {
		return models.Property{}, err
	}
	if _, err := result.RowsAffected(); err != nil {
		return models.Property{}, err
	}

	return r.GetPropertyByID(ctx, id)
}

// DeleteProperty removes the images and the row in one transaction. The
// cascade is explicit here rather than assumed from the schema.
func (r *PropertyRepository) DeleteProperty(ctx context.Context, id int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM property_images WHERE property_id = ?`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrPropertyNotFound
	}

	return tx.Commit()
}

func (r *PropertyRepository) IncrementViews(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE properties SET views_count = views_count + 1 WHERE id = ?`, id)
	return err
}

// SetPrimaryImage makes one image the primary and clears the flag on the
// rest, keeping at most one primary per property.
func (r *PropertyRepository) SetPrimaryImage(ctx context.Context, propertyID, imageID int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE property_images SET is_primary = FALSE WHERE property_id = ?`, propertyID)
	if err != nil {
		return err
	}
	if _, err := result.RowsAffected(); err != nil {
		return err
	}

	result, err = tx.ExecContext(ctx,
		`UPDATE property_images SET is_primary = TRUE WHERE id = ? AND property_id = ?`, imageID, propertyID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrImageNotFound
	}

	return tx.Commit()
}

// GetPropertiesByAgentID returns an agent's own listings, whatever their status.
func (r *PropertyRepository) GetPropertiesByAgentID(ctx context.Context, agentID int) ([]models.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties p
		WHERE p.agent_id = ?` + propertyOrderClause

	rows, err := r.DB.QueryContext(ctx, query, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	properties := []models.Property{}
	for rows.Next() {
		var (
			p          models.Property
			facilities string
		)
		err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Price, &p.Type, &p.Category, &p.Address, &p.City, &p.District,
			&p.BedRooms, &p.BathRooms, &p.LandSize, &p.BuildingSize, &facilities, &p.AgentID,
			&p.IsFeatured, &p.Status, &p.ViewsCount, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		p.Facilities = unmarshalFacilities(facilities)
		p.Agent.ID = p.AgentID
		properties = append(properties, p)
	}

	return properties, rows.Err()
}
