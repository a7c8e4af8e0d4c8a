package repositories

import (
	"context"
	"database/sql"

	"estateBack/internal/models"
)

type InquiryRepository struct {
	DB *sql.DB
}

func (r *InquiryRepository) CreateInquiry(ctx context.Context, inq models.Inquiry) (models.Inquiry, error) {
	query := `
		INSERT INTO inquiries (property_id, user_id, type, name, email, phone, message, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`
	status := inq.Status
	if status == "" {
		status = models.InquiryStatusNew
	}
	result, err := r.DB.ExecContext(ctx, query,
		inq.PropertyID, inq.UserID, inq.Type, inq.Name, inq.Email, inq.Phone, inq.Message, status,
	)
	if err != nil {
		return models.Inquiry{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Inquiry{}, err
	}
	inq.ID = int(id)
	inq.Status = status
	return inq, nil
}

func (r *InquiryRepository) ListInquiries(ctx context.Context, limit, offset int) ([]models.Inquiry, int, error) {
	query := `
		SELECT i.id, i.property_id, i.user_id, i.type, i.name, i.email, i.phone, i.message, i.status, i.created_at,
			p.title, u.name
		FROM inquiries i
		LEFT JOIN properties p ON i.property_id = p.id
		LEFT JOIN users u ON i.user_id = u.id
		ORDER BY i.created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	inquiries := []models.Inquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, 0, err
		}
		inquiries = append(inquiries, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM inquiries`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return inquiries, total, nil
}

func (r *InquiryRepository) RecentInquiries(ctx context.Context, limit int) ([]models.Inquiry, error) {
	query := `
		SELECT i.id, i.property_id, i.user_id, i.type, i.name, i.email, i.phone, i.message, i.status, i.created_at,
			p.title, u.name
		FROM inquiries i
		LEFT JOIN properties p ON i.property_id = p.id
		LEFT JOIN users u ON i.user_id = u.id
		ORDER BY i.created_at DESC
		LIMIT ?
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inquiries := []models.Inquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}

func scanInquiry(rows *sql.Rows) (models.Inquiry, error) {
	var (
		inq           models.Inquiry
		phone         sql.NullString
		propertyTitle sql.NullString
		userName      sql.NullString
	)
	err := rows.Scan(
		&inq.ID, &inq.PropertyID, &inq.UserID, &inq.Type, &inq.Name, &inq.Email, &phone,
		&inq.Message, &inq.Status, &inq.CreatedAt,
		&propertyTitle, &userName,
	)
	if err != nil {
		return models.Inquiry{}, err
	}
	inq.Phone = phone.String
	inq.PropertyTitle = propertyTitle.String
	inq.UserName = userName.String
	return inq, nil
}

func (r *InquiryRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	result, err := r.DB.ExecContext(ctx, `UPDATE inquiries SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrInquiryNotFound
	}
	return nil
}
