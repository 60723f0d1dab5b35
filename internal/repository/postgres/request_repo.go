package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"panelrecut/internal/domain"
)

type damageRequestRepository struct {
	DB *sql.DB
}

func NewDamageRequestRepository(db *sql.DB) domain.DamageRequestRepository {
	return &damageRequestRepository{
		DB: db,
	}
}

func (r *damageRequestRepository) Create(ctx context.Context, req *domain.DamageRequest) error {
	panels, err := json.Marshal(req.Panels)
	if err != nil {
		return fmt.Errorf("marshal panels: %w", err)
	}
	var notes sql.NullString
	if req.Notes != "" {
		notes = sql.NullString{String: req.Notes, Valid: true}
	}
	query := `
		INSERT INTO damage_requests (glider_name, order_number, reason, requested_by, panels, status, notes, submitted_at, updated_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		req.GliderName, req.OrderNumber, req.Reason, req.RequestedBy,
		panels, string(req.Status), notes, req.SubmittedAt, req.UpdatedAt, req.SubmittedAt,
	).Scan(&req.ID)
}

func (r *damageRequestRepository) List(ctx context.Context) ([]*domain.DamageRequest, error) {
	query := `
		SELECT id, glider_name, order_number, reason, requested_by, panels, status, notes, submitted_at, updated_at
		FROM damage_requests
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	requests := make([]*domain.DamageRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *damageRequestRepository) GetByID(ctx context.Context, id string) (*domain.DamageRequest, error) {
	query := `
		SELECT id, glider_name, order_number, reason, requested_by, panels, status, notes, submitted_at, updated_at
		FROM damage_requests
		WHERE id = $1
	`
	row := r.DB.QueryRowContext(ctx, query, id)
	req, err := scanRequest(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (r *damageRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, updatedAt time.Time) error {
	query := `UPDATE damage_requests SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := r.DB.ExecContext(ctx, query, string(status), updatedAt, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the row if present. A missing id is not an error: the
// operation is idempotent from the caller's point of view.
func (r *damageRequestRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM damage_requests WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

// scanRequest reads one damage_requests row via the given scan function,
// decoding the panels JSON column.
func scanRequest(scan func(dest ...any) error) (*domain.DamageRequest, error) {
	req := &domain.DamageRequest{}
	var panels []byte
	var status string
	var notes sql.NullString
	err := scan(
		&req.ID, &req.GliderName, &req.OrderNumber, &req.Reason, &req.RequestedBy,
		&panels, &status, &notes, &req.SubmittedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(panels, &req.Panels); err != nil {
		return nil, fmt.Errorf("unmarshal panels: %w", err)
	}
	req.Status = domain.Status(status)
	if notes.Valid {
		req.Notes = notes.String
	}
	return req, nil
}
