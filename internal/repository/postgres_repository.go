package repository

import (
	"context"
	"database/sql"
	"fmt"

	appErrors "github.com/unclebandit/fabricator-bff/internal/errors"
	"github.com/unclebandit/fabricator-bff/internal/model"
)

// PostgresRepository reads the seeded sample tables. It stands in for the CRM
// when DATA_SOURCE=postgres, so updates are written back to the same tables.
type PostgresRepository struct {
	DB *sql.DB
}

// ====================== Leads ======================

const leadColumns = `id, name, customer_name, address, phone, email, created_at, status, priority, notes`

func (r *PostgresRepository) ListLeads(ctx context.Context) ([]model.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []model.Lead
	index := map[string]int{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		index[l.ID] = len(leads)
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.DB.QueryContext(ctx, `
        SELECT id, lead_id, name, length, width, thickness, quantity
        FROM lead_line_items ORDER BY lead_id, id
    `)
	if err != nil {
		return nil, err
	}
	defer items.Close()

	for items.Next() {
		var leadID string
		var li model.LineItem
		if err := items.Scan(&li.ID, &leadID, &li.Name, &li.Length, &li.Width, &li.Thickness, &li.Quantity); err != nil {
			return nil, err
		}
		if i, ok := index[leadID]; ok {
			leads[i].LineItems = append(leads[i].LineItems, li)
		}
	}
	return leads, items.Err()
}

func (r *PostgresRepository) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE id=$1`, id)
	l, err := scanLead(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, `
        SELECT id, name, length, width, thickness, quantity
        FROM lead_line_items WHERE lead_id=$1 ORDER BY id
    `, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var li model.LineItem
		if err := rows.Scan(&li.ID, &li.Name, &li.Length, &li.Width, &li.Thickness, &li.Quantity); err != nil {
			return nil, err
		}
		l.LineItems = append(l.LineItems, li)
	}
	return &l, rows.Err()
}

func (r *PostgresRepository) UpdateLead(ctx context.Context, u model.LeadUpdate) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
        UPDATE leads
        SET notes=$1, status=COALESCE(NULLIF($2, ''), status), updated_at=NOW()
        WHERE id=$3
    `, u.Notes, u.Status, u.LeadID)
	if err != nil {
		return fmt.Errorf("update lead %s: %w", u.LeadID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewRecordNotFound(model.RecordKindLead, u.LeadID)
	}

	for _, li := range u.LineItems {
		_, err := tx.ExecContext(ctx, `
            UPDATE lead_line_items
            SET length=$1, width=$2, thickness=$3, quantity=$4
            WHERE id=$5 AND lead_id=$6
        `, li.Length, li.Width, li.Thickness, li.Quantity, li.ID, u.LeadID)
		if err != nil {
			return fmt.Errorf("update line item %s: %w", li.ID, err)
		}
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLead(s scanner) (model.Lead, error) {
	var l model.Lead
	var priority string
	err := s.Scan(&l.ID, &l.Name, &l.CustomerName, &l.Address, &l.Phone, &l.Email,
		&l.CreatedAt, &l.Status, &priority, &l.Notes)
	if priority == "" {
		l.Priority = model.PriorityFromStatus(l.Status)
	} else {
		l.Priority = model.Priority(priority)
	}
	return l, err
}

// ====================== Service requests ======================

const requestColumns = `id, number, customer_name, address, phone, issue, description, priority, status,
        scheduled_date, scheduled_time, technician_name, technician_id, notes, action_taken,
        created_at, updated_at`

func (r *PostgresRepository) ListServiceRequests(ctx context.Context) ([]model.ServiceRequest, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+requestColumns+` FROM service_requests ORDER BY scheduled_date, number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ServiceRequest
	for rows.Next() {
		sr, err := scanServiceRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetServiceRequest(ctx context.Context, id string) (*model.ServiceRequest, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+requestColumns+` FROM service_requests WHERE id=$1 OR number=$1 LIMIT 1`, id)
	sr, err := scanServiceRequest(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sr, nil
}

func (r *PostgresRepository) UpdateServiceRequest(ctx context.Context, u model.ServiceRequestUpdate) error {
	res, err := r.DB.ExecContext(ctx, `
        UPDATE service_requests
        SET action_taken=$1, notes=$2, status=COALESCE(NULLIF($3, ''), status), updated_at=NOW()
        WHERE id=$4 OR number=$4
    `, u.ActionTaken, u.Notes, u.Status, u.RequestID)
	if err != nil {
		return fmt.Errorf("update service request %s: %w", u.RequestID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return appErrors.NewRecordNotFound(model.RecordKindServiceRequest, u.RequestID)
	}
	return nil
}

func scanServiceRequest(s scanner) (model.ServiceRequest, error) {
	var sr model.ServiceRequest
	var priority string
	var updated sql.NullTime
	err := s.Scan(&sr.ID, &sr.Number, &sr.CustomerName, &sr.Address, &sr.Phone, &sr.Issue,
		&sr.Description, &priority, &sr.Status, &sr.ScheduledDate, &sr.ScheduledTime,
		&sr.TechnicianName, &sr.TechnicianID, &sr.Notes, &sr.ActionTaken, &sr.CreatedAt, &updated)
	sr.Priority = model.BucketPriority(priority, sr.Status)
	if updated.Valid {
		sr.UpdatedAt = &updated.Time
	}
	return sr, err
}

var (
	_ LeadRepositoryInterface           = (*PostgresRepository)(nil)
	_ ServiceRequestRepositoryInterface = (*PostgresRepository)(nil)
)
