package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
)

const incidentColumns = `
			id::text,
			title,
			description,
			status,
			severity,
			type,
			location,
			reported_at,
			resolved_at,
			assigned_to,
			tags`

func scanIncident(row pgx.Row) (*models.RawIncident, error) {
	incident := &models.RawIncident{}
	err := row.Scan(
		&incident.ID,
		&incident.Title,
		&incident.Description,
		&incident.Status,
		&incident.Severity,
		&incident.Type,
		&incident.Location,
		&incident.ReportedAt,
		&incident.ResolvedAt,
		&incident.AssignedTo,
		&incident.Tags,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// ListIncidents возвращает все инциденты, новые первыми
func (r *Repository) ListIncidents(ctx context.Context) ([]models.RawIncident, error) {
	query := `
		SELECT` + incidentColumns + `
		FROM incidents
		ORDER BY reported_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.RawIncident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, *incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// GetIncident возвращает инцидент по его UUID
func (r *Repository) GetIncident(ctx context.Context, id uuid.UUID) (*models.RawIncident, error) {
	query := `
		SELECT` + incidentColumns + `
		FROM incidents
		WHERE id = $1;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// CreateIncident создает новую запись об инциденте в бд
func (r *Repository) CreateIncident(ctx context.Context, in models.NewIncident) (*models.RawIncident, error) {
	query := `
		INSERT INTO incidents (title, description, status, severity, type, location, reported_at, resolved_at, assigned_to, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING` + incidentColumns + `;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query,
		in.Title,
		in.Description,
		string(in.Status),
		string(in.Severity),
		in.Type,
		in.Location,
		in.ReportedAt,
		in.ResolvedAt,
		in.AssignedTo,
		in.Tags,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}
	return incident, nil
}

// UpdateIncident меняет только переданные поля патча.
// NULL в параметре означает "не менять", поэтому resolved_at и assigned_to этим запросом не очищаются
func (r *Repository) UpdateIncident(ctx context.Context, id uuid.UUID, patch models.IncidentPatch) (*models.RawIncident, error) {
	query := `
		UPDATE incidents SET
			title = COALESCE($2, title),
			description = COALESCE($3, description),
			status = COALESCE($4, status),
			severity = COALESCE($5, severity),
			type = COALESCE($6, type),
			location = COALESCE($7::jsonb, location),
			resolved_at = COALESCE($8, resolved_at),
			assigned_to = COALESCE($9, assigned_to),
			tags = COALESCE($10::text[], tags),
			updated_at = NOW()
		WHERE id = $1
		RETURNING` + incidentColumns + `;
	`
	var status, severity *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}
	if patch.Severity != nil {
		s := string(*patch.Severity)
		severity = &s
	}

	incident, err := scanIncident(r.db.QueryRow(ctx, query,
		id,
		patch.Title,
		patch.Description,
		status,
		severity,
		patch.Type,
		patch.Location,
		patch.ResolvedAt,
		patch.AssignedTo,
		patch.Tags,
	))
	if err != nil {
		// Если строк не вернулось, значит инцидента с таким id не существует
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found for update: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}
	return incident, nil
}
