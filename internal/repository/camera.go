package repository

import (
	"context"
	"fmt"

	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
)

// ListCameras возвращает все камеры в порядке имени
func (r *Repository) ListCameras(ctx context.Context) ([]models.RawCamera, error) {
	query := `
		SELECT
			id::text,
			name,
			location,
			status,
			stream_url,
			last_snapshot,
			recording_enabled
		FROM cctv_cameras
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cameras: %w", err)
	}
	defer rows.Close()

	cameras := make([]models.RawCamera, 0)
	for rows.Next() {
		var camera models.RawCamera
		err := rows.Scan(
			&camera.ID,
			&camera.Name,
			&camera.Location,
			&camera.Status,
			&camera.StreamURL,
			&camera.LastSnapshot,
			&camera.RecordingEnabled,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan camera row: %w", err)
		}
		cameras = append(cameras, camera)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return cameras, nil
}
