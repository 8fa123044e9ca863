package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
)

// ListSensors возвращает все сенсоры в порядке имени
func (r *Repository) ListSensors(ctx context.Context) ([]models.RawSensor, error) {
	query := `
		SELECT
			id::text,
			name,
			type,
			status,
			location,
			last_reading
		FROM sensors
		ORDER BY name;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sensors: %w", err)
	}
	defer rows.Close()

	sensors := make([]models.RawSensor, 0)
	for rows.Next() {
		var sensor models.RawSensor
		err := rows.Scan(
			&sensor.ID,
			&sensor.Name,
			&sensor.Type,
			&sensor.Status,
			&sensor.Location,
			&sensor.LastReading,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sensor row: %w", err)
		}
		sensors = append(sensors, sensor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return sensors, nil
}

// ListSensorReadings возвращает последние показания сенсора, самые свежие первыми
func (r *Repository) ListSensorReadings(ctx context.Context, sensorID uuid.UUID, limit int) ([]models.RawSensorReading, error) {
	query := `
		SELECT
			sensor_id::text,
			timestamp,
			value::float8
		FROM sensor_readings
		WHERE sensor_id = $1
		ORDER BY timestamp DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, sensorID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sensor readings: %w", err)
	}
	defer rows.Close()

	readings := make([]models.RawSensorReading, 0, limit)
	for rows.Next() {
		var reading models.RawSensorReading
		if err := rows.Scan(&reading.SensorID, &reading.Timestamp, &reading.Value); err != nil {
			return nil, fmt.Errorf("failed to scan sensor reading row: %w", err)
		}
		readings = append(readings, reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return readings, nil
}
