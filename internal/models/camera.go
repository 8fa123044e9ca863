package models

import "github.com/google/uuid"

type Camera struct {
	ID               uuid.UUID    `json:"id"`
	Name             string       `json:"name"`
	Location         Location     `json:"location"`
	Status           DeviceStatus `json:"status"`
	StreamURL        string       `json:"stream_url"`
	LastSnapshot     *string      `json:"last_snapshot,omitempty"`
	RecordingEnabled bool         `json:"recording_enabled"`
}
