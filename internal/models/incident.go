package models

import (
	"time"

	"github.com/google/uuid"
)

type IncidentStatus string

const (
	IncidentStatusActive        IncidentStatus = "active"
	IncidentStatusInvestigating IncidentStatus = "investigating"
	IncidentStatusResolved      IncidentStatus = "resolved"
	IncidentStatusClosed        IncidentStatus = "closed"
)

// IncidentStatuses возвращает все статусы инцидента в порядке вкладок
func IncidentStatuses() []IncidentStatus {
	return []IncidentStatus{
		IncidentStatusActive,
		IncidentStatusInvestigating,
		IncidentStatusResolved,
		IncidentStatusClosed,
	}
}

func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentStatusActive, IncidentStatusInvestigating, IncidentStatusResolved, IncidentStatusClosed:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

type Incident struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Status      IncidentStatus `json:"status"`
	Severity    Severity       `json:"severity"`
	Type        string         `json:"type"`
	Location    Location       `json:"location"`
	ReportedAt  time.Time      `json:"reported_at"`
	ResolvedAt  *time.Time     `json:"resolved_at,omitempty"`
	AssignedTo  *string        `json:"assigned_to,omitempty"`
	Tags        []string       `json:"tags"`
}

// NewIncident - поля, из которых хранилище создает инцидент
type NewIncident struct {
	Title       string
	Description string
	Status      IncidentStatus
	Severity    Severity
	Type        string
	Location    Location
	ReportedAt  time.Time
	ResolvedAt  *time.Time
	AssignedTo  *string
	Tags        []string
}

// IncidentPatch описывает частичное обновление инцидента.
// nil означает "не менять". ReportedAt не меняется после создания, поэтому поля для него нет.
// ResolvedAt и AssignedTo патчем не очищаются: однажды выставленное значение можно только заменить.
// Для ResolvedAt это намеренная политика сохранения истории, для AssignedTo снятие исполнителя не поддерживается.
type IncidentPatch struct {
	Title       *string
	Description *string
	Status      *IncidentStatus
	Severity    *Severity
	Type        *string
	Location    *Location
	ResolvedAt  *time.Time
	AssignedTo  *string
	Tags        []string
}

// Apply применяет патч к инциденту на месте
func (p IncidentPatch) Apply(inc *Incident) {
	if p.Title != nil {
		inc.Title = *p.Title
	}
	if p.Description != nil {
		inc.Description = *p.Description
	}
	if p.Status != nil {
		inc.Status = *p.Status
	}
	if p.Severity != nil {
		inc.Severity = *p.Severity
	}
	if p.Type != nil {
		inc.Type = *p.Type
	}
	if p.Location != nil {
		inc.Location = *p.Location
	}
	if p.ResolvedAt != nil {
		t := *p.ResolvedAt
		inc.ResolvedAt = &t
	}
	if p.AssignedTo != nil {
		a := *p.AssignedTo
		inc.AssignedTo = &a
	}
	if p.Tags != nil {
		inc.Tags = append([]string{}, p.Tags...)
	}
}
