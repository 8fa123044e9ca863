// Package store хранит канонические коллекции инцидентов, сенсоров и камер
// вместе с выбранным сенсором и его историей метрик.
//
// Каждая коллекция заменяется целиком. Читатели получают снимок целиком
// (старый или новый), смешанного состояния не бывает. Срезы внутри снимка
// никогда не изменяются после публикации: точечные обновления делают копию.
//
// Методы чтения возвращают копии срезов коллекций. Вложенные срезы элементов
// (Tags, Metrics) общие с хранилищем, вызывающий код не должен их менять.
package store

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
)

// Snapshot - согласованный срез всех трех коллекций
type Snapshot struct {
	Incidents []models.Incident
	Sensors   []models.Sensor
	Cameras   []models.Camera
}

// Selection - текущий выбранный сенсор и поколение выбора
type Selection struct {
	SensorID   uuid.UUID
	Generation uint64
	Valid      bool
}

type Store struct {
	mu        sync.RWMutex
	incidents []models.Incident
	sensors   []models.Sensor
	cameras   []models.Camera

	selected   uuid.UUID
	hasSelect  bool
	generation uint64
}

// New создает пустое хранилище без выбранного сенсора
func New() *Store {
	return &Store{
		incidents: []models.Incident{},
		sensors:   []models.Sensor{},
		cameras:   []models.Camera{},
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Incidents: slices.Clone(s.incidents),
		Sensors:   slices.Clone(s.sensors),
		Cameras:   slices.Clone(s.cameras),
	}
}

func (s *Store) Incidents() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.incidents)
}

func (s *Store) Sensors() []models.Sensor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.sensors)
}

func (s *Store) Cameras() []models.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cameras)
}

// ReplaceIncidents заменяет коллекцию инцидентов целиком. Уникальность ID не проверяется
func (s *Store) ReplaceIncidents(items []models.Incident) {
	next := append(make([]models.Incident, 0, len(items)), items...)
	s.mu.Lock()
	s.incidents = next
	s.mu.Unlock()
}

func (s *Store) ReplaceCameras(items []models.Camera) {
	next := append(make([]models.Camera, 0, len(items)), items...)
	s.mu.Lock()
	s.cameras = next
	s.mu.Unlock()
}

// ReplaceSensors заменяет коллекцию сенсоров целиком.
// Если выбранный сенсор остался в новой коллекции, его история переносится в новую запись,
// иначе выбор сбрасывается и поколение увеличивается, чтобы незавершенная загрузка метрик была отброшена.
// Возвращает true, если выбор сохранился.
func (s *Store) ReplaceSensors(items []models.Sensor) bool {
	next := append(make([]models.Sensor, 0, len(items)), items...)

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := false
	if s.hasSelect {
		var history []models.MetricPoint
		if i := indexSensor(s.sensors, s.selected); i >= 0 {
			history = s.sensors[i].Metrics
		}
		if i := indexSensor(next, s.selected); i >= 0 {
			next[i].Metrics = history
			if next[i].Metrics == nil {
				next[i].Metrics = []models.MetricPoint{}
			}
			kept = true
		} else {
			s.hasSelect = false
			s.selected = uuid.Nil
			s.generation++
		}
	}
	s.sensors = next
	return kept
}

// UpdateIncident находит инцидент по ID и применяет патч. Отсутствующий ID не вставляется
func (s *Store) UpdateIncident(id uuid.UUID, patch models.IncidentPatch) (models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexIncident(s.incidents, id)
	if i < 0 {
		return models.Incident{}, fmt.Errorf("incident %s: %w", id, models.ErrNotFound)
	}

	next := append(make([]models.Incident, 0, len(s.incidents)), s.incidents...)
	patch.Apply(&next[i])
	s.incidents = next
	return next[i], nil
}

// SetIncident заменяет инцидент с тем же ID записью целиком, сохраняя позицию.
// Отсутствующий ID не вставляется
func (s *Store) SetIncident(incident models.Incident) (models.Incident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexIncident(s.incidents, incident.ID)
	if i < 0 {
		return models.Incident{}, fmt.Errorf("incident %s: %w", incident.ID, models.ErrNotFound)
	}

	next := append(make([]models.Incident, 0, len(s.incidents)), s.incidents...)
	next[i] = incident
	s.incidents = next
	return next[i], nil
}

// SelectSensor делает сенсор выбранным. История предыдущего выбора уничтожается,
// история нового сенсора пуста до завершения загрузки метрик.
// Возвращает поколение выбора, с которым нужно записывать метрики
func (s *Store) SelectSensor(id uuid.UUID) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := indexSensor(s.sensors, id)
	if target < 0 {
		return 0, fmt.Errorf("sensor %s: %w", id, models.ErrNotFound)
	}

	next := append(make([]models.Sensor, 0, len(s.sensors)), s.sensors...)
	if s.hasSelect {
		if prev := indexSensor(next, s.selected); prev >= 0 {
			next[prev].Metrics = []models.MetricPoint{}
		}
	}
	next[target].Metrics = []models.MetricPoint{}
	s.sensors = next

	s.selected = id
	s.hasSelect = true
	s.generation++
	return s.generation, nil
}

func (s *Store) Selection() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Selection{SensorID: s.selected, Generation: s.generation, Valid: s.hasSelect}
}

// SelectedSensor возвращает выбранный сенсор вместе с историей
func (s *Store) SelectedSensor() (models.Sensor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasSelect {
		return models.Sensor{}, false
	}
	i := indexSensor(s.sensors, s.selected)
	if i < 0 {
		return models.Sensor{}, false
	}
	return s.sensors[i], true
}

// SetSensorMetrics заменяет историю выбранного сенсора.
// Запись выполняется только если выбор с тех пор не менялся; иначе результат устарел и отбрасывается
func (s *Store) SetSensorMetrics(id uuid.UUID, generation uint64, metrics []models.MetricPoint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasSelect || s.selected != id || s.generation != generation {
		return false
	}
	i := indexSensor(s.sensors, id)
	if i < 0 {
		return false
	}

	if len(metrics) > models.MaxMetricHistory {
		metrics = metrics[:models.MaxMetricHistory]
	}
	next := append(make([]models.Sensor, 0, len(s.sensors)), s.sensors...)
	next[i].Metrics = append(make([]models.MetricPoint, 0, len(metrics)), metrics...)
	s.sensors = next
	return true
}

func indexIncident(items []models.Incident, id uuid.UUID) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func indexSensor(items []models.Sensor, id uuid.UUID) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
