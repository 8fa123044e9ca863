// Package filter отбирает записи коллекции по текстовому запросу и вкладке.
// Все функции чистые: входной срез не изменяется, порядок сохраняется.
package filter

import (
	"strings"

	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
)

// All - значение вкладки, при котором фильтр по категории не применяется
const All = "all"

// Criteria - активные фильтры представления. Текст и категория объединяются по И
type Criteria struct {
	Text     string
	Category string
}

func (c Criteria) categoryActive() bool {
	return c.Category != "" && c.Category != All
}

// Incidents фильтрует инциденты по статусу и тексту в title, description, type
func Incidents(items []models.Incident, c Criteria) []models.Incident {
	return apply(items, c,
		func(inc models.Incident) string { return string(inc.Status) },
		func(inc models.Incident) []string { return []string{inc.Title, inc.Description, inc.Type} },
	)
}

// Sensors фильтрует сенсоры по типу и тексту в name, type
func Sensors(items []models.Sensor, c Criteria) []models.Sensor {
	return apply(items, c,
		func(s models.Sensor) string { return string(s.Type) },
		func(s models.Sensor) []string { return []string{s.Name, string(s.Type)} },
	)
}

// Cameras фильтрует камеры по статусу и тексту в name, address
func Cameras(items []models.Camera, c Criteria) []models.Camera {
	return apply(items, c,
		func(cam models.Camera) string { return string(cam.Status) },
		func(cam models.Camera) []string { return []string{cam.Name, cam.Location.Address} },
	)
}

func apply[T any](items []T, c Criteria, category func(T) string, fields func(T) []string) []T {
	query := strings.ToLower(c.Text)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if c.categoryActive() && category(item) != c.Category {
			continue
		}
		if query != "" && !matches(fields(item), query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matches(fields []string, query string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// SensorsWithStatus оставляет сенсоры с заданным рабочим статусом (вкладка сенсоров фильтрует по типу)
func SensorsWithStatus(items []models.Sensor, status models.DeviceStatus) []models.Sensor {
	return apply(items, Criteria{Category: string(status)},
		func(s models.Sensor) string { return string(s.Status) },
		func(models.Sensor) []string { return nil },
	)
}
