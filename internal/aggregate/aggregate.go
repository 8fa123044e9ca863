// Package aggregate считает счетчики вкладок по полной (нефильтрованной) коллекции.
package aggregate

import "github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"

// AllKey - ключ общего количества записей
const AllKey = "all"

// Counts - количество записей всего и по каждому значению перечисления, включая нулевые
type Counts map[string]int

func (c Counts) All() int {
	return c[AllKey]
}

func IncidentStatuses(items []models.Incident) Counts {
	return count(items, models.IncidentStatuses(), func(inc models.Incident) models.IncidentStatus { return inc.Status })
}

func SensorStatuses(items []models.Sensor) Counts {
	return count(items, models.DeviceStatuses(), func(s models.Sensor) models.DeviceStatus { return s.Status })
}

func SensorTypes(items []models.Sensor) Counts {
	return count(items, models.SensorTypes(), func(s models.Sensor) models.SensorType { return s.Type })
}

func CameraStatuses(items []models.Camera) Counts {
	return count(items, models.DeviceStatuses(), func(c models.Camera) models.DeviceStatus { return c.Status })
}

func count[T any, E ~string](items []T, values []E, key func(T) E) Counts {
	c := make(Counts, len(values)+1)
	c[AllKey] = len(items)
	for _, v := range values {
		c[string(v)] = 0
	}
	for _, item := range items {
		c[string(key(item))]++
	}
	return c
}
