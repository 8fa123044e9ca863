// Package marker собирает инциденты, сенсоры и камеры в единый слой маркеров карты.
package marker

import (
	"fmt"

	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
)

// Layer - вкладка карты
type Layer string

const (
	LayerAll       Layer = "all"
	LayerIncidents Layer = "incidents"
	LayerSensors   Layer = "sensors"
	LayerCameras   Layer = "cameras"
)

// KindSet - набор включенных источников маркеров
type KindSet map[models.Kind]bool

// AllKinds включает все три источника
func AllKinds() KindSet {
	return KindSet{models.KindIncident: true, models.KindSensor: true, models.KindCamera: true}
}

// ParseLayer переводит вкладку карты в набор источников. Пустая строка означает "all"
func ParseLayer(layer string) (KindSet, error) {
	switch Layer(layer) {
	case "", LayerAll:
		return AllKinds(), nil
	case LayerIncidents:
		return KindSet{models.KindIncident: true}, nil
	case LayerSensors:
		return KindSet{models.KindSensor: true}, nil
	case LayerCameras:
		return KindSet{models.KindCamera: true}, nil
	}
	return nil, fmt.Errorf("unknown map layer %q: %w", layer, models.ErrInvalidArgument)
}

// Sources - коллекции, уже отфильтрованные вызывающей стороной
type Sources struct {
	Incidents []models.Incident
	Sensors   []models.Sensor
	Cameras   []models.Camera
}

// Compose склеивает маркеры: сначала инциденты, затем сенсоры, затем камеры,
// каждая группа в порядке исходной коллекции. Отключенный источник не дает маркеров
func Compose(src Sources, enabled KindSet) []models.Marker {
	size := 0
	if enabled[models.KindIncident] {
		size += len(src.Incidents)
	}
	if enabled[models.KindSensor] {
		size += len(src.Sensors)
	}
	if enabled[models.KindCamera] {
		size += len(src.Cameras)
	}

	markers := make([]models.Marker, 0, size)
	if enabled[models.KindIncident] {
		for _, inc := range src.Incidents {
			markers = append(markers, models.Marker{
				ID:          inc.ID,
				Kind:        models.KindIncident,
				Lat:         inc.Location.Lat,
				Lng:         inc.Location.Lng,
				Title:       inc.Title,
				Description: inc.Description,
				Status:      string(inc.Severity),
			})
		}
	}
	if enabled[models.KindSensor] {
		for _, s := range src.Sensors {
			markers = append(markers, models.Marker{
				ID:          s.ID,
				Kind:        models.KindSensor,
				Lat:         s.Location.Lat,
				Lng:         s.Location.Lng,
				Title:       s.Name,
				Description: fmt.Sprintf("%s sensor", s.Type),
				Status:      string(s.Status),
			})
		}
	}
	if enabled[models.KindCamera] {
		for _, c := range src.Cameras {
			markers = append(markers, models.Marker{
				ID:          c.ID,
				Kind:        models.KindCamera,
				Lat:         c.Location.Lat,
				Lng:         c.Location.Lng,
				Title:       c.Name,
				Description: "CCTV Camera",
				Status:      string(c.Status),
			})
		}
	}
	return markers
}
