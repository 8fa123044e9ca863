package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incident(title, description, typ string, status models.IncidentStatus) models.Incident {
	return models.Incident{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Type:        typ,
		Status:      status,
		Severity:    models.SeverityMedium,
		Tags:        []string{},
	}
}

func fixture() []models.Incident {
	return []models.Incident{
		incident("Traffic light outage", "Signals dark at Main St", "traffic", models.IncidentStatusActive),
		incident("Gas leak", "Strong smell reported", "hazard", models.IncidentStatusActive),
		incident("Pothole", "Large pothole on Elm", "road", models.IncidentStatusActive),
		incident("Fallen tree", "Tree blocking lane", "road", models.IncidentStatusResolved),
		incident("Flooded underpass", "Water after storm", "flood", models.IncidentStatusResolved),
	}
}

func ids(items []models.Incident) []uuid.UUID {
	out := make([]uuid.UUID, len(items))
	for i, inc := range items {
		out[i] = inc.ID
	}
	return out
}

func TestIncidents_EmptyCriteriaIsIdentity(t *testing.T) {
	items := fixture()

	for _, c := range []Criteria{{}, {Category: All}} {
		got := Incidents(items, c)
		if diff := cmp.Diff(items, got); diff != "" {
			t.Errorf("filter with %+v changed collection (-want +got):\n%s", c, diff)
		}
	}
}

func TestIncidents_CategoryKeepsOrder(t *testing.T) {
	items := fixture()

	got := Incidents(items, Criteria{Category: "active"})

	assert.Equal(t, ids(items[:3]), ids(got))
}

func TestIncidents_CategoryIsCaseSensitive(t *testing.T) {
	got := Incidents(fixture(), Criteria{Category: "Active"})

	assert.Empty(t, got)
}

func TestIncidents_TextMatchesAnyFieldCaseInsensitive(t *testing.T) {
	items := fixture()

	assert.Equal(t, ids(items[1:2]), ids(Incidents(items, Criteria{Text: "GAS"})))
	assert.Equal(t, ids(items[1:2]), ids(Incidents(items, Criteria{Text: "smell"})))
	assert.Equal(t, ids(items[2:4]), ids(Incidents(items, Criteria{Text: "road"})))
}

func TestIncidents_TextOverridesNoCategory(t *testing.T) {
	items := fixture()

	// Поиск находит ровно одну запись независимо от вкладки "all"
	got := Incidents(items, Criteria{Text: "Flooded underpass", Category: All})

	require.Len(t, got, 1)
	assert.Equal(t, items[4].ID, got[0].ID)
}

func TestIncidents_AndComposition(t *testing.T) {
	items := fixture()
	texts := []string{"", "road", "o", "tree", "zzz"}
	categories := []string{"", All, "active", "resolved", "closed"}

	for _, text := range texts {
		for _, category := range categories {
			both := Incidents(items, Criteria{Text: text, Category: category})
			byText := Incidents(items, Criteria{Text: text})
			byCategory := Incidents(items, Criteria{Category: category})

			assert.Subset(t, ids(byText), ids(both), "text=%q category=%q", text, category)
			assert.Subset(t, ids(byCategory), ids(both), "text=%q category=%q", text, category)
		}
	}
}

func TestIncidents_DoesNotMutateSource(t *testing.T) {
	items := fixture()
	before := append([]models.Incident(nil), items...)

	got := Incidents(items, Criteria{Category: "resolved"})
	got[0].Title = "changed"

	if diff := cmp.Diff(before, items); diff != "" {
		t.Errorf("source mutated (-want +got):\n%s", diff)
	}
}

func TestSensors_TypeAndText(t *testing.T) {
	items := []models.Sensor{
		{ID: uuid.New(), Name: "Harbor AQ", Type: models.SensorTypeAirQuality},
		{ID: uuid.New(), Name: "Bridge counter", Type: models.SensorTypeTraffic},
		{ID: uuid.New(), Name: "Harbor level", Type: models.SensorTypeWater},
	}

	assert.Len(t, Sensors(items, Criteria{Text: "harbor"}), 2)
	assert.Len(t, Sensors(items, Criteria{Text: "air_"}), 1)
	got := Sensors(items, Criteria{Text: "harbor", Category: string(models.SensorTypeWater)})
	require.Len(t, got, 1)
	assert.Equal(t, "Harbor level", got[0].Name)
}

func TestCameras_TextSearchesAddress(t *testing.T) {
	items := []models.Camera{
		{ID: uuid.New(), Name: "North gate", Status: models.DeviceStatusOnline, Location: models.Location{Address: "1 Park Row"}},
		{ID: uuid.New(), Name: "South gate", Status: models.DeviceStatusOffline, Location: models.Location{Address: "9 Canal St"}},
	}

	got := Cameras(items, Criteria{Text: "canal"})
	require.Len(t, got, 1)
	assert.Equal(t, "South gate", got[0].Name)

	assert.Len(t, Cameras(items, Criteria{Category: "online"}), 1)
	assert.Empty(t, Cameras(items, Criteria{Text: "canal", Category: "online"}))
}

func TestEmptyCollection(t *testing.T) {
	got := Cameras(nil, Criteria{Text: "x"})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSensorsWithStatus(t *testing.T) {
	items := []models.Sensor{
		{ID: uuid.New(), Name: "a", Type: models.SensorTypeNoise, Status: models.DeviceStatusOnline},
		{ID: uuid.New(), Name: "b", Type: models.SensorTypeNoise, Status: models.DeviceStatusMaintenance},
		{ID: uuid.New(), Name: "c", Type: models.SensorTypeWater, Status: models.DeviceStatusOnline},
	}

	got := SensorsWithStatus(items, models.DeviceStatusOnline)

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "c", got[1].Name)
}
