package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/models"
	"github.com/jamalpurmadhavi-boop/AI-Powered-Urban-Operations-Command-Center/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// seedSensors загружает сенсоры; первый выбирается автоматически с пустой историей
func seedSensors(t *testing.T, svc *dashboardService, repoMock *mocks.MockRepository, raws ...models.RawSensor) {
	t.Helper()
	repoMock.EXPECT().ListSensors(gomock.Any()).Return(raws, nil).Times(1)
	if len(raws) > 0 {
		repoMock.EXPECT().ListSensorReadings(gomock.Any(), uuid.MustParse(raws[0].ID), 50).Return(nil, nil).Times(1)
	}
	require.NoError(t, svc.ReloadSensors(context.Background()))
}

func readingsFor(raw models.RawSensor, values ...float64) []models.RawSensorReading {
	out := make([]models.RawSensorReading, len(values))
	for i, v := range values {
		out[i] = models.RawSensorReading{
			SensorID:  raw.ID,
			Timestamp: testNow.Add(-time.Duration(i) * time.Minute),
			Value:     v,
		}
	}
	return out
}

func TestSelectSensor_LoadsHistoryAndClearsPrevious(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestDashboardService(t)
	ctx := context.Background()
	a := rawSensor("Air 1", "air_quality", "online")
	b := rawSensor("Traffic 1", "traffic", "online")
	seedSensors(t, svc, repoMock, a, b)
	idA, idB := uuid.MustParse(a.ID), uuid.MustParse(b.ID)

	// Ожидания
	repoMock.EXPECT().ListSensorReadings(ctx, idA, 10).Return(readingsFor(a, 1, 2), nil).Times(1)
	repoMock.EXPECT().ListSensorReadings(ctx, idB, 10).Return(readingsFor(b, 7), nil).Times(1)

	// Действие
	_, err := svc.SelectSensor(ctx, idA, 10)
	require.NoError(t, err)
	sensor, err := svc.SelectSensor(ctx, idB, 10)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, idB, sensor.ID)
	assert.Equal(t, []models.MetricPoint{{Timestamp: testNow, Value: 7}}, sensor.Metrics)
	for _, s := range svc.store.Sensors() {
		if s.ID == idA {
			assert.Empty(t, s.Metrics)
		}
	}
}

func TestSelectSensor_StaleLoadIsDiscarded(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestDashboardService(t)
	ctx := context.Background()
	a := rawSensor("Air 1", "air_quality", "online")
	b := rawSensor("Noise 1", "noise", "online")
	c := rawSensor("Water 1", "water", "online")
	seedSensors(t, svc, repoMock, c, a, b)
	idA, idB := uuid.MustParse(a.ID), uuid.MustParse(b.ID)

	// Ожидания
	// Пока загружаются метрики A, пользователь выбирает B
	repoMock.EXPECT().
		ListSensorReadings(ctx, idA, 50).
		DoAndReturn(func(ctx context.Context, _ uuid.UUID, _ int) ([]models.RawSensorReading, error) {
			_, err := svc.SelectSensor(ctx, idB, 0)
			require.NoError(t, err)
			return readingsFor(a, 1, 2, 3), nil
		}).
		Times(1)
	repoMock.EXPECT().ListSensorReadings(ctx, idB, 50).Return(readingsFor(b, 9), nil).Times(1)

	// Действие
	sensorA, err := svc.SelectSensor(ctx, idA, 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, idA, sensorA.ID)
	assert.Empty(t, sensorA.Metrics)

	selected, ok := svc.SelectedSensor()
	require.True(t, ok)
	assert.Equal(t, idB, selected.ID)
	assert.Equal(t, []models.MetricPoint{{Timestamp: testNow, Value: 9}}, selected.Metrics)
}

func TestSelectSensor_NotFound(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestDashboardService(t)
	a := rawSensor("Air 1", "air_quality", "online")
	seedSensors(t, svc, repoMock, a)

	// Действие
	sensor, err := svc.SelectSensor(context.Background(), uuid.New(), 0)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, sensor)
	assert.ErrorIs(t, err, models.ErrNotFound)
	selected, ok := svc.SelectedSensor()
	require.True(t, ok)
	assert.Equal(t, uuid.MustParse(a.ID), selected.ID)
}

func TestSelectSensor_LimitCappedAtHistoryMaximum(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestDashboardService(t)
	ctx := context.Background()
	a := rawSensor("Air 1", "air_quality", "online")
	seedSensors(t, svc, repoMock, a)
	idA := uuid.MustParse(a.ID)

	// Ожидания
	repoMock.EXPECT().ListSensorReadings(ctx, idA, models.MaxMetricHistory).Return(nil, nil).Times(1)

	// Действие
	_, err := svc.SelectSensor(ctx, idA, 500)

	// Проверки
	require.NoError(t, err)
}

func TestLoadMetrics_RequiresSelection(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestDashboardService(t)
	ctx := context.Background()
	a := rawSensor("Air 1", "air_quality", "online")
	b := rawSensor("Noise 1", "noise", "online")
	seedSensors(t, svc, repoMock, a, b)
	idA := uuid.MustParse(a.ID)

	// Ожидания
	repoMock.EXPECT().ListSensorReadings(ctx, idA, 20).Return(readingsFor(a, 5, 4), nil).Times(1)

	// Действие
	notSelectedErr := svc.LoadMetrics(ctx, uuid.MustParse(b.ID), 20)
	err := svc.LoadMetrics(ctx, idA, 20)

	// Проверки
	assert.ErrorIs(t, notSelectedErr, models.ErrNotFound)
	require.NoError(t, err)
	selected, _ := svc.SelectedSensor()
	assert.Len(t, selected.Metrics, 2)
}

func TestLoadMetrics_RepositoryError(t *testing.T) {
	// Подготовка
	svc, repoMock, _ := newTestDashboardService(t)
	ctx := context.Background()
	a := rawSensor("Air 1", "air_quality", "online")
	seedSensors(t, svc, repoMock, a)
	idA := uuid.MustParse(a.ID)

	// Ожидания
	repoMock.EXPECT().ListSensorReadings(ctx, idA, 50).Return(nil, errors.New("db error")).Times(1)

	// Действие
	err := svc.LoadMetrics(ctx, idA, 0)

	// Проверки
	assert.ErrorIs(t, err, models.ErrCollaborator)
}
