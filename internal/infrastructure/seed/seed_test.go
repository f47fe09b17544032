package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"subversepay.backend/internal/domain/entities"
)

func TestLoad_ReturnsIndependentCopies(t *testing.T) {
	now := time.Date(2024, 6, 6, 12, 0, 0, 0, time.UTC)
	a := Load(now)
	b := Load(now)

	a.Merchants[0].KYCStatus = entities.KYCStatusRejected
	assert.Equal(t, entities.KYCStatusApproved, b.Merchants[0].KYCStatus)
}

func TestLoad_Shape(t *testing.T) {
	now := time.Date(2024, 6, 6, 12, 0, 0, 0, time.UTC)
	d := Load(now)

	require.Len(t, d.Merchants, 5)
	require.Len(t, d.Alerts, 4)
	require.Len(t, d.Settlements, 4)
	require.Len(t, d.Subscribers, 5)
	require.Len(t, d.ChurnPredictions, 5)

	assert.Equal(t, now, d.Alerts[0].CreatedAt)
	assert.Equal(t, now.Add(-2*time.Hour), d.Alerts[1].CreatedAt)
	assert.Equal(t, "2024-06-06T12:00:00Z", d.SystemHealth.LastUpdated)

	assert.False(t, d.ChurnPredictions[4].PredictedChurnDate.Valid)
	assert.False(t, d.RevenueForecast.MonthlyForecast[5].Actual.Valid)
	assert.True(t, d.CustomerPayments[2].FailureReason.Valid)
}

func TestMerchants_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Merchants() {
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
		assert.True(t, m.KYCStatus.IsValid())
	}
}
