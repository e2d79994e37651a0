package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/models"
)

func TestSeedHoursCreatesFullWeek(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, seedHours())

	hours, err := ListHours()
	require.NoError(t, err)
	require.Len(t, hours, 7)
	assert.Equal(t, "Monday", hours[0].DayOfWeek)
	assert.Equal(t, "Sunday", hours[6].DayOfWeek)
	assert.True(t, hours[6].Closed)
	for i, row := range hours {
		assert.Equal(t, i+1, row.SortOrder)
	}
}

func TestUpdateHoursRowLeavesDayAndOrderAlone(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, seedHours())
	hours, err := ListHours()
	require.NoError(t, err)
	monday := hours[0]

	updated, err := UpdateHoursRow(monday.ID, models.RestaurantHours{
		DayOfWeek: "Funday",
		OpenTime:  "10:00 AM",
		CloseTime: "8:00 PM",
		SortOrder: 99,
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00 AM", updated.OpenTime)
	assert.Equal(t, "8:00 PM", updated.CloseTime)
	assert.Equal(t, "Monday", updated.DayOfWeek)
	assert.Equal(t, 1, updated.SortOrder)
}

func TestUpdateHoursRowNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := UpdateHoursRow(123, models.RestaurantHours{OpenTime: "9:00 AM"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateHoursBulkSkipsUnmatchedRows(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, seedHours())
	hours, err := ListHours()
	require.NoError(t, err)
	sunday := hours[6]

	missing := uint(999)
	result, err := UpdateHoursBulk([]HoursUpdate{
		{ID: &sunday.ID, OpenTime: "12:00", CloseTime: "20:00", Closed: false},
		{ID: &missing, OpenTime: "x"},
		{ID: nil, OpenTime: "also ignored"},
	})
	require.NoError(t, err)
	require.Len(t, result, 7)

	// Matched row updated, everything else untouched, order preserved
	assert.Equal(t, "12:00", result[6].OpenTime)
	assert.Equal(t, "20:00", result[6].CloseTime)
	assert.False(t, result[6].Closed)
	assert.Equal(t, "11:00 AM", result[0].OpenTime)
	for i, row := range result {
		assert.Equal(t, i+1, row.SortOrder)
	}
}
