package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpendle/fitstore/internal/models"
	"github.com/mpendle/fitstore/internal/repository"
	"github.com/mpendle/fitstore/internal/testsupport"
)

func TestMonitorJournalsOrdered(t *testing.T) {
	db := testsupport.OpenFixture(t)
	testsupport.InsertMonitorJournal(t, db, "2018-02-20", "watch")
	testsupport.InsertMonitorJournal(t, db, "2018-02-18", "watch")
	testsupport.InsertMonitorJournal(t, db, "2018-02-19", "watch")
	monitor := NewMonitorService(repository.NewMonitorRepository(db))

	journals, err := monitor.MonitorJournals()
	require.NoError(t, err)
	require.Len(t, journals, 3)
	assert.Equal(t, "2018-02-18", journals[0].Date)
	assert.Equal(t, "2018-02-19", journals[1].Date)
	assert.Equal(t, "2018-02-20", journals[2].Date)
}

func TestMonitorStepsForDate(t *testing.T) {
	db := testsupport.OpenFixture(t)
	testsupport.InsertMonitorJournal(t, db, "2018-02-18", "watch")
	day := time.Date(2018, 2, 18, 0, 0, 0, 0, time.UTC)
	testsupport.InsertSteps(t, db, day.Add(8*time.Hour), 1200)
	testsupport.InsertSteps(t, db, day.Add(12*time.Hour), 4400)
	// Samples from the next day are outside the [00:00, next 00:00) window.
	testsupport.InsertSteps(t, db, day.AddDate(0, 0, 1), 100)
	monitor := NewMonitorService(repository.NewMonitorRepository(db))

	samples, err := monitor.MonitorSteps("2018-02-18")
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, int64(1200), samples[0].Steps)
	assert.Equal(t, int64(4400), samples[1].Steps)
	assert.True(t, samples[0].Time.Before(samples[1].Time))
}

func TestMonitorHeartRateForDate(t *testing.T) {
	db := testsupport.OpenFixture(t)
	testsupport.InsertMonitorJournal(t, db, "2018-02-18", "watch")
	day := time.Date(2018, 2, 18, 0, 0, 0, 0, time.UTC)
	testsupport.InsertHeartRate(t, db, day.Add(7*time.Hour), 52)
	testsupport.InsertHeartRate(t, db, day.Add(18*time.Hour), 88)
	monitor := NewMonitorService(repository.NewMonitorRepository(db))

	samples, err := monitor.MonitorHeartRate("2018-02-18")
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, int64(52), samples[0].BPM)
	assert.Equal(t, int64(88), samples[1].BPM)
}

func TestMonitorUnknownDate(t *testing.T) {
	db := testsupport.OpenFixture(t)
	monitor := NewMonitorService(repository.NewMonitorRepository(db))

	_, err := monitor.MonitorSteps("2018-02-18")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = monitor.MonitorHeartRate("2018-02-18")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMonitorInvalidDate(t *testing.T) {
	db := testsupport.OpenFixture(t)
	monitor := NewMonitorService(repository.NewMonitorRepository(db))

	_, err := monitor.MonitorSteps("18/02/2018")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}
