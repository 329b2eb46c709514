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

func TestQueryOuterJoinAlignment(t *testing.T) {
	db := testsupport.OpenFixture(t)
	statRepo := repository.NewStatisticRepository(db)
	journal := NewJournalService(statRepo, NewResolverService(statRepo))

	t1 := time.Date(2018, 2, 18, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	a := testsupport.InsertStatistic(t, db, "Speed", "activity", "Bike", "km/h")
	b := testsupport.InsertStatistic(t, db, "Cadence", "activity", "Bike", "rpm")
	testsupport.InsertJournal(t, db, a, t1, 20)
	testsupport.InsertJournal(t, db, a, t2, 21)
	testsupport.InsertJournal(t, db, b, t2, 85)

	table, err := journal.Query([]models.StatisticRef{
		{ID: a, Name: "Speed", Owner: "activity", Constraint: "Bike"},
		{ID: b, Name: "Cadence", Owner: "activity", Constraint: "Bike"},
	}, models.TimeRange{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Speed", "Cadence"}, table.Columns)
	require.Len(t, table.Rows, 2)

	// row(t1): A present, B missing — the gap stays explicit.
	assert.Equal(t, t1, table.Rows[0].Time)
	require.NotNil(t, table.Rows[0].Values[0])
	assert.Equal(t, 20.0, *table.Rows[0].Values[0])
	assert.Nil(t, table.Rows[0].Values[1])

	// row(t2): both present.
	assert.Equal(t, t2, table.Rows[1].Time)
	require.NotNil(t, table.Rows[1].Values[0])
	require.NotNil(t, table.Rows[1].Values[1])
	assert.Equal(t, 21.0, *table.Rows[1].Values[0])
	assert.Equal(t, 85.0, *table.Rows[1].Values[1])
}

func TestQueryByNameRejectsAmbiguous(t *testing.T) {
	db := testsupport.OpenFixture(t)
	statRepo := repository.NewStatisticRepository(db)
	journal := NewJournalService(statRepo, NewResolverService(statRepo))

	testsupport.InsertStatistic(t, db, "HR", "monitor", "", "bpm")
	testsupport.InsertStatistic(t, db, "HR", "activity", "Bike", "bpm")

	_, err := journal.QueryByName(models.TimeRange{}, "", "", "HR")
	var ambiguous *models.AmbiguousStatisticError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Candidates, 2)
}

func TestQueryByNameQualifiesDuplicateColumns(t *testing.T) {
	db := testsupport.OpenFixture(t)
	statRepo := repository.NewStatisticRepository(db)
	journal := NewJournalService(statRepo, NewResolverService(statRepo))

	at := time.Date(2018, 2, 18, 10, 0, 0, 0, time.UTC)
	a := testsupport.InsertStatistic(t, db, "HR", "monitor", "", "bpm")
	b := testsupport.InsertStatistic(t, db, "HR", "activity", "Bike", "bpm")
	testsupport.InsertJournal(t, db, a, at, 60)
	testsupport.InsertJournal(t, db, b, at, 140)

	table, err := journal.Query([]models.StatisticRef{
		{ID: a, Name: "HR", Owner: "monitor"},
		{ID: b, Name: "HR", Owner: "activity", Constraint: "Bike"},
	}, models.TimeRange{})
	require.NoError(t, err)
	assert.Equal(t, []string{"HR (monitor)", "HR (activity/Bike)"}, table.Columns)
}

func TestQueryRangeHalfOpen(t *testing.T) {
	db := testsupport.OpenFixture(t)
	statRepo := repository.NewStatisticRepository(db)
	journal := NewJournalService(statRepo, NewResolverService(statRepo))

	base := time.Date(2018, 2, 18, 0, 0, 0, 0, time.UTC)
	id := testsupport.InsertStatistic(t, db, "Steps", "monitor", "", "")
	for i := 0; i < 4; i++ {
		testsupport.InsertJournal(t, db, id, base.Add(time.Duration(i)*time.Hour), float64(i))
	}

	table, err := journal.Query([]models.StatisticRef{{ID: id, Name: "Steps"}}, models.TimeRange{
		From: base.Add(time.Hour),
		To:   base.Add(3 * time.Hour),
	})
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, base.Add(time.Hour), table.Rows[0].Time)
	assert.Equal(t, base.Add(2*time.Hour), table.Rows[1].Time)
}

func TestQueryEmptyRefs(t *testing.T) {
	db := testsupport.OpenFixture(t)
	statRepo := repository.NewStatisticRepository(db)
	journal := NewJournalService(statRepo, NewResolverService(statRepo))

	_, err := journal.Query(nil, models.TimeRange{})
	assert.Error(t, err)
}
