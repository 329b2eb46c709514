package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpendle/fitstore/internal/models"
	"github.com/mpendle/fitstore/internal/repository"
	"github.com/mpendle/fitstore/internal/testsupport"
)

func TestResolveAmbiguousName(t *testing.T) {
	db := testsupport.OpenFixture(t)
	testsupport.InsertStatistic(t, db, "HR", "monitor", "", "bpm")
	testsupport.InsertStatistic(t, db, "HR", "activity", "Bike", "bpm")
	resolver := NewResolverService(repository.NewStatisticRepository(db))

	// The plural query returns both candidates distinctly.
	matches, err := resolver.Resolve("HR", "", "")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	owners := []string{matches[0].Owner, matches[1].Owner}
	assert.Contains(t, owners, "monitor")
	assert.Contains(t, owners, "activity")

	// The singular query fails, listing both owners.
	_, err = resolver.ResolveOne("HR", "", "")
	var ambiguous *models.AmbiguousStatisticError
	require.ErrorAs(t, err, &ambiguous)
	assert.Len(t, ambiguous.Candidates, 2)
	assert.Contains(t, err.Error(), "monitor")
	assert.Contains(t, err.Error(), "activity")

	// Supplying the disambiguator narrows to one.
	statistic, err := resolver.ResolveOne("HR", "monitor", "")
	require.NoError(t, err)
	assert.Equal(t, "monitor", statistic.Owner)
}

func TestResolveOneNotFound(t *testing.T) {
	db := testsupport.OpenFixture(t)
	resolver := NewResolverService(repository.NewStatisticRepository(db))

	_, err := resolver.ResolveOne("Cadence", "", "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestResolveRejectsEmptyPattern(t *testing.T) {
	db := testsupport.OpenFixture(t)
	resolver := NewResolverService(repository.NewStatisticRepository(db))

	_, err := resolver.Resolve("", "", "")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}
