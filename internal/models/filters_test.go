package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamePattern(t *testing.T) {
	assert.Error(t, NamePattern("").Validate())
	assert.NoError(t, NamePattern("HR").Validate())

	assert.True(t, NamePattern("Climb %").HasWildcards())
	assert.True(t, NamePattern("H_").HasWildcards())
	assert.False(t, NamePattern("Rest HR").HasWildcards())
}

func TestTimeRangeHalfOpen(t *testing.T) {
	from := time.Date(2018, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC)
	tr := TimeRange{From: from, To: to}

	require.NoError(t, tr.Validate())
	assert.True(t, tr.Contains(from))
	assert.True(t, tr.Contains(to.Add(-time.Second)))
	assert.False(t, tr.Contains(to))
	assert.False(t, tr.Contains(from.Add(-time.Second)))
}

func TestTimeRangeUnbounded(t *testing.T) {
	var tr TimeRange
	require.NoError(t, tr.Validate())
	assert.False(t, tr.Bounded())
	assert.True(t, tr.Contains(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, tr.Contains(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestTimeRangeInverted(t *testing.T) {
	tr := TimeRange{
		From: time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2018, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Error(t, tr.Validate())
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("daily")
	require.NoError(t, err)
	assert.Equal(t, PeriodDaily, p)

	p, err = ParsePeriod("monthly")
	require.NoError(t, err)
	assert.Equal(t, PeriodMonthly, p)

	_, err = ParsePeriod("weekly")
	assert.Error(t, err)
}

func TestPeriodKeys(t *testing.T) {
	at := time.Date(2018, 2, 18, 10, 26, 56, 0, time.UTC)
	assert.Equal(t, "2018-02-18", PeriodDaily.Key(at))
	assert.Equal(t, "2018-02", PeriodMonthly.Key(at))

	keys := PeriodDaily.Keys(
		time.Date(2018, 2, 27, 12, 0, 0, 0, time.UTC),
		time.Date(2018, 3, 2, 0, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, []string{"2018-02-27", "2018-02-28", "2018-03-01", "2018-03-02"}, keys)

	keys = PeriodMonthly.Keys(
		time.Date(2017, 11, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2018, 1, 20, 0, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, []string{"2017-11", "2017-12", "2018-01"}, keys)
}

func TestPeriodStartRoundTrip(t *testing.T) {
	start, err := PeriodDaily.Start("2018-02-18")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 2, 18, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2018, 2, 19, 0, 0, 0, 0, time.UTC), PeriodDaily.Next(start))

	start, err = PeriodMonthly.Start("2018-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC), PeriodMonthly.Next(start))

	_, err = PeriodDaily.Start("18/02/2018")
	assert.Error(t, err)
}
