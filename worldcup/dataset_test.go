package worldcup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FoldsWestGermany(t *testing.T) {
	rows := []YearResult{
		{Year: 1974, Winner: "West Germany", RunnerUp: "Netherlands"},
		{Year: 1966, Winner: "England", RunnerUp: "West Germany"},
		{Year: 2018, Winner: "France", RunnerUp: "Croatia"},
	}

	got := Normalize(rows)

	assert.Equal(t, []YearResult{
		{Year: 1974, Winner: "Germany", RunnerUp: "Netherlands"},
		{Year: 1966, Winner: "England", RunnerUp: "Germany"},
		{Year: 2018, Winner: "France", RunnerUp: "Croatia"},
	}, got)
	// input untouched
	assert.Equal(t, "West Germany", rows[0].Winner)
}

func TestDataset_NoHistoricalNamesRemain(t *testing.T) {
	d := New()
	for _, r := range d.Results() {
		assert.NotEqual(t, "West Germany", r.Winner, "year %d", r.Year)
		assert.NotEqual(t, "West Germany", r.RunnerUp, "year %d", r.Year)
	}

	var found bool
	for _, r := range d.Results() {
		if r.Year == 1982 {
			found = true
			assert.Equal(t, "Germany", r.RunnerUp)
		}
	}
	require.True(t, found, "1982 missing from results")
}

func TestDataset_KeysAreUnique(t *testing.T) {
	d := New()

	seen := map[string]bool{}
	for _, c := range d.WinnerCountries() {
		assert.False(t, seen[c], "duplicate winner %s", c)
		seen[c] = true
	}

	seen = map[string]bool{}
	for _, c := range d.RunnerUpCountries() {
		assert.False(t, seen[c], "duplicate runner-up %s", c)
		seen[c] = true
	}

	years := map[int]bool{}
	for _, y := range d.Years() {
		assert.False(t, years[y], "duplicate year %d", y)
		years[y] = true
	}
}

func TestDataset_TableShapes(t *testing.T) {
	d := New()
	assert.Len(t, d.Winners(), 8)
	assert.Len(t, d.RunnerUps(), 8)
	assert.Len(t, d.Results(), 10)

	assert.Equal(t, []int{2018, 2014, 2010, 2006, 2002, 1998, 1994, 1990, 1986, 1982}, d.Years())
	assert.Equal(t, "Brazil", d.WinnerCountries()[0])
	assert.Equal(t, "Hungary", d.RunnerUpCountries()[7])
}

func TestDataset_AccessorsReturnCopies(t *testing.T) {
	d := New()

	w := d.Winners()
	w[0].Wins = 99
	r := d.Results()
	r[0].Winner = "Nobody"

	assert.Equal(t, 5, d.Winners()[0].Wins)
	assert.Equal(t, "France", d.Results()[0].Winner)
}

func TestDefault_IsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
