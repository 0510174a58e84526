package worldcup

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinsFor_EveryCountry(t *testing.T) {
	d := New()
	for _, w := range d.Winners() {
		got, err := d.WinsFor(w.Country)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%s has won %d times.", w.Country, w.Wins), got)
	}
}

func TestRunnerUpsFor_EveryCountry(t *testing.T) {
	d := New()
	for _, r := range d.RunnerUps() {
		got, err := d.RunnerUpsFor(r.Country)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%s has been runner-up %d times.", r.Country, r.RunnerUps), got)
	}
}

func TestResultFor_EveryYear(t *testing.T) {
	d := New()
	for _, r := range d.Results() {
		got, err := d.ResultFor(r.Year)
		require.NoError(t, err)
		want := fmt.Sprintf("In %d, %s won the World Cup, and %s was the runner-up.", r.Year, r.Winner, r.RunnerUp)
		assert.Equal(t, want, got)
	}
}

func TestLookups_Scenarios(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		run  func() (string, error)
		want string
	}{
		{"wins brazil", func() (string, error) { return d.WinsFor("Brazil") }, "Brazil has won 5 times."},
		{"runner-ups argentina", func() (string, error) { return d.RunnerUpsFor("Argentina") }, "Argentina has been runner-up 3 times."},
		{"result 1990", func() (string, error) { return d.ResultFor(1990) }, "In 1990, Germany won the World Cup, and Argentina was the runner-up."},
		{"result 2018", func() (string, error) { return d.ResultFor(2018) }, "In 2018, France won the World Cup, and Croatia was the runner-up."},
		{"result 1982 normalized", func() (string, error) { return d.ResultFor(1982) }, "In 1982, Italy won the World Cup, and Germany was the runner-up."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookups_NoSelection(t *testing.T) {
	d := New()

	got, err := d.WinsFor("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = d.RunnerUpsFor("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = d.ResultFor(0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLookups_Miss(t *testing.T) {
	d := New()

	_, err := d.WinsFor("Croatia")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, TableWinners, nf.Table)
	assert.Equal(t, "Croatia", nf.Key)
	assert.Contains(t, err.Error(), `"Croatia"`)

	_, err = d.RunnerUpsFor("Uruguay")
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, TableRunnerUps, nf.Table)

	_, err = d.ResultFor(1930)
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, TableResults, nf.Table)
	assert.Equal(t, "1930", nf.Key)
}
