package worldcup

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("not found")

// Table names used in NotFoundError.
const (
	TableWinners   = "winners"
	TableRunnerUps = "runner-ups"
	TableResults   = "results"
)

// NotFoundError reports a lookup key missing from its table.
type NotFoundError struct {
	Table string
	Key   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q not found", e.Table, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// WinsFor describes how many times country has won. An empty country is the
// "no selection" state and yields an empty string.
func (d *Dataset) WinsFor(country string) (string, error) {
	if country == "" {
		return "", nil
	}
	wins, ok := d.winsByCountry[country]
	if !ok {
		return "", &NotFoundError{Table: TableWinners, Key: country}
	}
	return fmt.Sprintf("%s has won %d times.", country, wins), nil
}

// RunnerUpsFor describes how many times country finished runner-up.
func (d *Dataset) RunnerUpsFor(country string) (string, error) {
	if country == "" {
		return "", nil
	}
	n, ok := d.runnerUpsByCountry[country]
	if !ok {
		return "", &NotFoundError{Table: TableRunnerUps, Key: country}
	}
	return fmt.Sprintf("%s has been runner-up %d times.", country, n), nil
}

// ResultFor describes the final of the given year. Year 0 means no selection.
func (d *Dataset) ResultFor(year int) (string, error) {
	if year == 0 {
		return "", nil
	}
	r, ok := d.resultsByYear[year]
	if !ok {
		return "", &NotFoundError{Table: TableResults, Key: fmt.Sprint(year)}
	}
	return fmt.Sprintf("In %d, %s won the World Cup, and %s was the runner-up.", r.Year, r.Winner, r.RunnerUp), nil
}
