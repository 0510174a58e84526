// Package worldcup holds the static World Cup result tables and the lookups
// and map views derived from them.
package worldcup

import (
	"slices"
	"sync"
)

// Winner is one row of the winners table.
type Winner struct {
	Country string `json:"country"`
	Wins    int    `json:"wins"`
}

// RunnerUp is one row of the runner-ups table.
type RunnerUp struct {
	Country   string `json:"country"`
	RunnerUps int    `json:"runner_ups"`
}

// YearResult pairs a tournament year with its winner and runner-up.
type YearResult struct {
	Year     int    `json:"year"`
	Winner   string `json:"winner"`
	RunnerUp string `json:"runner_up"`
}

var winners = []Winner{
	{Country: "Brazil", Wins: 5},
	{Country: "Germany", Wins: 4},
	{Country: "Italy", Wins: 4},
	{Country: "Argentina", Wins: 3},
	{Country: "France", Wins: 2},
	{Country: "Uruguay", Wins: 2},
	{Country: "England", Wins: 1},
	{Country: "Spain", Wins: 1},
}

var runnerUps = []RunnerUp{
	{Country: "Germany", RunnerUps: 4},
	{Country: "Argentina", RunnerUps: 3},
	{Country: "Netherlands", RunnerUps: 3},
	{Country: "Italy", RunnerUps: 2},
	{Country: "Brazil", RunnerUps: 2},
	{Country: "France", RunnerUps: 1},
	{Country: "Czech Republic", RunnerUps: 2},
	{Country: "Hungary", RunnerUps: 2},
}

// Raw rows, before the historical name is folded into its successor.
var yearResults = []YearResult{
	{Year: 2018, Winner: "France", RunnerUp: "Croatia"},
	{Year: 2014, Winner: "Germany", RunnerUp: "Argentina"},
	{Year: 2010, Winner: "Spain", RunnerUp: "Netherlands"},
	{Year: 2006, Winner: "Italy", RunnerUp: "France"},
	{Year: 2002, Winner: "Brazil", RunnerUp: "Germany"},
	{Year: 1998, Winner: "France", RunnerUp: "Brazil"},
	{Year: 1994, Winner: "Brazil", RunnerUp: "Italy"},
	{Year: 1990, Winner: "Germany", RunnerUp: "Argentina"},
	{Year: 1986, Winner: "Argentina", RunnerUp: "Germany"},
	{Year: 1982, Winner: "Italy", RunnerUp: "West Germany"},
}

// Name aliases folded into the modern country name.
var countryAliases = map[string]string{
	"West Germany": "Germany",
}

// Normalize returns a copy of rows with historical country names replaced by
// their modern successor in both the Winner and RunnerUp columns.
func Normalize(rows []YearResult) []YearResult {
	out := make([]YearResult, len(rows))
	for i, r := range rows {
		out[i] = YearResult{
			Year:     r.Year,
			Winner:   canonicalCountry(r.Winner),
			RunnerUp: canonicalCountry(r.RunnerUp),
		}
	}
	return out
}

func canonicalCountry(name string) string {
	if modern, ok := countryAliases[name]; ok {
		return modern
	}
	return name
}

// Dataset is the read-only set of tables served by the dashboard. It is safe
// for concurrent use because nothing mutates it after New returns.
type Dataset struct {
	winners   []Winner
	runnerUps []RunnerUp
	results   []YearResult

	winsByCountry      map[string]int
	runnerUpsByCountry map[string]int
	resultsByYear      map[int]YearResult
}

// New builds a dataset from the embedded tables.
func New() *Dataset {
	d := &Dataset{
		winners:            slices.Clone(winners),
		runnerUps:          slices.Clone(runnerUps),
		results:            Normalize(yearResults),
		winsByCountry:      make(map[string]int, len(winners)),
		runnerUpsByCountry: make(map[string]int, len(runnerUps)),
		resultsByYear:      make(map[int]YearResult, len(yearResults)),
	}
	for _, w := range d.winners {
		d.winsByCountry[w.Country] = w.Wins
	}
	for _, r := range d.runnerUps {
		d.runnerUpsByCountry[r.Country] = r.RunnerUps
	}
	for _, r := range d.results {
		d.resultsByYear[r.Year] = r
	}
	return d
}

var defaultDataset = sync.OnceValue(New)

// Default returns the process-wide dataset, building it on first use.
func Default() *Dataset {
	return defaultDataset()
}

// Winners returns a copy of the winners table in source order.
func (d *Dataset) Winners() []Winner {
	return slices.Clone(d.winners)
}

// RunnerUps returns a copy of the runner-ups table in source order.
func (d *Dataset) RunnerUps() []RunnerUp {
	return slices.Clone(d.runnerUps)
}

// Results returns a copy of the normalized year results, newest first.
func (d *Dataset) Results() []YearResult {
	return slices.Clone(d.results)
}

// WinnerCountries lists the key column of the winners table.
func (d *Dataset) WinnerCountries() []string {
	out := make([]string, len(d.winners))
	for i, w := range d.winners {
		out[i] = w.Country
	}
	return out
}

// RunnerUpCountries lists the key column of the runner-ups table.
func (d *Dataset) RunnerUpCountries() []string {
	out := make([]string, len(d.runnerUps))
	for i, r := range d.runnerUps {
		out[i] = r.Country
	}
	return out
}

// Years lists the key column of the year results table.
func (d *Dataset) Years() []int {
	out := make([]int, len(d.results))
	for i, r := range d.results {
		out[i] = r.Year
	}
	return out
}
