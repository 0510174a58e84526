package worldcup

// ColorScale names a continuous plotly color scale.
type ColorScale string

const (
	ScaleBlues ColorScale = "Blues"
	ScaleReds  ColorScale = "Reds"
)

// LocationModeCountryNames asks the charting library to resolve locations by
// country name.
const LocationModeCountryNames = "country names"

// ChoroplethSpec is everything the browser needs to draw one shaded world map.
type ChoroplethSpec struct {
	Title        string     `json:"title"`
	ValueLabel   string     `json:"value_label"`
	LocationMode string     `json:"location_mode"`
	ColorScale   ColorScale `json:"color_scale"`
	Locations    []string   `json:"locations"`
	Values       []int      `json:"values"`
	HoverNames   []string   `json:"hover_names"`
}

// BuildChoropleth derives a map spec from rows. location picks the country
// name (also used as the hover label) and value the shading intensity.
func BuildChoropleth[R any](rows []R, location func(R) string, value func(R) int, valueLabel string, scale ColorScale, title string) ChoroplethSpec {
	spec := ChoroplethSpec{
		Title:        title,
		ValueLabel:   valueLabel,
		LocationMode: LocationModeCountryNames,
		ColorScale:   scale,
		Locations:    make([]string, len(rows)),
		Values:       make([]int, len(rows)),
		HoverNames:   make([]string, len(rows)),
	}
	for i, r := range rows {
		name := location(r)
		spec.Locations[i] = name
		spec.Values[i] = value(r)
		spec.HoverNames[i] = name
	}
	return spec
}

// WinnersMap shades each winning country by its number of titles.
func (d *Dataset) WinnersMap() ChoroplethSpec {
	return BuildChoropleth(d.winners,
		func(w Winner) string { return w.Country },
		func(w Winner) int { return w.Wins },
		"Wins", ScaleBlues, "FIFA World Cup Winners by Country")
}

// RunnerUpsMap shades each runner-up country by its number of lost finals.
func (d *Dataset) RunnerUpsMap() ChoroplethSpec {
	return BuildChoropleth(d.runnerUps,
		func(r RunnerUp) string { return r.Country },
		func(r RunnerUp) int { return r.RunnerUps },
		"RunnerUps", ScaleReds, "FIFA World Cup Runner-Ups by Country")
}

// Figure is the plotly.js figure shape.
type Figure struct {
	Data   []FigureTrace `json:"data"`
	Layout FigureLayout  `json:"layout"`
}

type FigureTrace struct {
	Type          string       `json:"type"`
	LocationMode  string       `json:"locationmode"`
	Locations     []string     `json:"locations"`
	Z             []int        `json:"z"`
	HoverText     []string     `json:"hovertext"`
	ColorScale    ColorScale   `json:"colorscale"`
	ReverseScale  bool         `json:"reversescale"`
	ColorBar      FigureTitled `json:"colorbar"`
	HoverTemplate string       `json:"hovertemplate"`
}

type FigureTitled struct {
	Title FigureText `json:"title"`
}

type FigureText struct {
	Text string `json:"text"`
}

type FigureLayout struct {
	Title  FigureText `json:"title"`
	Geo    FigureGeo  `json:"geo"`
	Margin FigureBox  `json:"margin"`
}

type FigureGeo struct {
	ShowFrame      bool             `json:"showframe"`
	ShowCoastlines bool             `json:"showcoastlines"`
	Projection     FigureProjection `json:"projection"`
}

type FigureProjection struct {
	Type string `json:"type"`
}

type FigureBox struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Figure converts s into a single-trace plotly choropleth. plotly.js
// named sequential scales run dark to light, so the scale is reversed to shade
// higher values darker.
func (s ChoroplethSpec) Figure() Figure {
	return Figure{
		Data: []FigureTrace{{
			Type:          "choropleth",
			LocationMode:  s.LocationMode,
			Locations:     s.Locations,
			Z:             s.Values,
			HoverText:     s.HoverNames,
			ColorScale:    s.ColorScale,
			ReverseScale:  true,
			ColorBar:      FigureTitled{Title: FigureText{Text: s.ValueLabel}},
			HoverTemplate: "<b>%{hovertext}</b><br>" + s.ValueLabel + "=%{z}<extra></extra>",
		}},
		Layout: FigureLayout{
			Title: FigureText{Text: s.Title},
			Geo: FigureGeo{
				ShowFrame:      false,
				ShowCoastlines: true,
				Projection:     FigureProjection{Type: "natural earth"},
			},
			Margin: FigureBox{L: 0, R: 0, T: 50, B: 0},
		},
	}
}
