package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupOutput(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, LookupOutput("Spain has won 1 times.", false).Render(context.Background(), &buf))
	assert.Equal(t, "<p>Spain has won 1 times.</p>", buf.String())

	buf.Reset()
	require.NoError(t, LookupOutput("", false).Render(context.Background(), &buf))
	assert.Empty(t, buf.String())

	buf.Reset()
	require.NoError(t, LookupOutput("Spain not found in runner-ups.", true).Render(context.Background(), &buf))
	assert.Equal(t, `<p class="text-red-700">Spain not found in runner-ups.</p>`, buf.String())
}

func TestMapTabs_FirstTabVisible(t *testing.T) {
	var buf bytes.Buffer
	tabs := []MapTab{
		{ID: "a", Label: "A", Figure: map[string]int{"x": 1}},
		{ID: "b", Label: "B", Figure: map[string]int{"x": 2}},
	}
	require.NoError(t, MapTabs(tabs).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `<div id="a" class="tab-panel" role="tabpanel">`)
	assert.Contains(t, html, `<div id="b" class="tab-panel" role="tabpanel" hidden>`)
	assert.Contains(t, html, `data-tab="a" aria-selected="true"`)
	assert.Contains(t, html, `data-tab="b" aria-selected="false"`)
	assert.Equal(t, 2, strings.Count(html, `type="application/json"`))
}

func TestLookupControl_Binding(t *testing.T) {
	var buf bytes.Buffer
	p := LookupPanel{
		Selector: Selector{
			ID:          "year-dropdown",
			Name:        "year",
			Placeholder: "Select a year",
			Endpoint:    "/lookup/year",
			Options:     []Option{{Label: "2018", Value: "2018"}},
		},
		OutputID: "year-output",
	}
	require.NoError(t, LookupControl(p).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `<select id="year-dropdown" name="year"`)
	assert.Contains(t, html, `hx-get="/lookup/year" hx-trigger="change" hx-target="#year-output"`)
	assert.Contains(t, html, `<option value="">Select a year</option>`)
	assert.Contains(t, html, `<option value="2018">2018</option>`)
	assert.Contains(t, html, `<div id="year-output"`)
}
