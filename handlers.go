package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"worldcup-dash/templates"
	"worldcup-dash/worldcup"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const pageTitle = "FIFA World Cup Dashboard"

var errBadSelection = errors.New("bad selection")

// binding ties one dropdown to the endpoint it calls on change and the output
// region that endpoint fills. Each output depends on its own control only.
type binding struct {
	control     string
	param       string
	endpoint    string
	output      string
	placeholder string
	options     []templates.Option
	lookup      func(value string) (string, error)
}

type dashboard struct {
	data     *worldcup.Dataset
	bindings []binding
	page     templates.DashboardPageData
	logger   *zap.Logger
}

// newDashboard derives everything the page needs from the dataset once; it is
// shared read-only by every request.
func newDashboard(data *worldcup.Dataset, logger *zap.Logger) *dashboard {
	h := &dashboard{data: data, logger: logger}

	h.bindings = []binding{
		{
			control:     "country-dropdown",
			param:       "country",
			endpoint:    "/lookup/wins",
			output:      "win-output",
			placeholder: "Select a country",
			options:     stringOptions(data.WinnerCountries()),
			lookup:      data.WinsFor,
		},
		{
			control:     "runner-up-dropdown",
			param:       "country",
			endpoint:    "/lookup/runner-ups",
			output:      "runner-up-output",
			placeholder: "Select a country",
			options:     stringOptions(data.RunnerUpCountries()),
			lookup:      data.RunnerUpsFor,
		},
		{
			control:     "year-dropdown",
			param:       "year",
			endpoint:    "/lookup/year",
			output:      "year-output",
			placeholder: "Select a year",
			options:     yearOptions(data.Years()),
			lookup: func(value string) (string, error) {
				if value == "" {
					return data.ResultFor(0)
				}
				year, err := strconv.Atoi(value)
				if err != nil {
					return "", fmt.Errorf("%w: year %q", errBadSelection, value)
				}
				return data.ResultFor(year)
			},
		},
	}

	h.page = templates.DashboardPageData{
		Title: pageTitle,
		Tabs: []templates.MapTab{
			{ID: "choropleth-map-winners", Label: "Winners", Figure: data.WinnersMap().Figure()},
			{ID: "choropleth-map-runners-up", Label: "Runner-Ups", Figure: data.RunnerUpsMap().Figure()},
		},
	}
	for _, b := range h.bindings {
		h.page.Lookups = append(h.page.Lookups, templates.LookupPanel{
			Selector: templates.Selector{
				ID:          b.control,
				Name:        b.param,
				Placeholder: b.placeholder,
				Endpoint:    b.endpoint,
				Options:     b.options,
			},
			OutputID: b.output,
		})
	}
	return h
}

func stringOptions(values []string) []templates.Option {
	opts := make([]templates.Option, len(values))
	for i, v := range values {
		opts[i] = templates.Option{Label: v, Value: v}
	}
	return opts
}

func yearOptions(years []int) []templates.Option {
	opts := make([]templates.Option, len(years))
	for i, y := range years {
		s := strconv.Itoa(y)
		opts[i] = templates.Option{Label: s, Value: s}
	}
	return opts
}

func (h *dashboard) routes(r *mux.Router) {
	r.Handle("/", templ.Handler(templates.Dashboard(h.page))).Methods(http.MethodGet)
	for _, b := range h.bindings {
		r.HandleFunc(b.endpoint, h.lookupHandler(b)).Methods(http.MethodGet)
	}
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet)
}

func (h *dashboard) lookupHandler(b binding) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value := r.URL.Query().Get(b.param)
		text, err := b.lookup(value)

		var nf *worldcup.NotFoundError
		switch {
		case err == nil:
			templ.Handler(templates.LookupOutput(text, false)).ServeHTTP(w, r)
		case errors.As(err, &nf):
			h.logger.Warn("lookup miss",
				zap.String("control", b.control),
				zap.String("table", nf.Table),
				zap.String("key", nf.Key))
			msg := fmt.Sprintf("%s not found in %s.", nf.Key, nf.Table)
			templ.Handler(templates.LookupOutput(msg, true), templ.WithStatus(http.StatusNotFound)).ServeHTTP(w, r)
		case errors.Is(err, errBadSelection):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("lookup failed", zap.String("control", b.control), zap.Error(err))
			http.Error(w, "Lookup failed", http.StatusInternalServerError)
		}
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func newRouter(h *dashboard, logger *zap.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(logger))
	h.routes(r)
	return r
}
