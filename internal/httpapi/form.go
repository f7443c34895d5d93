package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"yieldd/internal/schema"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type selectData struct {
	Name     string
	Options  []string
	Selected string
}

var pageTmpl = template.Must(template.New("index.html.tmpl").Funcs(template.FuncMap{
	"choices": func(name string, opts []string, sel string) selectData {
		return selectData{Name: name, Options: opts, Selected: sel}
	},
}).ParseFS(templateFS, "templates/index.html.tmpl"))

// pageData is everything the form page renders. An interaction is either
// idle (no result fields), a result, an error or the load warning.
type pageData struct {
	Input         schema.Input
	HarvestedArea bool
	MinYear       int
	MaxYear       int
	Seasons       []string
	Provinces     []string
	Crops         []string
	SoilTypes     []string
	Irrigations   []string

	YieldText      string
	ProductionText string
	Error          string
	Warning        string
	Caption        string
}

func newPageData(svc Service, in schema.Input) pageData {
	return pageData{
		Input:         in,
		HarvestedArea: svc.Revision().HasHarvestedArea(),
		MinYear:       schema.MinYear,
		MaxYear:       schema.MaxYear,
		Seasons:       schema.Seasons,
		Provinces:     schema.Provinces,
		Crops:         schema.Crops,
		SoilTypes:     schema.SoilTypes,
		Irrigations:   schema.Irrigations,
		Warning:       svc.Warning(),
		Caption:       svc.Caption(),
	}
}

func renderPage(w http.ResponseWriter, data pageData) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func handleFormPage(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, newPageData(svc, schema.DefaultInput()))
	}
}

// handleFormSubmit renders the outcome of one submission. Failures are shown
// on the page with status 200 so the form stays usable.
func handleFormSubmit(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lvl := requestLogLevel(r)
		rev := svc.Revision()
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			data := newPageData(svc, schema.DefaultInput())
			data.Error = "invalid form submission"
			renderPage(w, data)
			logPredictEnd(r, lvl, http.StatusBadRequest, start, "", err)
			return
		}
		in, err := parseForm(r.PostForm, rev)
		data := newPageData(svc, in)
		if err != nil {
			data.Error = err.Error()
			renderPage(w, data)
			logPredictEnd(r, lvl, http.StatusBadRequest, start, "", err)
			return
		}
		logDebugInput(r, lvl, in)
		if !svc.Ready() {
			// Prediction path is unreachable; the warning banner explains why.
			observePrediction(rev.String(), 0, errUnavailable(svc))
			renderPage(w, data)
			logPredictEnd(r, lvl, http.StatusServiceUnavailable, start, "", errUnavailable(svc))
			return
		}
		ctx, cancel := joinContexts(serverBaseCtx, r.Context())
		defer cancel()
		res, err := svc.Predict(ctx, in)
		observePrediction(rev.String(), res.Yield, err)
		if err != nil {
			data.Error = err.Error()
			renderPage(w, data)
			logPredictEnd(r, lvl, statusFor(err), start, "", err)
			return
		}
		data.YieldText = formatYield(res.Yield)
		data.ProductionText = formatProduction(res.Production)
		data.Caption = res.Caption
		renderPage(w, data)
		logPredictEnd(r, lvl, http.StatusOK, start, res.PredictionID, nil)
	}
}
