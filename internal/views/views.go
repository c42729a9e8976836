package views

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates
var viewsFS embed.FS

var dashboardTmpl *template.Template

// loadTemplatesFromFS parses dashboard templates from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) error {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return err
	}
	dashboardTmpl, err = template.ParseFS(sub, "*.html", "partials/*.html")
	if err != nil {
		return err
	}
	return nil
}

// LoadTemplates parses the embedded dashboard templates.  Call during
// startup before serving requests; if it returns an error, do not start the
// server.
func LoadTemplates() error {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// Metric is one cell of the metrics panel: a label, the latest value and the
// signed delta against the previous reading.
type Metric struct {
	Label string
	Value string
	Delta string
}

// ReadingRow is one row of the recent-readings table.
type ReadingRow struct {
	Date string
	Sys  int
	Dia  int
	HR   int
}

// FormState carries the entry form values so a rejected submission renders
// with the user's input intact.
type FormState struct {
	Systolic  int
	Diastolic int
	HeartRate int
	Symptoms  string
	Date      string
	Time      string
}

// DashboardData is the view model for the dashboard page.
type DashboardData struct {
	Metrics  []Metric
	Readings []ReadingRow
	Form     FormState
	Guidance string
	FlashMsg string
	ErrorMsg string
}

// RenderDashboard executes the dashboard template into w.
func RenderDashboard(w io.Writer, data *DashboardData) error {
	if dashboardTmpl == nil {
		return errors.New("dashboard template not loaded: call views.LoadTemplates during startup")
	}
	return dashboardTmpl.ExecuteTemplate(w, "dashboard", data)
}
