package handler

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/no-pressure/internal/agent"
	"github.com/iliyamo/no-pressure/internal/config"
	"github.com/iliyamo/no-pressure/internal/model"
	"github.com/iliyamo/no-pressure/internal/views"
)

// recentLimit is how many rows the dashboard table and the default API
// listing show.
const recentLimit = 10

// maxListLimit caps the limit query parameter on /v1/readings.
const maxListLimit = 100

// dbTimeout bounds each storage call issued by a handler.
const dbTimeout = 5 * time.Second

// ReadingStore is the storage surface the handlers need.  Implemented by
// repository.ReadingRepo; tests substitute an in-memory fake.
type ReadingStore interface {
	Insert(ctx context.Context, systolic, diastolic, heartRate int, timestamp *time.Time) (int64, error)
	GetRecent(ctx context.Context, limit int) ([]model.Reading, error)
	GetLatest(ctx context.Context) (*model.Reading, error)
}

// ReadingHandler bundles dependencies for the dashboard and the readings API.
type ReadingHandler struct {
	Cfg      config.Config
	Readings ReadingStore
	Agent    agent.Generator
}

func NewReadingHandler(cfg config.Config, store ReadingStore, gen agent.Generator) *ReadingHandler {
	return &ReadingHandler{Cfg: cfg, Readings: store, Agent: gen}
}

// ----- DTOs -----

type submitReq struct {
	Systolic  int    `form:"systolic"`
	Diastolic int    `form:"diastolic"`
	HeartRate int    `form:"heart_rate"`
	Symptoms  string `form:"symptoms"`
	Date      string `form:"reading_date"` // 2006-01-02, optional
	Time      string `form:"reading_time"` // 15:04, optional
}

// Dashboard renders the metrics panel, the entry form and the recent
// readings table.
func (h *ReadingHandler) Dashboard(c echo.Context) error {
	state := views.DashboardData{Form: defaultForm()}
	h.loadRecent(c, &state)
	return h.renderDashboard(c, http.StatusOK, &state)
}

// Submit handles one form submission: validate bounds, generate guidance,
// insert the reading, re-fetch and re-render.  A failing step surfaces its
// error inline and aborts the remaining steps for this submission only.
func (h *ReadingHandler) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return h.failSubmit(c, http.StatusBadRequest, defaultForm(), "Invalid form submission.")
	}
	form := formStateFrom(req)
	if err := model.Validate(req.Systolic, req.Diastolic, req.HeartRate); err != nil {
		return h.failSubmit(c, http.StatusUnprocessableEntity, form, err.Error())
	}
	timestamp, err := parseTimestamp(req.Date, req.Time)
	if err != nil {
		return h.failSubmit(c, http.StatusUnprocessableEntity, form, err.Error())
	}

	// Guidance first, storage second: a reading is only logged once the
	// remote service has answered for it.
	gctx, cancelGuidance := context.WithTimeout(c.Request().Context(), h.Cfg.GuidanceTimeout)
	defer cancelGuidance()
	guidance, err := h.Agent.GenerateGuidance(gctx, req.Systolic, req.Diastolic, req.HeartRate, req.Symptoms)
	if err != nil {
		slog.Error("generate guidance", "error", err)
		return h.failSubmit(c, http.StatusBadGateway, form, "Guidance service failed: "+err.Error())
	}

	ictx, cancelInsert := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancelInsert()
	id, err := h.Readings.Insert(ictx, req.Systolic, req.Diastolic, req.HeartRate, timestamp)
	if err != nil {
		slog.Error("insert reading", "error", err)
		return h.failSubmit(c, http.StatusInternalServerError, form, "Failed to save reading: "+err.Error())
	}
	slog.Info("reading logged", "id", id, "sys", req.Systolic, "dia", req.Diastolic, "hr", req.HeartRate)

	state := views.DashboardData{
		Form:     defaultForm(),
		Guidance: guidance,
		FlashMsg: fmt.Sprintf("Logged %d/%d with heart rate %d.", req.Systolic, req.Diastolic, req.HeartRate),
	}
	h.loadRecent(c, &state)
	return h.renderDashboard(c, http.StatusOK, &state)
}

// ListReadings returns recent readings as JSON, newest first.  The limit
// query parameter is clamped to 1..100 and defaults to 10.
func (h *ReadingHandler) ListReadings(c echo.Context) error {
	limit := recentLimit
	if s := c.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
		}
		limit = n
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	readings, err := h.Readings.GetRecent(ctx, limit)
	if err != nil {
		slog.Error("list readings", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, readings)
}

// LatestReading returns the most recent reading, or 404 when none exist.
func (h *ReadingHandler) LatestReading(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	latest, err := h.Readings.GetLatest(ctx)
	if err != nil {
		slog.Error("latest reading", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if latest == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no readings"})
	}
	return c.JSON(http.StatusOK, latest)
}

// loadRecent fills the metrics panel and the readings table.  A read failure
// degrades to an inline message; the page still renders.
func (h *ReadingHandler) loadRecent(c echo.Context, state *views.DashboardData) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()
	readings, err := h.Readings.GetRecent(ctx, recentLimit)
	if err != nil {
		slog.Error("load recent readings", "error", err)
		if state.ErrorMsg == "" {
			state.ErrorMsg = "Unable to load readings: " + err.Error()
		}
		state.Metrics = views.BuildMetrics(nil, nil)
		return
	}
	latest, previous := views.SplitLatestPrevious(readings)
	state.Metrics = views.BuildMetrics(latest, previous)
	state.Readings = views.BuildRows(readings)
}

func (h *ReadingHandler) failSubmit(c echo.Context, code int, form views.FormState, msg string) error {
	state := views.DashboardData{Form: form, ErrorMsg: msg}
	h.loadRecent(c, &state)
	return h.renderDashboard(c, code, &state)
}

func (h *ReadingHandler) renderDashboard(c echo.Context, code int, data *views.DashboardData) error {
	var buf bytes.Buffer
	if err := views.RenderDashboard(&buf, data); err != nil {
		slog.Error("render dashboard", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to render page"})
	}
	return c.HTMLBlob(code, buf.Bytes())
}

// defaultForm pre-fills the entry form with typical resting values.
func defaultForm() views.FormState {
	return views.FormState{Systolic: 118, Diastolic: 76, HeartRate: 68}
}

func formStateFrom(req submitReq) views.FormState {
	return views.FormState{
		Systolic:  req.Systolic,
		Diastolic: req.Diastolic,
		HeartRate: req.HeartRate,
		Symptoms:  req.Symptoms,
		Date:      req.Date,
		Time:      req.Time,
	}
}

// parseTimestamp combines the optional date and time fields.  Both empty
// means the storage default (insertion time) applies.  A date without a time
// records midnight; a time without a date records it on today's date.
func parseTimestamp(dateStr, timeStr string) (*time.Time, error) {
	if dateStr == "" && timeStr == "" {
		return nil, nil
	}
	day := time.Now().UTC()
	if dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid reading date %q", dateStr)
		}
		day = d
	}
	var hour, minute int
	if timeStr != "" {
		tm, err := time.Parse("15:04", timeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid reading time %q", timeStr)
		}
		hour, minute = tm.Hour(), tm.Minute()
	}
	ts := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)
	return &ts, nil
}
