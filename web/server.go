// Package web serves a localhost-only single-user form; it intentionally has
// no auth/CSRF protection in this mode.
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"workend/config"
	"workend/internal/timeutil"
	"workend/workday"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	cfg    config.Config
	logger *slog.Logger
	now    func() time.Time
	mux    *http.ServeMux
}

type formView struct {
	Title           string
	StartTime       string
	BreakMinutes    string
	OvertimeHours   string
	Defaults        workday.Inputs
	BreakPresets    []float64
	OvertimePresets []float64
	WorkdayMinutes  int
	Result          endTimeResponse
}

type endTimeResponse struct {
	Time       string `json:"time"`
	DayOffset  int    `json:"dayOffset"`
	Label      string `json:"label"`
	StartValid bool   `json:"startValid"`
}

type nowResponse struct {
	Time string `json:"time"`
}

func NewServer(cfg config.Config, logger *slog.Logger) http.Handler {
	return newServer(cfg, logger, time.Now)
}

func newServer(cfg config.Config, logger *slog.Logger, now func() time.Time) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	server := &Server{
		cfg:    cfg,
		logger: logger,
		now:    now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleForm)
	mux.HandleFunc("GET /api/end-time", server.handleAPIEndTime)
	mux.HandleFunc("GET /api/now", server.handleAPINow)
	mux.HandleFunc("GET /healthz", server.handleHealth)
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := s.now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.logger.Debug("request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", rec.status),
		slog.Duration("elapsed", s.now().Sub(started)),
	)
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	defaults := s.cfg.Inputs()
	query := r.URL.Query()

	view := formView{
		Title:           "workend",
		StartTime:       queryOr(query.Get("start"), defaults.StartTime),
		BreakMinutes:    queryOr(query.Get("break"), formatNumber(defaults.BreakMinutes)),
		OvertimeHours:   queryOr(query.Get("overtime"), formatNumber(defaults.OvertimeHours)),
		Defaults:        defaults,
		BreakPresets:    s.cfg.Presets.BreakMinutes,
		OvertimePresets: s.cfg.Presets.OvertimeHours,
		WorkdayMinutes:  workday.WorkdayMinutes,
	}
	view.Result = buildEndTimeResponse(view.StartTime, view.BreakMinutes, view.OvertimeHours)

	if err := renderTemplate(w, "index.html", view); err != nil {
		s.logger.Error("render form", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Missing parameters fall back to the configured defaults; present but
// malformed ones are computed leniently and never rejected.
func (s *Server) handleAPIEndTime(w http.ResponseWriter, r *http.Request) {
	defaults := s.cfg.Inputs()
	query := r.URL.Query()

	start := defaults.StartTime
	if query.Has("start") {
		start = query.Get("start")
	}
	breakRaw := formatNumber(defaults.BreakMinutes)
	if query.Has("break") {
		breakRaw = query.Get("break")
	}
	overtimeRaw := formatNumber(defaults.OvertimeHours)
	if query.Has("overtime") {
		overtimeRaw = query.Get("overtime")
	}

	writeJSON(w, http.StatusOK, buildEndTimeResponse(start, breakRaw, overtimeRaw))
}

func (s *Server) handleAPINow(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, nowResponse{Time: timeutil.ClockOf(s.now())})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func buildEndTimeResponse(start, breakRaw, overtimeRaw string) endTimeResponse {
	result := workday.ComputeFromText(start, breakRaw, overtimeRaw)
	return endTimeResponse{
		Time:       result.Time,
		DayOffset:  result.DayOffset,
		Label:      workday.DayLabel(result.DayOffset),
		StartValid: timeutil.IsClock(strings.TrimSpace(start)),
	}
}

func renderTemplate(w http.ResponseWriter, pageTemplate string, data any) error {
	tmpl, err := template.New("base.html").Funcs(template.FuncMap{
		"fmtNumber": formatNumber,
		"fmtHours": func(minutes int) string {
			return fmt.Sprintf("%d:%02d h", minutes/60, minutes%60)
		},
	}).ParseFS(templateFS, "templates/base.html", "templates/"+pageTemplate)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", pageTemplate, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("render template %s: %w", pageTemplate, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func queryOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
