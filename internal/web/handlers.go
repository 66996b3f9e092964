package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emiliopalmerini/sleepdebt/internal/sleep"
)

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	chart := buildChart(s.nights, s.target)
	if err := chart.Render(w); err != nil {
		slog.Error("failed to render chart", "error", err)
	}
}

func (s *Server) handleAPINights(w http.ResponseWriter, r *http.Request) {
	labels := make([]string, len(s.nights))
	hours := make([]float64, len(s.nights))
	rolling7 := make([]float64, len(s.nights))
	rolling14 := make([]float64, len(s.nights))
	cumulative := make([]float64, len(s.nights))
	statuses := make([]sleep.Status, len(s.nights))

	for i, n := range s.nights {
		labels[i] = n.Date.Format("2006-01-02")
		hours[i] = n.SleepHours
		rolling7[i] = n.Rolling7dSleep
		rolling14[i] = n.Rolling14dDebt
		cumulative[i] = n.CumulativeDebt
		statuses[i] = n.Status
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"labels":           labels,
		"sleep_hours":      hours,
		"rolling_7d_sleep": rolling7,
		"rolling_14d_debt": rolling14,
		"cumulative_debt":  cumulative,
		"status":           statuses,
		"target_sleep":     s.target,
	})
}
