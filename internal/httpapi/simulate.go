package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/piwi3910/cargostow/internal/project"
	"github.com/piwi3910/cargostow/internal/timesim"
)

// SimulateHandler handles POST /api/simulate/day, advancing a job's
// simulated clock and persisting the resulting item state.
func SimulateHandler(r chi.Router) {
	r.Post("/day", simulateDay)
}

type simulateDayRequest struct {
	NumOfDays   *int               `json:"num_of_days,omitempty"`
	ToTimestamp *time.Time         `json:"to_timestamp,omitempty"`
	UsedToday   []timesim.UsageKey `json:"used_today,omitempty"`
}

func simulateDay(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("job")
	if name == "" {
		respondError(w, http.StatusBadRequest, "missing required \"job\" parameter")
		return
	}
	job, err := project.LoadJob(name)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	var req simulateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	newDate := timesim.TargetDate(time.Now(), req.NumOfDays, req.ToTimestamp)
	changes := timesim.SimulateDay(job.Containers, newDate, req.UsedToday)

	if err := project.SaveJob(job); err != nil {
		respondError(w, http.StatusInternalServerError, "simulation applied but job could not be saved: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, changes)
}
