package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/piwi3910/cargostow/internal/project"
	"github.com/piwi3910/cargostow/internal/waste"
)

// WasteHandler handles GET /api/waste?job=<name>,
// POST /api/waste/return-plan, and POST /api/waste/complete-undocking.
func WasteHandler(r chi.Router) {
	r.Get("/", identifyWaste)
	r.Post("/return-plan", returnPlan)
	r.Post("/complete-undocking", completeUndocking)
}

func identifyWaste(w http.ResponseWriter, r *http.Request) {
	job, ok := loadJob(w, r)
	if !ok {
		return
	}
	items := waste.IdentifyWaste(job.Containers, time.Now())
	respondJSON(w, http.StatusOK, map[string]any{"waste": items})
}

type returnPlanRequest struct {
	UndockingContainerID string    `json:"undocking_container_id"`
	Date                 time.Time `json:"date"`
	MaxWeightKg          float64   `json:"max_weight_kg"`
}

func returnPlan(w http.ResponseWriter, r *http.Request) {
	job, ok := loadJob(w, r)
	if !ok {
		return
	}
	var req returnPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Date.IsZero() {
		req.Date = time.Now()
	}
	plan := waste.WasteReturnPlan(job.Containers, req.UndockingContainerID, req.Date, req.MaxWeightKg)
	respondJSON(w, http.StatusOK, plan)
}

type completeUndockingRequest struct {
	Timestamp time.Time `json:"timestamp"`
}

type completeUndockingResponse struct {
	ItemsRemoved int `json:"items_removed"`
}

func completeUndocking(w http.ResponseWriter, r *http.Request) {
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

	var req completeUndockingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now()
	}

	removed := waste.CompleteUndocking(job.Containers, req.Timestamp)
	if err := project.SaveJob(job); err != nil {
		respondError(w, http.StatusInternalServerError, "undocking completed but job could not be saved: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, completeUndockingResponse{ItemsRemoved: removed})
}
