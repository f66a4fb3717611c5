package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/piwi3910/cargostow/internal/rearrangement"
)

// RearrangeHandler handles POST /api/rearrange?job=<name>, proposing an
// eviction plan for the items in the request body against the named
// job's containers. The job's saved containers are never mutated by
// this call — rearrangement.Suggest only ever operates on a deep copy.
func RearrangeHandler(r chi.Router) {
	r.Post("/", rearrange)
}

type rearrangeRequest struct {
	Items []ItemDTO `json:"items"`
}

func rearrange(w http.ResponseWriter, r *http.Request) {
	job, ok := loadJob(w, r)
	if !ok {
		return
	}

	var req rearrangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result := rearrangement.Suggest(job.Containers, itemsFromDTOs(req.Items))
	respondJSON(w, http.StatusOK, result)
}
