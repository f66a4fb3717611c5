package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/piwi3910/cargostow/internal/retrieval"
)

// SearchHandler handles GET /api/search?job=<name>&item_id=<id> (or
// &name=<name>), returning the item's location and the retrieval steps
// to extract it.
func SearchHandler(r chi.Router) {
	r.Get("/", search)
}

type searchResponse struct {
	Found          bool                `json:"found"`
	Location       *retrieval.Location `json:"location,omitempty"`
	RetrievalSteps []retrieval.Step    `json:"retrieval_steps,omitempty"`
}

func search(w http.ResponseWriter, r *http.Request) {
	job, ok := loadJob(w, r)
	if !ok {
		return
	}

	itemID := r.URL.Query().Get("item_id")
	name := r.URL.Query().Get("name")
	if itemID == "" && name == "" {
		respondError(w, http.StatusBadRequest, "search requires item_id or name")
		return
	}

	result, found := retrieval.Search(itemID, name, job.Containers)
	if !found {
		respondJSON(w, http.StatusNotFound, searchResponse{Found: false})
		return
	}
	respondJSON(w, http.StatusOK, searchResponse{
		Found:          true,
		Location:       &result.Location,
		RetrievalSteps: result.RetrievalSteps,
	})
}
