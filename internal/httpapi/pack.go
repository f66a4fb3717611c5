package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/piwi3910/cargostow/internal/project"
	"github.com/piwi3910/cargostow/internal/stowage"
)

// PackHandler handles POST /api/pack.
func PackHandler(r chi.Router) {
	r.Post("/", pack)
}

type packRequest struct {
	Containers []ContainerDTO `json:"containers"`
	Items      []ItemDTO      `json:"items"`
}

type packResponse struct {
	Placements []PlacementDTO `json:"placements"`
	Placed     []string       `json:"placed"`
	Unplaced   []string       `json:"unplaced"`
}

func pack(w http.ResponseWriter, r *http.Request) {
	var req packRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "loading app config: "+err.Error())
		return
	}

	containers := containersFromDTOs(req.Containers)
	items := cfg.Engine.ApplyDefaultZone(itemsFromDTOs(req.Items))
	result := stowage.PackItems(containers, items)

	resp := packResponse{Placements: placementsToDTOs(containers)}
	for _, it := range result.Placed {
		resp.Placed = append(resp.Placed, it.ID)
	}
	for _, it := range result.Unplaced {
		resp.Unplaced = append(resp.Unplaced, it.ID)
	}
	respondJSON(w, http.StatusOK, resp)
}
