package httpapi

import (
	"net/http"

	"github.com/piwi3910/cargostow/internal/model"
	"github.com/piwi3910/cargostow/internal/project"
)

// loadJob fetches a persisted job by the "job" query/form parameter,
// writing a 400 response and returning ok=false if the parameter is
// missing, or a 404 if the job cannot be found.
func loadJob(w http.ResponseWriter, r *http.Request) (*model.Job, bool) {
	name := r.URL.Query().Get("job")
	if name == "" {
		name = r.FormValue("job")
	}
	if name == "" {
		respondError(w, http.StatusBadRequest, "missing required \"job\" parameter")
		return nil, false
	}
	job, err := project.LoadJob(name)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return nil, false
	}
	return job, true
}
