package httpapi

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/piwi3910/cargostow/internal/export"
	"github.com/piwi3910/cargostow/internal/importer"
	"github.com/piwi3910/cargostow/internal/model"
	"github.com/piwi3910/cargostow/internal/project"
)

// ImportHandler handles POST /api/import/items and
// POST /api/import/containers, both reading a raw CSV body and merging
// the parsed rows into the job named by the "job"
// parameter, creating it if it does not already exist.
func ImportHandler(r chi.Router) {
	r.Post("/items", importItems)
	r.Post("/containers", importContainers)
}

func jobOrNew(name string) *model.Job {
	if job, err := project.LoadJob(name); err == nil {
		return job
	}
	return model.NewJob(name)
}

func importItems(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("job")
	if name == "" {
		respondError(w, http.StatusBadRequest, "missing required \"job\" parameter")
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "cannot read request body: "+err.Error())
		return
	}

	result := importer.ImportItems(body)
	job := jobOrNew(name)
	job.Items = append(job.Items, result.Items...)
	if err := project.SaveJob(job); err != nil {
		respondError(w, http.StatusInternalServerError, "import succeeded but job could not be saved: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"imported": len(result.Items), "errors": result.Errors})
}

func importContainers(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("job")
	if name == "" {
		respondError(w, http.StatusBadRequest, "missing required \"job\" parameter")
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "cannot read request body: "+err.Error())
		return
	}

	result := importer.ImportContainers(body)
	job := jobOrNew(name)
	job.Containers = append(job.Containers, result.Containers...)
	if err := project.SaveJob(job); err != nil {
		respondError(w, http.StatusInternalServerError, "import succeeded but job could not be saved: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"imported": len(result.Containers), "errors": result.Errors})
}

// ExportHandler handles GET /api/export/arrangement?job=<name>&format=csv|json.
func ExportHandler(r chi.Router) {
	r.Get("/arrangement", exportArrangement)
}

func exportArrangement(w http.ResponseWriter, r *http.Request) {
	job, ok := loadJob(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	switch format {
	case "csv":
		csvText, err := export.ArrangementCSV(job.Containers)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(csvText))
	case "json":
		data, err := export.ArrangementJSON(job.Containers)
		if err != nil {
			respondError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	default:
		respondError(w, http.StatusBadRequest, "unknown format: "+format)
	}
}
