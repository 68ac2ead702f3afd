package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vvka-141/namesetl/pkg/namesetl"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Records int64  `json:"records"`
}

// recordBody is the PUT payload; the id comes from the path.
type recordBody struct {
	Name        string  `json:"name"`
	Total       int64   `json:"total"`
	MaleShare   float64 `json:"male_share"`
	FemaleShare float64 `json:"female_share"`
	Gap         float64 `json:"gap"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	n, err := s.repo.Count(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Records: n})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	records := []namesetl.NameRecord{}
	for rec, err := range s.repo.All(r.Context()) {
		if err != nil {
			s.fail(w, err)
			return
		}
		records = append(records, rec)
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := s.repo.Get(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var rec namesetl.NameRecord
	if !decodeBody(w, r, &rec) {
		return
	}
	if err := s.repo.Create(r.Context(), rec); err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Location", "/records/"+strconv.FormatInt(rec.ID, 10))
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body recordBody
	if !decodeBody(w, r, &body) {
		return
	}

	rec := namesetl.NameRecord{
		ID:          id,
		Name:        body.Name,
		Total:       body.Total,
		MaleShare:   body.MaleShare,
		FemaleShare: body.FemaleShare,
		Gap:         body.Gap,
	}
	n, err := s.repo.Update(r.Context(), rec)
	if err != nil {
		s.fail(w, err)
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "record not found"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	n, err := s.repo.Delete(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	if n == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "record not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fail maps err to a status code and logs server-side failures.
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, namesetl.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "record not found"})
	case errors.Is(err, namesetl.ErrConstraint):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, namesetl.ErrInvalidRecord):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("%v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id " + strconv.Quote(raw)})
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
