package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourusername/squadra/internal/models"
)

func (h *Handler) listMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matches.ListMatches(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (h *Handler) getMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "match id must be a UUID")
		return
	}

	match, err := h.matches.GetMatch(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, match)
}

func (h *Handler) createMatch(w http.ResponseWriter, r *http.Request) {
	var match models.Match
	if err := json.NewDecoder(r.Body).Decode(&match); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a match object")
		return
	}

	if err := h.matches.CreateMatch(r.Context(), &match); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, match)
}

func (h *Handler) updateMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "match id must be a UUID")
		return
	}

	var match models.Match
	if err := json.NewDecoder(r.Body).Decode(&match); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a match object")
		return
	}
	match.ID = id

	if err := h.matches.UpdateMatch(r.Context(), &match); err != nil {
		writeDomainError(w, err)
		return
	}
	// Scores or status may have changed; cached stats are stale now.
	h.stats.Invalidate()
	writeJSON(w, http.StatusOK, match)
}

func (h *Handler) deleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "match id must be a UUID")
		return
	}

	if err := h.matches.DeleteMatch(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	h.stats.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "match id must be a UUID")
		return
	}

	events, err := h.matches.ListEvents(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// Optional player filter. Substitutions carry two players, so the
	// filter matches either side of the event.
	if raw := r.URL.Query().Get("player"); raw != "" {
		playerID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_id", "player filter must be a UUID")
			return
		}

		filtered := make([]*models.MatchEvent, 0, len(events))
		for _, e := range events {
			if e.Involves(playerID) {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	writeJSON(w, http.StatusOK, events)
}

func (h *Handler) recordEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "match id must be a UUID")
		return
	}

	var event models.MatchEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be an event object")
		return
	}
	event.MatchID = id

	if err := h.matches.RecordEvent(r.Context(), &event); err != nil {
		writeDomainError(w, err)
		return
	}
	h.stats.Invalidate()
	writeJSON(w, http.StatusCreated, event)
}

func (h *Handler) listCallUps(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "match id must be a UUID")
		return
	}

	records, err := h.matches.ListCallUps(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handler) setCallUp(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "match id must be a UUID")
		return
	}

	var record models.FormationRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a call-up record")
		return
	}
	record.MatchID = id

	if err := h.matches.SetCallUp(r.Context(), &record); err != nil {
		writeDomainError(w, err)
		return
	}
	h.stats.Invalidate()
	writeJSON(w, http.StatusOK, record)
}

func (h *Handler) matchSummary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "matchID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "match id must be a UUID")
		return
	}

	summary, err := h.matches.Summary(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
