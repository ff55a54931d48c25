package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourusername/squadra/internal/models"
)

func (h *Handler) listPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.roster.ListPlayers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

func (h *Handler) getPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "player id must be a UUID")
		return
	}

	player, err := h.roster.GetPlayer(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (h *Handler) createPlayer(w http.ResponseWriter, r *http.Request) {
	var player models.Player
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a player object")
		return
	}

	if err := h.roster.CreatePlayer(r.Context(), &player); err != nil {
		writeDomainError(w, err)
		return
	}
	h.stats.Invalidate()
	writeJSON(w, http.StatusCreated, player)
}

func (h *Handler) updatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "player id must be a UUID")
		return
	}

	var player models.Player
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a player object")
		return
	}
	player.ID = id

	if err := h.roster.UpdatePlayer(r.Context(), &player); err != nil {
		writeDomainError(w, err)
		return
	}
	// Role and season card counters feed into the computed stats.
	h.stats.Invalidate()
	writeJSON(w, http.StatusOK, player)
}

func (h *Handler) deletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "player id must be a UUID")
		return
	}

	if err := h.roster.DeletePlayer(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	h.stats.Invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getAssignments(w http.ResponseWriter, r *http.Request) {
	formationID := chi.URLParam(r, "formationID")

	result, err := h.roster.AssignFormation(r.Context(), formationID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
