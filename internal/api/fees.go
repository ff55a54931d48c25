package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/yourusername/squadra/internal/models"
	"github.com/yourusername/squadra/internal/service"
)

func (h *Handler) recordFeePayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "player id must be a UUID")
		return
	}

	var payment models.FeePayment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a fee payment")
		return
	}
	payment.PlayerID = id

	if err := h.fees.RecordPayment(r.Context(), &payment); err != nil {
		if errors.Is(err, service.ErrNonPositiveAmount) {
			writeError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error())
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *Handler) feeBalance(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "playerID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "player id must be a UUID")
		return
	}

	balance, err := h.fees.Balance(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

func (h *Handler) seasonFeeBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.fees.SeasonBalances(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balances)
}
