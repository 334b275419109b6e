package cod_submit_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/generated/dto"
	"logistics/internal/service/cod"
	"logistics/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var requestDTO dto.CodSubmitRequest
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	total, err := h.service.Submit(r.Context(), requestDTO.DriverID, requestDTO.IdempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, cod.ErrInvalidDriverID),
			errors.Is(err, cod.ErrMissingIdempotencyKey):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, cod.ErrNothingToSubmit):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, cod.ErrDuplicateRequest):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CodSubmitResponse{
		TotalAmount: total,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
