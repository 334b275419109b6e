package cod_receive_post

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
	var requestDTO dto.CodReceiveRequest
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	settlement, err := h.service.Receive(r.Context(), requestDTO.DriverID, requestDTO.ReceivedBy)
	if err != nil {
		switch {
		case errors.Is(err, cod.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, cod.ErrNothingToReceive):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CodSettlement{
		DriverID:         settlement.DriverID,
		TransactionCount: settlement.TransactionCount,
		CollectedTotal:   settlement.CollectedTotal,
		SubmittedTotal:   settlement.SubmittedTotal,
		Variance:         settlement.Variance,
		ReceivedBy:       settlement.ReceivedBy,
		ReceivedAt:       settlement.ReceivedAt,
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
