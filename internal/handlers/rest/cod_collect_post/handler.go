package cod_collect_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"logistics/internal/entities"
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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var requestDTO dto.CodCollectRequest
	err = json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	collected, err := h.service.Collect(
		r.Context(),
		id,
		requestDTO.DriverID,
		requestDTO.Amount,
		requestDTO.ProofPhotoURL,
		requestDTO.IdempotencyKey,
	)
	if err != nil {
		switch {
		case errors.Is(err, cod.ErrCodNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, cod.ErrInvalidCodID),
			errors.Is(err, cod.ErrInvalidDriverID),
			errors.Is(err, cod.ErrInvalidAmount),
			errors.Is(err, cod.ErrMissingIdempotencyKey):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, cod.ErrDuplicateRequest),
			errors.Is(err, cod.ErrInvalidCodTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toCodTransactionDTO(collected)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toCodTransactionDTO(t *entities.CodTransaction) dto.CodTransaction {
	return dto.CodTransaction{
		ID:              t.ID,
		OrderID:         t.OrderID,
		DriverID:        t.DriverID,
		Status:          t.Status.String(),
		Amount:          t.Amount,
		CollectedAmount: t.CollectedAmount,
		SubmittedAmount: t.SubmittedAmount,
		ProofPhotoURL:   t.ProofPhotoURL,
		PayoutMethod:    t.PayoutMethod.String(),
		PayoutReference: t.PayoutReference,
		FailureReason:   t.FailureReason,
		CollectedAt:     t.CollectedAt,
		SubmittedAt:     t.SubmittedAt,
		ReceivedAt:      t.ReceivedAt,
		CompletedAt:     t.CompletedAt,
	}
}
