package transfer_reject_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/service/transfer"
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

	var requestDTO dto.TransferRejectRequest
	err = json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rejected, err := h.service.Reject(r.Context(), id, requestDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, transfer.ErrTransferNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, transfer.ErrInvalidTransferID),
			errors.Is(err, transfer.ErrMissingReason):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, transfer.ErrInvalidTransferTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toTransferDTO(rejected)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toTransferDTO(t *entities.OrderTransfer) dto.Transfer {
	return dto.Transfer{
		ID:               t.ID,
		OrderID:          t.OrderID,
		FromCompanyID:    t.FromCompanyID,
		ToCompanyID:      t.ToCompanyID,
		PartnershipID:    t.PartnershipID,
		CommissionAmount: t.CommissionAmount,
		Status:           t.Status.String(),
		VehicleID:        t.VehicleID,
		RejectReason:     t.RejectReason,
		ExpiresAt:        t.ExpiresAt,
		DecidedAt:        t.DecidedAt,
		CreatedAt:        t.CreatedAt,
	}
}
