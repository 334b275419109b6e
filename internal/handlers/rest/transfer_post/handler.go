package transfer_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/service/order"
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
	var requestDTO dto.TransferCreateRequest
	err := json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateTransfer(
		r.Context(),
		requestDTO.OrderID,
		requestDTO.ToCompanyID,
		requestDTO.VehicleID,
	)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, transfer.ErrInvalidOrderID),
			errors.Is(err, transfer.ErrInvalidCompanyID),
			errors.Is(err, transfer.ErrSameCompany):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, transfer.ErrNoActivePartnership),
			errors.Is(err, transfer.ErrOrderNotTransferable),
			errors.Is(err, transfer.ErrVehicleUnavailable),
			errors.Is(err, transfer.ErrInsufficientCapacity):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toTransferDTO(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
