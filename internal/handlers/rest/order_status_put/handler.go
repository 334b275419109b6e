package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/service/order"
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

	var requestDTO dto.OrderStatusUpdateRequest
	err = json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	update := entities.StatusUpdate{
		OrderID:   id,
		NewStatus: entities.OrderStatusType(requestDTO.Status),
		ChangedBy: requestDTO.ChangedBy,
		Notes:     requestDTO.Notes,
		PhotoURL:  requestDTO.PhotoURL,
		Location:  requestDTO.Location,
	}

	updated, err := h.service.UpdateStatus(r.Context(), update)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toOrderDTO(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(o *entities.Order) dto.Order {
	return dto.Order{
		ID:              o.ID,
		TrackingCode:    o.TrackingCode,
		CompanyID:       o.CompanyID,
		SenderName:      o.SenderName,
		SenderPhone:     o.SenderPhone,
		SenderAddress:   o.SenderAddress,
		SenderEmail:     o.SenderEmail,
		ReceiverName:    o.ReceiverName,
		ReceiverPhone:   o.ReceiverPhone,
		ReceiverAddress: o.ReceiverAddress,
		ParcelType:      o.ParcelType.String(),
		WeightKg:        o.WeightKg,
		DeclaredValue:   o.DeclaredValue,
		ShippingFee:     o.ShippingFee,
		CodAmount:       o.CodAmount,
		PaymentMethod:   o.PaymentMethod.String(),
		PaymentStatus:   o.PaymentStatus.String(),
		Status:          o.Status.String(),
		DriverID:        o.DriverID,
		VehicleID:       o.VehicleID,
		RouteID:         o.RouteID,
		PickedUpAt:      o.PickedUpAt,
		DeliveredAt:     o.DeliveredAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
