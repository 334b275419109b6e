package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

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

// ServeHTTP resolves the order either by numeric ID or by tracking code
// (TRK-...), so /orders/42 and /orders/TRK-20260120-A1B2C3 both work.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]

	var (
		orderEntity *entities.Order
		err         error
	)
	if strings.HasPrefix(idStr, "TRK-") {
		orderEntity, err = h.service.GetOrderByTrackingCode(r.Context(), idStr)
	} else {
		var id int64
		id, err = strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		orderEntity, err = h.service.GetOrder(r.Context(), id)
	}
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidTrackingCode):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
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
