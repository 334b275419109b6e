package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	companyID, err := strconv.ParseInt(r.URL.Query().Get("company_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var status *entities.OrderStatusType
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		statusValue := entities.OrderStatusType(statusParam)
		status = &statusValue
	}

	orders, err := h.service.GetOrders(r.Context(), companyID, status)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidCompanyID),
			errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderList{
		Orders: make([]dto.Order, 0, len(orders)),
	}
	for i := range orders {
		response.Orders = append(response.Orders, toOrderDTO(&orders[i]))
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
