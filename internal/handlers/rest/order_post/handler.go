package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderModify := entities.OrderModify{
		CompanyID:       &orderCreateDTO.CompanyID,
		SenderName:      &orderCreateDTO.SenderName,
		SenderPhone:     &orderCreateDTO.SenderPhone,
		SenderAddress:   &orderCreateDTO.SenderAddress,
		SenderEmail:     orderCreateDTO.SenderEmail,
		ReceiverName:    &orderCreateDTO.ReceiverName,
		ReceiverPhone:   &orderCreateDTO.ReceiverPhone,
		ReceiverAddress: &orderCreateDTO.ReceiverAddress,
		WeightKg:        &orderCreateDTO.WeightKg,
		DeclaredValue:   orderCreateDTO.DeclaredValue,
		ShippingFee:     orderCreateDTO.ShippingFee,
		CodAmount:       orderCreateDTO.CodAmount,
	}
	if orderCreateDTO.ParcelType != nil {
		parcelType := entities.ParcelType(*orderCreateDTO.ParcelType)
		orderModify.ParcelType = &parcelType
	}
	if orderCreateDTO.PaymentMethod != nil {
		paymentMethod := entities.PaymentMethodType(*orderCreateDTO.PaymentMethod)
		orderModify.PaymentMethod = &paymentMethod
	}

	created, err := h.service.CreateOrder(r.Context(), orderModify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidCompanyID),
			errors.Is(err, order.ErrInvalidContact),
			errors.Is(err, order.ErrInvalidWeight),
			errors.Is(err, order.ErrInvalidAmount),
			errors.Is(err, order.ErrInvalidParcelType),
			errors.Is(err, order.ErrInvalidPaymentMethod):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toOrderDTO(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
