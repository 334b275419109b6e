package vehicle_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/service/vehicle"
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
	var vehicleCreateDTO dto.VehicleCreate
	err := json.NewDecoder(r.Body).Decode(&vehicleCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicleModify := entities.VehicleModify{
		CompanyID:         &vehicleCreateDTO.CompanyID,
		PlateNumber:       &vehicleCreateDTO.PlateNumber,
		MaxWeightKg:       &vehicleCreateDTO.MaxWeightKg,
		OverloadThreshold: vehicleCreateDTO.OverloadThreshold,
		AllowOverload:     vehicleCreateDTO.AllowOverload,
	}
	if vehicleCreateDTO.VehicleType != nil {
		vehicleType := entities.VehicleType(*vehicleCreateDTO.VehicleType)
		vehicleModify.VehicleType = &vehicleType
	}

	id, err := h.service.CreateVehicle(r.Context(), vehicleModify)
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrMissingRequiredFields),
			errors.Is(err, vehicle.ErrInvalidCompanyID),
			errors.Is(err, vehicle.ErrInvalidPlateNumber),
			errors.Is(err, vehicle.ErrInvalidVehicleType),
			errors.Is(err, vehicle.ErrInvalidWeight),
			errors.Is(err, vehicle.ErrInvalidThreshold):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, vehicle.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.VehicleCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
