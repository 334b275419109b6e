package vehicle_unload_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var requestDTO dto.VehicleLoadRequest
	err = json.NewDecoder(r.Body).Decode(&requestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	unloaded, err := h.service.RemoveWeight(r.Context(), id, requestDTO.WeightKg)
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrVehicleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, vehicle.ErrInvalidVehicleID),
			errors.Is(err, vehicle.ErrInvalidWeight):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toVehicleDTO(unloaded)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toVehicleDTO(v *entities.Vehicle) dto.Vehicle {
	return dto.Vehicle{
		ID:                 v.ID,
		CompanyID:          v.CompanyID,
		PlateNumber:        v.PlateNumber,
		VehicleType:        v.VehicleType.String(),
		MaxWeightKg:        v.MaxWeightKg,
		CurrentWeightKg:    v.CurrentWeightKg,
		CapacityPercentage: v.CapacityPercentage(),
		OverloadThreshold:  v.OverloadThreshold,
		AllowOverload:      v.AllowOverload,
		Status:             v.Status.String(),
	}
}
