package partnership_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"logistics/internal/entities"
	"logistics/internal/generated/dto"
	"logistics/internal/service/partnership"
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
	var partnershipCreateDTO dto.PartnershipCreate
	err := json.NewDecoder(r.Body).Decode(&partnershipCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	partnershipModify := entities.CompanyPartnershipModify{
		CompanyID:        &partnershipCreateDTO.CompanyID,
		PartnerCompanyID: &partnershipCreateDTO.PartnerCompanyID,
		CommissionRate:   &partnershipCreateDTO.CommissionRate,
		Priority:         partnershipCreateDTO.Priority,
	}
	if partnershipCreateDTO.Level != nil {
		level := entities.PartnershipLevelType(*partnershipCreateDTO.Level)
		partnershipModify.Level = &level
	}

	id, err := h.service.CreatePartnership(r.Context(), partnershipModify)
	if err != nil {
		switch {
		case errors.Is(err, partnership.ErrMissingRequiredFields),
			errors.Is(err, partnership.ErrInvalidCompanyID),
			errors.Is(err, partnership.ErrInvalidCommissionRate),
			errors.Is(err, partnership.ErrInvalidLevel),
			errors.Is(err, partnership.ErrSameCompany):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, partnership.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PartnershipCreateResponse{
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
