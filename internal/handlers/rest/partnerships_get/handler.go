package partnerships_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	companyID, err := strconv.ParseInt(r.URL.Query().Get("company_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	partnerships, err := h.service.GetPartnerships(r.Context(), companyID)
	if err != nil {
		switch {
		case errors.Is(err, partnership.ErrInvalidCompanyID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PartnershipList{
		Partnerships: make([]dto.Partnership, 0, len(partnerships)),
	}
	for _, p := range partnerships {
		response.Partnerships = append(response.Partnerships, dto.Partnership{
			ID:               p.ID,
			CompanyID:        p.CompanyID,
			PartnerCompanyID: p.PartnerCompanyID,
			Level:            p.Level.String(),
			CommissionRate:   p.CommissionRate,
			Priority:         p.Priority,
			IsActive:         p.IsActive,
			TotalTransferred: p.TotalTransferred,
			TotalCommission:  p.TotalCommission,
		})
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
