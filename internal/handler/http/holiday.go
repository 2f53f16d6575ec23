package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/crestfin/crm-backend-go/internal/domain/holiday"
	"github.com/crestfin/crm-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type HolidayHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayHandler(holidayRepo holiday.HolidayRepository) HolidayHandler {
	return &holidayHandlerImpl{
		holidayRepo: holidayRepo,
	}
}

type holidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
}

// List implements HolidayHandler.
func (h *holidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		response.Unauthorized(w, "Invalid token")
		return
	}

	year := time.Now().Year()
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 2000 || parsed > 2100 {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		year = parsed
	}

	holidays, err := h.holidayRepo.ListYear(r.Context(), year, companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]holidayResponse, 0, len(holidays))
	for _, hd := range holidays {
		result = append(result, holidayResponse{
			ID:   hd.ID,
			Date: hd.Date.Format("2006-01-02"),
			Name: hd.Name,
		})
	}

	response.Success(w, result)
}
