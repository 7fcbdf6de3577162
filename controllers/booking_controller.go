package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-dashboard/middleware"
	"hotel-dashboard/services"
	"hotel-dashboard/utils"
)

// CancelBookingPayload carries the optional free-text reason. It is stored
// verbatim, empty included.
type CancelBookingPayload struct {
	Reason string `json:"reason"`
}

type BookingController struct {
	Lifecycle *services.LifecycleService
}

func NewBookingController(svc *services.LifecycleService) *BookingController {
	return &BookingController{Lifecycle: svc}
}

// GetBookings returns the provider's bookings narrowed by the history-view
// filters: ?status= (or "all"), ?month= (1-12 or "all"), ?year= (defaults to
// the current year; there is no all-years wildcard), ?sort=asc|desc by
// check-in date.
func (bc *BookingController) GetBookings(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	list, err := bc.Lifecycle.Load(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	month, ok := parseMonthParam(c.Query("month"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid month filter")
		return
	}
	year, ok := parseYearParam(c.Query("year"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid year filter")
		return
	}

	filtered, err := services.FilterBookings(list, services.BookingFilter{
		Status: c.Query("status"),
		Month:  month,
		Year:   year,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	services.SortBookingsByDate(filtered, strings.EqualFold(c.Query("sort"), "asc"))
	utils.JSONSuccess(c, http.StatusOK, filtered)
}

// GetActions returns the transitions legal for a booking right now, for
// rendering the operator's action buttons.
func (bc *BookingController) GetActions(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	actions, err := bc.Lifecycle.AvailableActions(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, actions)
}

func (bc *BookingController) ConfirmBooking(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	booking, err := bc.Lifecycle.Confirm(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) CancelBooking(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	// Body is optional; a cancel with no reason is fine.
	var payload CancelBookingPayload
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid cancel payload")
			return
		}
	}

	booking, err := bc.Lifecycle.Cancel(c.Request.Context(), sess, c.Param("id"), payload.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (bc *BookingController) CompleteBooking(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	booking, err := bc.Lifecycle.Complete(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// parseMonthParam maps ""/"all" onto the wildcard and validates 1-12.
func parseMonthParam(raw string) (time.Month, bool) {
	if raw == "" || strings.EqualFold(raw, "all") {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return time.Month(n), true
}

// parseYearParam defaults to the current year; unlike month there is no
// wildcard, a history view always narrows to one year.
func parseYearParam(raw string) (int, bool) {
	if raw == "" {
		return time.Now().Year(), true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
