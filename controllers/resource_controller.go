package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-dashboard/middleware"
	"hotel-dashboard/services"
	"hotel-dashboard/utils"
)

// ResourceController serves the read-only collections the dashboard lists as
// they are: rooms, payments and reviews, with the in-memory history filters.
type ResourceController struct {
	API services.PlatformAPI
}

func NewResourceController(api services.PlatformAPI) *ResourceController {
	return &ResourceController{API: api}
}

func (rc *ResourceController) GetRooms(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	rooms, err := rc.API.ListRooms(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetPayments lists payments narrowed by ?month= / ?year= (same semantics as
// the booking history view) and sorted by payment date via ?sort=asc|desc.
func (rc *ResourceController) GetPayments(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	payments, err := rc.API.ListPayments(c.Request.Context(), sess)
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

	filtered := services.FilterPayments(payments, services.PaymentFilter{Month: month, Year: year})
	services.SortPaymentsByDate(filtered, strings.EqualFold(c.Query("sort"), "asc"))
	utils.JSONSuccess(c, http.StatusOK, filtered)
}

// GetReviews lists reviews, sorted by rating via ?sort=asc|desc.
func (rc *ResourceController) GetReviews(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	reviews, err := rc.API.ListReviews(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	services.SortReviewsByRating(reviews, strings.EqualFold(c.Query("sort"), "asc"))
	utils.JSONSuccess(c, http.StatusOK, reviews)
}
