package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-dashboard/middleware"
	"hotel-dashboard/services"
	"hotel-dashboard/utils"
)

type StatsController struct {
	Stats *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Stats: svc}
}

// GetStats returns the dashboard summary for ?period=weekly|monthly|yearly|all
// (default all). A failed fan-out is reported as a single retryable error; the
// client re-requests the whole snapshot.
func (sc *StatsController) GetStats(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated")
		return
	}

	period, err := services.ParsePeriod(c.Query("period"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := sc.Stats.Snapshot(c.Request.Context(), sess, period)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"period":               snap.Period,
		"bookingCount":         snap.BookingCount,
		"revenue":              snap.Revenue,
		"revenueDisplay":       utils.FormatMinorUnits(snap.Revenue),
		"occupancyRate":        snap.OccupancyRate,
		"occupied":             snap.Occupied,
		"totalRooms":           snap.TotalRooms,
		"averageRating":        snap.AverageRating,
		"averageRatingDisplay": snap.DisplayRating(),
		"totalReviews":         snap.TotalReviews,
	})
}
