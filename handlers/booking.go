package handlers

import (
	"net/http"
	"time"

	bookingSvc "quadrafacil/services/booking"

	"github.com/gin-gonic/gin"
)

// CreateBooking registers a pending reservation for the caller.
func (h *HandlerBundle) CreateBooking(c *gin.Context) {
	var input struct {
		CourtID    string    `json:"courtId"`
		StartTime  time.Time `json:"startTime"`
		EndTime    time.Time `json:"endTime"`
		PriceTotal float64   `json:"priceTotal"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Bookings.Create(c.Request.Context(), callerID(c), bookingSvc.CreateInput{
		CourtID:    input.CourtID,
		StartTime:  input.StartTime,
		EndTime:    input.EndTime,
		PriceTotal: input.PriceTotal,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ConfirmBooking lets the court owner accept a pending reservation.
func (h *HandlerBundle) ConfirmBooking(c *gin.Context) {
	if err := h.Bookings.Confirm(c.Request.Context(), callerID(c), c.Param("bookingId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking confirmed"})
}

// RejectBooking lets the court owner refuse a reservation. Any matches linked
// to it are cancelled as part of the same operation.
func (h *HandlerBundle) RejectBooking(c *gin.Context) {
	if err := h.Bookings.Reject(c.Request.Context(), callerID(c), c.Param("bookingId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking rejected"})
}

// CancelBooking lets the athlete cancel their own reservation ahead of the
// day of play. Linked matches are cancelled too.
func (h *HandlerBundle) CancelBooking(c *gin.Context) {
	if err := h.Bookings.Cancel(c.Request.Context(), callerID(c), c.Param("bookingId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

// ListOwnerBookings returns every reservation on the caller's courts.
func (h *HandlerBundle) ListOwnerBookings(c *gin.Context) {
	views, err := h.Bookings.ListByOwner(c.Request.Context(), callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListMyAgenda returns the caller's bookings and joined matches, newest first.
func (h *HandlerBundle) ListMyAgenda(c *gin.Context) {
	items, err := h.Bookings.ListByAthlete(c.Request.Context(), callerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
