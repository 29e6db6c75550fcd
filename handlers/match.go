package handlers

import (
	"net/http"

	matchSvc "quadrafacil/services/match"

	"github.com/gin-gonic/gin"
)

// OpenMatch converts one of the caller's confirmed bookings into an open match.
// The legacy "vagasAbertas" seat key is still accepted alongside "openSeats".
func (h *HandlerBundle) OpenMatch(c *gin.Context) {
	var input struct {
		BookingID    string `json:"bookingId"`
		OpenSeats    int    `json:"openSeats"`
		VagasAbertas int    `json:"vagasAbertas"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	seats := input.OpenSeats
	if seats == 0 {
		seats = input.VagasAbertas
	}

	m, err := h.Matches.Open(c.Request.Context(), callerID(c), input.BookingID, seats)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ListOpenMatches is the public listing of upcoming open matches. The legacy
// "esporte"/"busca" query keys are still accepted alongside "sport"/"search".
func (h *HandlerBundle) ListOpenMatches(c *gin.Context) {
	filter := matchSvc.ListFilter{
		Sport:      firstQuery(c, "sport", "esporte"),
		SearchText: firstQuery(c, "search", "busca"),
	}
	matches, err := h.Matches.ListOpen(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetMatchDetails returns one match with court, organizer and participant data.
func (h *HandlerBundle) GetMatchDetails(c *gin.Context) {
	details, err := h.Matches.Details(c.Request.Context(), c.Param("matchId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// RequestJoinMatch files a join request for the caller.
func (h *HandlerBundle) RequestJoinMatch(c *gin.Context) {
	if err := h.Matches.RequestJoin(c.Request.Context(), callerID(c), c.Param("matchId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "join request sent"})
}

// ApproveJoinRequest lets the organizer admit a pending requester.
func (h *HandlerBundle) ApproveJoinRequest(c *gin.Context) {
	var input struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	if err := h.Matches.ApproveRequest(c.Request.Context(), callerID(c), c.Param("matchId"), input.UserID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "request approved"})
}

// RejectJoinRequest lets the organizer drop a pending request.
func (h *HandlerBundle) RejectJoinRequest(c *gin.Context) {
	var input struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	if err := h.Matches.RejectRequest(c.Request.Context(), callerID(c), c.Param("matchId"), input.UserID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "request rejected"})
}

// LeaveMatch removes the caller from a match they joined.
func (h *HandlerBundle) LeaveMatch(c *gin.Context) {
	if err := h.Matches.Leave(c.Request.Context(), callerID(c), c.Param("matchId")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "you left the match"})
}
