package handlers

import (
	bookingSvc "quadrafacil/services/booking"
	chatSvc "quadrafacil/services/chat"
	matchSvc "quadrafacil/services/match"

	"go.uber.org/zap"
)

// HandlerBundle groups all endpoint handlers and their service dependencies.
type HandlerBundle struct {
	Bookings bookingSvc.Service
	Matches  matchSvc.Service
	Chats    chatSvc.Service
	Logger   *zap.Logger
}
