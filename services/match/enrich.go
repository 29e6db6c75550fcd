package match

import (
	"context"
	"errors"
	"strings"
	"time"

	matchRepo "quadrafacil/database/repository/match"
	"quadrafacil/models"
	"quadrafacil/services/fault"
	"quadrafacil/services/identity"

	"go.uber.org/zap"
)

// Display fallbacks when a court lookup fails during enrichment.
const (
	unknownCourtName = "unknown court"
)

func (svc *DefaultMatchService) ListOpen(ctx context.Context, filter ListFilter) ([]models.MatchSummary, error) {
	matches, err := svc.Matches.ListOpenAfter(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	summaries := make([]models.MatchSummary, 0, len(matches))
	for i := range matches {
		m := matches[i]
		svc.backfillPrice(ctx, &m)

		var court *models.Court
		if c, err := svc.Courts.GetByID(ctx, m.CourtID); err != nil {
			svc.Logger.Warn("court lookup failed during enrichment",
				zap.String("courtID", m.CourtID), zap.String("matchID", m.ID), zap.Error(err))
		} else {
			court = c
		}

		if !matchesFilter(court, filter) {
			continue
		}

		summary := models.MatchSummary{
			Match:     m,
			CourtName: unknownCourtName,
			Organizer: svc.resolveProfile(ctx, m.OrganizerID),
		}
		if court != nil {
			summary.CourtName = court.Name
			summary.CourtAddress = court.Address
			summary.Sport = court.Sport
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (svc *DefaultMatchService) Details(ctx context.Context, matchID string) (*models.MatchDetails, error) {
	m, err := svc.Matches.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, matchRepo.ErrNotFound) {
			return nil, fault.NotFound(ReasonMatchNotFound)
		}
		return nil, err
	}
	svc.backfillPrice(ctx, m)

	details := &models.MatchDetails{
		Match:        *m,
		Organizer:    svc.resolveProfile(ctx, m.OrganizerID),
		Participants: svc.resolveProfiles(ctx, m.ConfirmedParticipants),
		PendingUsers: svc.resolveProfiles(ctx, m.PendingRequests),
	}

	if court, err := svc.Courts.GetByID(ctx, m.CourtID); err != nil {
		svc.Logger.Warn("court lookup failed during enrichment",
			zap.String("courtID", m.CourtID), zap.String("matchID", m.ID), zap.Error(err))
	} else {
		details.Court = court
	}
	return details, nil
}

// backfillPrice is the one permitted write on the read path: a missing
// priceTotal is copied from the owning booking and persisted, moving the
// field absent -> present exactly once. Failures only degrade the response.
func (svc *DefaultMatchService) backfillPrice(ctx context.Context, m *models.Match) {
	if m.PriceTotal != nil {
		return
	}
	booking, err := svc.Bookings.GetByID(ctx, m.ReservationID)
	if err != nil {
		svc.Logger.Warn("price backfill: booking lookup failed",
			zap.String("matchID", m.ID), zap.String("bookingID", m.ReservationID), zap.Error(err))
		return
	}
	if err := svc.Matches.SetPriceIfAbsent(ctx, m.ID, booking.PriceTotal); err != nil {
		svc.Logger.Warn("price backfill: persist failed",
			zap.String("matchID", m.ID), zap.Error(err))
		return
	}
	price := booking.PriceTotal
	m.PriceTotal = &price
}

func (svc *DefaultMatchService) resolveProfile(ctx context.Context, userID string) models.UserProfile {
	profile, err := svc.Identity.Resolve(ctx, userID)
	if err != nil {
		svc.Logger.Warn("identity lookup failed, substituting placeholder",
			zap.String("userID", userID), zap.Error(err))
		return identity.Placeholder(userID)
	}
	return profile
}

func (svc *DefaultMatchService) resolveProfiles(ctx context.Context, userIDs []string) []models.UserProfile {
	profiles := make([]models.UserProfile, 0, len(userIDs))
	for _, id := range userIDs {
		profiles = append(profiles, svc.resolveProfile(ctx, id))
	}
	return profiles
}

func matchesFilter(court *models.Court, filter ListFilter) bool {
	if filter.Sport != "" {
		if court == nil || !strings.EqualFold(court.Sport, filter.Sport) {
			return false
		}
	}
	if filter.SearchText != "" {
		if court == nil {
			return false
		}
		needle := strings.ToLower(filter.SearchText)
		if !strings.Contains(strings.ToLower(court.Name), needle) &&
			!strings.Contains(strings.ToLower(court.Address), needle) {
			return false
		}
	}
	return true
}
