package matchRepo

import (
	"context"
	"errors"
	"time"

	"quadrafacil/models"
)

var (
	// ErrNotFound is returned when no match exists for the given id.
	ErrNotFound = errors.New("match not found")
	// ErrAlreadyLinked is returned when the owning booking is already linked
	// to a match.
	ErrAlreadyLinked = errors.New("booking already linked to a match")
	// ErrConflict is returned when a mutation keeps losing the
	// read-modify-write race after bounded retries.
	ErrConflict = errors.New("match was modified concurrently")
)

// MatchRepository owns match records and their transactional mutation
// protocol.
type MatchRepository interface {
	// CreateForBooking inserts the match and sets the owning booking's
	// linked_match_id as one logical unit. The link write is set-if-absent:
	// re-running with the same match id is a no-op, a different existing link
	// yields ErrAlreadyLinked and the match insert is rolled back.
	CreateForBooking(ctx context.Context, match *models.Match) error

	GetByID(ctx context.Context, matchID string) (*models.Match, error)

	// Mutate runs fn against a snapshot of the match and persists the result
	// only if the record did not change in between, retrying a bounded number
	// of times on interleaved writes. An error returned by fn aborts without
	// retry and is passed through; exhausted retries yield ErrConflict.
	Mutate(ctx context.Context, matchID string, fn func(*models.Match) error) (*models.Match, error)

	// CancelByReservation transitions every match owned by the reservation to
	// cancelled. Normally exactly one record matches; zero or more are
	// tolerated and corrected in one batched update.
	CancelByReservation(ctx context.Context, reservationID string) (int64, error)

	// ListOpenAfter returns open matches starting after the given instant,
	// ordered by start time ascending.
	ListOpenAfter(ctx context.Context, after time.Time) ([]models.Match, error)

	// ListActive returns all matches that are not cancelled.
	ListActive(ctx context.Context) ([]models.Match, error)

	// ListByParticipant returns matches where userID is a confirmed
	// participant, ordered by start time ascending.
	ListByParticipant(ctx context.Context, userID string) ([]models.Match, error)

	// SetPriceIfAbsent backfills price_total, moving it absent -> present
	// only; a present value is never overwritten.
	SetPriceIfAbsent(ctx context.Context, matchID string, price float64) error
}
