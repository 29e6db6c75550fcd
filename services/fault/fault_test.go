package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := NotFound("booking not found")
	if KindOf(err) != KindNotFound {
		t.Errorf("KindOf = %q, want not_found", KindOf(err))
	}
	if err.Error() != "booking not found" {
		t.Errorf("Error() = %q", err.Error())
	}

	// Wrapped faults keep their kind.
	wrapped := fmt.Errorf("handling request: %w", Conflict("already linked"))
	if KindOf(wrapped) != KindConflict {
		t.Errorf("KindOf(wrapped) = %q, want conflict", KindOf(wrapped))
	}

	if KindOf(errors.New("plain")) != "" {
		t.Errorf("plain errors must have no kind")
	}
	if KindOf(nil) != "" {
		t.Errorf("nil must have no kind")
	}
}

func TestIs(t *testing.T) {
	err := Forbidden("only the organizer can approve or reject join requests")
	if !Is(err, KindForbidden) {
		t.Errorf("Is(forbidden) = false")
	}
	if Is(err, KindNotFound) {
		t.Errorf("Is(not_found) = true for a forbidden fault")
	}
}
