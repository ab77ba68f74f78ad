package commands

import (
	"errors"

	"tableside/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrChangeQuantityCommandIsNotConstructed = errors.New(
		"ChangeQuantityCommand must be created via NewChangeQuantityCommand constructor",
	)
	ErrLineIndexIsInvalid = errors.New("line index must not be negative")
	ErrDeltaIsRequired    = errors.New("delta must not be zero")
)

// ChangeQuantityCommand adjusts the quantity of a cart line by a signed
// delta. The session floors the resulting quantity at one; removing a line
// entirely is not part of this operation.
type ChangeQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID uuid.UUID
	lineIndex int
	delta     int

	guard guard.ConstructorGuard
}

// NewChangeQuantityCommand creates a command to adjust a cart line quantity.
func NewChangeQuantityCommand(sessionID uuid.UUID, lineIndex, delta int) (ChangeQuantityCommand, error) {
	cmd := ChangeQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setLineIndex(lineIndex),
		cmd.setDelta(delta),
	); err != nil {
		return ChangeQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeQuantityCommandIsNotConstructed)
}

// SessionID returns the cart session being adjusted.
func (c ChangeQuantityCommand) SessionID() uuid.UUID {
	return c.sessionID
}

// LineIndex returns the position of the line within the cart.
func (c ChangeQuantityCommand) LineIndex() int {
	return c.lineIndex
}

// Delta returns the signed quantity adjustment.
func (c ChangeQuantityCommand) Delta() int {
	return c.delta
}

func (c *ChangeQuantityCommand) setSessionID(sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *ChangeQuantityCommand) setLineIndex(lineIndex int) error {
	if lineIndex < 0 {
		return ErrLineIndexIsInvalid
	}

	c.lineIndex = lineIndex
	return nil
}

func (c *ChangeQuantityCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsRequired
	}

	c.delta = delta
	return nil
}
