package session

import (
	"errors"

	"github.com/KirkDiggler/pointing/internal/models"
)

// SessionError is a custom error type for session service errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound      SessionError = "session not found"
	ErrParticipantNotFound  SessionError = "participant not found"
	ErrEmptySessionName     SessionError = "session name cannot be empty"
	ErrEmptyCreatorID       SessionError = "creator ID cannot be empty"
	ErrEmptyParticipantName SessionError = "participant name cannot be empty"
	ErrInvalidRole          SessionError = "role must be voter or observer"
	ErrNotAuthorized        SessionError = "participant is not allowed to perform this action"
	ErrNilInput             SessionError = "input cannot be nil"
	ErrNilConfig            SessionError = "config cannot be nil"
	ErrNilSessionRepo       SessionError = "session repository cannot be nil"
	ErrNilClock             SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator     SessionError = "UUID generator cannot be nil"
)

// IsNotFound reports whether err means the session or participant is absent
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrParticipantNotFound)
}

// IsValidation reports whether err means the input was malformed
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptySessionName) ||
		errors.Is(err, ErrEmptyCreatorID) ||
		errors.Is(err, ErrEmptyParticipantName) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, models.ErrInvalidScale) ||
		errors.Is(err, models.ErrInvalidVoteValue) ||
		errors.Is(err, models.ErrEmptyQuestion)
}

// IsPrecondition reports whether err means the aggregate was in the
// wrong state for the requested mutation
func IsPrecondition(err error) bool {
	return errors.Is(err, models.ErrVotingAlreadyActive) ||
		errors.Is(err, models.ErrNoActiveRound) ||
		errors.Is(err, models.ErrAlreadyRevealed) ||
		errors.Is(err, models.ErrRoundNotActive) ||
		errors.Is(err, models.ErrSessionInactive)
}

// IsAuthorization reports whether err means the acting participant may
// not perform the operation
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrNotAuthorized) ||
		errors.Is(err, models.ErrParticipantCannotVote)
}
