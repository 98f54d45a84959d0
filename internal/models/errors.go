package models

// DomainError is a custom error type for domain rule violations
type DomainError string

// Error implements the error interface
func (e DomainError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidScale          DomainError = "invalid scale"
	ErrInvalidVoteValue      DomainError = "invalid vote value"
	ErrIncomparableValue     DomainError = "vote values are not comparable"
	ErrEmptyQuestion         DomainError = "question cannot be empty"
	ErrRoundNotActive        DomainError = "round is not accepting votes"
	ErrVotingAlreadyActive   DomainError = "a voting round is already active"
	ErrNoActiveRound         DomainError = "no active voting round"
	ErrAlreadyRevealed       DomainError = "votes are already revealed"
	ErrParticipantCannotVote DomainError = "participant cannot vote"
	ErrSessionInactive       DomainError = "session is inactive"
)
