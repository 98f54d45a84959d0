package models

import (
	"fmt"
	"time"
)

// RoundStatus represents the current state of a voting round
type RoundStatus string

const (
	// RoundStatusVoting indicates the round is collecting hidden votes
	RoundStatusVoting RoundStatus = "voting"

	// RoundStatusRevealed indicates votes are visible to everyone
	RoundStatusRevealed RoundStatus = "revealed"

	// RoundStatusFinished indicates the round is closed
	RoundStatusFinished RoundStatus = "finished"
)

// Vote is one participant's submission in a round. Submitting again
// replaces the prior vote rather than adding a second entry.
type Vote struct {
	// ParticipantID is the participant the vote belongs to
	ParticipantID string `json:"participantId"`

	// Value is the validated vote value
	Value VoteValue `json:"value"`

	// SubmittedAt is when the vote was last submitted
	SubmittedAt time.Time `json:"submittedAt"`

	// Revealed indicates whether the value may be shown to others
	Revealed bool `json:"revealed"`
}

// VotingRound is one question's voting life cycle:
// voting -> revealed -> finished.
type VotingRound struct {
	// ID is the unique identifier for the round
	ID string `json:"id"`

	// Question is what is being estimated
	Question string `json:"question"`

	// StartedAt is when the round was started
	StartedAt time.Time `json:"startedAt"`

	// Status is the current state of the round
	Status RoundStatus `json:"status"`

	// Votes holds at most one vote per participant
	Votes map[string]*Vote `json:"votes"`
}

// NewVotingRound starts a fresh round for a non-empty question
func NewVotingRound(id, question string, startedAt time.Time) (*VotingRound, error) {
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	return &VotingRound{
		ID:        id,
		Question:  question,
		StartedAt: startedAt,
		Status:    RoundStatusVoting,
		Votes:     make(map[string]*Vote),
	}, nil
}

// IsVoting reports whether the round is still collecting votes
func (r *VotingRound) IsVoting() bool {
	return r.Status == RoundStatusVoting
}

// IsFinished reports whether the round is closed
func (r *VotingRound) IsFinished() bool {
	return r.Status == RoundStatusFinished
}

// Submit inserts or replaces the participant's vote. Votes are only
// accepted while the round is in the voting state.
func (r *VotingRound) Submit(participantID string, value VoteValue, at time.Time) error {
	if r.Status != RoundStatusVoting {
		return fmt.Errorf("%w: round is %s", ErrRoundNotActive, r.Status)
	}

	r.Votes[participantID] = &Vote{
		ParticipantID: participantID,
		Value:         value,
		SubmittedAt:   at,
		Revealed:      false,
	}

	return nil
}

// Reveal transitions the round from voting to revealed and marks every
// stored vote as visible
func (r *VotingRound) Reveal() error {
	if r.Status != RoundStatusVoting {
		return fmt.Errorf("%w: round is %s", ErrRoundNotActive, r.Status)
	}

	r.Status = RoundStatusRevealed
	for _, vote := range r.Votes {
		vote.Revealed = true
	}

	return nil
}

// Finish closes the round, revealing votes first if that has not
// happened yet. Finishing an already-finished round is a no-op.
func (r *VotingRound) Finish() {
	if r.Status == RoundStatusFinished {
		return
	}

	if r.Status == RoundStatusVoting {
		r.Status = RoundStatusRevealed
		for _, vote := range r.Votes {
			vote.Revealed = true
		}
	}

	r.Status = RoundStatusFinished
}

// RemoveVote drops the participant's vote regardless of round state.
// Used when a participant leaves the session.
func (r *VotingRound) RemoveVote(participantID string) {
	delete(r.Votes, participantID)
}
