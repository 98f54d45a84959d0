package models

import (
	"fmt"
	"time"
)

// Session is the aggregate root for one estimation session. It owns the
// scale, the participant set, the current voting round and the round
// history, and is the unit of persistence.
type Session struct {
	// ID is the unique identifier for the session
	ID string `json:"id"`

	// Name is the display name of the session
	Name string `json:"name"`

	// Scale is the estimation scale votes are validated against
	Scale Scale `json:"scale"`

	// CreatorID is the identifier of whoever created the session.
	// Creation confers no privilege: driving rounds requires an
	// enrolled voter participant.
	CreatorID string `json:"creatorId"`

	// Active indicates whether the session still accepts mutations
	Active bool `json:"active"`

	// Participants holds the session members in join order
	Participants []*Participant `json:"participants"`

	// CurrentRound is the round being voted on, nil between rounds
	CurrentRound *VotingRound `json:"currentRound"`

	// RoundHistory holds finished rounds, oldest first
	RoundHistory []*VotingRound `json:"roundHistory"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the session was last mutated
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSession creates an active session with no participants and no round
func NewSession(id, name, creatorID string, scale Scale, now time.Time) *Session {
	return &Session{
		ID:           id,
		Name:         name,
		Scale:        scale,
		CreatorID:    creatorID,
		Active:       true,
		Participants: []*Participant{},
		RoundHistory: []*VotingRound{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Participant returns the member with the given id, or nil
func (s *Session) Participant(id string) *Participant {
	for _, p := range s.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// AddParticipant inserts the participant by id. Re-adding an existing
// id replaces that entry in place.
func (s *Session) AddParticipant(participant *Participant) error {
	if !s.Active {
		return ErrSessionInactive
	}

	for i, p := range s.Participants {
		if p.ID == participant.ID {
			s.Participants[i] = participant
			return nil
		}
	}

	s.Participants = append(s.Participants, participant)
	return nil
}

// RemoveParticipant drops the member and their vote in the current
// round, if any. Removing a non-member is a no-op.
func (s *Session) RemoveParticipant(id string) error {
	if !s.Active {
		return ErrSessionInactive
	}

	remaining := make([]*Participant, 0, len(s.Participants))
	for _, p := range s.Participants {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	s.Participants = remaining

	if s.CurrentRound != nil {
		s.CurrentRound.RemoveVote(id)
	}

	return nil
}

// StartVoting opens a new round. Only valid while no round is active.
func (s *Session) StartVoting(roundID, question string, now time.Time) (*VotingRound, error) {
	if !s.Active {
		return nil, ErrSessionInactive
	}

	if s.CurrentRound != nil && !s.CurrentRound.IsFinished() {
		return nil, ErrVotingAlreadyActive
	}

	round, err := NewVotingRound(roundID, question, now)
	if err != nil {
		return nil, err
	}

	s.CurrentRound = round
	return round, nil
}

// SubmitVote records the participant's vote in the current round. The
// participant must be an enrolled voter.
func (s *Session) SubmitVote(participantID string, value VoteValue, at time.Time) error {
	if !s.Active {
		return ErrSessionInactive
	}

	if s.CurrentRound == nil {
		return ErrNoActiveRound
	}

	participant := s.Participant(participantID)
	if participant == nil {
		return fmt.Errorf("%w: unknown participant %s", ErrParticipantCannotVote, participantID)
	}
	if !participant.CanVote() {
		return fmt.Errorf("%w: %s is an observer", ErrParticipantCannotVote, participantID)
	}

	return s.CurrentRound.Submit(participantID, value, at)
}

// RevealVotes makes every vote in the current round visible
func (s *Session) RevealVotes() error {
	if !s.Active {
		return ErrSessionInactive
	}

	if s.CurrentRound == nil {
		return ErrNoActiveRound
	}

	if !s.CurrentRound.IsVoting() {
		return ErrAlreadyRevealed
	}

	return s.CurrentRound.Reveal()
}

// FinishVoting closes the current round, appends it to the history and
// clears the current round. Returns the finished round.
func (s *Session) FinishVoting() (*VotingRound, error) {
	if !s.Active {
		return nil, ErrSessionInactive
	}

	if s.CurrentRound == nil {
		return nil, ErrNoActiveRound
	}

	round := s.CurrentRound
	round.Finish()
	s.RoundHistory = append(s.RoundHistory, round)
	s.CurrentRound = nil

	return round, nil
}

// Deactivate blocks all further mutation, reads keep working
func (s *Session) Deactivate() {
	s.Active = false
}

// Activate re-enables mutation
func (s *Session) Activate() {
	s.Active = true
}
