package session

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/pointing/internal/common/clock"
	"github.com/KirkDiggler/pointing/internal/common/uuid"
	"github.com/KirkDiggler/pointing/internal/models"
	sessionRepo "github.com/KirkDiggler/pointing/internal/repositories/session"
)

// Config holds the dependencies of the session service
type Config struct {
	// SessionRepo persists session aggregates
	SessionRepo sessionRepo.Repository

	// Clock provides the current time
	Clock clock.Clock

	// UUID generates identifiers
	UUID uuid.UUID
}

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
	uuider      uuid.UUID
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
		uuider:      cfg.UUID,
	}, nil
}

// CreateSession creates a new estimation session with no participants
// and no round
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrEmptySessionName
	}
	if input.CreatorID == "" {
		return nil, ErrEmptyCreatorID
	}

	var scale models.Scale
	var err error
	if input.CustomScale != nil {
		scale, err = models.NewCustomScale(input.CustomScale.Name, input.CustomScale.Values)
	} else {
		scale, err = models.PredefinedScale(input.ScaleName)
	}
	if err != nil {
		return nil, err
	}

	session := models.NewSession(s.uuider.NewUUID(), input.Name, input.CreatorID, scale, s.clock.Now())

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	return &CreateSessionOutput{
		SessionID: session.ID,
	}, nil
}

// GetSession returns the full snapshot of a session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session: NewSessionSnapshot(session),
	}, nil
}

// ListSessionsByCreator returns summaries of every live session a
// creator owns, oldest first
func (s *service) ListSessionsByCreator(ctx context.Context, input *ListSessionsByCreatorInput) (*ListSessionsByCreatorOutput, error) {
	if input == nil || input.CreatorID == "" {
		return nil, ErrEmptyCreatorID
	}

	result, err := s.sessionRepo.GetSessionsByCreator(ctx, &sessionRepo.GetSessionsByCreatorInput{
		CreatorID: input.CreatorID,
	})
	if err != nil {
		return nil, err
	}

	summaries := make([]*SessionSummary, 0, len(result.Sessions))
	for _, session := range result.Sessions {
		summaries = append(summaries, &SessionSummary{
			ID:               session.ID,
			Name:             session.Name,
			ScaleName:        session.Scale.Name,
			Active:           session.Active,
			ParticipantCount: len(session.Participants),
			RoundsPlayed:     len(session.RoundHistory),
			CreatedAt:        session.CreatedAt,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].ID < summaries[j].ID
		}
		return summaries[i].CreatedAt.Before(summaries[j].CreatedAt)
	})

	return &ListSessionsByCreatorOutput{
		Sessions: summaries,
	}, nil
}

// JoinSession enrolls a new participant. Participant IDs are prefixed
// with the role so they stay recognizable in logs and payloads.
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrEmptyParticipantName
	}
	if !input.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	participant := &models.Participant{
		ID:        fmt.Sprintf("%s-%s", input.Role, s.uuider.NewUUID()),
		Name:      input.Name,
		Role:      input.Role,
		Connected: false,
		JoinedAt:  s.clock.Now(),
	}

	if err := session.AddParticipant(participant); err != nil {
		return nil, err
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	output := &JoinSessionOutput{
		ParticipantID: participant.ID,
		SessionName:   session.Name,
		Scale:         session.Scale,
	}
	if session.CurrentRound != nil {
		output.CurrentRound = newRoundSummary(session.CurrentRound)
	}

	return output, nil
}

// LeaveSession removes a participant and their vote in the current
// round. Leaving with an unknown participant ID is a no-op.
func (s *service) LeaveSession(ctx context.Context, input *LeaveSessionInput) (*LeaveSessionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if session.Participant(input.ParticipantID) == nil {
		return &LeaveSessionOutput{}, nil
	}

	if err := session.RemoveParticipant(input.ParticipantID); err != nil {
		return nil, err
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &LeaveSessionOutput{}, nil
}

// StartVoting opens a new round on behalf of an enrolled voter
func (s *service) StartVoting(ctx context.Context, input *StartVotingInput) (*StartVotingOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := requireVoter(session, input.ParticipantID); err != nil {
		return nil, err
	}

	round, err := session.StartVoting(s.uuider.NewUUID(), input.Question, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	voters := make([]*ParticipantSnapshot, 0, len(session.Participants))
	for _, p := range session.Participants {
		if p.CanVote() {
			voters = append(voters, newParticipantSnapshot(p))
		}
	}

	return &StartVotingOutput{
		RoundID:  round.ID,
		Question: round.Question,
		Voters:   voters,
	}, nil
}

// SubmitVote records or replaces the participant's vote in the current
// round
func (s *service) SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	value, err := models.NewVoteValue(input.Value, session.Scale)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := session.SubmitVote(input.ParticipantID, value, now); err != nil {
		return nil, err
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &SubmitVoteOutput{
		ParticipantID: input.ParticipantID,
		Value:         value.Raw,
		SubmittedAt:   now,
	}, nil
}

// RevealVotes makes the current round's votes visible and returns the
// per-participant results with statistics
func (s *service) RevealVotes(ctx context.Context, input *RevealVotesInput) (*RevealVotesOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := requireVoter(session, input.ParticipantID); err != nil {
		return nil, err
	}

	if err := session.RevealVotes(); err != nil {
		return nil, err
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	round := session.CurrentRound

	return &RevealVotesOutput{
		RoundID:    round.ID,
		Question:   round.Question,
		Results:    buildVoteResults(session, round),
		Statistics: round.Statistics(),
	}, nil
}

// FinishVoting closes the current round and moves it to the history
func (s *service) FinishVoting(ctx context.Context, input *FinishVotingInput) (*FinishVotingOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if err := requireVoter(session, input.ParticipantID); err != nil {
		return nil, err
	}

	round, err := session.FinishVoting()
	if err != nil {
		return nil, err
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &FinishVotingOutput{
		RoundID:    round.ID,
		Statistics: round.Statistics(),
	}, nil
}

// SetParticipantConnected flips the connectivity flag of an enrolled
// participant. Used by the gateway on attach and detach; an unknown ID
// is an error so reconnect handshakes cannot invent members.
func (s *service) SetParticipantConnected(ctx context.Context, input *SetParticipantConnectedInput) (*SetParticipantConnectedOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	session, err := s.loadSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	participant := session.Participant(input.ParticipantID)
	if participant == nil {
		return nil, ErrParticipantNotFound
	}

	participant.Connected = input.Connected

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return &SetParticipantConnectedOutput{
		Participant: newParticipantSnapshot(participant),
	}, nil
}

// loadSession fetches a fresh aggregate, mapping the repository's
// not-found onto the service error
func (s *service) loadSession(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

// saveSession stamps the update time and persists the whole aggregate
func (s *service) saveSession(ctx context.Context, session *models.Session) error {
	session.UpdatedAt = s.clock.Now()
	return s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
}

// requireVoter checks that the acting participant is an enrolled voter.
// The session creator gets no bypass here.
func requireVoter(session *models.Session, participantID string) error {
	participant := session.Participant(participantID)
	if participant == nil {
		return fmt.Errorf("%w: unknown participant %s", ErrNotAuthorized, participantID)
	}
	if !participant.CanVote() {
		return fmt.Errorf("%w: %s is an observer", ErrNotAuthorized, participantID)
	}
	return nil
}

func newRoundSummary(round *models.VotingRound) *RoundSummary {
	return &RoundSummary{
		ID:        round.ID,
		Question:  round.Question,
		Status:    string(round.Status),
		StartedAt: round.StartedAt,
		VoteCount: len(round.Votes),
	}
}

// buildVoteResults lists revealed votes in submission order
func buildVoteResults(session *models.Session, round *models.VotingRound) []*VoteResult {
	snapshot := newRoundSnapshot(round)

	results := make([]*VoteResult, 0, len(snapshot.Votes))
	for _, vote := range snapshot.Votes {
		name := ""
		if p := session.Participant(vote.ParticipantID); p != nil {
			name = p.Name
		}
		results = append(results, &VoteResult{
			ParticipantID:   vote.ParticipantID,
			ParticipantName: name,
			Value:           vote.Value,
		})
	}

	return results
}
