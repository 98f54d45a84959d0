package session

import (
	"time"

	"github.com/KirkDiggler/pointing/internal/models"
)

type CreateSessionInput struct {
	// Name of the session
	Name string

	// CreatorID identifies whoever is creating the session
	CreatorID string

	// ScaleName selects a predefined scale (fibonacci, tshirt,
	// power_of_two). Ignored when CustomScale is set.
	ScaleName string

	// CustomScale defines a user-named scale instead of a predefined one
	CustomScale *CustomScaleInput
}

type CustomScaleInput struct {
	Name   string
	Values []string
}

type CreateSessionOutput struct {
	SessionID string
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionOutput struct {
	Session *SessionSnapshot
}

type ListSessionsByCreatorInput struct {
	CreatorID string
}

type ListSessionsByCreatorOutput struct {
	Sessions []*SessionSummary
}

// SessionSummary is the listing view of a session
type SessionSummary struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	ScaleName        string    `json:"scaleName"`
	Active           bool      `json:"active"`
	ParticipantCount int       `json:"participantCount"`
	RoundsPlayed     int       `json:"roundsPlayed"`
	CreatedAt        time.Time `json:"createdAt"`
}

type JoinSessionInput struct {
	SessionID string

	// Name is the participant's display name
	Name string

	// Role is either voter or observer
	Role models.ParticipantRole
}

type JoinSessionOutput struct {
	ParticipantID string
	SessionName   string
	Scale         models.Scale

	// CurrentRound summarizes the round in progress, nil between rounds
	CurrentRound *RoundSummary
}

// RoundSummary describes a round without exposing vote values
type RoundSummary struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Status    string    `json:"status"`
	StartedAt time.Time `json:"startedAt"`
	VoteCount int       `json:"voteCount"`
}

type LeaveSessionInput struct {
	SessionID     string
	ParticipantID string
}

type LeaveSessionOutput struct {
}

type StartVotingInput struct {
	SessionID string

	// ParticipantID is the initiating voter
	ParticipantID string

	Question string
}

type StartVotingOutput struct {
	RoundID  string
	Question string

	// Voters lists the participants expected to vote
	Voters []*ParticipantSnapshot
}

type SubmitVoteInput struct {
	SessionID     string
	ParticipantID string

	// Value is the raw vote label, a scale member or a sentinel
	Value string
}

type SubmitVoteOutput struct {
	ParticipantID string
	Value         string
	SubmittedAt   time.Time
}

type RevealVotesInput struct {
	SessionID string

	// ParticipantID is the initiating voter
	ParticipantID string
}

type RevealVotesOutput struct {
	RoundID    string
	Question   string
	Results    []*VoteResult
	Statistics *models.RoundStatistics
}

// VoteResult pairs a revealed vote with its participant
type VoteResult struct {
	ParticipantID   string `json:"participantId"`
	ParticipantName string `json:"participantName"`
	Value           string `json:"value"`
}

type FinishVotingInput struct {
	SessionID string

	// ParticipantID is the initiating voter
	ParticipantID string
}

type FinishVotingOutput struct {
	RoundID    string
	Statistics *models.RoundStatistics
}

type SetParticipantConnectedInput struct {
	SessionID     string
	ParticipantID string
	Connected     bool
}

type SetParticipantConnectedOutput struct {
	Participant *ParticipantSnapshot
}
