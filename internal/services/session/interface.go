package session

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/pointing/internal/services/session Service

import "context"

// Service defines the interface for session operations. Every mutation
// loads the aggregate fresh from the store, applies one invariant-checked
// change and performs at most one save.
type Service interface {
	// CreateSession creates a new estimation session
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession returns the full snapshot of a session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// ListSessionsByCreator returns summaries of a creator's sessions
	ListSessionsByCreator(ctx context.Context, input *ListSessionsByCreatorInput) (*ListSessionsByCreatorOutput, error)

	// JoinSession enrolls a new participant in a session
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// LeaveSession removes a participant and their current-round vote
	LeaveSession(ctx context.Context, input *LeaveSessionInput) (*LeaveSessionOutput, error)

	// StartVoting opens a new voting round
	StartVoting(ctx context.Context, input *StartVotingInput) (*StartVotingOutput, error)

	// SubmitVote records or replaces a participant's vote
	SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error)

	// RevealVotes makes every vote of the current round visible
	RevealVotes(ctx context.Context, input *RevealVotesInput) (*RevealVotesOutput, error)

	// FinishVoting closes the current round and archives it
	FinishVoting(ctx context.Context, input *FinishVotingInput) (*FinishVotingOutput, error)

	// SetParticipantConnected flips a participant's connectivity flag
	SetParticipantConnected(ctx context.Context, input *SetParticipantConnectedInput) (*SetParticipantConnectedOutput, error)
}
