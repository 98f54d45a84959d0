package session

import (
	"sort"
	"time"

	"github.com/KirkDiggler/pointing/internal/models"
)

// SessionSnapshot is the full read-only view of a session that gets
// broadcast to every connected client after a mutation. Vote values
// stay hidden until their round is revealed.
type SessionSnapshot struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Scale        models.Scale           `json:"scale"`
	CreatorID    string                 `json:"creatorId"`
	Active       bool                   `json:"active"`
	Participants []*ParticipantSnapshot `json:"participants"`
	CurrentRound *RoundSnapshot         `json:"currentRound"`
	RoundHistory []*RoundSnapshot       `json:"roundHistory"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// ParticipantSnapshot is the wire view of a participant
type ParticipantSnapshot struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Role      models.ParticipantRole `json:"role"`
	Connected bool                   `json:"connected"`
}

// RoundSnapshot is the wire view of a voting round. Statistics are only
// attached once the round has been revealed.
type RoundSnapshot struct {
	ID         string                  `json:"id"`
	Question   string                  `json:"question"`
	Status     models.RoundStatus      `json:"status"`
	StartedAt  time.Time               `json:"startedAt"`
	Votes      []*VoteSnapshot         `json:"votes"`
	Statistics *models.RoundStatistics `json:"statistics,omitempty"`
}

// VoteSnapshot is the wire view of a vote. Value is empty while the
// vote is hidden, so clients can show who voted without seeing what.
type VoteSnapshot struct {
	ParticipantID string    `json:"participantId"`
	Value         string    `json:"value,omitempty"`
	Revealed      bool      `json:"revealed"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// NewSessionSnapshot projects the aggregate into its wire view
func NewSessionSnapshot(session *models.Session) *SessionSnapshot {
	snapshot := &SessionSnapshot{
		ID:           session.ID,
		Name:         session.Name,
		Scale:        session.Scale,
		CreatorID:    session.CreatorID,
		Active:       session.Active,
		Participants: make([]*ParticipantSnapshot, 0, len(session.Participants)),
		RoundHistory: make([]*RoundSnapshot, 0, len(session.RoundHistory)),
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}

	for _, p := range session.Participants {
		snapshot.Participants = append(snapshot.Participants, newParticipantSnapshot(p))
	}

	if session.CurrentRound != nil {
		snapshot.CurrentRound = newRoundSnapshot(session.CurrentRound)
	}

	for _, round := range session.RoundHistory {
		snapshot.RoundHistory = append(snapshot.RoundHistory, newRoundSnapshot(round))
	}

	return snapshot
}

func newParticipantSnapshot(p *models.Participant) *ParticipantSnapshot {
	return &ParticipantSnapshot{
		ID:        p.ID,
		Name:      p.Name,
		Role:      p.Role,
		Connected: p.Connected,
	}
}

func newRoundSnapshot(round *models.VotingRound) *RoundSnapshot {
	snapshot := &RoundSnapshot{
		ID:        round.ID,
		Question:  round.Question,
		Status:    round.Status,
		StartedAt: round.StartedAt,
		Votes:     make([]*VoteSnapshot, 0, len(round.Votes)),
	}

	for _, vote := range round.Votes {
		voteSnapshot := &VoteSnapshot{
			ParticipantID: vote.ParticipantID,
			Revealed:      vote.Revealed,
			SubmittedAt:   vote.SubmittedAt,
		}
		// Hidden votes go out without their value
		if vote.Revealed {
			voteSnapshot.Value = vote.Value.Raw
		}
		snapshot.Votes = append(snapshot.Votes, voteSnapshot)
	}

	// Stable wire order regardless of map iteration
	sort.Slice(snapshot.Votes, func(i, j int) bool {
		if snapshot.Votes[i].SubmittedAt.Equal(snapshot.Votes[j].SubmittedAt) {
			return snapshot.Votes[i].ParticipantID < snapshot.Votes[j].ParticipantID
		}
		return snapshot.Votes[i].SubmittedAt.Before(snapshot.Votes[j].SubmittedAt)
	})

	if round.Status != models.RoundStatusVoting {
		snapshot.Statistics = round.Statistics()
	}

	return snapshot
}
