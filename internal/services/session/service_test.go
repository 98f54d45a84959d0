package session

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/pointing/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/pointing/internal/common/uuid/mocks"
	"github.com/KirkDiggler/pointing/internal/models"
	sessionRepo "github.com/KirkDiggler/pointing/internal/repositories/session"
	repoMocks "github.com/KirkDiggler/pointing/internal/repositories/session/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *repoMocks.MockRepository
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	service   Service
	ctx       context.Context

	// Test data
	testTime       time.Time
	testSessionID  string
	testCreatorID  string
	testVoterID    string
	testObserverID string
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"
	s.testCreatorID = "test-creator-id"
	s.testVoterID = "voter-test-uuid"
	s.testObserverID = "observer-test-uuid"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	service, err := New(&Config{
		SessionRepo: s.mockRepo,
		Clock:       s.mockClock,
		UUID:        s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *SessionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

// fixtureSession builds a session with one voter and one observer
func (s *SessionServiceTestSuite) fixtureSession() *models.Session {
	session := models.NewSession(s.testSessionID, "Sprint 42", s.testCreatorID, models.FibonacciScale(), s.testTime)
	s.Require().NoError(session.AddParticipant(&models.Participant{
		ID:       s.testVoterID,
		Name:     "Alice",
		Role:     models.RoleVoter,
		JoinedAt: s.testTime,
	}))
	s.Require().NoError(session.AddParticipant(&models.Participant{
		ID:       s.testObserverID,
		Name:     "Bob",
		Role:     models.RoleObserver,
		JoinedAt: s.testTime,
	}))
	return session
}

// fixtureSessionWithRound adds an open round with one hidden vote
func (s *SessionServiceTestSuite) fixtureSessionWithRound() *models.Session {
	session := s.fixtureSession()
	_, err := session.StartVoting("round-1", "Estimate login", s.testTime)
	s.Require().NoError(err)

	value, err := models.NewVoteValue("5", session.Scale)
	s.Require().NoError(err)
	s.Require().NoError(session.SubmitVote(s.testVoterID, value, s.testTime))

	return session
}

func (s *SessionServiceTestSuite) expectLoad(session *models.Session) {
	s.mockRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(session, nil)
}

func (s *SessionServiceTestSuite) expectSave() **models.Session {
	var saved *models.Session
	s.mockRepo.EXPECT().
		SaveSession(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			saved = input.Session
			return nil
		})
	return &saved
}

func (s *SessionServiceTestSuite) TestCreateSession() {
	s.mockUUID.EXPECT().NewUUID().Return("new-session-uuid")
	saved := s.expectSave()

	output, err := s.service.CreateSession(s.ctx, &CreateSessionInput{
		Name:      "Sprint 42",
		CreatorID: s.testCreatorID,
		ScaleName: "fibonacci",
	})
	s.Require().NoError(err)
	s.Equal("new-session-uuid", output.SessionID)

	s.Require().NotNil(*saved)
	s.Equal("Sprint 42", (*saved).Name)
	s.True((*saved).Active)
	s.True((*saved).Scale.Equals(models.FibonacciScale()))
	s.Empty((*saved).Participants)
	s.Nil((*saved).CurrentRound)
}

func (s *SessionServiceTestSuite) TestCreateSessionWithCustomScale() {
	s.mockUUID.EXPECT().NewUUID().Return("new-session-uuid")
	saved := s.expectSave()

	_, err := s.service.CreateSession(s.ctx, &CreateSessionInput{
		Name:      "Sprint 42",
		CreatorID: s.testCreatorID,
		CustomScale: &CustomScaleInput{
			Name:   "team-scale",
			Values: []string{"low", "high"},
		},
	})
	s.Require().NoError(err)
	s.Equal("team-scale", (*saved).Scale.Name)
}

func (s *SessionServiceTestSuite) TestCreateSessionValidation() {
	_, err := s.service.CreateSession(s.ctx, &CreateSessionInput{
		CreatorID: s.testCreatorID,
		ScaleName: "fibonacci",
	})
	s.ErrorIs(err, ErrEmptySessionName)
	s.True(IsValidation(err))

	_, err = s.service.CreateSession(s.ctx, &CreateSessionInput{
		Name:      "Sprint 42",
		ScaleName: "fibonacci",
	})
	s.ErrorIs(err, ErrEmptyCreatorID)

	_, err = s.service.CreateSession(s.ctx, &CreateSessionInput{
		Name:      "Sprint 42",
		CreatorID: s.testCreatorID,
		ScaleName: "bogus",
	})
	s.ErrorIs(err, models.ErrInvalidScale)
	s.True(IsValidation(err))
}

func (s *SessionServiceTestSuite) TestGetSessionNotFound() {
	s.mockRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.service.GetSession(s.ctx, &GetSessionInput{SessionID: s.testSessionID})
	s.ErrorIs(err, ErrSessionNotFound)
	s.True(IsNotFound(err))
}

func (s *SessionServiceTestSuite) TestGetSessionMasksHiddenVotes() {
	s.expectLoad(s.fixtureSessionWithRound())

	output, err := s.service.GetSession(s.ctx, &GetSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	round := output.Session.CurrentRound
	s.Require().NotNil(round)
	s.Require().Len(round.Votes, 1)
	s.False(round.Votes[0].Revealed)
	s.Empty(round.Votes[0].Value)
	s.Nil(round.Statistics)
}

func (s *SessionServiceTestSuite) TestJoinSession() {
	s.expectLoad(s.fixtureSession())
	s.mockUUID.EXPECT().NewUUID().Return("new-uuid")
	saved := s.expectSave()

	output, err := s.service.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		Name:      "Carol",
		Role:      models.RoleVoter,
	})
	s.Require().NoError(err)

	s.Equal("voter-new-uuid", output.ParticipantID)
	s.Equal("Sprint 42", output.SessionName)
	s.True(output.Scale.Equals(models.FibonacciScale()))
	s.Nil(output.CurrentRound)

	s.Len((*saved).Participants, 3)
	joined := (*saved).Participant("voter-new-uuid")
	s.Require().NotNil(joined)
	s.False(joined.Connected)
}

func (s *SessionServiceTestSuite) TestJoinSessionObserverPrefix() {
	s.expectLoad(s.fixtureSession())
	s.mockUUID.EXPECT().NewUUID().Return("new-uuid")
	s.expectSave()

	output, err := s.service.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		Name:      "Carol",
		Role:      models.RoleObserver,
	})
	s.Require().NoError(err)
	s.Equal("observer-new-uuid", output.ParticipantID)
}

func (s *SessionServiceTestSuite) TestJoinSessionMidRoundSummary() {
	s.expectLoad(s.fixtureSessionWithRound())
	s.mockUUID.EXPECT().NewUUID().Return("new-uuid")
	s.expectSave()

	output, err := s.service.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		Name:      "Carol",
		Role:      models.RoleVoter,
	})
	s.Require().NoError(err)

	s.Require().NotNil(output.CurrentRound)
	s.Equal("round-1", output.CurrentRound.ID)
	s.Equal("Estimate login", output.CurrentRound.Question)
	s.Equal(1, output.CurrentRound.VoteCount)
}

func (s *SessionServiceTestSuite) TestJoinSessionValidation() {
	_, err := s.service.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		Role:      models.RoleVoter,
	})
	s.ErrorIs(err, ErrEmptyParticipantName)

	_, err = s.service.JoinSession(s.ctx, &JoinSessionInput{
		SessionID: s.testSessionID,
		Name:      "Carol",
		Role:      "admin",
	})
	s.ErrorIs(err, ErrInvalidRole)
}

func (s *SessionServiceTestSuite) TestLeaveSessionRemovesVote() {
	s.expectLoad(s.fixtureSessionWithRound())
	saved := s.expectSave()

	_, err := s.service.LeaveSession(s.ctx, &LeaveSessionInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testVoterID,
	})
	s.Require().NoError(err)

	s.Nil((*saved).Participant(s.testVoterID))
	s.Empty((*saved).CurrentRound.Votes)
}

func (s *SessionServiceTestSuite) TestLeaveSessionUnknownParticipantIsNoOp() {
	s.expectLoad(s.fixtureSession())
	// No save expected

	_, err := s.service.LeaveSession(s.ctx, &LeaveSessionInput{
		SessionID:     s.testSessionID,
		ParticipantID: "ghost",
	})
	s.NoError(err)
}

func (s *SessionServiceTestSuite) TestStartVoting() {
	s.expectLoad(s.fixtureSession())
	s.mockUUID.EXPECT().NewUUID().Return("round-uuid")
	saved := s.expectSave()

	output, err := s.service.StartVoting(s.ctx, &StartVotingInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testVoterID,
		Question:      "Estimate login",
	})
	s.Require().NoError(err)

	s.Equal("round-uuid", output.RoundID)
	s.Equal("Estimate login", output.Question)
	// Only the voter is expected to vote
	s.Require().Len(output.Voters, 1)
	s.Equal(s.testVoterID, output.Voters[0].ID)

	s.Require().NotNil((*saved).CurrentRound)
	s.Equal(models.RoundStatusVoting, (*saved).CurrentRound.Status)
}

func (s *SessionServiceTestSuite) TestStartVotingWhileRoundActive() {
	s.expectLoad(s.fixtureSessionWithRound())

	_, err := s.service.StartVoting(s.ctx, &StartVotingInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testVoterID,
		Question:      "Estimate signup",
	})
	s.ErrorIs(err, models.ErrVotingAlreadyActive)
	s.True(IsPrecondition(err))
}

func (s *SessionServiceTestSuite) TestStartVotingByObserverFails() {
	s.expectLoad(s.fixtureSession())

	_, err := s.service.StartVoting(s.ctx, &StartVotingInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testObserverID,
		Question:      "Estimate login",
	})
	s.ErrorIs(err, ErrNotAuthorized)
	s.True(IsAuthorization(err))
}

func (s *SessionServiceTestSuite) TestStartVotingByUnknownInitiatorFails() {
	s.expectLoad(s.fixtureSession())

	_, err := s.service.StartVoting(s.ctx, &StartVotingInput{
		SessionID:     s.testSessionID,
		ParticipantID: "ghost",
		Question:      "Estimate login",
	})
	s.ErrorIs(err, ErrNotAuthorized)
}

func (s *SessionServiceTestSuite) TestSubmitVote() {
	s.expectLoad(s.fixtureSessionWithRound())
	saved := s.expectSave()

	output, err := s.service.SubmitVote(s.ctx, &SubmitVoteInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testVoterID,
		Value:         "8",
	})
	s.Require().NoError(err)

	s.Equal("8", output.Value)
	s.Equal(s.testTime, output.SubmittedAt)

	// The prior vote was replaced, not duplicated
	s.Len((*saved).CurrentRound.Votes, 1)
	s.Equal("8", (*saved).CurrentRound.Votes[s.testVoterID].Value.Raw)
}

func (s *SessionServiceTestSuite) TestSubmitVoteNotOnScale() {
	s.expectLoad(s.fixtureSessionWithRound())

	_, err := s.service.SubmitVote(s.ctx, &SubmitVoteInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testVoterID,
		Value:         "4",
	})
	s.ErrorIs(err, models.ErrInvalidVoteValue)
	s.True(IsValidation(err))
}

func (s *SessionServiceTestSuite) TestSubmitVoteSentinel() {
	s.expectLoad(s.fixtureSessionWithRound())
	saved := s.expectSave()

	output, err := s.service.SubmitVote(s.ctx, &SubmitVoteInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testVoterID,
		Value:         models.VoteAbstain,
	})
	s.Require().NoError(err)
	s.Equal(models.VoteAbstain, output.Value)
	s.True((*saved).CurrentRound.Votes[s.testVoterID].Value.IsSentinel())
}

func (s *SessionServiceTestSuite) TestSubmitVoteByObserverFails() {
	s.expectLoad(s.fixtureSessionWithRound())

	_, err := s.service.SubmitVote(s.ctx, &SubmitVoteInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testObserverID,
		Value:         "5",
	})
	s.ErrorIs(err, models.ErrParticipantCannotVote)
	s.True(IsAuthorization(err))
}

func (s *SessionServiceTestSuite) TestSubmitVoteWithoutRound() {
	s.expectLoad(s.fixtureSession())

	_, err := s.service.SubmitVote(s.ctx, &SubmitVoteInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testVoterID,
		Value:         "5",
	})
	s.ErrorIs(err, models.ErrNoActiveRound)
}

func (s *SessionServiceTestSuite) TestRevealVotes() {
	s.expectLoad(s.fixtureSessionWithRound())
	saved := s.expectSave()

	output, err := s.service.RevealVotes(s.ctx, &RevealVotesInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testVoterID,
	})
	s.Require().NoError(err)

	s.Equal("round-1", output.RoundID)
	s.Equal("Estimate login", output.Question)
	s.Require().Len(output.Results, 1)
	s.Equal(s.testVoterID, output.Results[0].ParticipantID)
	s.Equal("Alice", output.Results[0].ParticipantName)
	s.Equal("5", output.Results[0].Value)
	s.Equal(1, output.Statistics.TotalVotes)
	s.True(output.Statistics.Consensus)

	s.Equal(models.RoundStatusRevealed, (*saved).CurrentRound.Status)
}

func (s *SessionServiceTestSuite) TestRevealVotesTwiceFails() {
	session := s.fixtureSessionWithRound()
	s.Require().NoError(session.RevealVotes())
	s.expectLoad(session)

	_, err := s.service.RevealVotes(s.ctx, &RevealVotesInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testVoterID,
	})
	s.ErrorIs(err, models.ErrAlreadyRevealed)
	s.True(IsPrecondition(err))
}

func (s *SessionServiceTestSuite) TestRevealVotesByObserverFails() {
	s.expectLoad(s.fixtureSessionWithRound())

	_, err := s.service.RevealVotes(s.ctx, &RevealVotesInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testObserverID,
	})
	s.ErrorIs(err, ErrNotAuthorized)
}

func (s *SessionServiceTestSuite) TestFinishVoting() {
	s.expectLoad(s.fixtureSessionWithRound())
	saved := s.expectSave()

	output, err := s.service.FinishVoting(s.ctx, &FinishVotingInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testVoterID,
	})
	s.Require().NoError(err)

	s.Equal("round-1", output.RoundID)
	s.Equal(1, output.Statistics.TotalVotes)

	s.Nil((*saved).CurrentRound)
	s.Require().Len((*saved).RoundHistory, 1)
	s.Equal(models.RoundStatusFinished, (*saved).RoundHistory[0].Status)
}

func (s *SessionServiceTestSuite) TestFinishVotingWithoutRound() {
	s.expectLoad(s.fixtureSession())

	_, err := s.service.FinishVoting(s.ctx, &FinishVotingInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testVoterID,
	})
	s.ErrorIs(err, models.ErrNoActiveRound)
}

func (s *SessionServiceTestSuite) TestSetParticipantConnected() {
	s.expectLoad(s.fixtureSession())
	saved := s.expectSave()

	output, err := s.service.SetParticipantConnected(s.ctx, &SetParticipantConnectedInput{
		SessionID:     s.testSessionID,
		ParticipantID: s.testVoterID,
		Connected:     true,
	})
	s.Require().NoError(err)
	s.True(output.Participant.Connected)
	s.True((*saved).Participant(s.testVoterID).Connected)
}

func (s *SessionServiceTestSuite) TestSetParticipantConnectedUnknownID() {
	s.expectLoad(s.fixtureSession())

	_, err := s.service.SetParticipantConnected(s.ctx, &SetParticipantConnectedInput{
		SessionID:     s.testSessionID,
		ParticipantID: "ghost",
		Connected:     true,
	})
	s.ErrorIs(err, ErrParticipantNotFound)
}

func (s *SessionServiceTestSuite) TestListSessionsByCreator() {
	first := models.NewSession("session-1", "First", s.testCreatorID, models.FibonacciScale(), s.testTime)
	second := models.NewSession("session-2", "Second", s.testCreatorID, models.TShirtScale(), s.testTime.Add(time.Hour))

	s.mockRepo.EXPECT().
		GetSessionsByCreator(s.ctx, &sessionRepo.GetSessionsByCreatorInput{CreatorID: s.testCreatorID}).
		Return(&sessionRepo.GetSessionsByCreatorOutput{
			Sessions: []*models.Session{second, first},
		}, nil)

	output, err := s.service.ListSessionsByCreator(s.ctx, &ListSessionsByCreatorInput{
		CreatorID: s.testCreatorID,
	})
	s.Require().NoError(err)

	s.Require().Len(output.Sessions, 2)
	// Oldest first
	s.Equal("session-1", output.Sessions[0].ID)
	s.Equal("session-2", output.Sessions[1].ID)
	s.Equal("fibonacci", output.Sessions[0].ScaleName)
}

func (s *SessionServiceTestSuite) TestRepositoryErrorPropagates() {
	repoErr := errors.New("redis down")
	s.mockRepo.EXPECT().
		GetSession(s.ctx, gomock.Any()).
		Return(nil, repoErr)

	_, err := s.service.GetSession(s.ctx, &GetSessionInput{SessionID: s.testSessionID})
	s.ErrorIs(err, repoErr)
	s.False(IsNotFound(err))
}

func (s *SessionServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock, UUID: s.mockUUID})
	s.ErrorIs(err, ErrNilSessionRepo)

	_, err = New(&Config{SessionRepo: s.mockRepo, UUID: s.mockUUID})
	s.ErrorIs(err, ErrNilClock)

	_, err = New(&Config{SessionRepo: s.mockRepo, Clock: s.mockClock})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}
