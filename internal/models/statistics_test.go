package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type StatisticsTestSuite struct {
	suite.Suite
	scale   Scale
	testNow time.Time
	round   *VotingRound
}

func (s *StatisticsTestSuite) SetupTest() {
	s.scale = FibonacciScale()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)

	round, err := NewVotingRound("round-1", "Estimate the login story", s.testNow)
	s.Require().NoError(err)
	s.round = round
}

func TestStatisticsTestSuite(t *testing.T) {
	suite.Run(t, new(StatisticsTestSuite))
}

// submit casts a vote with a strictly increasing submission time so the
// first-vote fallback is deterministic
func (s *StatisticsTestSuite) submit(participantID, raw string) {
	value, err := NewVoteValue(raw, s.scale)
	s.Require().NoError(err)

	at := s.testNow.Add(time.Duration(len(s.round.Votes)) * time.Second)
	s.Require().NoError(s.round.Submit(participantID, value, at))
}

func (s *StatisticsTestSuite) TestTwoDifferentVotes() {
	s.submit("voter-1", "5")
	s.submit("voter-2", "8")
	s.Require().NoError(s.round.Reveal())

	stats := s.round.Statistics()

	s.Equal(2, stats.TotalVotes)
	s.InDelta(6.5, stats.Average, 0.0001)
	s.InDelta(6.5, stats.Median, 0.0001)
	s.Equal("5", stats.Min)
	s.Equal("8", stats.Max)
	s.False(stats.Consensus)
	s.ElementsMatch([]string{"5", "8"}, stats.Mode)
	s.Equal(map[string]int{"5": 1, "8": 1}, stats.Distribution)
}

func (s *StatisticsTestSuite) TestConsensus() {
	s.submit("voter-1", "5")
	s.submit("voter-2", "5")
	s.Require().NoError(s.round.Reveal())

	stats := s.round.Statistics()

	s.True(stats.Consensus)
	s.InDelta(5.0, stats.Average, 0.0001)
	s.Equal([]string{"5"}, stats.Mode)
}

func (s *StatisticsTestSuite) TestZeroVotesIsTrivialConsensus() {
	stats := s.round.Statistics()

	s.Equal(0, stats.TotalVotes)
	s.True(stats.Consensus)
	s.Zero(stats.Average)
	s.Zero(stats.Median)
	s.Empty(stats.Min)
	s.Empty(stats.Max)
	s.Empty(stats.Mode)
}

func (s *StatisticsTestSuite) TestSentinelsExcludedFromNumericStats() {
	s.submit("voter-1", "3")
	s.submit("voter-2", VoteAbstain)
	s.submit("voter-3", "5")
	s.Require().NoError(s.round.Reveal())

	stats := s.round.Statistics()

	s.Equal(3, stats.TotalVotes)
	s.InDelta(4.0, stats.Average, 0.0001)
	s.InDelta(4.0, stats.Median, 0.0001)
	s.Equal("3", stats.Min)
	s.Equal("5", stats.Max)
	// Sentinels still count in the distribution
	s.Equal(1, stats.Distribution[VoteAbstain])
	s.False(stats.Consensus)
}

func (s *StatisticsTestSuite) TestMedianOddCount() {
	s.submit("voter-1", "1")
	s.submit("voter-2", "8")
	s.submit("voter-3", "2")
	s.Require().NoError(s.round.Reveal())

	stats := s.round.Statistics()
	s.InDelta(2.0, stats.Median, 0.0001)
}

func (s *StatisticsTestSuite) TestMinMaxFallbackWithoutNumericVotes() {
	// T-shirt labels do not parse as numbers, so min/max fall back to
	// the earliest submitted label
	s.scale = TShirtScale()

	s.submit("voter-1", "M")
	s.submit("voter-2", "XL")
	s.Require().NoError(s.round.Reveal())

	stats := s.round.Statistics()

	s.Equal(2, stats.TotalVotes)
	s.Zero(stats.Average)
	s.Equal("M", stats.Min)
	s.Equal("M", stats.Max)
	s.False(stats.Consensus)
}

func (s *StatisticsTestSuite) TestMinMaxFallbackBreaksTimestampTies() {
	// Two votes in the same instant: the lower participant ID wins the
	// fallback, independent of map iteration order
	s.scale = TShirtScale()

	valueXL, err := NewVoteValue("XL", s.scale)
	s.Require().NoError(err)
	valueM, err := NewVoteValue("M", s.scale)
	s.Require().NoError(err)

	s.Require().NoError(s.round.Submit("voter-2", valueXL, s.testNow))
	s.Require().NoError(s.round.Submit("voter-1", valueM, s.testNow))
	s.Require().NoError(s.round.Reveal())

	for i := 0; i < 20; i++ {
		stats := s.round.Statistics()
		s.Equal("M", stats.Min)
		s.Equal("M", stats.Max)
	}
}

func (s *StatisticsTestSuite) TestModeTies() {
	s.submit("voter-1", "5")
	s.submit("voter-2", "5")
	s.submit("voter-3", "8")
	s.submit("voter-4", "8")
	s.submit("voter-5", "13")
	s.Require().NoError(s.round.Reveal())

	stats := s.round.Statistics()
	s.Equal([]string{"5", "8"}, stats.Mode)
}
