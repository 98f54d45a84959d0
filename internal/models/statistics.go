package models

import (
	"sort"
	"strconv"
)

// RoundStatistics summarizes the votes of a round. Only meaningful once
// the round has been revealed.
type RoundStatistics struct {
	// TotalVotes is the number of submitted votes
	TotalVotes int `json:"totalVotes"`

	// Average is the mean of the numeric votes, 0 if there are none
	Average float64 `json:"average"`

	// Median is the median of the numeric votes, 0 if there are none
	Median float64 `json:"median"`

	// Min is the label of the lowest numeric vote
	Min string `json:"min"`

	// Max is the label of the highest numeric vote
	Max string `json:"max"`

	// Mode lists every label tied for the highest frequency
	Mode []string `json:"mode"`

	// Distribution counts how often each label was voted, sentinels included
	Distribution map[string]int `json:"distribution"`

	// Consensus is true when all votes carry the same label, trivially
	// true with no votes at all
	Consensus bool `json:"consensus"`
}

// Statistics computes the round's vote summary on demand.
//
// Numeric statistics cover only parseable, non-sentinel labels. When no
// numeric votes exist, Min and Max fall back to the label of the
// earliest submitted vote; callers should not read them as numeric
// bounds in that case.
func (r *VotingRound) Statistics() *RoundStatistics {
	stats := &RoundStatistics{
		TotalVotes:   len(r.Votes),
		Mode:         []string{},
		Distribution: make(map[string]int),
	}

	votes := r.votesBySubmission()

	type numericVote struct {
		label string
		n     float64
	}
	var numeric []numericVote

	for _, vote := range votes {
		label := vote.Value.Raw
		stats.Distribution[label]++

		if vote.Value.IsSentinel() {
			continue
		}
		if n, err := strconv.ParseFloat(label, 64); err == nil {
			numeric = append(numeric, numericVote{label: label, n: n})
		}
	}

	if len(numeric) > 0 {
		sort.Slice(numeric, func(i, j int) bool { return numeric[i].n < numeric[j].n })

		var sum float64
		for _, v := range numeric {
			sum += v.n
		}
		stats.Average = sum / float64(len(numeric))

		mid := len(numeric) / 2
		if len(numeric)%2 == 0 {
			stats.Median = (numeric[mid-1].n + numeric[mid].n) / 2
		} else {
			stats.Median = numeric[mid].n
		}

		stats.Min = numeric[0].label
		stats.Max = numeric[len(numeric)-1].label
	} else if len(votes) > 0 {
		// No numeric votes: fall back to the first vote's label
		first := votes[0].Value.Raw
		stats.Min = first
		stats.Max = first
	}

	maxCount := 0
	for _, count := range stats.Distribution {
		if count > maxCount {
			maxCount = count
		}
	}
	for label, count := range stats.Distribution {
		if count == maxCount {
			stats.Mode = append(stats.Mode, label)
		}
	}
	sort.Strings(stats.Mode)

	stats.Consensus = len(stats.Distribution) <= 1

	return stats
}

// votesBySubmission returns the round's votes ordered by submission time
func (r *VotingRound) votesBySubmission() []*Vote {
	votes := make([]*Vote, 0, len(r.Votes))
	for _, vote := range r.Votes {
		votes = append(votes, vote)
	}
	sort.Slice(votes, func(i, j int) bool {
		if votes[i].SubmittedAt.Equal(votes[j].SubmittedAt) {
			return votes[i].ParticipantID < votes[j].ParticipantID
		}
		return votes[i].SubmittedAt.Before(votes[j].SubmittedAt)
	})
	return votes
}
