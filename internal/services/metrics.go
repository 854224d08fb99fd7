package services

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var voteOperationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hivemind_vote_operations_total",
		Help: "Vote operations by operation and outcome",
	},
	[]string{"operation", "outcome"},
)

func init() {
	prometheus.MustRegister(voteOperationsTotal)
}

// voteOutcome maps an operation result onto a metric label.
func voteOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrDuplicateVote):
		return "duplicate"
	case errors.Is(err, ErrVoteNotFound), errors.Is(err, ErrIdeaNotFound):
		return "not_found"
	case errors.Is(err, ErrSelfVote):
		return "self_vote"
	default:
		return "error"
	}
}

func observeVoteOperation(operation string, err error) {
	voteOperationsTotal.WithLabelValues(operation, voteOutcome(err)).Inc()
}
