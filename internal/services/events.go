package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/hivemind/internal/logger"
	"github.com/sbilibin2017/hivemind/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock_test.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// publishVoteEvent publishes a committed vote operation to Kafka.
// Failures are logged and never undo the committed vote.
func (s *VoteService) publishVoteEvent(
	ctx context.Context,
	operation string,
	username string,
	direction models.Direction,
	idea *models.IdeaDB,
) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "operation", operation, "ideaID", idea.ID)
		return
	}

	event := models.VoteEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: operation,
		Username:  username,
		IdeaID:    idea.ID,
		Direction: direction,
		UpVotes:   idea.UpVotes,
		DownVotes: idea.DownVotes,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal vote event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	// keyed by idea so events of one idea stay ordered within a partition
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(idea.ID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish vote event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Vote event published to Kafka", "event_id", event.EventID, "operation", operation, "ideaID", idea.ID)
	}
}
