package workflow

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/george-bobby/prepify-interview-sub001/internal/cache"
	"github.com/george-bobby/prepify-interview-sub001/internal/models"
	"github.com/george-bobby/prepify-interview-sub001/internal/repositories"
)

// InterviewCompletedEvent is published when CompleteInterview commits.
type InterviewCompletedEvent struct {
	InterviewID string `json:"interviewId"`
	UserID      string `json:"userId"`
	FeedbackID  string `json:"feedbackId"`
	TotalScore  int    `json:"totalScore"`
}

// NotificationSubscriber turns completion events into feed notifications.
type NotificationSubscriber struct {
	cache         *cache.Cache
	notifications *repositories.NotificationRepository
	logger        *zap.Logger
}

func NewNotificationSubscriber(c *cache.Cache, notifications *repositories.NotificationRepository, logger *zap.Logger) *NotificationSubscriber {
	return &NotificationSubscriber{
		cache:         c,
		notifications: notifications,
		logger:        logger,
	}
}

// Run blocks consuming completion events until the context is cancelled.
func (s *NotificationSubscriber) Run(ctx context.Context) {
	subscriber := s.cache.Subscribe(ctx, cache.InterviewCompletedChannel)
	defer subscriber.Close()
	ch := subscriber.Channel()

	s.logger.Info("notification subscriber started",
		zap.String("channel", cache.InterviewCompletedChannel))

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			s.handleEvent(msg.Payload)
		}
	}
}

func (s *NotificationSubscriber) handleEvent(payload string) {
	var event InterviewCompletedEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		s.logger.Error("malformed completion event", zap.Error(err))
		return
	}

	notification := &models.Notification{
		UserID:   event.UserID,
		Type:     "feedback_ready",
		Message:  fmt.Sprintf("Your interview feedback is ready: you scored %d/100.", event.TotalScore),
		EntityID: event.InterviewID,
	}
	if err := s.notifications.Create(notification); err != nil {
		s.logger.Error("failed to create feedback notification",
			zap.String("interview_id", event.InterviewID), zap.Error(err))
		return
	}

	s.logger.Info("feedback notification created",
		zap.String("interview_id", event.InterviewID),
		zap.String("user_id", event.UserID))
}
