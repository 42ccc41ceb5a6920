package notification

import (
	"context"

	"github.com/rs/zerolog"
)

// Pusher delivers events to live connections
type Pusher interface {
	PushToUser(userID int64, v any) int
}

// EventPublisher publishes JSON events on the message bus
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type Service struct {
	repo   *NotificationRepository
	pusher Pusher
	events EventPublisher
	log    zerolog.Logger
}

// NewService wires the sink. pusher and events may be nil.
func NewService(repo *NotificationRepository, pusher Pusher, events EventPublisher, log zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		pusher: pusher,
		events: events,
		log:    log.With().Str("component", "notification").Logger(),
	}
}

// Notify stores a notification and fans it out. Failures are logged, never returned.
func (s *Service) Notify(ctx context.Context, userID int64, message string) {
	n := &Notification{UserID: userID, Message: message}
	if err := s.repo.Create(ctx, n); err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("notification not stored")
		return
	}

	if s.pusher != nil {
		delivered := s.pusher.PushToUser(userID, NewNotificationEvent(n))
		s.log.Debug().Int64("user_id", userID).Int("connections", delivered).Msg("notification pushed")
	}

	if s.events != nil {
		ev := CreatedEvent{ID: n.ID, UserID: n.UserID, Message: n.Message, CreatedAt: n.CreatedAt}
		if err := s.events.PublishJSON(ctx, RoutingKeyCreated, ev); err != nil {
			s.log.Warn().Err(err).Int64("notification_id", n.ID).Msg("notification event not published")
		}
	}
}

// List returns the newest notifications of a user and the unread count.
func (s *Service) List(ctx context.Context, userID int64, limit, offset int) ([]Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	if err := s.repo.MarkAsRead(ctx, notificationID, userID); err != nil {
		return err
	}
	s.pushUnread(ctx, userID)
	return nil
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) (int64, error) {
	n, err := s.repo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.pushUnread(ctx, userID)
	return n, nil
}

// pushUnread keeps badges of other open tabs in sync.
func (s *Service) pushUnread(ctx context.Context, userID int64) {
	if s.pusher == nil {
		return
	}
	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		s.log.Debug().Err(err).Msg("unread count for push failed")
		return
	}
	s.pusher.PushToUser(userID, NewUnreadCountEvent(unread))
}
