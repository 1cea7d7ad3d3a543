package service

import (
	"context"
	"encoding/json"
	"time"

	"hospital-registry/internal/infrastructure/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis channels notices and change events are published on
const (
	NoticeChannel = "registry:notices"
	ChangeChannel = "registry:changes"
)

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a non-fatal, user-facing message such as a degraded list read or a
// partially rejected batch.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Entity  string      `json:"entity"`
	Message string      `json:"message"`
	Time    time.Time   `json:"time"`
}

type ChangeAction string

const (
	ActionCreate ChangeAction = "create"
	ActionUpdate ChangeAction = "update"
	ActionDelete ChangeAction = "delete"
)

// ChangeEvent describes a committed mutation of one record
type ChangeEvent struct {
	Entity   string       `json:"entity"`
	Action   ChangeAction `json:"action"`
	RecordID int          `json:"record_id"`
	OldValue interface{}  `json:"old_value,omitempty"`
	NewValue interface{}  `json:"new_value,omitempty"`
	Time     time.Time    `json:"time"`
}

type NoticeService interface {
	Notify(ctx context.Context, level NoticeLevel, entityName, message string)
	LogCreate(ctx context.Context, entityName string, recordID int, newValue interface{})
	LogUpdate(ctx context.Context, entityName string, recordID int, oldValue, newValue interface{})
	LogDelete(ctx context.Context, entityName string, recordID int, oldValue interface{})
}

type noticeService struct {
	log     *logrus.Logger
	redis   *redis.Client
	metrics *metrics.StoreMetrics
	now     func() time.Time
}

// NewNoticeService returns a publisher that always logs and, when redisClient is not
// nil, also publishes JSON payloads on NoticeChannel and ChangeChannel.
func NewNoticeService(log *logrus.Logger, redisClient *redis.Client, m *metrics.StoreMetrics) NoticeService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &noticeService{
		log:     log,
		redis:   redisClient,
		metrics: m,
		now:     time.Now,
	}
}

// Notify logs a notice at the matching level and publishes it
func (s *noticeService) Notify(ctx context.Context, level NoticeLevel, entityName, message string) {
	notice := Notice{Level: level, Entity: entityName, Message: message, Time: s.now().UTC()}

	entry := s.log.WithFields(logrus.Fields{"entity": entityName, "notice": string(level)})
	switch level {
	case NoticeError:
		entry.Error(message)
	case NoticeWarning:
		entry.Warn(message)
	default:
		entry.Info(message)
	}

	s.metrics.ObserveNotice(string(level))
	s.publish(ctx, NoticeChannel, notice)
}

// LogCreate publishes a create event
func (s *noticeService) LogCreate(ctx context.Context, entityName string, recordID int, newValue interface{}) {
	s.change(ctx, ChangeEvent{Entity: entityName, Action: ActionCreate, RecordID: recordID, NewValue: newValue})
}

// LogUpdate publishes an update event with old and new values
func (s *noticeService) LogUpdate(ctx context.Context, entityName string, recordID int, oldValue, newValue interface{}) {
	s.change(ctx, ChangeEvent{Entity: entityName, Action: ActionUpdate, RecordID: recordID, OldValue: oldValue, NewValue: newValue})
}

// LogDelete publishes a delete event with the old value
func (s *noticeService) LogDelete(ctx context.Context, entityName string, recordID int, oldValue interface{}) {
	s.change(ctx, ChangeEvent{Entity: entityName, Action: ActionDelete, RecordID: recordID, OldValue: oldValue})
}

func (s *noticeService) change(ctx context.Context, event ChangeEvent) {
	event.Time = s.now().UTC()
	s.log.WithFields(logrus.Fields{
		"entity":    event.Entity,
		"action":    string(event.Action),
		"record_id": event.RecordID,
	}).Info("Record changed")
	s.publish(ctx, ChangeChannel, event)
}

func (s *noticeService) publish(ctx context.Context, channel string, payload interface{}) {
	if s.redis == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.log.Warnf("Failed to encode %s payload: %+v", channel, err)
		return
	}
	if err := s.redis.Publish(ctx, channel, data).Err(); err != nil {
		s.log.Warnf("Failed to publish to %s: %+v", channel, err)
	}
}
