package notification

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/corevecdb/corevec/pkg/common"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// NotificationProcessor drains the outbox: Trigger is called inline after a
// catalog mutation for low-latency delivery, and a periodic rescan (spec
// §4.6) catches anything Trigger misses (process restart, a dropped
// trigger channel).
type NotificationProcessor interface {
	common.Component
	Process(ctx context.Context) error
	Trigger(ctx context.Context, triggerMsg TriggerMessage)
}

type SimpleNotificationProcessor struct {
	ctx          context.Context
	store        NotificationStore
	notifier     Notifier
	channel      chan TriggerMessage
	doneChannel  chan bool
	running      atomic.Bool
	rescanPeriod time.Duration
}

type TriggerMessage struct {
	Msg        model.Notification
	ResultChan chan error
}

const triggerChannelSize = 1000

// defaultRescanPeriod matches spec §4.6's "e.g., 1s" guidance.
const defaultRescanPeriod = time.Second

var _ NotificationProcessor = &SimpleNotificationProcessor{}

func NewSimpleNotificationProcessor(ctx context.Context, store NotificationStore, notifier Notifier) *SimpleNotificationProcessor {
	return &SimpleNotificationProcessor{
		ctx:          ctx,
		store:        store,
		notifier:     notifier,
		channel:      make(chan TriggerMessage, triggerChannelSize),
		doneChannel:  make(chan bool),
		rescanPeriod: defaultRescanPeriod,
	}
}

func (n *SimpleNotificationProcessor) Start() error {
	log.Info("starting notification processor")
	if err := n.sendPendingNotifications(n.ctx); err != nil {
		log.Error("failed to send pending notifications on startup", zap.Error(err))
		return err
	}
	n.running.Store(true)
	go n.Process(n.ctx)
	return nil
}

func (n *SimpleNotificationProcessor) Stop() error {
	n.running.Store(false)
	n.doneChannel <- true
	return nil
}

func (n *SimpleNotificationProcessor) Process(ctx context.Context) error {
	log.Info("waiting for notifications")
	ticker := time.NewTicker(n.rescanPeriod)
	defer ticker.Stop()
	for {
		select {
		case triggerMsg := <-n.channel:
			n.deliver(ctx, triggerMsg.Msg.CollectionID.String())
			if triggerMsg.ResultChan != nil {
				triggerMsg.ResultChan <- nil
			}
		case <-ticker.C:
			if err := n.sendPendingNotifications(ctx); err != nil {
				log.Error("periodic rescan failed", zap.Error(err))
			}
		case <-n.doneChannel:
			log.Info("stopping notification processor")
			return nil
		}
	}
}

func (n *SimpleNotificationProcessor) Trigger(ctx context.Context, triggerMsg TriggerMessage) {
	if len(n.channel) == triggerChannelSize {
		log.Error("notification channel full, dropping trigger", zap.Any("msg", triggerMsg.Msg))
		if triggerMsg.ResultChan != nil {
			triggerMsg.ResultChan <- nil
		}
		return
	}
	n.channel <- triggerMsg
}

func (n *SimpleNotificationProcessor) deliver(ctx context.Context, collectionID string) {
	for n.running.Load() {
		notifications, err := n.store.GetNotifications(ctx, collectionID)
		if err != nil {
			log.Error("failed to get notifications", zap.Error(err))
			return
		}
		if len(notifications) == 0 {
			return
		}
		if err := n.notifier.Notify(ctx, notifications); err != nil {
			log.Error("failed to deliver notifications", zap.Error(err))
			continue
		}
		if err := n.store.RemoveNotifications(ctx, notifications); err != nil {
			log.Error("failed to remove delivered notifications", zap.Error(err))
		}
		return
	}
}

func (n *SimpleNotificationProcessor) sendPendingNotifications(ctx context.Context) error {
	notificationMap, err := n.store.GetAllPendingNotifications(ctx)
	if err != nil {
		return err
	}
	for collectionID, notifications := range notificationMap {
		if err := n.notifier.Notify(ctx, notifications); err != nil {
			log.Error("failed to send pending notifications", zap.Error(err), zap.String("collectionID", collectionID))
			return err
		}
		if err := n.store.RemoveNotifications(ctx, notifications); err != nil {
			return err
		}
	}
	return nil
}
