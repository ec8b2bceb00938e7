package notification

import (
	"context"
	"encoding/json"

	"github.com/apache/pulsar-client-go/pulsar"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

// Notifier delivers catalog-change notifications to a downstream sink.
type Notifier interface {
	Notify(ctx context.Context, notifications []model.Notification) error
}

type notificationWireMessage struct {
	CollectionID string `json:"collection_id"`
	Type         string `json:"type"`
	Status       string `json:"status"`
}

// PulsarNotifier publishes one message per notification to a Pulsar topic,
// keyed by collection id so per-collection ordering is preserved.
type PulsarNotifier struct {
	producer pulsar.Producer
}

var _ Notifier = &PulsarNotifier{}

func NewPulsarNotifier(producer pulsar.Producer) *PulsarNotifier {
	return &PulsarNotifier{producer: producer}
}

func (p *PulsarNotifier) Notify(ctx context.Context, notifications []model.Notification) error {
	for _, n := range notifications {
		payload, err := json.Marshal(notificationWireMessage{
			CollectionID: n.CollectionID.String(),
			Type:         string(n.Type),
			Status:       string(n.Status),
		})
		if err != nil {
			log.Error("failed to marshal notification", zap.Error(err))
			return err
		}
		// Notifications are sent synchronously, one at a time: the volume is
		// small and this keeps delivery order easy to reason about.
		_, err = p.producer.Send(ctx, &pulsar.ProducerMessage{
			Key:     n.CollectionID.String(),
			Payload: payload,
		})
		if err != nil {
			log.Error("failed to publish notification", zap.Error(err))
			return err
		}
	}
	return nil
}

// MemoryNotifier queues messages in-process; used for tests and single-node
// operation without a Pulsar broker.
type MemoryNotifier struct {
	queue []pulsar.ProducerMessage
}

var _ Notifier = &MemoryNotifier{}

func NewMemoryNotifier() *MemoryNotifier {
	return &MemoryNotifier{queue: make([]pulsar.ProducerMessage, 0)}
}

func (m *MemoryNotifier) Notify(ctx context.Context, notifications []model.Notification) error {
	for _, n := range notifications {
		payload, err := json.Marshal(notificationWireMessage{
			CollectionID: n.CollectionID.String(),
			Type:         string(n.Type),
			Status:       string(n.Status),
		})
		if err != nil {
			return err
		}
		m.queue = append(m.queue, pulsar.ProducerMessage{
			Key:     n.CollectionID.String(),
			Payload: payload,
		})
	}
	return nil
}

// Queue exposes buffered messages for test assertions.
func (m *MemoryNotifier) Queue() []pulsar.ProducerMessage {
	return m.queue
}
