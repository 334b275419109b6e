package orderevents

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"logistics/internal/entities"
	"logistics/pkg/logger"
)

// Gateway publishes order.status.changed events. Publishing is best-effort:
// the order update is already committed when an event goes out, so failures
// are logged and counted but never returned to the caller.
type Gateway struct {
	producer producer
	log      gatewayLogger
	topic    string
}

func New(log gatewayLogger, producer producer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		log:      log.With(),
		topic:    topic,
	}
}

func (g *Gateway) PublishStatusChanged(_ context.Context, event entities.OrderStatusEvent) {
	status := event.NewStatus.String()

	payload, err := json.Marshal(event)
	if err != nil {
		EventsPublishedTotal.WithLabelValues(status, "marshal_error").Inc()
		g.log.With(
			logger.NewField("order", event.OrderID),
			logger.NewField("error", err),
		).Error("order.status.changed marshal failed")
		return
	}

	message := &sarama.ProducerMessage{
		Topic: g.topic,
		// Keyed by order so all events of one order land in one partition.
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	start := time.Now()
	partition, offset, err := g.producer.SendMessage(message)
	EventPublishDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
	if err != nil {
		EventsPublishedTotal.WithLabelValues(status, "error").Inc()
		g.log.With(
			logger.NewField("order", event.OrderID),
			logger.NewField("status", status),
			logger.NewField("error", err),
		).Error("order.status.changed publish failed")
		return
	}

	EventsPublishedTotal.WithLabelValues(status, "ok").Inc()
	g.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", status),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("order.status.changed published")
}
