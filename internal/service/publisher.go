// Package service holds outbound integrations used by the HTTP handlers.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/register-my-marriage/internal/config"
	"github.com/iliyamo/register-my-marriage/internal/metrics"
	q "github.com/iliyamo/register-my-marriage/internal/queue"
)

// Publisher sends contact inquiry events to RabbitMQ. Errors are logged
// and returned so callers can ignore them without interrupting the request.
type Publisher struct {
	url     string
	enabled bool
	log     logrus.FieldLogger
}

func NewPublisher(cfg config.QueueConfig, log logrus.FieldLogger) *Publisher {
	return &Publisher{url: cfg.URL, enabled: cfg.Enabled, log: log}
}

// PublishContactSubmitted publishes ev to the contact.submitted queue as a
// persistent message. A disabled publisher does nothing.
func (p *Publisher) PublishContactSubmitted(ctx context.Context, ev q.ContactSubmittedEvent) error {
	if !p.enabled {
		return nil
	}
	err := p.publish(ctx, ev)
	result := "ok"
	if err != nil {
		result = "error"
		p.log.WithError(err).WithField("inquiry_id", ev.InquiryID).Warn("rabbitmq: publish contact inquiry failed")
	}
	metrics.Get().ContactPublished.WithLabelValues(result).Inc()
	return err
}

func (p *Publisher) publish(ctx context.Context, ev q.ContactSubmittedEvent) error {
	conn, err := amqp.DialConfig(p.url, amqp.Config{Dial: amqp.DefaultDial(5 * time.Second)})
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		q.ContactQueue, // name
		true,           // durable
		false,          // autoDelete
		false,          // exclusive
		false,          // noWait
		nil,            // args
	); err != nil {
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return ch.PublishWithContext(ctx,
		"",             // default exchange
		q.ContactQueue, // routing key = queue name
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ev.InquiryID,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
