package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/register-my-marriage/internal/metrics"
)

// InquiryStore persists consumed inquiries.
type InquiryStore interface {
	SaveInquiry(ctx context.Context, ev ContactSubmittedEvent) error
}

var errInvalidEvent = errors.New("queue: invalid contact event")

// StartContactConsumer connects to RabbitMQ, declares the contact.submitted
// queue (durable) and stores every message through store. It reconnects
// with exponential backoff and returns only when ctx is cancelled. A message
// that cannot be stored is rejected without requeue so one bad payload does
// not spin the worker.
func StartContactConsumer(ctx context.Context, url string, store InquiryStore, log logrus.FieldLogger) error {
	backoff := time.Second
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		conn, err := amqp.Dial(url)
		if err != nil {
			log.WithError(err).WithField("retry_in", backoff).Warn("contact-consumer: failed to dial broker")
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = consumeLoop(ctx, conn, store, log)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.WithError(err).Warn("contact-consumer: consume loop ended, reconnecting")
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, store InquiryStore, log logrus.FieldLogger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.WithError(err).Warn("contact-consumer: set QoS failed")
	}
	if _, err := ch.QueueDeclare(ContactQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(ContactQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}
	log.WithField("queue", ContactQueue).Info("contact-consumer: consuming")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := handleMessage(ctx, d.Body, store); err != nil {
				log.WithError(err).Error("contact-consumer: handle message failed")
				metrics.Get().InquiriesStored.WithLabelValues("rejected").Inc()
				_ = d.Nack(false, false)
				continue
			}
			metrics.Get().InquiriesStored.WithLabelValues("stored").Inc()
			_ = d.Ack(false)
		}
	}
}

func handleMessage(ctx context.Context, body []byte, store InquiryStore) error {
	var ev ContactSubmittedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if strings.TrimSpace(ev.InquiryID) == "" || strings.TrimSpace(ev.Email) == "" {
		return errInvalidEvent
	}
	if err := store.SaveInquiry(ctx, ev); err != nil {
		return fmt.Errorf("store inquiry %s: %w", ev.InquiryID, err)
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
