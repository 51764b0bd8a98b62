package nats

import (
	"fmt"

	"github.com/angkutin/angkutin/internal/pkg/logger"
	"github.com/nats-io/nats.go"
)

// MessageHandler is a function that processes NATS messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from a NATS subject, optionally as
// part of a queue group
type Consumer struct {
	client       *Client
	subscription *nats.Subscription
}

// NewConsumer subscribes to a subject on an existing client. When
// queueGroup is non-empty the subscription load-balances across group
// members.
func NewConsumer(client *Client, subject, queueGroup string, handler MessageHandler) (*Consumer, error) {
	wrapped := func(msg *nats.Msg) {
		if err := handler(msg.Data); err != nil {
			logger.Warn("Error processing message",
				logger.String("subject", subject),
				logger.Err(err))
		}
	}

	var (
		subscription *nats.Subscription
		err          error
	)
	if queueGroup != "" {
		subscription, err = client.QueueSubscribe(subject, queueGroup, wrapped)
	} else {
		subscription, err = client.Subscribe(subject, wrapped)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	return &Consumer{
		client:       client,
		subscription: subscription,
	}, nil
}

// Stop unsubscribes the consumer
func (c *Consumer) Stop() error {
	if c.subscription != nil {
		return c.subscription.Unsubscribe()
	}
	return nil
}
