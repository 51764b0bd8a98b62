package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/angkutin/angkutin/internal/pkg/constants"
	"github.com/angkutin/angkutin/internal/pkg/logger"
	"github.com/angkutin/angkutin/internal/pkg/models"
	natspkg "github.com/angkutin/angkutin/internal/pkg/nats"
)

// NATSGateway publishes dispatch events to NATS
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{client: client}
}

// PublishMatchFound publishes a provider assignment event
func (g *NATSGateway) PublishMatchFound(_ context.Context, event models.AssignmentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal assignment event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectMatchFound, data); err != nil {
		return fmt.Errorf("failed to publish match found event: %w", err)
	}

	logger.Debug("Published match found event",
		logger.String("request_id", event.RequestID),
		logger.String("provider_id", event.ProviderID))
	return nil
}

// PublishGroupUpdated publishes a shared-ride group membership event
func (g *NATSGateway) PublishGroupUpdated(_ context.Context, event models.GroupEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal group event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectGroupUpdated, data); err != nil {
		return fmt.Errorf("failed to publish group updated event: %w", err)
	}

	logger.Debug("Published group updated event",
		logger.String("group_id", event.GroupID),
		logger.String("change", event.Change))
	return nil
}
