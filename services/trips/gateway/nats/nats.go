package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/angkutin/angkutin/internal/pkg/constants"
	"github.com/angkutin/angkutin/internal/pkg/models"
	natspkg "github.com/angkutin/angkutin/internal/pkg/nats"
)

// NATSGateway handles NATS event publication for the trips service
type NATSGateway struct {
	client *natspkg.Client
}

// NewNATSGateway creates a new NATS gateway
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{
		client: client,
	}
}

// PublishLifecycleEvent publishes a status transition
func (g *NATSGateway) PublishLifecycleEvent(_ context.Context, event models.LifecycleEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal lifecycle event: %w", err)
	}
	return g.client.Publish(constants.SubjectTripTransition, data)
}

// PublishTripCompleted publishes a settlement event for a completed trip
func (g *NATSGateway) PublishTripCompleted(_ context.Context, event models.TripSettledEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal settlement event: %w", err)
	}
	return g.client.Publish(constants.SubjectTripCompleted, data)
}

// PublishTripCancelled publishes a settlement event for a cancelled trip
func (g *NATSGateway) PublishTripCancelled(_ context.Context, event models.TripSettledEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal settlement event: %w", err)
	}
	return g.client.Publish(constants.SubjectTripCancelled, data)
}
