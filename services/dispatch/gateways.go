package dispatch

import (
	"context"

	"github.com/angkutin/angkutin/internal/pkg/models"
)

// DispatchGW defines the dispatch gateways interface
type DispatchGW interface {
	PublishMatchFound(ctx context.Context, event models.AssignmentEvent) error
	PublishGroupUpdated(ctx context.Context, event models.GroupEvent) error
}
