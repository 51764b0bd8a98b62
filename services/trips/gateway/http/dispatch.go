package http

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	httpclient "github.com/angkutin/angkutin/internal/pkg/http"
	"github.com/angkutin/angkutin/internal/pkg/models"
)

// DispatchGateway calls the dispatch service's internal HTTP API
type DispatchGateway struct {
	client *httpclient.APIKeyClient
}

// NewDispatchGateway creates a dispatch service client authenticating as
// the trips service
func NewDispatchGateway(cfg *models.Config) *DispatchGateway {
	return &DispatchGateway{
		client: httpclient.NewAPIKeyClient(
			cfg.APIKey.TripsService,
			"trips-service",
			cfg.Services.DispatchServiceURL,
		),
	}
}

// dispatchEnvelope unwraps the standard API response
type dispatchEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		Matched bool                   `json:"matched"`
		Match   *models.NearbyProvider `json:"match,omitempty"`
	} `json:"data"`
}

// DispatchRequest asks dispatch to find and bind the best provider. A nil
// match means no eligible provider is currently available.
func (g *DispatchGateway) DispatchRequest(ctx context.Context, req *models.ServiceRequest) (*models.NearbyProvider, error) {
	var envelope dispatchEnvelope
	if err := g.client.PostJSON(ctx, "/internal/dispatch", req, &envelope); err != nil {
		return nil, fmt.Errorf("dispatch call failed: %w", err)
	}
	if !envelope.Data.Matched {
		return nil, nil
	}
	return envelope.Data.Match, nil
}

// AssignProvider binds a provider to a request in the dispatch registry
func (g *DispatchGateway) AssignProvider(ctx context.Context, providerID, requestID string) error {
	endpoint := fmt.Sprintf("/internal/providers/%s/assign", providerID)
	body := map[string]string{"request_id": requestID}
	if err := g.client.PostJSON(ctx, endpoint, body, nil); err != nil {
		return fmt.Errorf("assign call failed: %w", err)
	}
	return nil
}

// ReleaseProvider returns a provider to the online pool
func (g *DispatchGateway) ReleaseProvider(ctx context.Context, providerID string) error {
	endpoint := fmt.Sprintf("/internal/providers/%s/release", providerID)
	if err := g.client.PostJSON(ctx, endpoint, nil, nil); err != nil {
		return fmt.Errorf("release call failed: %w", err)
	}
	return nil
}

// joinGroupEnvelope unwraps the group join response
type joinGroupEnvelope struct {
	Success bool                    `json:"success"`
	Error   string                  `json:"error,omitempty"`
	Data    *models.GroupJoinResult `json:"data"`
}

// JoinGroup runs join-or-create for a shared-ride request
func (g *DispatchGateway) JoinGroup(ctx context.Context, req *models.ServiceRequest, maxDetourPct float64, maxWaitMin int) (*models.GroupJoinResult, error) {
	body := map[string]interface{}{
		"request":        req,
		"max_detour_pct": maxDetourPct,
		"max_wait_min":   maxWaitMin,
	}

	var envelope joinGroupEnvelope
	if err := g.client.PostJSON(ctx, "/internal/groups/join", body, &envelope); err != nil {
		return nil, fmt.Errorf("group join call failed: %w", err)
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("group join returned no result")
	}
	return envelope.Data, nil
}

// LeaveGroup removes a request from its shared-ride group
func (g *DispatchGateway) LeaveGroup(ctx context.Context, groupID, requestID uuid.UUID, passengerCount int) error {
	endpoint := fmt.Sprintf("/internal/groups/%s/leave", groupID)
	body := map[string]interface{}{
		"request_id":      requestID.String(),
		"passenger_count": passengerCount,
	}
	if err := g.client.PostJSON(ctx, endpoint, body, nil); err != nil {
		return fmt.Errorf("group leave call failed: %w", err)
	}
	return nil
}

// UpdateGroupStatus mirrors a member leg's lifecycle status onto its group
func (g *DispatchGateway) UpdateGroupStatus(ctx context.Context, groupID uuid.UUID, status models.RequestStatus) error {
	endpoint := fmt.Sprintf("/internal/groups/%s/status", groupID)
	body := map[string]string{"status": string(status)}
	if err := g.client.PostJSON(ctx, endpoint, body, nil); err != nil {
		return fmt.Errorf("group status call failed: %w", err)
	}
	return nil
}
