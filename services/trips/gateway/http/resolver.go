package http

import (
	"context"
	"fmt"
	"net/url"

	httpclient "github.com/angkutin/angkutin/internal/pkg/http"
	"github.com/angkutin/angkutin/internal/pkg/models"
)

// ResolverGateway calls the external address resolution service
type ResolverGateway struct {
	client *httpclient.APIKeyClient
}

// NewResolverGateway creates an address resolver client
func NewResolverGateway(cfg *models.Config) *ResolverGateway {
	return &ResolverGateway{
		client: httpclient.NewAPIKeyClient(
			cfg.Services.ResolverAPIKey,
			"trips-service",
			cfg.Services.ResolverURL,
		),
	}
}

// ResolveAddress resolves free-form address text to a coordinate
func (g *ResolverGateway) ResolveAddress(ctx context.Context, text string) (*models.ResolveResult, error) {
	if text == "" {
		return nil, fmt.Errorf("address text is empty")
	}

	endpoint := "/v1/resolve?text=" + url.QueryEscape(text)
	var result models.ResolveResult
	if err := g.client.GetJSON(ctx, endpoint, &result); err != nil {
		return nil, fmt.Errorf("address resolution failed: %w", err)
	}
	return &result, nil
}
