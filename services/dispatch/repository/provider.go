package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/constants"
	"github.com/angkutin/angkutin/internal/pkg/database"
	"github.com/angkutin/angkutin/internal/pkg/geo"
	"github.com/angkutin/angkutin/internal/pkg/logger"
	"github.com/angkutin/angkutin/internal/pkg/models"
)

// DispatchRepo implements the dispatch repository interface. Providers live
// in Redis keyed by provider ID, with a sorted set ordering them by
// registration sequence; shared-ride groups live in Postgres.
type DispatchRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDispatchRepository creates a new dispatch repository
func NewDispatchRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *DispatchRepo {
	return &DispatchRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// UpsertProvider stores or refreshes a provider in the registry. First-time
// providers are assigned a monotonic registration sequence number which
// fixes their position in the dispatch scan order.
func (r *DispatchRepo) UpsertProvider(ctx context.Context, provider *models.Provider) error {
	infoKey := fmt.Sprintf(constants.KeyProviderInfo, provider.ID)

	existing, err := r.redisClient.HGetAll(ctx, infoKey)
	if err != nil {
		return fmt.Errorf("failed to read provider info: %w", err)
	}

	seq := provider.RegisteredSeq
	if seqStr, ok := existing[constants.FieldSeq]; ok && seqStr != "" {
		if parsed, parseErr := strconv.ParseInt(seqStr, 10, 64); parseErr == nil {
			seq = parsed
		}
	} else {
		seq, err = r.redisClient.Incr(ctx, constants.KeyProviderSeq)
		if err != nil {
			return fmt.Errorf("failed to allocate registration sequence: %w", err)
		}
		if err := r.redisClient.ZAdd(ctx, constants.KeyProviderIndex, float64(seq), provider.ID); err != nil {
			return fmt.Errorf("failed to index provider: %w", err)
		}
	}
	provider.RegisteredSeq = seq

	fields := map[string]interface{}{
		constants.FieldAvailability: string(provider.Availability),
		constants.FieldApproval:     string(provider.Approval),
		constants.FieldServiceTypes: strings.Join(provider.ServiceTypes, ","),
		constants.FieldActiveReq:    provider.ActiveRequestID,
		constants.FieldSeq:          seq,
		constants.FieldTimestamp:    provider.UpdatedAt.Unix(),
	}
	if provider.Location != nil {
		// The locality bucket groups providers by geohash cell for
		// registry diagnostics and locality-scoped queries
		provider.Location.Locality = geo.EncodeLocation(*provider.Location, r.cfg.Dispatch.GeohashPrecision)
		fields[constants.FieldLatitude] = provider.Location.Latitude
		fields[constants.FieldLongitude] = provider.Location.Longitude
		fields[constants.FieldLocality] = provider.Location.Locality
	}

	if err := r.redisClient.HSet(ctx, infoKey, fields); err != nil {
		return fmt.Errorf("failed to store provider info: %w", err)
	}

	// Maintain per-service-type eligibility sets; drop membership for
	// service types the provider no longer serves
	oldTypes := strings.Split(existing[constants.FieldServiceTypes], ",")
	for _, st := range oldTypes {
		if st == "" || containsString(provider.ServiceTypes, st) {
			continue
		}
		if err := r.redisClient.SRem(ctx, fmt.Sprintf(constants.KeyProviderEligible, st), provider.ID); err != nil {
			logger.Warn("Failed to remove provider from eligibility set",
				logger.String("provider_id", provider.ID),
				logger.String("service_type", st),
				logger.Err(err))
		}
		// Geo indexes are sorted sets underneath, ZRem drops the entry
		if err := r.redisClient.ZRem(ctx, fmt.Sprintf(constants.KeyProviderGeo, st), provider.ID); err != nil {
			logger.Warn("Failed to remove provider from geo index",
				logger.String("provider_id", provider.ID),
				logger.String("service_type", st),
				logger.Err(err))
		}
	}
	for _, st := range provider.ServiceTypes {
		if err := r.redisClient.SAdd(ctx, fmt.Sprintf(constants.KeyProviderEligible, st), provider.ID); err != nil {
			return fmt.Errorf("failed to add provider to eligibility set: %w", err)
		}
		if provider.Location != nil {
			if err := r.redisClient.GeoAdd(ctx, fmt.Sprintf(constants.KeyProviderGeo, st),
				provider.Location.Longitude, provider.Location.Latitude, provider.ID); err != nil {
				return fmt.Errorf("failed to index provider location: %w", err)
			}
		}
	}

	return nil
}

// GetProvider fetches a provider from the registry
func (r *DispatchRepo) GetProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	infoKey := fmt.Sprintf(constants.KeyProviderInfo, providerID)

	fields, err := r.redisClient.HGetAll(ctx, infoKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider info: %w", err)
	}
	if len(fields) == 0 {
		return nil, apperrors.NotFound(fmt.Sprintf("provider %s", providerID))
	}

	return providerFromFields(providerID, fields), nil
}

// ListProviders returns every registered provider in registration order
func (r *DispatchRepo) ListProviders(ctx context.Context) ([]*models.Provider, error) {
	ids, err := r.redisClient.ZRangeAsc(ctx, constants.KeyProviderIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider index: %w", err)
	}

	providers := make([]*models.Provider, 0, len(ids))
	for _, id := range ids {
		provider, err := r.GetProvider(ctx, id)
		if err != nil {
			if apperrors.IsNotFound(err) {
				// Index entry outlived the provider hash; skip it
				continue
			}
			return nil, err
		}
		providers = append(providers, provider)
	}

	return providers, nil
}

// SetAvailability updates only the availability field of a provider
func (r *DispatchRepo) SetAvailability(ctx context.Context, providerID string, availability models.AvailabilityStatus) error {
	if _, err := r.GetProvider(ctx, providerID); err != nil {
		return err
	}

	infoKey := fmt.Sprintf(constants.KeyProviderInfo, providerID)
	return r.redisClient.HSet(ctx, infoKey, map[string]interface{}{
		constants.FieldAvailability: string(availability),
		constants.FieldTimestamp:    time.Now().Unix(),
	})
}

// SetActiveRequest marks the provider as bound to a request and on trip
func (r *DispatchRepo) SetActiveRequest(ctx context.Context, providerID, requestID string) error {
	if _, err := r.GetProvider(ctx, providerID); err != nil {
		return err
	}

	infoKey := fmt.Sprintf(constants.KeyProviderInfo, providerID)
	return r.redisClient.HSet(ctx, infoKey, map[string]interface{}{
		constants.FieldActiveReq:    requestID,
		constants.FieldAvailability: string(models.AvailabilityOnTrip),
		constants.FieldTimestamp:    time.Now().Unix(),
	})
}

// ClearActiveRequest releases the provider's binding and returns it online
func (r *DispatchRepo) ClearActiveRequest(ctx context.Context, providerID string) error {
	if _, err := r.GetProvider(ctx, providerID); err != nil {
		return err
	}

	infoKey := fmt.Sprintf(constants.KeyProviderInfo, providerID)
	return r.redisClient.HSet(ctx, infoKey, map[string]interface{}{
		constants.FieldActiveReq:    "",
		constants.FieldAvailability: string(models.AvailabilityOnline),
		constants.FieldTimestamp:    time.Now().Unix(),
	})
}

// RemoveProvider deletes a provider from the registry and its indexes
func (r *DispatchRepo) RemoveProvider(ctx context.Context, providerID string) error {
	provider, err := r.GetProvider(ctx, providerID)
	if err != nil {
		return err
	}

	for _, st := range provider.ServiceTypes {
		if err := r.redisClient.SRem(ctx, fmt.Sprintf(constants.KeyProviderEligible, st), providerID); err != nil {
			return fmt.Errorf("failed to remove provider from eligibility set: %w", err)
		}
		if err := r.redisClient.ZRem(ctx, fmt.Sprintf(constants.KeyProviderGeo, st), providerID); err != nil {
			return fmt.Errorf("failed to remove provider from geo index: %w", err)
		}
	}
	if err := r.redisClient.ZRem(ctx, constants.KeyProviderIndex, providerID); err != nil {
		return fmt.Errorf("failed to remove provider from index: %w", err)
	}
	return r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyProviderInfo, providerID))
}

func providerFromFields(providerID string, fields map[string]string) *models.Provider {
	provider := &models.Provider{
		ID:              providerID,
		Availability:    models.AvailabilityStatus(fields[constants.FieldAvailability]),
		Approval:        models.ApprovalStatus(fields[constants.FieldApproval]),
		ActiveRequestID: fields[constants.FieldActiveReq],
	}

	if types := fields[constants.FieldServiceTypes]; types != "" {
		provider.ServiceTypes = strings.Split(types, ",")
	}
	if seq, err := strconv.ParseInt(fields[constants.FieldSeq], 10, 64); err == nil {
		provider.RegisteredSeq = seq
	}
	if ts, err := strconv.ParseInt(fields[constants.FieldTimestamp], 10, 64); err == nil {
		provider.UpdatedAt = time.Unix(ts, 0)
	}

	latStr, hasLat := fields[constants.FieldLatitude]
	lngStr, hasLng := fields[constants.FieldLongitude]
	if hasLat && hasLng {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr == nil && lngErr == nil {
			provider.Location = &models.Coordinate{
				Latitude:  lat,
				Longitude: lng,
				Locality:  fields[constants.FieldLocality],
			}
		}
	}

	return provider
}

func containsString(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}
	return false
}
