package http

import (
	nethttp "net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/angkutin/angkutin/internal/pkg/apperrors"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/internal/utils"
	"github.com/angkutin/angkutin/services/dispatch"
)

// DispatchHandler handles HTTP requests for dispatch operations
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
	}
}

// DispatchResponse is returned by the dispatch endpoint. Matched is false
// when no provider could be bound; the caller queues the request unassigned.
type DispatchResponse struct {
	Matched bool                   `json:"matched"`
	Match   *models.NearbyProvider `json:"match,omitempty"`
}

// DispatchRequest finds and binds the best provider for a service request
func (h *DispatchHandler) DispatchRequest(c echo.Context) error {
	var req models.ServiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.ID == uuid.Nil {
		return utils.BadRequestResponse(c, "Request ID is required")
	}
	if req.ServiceType == "" {
		return utils.BadRequestResponse(c, "Service type is required")
	}

	match, err := h.dispatchUC.DispatchRequest(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "dispatch completed", DispatchResponse{
		Matched: match != nil,
		Match:   match,
	})
}

// FindNearbyProviders lists dispatchable candidates around a pickup point
func (h *DispatchHandler) FindNearbyProviders(c echo.Context) error {
	serviceType := c.QueryParam("service_type")
	if serviceType == "" {
		return utils.BadRequestResponse(c, "service_type is required")
	}

	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "latitude is required and must be a number")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "longitude is required and must be a number")
	}

	pickup := models.Coordinate{Latitude: lat, Longitude: lng}
	candidates, err := h.dispatchUC.FindNearbyProviders(c.Request().Context(), pickup, serviceType)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "nearby providers", candidates)
}

// GetProvider returns a provider's registry entry
func (h *DispatchHandler) GetProvider(c echo.Context) error {
	providerID := c.Param("providerID")
	if providerID == "" {
		return utils.BadRequestResponse(c, "Provider ID is required")
	}

	provider, err := h.dispatchUC.GetProvider(c.Request().Context(), providerID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "provider", provider)
}

// AssignRequest is the body for the provider assignment endpoint
type AssignRequest struct {
	RequestID string `json:"request_id"`
}

// AssignProvider binds a provider to a request
func (h *DispatchHandler) AssignProvider(c echo.Context) error {
	providerID := c.Param("providerID")
	if providerID == "" {
		return utils.BadRequestResponse(c, "Provider ID is required")
	}

	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.RequestID == "" {
		return utils.BadRequestResponse(c, "Request ID is required")
	}

	if err := h.dispatchUC.AssignProvider(c.Request().Context(), providerID, req.RequestID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "provider assigned", nil)
}

// ReleaseProvider returns a provider to the online pool
func (h *DispatchHandler) ReleaseProvider(c echo.Context) error {
	providerID := c.Param("providerID")
	if providerID == "" {
		return utils.BadRequestResponse(c, "Provider ID is required")
	}

	if err := h.dispatchUC.ReleaseProvider(c.Request().Context(), providerID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "provider released", nil)
}

// JoinGroup runs join-or-create for a shared-ride request
func (h *DispatchHandler) JoinGroup(c echo.Context) error {
	var body struct {
		Request      models.ServiceRequest `json:"request"`
		MaxDetourPct float64               `json:"max_detour_pct"`
		MaxWaitMin   int                   `json:"max_wait_min"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if body.Request.ID == uuid.Nil {
		return utils.BadRequestResponse(c, "Request ID is required")
	}

	result, err := h.dispatchUC.JoinOrCreateGroup(c.Request().Context(), &body.Request, body.MaxDetourPct, body.MaxWaitMin)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "group join completed", result)
}

// LeaveGroupRequest is the body for the group leave endpoint
type LeaveGroupRequest struct {
	RequestID      string `json:"request_id"`
	PassengerCount int    `json:"passenger_count"`
}

// LeaveGroup removes a request from its shared-ride group
func (h *DispatchHandler) LeaveGroup(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("groupID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Group ID must be a valid UUID")
	}

	var req LeaveGroupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	requestID, err := uuid.Parse(req.RequestID)
	if err != nil {
		return utils.BadRequestResponse(c, "Request ID must be a valid UUID")
	}
	if req.PassengerCount < 1 {
		return utils.BadRequestResponse(c, "Passenger count must be at least 1")
	}

	group, err := h.dispatchUC.LeaveGroup(c.Request().Context(), groupID, requestID, req.PassengerCount)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if group == nil {
		return utils.SuccessResponse(c, nethttp.StatusOK, "group deleted", nil)
	}
	return utils.SuccessResponse(c, nethttp.StatusOK, "left group", group)
}

// UpdateGroupStatus mirrors a member leg's lifecycle status onto its group
func (h *DispatchHandler) UpdateGroupStatus(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("groupID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Group ID must be a valid UUID")
	}

	var body struct {
		Status models.RequestStatus `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if body.Status == "" {
		return utils.BadRequestResponse(c, "Status is required")
	}

	if err := h.dispatchUC.UpdateGroupStatus(c.Request().Context(), groupID, body.Status); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "group status updated", nil)
}

// PostBeacon ingests a provider availability beacon over HTTP. The same
// payload also arrives via NATS; this endpoint exists for providers behind
// restrictive networks.
func (h *DispatchHandler) PostBeacon(c echo.Context) error {
	var event models.BeaconEvent
	if err := c.Bind(&event); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if event.ProviderID == "" {
		return utils.BadRequestResponse(c, "Provider ID is required")
	}
	switch event.Availability {
	case models.AvailabilityOnline, models.AvailabilityOffline, models.AvailabilityOnTrip, models.AvailabilityBreak:
	default:
		return utils.BadRequestResponse(c, "Unknown availability status")
	}

	if err := h.dispatchUC.HandleBeaconEvent(c.Request().Context(), event); err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			return utils.ErrorResponseHandler(c, appErr.HTTPStatus(), appErr.Message)
		}
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, nethttp.StatusAccepted, "beacon accepted", nil)
}
