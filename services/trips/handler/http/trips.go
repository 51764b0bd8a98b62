package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/angkutin/angkutin/internal/pkg/middleware"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/internal/utils"
	"github.com/angkutin/angkutin/services/trips"
)

// TripsHandler handles HTTP requests for trips operations
type TripsHandler struct {
	tripsUC trips.TripsUC
}

// NewTripsHandler creates a new trips HTTP handler
func NewTripsHandler(tripsUC trips.TripsUC) *TripsHandler {
	return &TripsHandler{
		tripsUC: tripsUC,
	}
}

// CreateRequest opens a new service request for the authenticated requester
func (h *TripsHandler) CreateRequest(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid authentication context")
	}

	var input trips.CreateRequestInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	// The requester is always the authenticated caller
	requesterID, err := uuid.Parse(actor.ID)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid requester identity")
	}
	input.RequesterID = requesterID

	req, err := h.tripsUC.CreateRequest(c.Request().Context(), &input)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "request created", req)
}

// GetRequest returns a single service request
func (h *TripsHandler) GetRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Request ID must be a valid UUID")
	}

	req, err := h.tripsUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "request", req)
}

// ListRequests lists the authenticated requester's requests
func (h *TripsHandler) ListRequests(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid authentication context")
	}
	requesterID, err := uuid.Parse(actor.ID)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid requester identity")
	}

	requests, err := h.tripsUC.ListRequestsByRequester(c.Request().Context(), requesterID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "requests", requests)
}

// TransitionRequest is the body for the transition endpoint
type TransitionRequest struct {
	Target string `json:"target"`
}

// Transition applies a lifecycle transition driven by the authenticated actor
func (h *TripsHandler) Transition(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid authentication context")
	}

	requestID, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Request ID must be a valid UUID")
	}

	var body TransitionRequest
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if body.Target == "" {
		return utils.BadRequestResponse(c, "Target status is required")
	}

	req, err := h.tripsUC.ApplyTransition(c.Request().Context(), requestID, models.RequestStatus(body.Target), actor)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "transition applied", req)
}

// Cancel cancels a request on behalf of the authenticated actor
func (h *TripsHandler) Cancel(c echo.Context) error {
	actor, err := middleware.ActorFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid authentication context")
	}

	requestID, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Request ID must be a valid UUID")
	}

	req, err := h.tripsUC.ApplyTransition(c.Request().Context(), requestID, models.StatusCancelled, actor)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "request cancelled", req)
}
