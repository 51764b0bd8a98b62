package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/angkutin/angkutin/internal/utils"
	"github.com/angkutin/angkutin/services/billing"
)

// BillingHandler handles HTTP requests for billing operations
type BillingHandler struct {
	billingUC billing.BillingUC
}

// NewBillingHandler creates a new billing HTTP handler
func NewBillingHandler(billingUC billing.BillingUC) *BillingHandler {
	return &BillingHandler{
		billingUC: billingUC,
	}
}

// GetPayment returns the payment settled for a request
func (h *BillingHandler) GetPayment(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Request ID must be a valid UUID")
	}

	payment, err := h.billingUC.GetPaymentByRequest(c.Request().Context(), requestID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "payment", payment)
}

// QuoteFare prices a hypothetical trip
func (h *BillingHandler) QuoteFare(c echo.Context) error {
	var input billing.QuoteInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if input.ServiceType == "" {
		return utils.BadRequestResponse(c, "Service type is required")
	}

	breakdown, err := h.billingUC.QuoteFare(c.Request().Context(), &input)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "fare quote", breakdown)
}
