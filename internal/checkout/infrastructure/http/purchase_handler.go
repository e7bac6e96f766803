package http

import (
	"net/http"
	"strconv"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	PurchaseIDKey        = "id"
	IdempotencyKeyHeader = "Idempotency-Key"

	defaultPageSize = 10
)

type PurchaseHandler struct {
	checkoutService domain.CheckoutService
	purchaseService domain.PurchaseService
	logger          logging.Logger
}

func NewPurchaseHandler(checkoutService domain.CheckoutService, purchaseService domain.PurchaseService, logger logging.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		checkoutService: checkoutService,
		purchaseService: purchaseService,
		logger:          logger,
	}
}

func (h *PurchaseHandler) Checkout(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "unknown user")
		return
	}

	var body checkoutRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.checkoutService.Checkout(c.Request.Context(), userID, body.toDomain(), c.GetHeader(IdempotencyKeyHeader))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

func (h *PurchaseHandler) ListActive(c *gin.Context) {
	page, err := queryInt(c, "page", 0)
	if err != nil {
		writeError(c, http.StatusBadRequest, "page must be an integer")
		return
	}

	size, err := queryInt(c, "size", defaultPageSize)
	if err != nil {
		writeError(c, http.StatusBadRequest, "size must be an integer")
		return
	}

	result, err := h.purchaseService.ListActivePurchases(c.Request.Context(), page, size)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPurchasePageResponse(result))
}

func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	id, ok := purchaseIDParam(c)
	if !ok {
		return
	}

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPurchaseResponse(purchase))
}

func (h *PurchaseHandler) InstallmentPlan(c *gin.Context) {
	id, ok := purchaseIDParam(c)
	if !ok {
		return
	}

	plan, err := h.purchaseService.InstallmentPlan(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, installmentPlanResponse{
		Shares:         plan.Shares,
		CurrentShare:   plan.CurrentShare,
		Debt:           plan.Debt,
		ShareAmount:    plan.ShareAmount,
		MonthlyPayment: plan.MonthlyPayment,
	})
}

func (h *PurchaseHandler) PayShare(c *gin.Context) {
	id, ok := purchaseIDParam(c)
	if !ok {
		return
	}

	var body sharePaymentRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	purchase, err := h.purchaseService.PaySharePayment(c.Request.Context(), id, body.ShareIndex, *body.Amount)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPurchaseResponse(purchase))
}

func (h *PurchaseHandler) Deactivate(c *gin.Context) {
	id, ok := purchaseIDParam(c)
	if !ok {
		return
	}

	success, err := h.purchaseService.DeactivatePurchase(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": success})
}

func (h *PurchaseHandler) Invoice(c *gin.Context) {
	id, ok := purchaseIDParam(c)
	if !ok {
		return
	}

	exists, err := h.purchaseService.InvoiceExists(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": exists})
}

func purchaseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(PurchaseIDKey))
	if err != nil {
		writeError(c, http.StatusBadRequest, "purchase id must be a uuid")
		return uuid.Nil, false
	}

	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
