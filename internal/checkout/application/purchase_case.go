package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxPageSize = 100

type PurchaseCase struct {
	purchaseRepository domain.PurchaseRepository
	logger             logging.Logger

	now func() time.Time
}

func NewPurchaseCase(purchaseRepository domain.PurchaseRepository, logger logging.Logger) *PurchaseCase {
	return &PurchaseCase{
		purchaseRepository: purchaseRepository,
		logger:             logger,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

func (pc *PurchaseCase) ListActivePurchases(ctx context.Context, page, size int) (domain.PurchasePage, error) {
	if page < 0 {
		return domain.PurchasePage{}, &domain.InvalidArgumentsError{Msg: "page must not be negative"}
	}

	if size < 1 || size > MaxPageSize {
		return domain.PurchasePage{}, &domain.InvalidArgumentsError{Msg: fmt.Sprintf("size must be between 1 and %d", MaxPageSize)}
	}

	return pc.purchaseRepository.ListActive(ctx, page, size)
}

func (pc *PurchaseCase) GetPurchase(ctx context.Context, id uuid.UUID) (domain.Purchase, error) {
	return pc.purchaseRepository.GetActive(ctx, id)
}

func (pc *PurchaseCase) PaySharePayment(ctx context.Context, id uuid.UUID, shareIndex int, amount decimal.Decimal) (domain.Purchase, error) {
	if shareIndex < 1 {
		return domain.Purchase{}, &domain.InvalidArgumentsError{Msg: "share index starts at 1"}
	}

	if !amount.IsPositive() {
		return domain.Purchase{}, &domain.InvalidArgumentsError{Msg: "share payment amount must be positive"}
	}

	purchase, err := pc.purchaseRepository.ApplySharePayment(ctx, id, domain.SharePayment{
		ShareIndex: shareIndex,
		Amount:     amount,
		PaidAt:     pc.now(),
	})
	if err != nil {
		return domain.Purchase{}, err
	}

	pc.logger.Info("share paid", "purchase_id", id.String(), "share", shareIndex, "debt", purchase.Payment.Debt.StringFixed(2))

	return purchase, nil
}

func (pc *PurchaseCase) DeactivatePurchase(ctx context.Context, id uuid.UUID) (bool, error) {
	err := pc.purchaseRepository.SoftDelete(ctx, id)
	if err != nil {
		return false, err
	}

	pc.logger.Info("purchase deactivated", "purchase_id", id.String())

	return true, nil
}

// InvoiceExists only checks the purchase; no document is rendered.
func (pc *PurchaseCase) InvoiceExists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := pc.purchaseRepository.Exists(ctx, id)
	if err != nil {
		return false, err
	}

	if !exists {
		return false, &domain.PurchaseNotFoundError{Msg: fmt.Sprintf("purchase %s not found", id)}
	}

	return true, nil
}

func (pc *PurchaseCase) InstallmentPlan(ctx context.Context, id uuid.UUID) (domain.InstallmentPlan, error) {
	purchase, err := pc.purchaseRepository.GetActive(ctx, id)
	if err != nil {
		return domain.InstallmentPlan{}, err
	}

	payment := purchase.Payment
	if !payment.Financed {
		return domain.InstallmentPlan{}, &domain.InvalidStateError{Msg: fmt.Sprintf("purchase %s is not financed", id)}
	}

	plan := domain.InstallmentPlan{
		Shares:         payment.Shares,
		CurrentShare:   payment.CurrentShare,
		Debt:           payment.Debt,
		ShareAmount:    decimal.Zero,
		MonthlyPayment: decimal.Zero,
	}

	if payment.Debt.IsZero() {
		return plan, nil
	}

	plan.ShareAmount, err = domain.ShareAmount(payment.Debt, payment.Shares)
	if err != nil {
		return domain.InstallmentPlan{}, err
	}

	plan.MonthlyPayment, err = domain.MonthlyPayment(payment.Debt, payment.Shares)
	if err != nil {
		return domain.InstallmentPlan{}, err
	}

	return plan, nil
}
