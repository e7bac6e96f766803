package application

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/database"
	"github.com/Lexv0lk/merch-checkout/internal/pkg/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutCase struct {
	txManager          database.TxManager
	cartRepository     domain.CartRepository
	userFinder         domain.UserFinder
	reserver           *InventoryReserver
	purchaseRepository domain.PurchaseRepository
	idempotencyStore   domain.IdempotencyStore
	metrics            domain.CheckoutMetrics
	logger             logging.Logger

	rates domain.RateTable
	now   func() time.Time
	newID func() uuid.UUID
}

func NewCheckoutCase(
	txManager database.TxManager,
	cartRepository domain.CartRepository,
	userFinder domain.UserFinder,
	reserver *InventoryReserver,
	purchaseRepository domain.PurchaseRepository,
	idempotencyStore domain.IdempotencyStore,
	metrics domain.CheckoutMetrics,
	logger logging.Logger,
) *CheckoutCase {
	return &CheckoutCase{
		txManager:          txManager,
		cartRepository:     cartRepository,
		userFinder:         userFinder,
		reserver:           reserver,
		purchaseRepository: purchaseRepository,
		idempotencyStore:   idempotencyStore,
		metrics:            metrics,
		logger:             logger,
		rates:              domain.DefaultShippingRates,
		now:                func() time.Time { return time.Now().UTC() },
		newID:              uuid.New,
	}
}

func (cc *CheckoutCase) Checkout(ctx context.Context, userID int, req domain.CreatePurchaseRequest, idempotencyKey string) (uuid.UUID, error) {
	err := req.Validate()
	if err != nil {
		return uuid.Nil, err
	}

	reserved := false
	if idempotencyKey != "" {
		existingID, err := cc.idempotencyStore.Reserve(ctx, userID, idempotencyKey)
		switch {
		case errors.Is(err, &domain.CheckoutInProgressError{}):
			return uuid.Nil, err
		case err != nil:
			cc.logger.Warn("idempotency store unavailable", "user_id", userID, "error", err.Error())
		case existingID != uuid.Nil:
			cc.logger.Info("checkout replayed", "user_id", userID, "purchase_id", existingID.String())
			return existingID, nil
		default:
			reserved = true
		}
	}

	cc.logger.Info("creating purchase", "user_id", userID)

	var (
		purchase domain.Purchase
		skipped  int
	)
	err = cc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		var err error
		purchase, skipped, err = cc.placePurchase(ctx, executor, userID, req)
		return err
	})
	if err != nil {
		cc.metrics.CheckoutFailed()
		cc.logger.Error("failed to create purchase", "user_id", userID, "error", err.Error())

		if reserved {
			releaseErr := cc.idempotencyStore.Release(ctx, userID, idempotencyKey)
			if releaseErr != nil {
				cc.logger.Warn("failed to release idempotency key", "user_id", userID, "error", releaseErr.Error())
			}
		}

		return uuid.Nil, &domain.TransactionAbortedError{Cause: err}
	}

	cc.metrics.CheckoutSucceeded()
	for range skipped {
		cc.metrics.CartLineSkipped()
	}
	cc.logger.Info("purchase created", "user_id", userID, "purchase_id", purchase.ID.String())

	if reserved {
		err = cc.idempotencyStore.Complete(ctx, userID, idempotencyKey, purchase.ID)
		if err != nil {
			cc.logger.Warn("failed to remember idempotency key", "user_id", userID, "error", err.Error())
		}
	}

	return purchase.ID, nil
}

// placePurchase locks the cart rows first, so concurrent checkouts of one cart run one after another.
// Lines are reserved in product id order to keep stock row locks consistently ordered.
func (cc *CheckoutCase) placePurchase(ctx context.Context, executor database.QueryExecuter, userID int, req domain.CreatePurchaseRequest) (domain.Purchase, int, error) {
	cart, err := cc.cartRepository.GetCart(ctx, executor, userID)
	if err != nil {
		return domain.Purchase{}, 0, err
	}

	if len(cart.Lines) == 0 {
		return domain.Purchase{}, 0, &domain.InvalidStateError{Msg: "cart is empty"}
	}

	user, err := cc.userFinder.FindUser(ctx, executor, userID)
	if err != nil {
		return domain.Purchase{}, 0, err
	}

	lines := slices.Clone(cart.Lines)
	slices.SortFunc(lines, func(a, b domain.CartLine) int {
		return cmp.Compare(a.ProductID, b.ProductID)
	})

	skipped := 0
	items := make([]domain.PurchaseLineItem, 0, len(lines))
	for _, line := range lines {
		item, reserved, err := cc.reserver.ReserveLine(ctx, executor, line)
		if err != nil {
			return domain.Purchase{}, 0, err
		}

		if !reserved {
			skipped++
			continue
		}

		items = append(items, item)
	}

	totals := domain.AggregateLineTotals(items)
	shippingCost := cc.rates.ShippingCost(totals.Total, req.ShippingMethod)
	totalPayment := shippingCost.Add(totals.Total)

	debt := decimal.Zero
	if req.Financed {
		if req.InitialPayment.GreaterThan(totalPayment) {
			return domain.Purchase{}, 0, &domain.InvalidArgumentsError{Msg: "initial payment exceeds the total payment"}
		}

		debt = totalPayment.Sub(req.InitialPayment)
	}

	cc.logger.Info("purchase totals",
		"subtotal", totals.Subtotal.StringFixed(2),
		"tax", totals.Tax.StringFixed(2),
		"total", totals.Total.StringFixed(2),
		"shipping", shippingCost.StringFixed(2),
		"total_payment", totalPayment.StringFixed(2),
		"debt", debt.StringFixed(2),
		"items", len(items),
	)

	now := cc.now()
	purchase := domain.Purchase{
		ID:    cc.newID(),
		Items: items,
		Customer: domain.CustomerInfo{
			UserID: user.ID,
			Name:   user.DisplayName(),
			Email:  user.Email,
			Phone:  user.Phone,
		},
		Shipping: domain.ShippingInfo{
			Method:  req.ShippingMethod,
			Address: req.Address,
			City:    req.City,
			Country: req.Country,
			Cost:    shippingCost,
		},
		Payment: domain.PaymentInfo{
			Method:       req.PaymentMethod,
			Paid:         !req.Financed,
			Financed:     req.Financed,
			Shares:       req.Share,
			CurrentShare: 1,
			Total:        totalPayment,
			Debt:         debt,
			PaidAt:       now,
		},
		Active:    true,
		CreatedAt: now,
	}

	err = cc.purchaseRepository.CreatePurchase(ctx, executor, purchase)
	if err != nil {
		return domain.Purchase{}, 0, err
	}

	err = cc.cartRepository.ClearCart(ctx, executor, userID)
	if err != nil {
		return domain.Purchase{}, 0, err
	}

	return purchase, skipped, nil
}
