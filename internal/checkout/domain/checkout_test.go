package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreatePurchaseRequest {
	return CreatePurchaseRequest{
		PaymentMethod:  PaymentCreditCard,
		ShippingMethod: ShippingStandard,
		Address:        "Calle 10 #4-21",
		City:           "Bogota",
		Country:        "Colombia",
		Financed:       false,
		Share:          1,
		InitialPayment: decimal.Zero,
	}
}

func TestCreatePurchaseRequest_Validate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		mutateFn    func(r *CreatePurchaseRequest)
		expectedErr error
	}

	tests := []testCase{
		{
			name:     "valid request",
			mutateFn: func(r *CreatePurchaseRequest) {},
		},
		{
			name: "financed with allowed share",
			mutateFn: func(r *CreatePurchaseRequest) {
				r.Financed = true
				r.Share = 36
				r.InitialPayment = decimal.NewFromInt(50)
			},
		},
		{
			name:        "unknown payment method",
			mutateFn:    func(r *CreatePurchaseRequest) { r.PaymentMethod = "barter" },
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "unknown shipping method",
			mutateFn:    func(r *CreatePurchaseRequest) { r.ShippingMethod = "teleport" },
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "short city",
			mutateFn:    func(r *CreatePurchaseRequest) { r.City = "Ba" },
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "empty address",
			mutateFn:    func(r *CreatePurchaseRequest) { r.Address = "" },
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "share in range but not offered",
			mutateFn:    func(r *CreatePurchaseRequest) { r.Share = 5 },
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "share above range",
			mutateFn:    func(r *CreatePurchaseRequest) { r.Share = 48 },
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "negative initial payment",
			mutateFn:    func(r *CreatePurchaseRequest) { r.InitialPayment = decimal.NewFromInt(-1) },
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "initial payment above limit",
			mutateFn:    func(r *CreatePurchaseRequest) { r.InitialPayment = MaxInitialPayment.Add(decimal.NewFromInt(1)) },
			expectedErr: &InvalidArgumentsError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validRequest()
			tt.mutateFn(&req)

			err := req.Validate()

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseStockPolicy(t *testing.T) {
	t.Parallel()

	policy, err := ParseStockPolicy("")
	require.NoError(t, err)
	assert.Equal(t, StockPolicySkip, policy)

	policy, err = ParseStockPolicy("reject")
	require.NoError(t, err)
	assert.Equal(t, StockPolicyReject, policy)

	_, err = ParseStockPolicy("partial")
	assert.ErrorIs(t, err, &InvalidArgumentsError{})
}

func TestUserProfile_DisplayName(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		profile  UserProfile
		expected string
	}

	tests := []testCase{
		{
			name:     "all parts",
			profile:  UserProfile{FirstName: "juan", SecondName: "carlos", LastName: "PEREZ", FamilyName: "gómez"},
			expected: "Juan Carlos Perez Gómez",
		},
		{
			name:     "missing middle parts",
			profile:  UserProfile{FirstName: "ana", LastName: "ruiz"},
			expected: "Ana Ruiz",
		},
		{
			name:     "empty",
			profile:  UserProfile{},
			expected: "",
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.profile.DisplayName())
		})
	}
}

func TestTransactionAbortedError_KeepsCause(t *testing.T) {
	t.Parallel()

	err := error(&TransactionAbortedError{Cause: &ProductNotFoundError{Msg: "product 7 not found"}})

	assert.ErrorIs(t, err, &TransactionAbortedError{})
	assert.ErrorIs(t, err, &ProductNotFoundError{})
	assert.NotErrorIs(t, err, &InvalidStateError{})

	var notFound *ProductNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "product 7 not found", notFound.Msg)
}

func TestNewPageMeta(t *testing.T) {
	t.Parallel()

	meta := NewPageMeta(1, 10, 5, 15)
	assert.Equal(t, PageMeta{CurrentPage: 1, ItemCount: 5, ItemsPerPage: 10, TotalItems: 15, TotalPages: 2}, meta)

	meta = NewPageMeta(0, 10, 0, 0)
	assert.Equal(t, 0, meta.TotalPages)

	meta = NewPageMeta(0, 7, 7, 21)
	assert.Equal(t, 3, meta.TotalPages)
}
