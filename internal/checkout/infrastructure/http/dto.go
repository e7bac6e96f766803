package http

import (
	"time"

	"github.com/Lexv0lk/merch-checkout/internal/checkout/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type checkoutRequestBody struct {
	PaymentMethod  string           `json:"paymentMethod" binding:"required"`
	ShippingMethod string           `json:"shippingMethod" binding:"required"`
	Address        string           `json:"address" binding:"required"`
	City           string           `json:"city" binding:"required"`
	Country        string           `json:"country" binding:"required"`
	Financed       *bool            `json:"financed" binding:"required"`
	Share          int              `json:"share" binding:"required"`
	InitialPayment *decimal.Decimal `json:"initialPayment" binding:"required"`
}

func (b checkoutRequestBody) toDomain() domain.CreatePurchaseRequest {
	return domain.CreatePurchaseRequest{
		PaymentMethod:  domain.PaymentMethod(b.PaymentMethod),
		ShippingMethod: domain.ShippingMethod(b.ShippingMethod),
		Address:        b.Address,
		City:           b.City,
		Country:        b.Country,
		Financed:       *b.Financed,
		Share:          b.Share,
		InitialPayment: *b.InitialPayment,
	}
}

type sharePaymentRequestBody struct {
	ShareIndex int              `json:"shareIndex" binding:"required"`
	Amount     *decimal.Decimal `json:"amount" binding:"required"`
}

type lineItemResponse struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Tax       decimal.Decimal `json:"tax"`
}

type customerResponse struct {
	UserID int    `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
}

type shippingResponse struct {
	Method  string          `json:"shippingMethod"`
	Address string          `json:"address"`
	City    string          `json:"city"`
	Country string          `json:"country"`
	Cost    decimal.Decimal `json:"cost"`
}

type paymentResponse struct {
	Method       string          `json:"paymentMethod"`
	Paid         bool            `json:"paid"`
	Financed     bool            `json:"financed"`
	Shares       int             `json:"shares"`
	CurrentShare int             `json:"currentShare"`
	Total        decimal.Decimal `json:"total"`
	Debt         decimal.Decimal `json:"debt"`
	PaidAt       time.Time       `json:"paidAt"`
}

type purchaseResponse struct {
	ID        uuid.UUID          `json:"id"`
	Items     []lineItemResponse `json:"items,omitempty"`
	Customer  customerResponse   `json:"customer"`
	Shipping  shippingResponse   `json:"shipping"`
	Payment   paymentResponse    `json:"payment"`
	Active    bool               `json:"active"`
	CreatedAt time.Time          `json:"createdAt"`
}

type pageMetaResponse struct {
	CurrentPage  int `json:"currentPage"`
	ItemCount    int `json:"itemCount"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
}

type purchasePageResponse struct {
	Data []purchaseResponse `json:"data"`
	Meta pageMetaResponse   `json:"meta"`
}

type installmentPlanResponse struct {
	Shares         int             `json:"shares"`
	CurrentShare   int             `json:"currentShare"`
	Debt           decimal.Decimal `json:"debt"`
	ShareAmount    decimal.Decimal `json:"shareAmount"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
}

func newPurchaseResponse(p domain.Purchase) purchaseResponse {
	items := make([]lineItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, lineItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Category:  item.Category,
			Price:     item.Price,
			Tax:       item.Tax,
		})
	}

	return purchaseResponse{
		ID:    p.ID,
		Items: items,
		Customer: customerResponse{
			UserID: p.Customer.UserID,
			Name:   p.Customer.Name,
			Email:  p.Customer.Email,
			Phone:  p.Customer.Phone,
		},
		Shipping: shippingResponse{
			Method:  string(p.Shipping.Method),
			Address: p.Shipping.Address,
			City:    p.Shipping.City,
			Country: p.Shipping.Country,
			Cost:    p.Shipping.Cost,
		},
		Payment: paymentResponse{
			Method:       string(p.Payment.Method),
			Paid:         p.Payment.Paid,
			Financed:     p.Payment.Financed,
			Shares:       p.Payment.Shares,
			CurrentShare: p.Payment.CurrentShare,
			Total:        p.Payment.Total,
			Debt:         p.Payment.Debt,
			PaidAt:       p.Payment.PaidAt,
		},
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	}
}

func newPurchasePageResponse(page domain.PurchasePage) purchasePageResponse {
	data := make([]purchaseResponse, 0, len(page.Data))
	for _, purchase := range page.Data {
		data = append(data, newPurchaseResponse(purchase))
	}

	return purchasePageResponse{
		Data: data,
		Meta: pageMetaResponse{
			CurrentPage:  page.Meta.CurrentPage,
			ItemCount:    page.Meta.ItemCount,
			ItemsPerPage: page.Meta.ItemsPerPage,
			TotalItems:   page.Meta.TotalItems,
			TotalPages:   page.Meta.TotalPages,
		},
	}
}
