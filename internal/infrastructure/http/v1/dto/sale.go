package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"salesdesk/internal/domain/sales"
)

// dateLayouts are the accepted textual forms for saleDate values.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a textual date in any accepted layout.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// Date is a time.Time that accepts both RFC3339 timestamps and bare
// "2006-01-02" dates in JSON.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// CreateSaleRequest for creating sales. The shop is never part of the
// body; it comes from the request scope.
type CreateSaleRequest struct {
	Buyer         *string          `json:"buyer"`
	InvoiceNumber string           `json:"invoiceNumber"`
	ProductName   string           `json:"productName"`
	Quantity      int              `json:"quantity"`
	SaleDate      *Date            `json:"saleDate"`
	Amount        *decimal.Decimal `json:"amount"`
}

// ToSale builds a new Sale owned by the given shop.
func (r *CreateSaleRequest) ToSale(shopID string) *sales.Sale {
	s := sales.NewSale(shopID)
	s.BuyerID = r.Buyer
	s.InvoiceNumber = r.InvoiceNumber
	s.ProductName = r.ProductName
	s.Quantity = r.Quantity
	if r.SaleDate != nil {
		s.SaleDate = r.SaleDate.Time
	}
	if r.Amount != nil {
		s.Amount = *r.Amount
	}
	return s
}

// UpdateSaleRequest for partial sale updates. Only non-nil fields are
// applied to the fetched record.
type UpdateSaleRequest struct {
	Buyer         *string          `json:"buyer"`
	InvoiceNumber *string          `json:"invoiceNumber"`
	ProductName   *string          `json:"productName"`
	Quantity      *int             `json:"quantity"`
	SaleDate      *Date            `json:"saleDate"`
	Amount        *decimal.Decimal `json:"amount"`
}

// Apply copies the present fields onto the sale.
func (r *UpdateSaleRequest) Apply(s *sales.Sale) {
	if r.Buyer != nil {
		s.BuyerID = r.Buyer
	}
	if r.InvoiceNumber != nil {
		s.InvoiceNumber = *r.InvoiceNumber
	}
	if r.ProductName != nil {
		s.ProductName = *r.ProductName
	}
	if r.Quantity != nil {
		s.Quantity = *r.Quantity
	}
	if r.SaleDate != nil {
		s.SaleDate = r.SaleDate.Time
	}
	if r.Amount != nil {
		s.Amount = *r.Amount
	}
}

// SaleResponse contains sale fields.
type SaleResponse struct {
	ID            string          `json:"id"`
	Shop          string          `json:"shop"`
	Buyer         *string         `json:"buyer,omitempty"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`
	ProductName   string          `json:"productName,omitempty"`
	Quantity      int             `json:"quantity"`
	SaleDate      time.Time       `json:"saleDate"`
	Amount        decimal.Decimal `json:"amount"`
	Removed       bool            `json:"removed"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// FromSale creates SaleResponse from sales.Sale.
func FromSale(s *sales.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID.String(),
		Shop:          s.ShopID,
		Buyer:         s.BuyerID,
		InvoiceNumber: s.InvoiceNumber,
		ProductName:   s.ProductName,
		Quantity:      s.Quantity,
		SaleDate:      s.SaleDate,
		Amount:        s.Amount,
		Removed:       s.Removed,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// FromSales creates SaleResponse slice from sales.
func FromSales(items []*sales.Sale) []SaleResponse {
	out := make([]SaleResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSale(s))
	}
	return out
}

// SearchSalesRequest carries the raw search query parameters.
type SearchSalesRequest struct {
	BuyerName     string `form:"buyerName"`
	TownName      string `form:"townName"`
	ProductName   string `form:"productName"`
	InvoiceNumber string `form:"invoiceNumber"`
	StartDate     string `form:"startDate"`
	EndDate       string `form:"endDate"`
}

// ToFilter converts the request into a search filter, parsing the date
// bounds when present.
func (r *SearchSalesRequest) ToFilter() (sales.SearchFilter, error) {
	filter := sales.SearchFilter{
		BuyerName:     r.BuyerName,
		TownName:      r.TownName,
		ProductName:   r.ProductName,
		InvoiceNumber: r.InvoiceNumber,
	}

	if r.StartDate != "" {
		t, err := ParseDate(r.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &t
	}
	if r.EndDate != "" {
		t, err := ParseDate(r.EndDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &t
	}

	return filter, nil
}
