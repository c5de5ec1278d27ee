package dto

import (
	"fmt"

	"salesdesk/internal/core/id"
	"salesdesk/internal/domain/catalogs/buyer"
)

// CreateBuyerRequest for creating buyers. TownID is resolved against the
// towns catalog before the buyer is persisted.
type CreateBuyerRequest struct {
	Name    string  `json:"name" binding:"required"`
	TownID  *string `json:"townId"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// ToBuyer builds a new Buyer.
func (r *CreateBuyerRequest) ToBuyer() (*buyer.Buyer, error) {
	b := buyer.NewBuyer(r.Name)
	b.Phone = r.Phone
	b.Email = r.Email
	b.Address = r.Address

	if r.TownID != nil && *r.TownID != "" {
		townID, err := id.Parse(*r.TownID)
		if err != nil {
			return nil, fmt.Errorf("invalid townId: %w", err)
		}
		b.TownID = &townID
	}

	return b, nil
}

// UpdateBuyerRequest for updating buyers.
type UpdateBuyerRequest struct {
	Name    *string `json:"name"`
	TownID  *string `json:"townId"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

// Apply copies the present fields onto the buyer. An explicit empty
// townId clears the town reference.
func (r *UpdateBuyerRequest) Apply(b *buyer.Buyer) error {
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.Phone != nil {
		b.Phone = r.Phone
	}
	if r.Email != nil {
		b.Email = r.Email
	}
	if r.Address != nil {
		b.Address = r.Address
	}

	if r.TownID != nil {
		if *r.TownID == "" {
			b.SetTown(nil)
			return nil
		}
		townID, err := id.Parse(*r.TownID)
		if err != nil {
			return fmt.Errorf("invalid townId: %w", err)
		}
		b.TownID = &townID
	}

	return nil
}

// BuyerResponse contains buyer fields with the town populated inline.
type BuyerResponse struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Town    *TownResponse `json:"town,omitempty"`
	Phone   *string       `json:"phone,omitempty"`
	Email   *string       `json:"email,omitempty"`
	Address *string       `json:"address,omitempty"`
}

// FromBuyer creates BuyerResponse from buyer.Buyer.
func FromBuyer(b *buyer.Buyer) BuyerResponse {
	resp := BuyerResponse{
		ID:      b.ID.String(),
		Name:    b.Name,
		Phone:   b.Phone,
		Email:   b.Email,
		Address: b.Address,
	}
	if b.Town != nil {
		t := FromTown(b.Town)
		resp.Town = &t
	}
	return resp
}

// FromBuyers creates BuyerResponse slice from buyers.
func FromBuyers(items []*buyer.Buyer) []BuyerResponse {
	out := make([]BuyerResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBuyer(b))
	}
	return out
}
