package models

import (
	"github.com/google/uuid"
)

// Modifier is one chosen customization on a cart line, e.g. size=large.
// PriceDelta is taken from the caller and never checked against the
// catalog here; authoritative pricing is resolved at checkout.
type Modifier struct {
	GroupID    uuid.UUID `json:"groupId"`
	OptionID   uuid.UUID `json:"optionId"`
	Name       string    `json:"name"`
	PriceDelta float64   `json:"priceDelta"`
}

type CartLine struct {
	ItemKey               string     `json:"itemKey"`
	MenuItemID            uuid.UUID  `json:"menuItemId"`
	Name                  string     `json:"name"`
	Quantity              int        `json:"quantity"`
	UnitPrice             float64    `json:"unitPrice"`
	Modifiers             []Modifier `json:"modifiers"`
	ModifiersTotalPerUnit float64    `json:"modifiersTotalPerUnit"`
	LineTotal             float64    `json:"lineTotal"`
	Notes                 string     `json:"notes,omitempty"`
}

// Cart is the value persisted per (tenant, table). Items keep insertion
// order for display; identity lives in ItemKey. TotalPrice and
// TotalItems are derived, recomputed on every mutation. Version backs
// the compare-and-set write cycle.
type Cart struct {
	Items      []CartLine `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
	TotalItems int        `json:"totalItems"`
	Version    int64      `json:"version"`
}
