package models

import (
	"encoding/json"
	"time"
)

// OrderStatus is stored as an integer code, pending by default.
type OrderStatus int

const (
	StatusPending OrderStatus = iota
	StatusConfirmed
	StatusShipped
	StatusDelivered
	StatusCancelled
)

// OrderStatuses maps status names to their codes, in lifecycle order.
var OrderStatuses = map[string]OrderStatus{
	"pending":   StatusPending,
	"confirmed": StatusConfirmed,
	"shipped":   StatusShipped,
	"delivered": StatusDelivered,
	"cancelled": StatusCancelled,
}

func (s OrderStatus) String() string {
	for name, code := range OrderStatuses {
		if code == s {
			return name
		}
	}
	return "pending"
}

// ParseOrderStatus maps a status name to its code; ok is false for unknown names.
func ParseOrderStatus(name string) (OrderStatus, bool) {
	code, ok := OrderStatuses[name]
	return code, ok
}

// LineItem is one purchased (parfum, size) pair, denormalized at order time.
// Catalog changes after checkout never alter historical line items.
type LineItem struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	FirstName   string      `gorm:"not null" json:"first_name"`
	LastName    string      `gorm:"not null" json:"last_name"`
	Phone       string      `gorm:"not null" json:"phone"`
	Address     string      `gorm:"type:text;not null" json:"address"`
	City        string      `gorm:"not null" json:"city"`
	PostalCode  string      `gorm:"not null" json:"postal_code"`
	ItemsData   string      `gorm:"type:text;not null" json:"-"`
	Subtotal    float64     `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	DeliveryFee float64     `gorm:"type:decimal(10,2);not null;default:0" json:"delivery_fee"`
	TotalAmount float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status      OrderStatus `gorm:"not null;default:0;index" json:"-"`
	Notes       string      `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time   `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// Items decodes the embedded line items; a corrupted blob yields an empty list.
func (o *Order) Items() []LineItem {
	var items []LineItem
	if err := json.Unmarshal([]byte(o.ItemsData), &items); err != nil {
		return nil
	}
	return items
}

// SetItems encodes the line items into the embedded JSON blob.
func (o *Order) SetItems(items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.ItemsData = string(data)
	return nil
}

func (o *Order) FullName() string {
	return o.FirstName + " " + o.LastName
}

func (o *Order) StatusName() string {
	return o.Status.String()
}
