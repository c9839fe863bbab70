package cart

import "errors"

// SizeNone is the sentinel used by product pages when no valid variant is
// selected; lines carrying it are never added to a cart.
const SizeNone = "N/A"

// Delivery pricing: orders at or above the threshold ship free, everything
// else pays the flat fee.
const (
	FreeShippingThreshold = 250
	FlatDeliveryFee       = 8
)

var (
	ErrInvalidPrice = errors.New("unit price must be greater than 0")
	ErrInvalidSize  = errors.New("a valid size must be selected")
)

// Line is one (parfum, size) selection with a quantity.
type Line struct {
	ParfumID  string  `json:"id"`
	Name      string  `json:"name"`
	Size      string  `json:"size"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

// Totals is the priced summary of a cart.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
}

// Cart is an ordered list of lines keyed by (parfum id, size). Insertion
// order is preserved across mutations.
type Cart struct {
	Lines []Line `json:"lines"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Lines: []Line{}}
}

func (c *Cart) find(parfumID, size string) int {
	for i, l := range c.Lines {
		if l.ParfumID == parfumID && l.Size == size {
			return i
		}
	}
	return -1
}

// Add appends a new line with quantity 1, or increments the quantity of an
// existing (parfumID, size) line. Lines with a non-positive price or the
// size sentinel are rejected and the cart is left unchanged.
func (c *Cart) Add(parfumID, size string, unitPrice float64, name, imageURL string) error {
	if unitPrice <= 0 {
		return ErrInvalidPrice
	}
	if size == "" || size == SizeNone {
		return ErrInvalidSize
	}

	if i := c.find(parfumID, size); i >= 0 {
		c.Lines[i].Quantity++
		return nil
	}

	c.Lines = append(c.Lines, Line{
		ParfumID:  parfumID,
		Name:      name,
		Size:      size,
		UnitPrice: unitPrice,
		Quantity:  1,
		ImageURL:  imageURL,
	})
	return nil
}

// SetQuantity replaces the quantity of the matching line. Quantities of zero
// or below remove the line. Unknown lines are a no-op.
func (c *Cart) SetQuantity(parfumID, size string, quantity int) {
	i := c.find(parfumID, size)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		return
	}
	c.Lines[i].Quantity = quantity
}

// Remove deletes the matching line; no-op when absent.
func (c *Cart) Remove(parfumID, size string) {
	if i := c.find(parfumID, size); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Totals computes the subtotal, delivery fee and grand total. An empty cart
// is all zeros; the delivery fee never applies to nothing.
func (c *Cart) Totals() Totals {
	if len(c.Lines) == 0 {
		return Totals{}
	}
	var subtotal float64
	for _, l := range c.Lines {
		subtotal += l.UnitPrice * float64(l.Quantity)
	}
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFeeFor(subtotal),
		Total:       subtotal + DeliveryFeeFor(subtotal),
	}
}

// DeliveryFeeFor returns the fee owed on a non-empty order subtotal.
func DeliveryFeeFor(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatDeliveryFee
}
