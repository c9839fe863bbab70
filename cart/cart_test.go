package cart

import "testing"

func TestAddMergesDuplicateLines(t *testing.T) {
	c := New()

	if err := c.Add("1", "50ml", 120, "Aventus", ""); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := c.Add("1", "50ml", 120, "Aventus", ""); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", c.Lines[0].Quantity)
	}
}

func TestAddDistinguishesSizes(t *testing.T) {
	c := New()

	c.Add("1", "50ml", 120, "Aventus", "")
	c.Add("1", "100ml", 220, "Aventus", "")

	if len(c.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Lines))
	}
}

func TestAddRejectsInvalidPriceAndSize(t *testing.T) {
	c := New()

	if err := c.Add("1", "50ml", 0, "Aventus", ""); err != ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
	if err := c.Add("1", "50ml", -5, "Aventus", ""); err != ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
	if err := c.Add("1", SizeNone, 120, "Aventus", ""); err != ErrInvalidSize {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if err := c.Add("1", "", 120, "Aventus", ""); err != ErrInvalidSize {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}

	if len(c.Lines) != 0 {
		t.Fatalf("invalid adds must not change the cart, got %d lines", len(c.Lines))
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.Add("1", "50ml", 120, "Aventus", "")
	c.Add("2", "100ml", 90, "Sauvage", "")

	c.SetQuantity("1", "50ml", 0)

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line after removal, got %d", len(c.Lines))
	}
	if c.Lines[0].ParfumID != "2" {
		t.Fatalf("wrong line removed")
	}

	c.SetQuantity("2", "100ml", -3)
	if len(c.Lines) != 0 {
		t.Fatalf("negative quantity must remove the line")
	}
}

func TestSetQuantityUnknownLineIsNoop(t *testing.T) {
	c := New()
	c.Add("1", "50ml", 120, "Aventus", "")

	c.SetQuantity("9", "50ml", 5)

	if c.Lines[0].Quantity != 1 {
		t.Fatalf("unknown line must not affect others")
	}
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add("1", "50ml", 120, "Aventus", "")

	c.Remove("1", "50ml")
	if len(c.Lines) != 0 {
		t.Fatalf("expected empty cart")
	}

	// removing again is a no-op
	c.Remove("1", "50ml")
}

func TestInsertionOrderPreserved(t *testing.T) {
	c := New()
	c.Add("3", "50ml", 10, "c", "")
	c.Add("1", "50ml", 10, "a", "")
	c.Add("2", "50ml", 10, "b", "")
	c.Add("3", "50ml", 10, "c", "") // merge, must not move

	want := []string{"3", "1", "2"}
	for i, id := range want {
		if c.Lines[i].ParfumID != id {
			t.Fatalf("line %d: expected parfum %s, got %s", i, id, c.Lines[i].ParfumID)
		}
	}
}

func TestTotalsBelowThreshold(t *testing.T) {
	c := New()
	c.Add("A", "50ml", 120, "A", "")
	c.SetQuantity("A", "50ml", 2)

	totals := c.Totals()
	if totals.Subtotal != 240 {
		t.Fatalf("expected subtotal 240, got %v", totals.Subtotal)
	}
	if totals.DeliveryFee != 8 {
		t.Fatalf("expected fee 8, got %v", totals.DeliveryFee)
	}
	if totals.Total != 248 {
		t.Fatalf("expected total 248, got %v", totals.Total)
	}
}

func TestTotalsAtThresholdShipFree(t *testing.T) {
	c := New()
	c.Add("B", "100ml", 300, "B", "")

	totals := c.Totals()
	if totals.Subtotal != 300 || totals.DeliveryFee != 0 || totals.Total != 300 {
		t.Fatalf("expected 300/0/300, got %+v", totals)
	}

	// exactly at the threshold
	c2 := New()
	c2.Add("C", "100ml", 250, "C", "")
	if fee := c2.Totals().DeliveryFee; fee != 0 {
		t.Fatalf("expected free shipping at threshold, got fee %v", fee)
	}
}

func TestTotalsInvariant(t *testing.T) {
	carts := []*Cart{New(), New(), New()}
	carts[1].Add("1", "50ml", 49.5, "x", "")
	carts[2].Add("1", "50ml", 200, "x", "")
	carts[2].Add("2", "30ml", 60, "y", "")

	for i, c := range carts {
		totals := c.Totals()
		if totals.Total != totals.Subtotal+totals.DeliveryFee {
			t.Fatalf("cart %d: total %v != subtotal %v + fee %v", i, totals.Total, totals.Subtotal, totals.DeliveryFee)
		}
	}
}

func TestEmptyCartTotalsAreZero(t *testing.T) {
	totals := New().Totals()
	if totals.Subtotal != 0 || totals.DeliveryFee != 0 || totals.Total != 0 {
		t.Fatalf("empty cart must be all zeros, got %+v", totals)
	}

	// emptying a cart resets totals too
	c := New()
	c.Add("1", "50ml", 120, "x", "")
	c.Remove("1", "50ml")
	if got := c.Totals(); got.Total != 0 {
		t.Fatalf("expected zero total after emptying, got %+v", got)
	}
}

func TestCount(t *testing.T) {
	c := New()
	c.Add("1", "50ml", 120, "x", "")
	c.Add("2", "30ml", 60, "y", "")
	c.SetQuantity("2", "30ml", 3)

	if n := c.Count(); n != 4 {
		t.Fatalf("expected count 4, got %d", n)
	}
}

func TestBusPublishSubscribe(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(Event{Token: "t", Count: 2})

	select {
	case ev := <-ch:
		if ev.Token != "t" || ev.Count != 2 {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatalf("expected a buffered event")
	}

	cancel()
	// publishing after cancel must not panic or block
	bus.Publish(Event{Token: "t"})
}
