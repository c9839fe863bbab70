package services

import (
	"context"
	"testing"

	"vitrine/models"
)

func seedOrders(repo *fakeOrderRepo) {
	statuses := []models.OrderStatus{
		models.StatusPending,
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusShipped,
	}
	for _, s := range statuses {
		repo.Create(context.Background(), &models.Order{
			FirstName:   "A",
			LastName:    "B",
			Phone:       "1",
			Address:     "x",
			City:        "y",
			PostalCode:  "z",
			ItemsData:   "[]",
			TotalAmount: 10,
			Status:      s,
		})
	}
}

func TestUpdateStatusRejectsUnknownName(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrders(repo)
	svc := NewOrderService(repo)

	svcErr := svc.UpdateStatus(context.Background(), 1, "archived")
	if svcErr == nil || svcErr.StatusCode != 400 {
		t.Fatalf("expected 400, got %+v", svcErr)
	}
	if repo.updateCalled != 0 {
		t.Fatalf("repository must not be touched for unknown status names")
	}
	if repo.orders[1].Status != models.StatusPending {
		t.Fatalf("order status must be unchanged")
	}
}

func TestUpdateStatusMovesOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrders(repo)
	svc := NewOrderService(repo)

	if svcErr := svc.UpdateStatus(context.Background(), 1, "shipped"); svcErr != nil {
		t.Fatalf("UpdateStatus returned error: %v", svcErr)
	}
	if repo.orders[1].Status != models.StatusShipped {
		t.Fatalf("expected shipped, got %v", repo.orders[1].Status)
	}

	// badge counts follow the move
	listing, svcErr := svc.List(context.Background(), "all", 1)
	if svcErr != nil {
		t.Fatalf("List returned error: %v", svcErr)
	}
	if listing.Counts.Pending != 1 {
		t.Fatalf("expected 1 pending after move, got %d", listing.Counts.Pending)
	}
	if listing.Counts.Shipped != 2 {
		t.Fatalf("expected 2 shipped after move, got %d", listing.Counts.Shipped)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)

	svcErr := svc.UpdateStatus(context.Background(), 42, "confirmed")
	if svcErr == nil || svcErr.StatusCode != 404 {
		t.Fatalf("expected 404, got %+v", svcErr)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrders(repo)
	svc := NewOrderService(repo)

	listing, svcErr := svc.List(context.Background(), "pending", 1)
	if svcErr != nil {
		t.Fatalf("List returned error: %v", svcErr)
	}

	if repo.lastFilter == nil || *repo.lastFilter != models.StatusPending {
		t.Fatalf("expected pending filter to reach the repository")
	}
	if listing.Page.TotalCount != 2 {
		t.Fatalf("expected 2 pending orders, got %d", listing.Page.TotalCount)
	}
	if listing.Page.PageSize != OrdersPerPage {
		t.Fatalf("expected fixed page size %d, got %d", OrdersPerPage, listing.Page.PageSize)
	}
	if listing.Counts.Total != 4 {
		t.Fatalf("badge counts must cover all orders, got %d", listing.Counts.Total)
	}
}

func TestListAllAndPageDefaults(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrders(repo)
	svc := NewOrderService(repo)

	if _, svcErr := svc.List(context.Background(), "all", 0); svcErr != nil {
		t.Fatalf("List returned error: %v", svcErr)
	}
	if repo.lastFilter != nil {
		t.Fatalf("status 'all' must not filter")
	}
	if repo.lastPage != 1 {
		t.Fatalf("page must clamp to 1, got %d", repo.lastPage)
	}
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())

	_, svcErr := svc.List(context.Background(), "bogus", 1)
	if svcErr == nil || svcErr.StatusCode != 400 {
		t.Fatalf("expected 400, got %+v", svcErr)
	}
}

func TestDeleteOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrders(repo)
	svc := NewOrderService(repo)

	if svcErr := svc.Delete(context.Background(), 2); svcErr != nil {
		t.Fatalf("Delete returned error: %v", svcErr)
	}
	if _, ok := repo.orders[2]; ok {
		t.Fatalf("order must be gone")
	}

	svcErr := svc.Delete(context.Background(), 2)
	if svcErr == nil || svcErr.StatusCode != 404 {
		t.Fatalf("expected 404 on second delete, got %+v", svcErr)
	}
}

func TestPageTotalPages(t *testing.T) {
	p := Page{PageSize: 25, TotalCount: 51}
	if got := p.TotalPages(); got != 3 {
		t.Fatalf("expected 3 pages, got %d", got)
	}
	p = Page{PageSize: 25, TotalCount: 0}
	if got := p.TotalPages(); got != 0 {
		t.Fatalf("expected 0 pages, got %d", got)
	}
}
