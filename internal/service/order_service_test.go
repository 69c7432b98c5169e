package service

import (
	"context"
	"testing"
	"time"

	"commerce-admin/internal/domain"
	"commerce-admin/internal/listview"
	"commerce-admin/internal/repository"
)

type fakeOrderRepo struct {
	orders []domain.Order
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	return f.orders, nil
}

func (f *fakeOrderRepo) Replace(ctx context.Context, orders []domain.Order) error {
	f.orders = orders
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			order := f.orders[i]
			return &order, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (f *fakeOrderRepo) Add(ctx context.Context, order domain.Order) error {
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, order domain.Order) error {
	for i := range f.orders {
		if f.orders[i].ID == order.ID {
			f.orders[i] = order
			return nil
		}
	}
	return repository.ErrOrderNotFound
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return repository.ErrOrderNotFound
}

func TestUpdateStatus_StampsShippedAt(t *testing.T) {
	repo := &fakeOrderRepo{orders: []domain.Order{
		{ID: "order-1", Status: domain.OrderStatusProcessing},
	}}
	svc := NewOrderService(repo)

	order, err := svc.UpdateStatus(context.Background(), "order-1", domain.OrderStatusShipped)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if order.Status != domain.OrderStatusShipped {
		t.Errorf("status = %s, want shipped", order.Status)
	}
	if order.ShippedAt == nil {
		t.Error("expected shippedAt to be stamped")
	}
	if order.DeliveredAt != nil {
		t.Error("deliveredAt must stay nil on shipped")
	}
}

func TestUpdateStatus_DeliveredStampsBothTimestamps(t *testing.T) {
	repo := &fakeOrderRepo{orders: []domain.Order{
		{ID: "order-1", Status: domain.OrderStatusPending},
	}}
	svc := NewOrderService(repo)

	order, err := svc.UpdateStatus(context.Background(), "order-1", domain.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if order.ShippedAt == nil || order.DeliveredAt == nil {
		t.Error("delivered orders must carry both timestamps")
	}
}

func TestUpdateStatus_PreservesExistingShippedAt(t *testing.T) {
	shipped := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeOrderRepo{orders: []domain.Order{
		{ID: "order-1", Status: domain.OrderStatusShipped, ShippedAt: &shipped},
	}}
	svc := NewOrderService(repo)

	order, err := svc.UpdateStatus(context.Background(), "order-1", domain.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if !order.ShippedAt.Equal(shipped) {
		t.Errorf("shippedAt was overwritten: %v", order.ShippedAt)
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := &fakeOrderRepo{orders: []domain.Order{{ID: "order-1"}}}
	svc := NewOrderService(repo)

	if _, err := svc.UpdateStatus(context.Background(), "order-1", "teleported"); err != ErrInvalidOrderStatus {
		t.Errorf("got %v, want ErrInvalidOrderStatus", err)
	}
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{})

	if _, err := svc.UpdateStatus(context.Background(), "order-404", domain.OrderStatusShipped); err != repository.ErrOrderNotFound {
		t.Errorf("got %v, want ErrOrderNotFound", err)
	}
}

func TestOrderCreate_DefaultsToPending(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo)

	order, err := svc.Create(context.Background(), domain.Order{
		Customer: domain.CustomerSummary{ID: "customer-1", Name: "Jane Doe"},
		Total:    120.50,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if order.ID == "" {
		t.Error("created order has no id")
	}
	if order.Status != domain.OrderStatusPending {
		t.Errorf("status = %s, want pending", order.Status)
	}
	if order.CreatedAt.IsZero() || order.UpdatedAt.IsZero() {
		t.Error("timestamps were not stamped")
	}
	if len(repo.orders) != 1 {
		t.Error("order was not persisted")
	}
}

func TestOrderCreate_RejectsUnknownStatus(t *testing.T) {
	svc := NewOrderService(&fakeOrderRepo{})

	if _, err := svc.Create(context.Background(), domain.Order{Status: "teleported"}); err != ErrInvalidOrderStatus {
		t.Errorf("got %v, want ErrInvalidOrderStatus", err)
	}
}

func TestOrderUpdate_PreservesLifecycleTimestamps(t *testing.T) {
	created := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	shipped := time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC)
	repo := &fakeOrderRepo{orders: []domain.Order{
		{ID: "order-1", Status: domain.OrderStatusShipped, CreatedAt: created, ShippedAt: &shipped, Total: 50},
	}}
	svc := NewOrderService(repo)

	updated, err := svc.Update(context.Background(), domain.Order{ID: "order-1", Total: 75})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Total != 75 {
		t.Errorf("total = %v, want 75", updated.Total)
	}
	if updated.Status != domain.OrderStatusShipped {
		t.Errorf("empty status should keep the stored one, got %s", updated.Status)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Errorf("createdAt = %v, want preserved", updated.CreatedAt)
	}
	if updated.ShippedAt == nil || !updated.ShippedAt.Equal(shipped) {
		t.Error("shippedAt was not preserved")
	}
}

func TestOrderDelete(t *testing.T) {
	repo := &fakeOrderRepo{orders: []domain.Order{{ID: "order-1"}}}
	svc := NewOrderService(repo)

	if err := svc.Delete(context.Background(), "order-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "order-1"); err != repository.ErrOrderNotFound {
		t.Errorf("second delete: got %v, want ErrOrderNotFound", err)
	}
}

func TestOrderList_FiltersAndPaginates(t *testing.T) {
	var orders []domain.Order
	for i := 0; i < 25; i++ {
		status := domain.OrderStatusPending
		if i%2 == 0 {
			status = domain.OrderStatusDelivered
		}
		orders = append(orders, domain.Order{ID: seqTestID(i), Status: status})
	}
	svc := NewOrderService(&fakeOrderRepo{orders: orders})

	page, err := svc.List(context.Background(), listview.OrderQuery{Status: domain.OrderStatusDelivered}, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.TotalItems != 13 {
		t.Errorf("totalItems = %d, want 13", page.TotalItems)
	}
	if page.TotalPages != 2 || page.Page != 2 {
		t.Errorf("pagination = page %d of %d", page.Page, page.TotalPages)
	}
	if len(page.Items) != 3 {
		t.Errorf("page 2 has %d items, want 3", len(page.Items))
	}
}

func seqTestID(i int) string {
	return "order-" + string(rune('a'+i%26)) + string(rune('0'+i/26))
}
