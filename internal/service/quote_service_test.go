package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/luisitotec2025/transportesManoloBack/internal/model"
	"github.com/luisitotec2025/transportesManoloBack/internal/notify"
	"github.com/luisitotec2025/transportesManoloBack/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock VehicleRepository / Enqueuer
// ---------------------------------------------------------------------------

type mockVehicleRepo struct {
	saveFunc    func(ctx context.Context, v *model.Vehicle) error
	getByIDFunc func(ctx context.Context, id int64) (*model.Vehicle, error)
	listFunc    func(ctx context.Context) ([]*model.Vehicle, error)
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockVehicleRepo) Save(ctx context.Context, v *model.Vehicle) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, v)
	}
	return nil
}

func (m *mockVehicleRepo) GetByID(ctx context.Context, id int64) (*model.Vehicle, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockVehicleRepo) List(ctx context.Context) ([]*model.Vehicle, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockVehicleRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockEnqueuer struct {
	accepted []notify.Notification
	full     bool
}

func (m *mockEnqueuer) Enqueue(n notify.Notification) bool {
	if m.full {
		return false
	}
	m.accepted = append(m.accepted, n)
	return true
}

func testQuote() model.QuoteRequest {
	return model.QuoteRequest{
		VehicleID: 7,
		Name:      "PRUEBA TEST",
		Phone:     "1234567890",
		Date:      "2025-10-17",
	}
}

func testVehicle() *model.Vehicle {
	return &model.Vehicle{
		ID: 7, Brand: "Toyota", Model: "Hiace", Plate: "TEST-123",
		Year: 2023, Type: "Van", Capacity: "12",
	}
}

// ---------------------------------------------------------------------------
// Request tests
// ---------------------------------------------------------------------------

// TestQuoteService_UnknownVehicle_NoDispatch verifies the fail-fast
// invariant: an unknown vehicle id produces ErrNotFound and no dispatch.
func TestQuoteService_UnknownVehicle_NoDispatch(t *testing.T) {
	repo := &mockVehicleRepo{} // GetByID defaults to ErrNotFound
	enq := &mockEnqueuer{}
	svc := NewQuoteService(repo, enq, "http://127.0.0.1:8000")

	err := svc.Request(context.Background(), testQuote())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(enq.accepted) != 0 {
		t.Errorf("expected no dispatch attempt, got %d", len(enq.accepted))
	}
}

func TestQuoteService_Success_EnqueuesComposedNotification(t *testing.T) {
	repo := &mockVehicleRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Vehicle, error) {
			if id != 7 {
				return nil, repository.ErrNotFound
			}
			return testVehicle(), nil
		},
	}
	enq := &mockEnqueuer{}
	svc := NewQuoteService(repo, enq, "http://127.0.0.1:8000")

	if err := svc.Request(context.Background(), testQuote()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(enq.accepted) != 1 {
		t.Fatalf("expected 1 enqueued notification, got %d", len(enq.accepted))
	}
	n := enq.accepted[0]
	if n.VehicleID != 7 {
		t.Errorf("expected vehicle id 7, got %d", n.VehicleID)
	}
	if !strings.Contains(n.HTML, "Toyota") || !strings.Contains(n.HTML, "TEST-123") {
		t.Error("notification missing denormalized vehicle fields")
	}
}

// TestQuoteService_FullQueue_StillSucceeds verifies a dropped notification
// does not fail the request: delivery is best-effort.
func TestQuoteService_FullQueue_StillSucceeds(t *testing.T) {
	repo := &mockVehicleRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Vehicle, error) {
			return testVehicle(), nil
		},
	}
	enq := &mockEnqueuer{full: true}
	svc := NewQuoteService(repo, enq, "")

	if err := svc.Request(context.Background(), testQuote()); err != nil {
		t.Fatalf("expected success despite full queue, got %v", err)
	}
}

func TestQuoteService_InvalidInput_ValidationError(t *testing.T) {
	repo := &mockVehicleRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Vehicle, error) {
			return testVehicle(), nil
		},
	}
	enq := &mockEnqueuer{}
	svc := NewQuoteService(repo, enq, "")

	q := testQuote()
	q.Phone = ""
	err := svc.Request(context.Background(), q)

	var ve *notify.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "phone" {
		t.Errorf("expected phone named, got %q", ve.Field)
	}
	if len(enq.accepted) != 0 {
		t.Error("expected no dispatch for invalid input")
	}
}

// TestQuoteService_RepositoryError_Propagates verifies store failures abort
// the request before any side effect.
func TestQuoteService_RepositoryError_Propagates(t *testing.T) {
	repo := &mockVehicleRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Vehicle, error) {
			return nil, errors.New("connection refused")
		},
	}
	enq := &mockEnqueuer{}
	svc := NewQuoteService(repo, enq, "")

	if err := svc.Request(context.Background(), testQuote()); err == nil {
		t.Fatal("expected error from repository")
	}
	if len(enq.accepted) != 0 {
		t.Error("expected no dispatch on repository failure")
	}
}
