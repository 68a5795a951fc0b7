package repository

import (
	"context"
	"errors"
	"testing"

	"backoffice/internal/app/dbtest"
	"backoffice/internal/app/ds"
	"backoffice/internal/app/role"

	"github.com/google/uuid"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewWithDB(dbtest.Open(t))
}

func strPtr(s string) *string { return &s }

type fixture struct {
	process *ds.Process
	seller  *ds.Seller
	partner *ds.Partner
	client  *ds.Client
	fee     *ds.Fee
}

func newFixture(t *testing.T, r *Repository) fixture {
	t.Helper()
	ctx := context.Background()

	process, err := r.CreateProcess(ctx, "judicial")
	if err != nil {
		t.Fatalf("create process: %v", err)
	}
	seller, err := r.CreateSeller(ctx, "Ana")
	if err != nil {
		t.Fatalf("create seller: %v", err)
	}
	partner, err := r.CreatePartner(ctx, PartnerInput{Name: "Acme", Email: strPtr("acme@example.com")})
	if err != nil {
		t.Fatalf("create partner: %v", err)
	}
	client, err := r.CreateClient(ctx, ClientInput{
		Name:       "John",
		Contact:    "John Doe",
		Phone:      "+100",
		Email:      "john@example.com",
		PartnerPID: &partner.PID,
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	fee, err := r.CreateFee(ctx, "success fee", strPtr("percent"))
	if err != nil {
		t.Fatalf("create fee: %v", err)
	}

	return fixture{process: process, seller: seller, partner: partner, client: client, fee: fee}
}

func TestCreateAssignsPID(t *testing.T) {
	r := newTestRepository(t)

	seller, err := r.CreateSeller(context.Background(), "Bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seller.PID == uuid.Nil {
		t.Fatal("expected pid to be generated")
	}
	if seller.ID == 0 {
		t.Fatal("expected id to be assigned")
	}
}

func TestGetUnknownPIDIsNotFound(t *testing.T) {
	r := newTestRepository(t)

	_, err := r.GetPartner(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateKeepsPID(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	fee, err := r.CreateFee(ctx, "fixed", nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := r.UpdateFee(ctx, fee.PID, "fixed monthly", strPtr("flat"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PID != fee.PID {
		t.Fatalf("pid changed: %s -> %s", fee.PID, updated.PID)
	}
	if updated.Fee != "fixed monthly" || updated.Type == nil || *updated.Type != "flat" {
		t.Fatalf("fields not updated: %+v", updated)
	}

	// nil снимает значение
	cleared, err := r.UpdateFee(ctx, fee.PID, "fixed monthly", nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cleared.Type != nil {
		t.Fatalf("expected type to be cleared, got %q", *cleared.Type)
	}
}

func TestDeleteUnknownPIDIsNotFound(t *testing.T) {
	r := newTestRepository(t)

	err := r.DeleteSeller(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListOrderedByID(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	for _, name := range []string{"c", "a", "b"} {
		if _, err := r.CreateSeller(ctx, name); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	sellers, err := r.ListSellers(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sellers) != 3 {
		t.Fatalf("expected 3 sellers, got %d", len(sellers))
	}
	if sellers[0].Name != "c" || sellers[1].Name != "a" || sellers[2].Name != "b" {
		t.Fatalf("unexpected order: %s %s %s", sellers[0].Name, sellers[1].Name, sellers[2].Name)
	}
}

func TestClientWithPartner(t *testing.T) {
	r := newTestRepository(t)
	f := newFixture(t, r)

	client, err := r.GetClient(context.Background(), f.client.PID)
	if err != nil {
		t.Fatalf("get client: %v", err)
	}
	if client.Partner == nil || client.Partner.PID != f.partner.PID {
		t.Fatalf("expected partner %s, got %+v", f.partner.PID, client.Partner)
	}
}

func TestClientUnknownPartner(t *testing.T) {
	r := newTestRepository(t)
	unknown := uuid.New()

	_, err := r.CreateClient(context.Background(), ClientInput{
		Name: "X", Contact: "X", Phone: "1", Email: "x@example.com", PartnerPID: &unknown,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateClientDropsPartner(t *testing.T) {
	r := newTestRepository(t)
	f := newFixture(t, r)

	client, err := r.UpdateClient(context.Background(), f.client.PID, ClientInput{
		Name: "John", Contact: "John Doe", Phone: "+200", Email: "john@example.com",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if client.Partner != nil {
		t.Fatalf("expected no partner, got %+v", client.Partner)
	}
	if client.Phone != "+200" {
		t.Fatalf("expected phone +200, got %s", client.Phone)
	}
}

func TestDeletePartnerCascadesToClients(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	f := newFixture(t, r)

	if err := r.DeletePartner(ctx, f.partner.PID); err != nil {
		t.Fatalf("delete partner: %v", err)
	}

	_, err := r.GetClient(ctx, f.client.PID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected client to be deleted, got %v", err)
	}
}

func TestProcessFees(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	f := newFixture(t, r)

	link, err := r.CreateProcessFee(ctx, f.process.PID, f.fee.PID)
	if err != nil {
		t.Fatalf("create process fee: %v", err)
	}

	process, err := r.GetProcess(ctx, f.process.PID)
	if err != nil {
		t.Fatalf("get process: %v", err)
	}
	if len(process.Fees) != 1 || process.Fees[0].Fee.PID != f.fee.PID {
		t.Fatalf("expected linked fee, got %+v", process.Fees)
	}

	other, err := r.CreateFee(ctx, "hourly", nil)
	if err != nil {
		t.Fatalf("create fee: %v", err)
	}
	if _, err := r.UpdateProcessFee(ctx, link.PID, f.process.PID, other.PID); err != nil {
		t.Fatalf("update process fee: %v", err)
	}

	process, err = r.GetProcess(ctx, f.process.PID)
	if err != nil {
		t.Fatalf("get process: %v", err)
	}
	if process.Fees[0].Fee.PID != other.PID {
		t.Fatalf("expected fee %s, got %s", other.PID, process.Fees[0].Fee.PID)
	}

	if err := r.DeleteProcessFee(ctx, link.PID); err != nil {
		t.Fatalf("delete process fee: %v", err)
	}
	process, err = r.GetProcess(ctx, f.process.PID)
	if err != nil {
		t.Fatalf("get process: %v", err)
	}
	if len(process.Fees) != 0 {
		t.Fatalf("expected no fees, got %d", len(process.Fees))
	}
}

func TestProcessFeeUnknownFee(t *testing.T) {
	r := newTestRepository(t)
	f := newFixture(t, r)

	_, err := r.CreateProcessFee(context.Background(), f.process.PID, uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEnsureUser(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()

	first, err := r.EnsureUser(ctx, "admin", "hash", "Admin", role.Admin)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	second, err := r.EnsureUser(ctx, "admin", "other", "Admin", role.Admin)
	if err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if first.PID != second.PID {
		t.Fatal("expected the existing user to be returned")
	}

	exists, err := r.UserExistsByLogin(ctx, "admin")
	if err != nil || !exists {
		t.Fatalf("expected user to exist, err=%v", err)
	}
}
