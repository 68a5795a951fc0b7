package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"backoffice/internal/app/ds"

	"github.com/google/uuid"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func orderInputFor(f fixture) OrderInput {
	payout := 150.0
	return OrderInput{
		ClientPID:  f.client.PID,
		ProcessPID: f.process.PID,
		SellerPID:  f.seller.PID,
		Open:       true,
		Fee:        1000,
		Payout:     &payout,
		Fees: []OrderFeeInput{
			{FeePID: f.fee.PID, Open: true, Value: 10, Info: strPtr("10% of recovered")},
		},
		Payments: []PaymentInput{
			{Value: 500, DueDate: day("2025-01-31"), Open: true},
			{Value: 500, DueDate: day("2025-02-28"), Open: true, PostponedDates: []time.Time{day("2025-03-15")}},
		},
	}
}

func paymentDay(p ds.Payment) string {
	return time.Time(p.DueDate).Format("2006-01-02")
}

func TestCreateOrder(t *testing.T) {
	r := newTestRepository(t)
	f := newFixture(t, r)

	order, err := r.CreateOrder(context.Background(), orderInputFor(f))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if order.Client.PID != f.client.PID || order.Process.PID != f.process.PID || order.Seller.PID != f.seller.PID {
		t.Fatal("related entities not loaded")
	}
	if order.Client.Partner == nil || order.Client.Partner.PID != f.partner.PID {
		t.Fatal("client partner not loaded")
	}
	if order.Payout != 150 {
		t.Fatalf("expected payout 150, got %v", order.Payout)
	}
	if len(order.Fees) != 1 || order.Fees[0].Fee.PID != f.fee.PID || order.Fees[0].Value != 10 {
		t.Fatalf("unexpected fees: %+v", order.Fees)
	}
	if len(order.Payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(order.Payments))
	}
	if paymentDay(order.Payments[0]) != "2025-01-31" {
		t.Fatalf("unexpected due date %s", paymentDay(order.Payments[0]))
	}
	if order.Payments[0].PostponedPayment != nil {
		t.Fatal("payment without postponed dates should keep postponed_payment unset")
	}

	second := order.Payments[1]
	if len(second.PostponedDates) != 1 {
		t.Fatalf("expected 1 postponed date, got %d", len(second.PostponedDates))
	}
	if second.PostponedPayment == nil || !*second.PostponedPayment {
		t.Fatal("expected postponed_payment to be true")
	}
}

func TestCreateOrderUnknownSellerRollsBack(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	f := newFixture(t, r)

	in := orderInputFor(f)
	in.SellerPID = uuid.New()

	_, err := r.CreateOrder(ctx, in)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	orders, err := r.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(orders))
	}
}

func TestCreateOrderUnknownFeeRollsBack(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	f := newFixture(t, r)

	in := orderInputFor(f)
	in.Fees = append(in.Fees, OrderFeeInput{FeePID: uuid.New(), Value: 1})

	_, err := r.CreateOrder(ctx, in)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	var payments int64
	if err := r.DB().Model(&ds.Payment{}).Count(&payments).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	var orders int64
	if err := r.DB().Model(&ds.Order{}).Count(&orders).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if orders != 0 || payments != 0 {
		t.Fatalf("expected nothing persisted, got %d orders and %d payments", orders, payments)
	}
}

func TestUpdateOrderMatchesByPID(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	f := newFixture(t, r)

	order, err := r.CreateOrder(ctx, orderInputFor(f))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	first, second := order.Payments[0], order.Payments[1]
	orderFee := order.Fees[0]

	paid := day("2025-02-01")
	in := orderInputFor(f)
	in.Open = false
	in.Fees = []OrderFeeInput{
		{FeePID: f.fee.PID, OrderFeePID: &orderFee.PID, Open: false, Value: 12},
	}
	// второй платёж переставлен первым, первый не передан вовсе
	in.Payments = []PaymentInput{
		{PID: &second.PID, Value: 600, DueDate: day("2025-02-28"), Open: true, PostponedDates: []time.Time{}},
		{Value: 50, DueDate: day("2025-04-30"), PaymentDate: &paid, Open: false},
	}

	updated, err := r.UpdateOrder(ctx, order.PID, in)
	if err != nil {
		t.Fatalf("update order: %v", err)
	}

	if updated.PID != order.PID || updated.Open {
		t.Fatalf("unexpected order fields: %+v", updated)
	}
	if len(updated.Fees) != 1 || updated.Fees[0].PID != orderFee.PID || updated.Fees[0].Value != 12 || updated.Fees[0].Open {
		t.Fatalf("order fee not updated in place: %+v", updated.Fees)
	}
	if len(updated.Payments) != 3 {
		t.Fatalf("expected 3 payments (untouched, updated, new), got %d", len(updated.Payments))
	}

	byPID := map[uuid.UUID]ds.Payment{}
	for _, p := range updated.Payments {
		byPID[p.PID] = p
	}

	untouched, ok := byPID[first.PID]
	if !ok || untouched.Value != 500 {
		t.Fatalf("payment not mentioned should be kept as is: %+v", untouched)
	}

	changed := byPID[second.PID]
	if changed.Value != 600 {
		t.Fatalf("expected value 600, got %v", changed.Value)
	}
	if len(changed.PostponedDates) != 0 {
		t.Fatalf("expected postponed dates to be cleared, got %d", len(changed.PostponedDates))
	}
	if changed.PostponedPayment == nil || *changed.PostponedPayment {
		t.Fatal("expected postponed_payment false after clearing dates")
	}

	created := updated.Payments[2]
	if created.PaymentDate == nil || time.Time(*created.PaymentDate).Format("2006-01-02") != "2025-02-01" {
		t.Fatalf("unexpected payment date: %v", created.PaymentDate)
	}
}

func TestUpdateOrderFeeChangesFee(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	f := newFixture(t, r)

	order, err := r.CreateOrder(ctx, orderInputFor(f))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	orderFee := order.Fees[0]

	other, err := r.CreateFee(ctx, "fixed fee", nil)
	if err != nil {
		t.Fatalf("create fee: %v", err)
	}

	in := orderInputFor(f)
	in.Fees = []OrderFeeInput{{FeePID: other.PID, OrderFeePID: &orderFee.PID, Open: true, Value: 10}}
	updated, err := r.UpdateOrder(ctx, order.PID, in)
	if err != nil {
		t.Fatalf("update order: %v", err)
	}
	if len(updated.Fees) != 1 || updated.Fees[0].PID != orderFee.PID || updated.Fees[0].Fee.PID != other.PID {
		t.Fatalf("association must point to the new fee: %+v", updated.Fees)
	}

	in.Fees = []OrderFeeInput{{FeePID: uuid.New(), OrderFeePID: &orderFee.PID, Value: 10}}
	if _, err := r.UpdateOrder(ctx, order.PID, in); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown fee, got %v", err)
	}
}

func TestUpdateOrderPostponedDatesReplaced(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	f := newFixture(t, r)

	order, err := r.CreateOrder(ctx, orderInputFor(f))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	p := order.Payments[1]

	in := orderInputFor(f)
	in.Fees = nil
	in.Payments = []PaymentInput{{
		PID:            &p.PID,
		Value:          p.Value,
		DueDate:        day("2025-02-28"),
		Open:           true,
		PostponedDates: []time.Time{day("2025-05-01"), day("2025-04-01")},
	}}

	updated, err := r.UpdateOrder(ctx, order.PID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	var got ds.Payment
	for _, candidate := range updated.Payments {
		if candidate.PID == p.PID {
			got = candidate
		}
	}
	if len(got.PostponedDates) != 2 {
		t.Fatalf("expected 2 postponed dates, got %d", len(got.PostponedDates))
	}
	if d := time.Time(got.PostponedDates[0].PostponedDate).Format("2006-01-02"); d != "2025-04-01" {
		t.Fatalf("expected dates sorted, first is %s", d)
	}

	// без postponed_dates набор дат не трогается
	in.Payments[0].PostponedDates = nil
	updated, err = r.UpdateOrder(ctx, order.PID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	for _, candidate := range updated.Payments {
		if candidate.PID == p.PID && len(candidate.PostponedDates) != 2 {
			t.Fatalf("expected dates to be kept, got %d", len(candidate.PostponedDates))
		}
	}
}

func TestUpdateOrderForeignPaymentIsNotFound(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	f := newFixture(t, r)

	a, err := r.CreateOrder(ctx, orderInputFor(f))
	if err != nil {
		t.Fatalf("create a: %v", err)
	}
	b, err := r.CreateOrder(ctx, orderInputFor(f))
	if err != nil {
		t.Fatalf("create b: %v", err)
	}

	in := orderInputFor(f)
	in.Fees = nil
	in.Payments = []PaymentInput{{PID: &b.Payments[0].PID, Value: 1, DueDate: day("2025-01-01")}}

	_, err = r.UpdateOrder(ctx, a.PID, in)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	untouched, err := r.GetOrder(ctx, b.PID)
	if err != nil {
		t.Fatalf("get b: %v", err)
	}
	if untouched.Payments[0].Value != 500 {
		t.Fatalf("payment of another order was modified: %v", untouched.Payments[0].Value)
	}
}

func TestUpdateUnknownOrder(t *testing.T) {
	r := newTestRepository(t)
	f := newFixture(t, r)

	_, err := r.UpdateOrder(context.Background(), uuid.New(), orderInputFor(f))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteOrderCascades(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	f := newFixture(t, r)

	order, err := r.CreateOrder(ctx, orderInputFor(f))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := r.DeleteOrder(ctx, order.PID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	for name, model := range map[string]interface{}{
		"order_fees":         &ds.OrderFee{},
		"payments":           &ds.Payment{},
		"postponed_payments": &ds.PostponedPayment{},
	} {
		var n int64
		if err := r.DB().Model(model).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if n != 0 {
			t.Fatalf("expected %s to be empty, got %d", name, n)
		}
	}
}

func TestDeletePayment(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	f := newFixture(t, r)

	order, err := r.CreateOrder(ctx, orderInputFor(f))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := r.DeletePayment(ctx, order.Payments[1].PID); err != nil {
		t.Fatalf("delete payment: %v", err)
	}

	reloaded, err := r.GetOrder(ctx, order.PID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(reloaded.Payments) != 1 || reloaded.Payments[0].PID != order.Payments[0].PID {
		t.Fatalf("unexpected payments after delete: %+v", reloaded.Payments)
	}

	if err := r.DeletePayment(ctx, order.Payments[1].PID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestClientListsOrders(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	f := newFixture(t, r)

	if _, err := r.CreateOrder(ctx, orderInputFor(f)); err != nil {
		t.Fatalf("create order: %v", err)
	}

	client, err := r.GetClient(ctx, f.client.PID)
	if err != nil {
		t.Fatalf("get client: %v", err)
	}
	if len(client.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(client.Orders))
	}
	if client.Orders[0].Process.CaseType != "judicial" || client.Orders[0].Seller.Name != "Ana" {
		t.Fatalf("order relations not loaded: %+v", client.Orders[0])
	}
}
