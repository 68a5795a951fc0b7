package report

import (
	"testing"
	"time"

	"backoffice/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func TestOrdersWorkbook(t *testing.T) {
	paid := datatypes.Date(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))
	method := "pix"
	partnerFee := 12.5

	orders := []ds.Order{{
		Model:      ds.Model{PID: uuid.New()},
		Open:       true,
		Fee:        1000,
		Payout:     100,
		PartnerFee: &partnerFee,
		Client:     ds.Client{Name: "John", Partner: &ds.Partner{Name: "Acme"}},
		Process:    ds.Process{CaseType: "judicial"},
		Seller:     ds.Seller{Name: "Ana"},
		Payments: []ds.Payment{
			{
				Model:         ds.Model{PID: uuid.New()},
				Value:         400,
				DueDate:       datatypes.Date(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)),
				PaymentDate:   &paid,
				PaymentMethod: &method,
			},
			{
				Model:   ds.Model{PID: uuid.New()},
				Value:   600,
				DueDate: datatypes.Date(time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)),
				PostponedDates: []ds.PostponedPayment{
					{PostponedDate: datatypes.Date(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))},
					{PostponedDate: datatypes.Date(time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC))},
				},
			},
		},
	}}

	f, err := OrdersWorkbook(orders)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != OrdersSheet || sheets[1] != PaymentsSheet {
		t.Fatalf("unexpected sheets %v", sheets)
	}

	rows, err := f.GetRows(OrdersSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 order row, got %d", len(rows))
	}
	row := rows[1]
	if row[1] != "John" || row[2] != "Acme" || row[3] != "judicial" || row[4] != "Ana" {
		t.Fatalf("unexpected order row %v", row)
	}
	if row[9] != "2" || row[10] != "1000" {
		t.Fatalf("expected 2 payments totalling 1000, got %v", row)
	}

	payments, err := f.GetRows(PaymentsSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(payments) != 3 {
		t.Fatalf("expected header + 2 payment rows, got %d", len(payments))
	}
	if payments[1][4] != "31.01.2025" || payments[1][5] != "20.01.2025" || payments[1][6] != "pix" {
		t.Fatalf("unexpected payment row %v", payments[1])
	}
	if payments[2][9] != "10.03.2025, 20.03.2025" {
		t.Fatalf("unexpected postponed dates %q", payments[2][9])
	}
}

func TestOrdersWorkbookEmpty(t *testing.T) {
	f, err := OrdersWorkbook(nil)
	if err != nil {
		t.Fatalf("workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(OrdersSheet)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0][0] != "Заказ" {
		t.Fatalf("expected only headers, got %v", rows)
	}
}

func TestFileName(t *testing.T) {
	got := FileName(time.Date(2025, 3, 1, 14, 5, 9, 0, time.UTC))
	if got != "orders_20250301_140509.xlsx" {
		t.Fatalf("unexpected file name %s", got)
	}
}
