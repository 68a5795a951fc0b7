package report

import (
	"fmt"
	"strings"
	"time"

	"backoffice/internal/app/ds"

	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

const (
	OrdersSheet   = "Orders"
	PaymentsSheet = "Payments"

	dateLayout = "02.01.2006"
)

var (
	orderHeaders = []string{
		"Заказ", "Клиент", "Партнёр", "Процесс", "Продавец", "Открыт",
		"Гонорар", "Выплата", "Доля партнёра", "Платежей", "Сумма платежей",
	}
	paymentHeaders = []string{
		"Заказ", "Платёж", "Клиент", "Сумма", "Срок", "Дата оплаты",
		"Способ", "Валюта", "Открыт", "Переносы",
	}
)

// OrdersWorkbook строит отчёт по заказам: лист заказов и лист платежей.
// Заказы должны быть загружены вместе с клиентом, процессом, продавцом и платежами.
func OrdersWorkbook(orders []ds.Order) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", OrdersSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(PaymentsSheet); err != nil {
		return nil, err
	}

	if err := writeHeaders(f, OrdersSheet, orderHeaders); err != nil {
		return nil, err
	}
	if err := writeHeaders(f, PaymentsSheet, paymentHeaders); err != nil {
		return nil, err
	}

	paymentRow := 2
	for i, o := range orders {
		var total float64
		for _, p := range o.Payments {
			total += p.Value
		}

		partner := ""
		if o.Client.Partner != nil {
			partner = o.Client.Partner.Name
		}

		row := []interface{}{
			o.PID.String(), o.Client.Name, partner, o.Process.CaseType, o.Seller.Name, yesNo(o.Open),
			o.Fee, o.Payout, floatOrEmpty(o.PartnerFee), len(o.Payments), total,
		}
		if err := writeRow(f, OrdersSheet, i+2, row); err != nil {
			return nil, err
		}

		for _, p := range o.Payments {
			row := []interface{}{
				o.PID.String(), p.PID.String(), o.Client.Name, p.Value,
				time.Time(p.DueDate).Format(dateLayout), dateOrEmpty(p.PaymentDate),
				stringOrEmpty(p.PaymentMethod), stringOrEmpty(p.Currency), yesNo(p.Open),
				postponedDates(p.PostponedDates),
			}
			if err := writeRow(f, PaymentsSheet, paymentRow, row); err != nil {
				return nil, err
			}
			paymentRow++
		}
	}

	return f, nil
}

// FileName имя файла отчёта на момент выгрузки
func FileName(now time.Time) string {
	return fmt.Sprintf("orders_%s.xlsx", now.Format("20060102_150405"))
}

func writeHeaders(f *excelize.File, sheet string, headers []string) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func yesNo(b bool) string {
	if b {
		return "да"
	}
	return "нет"
}

func floatOrEmpty(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func dateOrEmpty(d *datatypes.Date) string {
	if d == nil {
		return ""
	}
	return time.Time(*d).Format(dateLayout)
}

func postponedDates(dates []ds.PostponedPayment) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = time.Time(d.PostponedDate).Format(dateLayout)
	}
	return strings.Join(parts, ", ")
}
