package repository

import (
	"context"
	"time"

	"backoffice/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func createPayment(tx *gorm.DB, orderID uint, in PaymentInput) error {
	payment := ds.Payment{
		OrderID:          orderID,
		Value:            in.Value,
		PaymentDate:      toDatePtr(in.PaymentDate),
		DueDate:          toDate(in.DueDate),
		PaymentMethod:    in.PaymentMethod,
		Currency:         in.Currency,
		PostponedPayment: in.PostponedPayment,
		Open:             in.Open,
	}
	if in.PostponedDates != nil {
		postponed := len(in.PostponedDates) > 0
		payment.PostponedPayment = &postponed
	}

	if err := tx.Omit(clause.Associations).Create(&payment).Error; err != nil {
		return err
	}

	return insertPostponedDates(tx, payment.ID, in.PostponedDates)
}

// updatePayment перезаписывает платёж заказа. Если переданы даты переноса,
// набор дат заменяется целиком.
func updatePayment(tx *gorm.DB, orderID uint, in PaymentInput) error {
	payment, err := firstByPID[ds.Payment](tx.Where("order_id = ?", orderID), "payment", *in.PID)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{
		"value":             in.Value,
		"payment_date":      toDatePtr(in.PaymentDate),
		"due_date":          toDate(in.DueDate),
		"payment_method":    in.PaymentMethod,
		"currency":          in.Currency,
		"postponed_payment": in.PostponedPayment,
		"open":              in.Open,
	}

	if in.PostponedDates != nil {
		fields["postponed_payment"] = len(in.PostponedDates) > 0

		err = tx.Where("payment_id = ?", payment.ID).Delete(&ds.PostponedPayment{}).Error
		if err != nil {
			return err
		}
		if err := insertPostponedDates(tx, payment.ID, in.PostponedDates); err != nil {
			return err
		}
	}

	return tx.Model(payment).Omit(clause.Associations).Updates(fields).Error
}

func insertPostponedDates(tx *gorm.DB, paymentID uint, dates []time.Time) error {
	if len(dates) == 0 {
		return nil
	}

	rows := make([]ds.PostponedPayment, len(dates))
	for i, date := range dates {
		rows[i] = ds.PostponedPayment{
			PaymentID:     paymentID,
			PostponedDate: toDate(date),
		}
	}
	return tx.Create(&rows).Error
}

// DeletePayment удаляет платёж вместе с датами переноса
func (r *Repository) DeletePayment(ctx context.Context, pid uuid.UUID) error {
	return deleteByPID[ds.Payment](r.db.WithContext(ctx), "payment", pid)
}
