package repository

import (
	"context"
	"time"

	"backoffice/internal/app/ds"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderFeeInput тариф в заказе. Без OrderFeePID создаётся новая связь,
// с OrderFeePID обновляется существующая, FeePID может указать другой тариф.
type OrderFeeInput struct {
	FeePID      uuid.UUID
	OrderFeePID *uuid.UUID
	Open        bool
	Value       float64
	Info        *string
}

// PaymentInput платёж в заказе. Без PID создаётся новый платёж.
// PostponedDates == nil означает "даты переноса не переданы".
type PaymentInput struct {
	PID              *uuid.UUID
	Value            float64
	PaymentDate      *time.Time
	DueDate          time.Time
	PaymentMethod    *string
	Currency         *string
	PostponedPayment *bool
	Open             bool
	PostponedDates   []time.Time
}

// OrderInput данные для создания/изменения заказа
type OrderInput struct {
	ClientPID  uuid.UUID
	ProcessPID uuid.UUID
	SellerPID  uuid.UUID
	Open       bool
	Fee        float64
	Payout     *float64
	PartnerFee *float64
	Fees       []OrderFeeInput
	Payments   []PaymentInput
}

// orderRefs внутренние id связанных сущностей заказа
type orderRefs struct {
	clientID  uint
	processID uint
	sellerID  uint
}

// preloadOrder подтягивает всё, что нужно для вложенного представления заказа
func preloadOrder(db *gorm.DB) *gorm.DB {
	byID := func(db *gorm.DB) *gorm.DB { return db.Order("id") }
	return db.
		Preload("Client.Partner").
		Preload("Process").
		Preload("Seller").
		Preload("Fees", byID).
		Preload("Fees.Fee").
		Preload("Payments", byID).
		Preload("Payments.PostponedDates", func(db *gorm.DB) *gorm.DB {
			return db.Order("postponed_date, id")
		})
}

func (r *Repository) ListOrders(ctx context.Context) ([]ds.Order, error) {
	return listAll[ds.Order](preloadOrder(r.db.WithContext(ctx)))
}

func (r *Repository) GetOrder(ctx context.Context, pid uuid.UUID) (*ds.Order, error) {
	return firstByPID[ds.Order](preloadOrder(r.db.WithContext(ctx)), "order", pid)
}

// resolveOrderRefs находит клиента, процесс и продавца по pid.
// Отсутствие любого из них прерывает всю операцию.
func resolveOrderRefs(tx *gorm.DB, in OrderInput) (orderRefs, error) {
	client, err := firstByPID[ds.Client](tx, "client", in.ClientPID)
	if err != nil {
		return orderRefs{}, err
	}
	process, err := firstByPID[ds.Process](tx, "process", in.ProcessPID)
	if err != nil {
		return orderRefs{}, err
	}
	seller, err := firstByPID[ds.Seller](tx, "seller", in.SellerPID)
	if err != nil {
		return orderRefs{}, err
	}
	return orderRefs{clientID: client.ID, processID: process.ID, sellerID: seller.ID}, nil
}

// CreateOrder создаёт заказ со всеми тарифами, платежами и датами переноса в одной транзакции
// и возвращает заказ, заново прочитанный из базы.
func (r *Repository) CreateOrder(ctx context.Context, in OrderInput) (*ds.Order, error) {
	var pid uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		refs, err := resolveOrderRefs(tx, in)
		if err != nil {
			return err
		}

		order := ds.Order{
			ClientID:   refs.clientID,
			ProcessID:  refs.processID,
			SellerID:   refs.sellerID,
			Open:       in.Open,
			Fee:        in.Fee,
			Payout:     valueOrZero(in.Payout),
			PartnerFee: in.PartnerFee,
		}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return err
		}

		for _, fee := range in.Fees {
			if err := createOrderFee(tx, order.ID, fee); err != nil {
				return err
			}
		}

		for _, payment := range in.Payments {
			if err := createPayment(tx, order.ID, payment); err != nil {
				return err
			}
		}

		pid = order.PID
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	logrus.WithFields(logrus.Fields{
		"order":    pid,
		"fees":     len(in.Fees),
		"payments": len(in.Payments),
	}).Info("order created")

	return r.GetOrder(ctx, pid)
}

// UpdateOrder перезаписывает поля заказа и синхронизирует тарифы и платежи.
// Тарифы и платежи сопоставляются по pid; не упомянутые в запросе остаются без изменений.
func (r *Repository) UpdateOrder(ctx context.Context, pid uuid.UUID, in OrderInput) (*ds.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := firstByPID[ds.Order](tx, "order", pid)
		if err != nil {
			return err
		}

		refs, err := resolveOrderRefs(tx, in)
		if err != nil {
			return err
		}

		err = tx.Model(order).Omit(clause.Associations).Updates(map[string]interface{}{
			"client_id":   refs.clientID,
			"process_id":  refs.processID,
			"seller_id":   refs.sellerID,
			"open":        in.Open,
			"fee":         in.Fee,
			"payout":      valueOrZero(in.Payout),
			"partner_fee": in.PartnerFee,
		}).Error
		if err != nil {
			return err
		}

		for _, fee := range in.Fees {
			if fee.OrderFeePID == nil {
				err = createOrderFee(tx, order.ID, fee)
			} else {
				err = updateOrderFee(tx, order.ID, fee)
			}
			if err != nil {
				return err
			}
		}

		for _, payment := range in.Payments {
			if payment.PID == nil {
				err = createPayment(tx, order.ID, payment)
			} else {
				err = updatePayment(tx, order.ID, payment)
			}
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	logrus.WithField("order", pid).Info("order updated")

	return r.GetOrder(ctx, pid)
}

// DeleteOrder удаляет заказ; тарифы, платежи и даты переноса удаляет каскад
func (r *Repository) DeleteOrder(ctx context.Context, pid uuid.UUID) error {
	return deleteByPID[ds.Order](r.db.WithContext(ctx), "order", pid)
}

func createOrderFee(tx *gorm.DB, orderID uint, in OrderFeeInput) error {
	fee, err := firstByPID[ds.Fee](tx, "fee", in.FeePID)
	if err != nil {
		return err
	}

	orderFee := ds.OrderFee{
		OrderID: orderID,
		FeeID:   fee.ID,
		Open:    in.Open,
		Value:   in.Value,
		Info:    in.Info,
	}
	return tx.Omit(clause.Associations).Create(&orderFee).Error
}

// updateOrderFee перезаписывает связь, включая тариф (fee_pid); связь должна принадлежать этому заказу
func updateOrderFee(tx *gorm.DB, orderID uint, in OrderFeeInput) error {
	orderFee, err := firstByPID[ds.OrderFee](tx.Where("order_id = ?", orderID), "order fee", *in.OrderFeePID)
	if err != nil {
		return err
	}
	fee, err := firstByPID[ds.Fee](tx, "fee", in.FeePID)
	if err != nil {
		return err
	}

	return tx.Model(orderFee).Omit(clause.Associations).Updates(map[string]interface{}{
		"fee_id": fee.ID,
		"open":   in.Open,
		"value":  in.Value,
		"info":   in.Info,
	}).Error
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func toDate(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

func toDatePtr(t *time.Time) *datatypes.Date {
	if t == nil {
		return nil
	}
	d := toDate(*t)
	return &d
}
