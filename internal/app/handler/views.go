package handler

import (
	"time"

	"backoffice/internal/app/ds"
	"backoffice/internal/app/dto"

	"gorm.io/datatypes"
)

func processView(p ds.Process) dto.ProcessView {
	fees := make([]dto.ProcessFeeView, len(p.Fees))
	for i, pf := range p.Fees {
		fees[i] = dto.ProcessFeeView{
			ProcessFeePID: pf.PID,
			FeePID:        pf.Fee.PID,
			Fee:           pf.Fee.Fee,
			Type:          pf.Fee.Type,
		}
	}
	return dto.ProcessView{PID: p.PID, CaseType: p.CaseType, Fees: fees}
}

func processViews(processes []ds.Process) []dto.ProcessView {
	views := make([]dto.ProcessView, len(processes))
	for i, p := range processes {
		views[i] = processView(p)
	}
	return views
}

func partnerView(p ds.Partner) dto.PartnerView {
	return dto.PartnerView{
		PID:         p.PID,
		Name:        p.Name,
		Information: p.Information,
		Phone:       p.Phone,
		Email:       p.Email,
	}
}

func partnerViews(partners []ds.Partner) []dto.PartnerView {
	views := make([]dto.PartnerView, len(partners))
	for i, p := range partners {
		views[i] = partnerView(p)
	}
	return views
}

func sellerView(s ds.Seller) dto.SellerView {
	return dto.SellerView{PID: s.PID, Name: s.Name}
}

func sellerViews(sellers []ds.Seller) []dto.SellerView {
	views := make([]dto.SellerView, len(sellers))
	for i, s := range sellers {
		views[i] = sellerView(s)
	}
	return views
}

func feeView(f ds.Fee) dto.FeeView {
	return dto.FeeView{PID: f.PID, Fee: f.Fee, Type: f.Type}
}

func feeViews(fees []ds.Fee) []dto.FeeView {
	views := make([]dto.FeeView, len(fees))
	for i, f := range fees {
		views[i] = feeView(f)
	}
	return views
}

func optionalPartnerView(p *ds.Partner) *dto.PartnerView {
	if p == nil {
		return nil
	}
	view := partnerView(*p)
	return &view
}

func clientView(c ds.Client) dto.ClientView {
	orders := make([]dto.ClientOrderView, len(c.Orders))
	for i, o := range c.Orders {
		orders[i] = dto.ClientOrderView{
			PID:        o.PID,
			Process:    dto.ProcessBrief{PID: o.Process.PID, CaseType: o.Process.CaseType},
			Open:       o.Open,
			Fee:        o.Fee,
			Seller:     sellerView(o.Seller),
			PartnerFee: o.PartnerFee,
		}
	}

	return dto.ClientView{
		PID:     c.PID,
		Name:    c.Name,
		Contact: c.Contact,
		Phone:   c.Phone,
		Phone2:  c.Phone2,
		Email:   c.Email,
		Partner: optionalPartnerView(c.Partner),
		Orders:  orders,
	}
}

func clientViews(clients []ds.Client) []dto.ClientView {
	views := make([]dto.ClientView, len(clients))
	for i, c := range clients {
		views[i] = clientView(c)
	}
	return views
}

func dateView(d datatypes.Date) dto.Date {
	return dto.NewDate(time.Time(d))
}

func paymentView(p ds.Payment) dto.PaymentView {
	var paymentDate *dto.Date
	if p.PaymentDate != nil {
		d := dateView(*p.PaymentDate)
		paymentDate = &d
	}

	postponed := make([]dto.Date, len(p.PostponedDates))
	for i, pp := range p.PostponedDates {
		postponed[i] = dateView(pp.PostponedDate)
	}

	return dto.PaymentView{
		PID:              p.PID,
		Value:            p.Value,
		PaymentDate:      paymentDate,
		DueDate:          dateView(p.DueDate),
		PaymentMethod:    p.PaymentMethod,
		Currency:         p.Currency,
		PostponedPayment: p.PostponedPayment,
		Open:             p.Open,
		PostponedDates:   postponed,
	}
}

func orderView(o ds.Order) dto.OrderView {
	fees := make([]dto.OrderFeeView, len(o.Fees))
	for i, of := range o.Fees {
		fees[i] = dto.OrderFeeView{
			FeePID:      of.Fee.PID,
			OrderFeePID: of.PID,
			Fee:         of.Fee.Fee,
			Type:        of.Fee.Type,
			Value:       of.Value,
			Open:        of.Open,
			Info:        of.Info,
		}
	}

	payments := make([]dto.PaymentView, len(o.Payments))
	for i, p := range o.Payments {
		payments[i] = paymentView(p)
	}

	return dto.OrderView{
		PID: o.PID,
		Client: dto.ClientBrief{
			PID:     o.Client.PID,
			Name:    o.Client.Name,
			Contact: o.Client.Contact,
			Phone:   o.Client.Phone,
			Phone2:  o.Client.Phone2,
			Email:   o.Client.Email,
			Partner: optionalPartnerView(o.Client.Partner),
		},
		Process:    dto.ProcessBrief{PID: o.Process.PID, CaseType: o.Process.CaseType},
		Seller:     sellerView(o.Seller),
		Open:       o.Open,
		Fee:        o.Fee,
		Payout:     o.Payout,
		PartnerFee: o.PartnerFee,
		Fees:       fees,
		Payments:   payments,
	}
}

func orderViews(orders []ds.Order) []dto.OrderView {
	views := make([]dto.OrderView, len(orders))
	for i, o := range orders {
		views[i] = orderView(o)
	}
	return views
}
