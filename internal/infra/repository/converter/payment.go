package converter

import (
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
)

func PaymentToCreateParams(p *payment.Payment) query.CreatePaymentParams {
	return query.CreatePaymentParams{
		ID:            p.ID(),
		BookingID:     p.BookingID(),
		UserID:        p.UserID(),
		AmountMinor:   p.Amount().Minor(),
		Currency:      p.Amount().Currency(),
		Status:        p.Status().String(),
		TransactionID: p.TransactionID(),
		ClientHandle:  pgconv.OptionalText(p.Handle()),
		CreatedAt:     pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PaymentFromRow(row query.Payment) (*payment.Payment, error) {
	amount, err := money.FromMinor(row.AmountMinor, row.Currency)
	if err != nil {
		return nil, errs.Wrapf(err, "payment %s has an invalid amount", row.ID)
	}
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "payment %s", row.ID)
	}
	return payment.ReconstructPayment(
		row.ID,
		row.BookingID,
		row.UserID,
		amount,
		status,
		row.TransactionID,
		pgconv.StringFromPgtype(row.ClientHandle),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
