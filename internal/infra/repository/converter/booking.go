package converter

import (
	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/domain/payment"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) (query.CreateBookingParams, error) {
	numRooms, err := pgconv.IntToInt32(b.NumRooms())
	if err != nil {
		return query.CreateBookingParams{}, errs.Wrapf(err, "booking %s rooms", b.ID())
	}
	numGuests, err := pgconv.IntToInt32(b.NumGuests())
	if err != nil {
		return query.CreateBookingParams{}, errs.Wrapf(err, "booking %s guests", b.ID())
	}
	return query.CreateBookingParams{
		ID:              b.ID(),
		UserID:          b.UserID(),
		RoomTypeID:      b.RoomTypeID(),
		CheckInDate:     pgconv.DateToPgtype(b.Period().CheckIn()),
		CheckOutDate:    pgconv.DateToPgtype(b.Period().CheckOut()),
		NumRooms:        numRooms,
		NumGuests:       numGuests,
		TotalPriceMinor: b.TotalPrice().Minor(),
		Currency:        b.TotalPrice().Currency(),
		Status:          b.Status().String(),
		PaymentStatus:   b.PaymentStatus().String(),
		GuestName:       b.Guest().Name(),
		GuestEmail:      b.Guest().Email(),
		GuestPhone:      pgconv.OptionalText(b.Guest().Phone()),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(b.UpdatedAt()),
	}, nil
}

func BookingToStatusParams(b *booking.Booking) query.UpdateBookingStatusParams {
	return query.UpdateBookingStatusParams{
		ID:            b.ID(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row query.Booking) (*booking.Booking, error) {
	period, err := booking.NewStayPeriod(pgconv.DateFromPgtype(row.CheckInDate), pgconv.DateFromPgtype(row.CheckOutDate))
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s has an invalid stay", row.ID)
	}
	total, err := money.FromMinor(row.TotalPriceMinor, row.Currency)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s has an invalid total", row.ID)
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	paymentStatus, err := payment.ParseStatus(row.PaymentStatus)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.UserID,
		row.RoomTypeID,
		period,
		int(row.NumRooms),
		int(row.NumGuests),
		total,
		status,
		paymentStatus,
		booking.ReconstructGuestContact(row.GuestName, row.GuestEmail, pgconv.StringFromPgtype(row.GuestPhone)),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
