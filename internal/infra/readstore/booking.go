package readstore

import (
	"context"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/query"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.GetBookingViewByIDRow, error)
	ListBookingsByUserFirstPage(ctx context.Context, db query.DBTX, arg query.ListBookingsByUserFirstPageParams) ([]query.BookingListRow, error)
	ListBookingsByUserKeyset(ctx context.Context, db query.DBTX, arg query.ListBookingsByUserKeysetParams) ([]query.BookingListRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      query.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db query.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}

	checkIn := pgconv.DateFromPgtype(row.CheckInDate)
	checkOut := pgconv.DateFromPgtype(row.CheckOutDate)
	view := &queries.BookingView{
		ID:              row.ID,
		UserID:          row.UserID,
		RoomTypeID:      row.RoomTypeID,
		RoomTypeName:    row.RoomTypeName,
		AccommodationID: row.AccommodationID,
		CheckIn:         checkIn.Format(booking.DateLayout),
		CheckOut:        checkOut.Format(booking.DateLayout),
		Nights:          int(checkOut.Sub(checkIn).Hours() / 24),
		NumRooms:        int(row.NumRooms),
		NumGuests:       int(row.NumGuests),
		TotalPrice:      formatMinor(row.TotalPriceMinor, row.Currency),
		Currency:        row.Currency,
		Status:          row.Status,
		PaymentStatus:   row.PaymentStatus,
		Guest: queries.GuestView{
			Name:  row.GuestName,
			Email: row.GuestEmail,
			Phone: pgconv.StringFromPgtype(row.GuestPhone),
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	if paymentID := pgconv.UUIDPtrFromPgtype(row.PaymentID); paymentID != nil {
		view.Payment = &queries.PaymentView{
			ID:            *paymentID,
			Status:        pgconv.StringFromPgtype(row.PaymentRowStatus),
			TransactionID: pgconv.StringFromPgtype(row.TransactionID),
			Amount:        formatMinor(row.AmountMinor.Int64, row.Currency),
			Currency:      row.Currency,
			UpdatedAt:     pgconv.TimeFromPgtype(row.PaymentUpdatedAt),
		}
	}
	return view, nil
}

func (r *BookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByUserFirstPage(ctx, r.db, query.ListBookingsByUserFirstPageParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page by user", err)
	}
	return mapBookingListRows(rows), nil
}

func (r *BookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByUserKeyset(ctx, r.db, query.ListBookingsByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset by user", err)
	}
	return mapBookingListRows(rows), nil
}

func mapBookingListRows(rows []query.BookingListRow) []*queries.BookingListItem {
	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.BookingListItem{
			ID:            row.ID,
			RoomTypeID:    row.RoomTypeID,
			RoomTypeName:  row.RoomTypeName,
			CheckIn:       pgconv.DateFromPgtype(row.CheckInDate).Format(booking.DateLayout),
			CheckOut:      pgconv.DateFromPgtype(row.CheckOutDate).Format(booking.DateLayout),
			NumRooms:      int(row.NumRooms),
			TotalPrice:    formatMinor(row.TotalPriceMinor, row.Currency),
			Currency:      row.Currency,
			Status:        row.Status,
			PaymentStatus: row.PaymentStatus,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items
}

// formatMinor renders a stored amount; rows violating the schema checks render empty.
func formatMinor(minor int64, currency string) string {
	m, err := money.FromMinor(minor, currency)
	if err != nil {
		return ""
	}
	return m.String()
}
