package query

import (
	"context"

	"github.com/google/uuid"
)

const createAccommodation = `-- name: CreateAccommodation :one
INSERT INTO accommodations (name, city)
VALUES ($1, $2)
RETURNING id
`

type CreateAccommodationParams struct {
	Name string
	City string
}

func (q *Queries) CreateAccommodation(ctx context.Context, db DBTX, arg CreateAccommodationParams) (uuid.UUID, error) {
	row := db.QueryRow(ctx, createAccommodation, arg.Name, arg.City)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}
