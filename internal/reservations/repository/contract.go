package repository

import (
	"context"

	"seoulier/pkg/model"
)

// TransactionFunc runs inside whatever atomicity the active backend offers:
// a session transaction on Mongo, an exclusive section on the local store.
// Keeping the signature backend-neutral lets the service layer do its
// check-then-write without knowing which store is wired in.
type TransactionFunc func(ctx context.Context) error

type ReservationRepository interface {
	Create(ctx context.Context, res *model.Reservation) error
	FindByID(ctx context.Context, id string) (*model.Reservation, error)
	FindAll(ctx context.Context) ([]*model.Reservation, error)
	FindByDate(ctx context.Context, date string) ([]*model.Reservation, error)
	Update(ctx context.Context, id string, res *model.Reservation) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	ExecuteTransaction(ctx context.Context, fn TransactionFunc) error
}
