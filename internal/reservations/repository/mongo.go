package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	reserrors "seoulier/internal/reservations/errors"
	"seoulier/pkg/config"
	"seoulier/pkg/model"
)

const CollectionName = "Reservations"

type mongoReservationRepository struct {
	cfg        *config.Config
	db         *mongo.Database
	collection *mongo.Collection
	client     *mongo.Client
}

func NewMongoReservationRepository(cfg *config.Config) ReservationRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoReservationRepository{
		cfg:        cfg,
		db:         db,
		collection: db.Collection(CollectionName),
		client:     cfg.Client.Mongo,
	}
}

// reservationDoc mirrors model.Reservation with room and seat left untyped.
// Legacy records hold a bare string or a JSON-encoded array in those
// fields; both decode here and normalize to a canonical string set before
// the record leaves the store boundary.
type reservationDoc struct {
	ID        string    `bson:"_id,omitempty"`
	Date      string    `bson:"date"`
	Time      string    `bson:"time"`
	Adults    int       `bson:"adults"`
	Children  int       `bson:"children"`
	Room      any       `bson:"room,omitempty"`
	Seat      any       `bson:"seat,omitempty"`
	Name      string    `bson:"name"`
	Phone     string    `bson:"phone"`
	Confirmer string    `bson:"confirmer,omitempty"`
	Memo      string    `bson:"memo,omitempty"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d *reservationDoc) toModel() *model.Reservation {
	return &model.Reservation{
		ID:        d.ID,
		Date:      d.Date,
		Time:      d.Time,
		Adults:    d.Adults,
		Children:  d.Children,
		Rooms:     normalizeIDSet(d.Room),
		Seats:     normalizeIDSet(d.Seat),
		Name:      d.Name,
		Phone:     d.Phone,
		Confirmer: d.Confirmer,
		Memo:      d.Memo,
		Status:    model.Status(d.Status),
		CreatedAt: d.CreatedAt,
	}
}

// normalizeIDSet coerces the historical room/seat shapes to []string.
func normalizeIDSet(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return val
	case bson.A:
		return collectStrings(val)
	case []any:
		return collectStrings(val)
	case string:
		if val == "" {
			return nil
		}
		var parsed []string
		if err := json.Unmarshal([]byte(val), &parsed); err == nil {
			return parsed
		}
		return []string{val}
	default:
		return nil
	}
}

func collectStrings(items []any) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// withTimeout wraps the context with a per-operation timeout unless we are
// already inside a session transaction, which cannot be re-wrapped without
// breaking its semantics.
func (r *mongoReservationRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithTimeout(ctx, time.Until(deadline))
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoReservationRepository) Create(ctx context.Context, res *model.Reservation) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.StoreWriteTimeout)
	defer cancel()

	res.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	if _, err := r.collection.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	return nil
}

func (r *mongoReservationRepository) FindByID(ctx context.Context, id string) (*model.Reservation, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.StoreReadTimeout)
	defer cancel()

	var doc reservationDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, reserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reservation: %w", err)
	}

	return doc.toModel(), nil
}

func (r *mongoReservationRepository) FindAll(ctx context.Context) ([]*model.Reservation, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoReservationRepository) FindByDate(ctx context.Context, date string) ([]*model.Reservation, error) {
	return r.find(ctx, bson.M{"date": date})
}

func (r *mongoReservationRepository) find(ctx context.Context, filter bson.M) ([]*model.Reservation, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.StoreReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []*reservationDoc
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}

	reservations := make([]*model.Reservation, 0, len(docs))
	for _, doc := range docs {
		reservations = append(reservations, doc.toModel())
	}

	return reservations, nil
}

func (r *mongoReservationRepository) Update(ctx context.Context, id string, res *model.Reservation) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.StoreWriteTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"date":      res.Date,
			"time":      res.Time,
			"adults":    res.Adults,
			"children":  res.Children,
			"room":      res.Rooms,
			"seat":      res.Seats,
			"name":      res.Name,
			"phone":     res.Phone,
			"confirmer": res.Confirmer,
			"memo":      res.Memo,
			"status":    res.Status,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}

	if result.MatchedCount == 0 {
		return reserrors.ErrNotFound
	}

	return nil
}

func (r *mongoReservationRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.StoreWriteTimeout)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	if result.DeletedCount == 0 {
		return reserrors.ErrNotFound
	}

	return nil
}

func (r *mongoReservationRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.StoreReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	return count, nil
}

func (r *mongoReservationRepository) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx)
	})

	return err
}
