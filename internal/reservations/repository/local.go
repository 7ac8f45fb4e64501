package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	reserrors "seoulier/internal/reservations/errors"
	"seoulier/pkg/config"
	"seoulier/pkg/model"
)

// localReservationRepository is the file-backed fallback store: the full
// reservation book lives in one JSON file under a well-known name and is
// rewritten on every mutation. Semantics match the Mongo backend; callers
// cannot tell which one is active.
type localReservationRepository struct {
	cfg  *config.Config
	path string

	mu      sync.RWMutex
	records map[string]*model.Reservation

	// txMu serializes ExecuteTransaction sections so a check-then-write
	// sequence cannot interleave with another one.
	txMu sync.Mutex
}

func NewLocalReservationRepository(cfg *config.Config) (ReservationRepository, error) {
	repo := &localReservationRepository{
		cfg:     cfg,
		path:    cfg.LocalStorePath,
		records: make(map[string]*model.Reservation),
	}

	if err := repo.load(); err != nil {
		return nil, fmt.Errorf("failed to load local store: %w", err)
	}

	return repo, nil
}

// localDoc tolerates the historical field shapes on disk; room and seat
// may be a bare string, a JSON array, or absent.
type localDoc struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Adults    int       `json:"adults"`
	Children  int       `json:"children"`
	Room      any       `json:"room"`
	Seat      any       `json:"seat"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Confirmer string    `json:"confirmer"`
	Memo      string    `json:"memo"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *localReservationRepository) load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var docs []localDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("corrupt store file %s: %w", r.path, err)
	}

	for _, doc := range docs {
		r.records[doc.ID] = &model.Reservation{
			ID:        doc.ID,
			Date:      doc.Date,
			Time:      doc.Time,
			Adults:    doc.Adults,
			Children:  doc.Children,
			Rooms:     normalizeIDSet(doc.Room),
			Seats:     normalizeIDSet(doc.Seat),
			Name:      doc.Name,
			Phone:     doc.Phone,
			Confirmer: doc.Confirmer,
			Memo:      doc.Memo,
			Status:    model.Status(doc.Status),
			CreatedAt: doc.CreatedAt,
		}
	}

	return nil
}

// persist writes the full record set atomically. Callers must hold mu.
func (r *localReservationRepository) persist() error {
	list := make([]*model.Reservation, 0, len(r.records))
	for _, res := range r.records {
		list = append(list, res)
	}
	sortByDateTime(list)

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}

	tmp := r.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil && filepath.Dir(r.path) != "." {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}

func (r *localReservationRepository) Create(_ context.Context, res *model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	r.records[res.ID] = cloneReservation(res)

	return r.persist()
}

func (r *localReservationRepository) FindByID(_ context.Context, id string) (*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.records[id]
	if !ok {
		return nil, reserrors.ErrNotFound
	}

	return cloneReservation(res), nil
}

func (r *localReservationRepository) FindAll(_ context.Context) ([]*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*model.Reservation, 0, len(r.records))
	for _, res := range r.records {
		list = append(list, cloneReservation(res))
	}
	sortByDateTime(list)

	return list, nil
}

func (r *localReservationRepository) FindByDate(_ context.Context, date string) ([]*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*model.Reservation, 0)
	for _, res := range r.records {
		if res.Date == date {
			list = append(list, cloneReservation(res))
		}
	}
	sortByDateTime(list)

	return list, nil
}

func (r *localReservationRepository) Update(_ context.Context, id string, res *model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.records[id]
	if !ok {
		return reserrors.ErrNotFound
	}

	updated := cloneReservation(res)
	updated.ID = id
	updated.CreatedAt = existing.CreatedAt
	r.records[id] = updated

	return r.persist()
}

func (r *localReservationRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return reserrors.ErrNotFound
	}
	delete(r.records, id)

	return r.persist()
}

func (r *localReservationRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.records)), nil
}

func (r *localReservationRepository) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	return fn(ctx)
}

func sortByDateTime(list []*model.Reservation) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].Time < list[j].Time
	})
}

func cloneReservation(res *model.Reservation) *model.Reservation {
	cloned := *res
	if res.Rooms != nil {
		cloned.Rooms = append([]string(nil), res.Rooms...)
	}
	if res.Seats != nil {
		cloned.Seats = append([]string(nil), res.Seats...)
	}
	return &cloned
}
