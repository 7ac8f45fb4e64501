package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	reserrors "seoulier/internal/reservations/errors"
	"seoulier/pkg/config"
	"seoulier/pkg/model"
)

func newTestLocalRepo(t *testing.T) (ReservationRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seoulier_reservations.json")
	repo, err := NewLocalReservationRepository(&config.Config{LocalStorePath: path})
	if err != nil {
		t.Fatalf("failed to open local store: %v", err)
	}
	return repo, path
}

func sampleReservation(id string) *model.Reservation {
	return &model.Reservation{
		ID:     id,
		Date:   "2026-03-14",
		Time:   "12:00",
		Adults: 4,
		Name:   "Kim Minji",
		Rooms:  []string{"B1"},
		Status: model.StatusReserved,
	}
}

func TestLocalRepository_CreateAndFind(t *testing.T) {
	repo, _ := newTestLocalRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, sampleReservation("res-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	found, err := repo.FindByID(ctx, "res-1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Name != "Kim Minji" || found.Rooms[0] != "B1" {
		t.Errorf("unexpected record: %+v", found)
	}
	if found.CreatedAt.IsZero() {
		t.Error("create must stamp created_at")
	}

	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, reserrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLocalRepository_PersistsAcrossReopen(t *testing.T) {
	repo, path := newTestLocalRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, sampleReservation("res-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	reopened, err := NewLocalReservationRepository(&config.Config{LocalStorePath: path})
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}

	found, err := reopened.FindByID(ctx, "res-1")
	if err != nil {
		t.Fatalf("record lost across reopen: %v", err)
	}
	if found.Date != "2026-03-14" {
		t.Errorf("unexpected record after reopen: %+v", found)
	}
}

func TestLocalRepository_FindAllSortedByDateTime(t *testing.T) {
	repo, _ := newTestLocalRepo(t)
	ctx := context.Background()

	entries := []*model.Reservation{
		{ID: "c", Date: "2026-03-15", Time: "12:00", Adults: 2, Name: "C", Status: model.StatusReserved},
		{ID: "a", Date: "2026-03-14", Time: "18:00", Adults: 2, Name: "A", Status: model.StatusReserved},
		{ID: "b", Date: "2026-03-14", Time: "11:30", Adults: 2, Name: "B", Status: model.StatusReserved},
	}
	for _, e := range entries {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[0].ID != "b" || all[1].ID != "a" || all[2].ID != "c" {
		t.Errorf("expected order [b a c], got [%s %s %s]", all[0].ID, all[1].ID, all[2].ID)
	}

	count, err := repo.Count(ctx)
	if err != nil || count != 3 {
		t.Errorf("expected count 3, got %d (err %v)", count, err)
	}
}

func TestLocalRepository_FindByDate(t *testing.T) {
	repo, _ := newTestLocalRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, sampleReservation("res-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	other := sampleReservation("res-2")
	other.Date = "2026-03-15"
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	day, err := repo.FindByDate(ctx, "2026-03-14")
	if err != nil {
		t.Fatalf("find by date failed: %v", err)
	}
	if len(day) != 1 || day[0].ID != "res-1" {
		t.Errorf("expected only res-1, got %+v", day)
	}
}

func TestLocalRepository_UpdateAndDelete(t *testing.T) {
	repo, _ := newTestLocalRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, sampleReservation("res-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	created, _ := repo.FindByID(ctx, "res-1")

	changed := sampleReservation("res-1")
	changed.Adults = 8
	if err := repo.Update(ctx, "res-1", changed); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	found, _ := repo.FindByID(ctx, "res-1")
	if found.Adults != 8 {
		t.Errorf("expected adults 8 after update, got %d", found.Adults)
	}
	if !found.CreatedAt.Equal(created.CreatedAt) {
		t.Error("update must preserve created_at")
	}

	if err := repo.Update(ctx, "missing", changed); !errors.Is(err, reserrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound updating missing record, got %v", err)
	}

	if err := repo.Delete(ctx, "res-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, "res-1"); !errors.Is(err, reserrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, "res-1"); !errors.Is(err, reserrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestLocalRepository_ReturnsCopies(t *testing.T) {
	repo, _ := newTestLocalRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, sampleReservation("res-1")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, _ := repo.FindByID(ctx, "res-1")
	first.Name = "mutated"
	first.Rooms[0] = "A1"

	second, _ := repo.FindByID(ctx, "res-1")
	if second.Name != "Kim Minji" || second.Rooms[0] != "B1" {
		t.Error("mutating a returned record must not touch the store")
	}
}

func TestLocalRepository_LoadsLegacyRoomShapes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seoulier_reservations.json")
	legacy := `[
  {
    "id": "bare-string",
    "date": "2026-03-14",
    "time": "12:00",
    "adults": 2,
    "room": "B1",
    "seat": null,
    "name": "Lee",
    "status": "reserved"
  },
  {
    "id": "array",
    "date": "2026-03-14",
    "time": "18:00",
    "adults": 4,
    "room": ["A1", "B2"],
    "seat": ["T1"],
    "name": "Park",
    "status": "reserved"
  },
  {
    "id": "stringified-array",
    "date": "2026-03-15",
    "time": "12:00",
    "adults": 3,
    "room": "[\"B2\"]",
    "name": "Choi",
    "status": "reserved"
  }
]`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("failed to seed store file: %v", err)
	}

	repo, err := NewLocalReservationRepository(&config.Config{LocalStorePath: path})
	if err != nil {
		t.Fatalf("failed to open seeded store: %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		id   string
		want []string
	}{
		{"bare-string", []string{"B1"}},
		{"array", []string{"A1", "B2"}},
		{"stringified-array", []string{"B2"}},
	}
	for _, tt := range tests {
		res, err := repo.FindByID(ctx, tt.id)
		if err != nil {
			t.Fatalf("%s: %v", tt.id, err)
		}
		if len(res.Rooms) != len(tt.want) {
			t.Errorf("%s: expected rooms %v, got %v", tt.id, tt.want, res.Rooms)
			continue
		}
		for i := range tt.want {
			if res.Rooms[i] != tt.want[i] {
				t.Errorf("%s: expected rooms %v, got %v", tt.id, tt.want, res.Rooms)
				break
			}
		}
	}
}

func TestLocalRepository_TransactionSerializesCheckThenWrite(t *testing.T) {
	repo, _ := newTestLocalRepo(t)
	ctx := context.Background()

	err := repo.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		if _, err := repo.FindByDate(txCtx, "2026-03-14"); err != nil {
			return err
		}
		return repo.Create(txCtx, sampleReservation("res-1"))
	})
	if err != nil {
		t.Fatalf("transaction failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, "res-1"); err != nil {
		t.Errorf("record written in transaction must be visible: %v", err)
	}
}
