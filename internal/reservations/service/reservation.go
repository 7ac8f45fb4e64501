package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"seoulier/internal/reservations/events"
	reserrors "seoulier/internal/reservations/errors"
	"seoulier/internal/reservations/repository"
	"seoulier/internal/reservations/validator"
	"seoulier/pkg/config"
	apperrors "seoulier/pkg/errors"
	"seoulier/pkg/model"
	"seoulier/pkg/sanitizer"
)

type ReservationService interface {
	Create(ctx context.Context, res *model.Reservation) error
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Reservation, int64, error)
	GetByDate(ctx context.Context, date string) ([]*model.Reservation, error)
	Update(ctx context.Context, id string, updates *model.ReservationUpdate) (*model.Reservation, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status model.Status) (*model.Reservation, error)
	BookedRooms(ctx context.Context, date string, timeOfDay string, excludeID string) ([]string, error)
	Summarize(ctx context.Context, date string) (*model.DaySummary, error)
	DaySchedule(ctx context.Context, date string) (*model.DaySchedule, error)
}

type reservationService struct {
	repo      repository.ReservationRepository
	validator *validator.ReservationValidator
	publisher *events.Publisher
	cfg       *config.Config
}

func NewReservationService(
	repo repository.ReservationRepository,
	resValidator *validator.ReservationValidator,
	publisher *events.Publisher,
	cfg *config.Config,
) ReservationService {
	return &reservationService{
		repo:      repo,
		validator: resValidator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *reservationService) Create(ctx context.Context, res *model.Reservation) error {
	res.ID = uuid.NewString()
	res.Status = model.StatusReserved
	s.sanitize(res)
	if err := s.validate(res); err != nil {
		return err
	}

	// The picker's availability check is advisory and can be stale by
	// submit time; the authoritative check happens here, atomically with
	// the insert.
	err := s.repo.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		if err := s.verifyRoomAvailability(txCtx, res); err != nil {
			return err
		}
		if err := s.repo.Create(txCtx, res); err != nil {
			return apperrors.Internal("Failed to create reservation", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create reservation", "error", err)
		return err
	}

	s.publisher.Created(ctx, res)
	s.cfg.Log.Info("Reservation created successfully",
		"id", res.ID,
		"date", res.Date,
		"time", res.Time,
		"rooms", res.Rooms,
	)
	return nil
}

func (s *reservationService) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, reserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Reservation", id)
		}
		return nil, apperrors.Internal("Failed to retrieve reservation", err)
	}

	return res, nil
}

func (s *reservationService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Reservation, int64, error) {
	var count int64
	var reservations []*model.Reservation
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count reservations", "error", errCount)
			errCount = apperrors.Internal("Failed to count reservations", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		reservations, errFind = s.repo.FindAll(ctx)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list reservations", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve reservations", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return paginate(reservations, limit, offset), count, nil
}

func (s *reservationService) GetByDate(ctx context.Context, date string) ([]*model.Reservation, error) {
	if date == "" {
		return nil, apperrors.InvalidInput("Date cannot be empty")
	}

	reservations, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve reservations", err)
	}

	return reservations, nil
}

func (s *reservationService) Update(ctx context.Context, id string, updates *model.ReservationUpdate) (*model.Reservation, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, reserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Reservation", id)
		}
		return nil, apperrors.Internal("Failed to check reservation existence", err)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Reservation update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	if updates.Status != "" && updates.Status != existing.Status {
		if !existing.Status.CanTransitionTo(updates.Status) {
			return nil, apperrors.Conflict(fmt.Sprintf(
				"Cannot change status of a %s reservation to %s", existing.Status, updates.Status,
			))
		}
	}

	merged := s.mergeUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validate(merged); err != nil {
		return nil, err
	}

	err = s.repo.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		if err := s.verifyRoomAvailability(txCtx, merged); err != nil {
			return err
		}
		if err := s.repo.Update(txCtx, id, merged); err != nil {
			return apperrors.Internal("Failed to update reservation", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to update reservation", "id", id, "error", err)
		return nil, err
	}

	s.publisher.Updated(ctx, merged)
	s.cfg.Log.Info("Reservation updated successfully", "id", id)
	return merged, nil
}

func (s *reservationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Reservation ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, reserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Reservation", id)
		}
		return apperrors.Internal("Failed to delete reservation", err)
	}

	s.publisher.Deleted(ctx, id)
	s.cfg.Log.Info("Reservation deleted successfully", "id", id)
	return nil
}

func (s *reservationService) SetStatus(ctx context.Context, id string, status model.Status) (*model.Reservation, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Unknown status: %s", status))
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, reserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Reservation", id)
		}
		return nil, apperrors.Internal("Failed to check reservation existence", err)
	}

	// Re-setting the current status is a no-op so a double-tapped cancel
	// button does not error.
	if existing.Status == status {
		return existing, nil
	}

	if !existing.Status.CanTransitionTo(status) {
		return nil, apperrors.Conflict(fmt.Sprintf(
			"Cannot change status of a %s reservation to %s", existing.Status, status,
		))
	}

	existing.Status = status
	if err := s.repo.Update(ctx, id, existing); err != nil {
		s.cfg.Log.Error("Failed to update reservation status", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update reservation status", err)
	}

	s.publisher.StatusChanged(ctx, existing)
	s.cfg.Log.Info("Reservation status changed", "id", id, "status", status)
	return existing, nil
}

// --- Helpers ---

func (s *reservationService) sanitize(res *model.Reservation) {
	res.Name = sanitizer.NormalizeName(res.Name)
	res.Memo = sanitizer.NormalizeMemo(res.Memo)
	res.Phone = sanitizer.NormalizePhone(res.Phone)
	res.Rooms = sanitizer.SanitizeIDSet(res.Rooms)
	res.Seats = sanitizer.SanitizeIDSet(res.Seats)
}

func (s *reservationService) validate(res *model.Reservation) error {
	if err := s.validator.Validate(res); err != nil {
		s.cfg.Log.Warn("Reservation validation failed", "error", err)
		return apperrors.Validation("Reservation validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

func (s *reservationService) mergeUpdates(existing *model.Reservation, updates *model.ReservationUpdate) *model.Reservation {
	merged := *existing

	if updates.Date != "" {
		merged.Date = updates.Date
	}
	if updates.Time != "" {
		merged.Time = updates.Time
	}
	if updates.Adults != nil {
		merged.Adults = *updates.Adults
	}
	if updates.Children != nil {
		merged.Children = *updates.Children
	}
	if updates.Rooms != nil {
		merged.Rooms = *updates.Rooms
	}
	if updates.Seats != nil {
		merged.Seats = *updates.Seats
	}
	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Phone != nil {
		merged.Phone = *updates.Phone
	}
	if updates.Confirmer != nil {
		merged.Confirmer = *updates.Confirmer
	}
	if updates.Memo != nil {
		merged.Memo = *updates.Memo
	}
	if updates.Status != "" {
		merged.Status = updates.Status
	}

	return &merged
}

// verifyRoomAvailability rejects a write whose rooms collide with another
// active reservation in the same date and meal period. Reservations
// outside the lunch/dinner windows hold no rooms exclusively.
func (s *reservationService) verifyRoomAvailability(ctx context.Context, res *model.Reservation) error {
	if !res.IsActive() || len(res.Rooms) == 0 {
		return nil
	}
	if res.Period() == model.PeriodNone {
		return nil
	}

	booked, err := s.bookedRooms(ctx, res.Date, res.Time, res.ID)
	if err != nil {
		return apperrors.Internal("Failed to check room availability", err)
	}

	var conflicts []string
	for _, room := range res.Rooms {
		for _, taken := range booked {
			if room == taken {
				conflicts = append(conflicts, room)
			}
		}
	}
	if len(conflicts) > 0 {
		return apperrors.Conflict(fmt.Sprintf(
			"Rooms already booked for this %s period: %v", res.Period(), conflicts,
		))
	}

	return nil
}

func paginate(list []*model.Reservation, limit int, offset int64) []*model.Reservation {
	if offset >= int64(len(list)) {
		return []*model.Reservation{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
