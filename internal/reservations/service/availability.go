package service

import (
	"context"
	"sort"

	apperrors "seoulier/pkg/errors"
	"seoulier/pkg/model"
)

// BookedRooms reports which rooms are held by active reservations in the
// meal period that date/timeOfDay falls into. excludeID skips one
// reservation so edit-in-place checks do not collide with themselves.
// Outside the lunch and dinner windows no conflict checking applies and
// the result is always empty.
func (s *reservationService) BookedRooms(ctx context.Context, date string, timeOfDay string, excludeID string) ([]string, error) {
	if date == "" || timeOfDay == "" {
		return nil, apperrors.InvalidInput("Both date and time are required")
	}

	booked, err := s.bookedRooms(ctx, date, timeOfDay, excludeID)
	if err != nil {
		return nil, apperrors.Internal("Failed to check room availability", err)
	}

	return booked, nil
}

func (s *reservationService) bookedRooms(ctx context.Context, date string, timeOfDay string, excludeID string) ([]string, error) {
	period := model.PeriodOf(timeOfDay)
	if period == model.PeriodNone {
		return []string{}, nil
	}

	reservations, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if excludeID != "" && res.ID == excludeID {
			continue
		}
		if res.Period() != period {
			continue
		}
		for _, room := range res.Rooms {
			seen[room] = struct{}{}
		}
	}

	// Catalog order first so the picker disables rooms in display order;
	// anything off-catalog (legacy data) trails alphabetically.
	booked := make([]string, 0, len(seen))
	for _, room := range model.Rooms {
		if _, ok := seen[room]; ok {
			booked = append(booked, room)
			delete(seen, room)
		}
	}
	extras := make([]string, 0, len(seen))
	for room := range seen {
		extras = append(extras, room)
	}
	sort.Strings(extras)
	booked = append(booked, extras...)

	return booked, nil
}
