package service

import (
	"context"
	"sort"

	apperrors "seoulier/pkg/errors"
	"seoulier/pkg/model"
)

// Summarize derives the per-period team and headcount totals for one date
// from active reservations. Calendar cells and the today/tomorrow digests
// render these numbers.
func (s *reservationService) Summarize(ctx context.Context, date string) (*model.DaySummary, error) {
	if date == "" {
		return nil, apperrors.InvalidInput("Date cannot be empty")
	}

	reservations, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, apperrors.Internal("Failed to summarize reservations", err)
	}

	summary := &model.DaySummary{Date: date}
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		switch res.Period() {
		case model.PeriodLunch:
			summary.LunchTeams++
			summary.LunchAdults += res.Adults
			summary.LunchChildren += res.Children
		case model.PeriodDinner:
			summary.DinnerTeams++
			summary.DinnerAdults += res.Adults
			summary.DinnerChildren += res.Children
		}
	}

	return summary, nil
}

// DaySchedule returns the chronological digest for one date: active
// reservations sorted ascending by time, partitioned by meal period. The
// sort is stable so reservations sharing a time keep their stored order.
func (s *reservationService) DaySchedule(ctx context.Context, date string) (*model.DaySchedule, error) {
	if date == "" {
		return nil, apperrors.InvalidInput("Date cannot be empty")
	}

	reservations, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve day schedule", err)
	}

	active := make([]*model.Reservation, 0, len(reservations))
	for _, res := range reservations {
		if res.IsActive() {
			active = append(active, res)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Time < active[j].Time
	})

	schedule := &model.DaySchedule{
		Date:   date,
		Lunch:  []*model.Reservation{},
		Dinner: []*model.Reservation{},
		Other:  []*model.Reservation{},
	}
	for _, res := range active {
		switch res.Period() {
		case model.PeriodLunch:
			schedule.Lunch = append(schedule.Lunch, res)
		case model.PeriodDinner:
			schedule.Dinner = append(schedule.Dinner, res)
		default:
			schedule.Other = append(schedule.Other, res)
		}
	}

	return schedule, nil
}
