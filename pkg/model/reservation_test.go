package model

import "testing"

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		timeOfDay string
		want      MealPeriod
	}{
		{"11:00", PeriodLunch},
		{"12:30", PeriodLunch},
		{"14:59", PeriodLunch},
		{"15:00", PeriodNone},
		{"16:59", PeriodNone},
		{"17:00", PeriodDinner},
		{"20:59", PeriodDinner},
		{"21:00", PeriodNone},
		{"10:59", PeriodNone},
		{"00:00", PeriodNone},
		{"23:59", PeriodNone},
		{"", PeriodNone},
		{"noon", PeriodNone},
		{"12", PeriodNone},
	}

	for _, tt := range tests {
		if got := PeriodOf(tt.timeOfDay); got != tt.want {
			t.Errorf("PeriodOf(%q) = %q, want %q", tt.timeOfDay, got, tt.want)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusReserved, StatusDone, true},
		{StatusReserved, StatusCancelled, true},
		{StatusReserved, StatusReserved, false},
		{StatusDone, StatusReserved, false},
		{StatusDone, StatusCancelled, false},
		{StatusCancelled, StatusReserved, false},
		{StatusCancelled, StatusDone, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	if !StatusDone.IsTerminal() || !StatusCancelled.IsTerminal() {
		t.Error("done and cancelled are terminal")
	}
	if StatusReserved.IsTerminal() {
		t.Error("reserved is not terminal")
	}
	if !StatusReserved.IsValid() || !StatusDone.IsValid() || !StatusCancelled.IsValid() {
		t.Error("known statuses must be valid")
	}
	if Status("archived").IsValid() {
		t.Error("unknown status must be invalid")
	}
}

func TestReservationHelpers(t *testing.T) {
	res := &Reservation{
		Time:   "12:00",
		Rooms:  []string{"B1", "A1"},
		Status: StatusReserved,
	}

	if !res.IsActive() {
		t.Error("reserved entries are active")
	}
	if res.Period() != PeriodLunch {
		t.Errorf("expected lunch, got %s", res.Period())
	}
	if !res.HoldsRoom("A1") || res.HoldsRoom("B2") {
		t.Error("HoldsRoom must match the assigned rooms exactly")
	}

	res.Status = StatusCancelled
	if res.IsActive() {
		t.Error("cancelled entries are not active")
	}
}
