package validator

import (
	"strings"
	"testing"

	"seoulier/pkg/logger"
	"seoulier/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func validReservation() *model.Reservation {
	return &model.Reservation{
		Date:      "2026-03-14",
		Time:      "12:30",
		Adults:    4,
		Children:  1,
		Rooms:     []string{"B1"},
		Seats:     []string{"T3", "T4"},
		Name:      "Kim Minji",
		Phone:     "010-1234-5678",
		Confirmer: "김서울",
		Status:    model.StatusReserved,
	}
}

func TestValidate_AcceptsCompleteReservation(t *testing.T) {
	v := NewReservationValidator(testLogger(), false)

	if err := v.Validate(validReservation()); err != nil {
		t.Errorf("expected valid reservation, got: %v", err)
	}
}

func TestValidate_FieldRules(t *testing.T) {
	v := NewReservationValidator(testLogger(), false)

	tests := []struct {
		name     string
		mutate   func(r *model.Reservation)
		wantWord string
	}{
		{
			name:     "missing date",
			mutate:   func(r *model.Reservation) { r.Date = "" },
			wantWord: "Date",
		},
		{
			name:     "impossible calendar date",
			mutate:   func(r *model.Reservation) { r.Date = "2026-02-30" },
			wantWord: "Date",
		},
		{
			name:     "date wrong format",
			mutate:   func(r *model.Reservation) { r.Date = "14/03/2026" },
			wantWord: "Date",
		},
		{
			name:     "time out of range",
			mutate:   func(r *model.Reservation) { r.Time = "25:00" },
			wantWord: "Time",
		},
		{
			name:     "time missing minutes",
			mutate:   func(r *model.Reservation) { r.Time = "12" },
			wantWord: "Time",
		},
		{
			name:     "zero adults",
			mutate:   func(r *model.Reservation) { r.Adults = 0 },
			wantWord: "Adults",
		},
		{
			name:     "negative children",
			mutate:   func(r *model.Reservation) { r.Children = -1 },
			wantWord: "Children",
		},
		{
			name:     "room off catalog",
			mutate:   func(r *model.Reservation) { r.Rooms = []string{"C9"} },
			wantWord: "Rooms",
		},
		{
			name:     "seat off catalog",
			mutate:   func(r *model.Reservation) { r.Seats = []string{"T99"} },
			wantWord: "Seats",
		},
		{
			name:     "empty name",
			mutate:   func(r *model.Reservation) { r.Name = "" },
			wantWord: "Name",
		},
		{
			name:     "phone wrong shape",
			mutate:   func(r *model.Reservation) { r.Phone = "02-123-4567" },
			wantWord: "Phone",
		},
		{
			name:     "confirmer off roster",
			mutate:   func(r *model.Reservation) { r.Confirmer = "아무개" },
			wantWord: "Confirmer",
		},
		{
			name:     "unknown status",
			mutate:   func(r *model.Reservation) { r.Status = "archived" },
			wantWord: "Status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReservation()
			tt.mutate(r)

			err := v.Validate(r)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantWord) {
				t.Errorf("expected error mentioning %q, got: %v", tt.wantWord, err)
			}
		})
	}
}

func TestValidate_OptionalFieldsMayBeEmpty(t *testing.T) {
	v := NewReservationValidator(testLogger(), false)

	r := validReservation()
	r.Rooms = nil
	r.Seats = nil
	r.Phone = ""
	r.Confirmer = ""
	r.Children = 0

	if err := v.Validate(r); err != nil {
		t.Errorf("optional fields left empty must validate, got: %v", err)
	}
}

func TestValidate_RequirePhone(t *testing.T) {
	v := NewReservationValidator(testLogger(), true)

	r := validReservation()
	r.Phone = ""

	err := v.Validate(r)
	if err == nil {
		t.Fatal("expected missing phone to fail when phone is required")
	}
	if !strings.Contains(err.Error(), "Phone") {
		t.Errorf("expected error mentioning Phone, got: %v", err)
	}

	r.Phone = "010-9876-5432"
	if err := v.Validate(r); err != nil {
		t.Errorf("expected valid reservation with phone, got: %v", err)
	}
}

func TestValidateUpdate(t *testing.T) {
	v := NewReservationValidator(testLogger(), false)

	t.Run("empty update is valid", func(t *testing.T) {
		if err := v.ValidateUpdate(&model.ReservationUpdate{}); err != nil {
			t.Errorf("expected empty update to validate, got: %v", err)
		}
	})

	t.Run("bad date rejected", func(t *testing.T) {
		if err := v.ValidateUpdate(&model.ReservationUpdate{Date: "soon"}); err == nil {
			t.Error("expected bad date to fail")
		}
	})

	t.Run("off-catalog room rejected", func(t *testing.T) {
		rooms := []string{"Z1"}
		if err := v.ValidateUpdate(&model.ReservationUpdate{Rooms: &rooms}); err == nil {
			t.Error("expected off-catalog room to fail")
		}
	})

	t.Run("valid partial update", func(t *testing.T) {
		adults := 6
		phone := "010-2222-3333"
		err := v.ValidateUpdate(&model.ReservationUpdate{
			Time:   "19:00",
			Adults: &adults,
			Phone:  &phone,
		})
		if err != nil {
			t.Errorf("expected valid update, got: %v", err)
		}
	})
}
