package model

import (
	"strconv"
	"strings"
	"time"
)

type Status string

const (
	StatusReserved  Status = "reserved"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
)

// IsTerminal reports whether no further status transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

func (s Status) IsValid() bool {
	return s == StatusReserved || s == StatusDone || s == StatusCancelled
}

// CanTransitionTo reports whether the status machine permits moving to next.
// The only transitions are reserved -> done and reserved -> cancelled.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusReserved && next.IsTerminal()
}

type MealPeriod string

const (
	PeriodLunch  MealPeriod = "lunch"
	PeriodDinner MealPeriod = "dinner"
	PeriodNone   MealPeriod = ""
)

// PeriodOf derives the meal period from an HH:MM time string.
// Hours [11,15) classify as lunch, [17,21) as dinner, anything else
// (including unparseable input) has no period.
func PeriodOf(timeOfDay string) MealPeriod {
	hh, _, ok := strings.Cut(timeOfDay, ":")
	if !ok {
		return PeriodNone
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return PeriodNone
	}
	switch {
	case hour >= 11 && hour < 15:
		return PeriodLunch
	case hour >= 17 && hour < 21:
		return PeriodDinner
	default:
		return PeriodNone
	}
}

type Reservation struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Date      string    `json:"date" bson:"date" validate:"required,resdate"`
	Time      string    `json:"time" bson:"time" validate:"required,restime"`
	Adults    int       `json:"adults" bson:"adults" validate:"min=1"`
	Children  int       `json:"children" bson:"children" validate:"min=0"`
	Rooms     []string  `json:"room" bson:"room" validate:"omitempty,rooms_catalog"`
	Seats     []string  `json:"seat" bson:"seat" validate:"omitempty,seats_catalog"`
	Name      string    `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Phone     string    `json:"phone" bson:"phone" validate:"omitempty,resphone"`
	Confirmer string    `json:"confirmer,omitempty" bson:"confirmer,omitempty" validate:"omitempty,confirmer_roster"`
	Memo      string    `json:"memo,omitempty" bson:"memo,omitempty" validate:"omitempty,max=500"`
	Status    Status    `json:"status" bson:"status" validate:"required,oneof=reserved done cancelled"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// IsActive reports whether the reservation still occupies its slot.
// Only reserved entries participate in room-conflict checks and summaries.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusReserved
}

// Period derives the meal period from the reservation's own time.
func (r *Reservation) Period() MealPeriod {
	return PeriodOf(r.Time)
}

// HoldsRoom reports whether the reservation has the given room assigned.
func (r *Reservation) HoldsRoom(room string) bool {
	for _, held := range r.Rooms {
		if held == room {
			return true
		}
	}
	return false
}

// ReservationUpdate carries a partial edit. String fields use the empty
// string for "not provided"; pointer fields distinguish clearing a value
// from leaving it untouched.
type ReservationUpdate struct {
	Date      string    `json:"date,omitempty" validate:"omitempty,resdate"`
	Time      string    `json:"time,omitempty" validate:"omitempty,restime"`
	Adults    *int      `json:"adults,omitempty" validate:"omitempty,min=1"`
	Children  *int      `json:"children,omitempty" validate:"omitempty,min=0"`
	Rooms     *[]string `json:"room,omitempty" validate:"omitempty,rooms_catalog"`
	Seats     *[]string `json:"seat,omitempty" validate:"omitempty,seats_catalog"`
	Name      string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone     *string   `json:"phone,omitempty" validate:"omitempty,resphone"`
	Confirmer *string   `json:"confirmer,omitempty" validate:"omitempty,confirmer_roster"`
	Memo      *string   `json:"memo,omitempty" validate:"omitempty,max=500"`
	Status    Status    `json:"status,omitempty" validate:"omitempty,oneof=reserved done cancelled"`
}
