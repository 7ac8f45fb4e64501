package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"seoulier/pkg/logger"
	"seoulier/pkg/model"
)

var (
	timeRegex  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	phoneRegex = regexp.MustCompile(`^010-\d{4}-\d{4}$`)
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// ReservationValidator checks reservation input against the field rules
// and the fixed room/seat/confirmer catalogs. When requirePhone is set the
// deployment demands a contact number on every active reservation.
type ReservationValidator struct {
	validate     *validator.Validate
	logger       *logger.Logger
	requirePhone bool
}

func NewReservationValidator(log *logger.Logger, requirePhone bool) *ReservationValidator {
	v := validator.New()

	registrations := map[string]validator.Func{
		"resdate":          validateDate,
		"restime":          validateTime,
		"resphone":         validatePhone,
		"rooms_catalog":    validateRooms,
		"seats_catalog":    validateSeats,
		"confirmer_roster": validateConfirmer,
	}
	for tag, fn := range registrations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatal("Failed to register validator", "tag", tag, "error", err)
		}
	}

	log.Info("Reservation validator initialized", "require_phone", requirePhone)

	return &ReservationValidator{
		validate:     v,
		logger:       log,
		requirePhone: requirePhone,
	}
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func validateTime(fl validator.FieldLevel) bool {
	return timeRegex.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateRooms(fl validator.FieldLevel) bool {
	rooms, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	for _, room := range rooms {
		if !model.IsRoom(room) {
			return false
		}
	}
	return true
}

func validateSeats(fl validator.FieldLevel) bool {
	seats, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	for _, seat := range seats {
		if !model.IsSeat(seat) {
			return false
		}
	}
	return true
}

func validateConfirmer(fl validator.FieldLevel) bool {
	return model.IsConfirmer(fl.Field().String())
}

func (v *ReservationValidator) Validate(res *model.Reservation) error {
	if err := v.validate.Struct(res); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if v.requirePhone && res.Phone == "" {
		return ValidationErrors{
			ValidationError{
				Field:   "Phone",
				Message: "phone is required",
			},
		}
	}

	return nil
}

func (v *ReservationValidator) ValidateUpdate(updates *model.ReservationUpdate) error {
	if err := v.validate.Struct(updates); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func (v *ReservationValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, 0, len(errs))
	for _, fe := range errs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "resdate":
		return "must be a calendar date in YYYY-MM-DD format"
	case "restime":
		return "must be a time of day in HH:MM format"
	case "resphone":
		return "must be a contact number in 010-XXXX-XXXX format"
	case "rooms_catalog":
		return fmt.Sprintf("must only contain rooms from the catalog %v", model.Rooms)
	case "seats_catalog":
		return fmt.Sprintf("must only contain seats from the catalog %v", model.Seats)
	case "confirmer_roster":
		return "must be a staff member from the confirmer roster"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation rule '%s'", fe.Tag())
	}
}
