package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/lifeflow/pkg/entity"
)

var (
	validate *validator.Validate
	once     sync.Once
)

var ErrValidation = errors.New("validation error")

// InitValidator registers the custom tags once. Safe to call repeatedly.
func InitValidator() {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report json names so messages match the request body
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		validate.RegisterValidation("username", validUsername)
		validate.RegisterValidation("habit_type", func(fl validator.FieldLevel) bool {
			return entity.HabitType(fl.Field().String()).Valid()
		})
		validate.RegisterValidation("streak_mode", func(fl validator.FieldLevel) bool {
			return entity.StreakMode(fl.Field().String()).Valid()
		})
	})
}

// validUsername accepts letters, digits and underscores, starting with a letter.
func validUsername(fl validator.FieldLevel) bool {
	for i, char := range fl.Field().String() {
		if i == 0 && !unicode.IsLetter(char) {
			return false
		}
		if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
			return false
		}
	}
	return true
}

// validateStruct joins every field error under ErrValidation.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.New("validation unexpected error: " + err.Error())
	}
	errs := []error{ErrValidation}
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			errs = append(errs, fmt.Errorf("%s: must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		errs = append(errs, fmt.Errorf("%s: must satisfy %s", fe.Field(), fe.Tag()))
	}
	return errors.Join(errs...)
}
