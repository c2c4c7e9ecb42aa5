package service

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/astralune/trackstar/pkg/dateutil"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("day_id", func(fl validator.FieldLevel) bool {
			// Strict YYYY-MM-DD only; lexical order must equal date order
			_, err := dateutil.ParseDayID(fl.Field().String())
			return err == nil
		})
	})
}
