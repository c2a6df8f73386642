package service

import (
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once

	slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Lowercase letters, digits and hyphens, the URL-safe group handle
		validate.RegisterValidation("group_slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})
		// Anything the tz database can resolve
		validate.RegisterValidation("iana_tz", func(fl validator.FieldLevel) bool {
			_, err := time.LoadLocation(fl.Field().String())
			return err == nil
		})
	})
}
