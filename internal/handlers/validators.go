package handlers

import (
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"peoplebook/internal/models"
)

// RegisterValidators installs the custom binding rules the request DTOs
// rely on. Must be called once before the router serves traffic.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Report json field names instead of Go field names in violations
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Let the standard rules (required etc.) see models.Date as a time.Time
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if date, ok := field.Interface().(models.Date); ok {
			return date.Time
		}
		return nil
	}, models.Date{})

	// pastdate: the calendar date must be strictly before today
	v.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		t, ok := fl.Field().Interface().(time.Time)
		if !ok {
			return false
		}
		return models.Date{Time: t}.Before(models.Today())
	})
}
