package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherdash.app/pkg/validation"
)

// RegisterValidators adds the units, view and direction tags to gin's validator
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	validators := map[string]func(string) bool{
		"units":     validation.IsValidUnits,
		"view":      validation.IsValidView,
		"direction": validation.IsValidDirection,
	}
	for tag, fn := range validators {
		fn := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		}); err != nil {
			return err
		}
	}
	return nil
}
