package handlers

import (
	"food-marketplace-api/auth"
	"food-marketplace-api/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations wires custom binding rules into gin's validator.
// "role" and "orderstatus" reject any value outside their closed enums
// at the boundary.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := auth.ParseRole(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
		_, err := models.ParseOrderStatus(fl.Field().String())
		return err == nil
	})
}
