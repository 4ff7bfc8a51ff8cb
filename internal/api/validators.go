package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/culina-app/backend/internal/types"
)

// RegisterValidators installs the custom binding rules on gin's validator.
// "recipecategory" accepts exactly the shared category enum, so request
// validation can never drift from the categories used elsewhere.
func RegisterValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("recipecategory", func(fl validator.FieldLevel) bool {
			return types.IsValidCategory(fl.Field().String())
		})
	}
}
