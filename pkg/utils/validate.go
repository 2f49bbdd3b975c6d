package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	err := validate.RegisterValidation("equipment_status", validateEquipmentStatus)
	if err != nil {
		return
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateEquipmentStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	validStatuses := []string{"Available", "In Storage", "In Use", "Under Repair", "Retired"}

	for _, validStatus := range validStatuses {
		if status == validStatus {
			return true
		}
	}
	return false
}
