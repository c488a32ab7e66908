package utils

import (
	"main/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("characterpath", ValidateCharacterPathRule)
		v.RegisterValidation("mood", ValidateMoodRule)
	}
}

func ValidateCharacterPathRule(fl validator.FieldLevel) bool {
	return model.CharacterPath(fl.Field().String()).IsValid()
}

func ValidateMoodRule(fl validator.FieldLevel) bool {
	return model.Mood(fl.Field().String()).IsValid()
}
