package validator

import (
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"

	"trailfit_backend/internal/models"
)

var allowedValues = map[string][]string{
	"is-gender": {
		string(models.GenderMale), string(models.GenderFemale),
		string(models.GenderOther), string(models.GenderPreferNotToSay),
	},
	"is-session-type": {
		string(models.SessionTypeRace), string(models.SessionTypeTraining), string(models.SessionTypeRecovery),
	},
	"is-hydration-status": {
		string(models.HydrationWellHydrated), string(models.HydrationMildlyDehydrated), string(models.HydrationUncertain),
	},
	"is-weather-condition": {
		string(models.WeatherSunny), string(models.WeatherCloudy), string(models.WeatherRain),
		string(models.WeatherFog), string(models.WeatherSnow), string(models.WeatherWindy),
	},
	"is-trail-condition": {
		string(models.TrailDry), string(models.TrailMuddy), string(models.TrailIcy),
		string(models.TrailRocky), string(models.TrailMixed),
	},
}

// registerCustomRules регистрирует кастомные правила на основе statuses.go
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("max-bytes", maxBytes)
	mustRegister("is-gender", enumRule(func(s string) bool { return models.Gender(s).IsValid() }))
	mustRegister("is-session-type", enumRule(func(s string) bool { return models.SessionType(s).IsValid() }))
	mustRegister("is-hydration-status", enumRule(func(s string) bool { return models.HydrationStatus(s).IsValid() }))
	mustRegister("is-weather-condition", enumRule(func(s string) bool { return models.WeatherCondition(s).IsValid() }))
	mustRegister("is-trail-condition", enumRule(func(s string) bool { return models.TrailCondition(s).IsValid() }))
}

// maxBytes ограничивает длину строки в байтах, а не в рунах (max считает руны)
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("max-bytes: bad param %q", fl.Param()))
	}
	return len(fl.Field().String()) <= limit
}

// enumRule пропускает пустые значения: для них есть 'required'.
func enumRule(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		return valid(value)
	}
}
