package models

type Gender string
type SessionType string
type HydrationStatus string
type WeatherCondition string
type TrailCondition string

const (
	GenderMale           Gender = "male"
	GenderFemale         Gender = "female"
	GenderOther          Gender = "other"
	GenderPreferNotToSay Gender = "prefer_not_to_say"

	SessionTypeRace     SessionType = "race"
	SessionTypeTraining SessionType = "training"
	SessionTypeRecovery SessionType = "recovery"

	HydrationWellHydrated     HydrationStatus = "well_hydrated"
	HydrationMildlyDehydrated HydrationStatus = "mildly_dehydrated"
	HydrationUncertain        HydrationStatus = "uncertain"

	WeatherSunny  WeatherCondition = "sunny"
	WeatherCloudy WeatherCondition = "cloudy"
	WeatherRain   WeatherCondition = "rain"
	WeatherFog    WeatherCondition = "fog"
	WeatherSnow   WeatherCondition = "snow"
	WeatherWindy  WeatherCondition = "windy"

	TrailDry   TrailCondition = "dry"
	TrailMuddy TrailCondition = "muddy"
	TrailIcy   TrailCondition = "icy"
	TrailRocky TrailCondition = "rocky"
	TrailMixed TrailCondition = "mixed"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderPreferNotToSay:
		return true
	}
	return false
}

func (s SessionType) IsValid() bool {
	switch s {
	case SessionTypeRace, SessionTypeTraining, SessionTypeRecovery:
		return true
	}
	return false
}

func (h HydrationStatus) IsValid() bool {
	switch h {
	case HydrationWellHydrated, HydrationMildlyDehydrated, HydrationUncertain:
		return true
	}
	return false
}

func (w WeatherCondition) IsValid() bool {
	switch w {
	case WeatherSunny, WeatherCloudy, WeatherRain, WeatherFog, WeatherSnow, WeatherWindy:
		return true
	}
	return false
}

func (t TrailCondition) IsValid() bool {
	switch t {
	case TrailDry, TrailMuddy, TrailIcy, TrailRocky, TrailMixed:
		return true
	}
	return false
}
