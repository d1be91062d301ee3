package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, GenderPreferNotToSay.IsValid())
	assert.False(t, Gender("unknown").IsValid())

	assert.True(t, SessionTypeTraining.IsValid())
	assert.False(t, SessionType("Training").IsValid())

	assert.True(t, HydrationMildlyDehydrated.IsValid())
	assert.False(t, HydrationStatus("").IsValid())

	assert.True(t, WeatherWindy.IsValid())
	assert.False(t, WeatherCondition("hail").IsValid())

	assert.True(t, TrailMixed.IsValid())
	assert.False(t, TrailCondition("sandy").IsValid())
}
