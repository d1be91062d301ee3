package dto

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"trailfit_backend/internal/models"
)

// UploadForm - необязательные поля multipart-формы в том виде, как они пришли.
// Пустая строка означает, что поле не передано.
type UploadForm struct {
	SessionType      string `form:"session_type"`
	RaceName         string `form:"race_name"`
	Notes            string `form:"notes"`
	FatigueLevel     string `form:"fatigue_level"`
	GeneralSensation string `form:"general_sensation"`
	SleepQuality     string `form:"sleep_quality"`
	HydrationStatus  string `form:"hydration_status"`
	WeatherCondition string `form:"weather_condition"`
	TrailCondition   string `form:"trail_condition"`
}

// UploadMetadata - типизированные метаданные тренировки после разбора формы
type UploadMetadata struct {
	SessionType      *string `form:"session_type" validate:"omitempty,is-session-type"`
	RaceName         *string `form:"race_name"`
	Notes            *string `form:"notes"`
	FatigueLevel     *int    `form:"fatigue_level" validate:"omitempty,min=1,max=5"`
	GeneralSensation *int    `form:"general_sensation" validate:"omitempty,min=1,max=5"`
	SleepQuality     *int    `form:"sleep_quality" validate:"omitempty,min=1,max=5"`
	HydrationStatus  *string `form:"hydration_status" validate:"omitempty,is-hydration-status"`
	WeatherCondition *string `form:"weather_condition" validate:"omitempty,is-weather-condition"`
	TrailCondition   *string `form:"trail_condition" validate:"omitempty,is-trail-condition"`
}

// Metadata разбирает строки формы. Возвращает карту ошибок по полям для нечисловых значений.
func (f UploadForm) Metadata() (*UploadMetadata, map[string]string) {
	errs := map[string]string{}
	parseLevel := func(field, raw string) *int {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs[field] = fmt.Sprintf("Must be an integer, got %q", raw)
			return nil
		}
		return &n
	}

	m := &UploadMetadata{
		SessionType:      optional(f.SessionType),
		RaceName:         optional(f.RaceName),
		Notes:            optional(f.Notes),
		FatigueLevel:     parseLevel("fatigue_level", f.FatigueLevel),
		GeneralSensation: parseLevel("general_sensation", f.GeneralSensation),
		SleepQuality:     parseLevel("sleep_quality", f.SleepQuality),
		HydrationStatus:  optional(f.HydrationStatus),
		WeatherCondition: optional(f.WeatherCondition),
		TrailCondition:   optional(f.TrailCondition),
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return m, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// UploadRequest - входные данные сервиса загрузки
type UploadRequest struct {
	UserID      uint
	Filename    string
	ContentType string
	File        io.Reader
	Metadata    UploadMetadata
}

// UploadResponse - запись о загрузке
type UploadResponse struct {
	ID               uint                     `json:"id"`
	UserID           uint                     `json:"user_id"`
	Filename         string                   `json:"filename"`
	FilePath         string                   `json:"filepath"`
	UploadDate       time.Time                `json:"upload_date"`
	SessionType      *models.SessionType      `json:"session_type"`
	RaceName         *string                  `json:"race_name"`
	Notes            *string                  `json:"notes"`
	FatigueLevel     *int                     `json:"fatigue_level"`
	GeneralSensation *int                     `json:"general_sensation"`
	SleepQuality     *int                     `json:"sleep_quality"`
	HydrationStatus  *models.HydrationStatus  `json:"hydration_status"`
	WeatherCondition *models.WeatherCondition `json:"weather_condition"`
	TrailCondition   *models.TrailCondition   `json:"trail_condition"`
}

func NewUploadResponse(u *models.Upload) *UploadResponse {
	return &UploadResponse{
		ID:               u.ID,
		UserID:           u.UserID,
		Filename:         u.Filename,
		FilePath:         u.FilePath,
		UploadDate:       u.UploadDate,
		SessionType:      u.SessionType,
		RaceName:         u.RaceName,
		Notes:            u.Notes,
		FatigueLevel:     u.FatigueLevel,
		GeneralSensation: u.GeneralSensation,
		SleepQuality:     u.SleepQuality,
		HydrationStatus:  u.HydrationStatus,
		WeatherCondition: u.WeatherCondition,
		TrailCondition:   u.TrailCondition,
	}
}

func NewUploadListResponse(uploads []models.Upload) []*UploadResponse {
	out := make([]*UploadResponse, 0, len(uploads))
	for i := range uploads {
		out = append(out, NewUploadResponse(&uploads[i]))
	}
	return out
}
