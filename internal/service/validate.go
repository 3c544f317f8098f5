package service

import (
	"fmt"

	"smartcharge/internal/models"
)

// TelemetryPayload is the JSON body a device posts on each poll. All sensor
// fields are optional; present values are range-checked before anything is
// persisted.
type TelemetryPayload struct {
	Voltage     *float64 `json:"voltage"`     // V
	Current     *float64 `json:"current"`     // A, negative reserved for calibration
	Power       *float64 `json:"power"`       // kW
	Temperature *float64 `json:"temperature"` // °C
	PVPower     *float64 `json:"pvPower"`     // W, solar-assisted installs
	BattVoltage *float64 `json:"battVoltage"` // V, solar-assisted installs
	Status      *string  `json:"status"`
	DeviceID    *string  `json:"deviceId"`
}

type fieldRange struct {
	name  string
	value *float64
	min   float64
	max   float64
}

// ValidateTelemetryPayload range-checks every present field and returns the
// full list of violations, one entry per bad field.
func ValidateTelemetryPayload(p TelemetryPayload) []FieldError {
	ranges := []fieldRange{
		{"voltage", p.Voltage, 0, 500},
		{"current", p.Current, -10, 200},
		{"power", p.Power, -10, 100},
		{"temperature", p.Temperature, -40, 100},
		{"pvPower", p.PVPower, 0, 10000},
		{"battVoltage", p.BattVoltage, 0, 60},
	}

	var fields []FieldError
	for _, r := range ranges {
		if r.value == nil {
			continue
		}
		if *r.value < r.min || *r.value > r.max {
			fields = append(fields, FieldError{
				Field:  r.name,
				Reason: fmt.Sprintf("must be between %g and %g", r.min, r.max),
			})
		}
	}

	if p.Status != nil {
		if !models.StationStatus(*p.Status).Valid() {
			fields = append(fields, FieldError{
				Field:  "status",
				Reason: "must be one of AVAILABLE, OCCUPIED, RESERVED, MAINTENANCE, FAULT",
			})
		}
	}

	return fields
}

// ExplicitStatus returns the caller-supplied status, if any. Call only after
// validation has passed.
func (p TelemetryPayload) ExplicitStatus() *models.StationStatus {
	if p.Status == nil {
		return nil
	}
	s := models.StationStatus(*p.Status)
	return &s
}
