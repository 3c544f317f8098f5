package service

import "smartcharge/internal/models"

// InferStatus derives a station status from raw sensor readings, or nil when
// the sample is inconclusive. Rule order is load-bearing: the current-based
// OCCUPIED rule is checked first and short-circuits the voltage rules, so a
// charging station with sagging voltage still reads OCCUPIED, not FAULT.
func InferStatus(current, voltage *float64) *models.StationStatus {
	if current != nil && *current > 1 {
		return statusPtr(models.StationOccupied)
	}
	if voltage != nil && *voltage > 100 && (current == nil || *current < 0.5) {
		return statusPtr(models.StationAvailable)
	}
	if voltage != nil && *voltage < 100 {
		return statusPtr(models.StationFault)
	}
	return nil
}

func statusPtr(s models.StationStatus) *models.StationStatus {
	return &s
}
