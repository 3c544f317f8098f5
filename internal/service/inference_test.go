package service

import (
	"testing"

	"smartcharge/internal/models"
)

func TestInferStatus(t *testing.T) {
	tests := []struct {
		name    string
		current *float64
		voltage *float64
		want    *models.StationStatus
	}{
		{"charging current", fptr(5), nil, statusPtr(models.StationOccupied)},
		{"charging current overrides low voltage", fptr(5), fptr(50), statusPtr(models.StationOccupied)},
		{"idle with healthy voltage", nil, fptr(230), statusPtr(models.StationAvailable)},
		{"trickle current with healthy voltage", fptr(0.3), fptr(230), statusPtr(models.StationAvailable)},
		{"mid current with healthy voltage is inconclusive", fptr(0.7), fptr(230), nil},
		{"low voltage faults", nil, fptr(50), statusPtr(models.StationFault)},
		{"zero voltage faults", nil, fptr(0), statusPtr(models.StationFault)},
		{"boundary voltage is inconclusive", nil, fptr(100), nil},
		{"boundary current is not occupied", fptr(1), fptr(230), nil},
		{"no readings", nil, nil, nil},
		{"negative calibration current with healthy voltage", fptr(-2), fptr(230), statusPtr(models.StationAvailable)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferStatus(tt.current, tt.voltage)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("InferStatus() = %v, want %v", got, tt.want)
			}
			if got != nil && *got != *tt.want {
				t.Fatalf("InferStatus() = %s, want %s", *got, *tt.want)
			}
		})
	}
}
