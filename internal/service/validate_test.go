package service

import "testing"

func TestValidateTelemetryPayloadRanges(t *testing.T) {
	tests := []struct {
		name      string
		payload   TelemetryPayload
		badFields []string
	}{
		{"empty payload is valid", TelemetryPayload{}, nil},
		{"all fields in range", TelemetryPayload{
			Voltage:     fptr(230),
			Current:     fptr(16),
			Power:       fptr(3.7),
			Temperature: fptr(25),
			PVPower:     fptr(1200),
			BattVoltage: fptr(48),
		}, nil},
		{"voltage above range", TelemetryPayload{Voltage: fptr(600)}, []string{"voltage"}},
		{"voltage below range", TelemetryPayload{Voltage: fptr(-1)}, []string{"voltage"}},
		{"current below range", TelemetryPayload{Current: fptr(-11)}, []string{"current"}},
		{"temperature above range", TelemetryPayload{Temperature: fptr(150)}, []string{"temperature"}},
		{"battVoltage above range", TelemetryPayload{BattVoltage: fptr(61)}, []string{"battVoltage"}},
		{"multiple violations reported together", TelemetryPayload{
			Voltage: fptr(600),
			Current: fptr(300),
			PVPower: fptr(-5),
		}, []string{"voltage", "current", "pvPower"}},
		{"unknown status", TelemetryPayload{Status: sptr("CHARGING")}, []string{"status"}},
		{"known status", TelemetryPayload{Status: sptr("MAINTENANCE")}, nil},
		{"range boundaries are inclusive", TelemetryPayload{
			Voltage: fptr(500),
			Current: fptr(-10),
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := ValidateTelemetryPayload(tt.payload)
			if len(fields) != len(tt.badFields) {
				t.Fatalf("got %d field errors %v, want %d", len(fields), fields, len(tt.badFields))
			}
			for i, want := range tt.badFields {
				if fields[i].Field != want {
					t.Fatalf("field error %d = %s, want %s", i, fields[i].Field, want)
				}
			}
		})
	}
}
