package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"smartcharge/internal/models"
	"smartcharge/internal/repository"
)

const testUserID = "6f1e1b9a-0a50-4a6d-9a3c-6a3f6c1d2e4b"

func newReservationFixture(existing ...models.Reservation) *ReservationService {
	stations := newFakeStationStore(availableStation(1))
	users := newFakeUserStore(&models.User{ID: testUserID, Email: "driver@example.com"})
	store := &fakeReservationStore{existing: existing}
	return NewReservationService(stations, users, store, zap.NewNop())
}

func slot(hour, minute int) time.Time {
	return time.Date(2026, 3, 14, hour, minute, 0, 0, time.UTC)
}

func existingSlot() models.Reservation {
	return models.Reservation{
		ID:        1,
		UserID:    testUserID,
		StationID: 1,
		StartTime: slot(10, 0),
		EndTime:   slot(11, 0),
		Status:    models.ReservationPending,
	}
}

func TestReservationOverlapScenarios(t *testing.T) {
	tests := []struct {
		name         string
		start, end   time.Time
		wantConflict bool
	}{
		{"fully inside existing", slot(10, 30), slot(10, 45), true},
		{"partial overlap at start", slot(9, 30), slot(10, 30), true},
		{"ends exactly at existing start", slot(9, 0), slot(10, 0), false},
		{"starts exactly at existing end", slot(11, 0), slot(12, 0), false},
		{"contains existing entirely", slot(9, 0), slot(12, 0), true},
		{"well clear of existing", slot(13, 0), slot(14, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newReservationFixture(existingSlot())

			res, err := svc.Create(context.Background(), ReservationInput{
				UserID:    testUserID,
				StationID: 1,
				StartTime: tt.start,
				EndTime:   tt.end,
			})

			if tt.wantConflict {
				if !errors.Is(err, repository.ErrReservationConflict) {
					t.Fatalf("expected conflict, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected acceptance, got %v", err)
			}
			if res.Status != models.ReservationPending {
				t.Fatalf("new reservation must be PENDING, got %s", res.Status)
			}
		})
	}
}

func TestReservationTerminalStatesNeverConflict(t *testing.T) {
	cancelled := existingSlot()
	cancelled.Status = models.ReservationCancelled
	svc := newReservationFixture(cancelled)

	_, err := svc.Create(context.Background(), ReservationInput{
		UserID:    testUserID,
		StationID: 1,
		StartTime: slot(10, 15),
		EndTime:   slot(10, 45),
	})
	if err != nil {
		t.Fatalf("cancelled reservation must not block the slot: %v", err)
	}
}

func TestReservationRejectsInvertedInterval(t *testing.T) {
	svc := newReservationFixture(existingSlot())

	_, err := svc.Create(context.Background(), ReservationInput{
		UserID:    testUserID,
		StationID: 1,
		StartTime: slot(12, 0),
		EndTime:   slot(11, 0),
	})

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("inverted interval must fail validation regardless of existing reservations, got %v", err)
	}

	// Equal endpoints are just as malformed.
	_, err = svc.Create(context.Background(), ReservationInput{
		UserID:    testUserID,
		StationID: 1,
		StartTime: slot(12, 0),
		EndTime:   slot(12, 0),
	})
	if !errors.As(err, &validation) {
		t.Fatalf("zero-length interval must fail validation, got %v", err)
	}
}

func TestReservationRejectsUnavailableStation(t *testing.T) {
	for _, status := range []models.StationStatus{models.StationMaintenance, models.StationFault} {
		station := availableStation(1)
		station.Status = status
		stations := newFakeStationStore(station)
		users := newFakeUserStore(&models.User{ID: testUserID})
		svc := NewReservationService(stations, users, &fakeReservationStore{}, zap.NewNop())

		_, err := svc.Create(context.Background(), ReservationInput{
			UserID:    testUserID,
			StationID: 1,
			StartTime: slot(10, 0),
			EndTime:   slot(11, 0),
		})
		if !errors.Is(err, ErrStationUnavailable) {
			t.Fatalf("status %s: expected station unavailable, got %v", status, err)
		}
	}
}

func TestReservationUnknownStationAndUser(t *testing.T) {
	svc := newReservationFixture()

	_, err := svc.Create(context.Background(), ReservationInput{
		UserID:    testUserID,
		StationID: 42,
		StartTime: slot(10, 0),
		EndTime:   slot(11, 0),
	})
	if !errors.Is(err, repository.ErrStationNotFound) {
		t.Fatalf("expected station not found, got %v", err)
	}

	_, err = svc.Create(context.Background(), ReservationInput{
		UserID:    "bd5cbd69-0000-0000-0000-000000000000",
		StationID: 1,
		StartTime: slot(10, 0),
		EndTime:   slot(11, 0),
	})
	if !errors.Is(err, repository.ErrUserNotFound) {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestReservationMalformedUserID(t *testing.T) {
	// Non-uuid ids must read as unknown users before the store is asked,
	// so they can never surface as internal failures.
	for _, userID := range []string{"abc", "42", "not-a-uuid"} {
		svc := newReservationFixture(existingSlot())

		_, err := svc.Create(context.Background(), ReservationInput{
			UserID:    userID,
			StationID: 1,
			StartTime: slot(13, 0),
			EndTime:   slot(14, 0),
		})
		if !errors.Is(err, repository.ErrUserNotFound) {
			t.Fatalf("userId %q: expected user not found, got %v", userID, err)
		}
	}
}
