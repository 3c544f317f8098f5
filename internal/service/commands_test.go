package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"smartcharge/internal/models"
	"smartcharge/internal/repository"
)

func TestEnqueueRejectsUnknownType(t *testing.T) {
	svc := NewCommandService(newFakeStationStore(availableStation(1)), &fakeCommandStore{}, zap.NewNop())

	_, err := svc.Enqueue(context.Background(), 1, "SELF_DESTRUCT", nil)

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if validation.Fields[0].Field != "command" {
		t.Fatalf("unexpected field: %v", validation.Fields)
	}
}

func TestEnqueueUnknownStation(t *testing.T) {
	svc := NewCommandService(newFakeStationStore(), &fakeCommandStore{}, zap.NewNop())

	_, err := svc.Enqueue(context.Background(), 42, "START", nil)
	if !errors.Is(err, repository.ErrStationNotFound) {
		t.Fatalf("expected station not found, got %v", err)
	}
}

func TestEnqueueCreatesPendingCommand(t *testing.T) {
	store := &fakeCommandStore{}
	svc := NewCommandService(newFakeStationStore(availableStation(1)), store, zap.NewNop())

	cmd, err := svc.Enqueue(context.Background(), 1, "reboot", sptr("delay=5"))
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if cmd.Type != models.CommandReboot {
		t.Fatalf("expected type normalized to REBOOT, got %s", cmd.Type)
	}
	if cmd.Status != models.CommandPending {
		t.Fatalf("new command must be PENDING, got %s", cmd.Status)
	}
	if cmd.ID == 0 {
		t.Fatalf("command id not assigned")
	}
	if cmd.Payload == nil || *cmd.Payload != "delay=5" {
		t.Fatalf("payload not preserved: %v", cmd.Payload)
	}
}

func TestRecentRequiresStation(t *testing.T) {
	svc := NewCommandService(newFakeStationStore(), &fakeCommandStore{}, zap.NewNop())

	_, err := svc.Recent(context.Background(), 42)
	if !errors.Is(err, repository.ErrStationNotFound) {
		t.Fatalf("expected station not found, got %v", err)
	}
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	store := &fakeCommandStore{}
	svc := NewCommandService(newFakeStationStore(availableStation(1)), store, zap.NewNop())

	ctx := context.Background()
	for _, cmdType := range []models.CommandType{models.CommandStart, models.CommandStop} {
		if err := store.Create(ctx, &models.Command{StationID: 1, Type: cmdType}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	commands, err := svc.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(commands))
	}
	if commands[0].Type != models.CommandStop || commands[1].Type != models.CommandStart {
		t.Fatalf("expected newest first, got %s then %s", commands[0].Type, commands[1].Type)
	}
}
