package models

import "time"

// CommandType is a remote instruction a device understands.
type CommandType string

const (
	CommandStart  CommandType = "START"
	CommandStop   CommandType = "STOP"
	CommandReboot CommandType = "REBOOT"
)

// Valid reports whether the command type is known.
func (t CommandType) Valid() bool {
	switch t {
	case CommandStart, CommandStop, CommandReboot:
		return true
	}
	return false
}

// CommandStatus tracks delivery of a queued command. Transitions are
// one-directional: PENDING -> SENT -> ACKNOWLEDGED. ACKNOWLEDGED is reserved
// for a future device ack endpoint; nothing sets it today.
type CommandStatus string

const (
	CommandPending      CommandStatus = "PENDING"
	CommandSent         CommandStatus = "SENT"
	CommandAcknowledged CommandStatus = "ACKNOWLEDGED"
)

// Valid reports whether the command status is known.
func (s CommandStatus) Valid() bool {
	switch s {
	case CommandPending, CommandSent, CommandAcknowledged:
		return true
	}
	return false
}

// Command is one queued remote instruction for a station. Delivery is
// pull-based: the oldest PENDING command is claimed when the device polls.
type Command struct {
	ID        int64         `db:"id" json:"id"`
	StationID int64         `db:"station_id" json:"stationId"`
	Type      CommandType   `db:"command" json:"command"`
	Payload   *string       `db:"payload" json:"payload,omitempty"`
	Status    CommandStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
	SentAt    *time.Time    `db:"sent_at" json:"sentAt,omitempty"`
}
