package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"smartcharge/internal/models"
)

const (
	routingKeyTelemetry = "telemetry.accepted"
	routingKeyStatus    = "station.status_changed"
)

// Publisher fans accepted telemetry and status changes out to a RabbitMQ
// topic exchange for downstream consumers (analytics, alerting).
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *zap.Logger
}

// NewPublisher dials RabbitMQ and declares the exchange.
func NewPublisher(url, exchange string, logger *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("events: open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("events: declare exchange: %w", err)
	}

	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// TelemetryEvent mirrors the stored sample for downstream consumers.
type TelemetryEvent struct {
	StationID   int64     `json:"stationId"`
	SampleID    int64     `json:"sampleId"`
	Voltage     *float64  `json:"voltage,omitempty"`
	Current     *float64  `json:"current,omitempty"`
	Power       *float64  `json:"power,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	PVPower     *float64  `json:"pvPower,omitempty"`
	BattVoltage *float64  `json:"battVoltage,omitempty"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// StatusEvent announces a derived or explicit status change.
type StatusEvent struct {
	StationID int64                `json:"stationId"`
	Status    models.StationStatus `json:"status"`
	At        time.Time            `json:"at"`
}

// TelemetryAccepted publishes one stored sample.
func (p *Publisher) TelemetryAccepted(ctx context.Context, sample *models.TelemetrySample) error {
	event := TelemetryEvent{
		StationID:   sample.StationID,
		SampleID:    sample.ID,
		Voltage:     sample.Voltage,
		Current:     sample.Current,
		Power:       sample.Power,
		Temperature: sample.Temperature,
		PVPower:     sample.PVPower,
		BattVoltage: sample.BattVoltage,
		RecordedAt:  sample.RecordedAt,
	}
	return p.publish(ctx, routingKeyTelemetry, event)
}

// StatusChanged publishes a station status transition.
func (p *Publisher) StatusChanged(ctx context.Context, stationID int64, status models.StationStatus) error {
	event := StatusEvent{
		StationID: stationID,
		Status:    status,
		At:        time.Now().UTC(),
	}
	return p.publish(ctx, routingKeyStatus, event)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("events: marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("events: publish: %w", err)
	}

	p.logger.Debug("published event", zap.String("routing_key", routingKey))
	return nil
}

// Close closes the channel and connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
