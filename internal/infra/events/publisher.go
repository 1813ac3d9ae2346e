package events

import (
	"context"
	"encoding/json"
	"sync"

	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitPublisher pushes booking lifecycle events to a durable topic
// exchange, routing key = event topic. The channel is re-dialed on demand
// so a broker restart degrades to dropped events, never failed requests.
type RabbitPublisher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitPublisher(cfg config.MQConfig) (*RabbitPublisher, func(), error) {
	p := &RabbitPublisher{
		url:      cfg.URL,
		exchange: cfg.Exchange,
	}
	if err := p.connect(); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		p.Close()
	}
	return p, cleanup, nil
}

func (p *RabbitPublisher) PublishBookingEvent(ctx context.Context, event commands.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal booking event")
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx,
		p.exchange,
		event.Topic, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    event.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		// Drop the dead channel so the next publish re-dials.
		p.reset()
		return errs.Wrap(err, "failed to publish booking event")
	}
	return nil
}

func (p *RabbitPublisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if err := p.connectLocked(); err != nil {
		return nil, err
	}
	return p.ch, nil
}

func (p *RabbitPublisher) connect() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.connectLocked()
}

func (p *RabbitPublisher) connectLocked() error {
	p.closeLocked()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "failed to dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "failed to open rabbitmq channel")
	}
	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrap(err, "failed to declare exchange")
	}

	p.conn = conn
	p.ch = ch
	return nil
}

func (p *RabbitPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
}

func (p *RabbitPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
}

func (p *RabbitPublisher) closeLocked() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
