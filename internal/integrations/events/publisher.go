package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel часть *amqp.Channel, нужная для публикации
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher публикует события расписания в topic exchange
type Publisher struct {
	ch         Channel
	exchange   string
	routingKey string
	mu         sync.Mutex
}

// Connect подключается к брокеру и объявляет durable topic exchange
func Connect(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("%w: declare exchange=%s: %v", ErrConnect, exchange, err)
	}

	return conn, ch, nil
}

// NewPublisher создает издателя событий
func NewPublisher(ch Channel, exchange, routingKey string) *Publisher {
	return &Publisher{
		ch:         ch,
		exchange:   exchange,
		routingKey: routingKey,
	}
}

// PublishScheduleUpdated публикует событие об изменении расписания
func (p *Publisher) PublishScheduleUpdated(ctx context.Context, event ScheduleUpdated) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	event.Type = EventScheduleUpdated

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Type:         event.Type,
		Timestamp:    event.UpdatedAt,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, msg); err != nil {
		return fmt.Errorf("%w: exchange=%s key=%s: %v", ErrPublish, p.exchange, p.routingKey, err)
	}
	return nil
}

// Close закрывает канал
func (p *Publisher) Close() error {
	return p.ch.Close()
}
