package amqpadapter

import (
	"context"
	"encoding/json"

	"github.com/streadway/amqp"

	"linkfolio-promos/internal/core/port"
)

// Notifier publishes proposal decision events to a topic exchange. The
// routing key is "proposal.<status>" so downstream consumers can bind to
// accepts and rejects independently.
type Notifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// Dial connects to the broker and declares the exchange.
func Dial(url, exchange string) (*Notifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Notifier{conn: conn, ch: ch, exchange: exchange}, nil
}

// NotifyDecision publishes the event as a persistent JSON message.
func (n *Notifier) NotifyDecision(_ context.Context, ev port.DecisionEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return n.ch.Publish(n.exchange, "proposal."+string(ev.Status), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		Body:         body,
	})
}

// Close releases the channel and connection.
func (n *Notifier) Close() {
	_ = n.ch.Close()
	_ = n.conn.Close()
}
