package rabbitmq

import (
	"time"

	"github.com/DeaforK/electronics-store-sub002/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ holds the broker connection used for the catalog-change feed.
type RabbitMQ struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Cfg     config.BrokerConfig
}

func NewRabbitMQ(cfg config.BrokerConfig) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &RabbitMQ{Conn: conn, Channel: ch, Cfg: cfg}, nil
}

// Setup declares the catalog exchange and binds this service's queue.
func (r *RabbitMQ) Setup() error {
	err := r.Channel.ExchangeDeclare(
		r.Cfg.CatalogExchange,
		"fanout",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	_, err = r.Channel.QueueDeclare(
		r.Cfg.CatalogQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return err
	}

	return r.Channel.QueueBind(
		r.Cfg.CatalogQueue,
		"", // routing key ignored by fanout
		r.Cfg.CatalogExchange,
		false,
		nil,
	)
}

// PublishEvent publishes a catalog event; used by the seed command to force
// cache refreshes during development.
func (r *RabbitMQ) PublishEvent(body []byte) error {
	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
		Timestamp:    time.Now(),
	}
	return r.Channel.Publish(r.Cfg.CatalogExchange, "", false, false, msg)
}

func (r *RabbitMQ) Close() {
	if r.Channel != nil {
		_ = r.Channel.Close()
	}
	if r.Conn != nil {
		_ = r.Conn.Close()
	}
}
