package events

import "errors"

var (
	// ErrConnect возвращается при ошибке подключения к RabbitMQ
	ErrConnect = errors.New("events: failed to connect to broker")

	// ErrPublish возвращается при ошибке публикации события
	ErrPublish = errors.New("events: failed to publish event")

	// ErrEncode возвращается, когда событие не удаётся сериализовать
	ErrEncode = errors.New("events: failed to encode event")
)
