package events

import "context"

// NoopBroker is used when no RABBITMQ_URL is configured.
type NoopBroker struct{}

func (NoopBroker) Publish(ctx context.Context, queueName string, message []byte) error { return nil }
func (NoopBroker) Close() error                                                        { return nil }
