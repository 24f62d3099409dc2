// Package messaging runs the embedded NATS broker that connects the
// playtest runtime to presentation layers: runtime events stream out,
// player input and stimuli stream in.
package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

// Broker embeds a NATS server and holds one internal client connection for
// the host's own publishing and subscriptions.
type Broker struct {
	ns   *server.Server
	conn *nats.Conn

	startupTimeout time.Duration
	host           string
	port           int
}

func NewBroker(opts ...BrokerOpt) (*Broker, error) {
	b := &Broker{
		startupTimeout: 10 * time.Second,
		host:           "127.0.0.1",
	}

	for _, opt := range opts {
		opt(b)
	}

	ns, err := server.NewServer(&server.Options{
		Host:   b.host,
		Port:   b.port,
		NoSigs: true, // Let the application handle signals
	})
	if err != nil {
		return nil, err
	}
	b.ns = ns

	return b, nil
}

// Start runs the broker until the context is cancelled. It satisfies the
// service worker contract.
func (b *Broker) Start(ctx context.Context) error {
	b.ns.Start()

	if !b.ns.ReadyForConnections(b.startupTimeout) {
		return fmt.Errorf("nats server not ready for connections")
	}

	conn, err := nats.Connect(b.clientURL())
	if err != nil {
		return fmt.Errorf("creating nats client connection: %w", err)
	}
	b.conn = conn

	slog.InfoContext(ctx, "nats server listening", "addr", b.ns.Addr())

	<-ctx.Done()
	b.conn.Close()
	b.ns.Shutdown()
	b.ns.WaitForShutdown()

	return nil
}

// Subscribe registers a handler for the given subject and returns an
// unsubscribe function.
func (b *Broker) Subscribe(subject string, handler func(data []byte)) (func(), error) {
	if b.conn == nil {
		return nil, fmt.Errorf("broker not started")
	}
	sub, err := b.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, err
	}
	return func() { _ = sub.Unsubscribe() }, nil
}

// Publish sends a message to the given subject.
func (b *Broker) Publish(subject string, data []byte) error {
	if b.conn == nil {
		return fmt.Errorf("broker not started")
	}
	return b.conn.Publish(subject, data)
}

func (b *Broker) clientURL() string {
	return fmt.Sprintf("nats://%s:%d", b.host, b.port)
}
