package messaging

import "time"

type BrokerOpt func(*Broker)

func WithStartTimeout(d time.Duration) BrokerOpt {
	return func(b *Broker) {
		b.startupTimeout = d
	}
}

func WithHost(host string) BrokerOpt {
	return func(b *Broker) {
		b.host = host
	}
}

func WithPort(port int) BrokerOpt {
	return func(b *Broker) {
		b.port = port
	}
}
