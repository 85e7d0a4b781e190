// Package mqtt is an alternate observation stream source for deployments
// where stations publish over MQTT. Messages arrive at QoS 1 with automatic
// acknowledgment disabled, so the broker redelivers anything the consumer
// did not explicitly ack.
package mqtt

import (
	"context"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/edgeflare/stationd/pkg/ingest"
)

// Config represents MQTT source configuration.
type Config struct {
	Brokers  []string `mapstructure:"brokers"`
	Topic    string   `mapstructure:"topic"`
	ClientID string   `mapstructure:"clientID"`
	Username string   `mapstructure:"username,omitempty"`
	Password string   `mapstructure:"password,omitempty"`
}

func (c *Config) applyDefaults() {
	if len(c.Brokers) == 0 {
		c.Brokers = []string{"tcp://localhost:1883"}
	}
	if c.Topic == "" {
		c.Topic = "observations/#"
	}
	if c.ClientID == "" {
		c.ClientID = "stationd"
	}
}

// Source subscribes to the observation topic on an MQTT broker.
type Source struct {
	client pahomqtt.Client
	cfg    Config
	logger *zap.Logger
}

// New connects to the broker. The session is persistent (CleanSession off)
// so unacked QoS 1 messages survive a reconnect.
func New(cfg Config, logger *zap.Logger) (*Source, error) {
	cfg.applyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := pahomqtt.NewClientOptions()
	for _, broker := range cfg.Brokers {
		opts.AddBroker(broker)
	}
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetCleanSession(false)
	opts.SetAutoAckDisabled(true)
	opts.SetOrderMatters(true)
	opts.SetConnectTimeout(10 * time.Second)
	opts.SetAutoReconnect(true)

	client := pahomqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt source: broker connection error: %w", token.Error())
	}

	return &Source{client: client, cfg: cfg, logger: logger}, nil
}

func (s *Source) Name() string { return "mqtt" }

// Messages subscribes at QoS 1 and forwards each publish as an ingest
// message whose Ack releases it back to the broker.
func (s *Source) Messages(ctx context.Context) (<-chan ingest.Message, error) {
	out := make(chan ingest.Message, 64)

	handler := func(_ pahomqtt.Client, msg pahomqtt.Message) {
		m := ingest.Message{
			Value:  msg.Payload(),
			Source: "mqtt",
			Topic:  msg.Topic(),
			Offset: int64(msg.MessageID()),
			Ack:    msg.Ack,
		}
		select {
		case out <- m:
		case <-ctx.Done():
		}
	}

	if token := s.client.Subscribe(s.cfg.Topic, 1, handler); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt source: subscribe %s: %w", s.cfg.Topic, token.Error())
	}

	// The channel is left open: a handler invocation may still be in flight
	// after Unsubscribe returns, and the consumer exits on ctx anyway.
	go func() {
		<-ctx.Done()
		if token := s.client.Unsubscribe(s.cfg.Topic); token.Wait() && token.Error() != nil {
			s.logger.Warn("mqtt unsubscribe failed", zap.Error(token.Error()))
		}
	}()

	s.logger.Info("mqtt source started",
		zap.Strings("brokers", s.cfg.Brokers),
		zap.String("topic", s.cfg.Topic))
	return out, nil
}

func (s *Source) Close() error {
	s.client.Disconnect(250)
	return nil
}
