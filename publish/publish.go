// Package publish announces finished renders.
package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/rhythmix/docanim/config"
	"github.com/rhythmix/docanim/manifest"
)

// Notifier is told about every GIF written.
type Notifier interface {
	Rendered(ctx context.Context, r manifest.Record) error
}

// Nop drops every notification.
type Nop struct{}

// Rendered does nothing.
func (Nop) Rendered(context.Context, manifest.Record) error { return nil }

// Qos is the MQTT delivery level used for render notifications.
const Qos = 1

// Mqtt publishes render records as JSON on an MQTT topic.
type Mqtt struct {
	client mqtt.Client
	topic  string
}

// NewMqtt creates an instance of a Mqtt notifier over a connected client.
func NewMqtt(client mqtt.Client, topic string) *Mqtt {
	m := new(Mqtt)
	m.client = client
	m.topic = topic
	return m
}

// ClientOptions builds the paho options for the configured broker.
func ClientOptions(c config.Mqtt) *mqtt.ClientOptions {
	return mqtt.NewClientOptions().
		AddBroker(c.URL).
		SetClientID(c.ClientID).
		SetUsername(c.Username).
		SetPassword(c.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) {
			slog.Info("Connected", "broker", c.URL)
		})
}

// Connect returns a notifier for the configured broker, or Nop when no
// broker is set.
func Connect(ctx context.Context, c config.Mqtt) (Notifier, func(), error) {
	if c.URL == "" {
		return Nop{}, func() {}, nil
	}
	client := mqtt.NewClient(ClientOptions(c))
	if err := wait(ctx, client.Connect()); err != nil {
		return nil, nil, fmt.Errorf("connect %s: %w", c.URL, err)
	}
	disconnect := func() { client.Disconnect(250) }
	return NewMqtt(client, c.Topics.Rendered), disconnect, nil
}

// Rendered publishes r and waits for the broker to acknowledge it.
func (m *Mqtt) Rendered(ctx context.Context, r manifest.Record) error {
	b, err := json.Marshal(&r)
	if err != nil {
		return err
	}
	if err := wait(ctx, m.client.Publish(m.topic, Qos, false, b)); err != nil {
		return fmt.Errorf("publish %s: %w", r.Name, err)
	}
	slog.Debug("published render", "topic", m.topic, "name", r.Name)
	return nil
}

func wait(ctx context.Context, token mqtt.Token) error {
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return errors.Join(ctx.Err(), token.Error())
	}
}
