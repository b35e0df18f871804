package publish

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhythmix/docanim/config"
	"github.com/rhythmix/docanim/manifest"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func newFakeToken(err error, complete bool) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	if complete {
		close(t.done)
	}
	return t
}

func (t *fakeToken) Wait() bool                     { <-t.done; return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

// fakeClient records publishes. Methods it does not override panic.
type fakeClient struct {
	mqtt.Client
	token *fakeToken
	sent  []published
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.sent = append(c.sent, published{topic, qos, payload.([]byte)})
	return c.token
}

func TestRenderedPublishesRecord(t *testing.T) {
	client := &fakeClient{token: newFakeToken(nil, true)}
	n := NewMqtt(client, "docanim/rendered")

	r := manifest.Record{Name: "count", File: "output/count1.gif", Frames: 42}
	require.NoError(t, n.Rendered(context.Background(), r))

	require.Len(t, client.sent, 1)
	assert.Equal(t, "docanim/rendered", client.sent[0].topic)
	assert.Equal(t, byte(Qos), client.sent[0].qos)

	var got manifest.Record
	require.NoError(t, json.Unmarshal(client.sent[0].payload, &got))
	assert.Equal(t, "count", got.Name)
	assert.Equal(t, 42, got.Frames)
}

func TestRenderedBrokerError(t *testing.T) {
	boom := errors.New("not authorised")
	client := &fakeClient{token: newFakeToken(boom, true)}

	err := NewMqtt(client, "t").Rendered(context.Background(), manifest.Record{Name: "x"})
	assert.ErrorIs(t, err, boom)
}

func TestRenderedCancelled(t *testing.T) {
	client := &fakeClient{token: newFakeToken(nil, false)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewMqtt(client, "t").Rendered(ctx, manifest.Record{Name: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnectWithoutBroker(t *testing.T) {
	n, done, err := Connect(context.Background(), config.Mqtt{})
	require.NoError(t, err)
	defer done()
	assert.IsType(t, Nop{}, n)
	assert.NoError(t, n.Rendered(context.Background(), manifest.Record{}))
}

func TestClientOptions(t *testing.T) {
	c := config.DefaultConfig().Mqtt
	c.URL = "tcp://broker:1883"
	c.Username = "user"

	opts := ClientOptions(c)
	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "broker:1883", opts.Servers[0].Host)
	assert.Equal(t, "docanim", opts.ClientID)
	assert.Equal(t, "user", opts.Username)
	assert.Equal(t, int64(30), opts.KeepAlive)
}
