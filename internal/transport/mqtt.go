//go:build !no_mqtt

package transport

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTConfig holds broker settings.
type MQTTConfig struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
}

// MQTT publishes outbound frames to <prefix>/tx/<endpoint>/<cluster> and
// receives inbound frames from <prefix>/rx/<endpoint>/<cluster>, optionally
// suffixed with /group/<groupId>. Cluster ids are four hex digits, payloads
// are raw ZCL frames.
type MQTT struct {
	client pahomqtt.Client
	prefix string
	logger *slog.Logger

	mu      sync.RWMutex
	handler Handler
	ctx     context.Context
	cancel  context.CancelFunc
}

// DialMQTT connects to the broker. Subscriptions are (re)made on every
// connect, so Start may be called before or after the link comes up.
func DialMQTT(cfg MQTTConfig, logger *slog.Logger) (*MQTT, error) {
	m := newMQTT(nil, cfg.TopicPrefix, logger)
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "zcl-node"
	}
	opts := pahomqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5*time.Second).
		SetWill(m.prefix+"/state", "offline", 1, true).
		SetOnConnectHandler(func(c pahomqtt.Client) {
			m.logger.Info("MQTT connected")
			c.Publish(m.prefix+"/state", 1, true, "online")
			m.subscribe(c)
		}).
		SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
			m.logger.Warn("MQTT connection lost", "err", err)
		})
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	client := pahomqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect timeout")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}
	m.client = client
	return m, nil
}

func newMQTT(client pahomqtt.Client, prefix string, logger *slog.Logger) *MQTT {
	if prefix == "" {
		prefix = "zcl"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &MQTT{
		client: client,
		prefix: strings.TrimSuffix(prefix, "/"),
		logger: logger.With("component", "mqtt"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start delivers inbound frames to h.
func (m *MQTT) Start(h Handler) {
	m.mu.Lock()
	m.handler = h
	m.mu.Unlock()
	if m.client != nil && m.client.IsConnected() {
		m.subscribe(m.client)
	}
}

func (m *MQTT) subscribe(c pahomqtt.Client) {
	topic := m.prefix + "/rx/#"
	token := c.Subscribe(topic, 1, func(_ pahomqtt.Client, msg pahomqtt.Message) {
		m.onMessage(msg.Topic(), msg.Payload())
	})
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			m.logger.Error("MQTT subscribe", "topic", topic, "err", err)
		}
	}()
}

func (m *MQTT) onMessage(topic string, payload []byte) {
	env, err := m.parseTopic(topic)
	if err != nil {
		m.logger.Warn("MQTT message dropped", "topic", topic, "err", err)
		return
	}
	env.Frame = append([]byte(nil), payload...)
	m.mu.RLock()
	h := m.handler
	m.mu.RUnlock()
	deliver(m.ctx, h, m.logger, env)
}

// SendFrame publishes one frame and waits for the broker to accept it.
func (m *MQTT) SendFrame(ctx context.Context, endpoint uint8, clusterID uint16, frame []byte) error {
	if m.ctx.Err() != nil {
		return ErrClosed
	}
	token := m.client.Publish(m.txTopic(endpoint, clusterID), 1, false, append([]byte(nil), frame...))
	select {
	case <-token.Done():
		if err := token.Error(); err != nil {
			return fmt.Errorf("mqtt publish: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MQTT) txTopic(endpoint uint8, clusterID uint16) string {
	return fmt.Sprintf("%s/tx/%d/%04x", m.prefix, endpoint, clusterID)
}

// parseTopic reads the address from an rx topic.
func (m *MQTT) parseTopic(topic string) (*Envelope, error) {
	rest, ok := strings.CutPrefix(topic, m.prefix+"/rx/")
	if !ok {
		return nil, fmt.Errorf("unexpected topic")
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 2 && !(len(parts) == 4 && parts[2] == "group") {
		return nil, fmt.Errorf("want rx/<endpoint>/<cluster>[/group/<id>]")
	}
	ep, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("endpoint: %w", err)
	}
	cluster, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return nil, fmt.Errorf("cluster: %w", err)
	}
	env := &Envelope{Endpoint: uint8(ep), ClusterID: uint16(cluster)}
	if len(parts) == 4 {
		g, err := strconv.ParseUint(parts[3], 0, 16)
		if err != nil {
			return nil, fmt.Errorf("group: %w", err)
		}
		group := uint16(g)
		env.Meta.GroupID = &group
	}
	return env, nil
}

// Close publishes the offline state and disconnects.
func (m *MQTT) Close() error {
	m.cancel()
	if m.client != nil {
		m.client.Publish(m.prefix+"/state", 1, true, "offline").WaitTimeout(time.Second)
		m.client.Disconnect(1000)
	}
	m.logger.Info("MQTT transport stopped")
	return nil
}
