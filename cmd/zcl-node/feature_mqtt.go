//go:build !no_mqtt

package main

import (
	"log/slog"

	"zigbee-go-zcl/internal/transport"
)

func openMQTT(cfg *Config, logger *slog.Logger) (link, error) {
	m, err := transport.DialMQTT(transport.MQTTConfig{
		Broker:      cfg.Transport.Broker,
		ClientID:    cfg.Transport.ClientID,
		Username:    cfg.Transport.Username,
		Password:    cfg.Transport.Password,
		TopicPrefix: cfg.Transport.TopicPrefix,
	}, logger)
	if err != nil {
		return nil, err
	}
	return m, nil
}
