package main

import (
	"context"
	"fmt"
	"log/slog"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/transport"
)

// link is the transport a node sends through and receives from.
type link interface {
	node.Sender
	Start(h transport.Handler)
	Close() error
}

// links holds the opened transport. frames is set when the node serves
// its WebSocket frame link over the web server; peer is the far side of a
// loopback transport.
type links struct {
	local  link
	frames *transport.WebSocketServer
	peer   *transport.Loopback
}

func openLinks(ctx context.Context, cfg *Config, logger *slog.Logger) (*links, error) {
	t := cfg.Transport
	switch t.Type {
	case "serial":
		logger.Info("using serial transport", "port", t.Port, "baud", t.Baud)
		s, err := transport.OpenSerial(t.Port, t.Baud, logger)
		if err != nil {
			return nil, err
		}
		return &links{local: s}, nil
	case "mqtt":
		logger.Info("using mqtt transport", "broker", t.Broker, "prefix", t.TopicPrefix)
		m, err := openMQTT(cfg, logger)
		if err != nil {
			return nil, err
		}
		return &links{local: m}, nil
	case "websocket":
		if t.URL == "" {
			logger.Info("serving websocket frame link", "addr", cfg.Web.Listen, "path", "/ws/frames")
			s := transport.NewWebSocketServer(cfg.Web.AllowedOrigins, logger)
			return &links{local: s, frames: s}, nil
		}
		logger.Info("using websocket transport", "url", t.URL)
		ws, err := transport.DialWebSocket(ctx, t.URL, logger)
		if err != nil {
			return nil, err
		}
		return &links{local: ws}, nil
	case "loopback":
		logger.Info("using loopback transport")
		a, b := transport.NewLoopbackPair(logger)
		return &links{local: a, peer: b}, nil
	}
	return nil, fmt.Errorf("unknown transport type: %q", t.Type)
}

func (l *links) Close() {
	l.local.Close()
	if l.peer != nil {
		l.peer.Close()
	}
}
