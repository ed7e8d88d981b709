// Package publish hands finished tilesets to a remote solver service over
// socket.io.
package publish

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/vk/wavetiles/internal/ctxlog"
	"github.com/vk/wavetiles/internal/report"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultEvent is the event name a tileset is emitted under.
const DefaultEvent = "tileset"

// DefaultNamespace is the socket.io namespace used when none is configured.
const DefaultNamespace = "/"

const defaultConnectTimeout = 15 * time.Second

// ErrNotConnected is returned when publishing on a closed or failed client.
var ErrNotConnected = errors.New("publish: socket.io client is not connected")

// Config describes the solver endpoint.
type Config struct {
	URL string
	// Namespace defaults to DefaultNamespace.
	Namespace string
	// Event defaults to DefaultEvent.
	Event string
	// AckEvent, when set, makes Publish wait for the server to emit it back.
	AckEvent           string
	AckTimeout         time.Duration
	ConnectTimeout     time.Duration
	InsecureSkipVerify bool
}

// Publisher is a connected socket.io client.
type Publisher struct {
	cfg    Config
	client *socket.Socket
	logger *slog.Logger
}

// Dial connects to the solver service and waits for the connect event.
func Dial(ctx context.Context, cfg Config) (*Publisher, error) {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	if cfg.Event == "" {
		cfg.Event = DefaultEvent
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}
	if cfg.AckTimeout <= 0 {
		cfg.AckTimeout = cfg.ConnectTimeout
	}

	logger := ctxlog.FromContext(ctx).With("component", "publish", "url", cfg.URL)
	logger.Info("Connecting to solver service...")

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("failed to parse URL %q: scheme and host are required", cfg.URL)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Successfully connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		connectChan <- eventError(errs)
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &Publisher{cfg: cfg, client: io, logger: logger}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(cfg.ConnectTimeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %v waiting for socket.io connection", cfg.ConnectTimeout)
	}
}

// Publish emits one tileset summary. With an AckEvent configured it blocks
// until the server answers or the ack timeout passes.
func (p *Publisher) Publish(ctx context.Context, s report.Summary) error {
	if p.client == nil || !p.client.Connected() {
		return ErrNotConnected
	}

	payload, err := Payload(s)
	if err != nil {
		return err
	}
	logger := p.logger.With("event", p.cfg.Event, "sid", p.client.Id(), "path", s.Path)

	if p.cfg.AckEvent == "" {
		logger.Debug("Emitting tileset")
		p.client.Emit(p.cfg.Event, payload)
		return nil
	}

	done := make(chan struct{}, 1)
	opCtx, cancel := context.WithTimeout(ctx, p.cfg.AckTimeout)
	defer cancel()

	p.client.Once(types.EventName(p.cfg.AckEvent), func(...any) {
		done <- struct{}{}
	})
	logger.Debug("Emitting tileset and waiting for acknowledgement", "ack_event", p.cfg.AckEvent)
	p.client.Emit(p.cfg.Event, payload)

	select {
	case <-opCtx.Done():
		return fmt.Errorf("timed out after %v waiting for event '%s'", p.cfg.AckTimeout, p.cfg.AckEvent)
	case <-done:
		logger.Info("Solver acknowledged tileset")
		return nil
	}
}

// Close disconnects the client.
func (p *Publisher) Close() error {
	if p.client != nil {
		p.logger.Debug("Disconnecting", "sid", p.client.Id())
		p.client.Disconnect()
	}
	return nil
}

// Payload converts a summary into the generic JSON value sent on the wire.
func Payload(s report.Summary) (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tileset payload: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode tileset payload: %w", err)
	}
	return out, nil
}

// eventError extracts the error argument of a connect_error event.
func eventError(args []any) error {
	if len(args) > 0 {
		if err, ok := args[0].(error); ok {
			return err
		}
		return fmt.Errorf("%v", args[0])
	}
	return errors.New("connect_error without details")
}
