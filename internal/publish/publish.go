// Package publish forwards registration events to a host editor over
// socket.io, so a running node browser can pick up UI metadata as the
// registry is built.
package publish

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/specialistvlad/shadegrid/internal/ctxlog"
	"github.com/specialistvlad/shadegrid/internal/descriptor"
	"github.com/specialistvlad/shadegrid/internal/registry"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// EventRegistered is emitted once per registered descriptor.
const EventRegistered = "descriptor_registered"

// DefaultConnectTimeout bounds the wait for the connect handshake.
const DefaultConnectTimeout = 15 * time.Second

// ErrNotConnected is returned by Publish after the socket has gone away.
var ErrNotConnected = errors.New("publisher is not connected")

// Options configures Connect.
type Options struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Publisher emits registration events. Its Publish method is a
// registry.RegisteredFunc.
type Publisher struct {
	logger    *slog.Logger
	emit      func(event string, args ...any)
	connected func() bool
	close     func()
}

// Connect dials the host and waits for the connect or connect_error event.
func Connect(ctx context.Context, opts Options) (*Publisher, error) {
	logger := ctxlog.FromContext(ctx).With("publisher", "socketio", "url", opts.URL)
	logger.Info("Connecting publisher...")

	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("publish URL %q must include a scheme and host", opts.URL)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	sopts := socket.DefaultOptions()
	sopts.SetPath(parsedURL.Path)
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		sopts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sopts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, sopts)
	io := manager.Socket(opts.Namespace, sopts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Publisher connected.", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		var err error = errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}

	logger.Info("Publisher connected successfully.", "sid", io.Id())
	return &Publisher{
		logger:    logger,
		emit:      func(event string, args ...any) { io.Emit(event, args...) },
		connected: io.Connected,
		close:     func() { io.Disconnect() },
	}, nil
}

// Publish emits EventRegistered with the candidate's payload.
func (p *Publisher) Publish(key descriptor.Key, c registry.Candidate) error {
	if p.connected != nil && !p.connected() {
		return fmt.Errorf("cannot publish %s: %w", key, ErrNotConnected)
	}
	p.logger.Debug("Publishing registration.", "key", key.String())
	p.emit(EventRegistered, Payload(key, c))
	return nil
}

// Close disconnects the socket.
func (p *Publisher) Close() error {
	if p.close != nil {
		p.close()
	}
	return nil
}

// Payload is the event body for one registration.
func Payload(key descriptor.Key, c registry.Candidate) map[string]any {
	payload := map[string]any{
		"key":     key.String(),
		"name":    key.Name,
		"version": key.Version,
		"source":  c.Source.String(),
		"origin":  c.Origin,
	}
	if c.Descriptor != nil {
		payload["kind"] = c.Descriptor.Kind().String()
	}
	if fd, ok := c.Descriptor.(*descriptor.FunctionDescriptor); ok {
		params := make([]map[string]any, 0, len(fd.Parameters))
		for _, prm := range fd.Parameters {
			params = append(params, map[string]any{
				"name":      prm.Name,
				"type":      string(prm.Type),
				"direction": prm.Direction.String(),
			})
		}
		payload["parameters"] = params
	}
	if c.UI != nil {
		payload["ui"] = map[string]any{
			"display_name":       c.UI.DisplayName,
			"tooltip":            c.UI.Tooltip,
			"categories":         c.UI.Categories,
			"synonyms":           c.UI.Synonyms,
			"parameter_tooltips": c.UI.ParameterTooltips,
			"hints":              c.UI.Hints,
		}
	}
	return payload
}
