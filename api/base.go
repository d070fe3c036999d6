package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// HTTPDoer is the part of *http.Client used by Client
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client handles JSON-RPC calls to a qbitcoin node.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	conn       Conn
	httpClient HTTPDoer
	logger     zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests
func WithHTTPClient(httpClient HTTPDoer) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets the logger for request tracing
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new API client for conn
func NewClient(conn Conn, opts ...Option) *Client {
	c := &Client{
		conn:       conn,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Conn returns the connection the client was created with
func (c *Client) Conn() Conn {
	return c.conn
}

// Call sends a JSON-RPC request and returns the validated, still untyped result.
//
// A non-2xx HTTP status is not an error by itself: the node may describe the
// failure in a JSON-RPC error object, so the body is always parsed. At most
// Conn.MaxReadBytes of the body are read.
func (c *Client) Call(ctx context.Context, method string, params ...any) (Value, error) {
	if params == nil {
		params = []any{}
	}

	payload, err := json.Marshal(Request{
		JSONRPC: jsonRPCVersion,
		ID:      requestID,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return Value{}, fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.conn.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.conn.URL, bytes.NewReader(payload))
	if err != nil {
		return Value{}, &TransportError{Method: method, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	// params are not logged, they may carry private keys
	c.logger.Debug().Str("method", method).Str("url", c.conn.URL).Msg("sending rpc request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Value{}, &TransportError{Method: method, Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.conn.maxReadBytes()))
	if err != nil {
		return Value{}, &TransportError{Method: method, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug().
		Str("method", method).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Msg("received rpc response")

	result, err := parseResponse(method, body)
	if err != nil {
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) {
			c.logger.Debug().Str("method", method).Int64("code", rpcErr.Code).Str("message", rpcErr.Message).Msg("node returned error")
		}
		return Value{}, err
	}

	return result, nil
}
