// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	hlog "github.com/morganforge/helmdesk-tui/internal/log"
	"github.com/morganforge/helmdesk-tui/internal/locale"
)

// =============================================================================
// CONSTANTS
// =============================================================================

const (
	// DefaultTimeout bounds a single log attempt. The chat must never feel
	// slow because the sink is; a dead endpoint costs at most this long, once.
	DefaultTimeout = 5 * time.Second

	// maxResponseSize caps how much of an error body we read back.
	// The happy path returns no body at all (Prefer: return=minimal).
	maxResponseSize = 4 * 1024
)

// =============================================================================
// ERROR CLASSIFICATION
// =============================================================================

// Kind classifies why a log attempt failed, assigned at the point the
// transport result is known rather than guessed from error text later.
type Kind int

const (
	// KindNone means the attempt succeeded.
	KindNone Kind = iota

	// KindTimeout means the attempt exceeded its deadline. The endpoint may
	// be reachable but slow, or the network may be down entirely.
	KindTimeout

	// KindBlocked means the transport could not complete the exchange at
	// all: DNS failure, connection refused, TLS rejection. Typically an
	// environment that forbids the endpoint.
	KindBlocked

	// KindClient means the endpoint answered with a 4xx status. The request
	// itself is wrong (bad key, bad table) and retrying will not help.
	KindClient

	// KindServer means the endpoint answered with a 5xx status. The service
	// is unhealthy but the link works.
	KindServer

	// KindUnknown covers everything else.
	KindUnknown
)

// String returns the kind name used in log fields.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTimeout:
		return "timeout"
	case KindBlocked:
		return "blocked"
	case KindClient:
		return "client"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a classified log-delivery failure.
type Error struct {
	// Kind is the failure class.
	Kind Kind

	// Status is the HTTP status code for KindClient and KindServer,
	// zero otherwise.
	Status int

	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote log %s: status %d", e.Kind, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("remote log %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("remote log %s", e.Kind)
}

// Unwrap returns the underlying transport error.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from an error returned by Log.
// A nil error or a non-remote error reports KindNone / KindUnknown.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}

// =============================================================================
// RECORD
// =============================================================================

// Record is one chat message as stored by the remote endpoint.
type Record struct {
	Text      string          `json:"text"`
	SessionID string          `json:"session_id"`
	Sender    string          `json:"sender"`
	Language  locale.Language `json:"language"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client sends chat records to a Supabase-style REST endpoint.
// The zero value is not usable; construct with NewClient.
type Client struct {
	endpoint   string
	key        string
	httpClient *http.Client
	timeout    time.Duration
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-attempt deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient overrides the transport, primarily for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a log client for the given endpoint and API key.
func NewClient(endpoint, key string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		key:        key,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		logger:     hlog.WithComponent("remote"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Log delivers one record to the endpoint. A single attempt, bounded by the
// client timeout; the returned error, if any, is always a *Error whose Kind
// tells the caller what class of failure occurred.
func (c *Client) Log(ctx context.Context, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return &Error{Kind: KindUnknown, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return &Error{Kind: KindUnknown, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.classifyTransport(err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize)) //nolint:errcheck

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	kind := KindUnknown
	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		kind = KindClient
	case resp.StatusCode >= 500 && resp.StatusCode < 600:
		kind = KindServer
	}
	c.logger.Debug().
		Str(hlog.FieldErrorKind, kind.String()).
		Int("status", resp.StatusCode).
		Msg("remote log rejected")
	return &Error{Kind: kind, Status: resp.StatusCode}
}

// classifyTransport maps a transport-level failure to a Kind.
func (c *Client) classifyTransport(err error) *Error {
	kind := KindUnknown

	var urlErr *url.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = KindTimeout
	case errors.As(err, &urlErr):
		if urlErr.Timeout() {
			kind = KindTimeout
		} else {
			// DNS failure, connection refused, TLS rejection: the exchange
			// never completed. The environment is blocking the endpoint.
			kind = KindBlocked
		}
	default:
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			kind = KindTimeout
		}
	}

	c.logger.Debug().
		Str(hlog.FieldErrorKind, kind.String()).
		Err(err).
		Msg("remote log failed")
	return &Error{Kind: kind, Err: err}
}
