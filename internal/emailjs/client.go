package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/folio/contactform/internal/contact"
	"github.com/folio/contactform/internal/logging"
)

const (
	// DefaultEndpoint is the EmailJS REST send endpoint
	DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 4096
)

var (
	initMu      sync.Mutex
	publicKey   string
	initialized bool
)

// Init stores the public key for all clients in the process. It may be
// called once; later calls fail with ErrAlreadyInitialized.
func Init(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyPublicKey
	}

	initMu.Lock()
	defer initMu.Unlock()

	if initialized {
		return ErrAlreadyInitialized
	}
	publicKey = key
	initialized = true
	return nil
}

// Ready reports whether Init has been called.
func Ready() error {
	initMu.Lock()
	defer initMu.Unlock()

	if !initialized {
		return ErrNotInitialized
	}
	return nil
}

func credential() (string, error) {
	initMu.Lock()
	defer initMu.Unlock()

	if !initialized {
		return "", ErrNotInitialized
	}
	return publicKey, nil
}

// sendRequest is the JSON body accepted by the send endpoint.
type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Client sends template emails through the EmailJS REST API.
// It implements contact.Dispatcher.
type Client struct {
	// Endpoint is the send URL
	Endpoint string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	logger *zap.Logger
}

// NewClient creates a client for the public EmailJS endpoint
func NewClient() *Client {
	return NewClientWithURL(DefaultEndpoint)
}

// NewClientWithURL creates a client for a custom endpoint
func NewClientWithURL(endpoint string) *Client {
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logging.Named("emailjs"),
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Ready implements contact.Dispatcher.
func (c *Client) Ready() error {
	return Ready()
}

// Dispatch implements contact.Dispatcher.
func (c *Client) Dispatch(ctx context.Context, req contact.Request) error {
	c.logger.Debug("Sending contact message",
		zap.String("request_id", req.ID),
		zap.String("service_id", req.ServiceID),
		zap.String("template_id", req.TemplateID),
	)
	return c.Send(ctx, req.ServiceID, req.TemplateID, req.Fields.TemplateParams())
}

// Send delivers one templated email. A 200 response means the service
// accepted the message; any other outcome is a *SendError.
func (c *Client) Send(ctx context.Context, serviceID, templateID string, params map[string]string) error {
	key, err := credential()
	if err != nil {
		return err
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         key,
		TemplateParams: params,
	})
	if err != nil {
		return &SendError{Type: ErrTypeEncode, Message: "failed to encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return &SendError{Type: ErrTypeEncode, Message: "failed to create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return ClassifyNetworkError("send request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return NewStatusError(resp.StatusCode, string(detail))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
