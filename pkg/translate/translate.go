// Package translate is a client for a single-string machine translation
// endpoint. Failures are returned as typed errors and can be turned into the
// text shown in place of a translation with Describe.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultURL is the public endpoint the chat uses.
const DefaultURL = "https://ftapi.pythonanywhere.com/translate"

// Languages used by the chat.
const (
	English = "en"
	Spanish = "es"
)

// Error kinds. Every error returned by Translate matches exactly one of these
// with errors.Is.
var (
	ErrRequest   = errors.New("translate: cannot build request")
	ErrTransport = errors.New("translate: transport failure")
	ErrStatus    = errors.New("translate: unexpected status")
	ErrNoData    = errors.New("translate: empty response")
	ErrDecode    = errors.New("translate: response is not JSON")
	ErrMalformed = errors.New("translate: response has no translation")
)

// Error carries the kind of a failure and its cause.
type Error struct {
	Kind  error
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func fail(kind, cause error) error {
	return &Error{Kind: kind, Cause: cause}
}

// Client calls the translation endpoint. The zero value uses DefaultURL and
// http.DefaultClient. Requests are never retried.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// New returns a client for baseURL with the given request timeout. A zero
// timeout waits for as long as ctx allows.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Logger:     logger,
	}
}

// destinationField holds the translated text in the response object.
const destinationField = "destination-text"

// Translate sends text from language sl to dl and returns the translation.
func (c *Client) Translate(ctx context.Context, text, sl, dl string) (string, error) {
	log := c.logger().With(zap.String("sl", sl), zap.String("dl", dl))

	u, err := c.requestURL(text, sl, dl)
	if err != nil {
		return "", fail(ErrRequest, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fail(ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		log.Debug("translate request failed", zap.Error(err))
		return "", fail(ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fail(ErrTransport, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("translate returned non-2xx", zap.Int("status", resp.StatusCode))
		return "", fail(ErrStatus, fmt.Errorf("%s", resp.Status))
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", fail(ErrNoData, nil)
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Debug("translate response not JSON", zap.Error(err))
		return "", fail(ErrDecode, err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return "", fail(ErrMalformed, nil)
	}
	out, ok := obj[destinationField].(string)
	if !ok {
		log.Debug("translate response has no text", zap.Any("body", obj))
		return "", fail(ErrMalformed, nil)
	}
	return out, nil
}

// TranslateText is Translate with failures rendered by Describe. It never
// returns an empty string for a failed request.
func (c *Client) TranslateText(ctx context.Context, text, sl, dl string) string {
	out, err := c.Translate(ctx, text, sl, dl)
	if err != nil {
		return Describe(err)
	}
	return out
}

func (c *Client) requestURL(text, sl, dl string) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid base url %q", base)
	}
	q := u.Query()
	q.Set("sl", sl)
	q.Set("dl", dl)
	q.Set("text", text)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

// Describe renders err as the text shown in place of a translation.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var te *Error
	if !errors.As(err, &te) {
		return "Network error: " + err.Error()
	}
	switch te.Kind {
	case ErrRequest:
		return "Failed to create request URL"
	case ErrTransport, ErrStatus:
		return "Network error: " + causeText(te)
	case ErrNoData:
		return "No data received"
	case ErrDecode:
		return "Error decoding response: " + causeText(te)
	case ErrMalformed:
		return "Invalid response format"
	}
	return te.Error()
}

func causeText(e *Error) string {
	if e.Cause == nil {
		return e.Kind.Error()
	}
	var uerr *url.Error
	if errors.As(e.Cause, &uerr) {
		return uerr.Err.Error()
	}
	return e.Cause.Error()
}
