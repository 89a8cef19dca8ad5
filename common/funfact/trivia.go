package funfact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public numbers trivia service.
	DefaultBaseURL = "http://numbersapi.com"
	// DefaultTimeout bounds a single trivia lookup.
	DefaultTimeout = 5 * time.Second

	maxTriviaBody = 64 << 10
)

var (
	// ErrLookupFailed means the trivia service could not be reached in time.
	ErrLookupFailed = errors.New("trivia lookup failed")
	// ErrNoFact means the trivia service answered without a usable fact.
	ErrNoFact = errors.New("no trivia fact available")
)

// Lookup fetches an external fun fact for n.
type Lookup interface {
	Lookup(ctx context.Context, n int64) (string, error)
}

// triviaResponse is the JSON shape returned by numbersapi.com with ?json
type triviaResponse struct {
	Text   string `json:"text"`
	Found  bool   `json:"found"`
	Number any    `json:"number"`
	Type   string `json:"type"`
}

// TriviaClient queries a numbers trivia service over HTTP
type TriviaClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewTriviaClient creates a client for baseURL. A nil httpClient uses a
// dedicated client; a non-positive timeout uses DefaultTimeout.
func NewTriviaClient(baseURL string, timeout time.Duration, httpClient *http.Client) *TriviaClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &TriviaClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: httpClient,
	}
}

// Lookup requests the math fact for n. The request is abandoned when ctx is
// cancelled or the client timeout elapses.
func (c *TriviaClient) Lookup(ctx context.Context, n int64) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.baseURL + "/" + strconv.FormatInt(n, 10) + "/math"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json, text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxTriviaBody))
		return "", fmt.Errorf("%w: status %d", ErrNoFact, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTriviaBody))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrLookupFailed, err)
	}

	text, err := extractText(resp.Header.Get("Content-Type"), body)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrNoFact)
	}
	return text, nil
}

func extractText(contentType string, body []byte) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType != "application/json" {
		return strings.TrimSpace(string(body)), nil
	}

	var payload triviaResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: decode json: %v", ErrNoFact, err)
	}
	return strings.TrimSpace(payload.Text), nil
}
