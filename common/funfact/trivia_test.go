package funfact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTriviaServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *TriviaClient) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewTriviaClient(srv.URL+"/", time.Second, srv.Client())
}

func TestNewTriviaClient_Defaults(t *testing.T) {
	c := NewTriviaClient("", 0, nil)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.NotNil(t, c.httpClient)
}

func TestTriviaClient_PlainText(t *testing.T) {
	var gotPath string
	_, c := newTriviaServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("42 is the answer.\n"))
	})

	text, err := c.Lookup(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "42 is the answer.", text)
	assert.Equal(t, "/42/math", gotPath)
}

func TestTriviaClient_NegativeNumberPath(t *testing.T) {
	var gotPath string
	_, c := newTriviaServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("negative"))
	})

	_, err := c.Lookup(context.Background(), -8)
	require.NoError(t, err)
	assert.Equal(t, "/-8/math", gotPath)
}

func TestTriviaClient_JSON(t *testing.T) {
	_, c := newTriviaServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"text":"100 is the square of 10.","number":100,"found":true,"type":"math"}`))
	})

	text, err := c.Lookup(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, "100 is the square of 10.", text)
}

func TestTriviaClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			want: ErrNoFact,
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			want: ErrNoFact,
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			want: ErrNoFact,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"text":`))
			},
			want: ErrNoFact,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, c := newTriviaServer(t, tc.handler)
			_, err := c.Lookup(context.Background(), 8)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestTriviaClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewTriviaClient(srv.URL, 50*time.Millisecond, srv.Client())

	start := time.Now()
	_, err := c.Lookup(context.Background(), 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLookupFailed))
	assert.Less(t, time.Since(start), time.Second)
}

func TestTriviaClient_CallerCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewTriviaClient(srv.URL, 5*time.Second, srv.Client())
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	_, err := c.Lookup(ctx, 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLookupFailed))
}

func TestTriviaClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	transport := &http.Transport{}
	defer transport.CloseIdleConnections()

	c := NewTriviaClient(url, time.Second, &http.Client{Transport: transport})
	_, err := c.Lookup(context.Background(), 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLookupFailed))
}
