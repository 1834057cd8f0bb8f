package sbcheck

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	return cfg
}

func TestRequestURL(t *testing.T) {
	got := RequestURL(DefaultConfig(), "KEY", "http://a.b/c d")

	assert.Equal(t,
		"https://sb-ssl.google.com/safebrowsing/api/lookup?client=safebrowsing&apikey=KEY&appver=1.0&pver=3.0&url=http%3A%2F%2Fa.b%2Fc+d",
		got)
}

func TestRedact(t *testing.T) {
	u := RequestURL(DefaultConfig(), "SECRET", "x")

	assert.NotContains(t, Redact(u, "SECRET"), "SECRET")
	assert.Contains(t, Redact(u, "SECRET"), "apikey=REDACTED")
	assert.Equal(t, u, Redact(u, ""))
}

func TestLookupSendsQuery(t *testing.T) {
	var rawQuery string
	var ua string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		ua = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	res, err := Lookup(context.Background(), ts.Client(), testConfig(ts.URL), "ABC123", "http://evil.example/a b")
	require.NoError(t, err)

	assert.Equal(t, "client=safebrowsing&apikey=ABC123&appver=1.0&pver=3.0&url=http%3A%2F%2Fevil.example%2Fa+b", rawQuery)
	assert.Equal(t, UA, ua)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
	assert.Empty(t, res.Body)
}

func TestLookupReturnsBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "malware")
	}))
	defer ts.Close()

	res, err := Lookup(context.Background(), ts.Client(), testConfig(ts.URL), "k", "x")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "malware", string(res.Body))
}

func TestLookupLargeBody(t *testing.T) {
	big := strings.Repeat("phishing,", 100000)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, big)
	}))
	defer ts.Close()

	res, err := Lookup(context.Background(), ts.Client(), testConfig(ts.URL), "k", "x")
	require.NoError(t, err)
	assert.Equal(t, len(big), len(res.Body))
}

func TestLookupTLS(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	res, err := Lookup(context.Background(), ts.Client(), testConfig(ts.URL), "k", "x")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestLookupNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := ts.URL
	ts.Close()

	_, err := Lookup(context.Background(), New(5), testConfig(endpoint), "SECRET", "x")
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrNetwork))
	var nerr *NetworkError
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, endpoint, nerr.Endpoint)
	assert.NotContains(t, err.Error(), "SECRET")
}

func TestLookupCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Lookup(ctx, ts.Client(), testConfig(ts.URL), "k", "x")
	assert.True(t, errors.Is(err, ErrNetwork))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewTimeout(t *testing.T) {
	assert.Zero(t, New(0).Timeout)
	assert.Equal(t, "45s", New(45).Timeout.String())
}
