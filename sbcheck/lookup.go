package sbcheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const UA = "sbcheck/" + AppVer

// New makes an http client that honours proxy settings from the environment.
// A timeout of 0 leaves both the dial and the overall request unbounded.
func New(timeout int) *http.Client {

	var tr = &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		DisableKeepAlives: true,
		DialContext: (&net.Dialer{
			Timeout: time.Second * time.Duration(timeout),
		}).DialContext,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   time.Second * time.Duration(timeout),
	}
}

// RequestURL builds the lookup url. The parameter order is fixed and only
// the target is escaped.
func RequestURL(cfg Config, key, target string) string {
	return fmt.Sprintf("%s?client=%s&apikey=%s&appver=%s&pver=%s&url=%s",
		cfg.Endpoint, cfg.Client, key, cfg.AppVer, cfg.PVer, Encode(target))
}

// Redact hides the api key in a url built by RequestURL.
func Redact(requrl, key string) string {
	if key == "" {
		return requrl
	}
	return strings.Replace(requrl, "apikey="+key, "apikey=REDACTED", 1)
}

// Lookup performs a single GET against the lookup service for target and
// returns the status code with the whole body. There are no retries.
func Lookup(ctx context.Context, cli *http.Client, cfg Config, key, target string) (Result, error) {

	requrl := RequestURL(cfg, key, target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requrl, nil)
	if err != nil {
		return Result{}, fmt.Errorf("building request: %w", err)
	}

	req.Header.Set("User-Agent", UA)
	req.Close = true

	httpresp, err := cli.Do(req)
	if err != nil {
		return Result{}, &NetworkError{Endpoint: cfg.Endpoint, Err: unwrapURLError(err)}
	}
	defer httpresp.Body.Close()

	var resp Result
	resp.URL = requrl
	resp.StatusCode = httpresp.StatusCode

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(httpresp.Body); err != nil {
		return resp, &NetworkError{Endpoint: cfg.Endpoint, Err: err}
	}
	resp.Body = buf.Bytes()

	return resp, nil
}

// the *url.Error returned by Do repeats the full url, api key included
func unwrapURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
