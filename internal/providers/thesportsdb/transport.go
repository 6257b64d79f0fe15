package thesportsdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"sports-gateway/internal/providers"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// relayDoer issues requests directly and, on a network-level failure, repeats them once through
// the relay. Cancelled requests are never relayed.
type relayDoer struct {
	direct   httpDoer
	relayURL string
}

func (r relayDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := r.direct.Do(req)
	if err == nil {
		return resp, nil
	}
	if ctxErr := req.Context().Err(); ctxErr != nil {
		return nil, ctxErr
	}
	target := req.URL.String()
	if r.relayURL == "" {
		return nil, &providers.TransportError{Provider: providerName, URL: target, Err: err}
	}
	resp, relayErr := r.viaRelay(req)
	if relayErr != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &providers.TransportError{Provider: providerName, URL: target, Relayed: true, Err: errors.Join(err, relayErr)}
	}
	return resp, nil
}

func (r relayDoer) viaRelay(orig *http.Request) (*http.Response, error) {
	endpoint, err := relayEndpoint(r.relayURL, orig.URL.String())
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(orig.Context(), http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.direct.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, fmt.Errorf("relay: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var env relayEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("relay: decode envelope: %w", err)
	}
	return unwrapEnvelope(orig, env), nil
}

func relayEndpoint(relay, target string) (string, error) {
	u, err := url.Parse(relay)
	if err != nil {
		return "", fmt.Errorf("relay: parse url: %w", err)
	}
	q := u.Query()
	q.Set("url", target)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// unwrapEnvelope turns a relay envelope back into the response the provider would have sent.
// A missing status code means the relay fetched the target successfully.
func unwrapEnvelope(req *http.Request, env relayEnvelope) *http.Response {
	code := env.Status.HTTPCode
	if code == 0 {
		code = http.StatusOK
	}
	return &http.Response{
		StatusCode: code,
		Status:     fmt.Sprintf("%d %s", code, http.StatusText(code)),
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(env.Contents)),
		Request:    req,
	}
}
