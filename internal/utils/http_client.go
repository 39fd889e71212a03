// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client so
// all request-building methods are available directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with a default-configured resty.Client.
// Each call returns an independent instance.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewHTTPClientFor returns a client bound to baseURL with the given request
// timeout. baseURL may omit the scheme, in which case http:// is assumed.
func NewHTTPClientFor(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	client := NewHTTPClient()
	client.
		SetBaseURL(normalized).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return client, nil
}

// NormalizeBaseURL trims raw, adds a missing scheme and strips the trailing
// slash.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
