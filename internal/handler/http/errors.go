// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors.
var (
	// ErrInvalidJSON is returned when the request body is not valid JSON for
	// the endpoint or carries unknown fields.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrBodyTooLarge is returned when the request body exceeds maxBodySize.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrInvalidEncoding is returned for a Content-Encoding: gzip body that
	// is not a gzip stream.
	ErrInvalidEncoding = errors.New("invalid gzip body")
)

// ErrTooManyRequests is reported when the per-IP auth limiter rejects a call.
var ErrTooManyRequests = errors.New("too many requests")
