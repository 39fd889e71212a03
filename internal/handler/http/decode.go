// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// maxBodySize caps request bodies. A vault item holds at most five fields of
// 64 KiB ciphertext each, base64-encoded, plus tags.
const maxBodySize = 1 << 20

// decodeJSON strictly decodes the body of r into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}

	return nil
}
