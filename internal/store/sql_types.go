// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// textArray maps a []string to a PostgreSQL text[] column.
//
// It encodes to the text-format array literal so it travels through
// database/sql as a plain string, and decodes through pgtype's scanner.
type textArray []string

// Value implements driver.Valuer. A nil slice is stored as an empty array.
func (a textArray) Value() (driver.Value, error) {
	values := []string(a)
	if values == nil {
		values = []string{}
	}

	buf, err := pgtype.NewMap().Encode(pgtype.TextArrayOID, pgtype.TextFormatCode, values, nil)
	if err != nil {
		return nil, fmt.Errorf("encoding text[]: %w", err)
	}

	return string(buf), nil
}

// Scan implements sql.Scanner.
func (a *textArray) Scan(src any) error {
	var values []string
	if err := pgtype.NewMap().SQLScanner(&values).Scan(src); err != nil {
		return fmt.Errorf("decoding text[]: %w", err)
	}

	if values == nil {
		values = []string{}
	}
	*a = values
	return nil
}
