// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EncryptedField is the output of a single field encryption: the 96-bit GCM
// nonce and the ciphertext with its authentication tag appended.
//
// Both parts are produced together by one encryption call and consumed
// together by one decryption call. On the wire each is an independent
// standard base64 string:
//
//	{"nonce": "…", "ciphertext": "…"}
//
// Nothing else is embedded; the server stores both values verbatim.
type EncryptedField struct {
	// Nonce is the per-encryption random value. It is never reused under the
	// same key.
	Nonce []byte `json:"nonce"`

	// Ciphertext is the sealed plaintext followed by the 16-byte GCM tag.
	Ciphertext []byte `json:"ciphertext"`
}

// Clone returns a deep copy of f, or nil when f is nil.
func (f *EncryptedField) Clone() *EncryptedField {
	if f == nil {
		return nil
	}

	return &EncryptedField{
		Nonce:      append([]byte(nil), f.Nonce...),
		Ciphertext: append([]byte(nil), f.Ciphertext...),
	}
}

// FieldName identifies one of the independently encrypted attributes of a
// [VaultItem].
type FieldName string

const (
	FieldTitle    FieldName = "title"
	FieldUsername FieldName = "username"
	FieldPassword FieldName = "password"
	FieldURL      FieldName = "url"
	FieldNotes    FieldName = "notes"
)

// VaultFieldNames lists every encrypted field name in display order.
var VaultFieldNames = []FieldName{
	FieldTitle,
	FieldUsername,
	FieldPassword,
	FieldURL,
	FieldNotes,
}
