// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"
)

// KeySize is the length of the device key in bytes (AES-256).
const KeySize = 32

// cbcEngine is the private implementation of [EncryptionEngine].
type cbcEngine struct {
	rand io.Reader
}

// NewEncryptionEngine returns the AES-256-CBC [EncryptionEngine]. IVs are
// read from crypto/rand.
func NewEncryptionEngine() EncryptionEngine {
	return &cbcEngine{rand: rand.Reader}
}

// Encrypt implements [EncryptionEngine].
func (e *cbcEngine) Encrypt(key []byte, plaintext string) (string, error) {
	block, err := newBlock(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(e.rand, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	Zero(padded)

	return marshalEnvelope(iv, ciphertext)
}

// Decrypt implements [EncryptionEngine].
//
// Without a MAC, CBC cannot detect every modification. What is checked:
//   - the envelope shape and hex encoding
//   - strict PKCS#7 padding of the last block
//   - that the plaintext is valid UTF-8 (values are always strings)
//
// A wrong key or an edit of the last block fails at least one of these
// with overwhelming probability. An edit of an earlier block is caught
// only by the UTF-8 check and slips through at a rate well below 0.1%.
func (e *cbcEngine) Decrypt(key []byte, env string) (string, error) {
	block, err := newBlock(key)
	if err != nil {
		return "", err
	}

	iv, ciphertext, err := parseEnvelope(env)
	if err != nil {
		return "", err
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		Zero(padded)
		return "", err
	}
	if !utf8.Valid(plaintext) {
		Zero(padded)
		return "", fmt.Errorf("%w: plaintext is not valid utf-8", ErrDecrypt)
	}

	out := string(plaintext)
	Zero(padded)
	return out, nil
}

func newBlock(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidInput, KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return block, nil
}
