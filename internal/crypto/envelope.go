package crypto

import (
	"bytes"
	"crypto/aes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// envelope is the persisted form of an encrypted value. The JSON layout is
// fixed: exactly the two lowercase hex fields below.
type envelope struct {
	IV         string `json:"iv"`
	Ciphertext string `json:"ciphertext"`
}

func marshalEnvelope(iv, ciphertext []byte) (string, error) {
	data, err := json.Marshal(envelope{
		IV:         hex.EncodeToString(iv),
		Ciphertext: hex.EncodeToString(ciphertext),
	})
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return string(data), nil
}

// parseEnvelope decodes raw strictly: unknown or missing fields, uppercase
// hex, trailing data and wrong lengths are all ErrInvalidEnvelope.
func parseEnvelope(raw string) (iv, ciphertext []byte, err error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()

	var env envelope
	if err := dec.Decode(&env); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, fmt.Errorf("%w: trailing data", ErrInvalidEnvelope)
	}

	iv, err = decodeLowerHex(env.IV)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: iv: %v", ErrInvalidEnvelope, err)
	}
	if len(iv) != aes.BlockSize {
		return nil, nil, fmt.Errorf("%w: iv must be %d bytes", ErrInvalidEnvelope, aes.BlockSize)
	}

	ciphertext, err = decodeLowerHex(env.Ciphertext)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ciphertext: %v", ErrInvalidEnvelope, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, nil, fmt.Errorf("%w: ciphertext is not a whole number of blocks", ErrInvalidEnvelope)
	}

	return iv, ciphertext, nil
}

func decodeLowerHex(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("empty")
	}
	if !bytes.Equal([]byte(s), bytes.ToLower([]byte(s))) {
		return nil, fmt.Errorf("not lowercase")
	}
	return hex.DecodeString(s)
}
