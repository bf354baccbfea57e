package crypto

import (
	"bytes"
	"crypto/subtle"
)

// pkcs7Pad appends between 1 and blockSize bytes, each holding the pad
// length. A full block is added when data is already block-aligned.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

// pkcs7Unpad strips PKCS#7 padding and rejects anything that is not exactly
// n copies of byte n with 1 <= n <= blockSize.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrPadding
	}

	want := bytes.Repeat([]byte{byte(n)}, n)
	if subtle.ConstantTimeCompare(data[len(data)-n:], want) != 1 {
		return nil, ErrPadding
	}

	return data[:len(data)-n], nil
}
