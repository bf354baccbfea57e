// Package crypto holds the device-key lifecycle and the value cipher of the
// local cache: identity hashing, the lazily created AES-256 device key and
// the CBC envelope format {"iv","ciphertext"} used for sensitive entries.
package crypto
