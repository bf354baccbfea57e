// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
	"testing"
)

func TestHash_MatchesSHA256OfInputAndSalt(t *testing.T) {
	svc := NewHashService("pepper")

	got, err := svc.Hash("user-42")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}

	sum := sha256.Sum256([]byte("user-42pepper"))
	if want := hex.EncodeToString(sum[:]); got != want {
		t.Fatalf("Hash = %s, want %s", got, want)
	}
}

func TestHash_ExplicitSaltOverridesDefault(t *testing.T) {
	svc := NewHashService("pepper")

	withDefault, _ := svc.Hash("user-42")
	withExplicit, err := svc.Hash("user-42", "other")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if withDefault == withExplicit {
		t.Fatal("explicit salt must change the digest")
	}

	noSalt, _ := NewHashService("").Hash("user-42")
	sum := sha256.Sum256([]byte("user-42"))
	if noSalt != hex.EncodeToString(sum[:]) {
		t.Fatal("empty default salt must hash the bare input")
	}
}

func TestHash_Deterministic(t *testing.T) {
	svc := NewHashService("")

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = svc.Hash("same input")
		}()
	}
	wg.Wait()

	for i, r := range results {
		if r != results[0] {
			t.Fatalf("result %d = %s, want %s", i, r, results[0])
		}
	}
}

func TestHash_EmptyInput(t *testing.T) {
	_, err := NewHashService("").Hash("")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	svc := NewHashService("s")
	digest, _ := svc.Hash("token")

	ok, err := svc.Verify("token", digest)
	if err != nil || !ok {
		t.Fatalf("Verify(token) = %v, %v; want true, nil", ok, err)
	}

	ok, err = svc.Verify("other", digest)
	if err != nil || ok {
		t.Fatalf("Verify(other) = %v, %v; want false, nil", ok, err)
	}

	ok, _ = svc.Verify("token", digest, "different-salt")
	if ok {
		t.Fatal("Verify with a different salt must fail")
	}
}
