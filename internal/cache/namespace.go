// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"fmt"
	"strings"
)

// AnonymousOwner is the owner segment of data written without a signed-in
// user.
const AnonymousOwner = "anon"

// ownerHashLen is the length of a hex SHA-256 owner segment.
const ownerHashLen = 64

// Namespace is the application prefix shared by every key the store writes.
type Namespace struct {
	Slug      string
	Separator string
}

// NewNamespace validates slug and sep. The separator may not occur in the
// slug, in hex digests, in the anonymous sentinel or in any registered
// resource name, so rendered keys always split back unambiguously.
func NewNamespace(slug, sep string) (Namespace, error) {
	if slug == "" || sep == "" {
		return Namespace{}, fmt.Errorf("%w: empty slug or separator", ErrInvalidKey)
	}
	if strings.Contains(slug, sep) {
		return Namespace{}, fmt.Errorf("%w: separator %q occurs in slug %q", ErrInvalidKey, sep, slug)
	}
	if strings.ContainsAny(sep, "0123456789abcdef") || strings.Contains(AnonymousOwner, sep) {
		return Namespace{}, fmt.Errorf("%w: separator %q collides with owner segments", ErrInvalidKey, sep)
	}
	for _, class := range registry {
		if strings.Contains(class.StorageName, sep) {
			return Namespace{}, fmt.Errorf("%w: separator %q occurs in resource %q", ErrInvalidKey, sep, class.StorageName)
		}
	}
	return Namespace{Slug: slug, Separator: sep}, nil
}

// prefix is "{slug}{sep}".
func (n Namespace) prefix() string {
	return n.Slug + n.Separator
}

// NamespaceKey is a fully qualified storage key. The zero Owner marks a
// global key.
type NamespaceKey struct {
	Namespace Namespace
	Owner     string
	Name      string
}

// String renders the key as stored in the KV engine:
// {slug}{sep}{owner}{sep}{name}, or {slug}{sep}{name} for global keys.
func (k NamespaceKey) String() string {
	if k.Owner == "" {
		return k.Namespace.prefix() + k.Name
	}
	return k.Namespace.prefix() + k.Owner + k.Namespace.Separator + k.Name
}

// Global reports whether the key has no owner segment.
func (k NamespaceKey) Global() bool {
	return k.Owner == ""
}

// Resource returns the registered resource named by the first segment of
// the logical name.
func (k NamespaceKey) Resource() (Resource, bool) {
	head, _, _ := strings.Cut(k.Name, k.Namespace.Separator)
	r, ok := byStorageName[head]
	return r, ok
}

// Parse splits a stored key of this namespace. ok is false for keys of
// other applications.
func (n Namespace) Parse(raw string) (NamespaceKey, bool) {
	rest, found := strings.CutPrefix(raw, n.prefix())
	if !found || rest == "" {
		return NamespaceKey{}, false
	}

	if head, tail, cut := strings.Cut(rest, n.Separator); cut && isOwnerSegment(head) && tail != "" {
		return NamespaceKey{Namespace: n, Owner: head, Name: tail}, true
	}
	return NamespaceKey{Namespace: n, Name: rest}, true
}

func isOwnerSegment(s string) bool {
	if s == AnonymousOwner {
		return true
	}
	if len(s) != ownerHashLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
