// Package cache implements the namespaced, partly encrypted key-value cache
// on top of a [store.KVEngine].
//
// Every stored key has the form {slug}{sep}{owner}{sep}{name}. The owner is
// the hex SHA-256 of the user identity or the sentinel "anon"; global
// resources such as the current-user marker omit it. Whether an entry is
// encrypted is a property of its resource, see [Lookup].
package cache
