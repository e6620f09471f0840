// Package store provides CredentialStore backends: in-memory for tests,
// file-backed for a single profile, redis for shared deployments. Backends do
// pure key/value durability; none of them parse or validate what they hold.
package store

import (
	auth "github.com/staffdesk/go-auth"
)

// compile-time interface checks for every backend
var (
	_ auth.CredentialStore = (*MemoryStore)(nil)
	_ auth.CredentialStore = (*FileStore)(nil)
	_ auth.CredentialStore = (*RedisStore)(nil)
)

// Every miss and failure builds a fresh error; the shared sentinels in the
// auth package are never mutated.
func notFound(key string) error {
	return auth.NewCredentialNotFoundError(key)
}

func unavailable(err error) error {
	return auth.NewStorageUnavailableError(err)
}
