package auth

import (
	"encoding/json"

	goerrors "github.com/goliatone/go-errors"
)

// Identity is the authenticated user's record as far as authorization cares:
// who they are and what tier they hold. Role is set exactly once at
// login/restore.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Valid reports whether the identity carries the fields authorization
// decisions depend on.
func (i Identity) Valid() bool {
	return i.ID != "" && i.Role.IsValid()
}

// IsZero reports whether the identity is empty.
func (i Identity) IsZero() bool {
	return i == Identity{}
}

// identitySchemaVersion tags persisted identities so the stored shape can
// evolve without silently misreading old payloads.
const identitySchemaVersion = 1

type storedIdentity struct {
	Version  int      `json:"v"`
	Identity Identity `json:"identity"`
}

// EncodeIdentity serializes an identity for the CredentialStore.
func EncodeIdentity(identity Identity) (string, error) {
	data, err := json.Marshal(storedIdentity{
		Version:  identitySchemaVersion,
		Identity: identity,
	})
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to encode identity")
	}
	return string(data), nil
}

// DecodeIdentity deserializes a persisted identity. Unversioned payloads (a
// bare identity object, as written by earlier console builds) are still
// accepted.
func DecodeIdentity(raw string) (Identity, error) {
	var envelope storedIdentity
	if err := json.Unmarshal([]byte(raw), &envelope); err == nil && envelope.Version > 0 {
		if envelope.Version > identitySchemaVersion {
			return Identity{}, goerrors.New("unsupported identity schema version", goerrors.CategoryBadInput).
				WithMetadata(map[string]any{"version": envelope.Version})
		}
		return envelope.Identity, nil
	}

	var identity Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return Identity{}, goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to decode identity")
	}
	return identity, nil
}
