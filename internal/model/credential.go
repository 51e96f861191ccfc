package model

import (
	"encoding/json"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost balances hashing time against brute-force resistance for an
// interactive CLI.
const bcryptCost = 12

// Credential is a write-only password. The plaintext is hashed on Set and
// can never be read back; the only query is Verify. Persistence layers see
// the bcrypt hash through StoredHash, from which the plaintext is not
// recoverable.
type Credential struct {
	hash string
}

// NewCredential hashes a plaintext password into a credential.
func NewCredential(plain string) (Credential, error) {
	var c Credential
	if err := c.Set(plain); err != nil {
		return Credential{}, err
	}
	return c, nil
}

// CredentialFromHash restores a credential from a previously stored hash.
func CredentialFromHash(hash string) Credential {
	return Credential{hash: hash}
}

// Set replaces the stored password.
func (c *Credential) Set(plain string) error {
	bs, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return err
	}
	c.hash = string(bs)
	return nil
}

// Verify reports whether the candidate matches the stored password.
// An empty credential matches nothing.
func (c Credential) Verify(candidate string) bool {
	if c.hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(c.hash), []byte(candidate)) == nil
}

// Empty reports whether a password has ever been set.
func (c Credential) Empty() bool {
	return c.hash == ""
}

// StoredHash returns the bcrypt hash for persistence.
func (c Credential) StoredHash() string {
	return c.hash
}

func (c Credential) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.hash)
}

func (c *Credential) UnmarshalJSON(bs []byte) error {
	return json.Unmarshal(bs, &c.hash)
}
