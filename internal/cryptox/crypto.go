// Package cryptox is the key-derivation and authenticated-encryption boundary
// of the vault. Keys are derived with Argon2id and payloads are sealed with
// AES-256-GCM using a fresh random 12-byte nonce per call.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pinvault/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	KeyLength   = 32
	NonceLength = 12
	SaltLength  = 16

	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
)

var (
	ErrInvalidKeyLength   = errors.New("cryptox: invalid key length")
	ErrInvalidNonceLength = errors.New("cryptox: invalid nonce length")
	// ErrDecryptionFailed is returned for any payload that does not
	// authenticate under the given key and nonce.
	ErrDecryptionFailed = errors.New("cryptox: decryption failed")
)

// NewSalt returns a random salt for key derivation.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltLength)
}

// DeriveKey derives a 32-byte content key from a secret (PIN or password)
// and a per-account salt.
func DeriveKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, argon2Time, argon2Memory, argon2Threads, KeyLength)
}

// MakeVerifier returns the value stored server-side to check a derived key
// without keeping the key itself.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// CheckVerifier reports whether key matches verifier, in constant time.
func CheckVerifier(key, verifier []byte) bool {
	return subtle.ConstantTimeCompare(MakeVerifier(key), verifier) == 1
}

// Encrypt seals plaintext with AES-256-GCM and returns the ciphertext (tag
// appended) and the nonce used.
func Encrypt(key, plaintext []byte) (ciphertext, nonce []byte, err error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = make([]byte, NonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("cryptox: nonce: %w", err)
	}

	return aead.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// Decrypt opens a payload produced by Encrypt. Any authentication failure,
// including a wrong key, yields ErrDecryptionFailed.
func Decrypt(key, ciphertext, nonce []byte) ([]byte, error) {
	if len(nonce) != NonceLength {
		return nil, ErrInvalidNonceLength
	}
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < aead.Overhead() {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyLength {
		return nil, ErrInvalidKeyLength
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptox: gcm: %w", err)
	}
	return aead, nil
}
