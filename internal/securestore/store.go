package securestore

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// Store is a keyed credential store, fully independent of the relational
// database. The whole map is sealed with XChaCha20-Poly1305 under a key
// derived from the passphrase, and rewritten on every mutation.
type Store struct {
	mu         sync.Mutex
	path       string
	passphrase string
}

var (
	ErrInvalidKey        = errors.New("invalid_key")
	ErrInvalidPassphrase = errors.New("invalid_passphrase")
)

const saltSize = 16

func New(path, passphrase string) (*Store, error) {
	if passphrase == "" {
		return nil, ErrInvalidPassphrase
	}
	return &Store{path: path, passphrase: passphrase}, nil
}

func (s *Store) Save(key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return s.persist(entries)
}

// Read returns the stored value and whether the key exists.
func (s *Store) Read(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := entries[key]
	return value, ok, nil
}

// Delete removes one key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	delete(entries, key)
	return s.persist(entries)
}

func (s *Store) ReadAll() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *Store) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read secure store: %w", err)
	}

	if len(raw) < saltSize+chacha20poly1305.NonceSizeX {
		return nil, fmt.Errorf("secure store file is truncated")
	}

	salt := raw[:saltSize]
	nonce := raw[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	sealed := raw[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := s.aead(salt)
	if err != nil {
		return nil, err
	}

	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("unseal secure store: %w", err)
	}

	entries := map[string]string{}
	if err := json.Unmarshal(plain, &entries); err != nil {
		return nil, fmt.Errorf("decode secure store: %w", err)
	}
	return entries, nil
}

func (s *Store) persist(entries map[string]string) error {
	plain, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode secure store: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}

	aead, err := s.aead(salt)
	if err != nil {
		return err
	}

	sealed := aead.Seal(nil, nonce, plain, nil)

	out := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, sealed...)

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create secure store dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, out, 0o600); err != nil {
		return fmt.Errorf("write secure store: %w", err)
	}
	return nil
}

func (s *Store) aead(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(s.passphrase), salt, 1<<15, 8, 1, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return chacha20poly1305.NewX(key)
}
