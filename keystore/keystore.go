// Package keystore persists the key pair of a [ckks.Engine] as raw files:
// the secret key as N little-endian int64 values and the public key as 2N
// little-endian int64 values.
package keystore

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/M21121/CKKS-SDKvGramine/ckks"
)

const (
	// SecretKeyFile is the name of the secret key file.
	SecretKeyFile = "ckks_secret_key.bin"
	// PublicKeyFile is the name of the public key file.
	PublicKeyFile = "ckks_public_key.bin"

	secretKeyPerm = 0o600
	publicKeyPerm = 0o644
)

// Fingerprints are the fingerprints of the persisted keys, see [Fingerprint].
// The fingerprint of a key that was not read or written is empty.
type Fingerprints struct {
	SecretKey string
	PublicKey string
}

func (fp Fingerprints) String() string {
	return fmt.Sprintf("sk=%s pk=%s", fp.SecretKey, fp.PublicKey)
}

// Store reads and writes key files in a directory.
type Store struct {
	dir string
	l   *log.Logger
}

// New creates a new [Store] over dir. Progress is reported on l; a nil
// logger discards it.
func New(dir string, l *log.Logger) *Store {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	return &Store{dir: dir, l: l}
}

// SecretKeyPath returns the path of the secret key file.
func (s *Store) SecretKeyPath() string {
	return filepath.Join(s.dir, SecretKeyFile)
}

// PublicKeyPath returns the path of the public key file.
func (s *Store) PublicKeyPath() string {
	return filepath.Join(s.dir, PublicKeyFile)
}

// Fingerprint returns the hex encoding of the first 8 bytes of the blake3 digest of p.
// It identifies a key in logs and is never used to accept or reject a key.
func Fingerprint(p []byte) string {
	hasher := blake3.New()
	hasher.Write(p)
	return hex.EncodeToString(hasher.Sum(nil)[:8])
}

// Save writes both keys of e. The secret key file is readable by its owner only.
// Both keys are written on temporary files before either is renamed into place,
// so that a failure leaves no new key next to an old one.
func (s *Store) Save(e *ckks.Engine) (fp Fingerprints, err error) {

	pk, err := e.ExportPublicKey()
	if err != nil {
		return Fingerprints{}, fmt.Errorf("cannot Save: %w", err)
	}

	sk, err := e.ExportSecretKey()
	if err != nil {
		return Fingerprints{}, fmt.Errorf("cannot Save: %w", err)
	}
	defer clear(sk)

	pkTmp, err := writeTemp(s.PublicKeyPath(), pk, publicKeyPerm)
	if err != nil {
		return Fingerprints{}, fmt.Errorf("cannot Save: %w", err)
	}
	defer os.Remove(pkTmp)

	skTmp, err := writeTemp(s.SecretKeyPath(), sk, secretKeyPerm)
	if err != nil {
		return Fingerprints{}, fmt.Errorf("cannot Save: %w", err)
	}
	defer os.Remove(skTmp)

	if err = os.Rename(skTmp, s.SecretKeyPath()); err != nil {
		return Fingerprints{}, fmt.Errorf("cannot Save: %w", err)
	}

	if err = os.Rename(pkTmp, s.PublicKeyPath()); err != nil {
		return Fingerprints{}, fmt.Errorf("cannot Save: %w", err)
	}

	fp = Fingerprints{SecretKey: Fingerprint(sk), PublicKey: Fingerprint(pk)}

	s.l.Printf("saved secret key to %s (%d bytes, %s)", s.SecretKeyPath(), len(sk), fp.SecretKey)
	s.l.Printf("saved public key to %s (%d bytes, %s)", s.PublicKeyPath(), len(pk), fp.PublicKey)

	return
}

// Load reads both key files and imports them into e. Both files are read and
// their sizes checked before any key is imported, so that e is left unchanged
// on failure. A missing file is an error.
func (s *Store) Load(e *ckks.Engine) (fp Fingerprints, err error) {

	N := e.Parameters().N()

	pk, err := readFileSize(s.PublicKeyPath(), 16*N)
	if err != nil {
		return Fingerprints{}, fmt.Errorf("cannot Load: %w", err)
	}

	sk, err := readFileSize(s.SecretKeyPath(), 8*N)
	if err != nil {
		return Fingerprints{}, fmt.Errorf("cannot Load: %w", err)
	}
	defer clear(sk)

	if err = e.ImportPublicKey(pk); err != nil {
		return Fingerprints{}, fmt.Errorf("cannot Load: %w", err)
	}

	if err = e.ImportSecretKey(sk); err != nil {
		return Fingerprints{}, fmt.Errorf("cannot Load: %w", err)
	}

	fp = Fingerprints{SecretKey: Fingerprint(sk), PublicKey: Fingerprint(pk)}

	s.l.Printf("loaded keys from %s (%s)", s.dir, fp)

	return
}

// readFileSize reads the file at path, which must be exactly size bytes long.
// A size mismatch is reported as [ckks.ErrInvalidArgument].
func readFileSize(path string, size int) (p []byte, err error) {

	if p, err = os.ReadFile(path); err != nil {
		return nil, err
	}

	if len(p) != size {
		clear(p)
		return nil, fmt.Errorf("%s: size %d != %d: %w", path, len(p), size, ckks.ErrInvalidArgument)
	}

	return
}

// writeTemp writes p on a synced temporary file of the directory of path
// and returns its name. The file is removed on failure.
func writeTemp(path string, p []byte, perm os.FileMode) (tmp string, err error) {

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return "", err
	}

	tmp = f.Name()

	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = f.Chmod(perm); err != nil {
		return
	}

	if _, err = f.Write(p); err != nil {
		return
	}

	if err = f.Sync(); err != nil {
		return
	}

	return tmp, f.Close()
}
