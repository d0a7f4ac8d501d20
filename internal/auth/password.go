package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	apperrors "github.com/spec-kit/careerhub/pkg/util"
)

// maxPasswordBytes bounds hashing input; argon2 itself has no practical
// limit but unbounded input is rejected as malformed.
const maxPasswordBytes = 1024

const (
	saltLength = 16
	keyLength  = 32
)

// Argon2Params tunes the memory-hard hash. The encoded hash is
// self-describing, so params may change without invalidating stored hashes.
type Argon2Params struct {
	MemoryKiB   uint32
	Iterations  uint32
	Parallelism uint8
}

// DefaultArgon2Params returns the parameters used when none are configured.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{MemoryKiB: 64 * 1024, Iterations: 1, Parallelism: 4}
}

// HashPassword produces a salted argon2id hash in PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<base64-salt>$<base64-hash>
func HashPassword(password string, params Argon2Params) (string, error) {
	if password == "" {
		return "", apperrors.NewValidationError("password must not be empty", nil)
	}
	if len(password) > maxPasswordBytes {
		return "", apperrors.NewValidationError("password exceeds maximum length", nil)
	}
	if params.MemoryKiB == 0 || params.Iterations == 0 || params.Parallelism == 0 {
		params = DefaultArgon2Params()
	}

	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", apperrors.NewInternalError(err)
	}

	key := argon2.IDKey([]byte(password), salt, params.Iterations, params.MemoryKiB, params.Parallelism, keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		params.MemoryKiB,
		params.Iterations,
		params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return encoded, nil
}

// VerifyPassword checks a plaintext password against an encoded hash. It
// returns false for any mismatch or malformed hash and never raises for a
// wrong password. The digest comparison is constant-time.
func VerifyPassword(password, encoded string) bool {
	if password == "" || len(password) > maxPasswordBytes {
		return false
	}

	params, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Iterations, params.MemoryKiB, params.Parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

func decodeHash(encoded string) (Argon2Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return Argon2Params{}, nil, nil, fmt.Errorf("malformed argon2 hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Argon2Params{}, nil, nil, err
	}
	if version != argon2.Version {
		return Argon2Params{}, nil, nil, fmt.Errorf("unsupported argon2 version %d", version)
	}

	var params Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.MemoryKiB, &params.Iterations, &params.Parallelism); err != nil {
		return Argon2Params{}, nil, nil, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Argon2Params{}, nil, nil, err
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return Argon2Params{}, nil, nil, err
	}
	if len(key) == 0 {
		return Argon2Params{}, nil, nil, fmt.Errorf("empty argon2 digest")
	}
	return params, salt, key, nil
}
