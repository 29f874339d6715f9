package ids

import (
	"errors"
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrMalformed reports an identifier that is not a canonical ULID.
var ErrMalformed = errors.New("malformed identifier")

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

// New returns a lexicographically sortable document identifier.
func New() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// Validate checks that id was produced by New. Stores compare ids
// byte-wise, so only the canonical upper-case form is accepted.
func Validate(id string) error {
	parsed, err := ulid.ParseStrict(id)
	if err != nil || parsed.String() != id {
		return ErrMalformed
	}
	return nil
}
