package convid

import (
	"crypto/rand"
	"strings"

	"github.com/oklog/ulid/v2"
)

const prefix = "cnv_"

// entropy is shared by every request goroutine. Monotonic state is not
// safe for concurrent reads, so it goes through the locked reader.
var entropy = &ulid.LockedMonotonicReader{
	MonotonicReader: ulid.Monotonic(rand.Reader, 0),
}

// New returns a cnv_* ULID string identifying one conversion request.
func New() string {
	return prefix + strings.ToLower(ulid.MustNew(ulid.Now(), entropy).String())
}

// IsValid reports whether the string is a cnv_* ULID.
func IsValid(value string) bool {
	if !strings.HasPrefix(value, prefix) {
		return false
	}
	_, err := Parse(value)
	return err == nil
}

// Parse strips the cnv_ prefix and returns the ULID.
func Parse(value string) (ulid.ULID, error) {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, prefix)
	value = strings.TrimPrefix(value, strings.ToUpper(prefix))
	return ulid.Parse(value)
}
