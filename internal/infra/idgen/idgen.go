// Package idgen issues indent and transaction identifiers.
//
// The IND/TRX prefix and the second-resolution timestamp are kept for
// compatibility with existing slips and reports. A ULID randomness suffix
// makes identifiers created within the same second distinct.
package idgen

import (
	"crypto/rand"
	"time"

	"pumpdesk/internal/domain/service"

	"github.com/oklog/ulid/v2"
)

const (
	indentPrefix      = "IND"
	transactionPrefix = "TRX"
	timestampLayout   = "20060102150405"

	// ulidTimeChars is the length of the timestamp part of an encoded ULID.
	ulidTimeChars = 10
)

type ulidGenerator struct {
	entropy *ulid.LockedMonotonicReader
}

// New returns a generator whose suffixes are strictly increasing within a millisecond.
func New() service.IDGenerator {
	return &ulidGenerator{
		entropy: &ulid.LockedMonotonicReader{MonotonicReader: ulid.Monotonic(rand.Reader, 0)},
	}
}

func (g *ulidGenerator) NewIndentID(now time.Time) string {
	return g.format(indentPrefix, now)
}

func (g *ulidGenerator) NewTransactionID(now time.Time) string {
	return g.format(transactionPrefix, now)
}

func (g *ulidGenerator) format(prefix string, now time.Time) string {
	id, err := ulid.New(ulid.Timestamp(now), g.entropy)
	if err != nil {
		// Monotonic entropy overflowed within one millisecond.
		id = ulid.Make()
	}

	return prefix + now.Format(timestampLayout) + "-" + id.String()[ulidTimeChars:]
}
