package service

import "time"

// IDGenerator issues the human-readable identifiers of indents and transactions.
type IDGenerator interface {
	// NewIndentID returns an ID of the form IND<YYYYMMDDHHMMSS>-<suffix>.
	NewIndentID(now time.Time) string

	// NewTransactionID returns an ID of the form TRX<YYYYMMDDHHMMSS>-<suffix>.
	NewTransactionID(now time.Time) string
}
