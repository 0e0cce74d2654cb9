package ftp

import (
	"errors"
	"time"
)

var ErrNoFTP = errors.New("no ftp entry for user")

// Entry is one row of the append-only FTP history. The current FTP of a user
// is the entry with the latest effective date not in the future: appending a
// new row supersedes the old one without any mutable "is current" flag to
// race on.
type Entry struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"userId"`
	FTP           float64   `json:"ftp"`
	LTHR          float64   `json:"lthr"`
	EffectiveDate time.Time `json:"effectiveDate"`
	CreatedAt     time.Time `json:"createdAt"`
}
