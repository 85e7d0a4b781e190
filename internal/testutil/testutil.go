// Package testutil holds shared test fixtures.
package testutil

import (
	"testing"
	"time"
)

// MustDate parses an ISO calendar date, the wire and clustering-key form
// observations use.
func MustDate(t testing.TB, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}
