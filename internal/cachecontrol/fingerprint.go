// Package cachecontrol implements the decision logic behind the demo
// endpoints: deriving validators (ETag, Last-Modified) from server state
// and evaluating conditional requests against them. The directive strings
// each endpoint emits live here too, in the strategy catalog.
package cachecontrol

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Content is the logical content of a representation, i.e. the fields that
// identify one version of it. The construction timestamp is deliberately
// not part of it: hashing a per-request timestamp would make every
// fingerprint unique and no conditional request could ever match.
type Content struct {
	Message  string
	Counter  int
	Version  int
	Strategy string
}

// Fingerprint derives a strong ETag from the representation's logical
// content. Identical content always yields an identical tag within a
// process. The tag is quoted, ready to emit as a header value.
func Fingerprint(c Content) string {
	encoded := strings.Join([]string{
		c.Message,
		strconv.Itoa(c.Counter),
		strconv.Itoa(c.Version),
		c.Strategy,
	}, "|")
	sum := sha256.Sum256([]byte(encoded))
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

// FormatValidatorTime formats a timestamp the way the Last-Modified and
// If-Modified-Since headers expect it.
func FormatValidatorTime(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}
