package cachecontrol

// Decision is the outcome of evaluating a conditional request.
type Decision int

const (
	// Full means the client's validators did not match; send the complete
	// representation with status 200.
	Full Decision = iota
	// NotModified means a validator matched; send status 304, no body,
	// no Content-Type, cache and validator headers only.
	NotModified
)

// Policy says which validators an endpoint honors.
type Policy struct {
	ETag         bool
	LastModified bool
}

// RequestValidators are the conditional headers supplied by the client.
// Either may be empty.
type RequestValidators struct {
	IfNoneMatch     string
	IfModifiedSince string
}

// Evaluate compares the client's validators against the current ones.
//
// An ETag matches on byte-for-byte equality with the current fingerprint;
// weak/strong tags are not distinguished. A timestamp matches on exact
// string equality with the currently formatted validator time. When the
// policy honors both, either match alone is sufficient. Note that this
// inclusive-OR differs from RFC 9110, which gives If-None-Match
// precedence when both validators are present; the demo keeps the OR so
// each validator can be exercised independently.
//
// Absent or malformed validators never match.
func Evaluate(rv RequestValidators, etag, lastModified string, p Policy) Decision {
	if p.ETag && etag != "" && rv.IfNoneMatch == etag {
		return NotModified
	}
	if p.LastModified && lastModified != "" && rv.IfModifiedSince == lastModified {
		return NotModified
	}
	return Full
}
