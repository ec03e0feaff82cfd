package cachecontrol

// Strategy describes one demo endpoint: the Cache-Control value it emits,
// which validators it honors, and the message its body carries. Name
// doubles as the route path and the cacheStrategy label in the body.
type Strategy struct {
	Name         string
	CacheControl string
	Policy       Policy
	Message      string
}

// UsesValidators reports whether the strategy needs the conditional
// validator consulted before responding.
func (s Strategy) UsesValidators() bool {
	return s.Policy.ETag || s.Policy.LastModified
}

// Strategies is the fixed catalog of demo endpoints. The directive
// strings are the point of the demo and must be emitted verbatim.
var Strategies = []Strategy{
	{
		Name:         "max-age",
		CacheControl: "public, max-age=60",
		Message:      "This response is cacheable for 60 seconds",
	},
	{
		Name:         "no-cache",
		CacheControl: "no-cache",
		Message:      "This response may be stored but must be revalidated before reuse",
	},
	{
		Name:         "no-store",
		CacheControl: "no-store",
		Message:      "This response must not be stored by any cache",
	},
	{
		Name:         "stale-while-revalidate",
		CacheControl: "public, max-age=30, stale-while-revalidate=60",
		Message:      "Fresh for 30 seconds, then served stale for up to 60 seconds while revalidating in the background",
	},
	{
		Name:         "stale-if-error",
		CacheControl: "public, max-age=30, stale-if-error=300",
		Message:      "Fresh for 30 seconds, then served stale for up to 300 seconds if the origin errors",
	},
	{
		Name:         "etag-demo",
		CacheControl: "public, max-age=0, must-revalidate",
		Policy:       Policy{ETag: true},
		Message:      "Revalidated on every request using the ETag validator",
	},
	{
		Name:         "last-modified-demo",
		CacheControl: "public, max-age=0, must-revalidate",
		Policy:       Policy{LastModified: true},
		Message:      "Revalidated on every request using the Last-Modified validator",
	},
	{
		Name:         "combined-strategy",
		CacheControl: "public, max-age=20, stale-while-revalidate=40, must-revalidate",
		Policy:       Policy{ETag: true, LastModified: true},
		Message:      "Combines max-age, stale-while-revalidate and both validators",
	},
}

// StrategyByName looks a strategy up by its name.
func StrategyByName(name string) (Strategy, bool) {
	for _, s := range Strategies {
		if s.Name == name {
			return s, true
		}
	}
	return Strategy{}, false
}
