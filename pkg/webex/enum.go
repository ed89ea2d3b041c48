package webex

// Enum is implemented by every string enum in this package. Values outside
// the known set decode without error and keep the raw wire token, so IsKnown
// is the only way to tell a server-side addition from a known literal.
type Enum interface {
	~string
	IsKnown() bool
}

// KnownOr returns v when it is a known literal and fallback otherwise.
func KnownOr[E Enum](v E, fallback E) E {
	if v.IsKnown() {
		return v
	}

	return fallback
}

// RawEnum returns the wire token of v, known or not.
func RawEnum[E Enum](v E) string {
	return string(v)
}
