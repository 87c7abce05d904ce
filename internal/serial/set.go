package serial

import "sort"

// Set is an unordered collection of unique tokens. Iteration order is not
// meaningful; use Sorted for deterministic output.
type Set map[string]struct{}

// NewSet returns a set holding the given tokens.
func NewSet(tokens ...string) Set {
	s := make(Set, len(tokens))
	for _, t := range tokens {
		s.Add(t)
	}
	return s
}

// Add inserts a token. It reports whether the token was not already present.
func (s Set) Add(token string) bool {
	if _, ok := s[token]; ok {
		return false
	}
	s[token] = struct{}{}
	return true
}

// Has reports whether the token is present.
func (s Set) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of tokens.
func (s Set) Len() int { return len(s) }

// Union returns a new set containing the tokens of s and other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for t := range s {
		out[t] = struct{}{}
	}
	for t := range other {
		out[t] = struct{}{}
	}
	return out
}

// Difference returns a new set containing the tokens of s not in other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for t := range s {
		if !other.Has(t) {
			out[t] = struct{}{}
		}
	}
	return out
}

// Sorted returns the tokens in ascending byte-wise order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
