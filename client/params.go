package client

import (
	"net/url"
	"strings"
)

type param struct {
	key   string
	value string
}

// Params is an ordered list of query parameters
type Params struct {
	pairs []param
}

// NewParams starts a parameter list with the given chain short name
func NewParams(chainShortName string) *Params {
	p := &Params{}
	return p.Set("chainShortName", chainShortName)
}

// Set appends key=value unconditionally
func (p *Params) Set(key, value string) *Params {
	p.pairs = append(p.pairs, param{key: key, value: value})
	return p
}

// SetOptional appends key=value only when value is not empty
func (p *Params) SetOptional(key, value string) *Params {
	if value == "" {
		return p
	}
	return p.Set(key, value)
}

// Join appends key with values separated by commas
func (p *Params) Join(key string, values []string) *Params {
	return p.Set(key, strings.Join(values, ","))
}

// Get returns the first value stored for key
func (p *Params) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	for _, pair := range p.pairs {
		if pair.key == key {
			return pair.value, true
		}
	}
	return "", false
}

// Len returns the number of pairs
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.pairs)
}

// Encode renders the pairs as a query string, keeping insertion order
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}

	var b strings.Builder
	for i, pair := range p.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.value))
	}
	return b.String()
}
