package wgapi

import (
	"net/url"
	"strconv"
	"strings"
)

// Limit policy for list endpoints.
const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// ClampLimit applies the list limit policy: values outside 1..MaxLimit are
// replaced by DefaultLimit instead of being rejected.
func ClampLimit(n int) int {
	if n <= 0 || n > MaxLimit {
		return DefaultLimit
	}
	return n
}

type paramValue struct {
	s    string
	list []string
}

func (v paramValue) String() string {
	if v.list != nil {
		return strings.Join(v.list, ",")
	}
	return v.s
}

// Params is the request parameter bag. Keys keep their insertion order so the
// encoded query is deterministic. List values are joined with "," on encoding.
type Params struct {
	keys   []string
	values map[string]paramValue
}

// NewParams returns an empty bag.
func NewParams() *Params {
	return &Params{values: make(map[string]paramValue)}
}

func (p *Params) put(key string, v paramValue) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
}

// Set stores a string value, replacing any previous value for key.
func (p *Params) Set(key, value string) {
	p.put(key, paramValue{s: value})
}

// SetInt stores an integer value.
func (p *Params) SetInt(key string, n int) {
	p.Set(key, strconv.Itoa(n))
}

// SetInt64 stores an integer value.
func (p *Params) SetInt64(key string, n int64) {
	p.Set(key, strconv.FormatInt(n, 10))
}

// SetList stores a list value, sent as a comma-separated string.
func (p *Params) SetList(key string, values []string) {
	list := make([]string, len(values))
	copy(list, values)
	p.put(key, paramValue{list: list})
}

// Get returns the value for key in its encoded (joined) form.
func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	if !ok {
		return "", false
	}
	return v.String(), true
}

// Has reports whether key is set.
func (p *Params) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Len returns the number of keys in the bag.
func (p *Params) Len() int {
	return len(p.keys)
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Encode form-encodes the bag ("+" for spaces) in insertion order.
func (p *Params) Encode() string {
	var b strings.Builder
	for i, k := range p.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.values[k].String()))
	}
	return b.String()
}

// cleanList trims the entries of values and drops the empty ones.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// setFields adds the "fields" entry when at least one field is named.
func setFields(p *Params, fields []string) {
	if f := cleanList(fields); len(f) > 0 {
		p.SetList("fields", f)
	}
}

func int64List(ids []int64) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatInt(id, 10)
	}
	return out
}
