package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// InsanityType classifies a sanity finding.
type InsanityType uint8

const (
	// InsanityValueMismatch indicates multiple distinct values cached under the same reader and field.
	InsanityValueMismatch InsanityType = iota + 1
	// InsanitySubreader indicates a field cached both on a reader and on one of its descendants.
	InsanitySubreader
	// InsanityExpected marks a finding a caller has judged intentional.
	// The checker never produces it.
	InsanityExpected
)

// String returns the upper case name of the type.
func (t InsanityType) String() string {
	switch t {
	case InsanityValueMismatch:
		return "VALUE_MISMATCH"
	case InsanitySubreader:
		return "SUBREADER"
	case InsanityExpected:
		return "EXPECTED"
	default:
		return fmt.Sprintf("InsanityType(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the declared types.
func (t InsanityType) Valid() bool {
	return t >= InsanityValueMismatch && t <= InsanityExpected
}

// MarshalText implements encoding.TextMarshaler.
func (t InsanityType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, zerr.With(zerr.Wrap(ErrInvalidInsanityType, "cannot marshal insanity type"), "type", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *InsanityType) UnmarshalText(text []byte) error {
	parsed, err := ParseInsanityType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseInsanityType parses the name of an InsanityType, ignoring case.
func ParseInsanityType(s string) (InsanityType, error) {
	for t := InsanityValueMismatch; t <= InsanityExpected; t++ {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrInvalidInsanityType, "cannot parse insanity type"), "type", s)
}

// Insanity is a problem found in the field cache, together with the entries proving it.
type Insanity struct {
	typ     InsanityType
	msg     string
	entries []*CacheEntry
}

// NewInsanity creates an Insanity.
// It fails if the type is invalid or no entries are given.
func NewInsanity(typ InsanityType, msg string, entries ...*CacheEntry) (Insanity, error) {
	if !typ.Valid() {
		return Insanity{}, zerr.With(zerr.Wrap(ErrInvalidInsanityType, "cannot create insanity"), "type", uint8(typ))
	}
	if len(entries) == 0 {
		return Insanity{}, zerr.With(zerr.Wrap(ErrNoEntries, "cannot create insanity"), "message", msg)
	}
	return Insanity{
		typ:     typ,
		msg:     msg,
		entries: append([]*CacheEntry(nil), entries...),
	}, nil
}

// Type returns the type of the insanity.
func (i Insanity) Type() InsanityType {
	return i.typ
}

// Msg returns the description of the insanity.
func (i Insanity) Msg() string {
	return i.msg
}

// Entries returns the cache entries the insanity was derived from.
func (i Insanity) Entries() []*CacheEntry {
	return append([]*CacheEntry(nil), i.entries...)
}

// Fingerprint returns a stable hash of the type and message.
// Entry identities are left out so the fingerprint survives process restarts.
func (i Insanity) Fingerprint() string {
	return fingerprint(i.typ, i.msg)
}

// AsExpected re-tags the insanity as intentional.
func (i Insanity) AsExpected(reason string) ExpectedInsanity {
	return ExpectedInsanity{Insanity: i, Reason: reason}
}

// String renders the insanity: a "<TYPE>: <msg>" line followed by one
// tab-indented line per entry.
func (i Insanity) String() string {
	return render(i.typ, i.msg, i.entries)
}

// ExpectedInsanity is an Insanity a caller has classified as intentional.
type ExpectedInsanity struct {
	Insanity
	Reason string
}

// Type always returns InsanityExpected.
func (e ExpectedInsanity) Type() InsanityType {
	return InsanityExpected
}

// OriginalType returns the type the checker reported.
func (e ExpectedInsanity) OriginalType() InsanityType {
	return e.Insanity.Type()
}

// String renders the insanity with the EXPECTED type.
func (e ExpectedInsanity) String() string {
	return render(InsanityExpected, e.msg, e.entries)
}

func render(typ InsanityType, msg string, entries []*CacheEntry) string {
	var b strings.Builder
	b.WriteString(typ.String())
	b.WriteString(": ")
	b.WriteString(msg)
	b.WriteByte('\n')
	for _, e := range entries {
		b.WriteByte('\t')
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func fingerprint(typ InsanityType, msg string) string {
	d := xxhash.New()
	_, _ = d.WriteString(typ.String())
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(msg)
	return fmt.Sprintf("%016x", d.Sum64())
}
