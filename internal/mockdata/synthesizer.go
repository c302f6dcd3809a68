// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package mockdata synthesizes plausible sample values from a field's type and name.
package mockdata

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/dacolabs/fakegen/internal/codegen"
)

// Source is the random data the Synthesizer draws from. *gofakeit.Faker satisfies it.
type Source interface {
	Email() string
	Username() string
	FirstName() string
	LastName() string
	Name() string
	Sentence(wordCount int) string
	Paragraph(paragraphCount, sentenceCount, wordCount int, separator string) string
	Street() string
	City() string
	Country() string
	Phone() string
	Company() string
	URL() string
	Color() string
	UUID() string
	Zip() string
	Word() string
	IntRange(minInt, maxInt int) int
	Float64() float64
	DateRange(start, end time.Time) time.Time
}

var _ Source = (*gofakeit.Faker)(nil)

// Synthesizer produces sample values. It holds no state of its own beyond its source.
type Synthesizer struct {
	src Source
	now func() time.Time
}

var _ codegen.ValueSource = (*Synthesizer)(nil)

// New returns a Synthesizer backed by gofakeit. A zero seed picks a random one.
func New(seed uint64) *Synthesizer {
	return NewWithSource(gofakeit.New(seed), time.Now)
}

// NewWithSource returns a Synthesizer drawing from src, with dates relative to now().
func NewWithSource(src Source, now func() time.Time) *Synthesizer {
	return &Synthesizer{src: src, now: now}
}

// Value returns a sample value for a field. The lowercased field name is matched
// against ordered heuristics for its type; the first match wins.
func (s *Synthesizer) Value(t codegen.FieldType, fieldName string) codegen.Value {
	name := strings.ToLower(fieldName)

	switch t {
	case codegen.TypeString:
		return codegen.TextValue(s.String(name))
	case codegen.TypeInteger:
		return codegen.IntValue(s.Integer(name))
	case codegen.TypeBoolean:
		return codegen.BoolValue(s.Boolean(name))
	case codegen.TypeDate:
		return codegen.DateValue(s.Date(name))
	case codegen.TypeArray:
		return codegen.ListValue(s.Array(name))
	default:
		return codegen.TextValue(s.src.Word())
	}
}

// String returns a text value for a lowercased field name.
func (s *Synthesizer) String(name string) string {
	for _, r := range stringRules {
		if r.match(name) {
			return r.gen(s.src)
		}
	}
	return s.src.Word()
}

// Integer returns an integer within the inclusive range selected by name.
func (s *Synthesizer) Integer(name string) int {
	for _, r := range integerRules {
		if r.match(name) {
			return s.src.IntRange(r.min, r.max)
		}
	}
	return s.src.IntRange(1, 1000)
}

// Boolean returns true with the probability selected by name.
func (s *Synthesizer) Boolean(name string) bool {
	for _, r := range booleanRules {
		if r.match(name) {
			return s.src.Float64() < r.probability
		}
	}
	return s.src.Float64() < 0.5
}

// Date returns a past date within the window selected by name.
func (s *Synthesizer) Date(name string) time.Time {
	now := s.now()
	for _, r := range dateRules {
		if r.match(name) {
			start, end := r.window(now)
			return s.src.DateRange(start, end)
		}
	}
	return s.src.DateRange(now.AddDate(-1, 0, 0), now)
}

// Array returns a list of strings whose content and length are selected by name.
func (s *Synthesizer) Array(name string) []string {
	switch {
	case contains("tags", "categories")(name):
		return repeat(s.src.IntRange(2, 5), s.src.Word)
	case contains("email")(name):
		return repeat(s.src.IntRange(1, 3), s.src.Email)
	default:
		return repeat(3, s.src.Word)
	}
}

func repeat(n int, gen func() string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = gen()
	}
	return out
}
