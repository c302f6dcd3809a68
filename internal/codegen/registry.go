// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package codegen renders ordered field schemas as source code declarations,
// optionally followed by a collection of synthesized sample instances.
package codegen

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNoGenerator indicates the (language, format) pair is not registered.
	ErrNoGenerator = errors.New("no generator found")

	// ErrUnknownLanguage indicates the language is not registered.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrInvalidCount indicates a record count below one.
	ErrInvalidCount = errors.New("record count must be at least 1")
)

// GenerateFunc renders one (language, format) combination.
type GenerateFunc func(g *Generation) (string, error)

// FormatInfo describes a registered format.
type FormatInfo struct {
	ID   Format `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// LanguageInfo describes a registered language and its formats in registration order.
type LanguageInfo struct {
	ID      Language     `json:"id" yaml:"id"`
	Name    string       `json:"name" yaml:"name"`
	Formats []FormatInfo `json:"formats" yaml:"formats"`
}

type generatorKey struct {
	language Language
	format   Format
}

type languageEntry struct {
	info  LanguageInfo
	types TypeTable
}

// Registry maps (language, format) pairs to generators.
// It is populated once at startup and read-only afterwards.
type Registry struct {
	languages  map[Language]*languageEntry
	order      []Language
	generators map[generatorKey]GenerateFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		languages:  make(map[Language]*languageEntry),
		generators: make(map[generatorKey]GenerateFunc),
	}
}

// RegisterLanguage adds a language with its type table.
// The table must cover every FieldType.
func (r *Registry) RegisterLanguage(lang Language, name string, types TypeTable) error {
	if _, exists := r.languages[lang]; exists {
		return fmt.Errorf("language %q already registered", lang)
	}
	if err := types.Validate(); err != nil {
		return fmt.Errorf("language %s: %w", lang, err)
	}
	r.languages[lang] = &languageEntry{
		info:  LanguageInfo{ID: lang, Name: name},
		types: types,
	}
	r.order = append(r.order, lang)
	return nil
}

// Register adds a generator for a format of an already registered language.
func (r *Registry) Register(lang Language, format Format, name string, fn GenerateFunc) error {
	entry, ok := r.languages[lang]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}
	key := generatorKey{language: lang, format: format}
	if _, exists := r.generators[key]; exists {
		return fmt.Errorf("generator for %s with format %s already registered", lang, format)
	}
	r.generators[key] = fn
	entry.info.Formats = append(entry.info.Formats, FormatInfo{ID: format, Name: name})
	return nil
}

// Get retrieves the generator for a (language, format) pair.
func (r *Registry) Get(lang Language, format Format) (GenerateFunc, error) {
	fn, ok := r.generators[generatorKey{language: lang, format: format}]
	if !ok {
		return nil, fmt.Errorf("%w for %s with format %s", ErrNoGenerator, lang, format)
	}
	return fn, nil
}

// Types returns the type table of a language.
func (r *Registry) Types(lang Language) (TypeTable, error) {
	entry, ok := r.languages[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}
	return entry.types, nil
}

// Languages returns all registered languages in registration order.
func (r *Registry) Languages() []LanguageInfo {
	out := make([]LanguageInfo, 0, len(r.order))
	for _, lang := range r.order {
		info := r.languages[lang].info
		info.Formats = append([]FormatInfo(nil), info.Formats...)
		out = append(out, info)
	}
	return out
}

// Formats returns the formats registered for a language.
func (r *Registry) Formats(lang Language) ([]FormatInfo, error) {
	entry, ok := r.languages[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, lang)
	}
	return append([]FormatInfo(nil), entry.info.Formats...), nil
}

// Available returns all registered pairs as "language/format", sorted.
func (r *Registry) Available() []string {
	names := make([]string, 0, len(r.generators))
	for key := range r.generators {
		names = append(names, string(key.language)+"/"+string(key.format))
	}
	sort.Strings(names)
	return names
}

// Request is the input of a single generation.
type Request struct {
	Language Language
	Format   Format
	Name     string
	Fields   []Field
	// Count is the number of sample records. Zero means one.
	Count int
}

// Generate dispatches req to its generator and returns the rendered text.
// Nothing is rendered unless the pair is registered and every field type is mapped.
func (r *Registry) Generate(req Request, values ValueSource) (string, error) {
	fn, err := r.Get(req.Language, req.Format)
	if err != nil {
		return "", err
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	types := r.languages[req.Language].types
	for _, f := range req.Fields {
		if _, err := types.Spec(f.Type); err != nil {
			return "", fmt.Errorf("field %q in %s: %w", f.Name, req.Language, err)
		}
	}

	g := &Generation{
		Name:   req.Name,
		Fields: req.Fields,
		Count:  count,
		Types:  types,
		Values: values,
	}
	return fn(g)
}

// FormatValue renders v as a literal of type t in lang.
func (r *Registry) FormatValue(lang Language, t FieldType, v Value) (string, error) {
	types, err := r.Types(lang)
	if err != nil {
		return "", err
	}
	spec, err := types.Spec(t)
	if err != nil {
		return "", err
	}
	return spec.Literal(v), nil
}
