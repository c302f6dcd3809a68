// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package builtin assembles the registry of all supported languages.
package builtin

import (
	"github.com/dacolabs/fakegen/internal/codegen"
	"github.com/dacolabs/fakegen/internal/codegen/java"
	"github.com/dacolabs/fakegen/internal/codegen/javascript"
	"github.com/dacolabs/fakegen/internal/codegen/python"
	"github.com/dacolabs/fakegen/internal/codegen/typescript"
)

// New returns a registry with Java, Python, JavaScript and TypeScript registered.
func New() (*codegen.Registry, error) {
	reg := codegen.NewRegistry()
	for _, register := range []func(*codegen.Registry) error{
		java.Register,
		python.Register,
		javascript.Register,
		typescript.Register,
	} {
		if err := register(reg); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
