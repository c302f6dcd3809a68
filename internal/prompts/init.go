// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/dacolabs/fakegen/internal/codegen"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(language, format *string, count *int, languages []codegen.LanguageInfo, maxCount int) error {
	languageOptions := make([]huh.Option[string], len(languages))
	for i, lang := range languages {
		languageOptions[i] = huh.NewOption(lang.Name, string(lang.ID))
	}

	countStr := strconv.Itoa(*count)
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default language").
				Options(languageOptions...).
				Value(language),
			FormatSelect(format, language, languages),
			huh.NewInput().
				Title("Default number of records").
				Placeholder("1").
				Validate(rangeValidator("count", 1, maxCount)).
				Value(&countStr),
		),
	).WithTheme(Theme()).Run()
	if err != nil {
		return err
	}

	*count, err = strconv.Atoi(countStr)
	return err
}
