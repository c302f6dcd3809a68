// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/dacolabs/fakegen/internal/codegen"
	"github.com/dacolabs/fakegen/internal/fieldset"
)

// customPreset is the preset option that asks for fields by hand.
const customPreset = ""

// GenerateAnswers holds the generate command inputs. The form only asks for
// values that are still empty.
type GenerateAnswers struct {
	Language string
	Format   string
	Name     string
	Preset   string
	Fields   string // comma-separated name:type definitions
	Count    string
}

// NeedsInput reports whether any required answer is missing.
func (a *GenerateAnswers) NeedsInput() bool {
	return a.Language == "" || a.Format == "" || a.Name == "" || (a.Preset == "" && a.Fields == "")
}

// RunGenerateForm runs the interactive form for the generate command.
func RunGenerateForm(answers *GenerateAnswers, languages []codegen.LanguageInfo, presets []string, maxCount int) error {
	askLanguage := answers.Language == ""
	askFormat := answers.Format == ""
	askName := answers.Name == ""
	askFields := answers.Preset == "" && answers.Fields == ""
	if answers.Count == "" {
		answers.Count = "1"
	}

	languageOptions := make([]huh.Option[string], len(languages))
	for i, lang := range languages {
		languageOptions[i] = huh.NewOption(lang.Name, string(lang.ID))
	}

	presetOptions := []huh.Option[string]{huh.NewOption("Custom fields", customPreset)}
	for _, p := range presets {
		presetOptions = append(presetOptions, huh.NewOption(p, p))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Language").
				Options(languageOptions...).
				Value(&answers.Language),
		).WithHideFunc(func() bool { return !askLanguage }),
		huh.NewGroup(
			FormatSelect(&answers.Format, &answers.Language, languages),
		).WithHideFunc(func() bool { return !askFormat }),
		huh.NewGroup(
			huh.NewInput().
				Title("Type name").
				Placeholder("User").
				Validate(identifierValidator("type name")).
				Value(&answers.Name),
		).WithHideFunc(func() bool { return !askName }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Field template").
				Options(presetOptions...).
				Value(&answers.Preset),
		).WithHideFunc(func() bool { return !askFields }),
		huh.NewGroup(
			huh.NewInput().
				Title("Fields").
				Description("Comma-separated name:type (string, integer, boolean, date, array)").
				Placeholder("id:integer, email:string").
				Validate(fieldsValidator).
				Value(&answers.Fields),
		).WithHideFunc(func() bool { return !askFields || answers.Preset != customPreset }),
		huh.NewGroup(
			huh.NewInput().
				Title("Number of records").
				Validate(rangeValidator("count", 1, maxCount)).
				Value(&answers.Count),
		),
	).WithTheme(Theme()).Run()
}

func fieldsValidator(s string) error {
	fields, err := fieldset.ParseAll([]string{s})
	if err != nil {
		return err
	}
	if len(fields) == 0 {
		return errors.New("at least one field is required")
	}
	return nil
}

// FormatSelect returns a select field whose options follow the chosen language.
func FormatSelect(value, language *string, languages []codegen.LanguageInfo) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Output format").
		OptionsFunc(func() []huh.Option[string] {
			var options []huh.Option[string]
			for _, lang := range languages {
				if string(lang.ID) != *language {
					continue
				}
				for _, f := range lang.Formats {
					options = append(options, huh.NewOption(f.Name, string(f.ID)))
				}
			}
			return options
		}, language).
		Value(value)
}
