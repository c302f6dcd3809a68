// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package mockdata

import (
	"strings"
	"time"
)

// Rule order matters: names overlap ("firstname" contains "name"), so specific
// matches precede generic ones.

type matcher func(name string) bool

func contains(subs ...string) matcher {
	return func(name string) bool {
		for _, sub := range subs {
			if strings.Contains(name, sub) {
				return true
			}
		}
		return false
	}
}

func equals(v string) matcher {
	return func(name string) bool { return name == v }
}

func anyOf(ms ...matcher) matcher {
	return func(name string) bool {
		for _, m := range ms {
			if m(name) {
				return true
			}
		}
		return false
	}
}

type stringRule struct {
	match matcher
	gen   func(Source) string
}

var stringRules = []stringRule{
	{contains("email"), Source.Email},
	{anyOf(contains("username"), equals("user")), Source.Username},
	{anyOf(contains("firstname"), equals("fname")), Source.FirstName},
	{anyOf(contains("lastname"), equals("lname")), Source.LastName},
	{contains("name"), Source.Name},
	{contains("title"), func(s Source) string { return s.Sentence(3) }},
	{contains("description", "content"), func(s Source) string { return s.Paragraph(1, 3, 8, " ") }},
	{contains("address"), Source.Street},
	{contains("city"), Source.City},
	{contains("country"), Source.Country},
	{contains("phone"), Source.Phone},
	{contains("company"), Source.Company},
	{contains("url", "website"), Source.URL},
	{contains("color"), Source.Color},
	{contains("uuid", "guid"), Source.UUID},
	{contains("zip", "postal"), Source.Zip},
}

type integerRule struct {
	match    matcher
	min, max int
}

var integerRules = []integerRule{
	{contains("age"), 18, 80},
	{contains("year"), 1900, 2025},
	{contains("price", "cost"), 10, 1000},
	{contains("quantity", "count"), 1, 100},
	{contains("id"), 1, 10000},
}

type booleanRule struct {
	match       matcher
	probability float64
}

var booleanRules = []booleanRule{
	{contains("active", "enabled"), 0.8},
	{contains("verified", "confirmed"), 0.7},
}

type dateRule struct {
	match  matcher
	window func(now time.Time) (start, end time.Time)
}

var dateRules = []dateRule{
	{contains("birth", "dob"), func(now time.Time) (time.Time, time.Time) {
		return now.AddDate(-80, 0, 0), now.AddDate(-18, 0, 0)
	}},
	{contains("created"), func(now time.Time) (time.Time, time.Time) {
		return now.AddDate(-2, 0, 0), now
	}},
	{contains("updated", "modified"), func(now time.Time) (time.Time, time.Time) {
		return now.AddDate(0, 0, -30), now
	}},
	{contains("published"), func(now time.Time) (time.Time, time.Time) {
		return now.AddDate(-1, 0, 0), now
	}},
}
