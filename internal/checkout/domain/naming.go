package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName joins the non-empty name parts and capitalizes every word.
func (u UserProfile) DisplayName() string {
	parts := []string{u.FirstName, u.SecondName, u.LastName, u.FamilyName}
	words := strings.Fields(strings.Join(parts, " "))

	return cases.Title(language.Und).String(strings.Join(words, " "))
}
