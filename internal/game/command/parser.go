package command

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseResult holds the verb and remaining words of a text line.
type ParseResult struct {
	// Verb is the first word exactly as typed.
	Verb string
	// Command is Verb lowercased.
	Command string
	// Args are the remaining words after the verb.
	Args []string
}

// Parse splits a text line into a verb and arguments on any whitespace.
//
// Postcondition: Returns a ParseResult. If line is blank, Verb and Command are empty.
func Parse(line string) ParseResult {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ParseResult{}
	}

	var args []string
	if len(fields) > 1 {
		args = fields[1:]
	}

	return ParseResult{
		Verb:    fields[0],
		Command: Normalize(fields[0]),
		Args:    args,
	}
}

// Normalize lowercases a word for lookup in the vocabulary tables and the
// world's name spaces.
func Normalize(word string) string {
	// A Caser carries state, so one is made per call.
	return cases.Lower(language.Und).String(word)
}
