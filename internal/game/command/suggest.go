package command

import "github.com/antzucaro/matchr"

// suggestThreshold is the lowest Jaro-Winkler score accepted as a likely typo.
const suggestThreshold = 0.85

// Suggest returns the legal verb closest to word, for "did you mean" hints.
//
// Precondition: word is lowercase.
// Postcondition: Returns ("", false) if word is legal or nothing scores at
// least suggestThreshold. Ties go to the alphabetically first verb.
func Suggest(word string) (string, bool) {
	if word == "" || IsLegalCommand(word) {
		return "", false
	}
	best, bestScore := "", 0.0
	for _, verb := range defaultRegistry.Verbs() {
		if score := matchr.JaroWinkler(word, verb, false); score > bestScore {
			best, bestScore = verb, score
		}
	}
	if bestScore < suggestThreshold {
		return "", false
	}
	return best, true
}
