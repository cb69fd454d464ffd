package hangman

import (
	"strings"
	"unicode"
)

// Outcome is the result of a single guess.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // not a letter, or the round is over
	OutcomeRepeated                // letter was guessed before
	OutcomeHit
	OutcomeMiss
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeRepeated:
		return "repeated"
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// secret is the word to guess. Letters compare case-insensitively;
// everything that is not a letter is shown from the start.
type secret struct {
	word    []rune
	guessed map[rune]bool
}

func newSecret(word string) *secret {
	return &secret{
		word:    []rune(strings.TrimSpace(word)),
		guessed: make(map[rune]bool),
	}
}

// guess records r and reports whether it was new and whether it occurs in
// the word.
func (s *secret) guess(r rune) (fresh, hit bool) {
	r = unicode.ToLower(r)
	if s.guessed[r] {
		return false, s.contains(r)
	}
	s.guessed[r] = true
	return true, s.contains(r)
}

func (s *secret) contains(r rune) bool {
	for _, c := range s.word {
		if unicode.ToLower(c) == r {
			return true
		}
	}
	return false
}

// letters returns the number of letter positions in the word.
func (s *secret) letters() int {
	n := 0
	for _, c := range s.word {
		if unicode.IsLetter(c) {
			n++
		}
	}
	return n
}

// hidden returns the number of letter positions not yet guessed.
func (s *secret) hidden() int {
	n := 0
	for _, c := range s.word {
		if unicode.IsLetter(c) && !s.guessed[unicode.ToLower(c)] {
			n++
		}
	}
	return n
}

func (s *secret) solved() bool {
	return s.hidden() == 0
}

// masked returns the word with unguessed letters replaced by '_', letters
// separated by spaces.
func (s *secret) masked() string {
	var sb strings.Builder
	for i, c := range s.word {
		if i > 0 {
			sb.WriteRune(' ')
		}
		if unicode.IsLetter(c) && !s.guessed[unicode.ToLower(c)] {
			sb.WriteRune('_')
		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// spaced returns the full word with letters separated by spaces.
func (s *secret) spaced() string {
	parts := make([]string, len(s.word))
	for i, c := range s.word {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}
