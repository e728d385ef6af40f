package wheel

import (
	"strings"

	"github.com/rocketscienceinc/wheel-of-fortune/internal/entity"
)

const Placeholder = '_'

// Obscure hides every letter of phrase that has not been guessed yet.
// Anything that is not a letter stays visible.
//
//	guessed: L B E R N P K X Z
//	phrase:  GLACIER NATIONAL PARK
//	returns: _L___ER N____N_L P_RK
func Obscure(phrase string, guessed entity.GuessedSet) string {
	var sb strings.Builder
	sb.Grow(len(phrase))

	for _, r := range phrase {
		if entity.IsLetter(r) && !guessed.Has(string(r)) {
			sb.WriteRune(Placeholder)
			continue
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// IsSolved reports whether every letter of the phrase has been revealed.
func IsSolved(phrase string, guessed entity.GuessedSet) bool {
	return Obscure(phrase, guessed) == phrase
}
