package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/wheel-of-fortune/internal/entity"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/usecase"
)

const title = "WHEEL OF FORTUNE"

// RenderBoard returns the current state of the game as shown to a player.
func RenderBoard(board entity.Board) string {
	return fmt.Sprintf(`
Category: %s
Phrase:   %s
Guessed:  %s
%s has $%d. Make a guess... `,
		board.Category,
		board.Obscured,
		strings.Join(board.Guessed.Sorted(), ", "),
		board.PlayerName,
		board.PlayerMoney,
	)
}

// Announcer prints the game narration.
type Announcer struct {
	out io.Writer
}

func NewAnnouncer(out io.Writer) *Announcer {
	return &Announcer{out: out}
}

func (that *Announcer) Welcome() {
	banner := strings.Repeat("=", len(title))
	that.println(banner)
	that.println(title)
	that.println(banner)
	that.println("")
}

func (that *Announcer) NoPlayers() {
	that.println("We need players to play!")
}

func (that *Announcer) ShowBoard(board entity.Board) {
	that.println("")
	that.println(strings.Repeat("-*-", 15))
	that.println(RenderBoard(board))
	that.println("")
}

func (that *Announcer) Spin(player *entity.Player) {
	that.printf("%s spins...\n", player.Name)
}

func (that *Announcer) SpinResult(prize entity.WheelPrize) {
	that.printf("%s!\n", prize.Text)
}

func (that *Announcer) Rejected(reason string) {
	that.println(reason)
}

func (that *Announcer) Guess(player *entity.Player, letter string) {
	that.printf("%s guesses \"%s\"\n", player.Name, letter)
	that.printf("Checking if there's %s in the phrase...\n", letter)
}

func (that *Announcer) LetterCount(letter string, count int) {
	switch count {
	case 0:
		that.printf("There is no %s\n", letter)
	case 1:
		that.printf("There is one %s\n", letter)
	default:
		that.printf("There are %d %s's\n", count, letter)
	}
}

func (that *Announcer) Passed(player *entity.Player) {
	that.printf("%s passes\n", player.Name)
}

func (that *Announcer) WrongPhrase(guess string) {
	that.printf("%s was not the phrase\n", guess)
}

func (that *Announcer) Exited() {
	that.println("Until next time!")
}

// Interrupted says goodbye when the game is stopped from the keyboard.
func (that *Announcer) Interrupted() {
	that.println("\nGame interrupted. Nobody won. Until next time!")
}

// Results announces the winner with their winnings, or that nobody won.
func (that *Announcer) Results(result *usecase.Result) {
	winner := result.Winner
	if winner == nil {
		that.printf("Nobody won. The phrase was %s\n", result.Phrase)
		return
	}

	that.println("\n\n====================\n")
	that.printf("%s wins! The phrase was %s\n", winner.Name, result.Phrase)
	that.printf("%s won $%d\n", winner.Name, winner.PrizeMoney)
	that.println("\n====================")

	if len(winner.Prizes) > 0 {
		that.printf("%s also won:\n", winner.Name)
		for _, prize := range winner.Prizes {
			that.printf("    - %s\n", prize)
		}
	}
}

func (that *Announcer) println(text string) {
	fmt.Fprintln(that.out, text)
}

func (that *Announcer) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}
