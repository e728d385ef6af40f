package console

import (
	"context"
	"fmt"
	"strings"
)

const (
	MaxHumans    = 10
	MaxComputers = 10
	MinLevel     = 1
	MaxLevel     = 10
)

// Roster is what the players asked for before the game starts.
type Roster struct {
	Humans     []string
	Computers  int
	Difficulty int
}

func (that Roster) Size() int {
	return len(that.Humans) + that.Computers
}

// ComputerName returns the display name of the i-th computer, counting from 0.
func ComputerName(i int) string {
	return fmt.Sprintf("Computer %d", i+1)
}

// AskRoster runs the setup questions.
func AskRoster(ctx context.Context, prompter *Prompter) (Roster, error) {
	var roster Roster

	humans, err := prompter.NumberBetween(ctx, "How many human players? ", 0, MaxHumans)
	if err != nil {
		return roster, fmt.Errorf("failed to read human players: %w", err)
	}

	for i := range humans {
		name, err := prompter.Ask(ctx, fmt.Sprintf("Enter the name for human player #%d: ", i+1))
		if err != nil {
			return roster, fmt.Errorf("failed to read player name: %w", err)
		}
		roster.Humans = append(roster.Humans, strings.TrimSpace(name))
	}

	roster.Computers, err = prompter.NumberBetween(ctx, "How many computer players? ", 0, MaxComputers)
	if err != nil {
		return roster, fmt.Errorf("failed to read computer players: %w", err)
	}

	if roster.Computers >= 1 {
		roster.Difficulty, err = prompter.NumberBetween(ctx, "What difficulty for the computers? (1-10): ", MinLevel, MaxLevel)
		if err != nil {
			return roster, fmt.Errorf("failed to read difficulty: %w", err)
		}
	}

	return roster, nil
}
