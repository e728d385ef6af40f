package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/wheel-of-fortune/internal/entity"
	"github.com/rocketscienceinc/wheel-of-fortune/internal/wheel"
)

// HumanMover asks a person at the terminal for their move.
type HumanMover struct {
	prompter *Prompter
}

func NewHumanMover(prompter *Prompter) *HumanMover {
	return &HumanMover{prompter: prompter}
}

// GetMove shows the board as the prompt. The answer is passed on exactly as
// typed since phrase guesses are spacing sensitive. Closed input counts as
// leaving the game.
func (that *HumanMover) GetMove(ctx context.Context, board entity.Board) (string, error) {
	move, err := that.prompter.Ask(ctx, RenderBoard(board))
	if errors.Is(err, io.EOF) {
		return wheel.MoveExit, nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to read move: %w", err)
	}

	return move, nil
}
