package entity

import "fmt"

const (
	KindHuman    = "human"
	KindComputer = "computer"
)

// Player holds the identity and winnings of a contestant.
type Player struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Difficulty int      `json:"difficulty,omitempty"`
	PrizeMoney int      `json:"prize_money"`
	Prizes     []string `json:"prizes,omitempty"`
}

func NewHumanPlayer(name string) *Player {
	return &Player{
		Name: name,
		Kind: KindHuman,
	}
}

func NewComputerPlayer(name string, difficulty int) *Player {
	return &Player{
		Name:       name,
		Kind:       KindComputer,
		Difficulty: difficulty,
	}
}

// AddMoney adds amt to the player's money. amt is negative when a vowel is bought.
func (that *Player) AddMoney(amt int) {
	that.PrizeMoney += amt
}

// GoBankrupt drops the player's money to zero, won prizes are kept.
func (that *Player) GoBankrupt() {
	that.PrizeMoney = 0
}

func (that *Player) AddPrize(prize string) {
	that.Prizes = append(that.Prizes, prize)
}

func (that *Player) IsComputer() bool {
	return that.Kind == KindComputer
}

func (that *Player) String() string {
	return fmt.Sprintf("%s ($%d)", that.Name, that.PrizeMoney)
}
