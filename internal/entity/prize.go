package entity

const (
	PrizeCash     = "cash"
	PrizeBankrupt = "bankrupt"
	PrizeLoseTurn = "loseturn"
)

// WheelPrize is the outcome of a single spin. Value only matters for cash
// prizes, Prize is an optional bonus and empty when there is none.
type WheelPrize struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	Value int    `json:"value"`
	Prize string `json:"prize,omitempty"`
}

func (that WheelPrize) IsCash() bool {
	return that.Type == PrizeCash
}

func (that WheelPrize) HasBonus() bool {
	return that.Prize != ""
}

func IsKnownPrizeType(prizeType string) bool {
	switch prizeType {
	case PrizeCash, PrizeBankrupt, PrizeLoseTurn:
		return true
	default:
		return false
	}
}

// Phrase is the secret of a single game together with its category.
type Phrase struct {
	Category string `json:"category"`
	Phrase   string `json:"phrase"`
}
