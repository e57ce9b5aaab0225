package models

// PrizeType identifies a prize tier of the lucky draw.
type PrizeType string

const (
	PrizeSpecial     PrizeType = "special"
	PrizeFirst       PrizeType = "first"
	PrizeSecond      PrizeType = "second"
	PrizeThird       PrizeType = "third"
	PrizeConsolation PrizeType = "consolation"
)

// Prize describes one tier: how many winners it has in total and how many
// are drawn per spin.
type Prize struct {
	Type           PrizeType `json:"type"`
	Name           string    `json:"name"`
	TotalWinners   int       `json:"totalWinners"`
	WinnersPerSpin int       `json:"winnersPerSpin"`
}

// Prizes is the fixed tier table, in the order the draw is run.
var Prizes = []Prize{
	{Type: PrizeConsolation, Name: "Consolation", TotalWinners: 40, WinnersPerSpin: 10},
	{Type: PrizeThird, Name: "Third Prize", TotalWinners: 3, WinnersPerSpin: 1},
	{Type: PrizeSecond, Name: "Second Prize", TotalWinners: 3, WinnersPerSpin: 1},
	{Type: PrizeFirst, Name: "First Prize", TotalWinners: 2, WinnersPerSpin: 1},
	{Type: PrizeSpecial, Name: "Special Prize", TotalWinners: 1, WinnersPerSpin: 1},
}

// PrizeByType looks up a tier in the fixed table.
func PrizeByType(t PrizeType) (Prize, bool) {
	for _, p := range Prizes {
		if p.Type == t {
			return p, true
		}
	}
	return Prize{}, false
}

// PrizeStatus is a tier with its current number of winners.
type PrizeStatus struct {
	Prize
	Won       int `json:"won"`
	Remaining int `json:"remaining"`
}
