package app

// PlayersPerRound is the number of seats at a Santase table.
const PlayersPerRound = 2

// DefaultMatchPoints is the game-point total that wins a match.
const DefaultMatchPoints = 11

const (
	// failedClosePoints go to the opponent of a player who closed and missed 66.
	failedClosePoints = 3
	// halfPoints is the round total below which a loser concedes two game points.
	halfPoints = 33
	// maxLeadActions bounds trump changes and closes before a card must be led.
	maxLeadActions = 3
)
