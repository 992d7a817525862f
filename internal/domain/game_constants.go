package domain

const (
	// HandSize is the number of cards each player holds while the deck lasts.
	HandSize = 6
	// WinningPoints ends a round for the player who reaches it.
	WinningPoints = 66
	// LastTrickBonus goes to the winner of the final trick of an unclosed round.
	LastTrickBonus = 10
	// MinCardsToCloseOrChange is the deck size above which closing and trump changes are allowed.
	MinCardsToCloseOrChange = 2
)
