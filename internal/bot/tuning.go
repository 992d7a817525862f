package bot

// Policy thresholds. The probability model and these values were tuned together.
const (
	// Leading under free play: the lone trump ten is led defensively when we
	// trail badly and it is unlikely to be taken.
	defensiveOwnPointsBelow      = 33
	defensiveOpponentPointsAtMin = 50
	maxTakenProbability          = 0.5

	// Closing the game.
	closeMinStrongSuits   = 2
	closeMinPowerTrumps   = 2
	closePointsAbove      = 46
	closeTrumpAcePointsAt = 56

	strongCardValue = 10
	powerTrumpValue = 4
)
