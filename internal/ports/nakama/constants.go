package nakama

const (
	// RpcDecide asks a bot for its action on a single turn snapshot.
	RpcDecide = "santase_decide"
	// RpcSimulate plays bot-against-bot matches on the server.
	RpcSimulate = "santase_simulate"
	// RpcStats reports the decision statistics gathered since the module loaded.
	RpcStats = "santase_stats"
)

const (
	// maxSimulatedMatches caps the work a single simulate call may request.
	maxSimulatedMatches = 100

	codeInvalidArgument = 3
	codeInternal        = 13
)
