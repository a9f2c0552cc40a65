package chain

// ERC20ABI covers the token calls used for fee payment.
const ERC20ABI = `[
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"allowance","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"event","name":"Approval","anonymous":false,"inputs":[{"name":"owner","type":"address","indexed":true},{"name":"spender","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]}
]`

// UserManagementABI is the player facing contract: paid capture and evolve, fees,
// accepted tokens, owned ids and bookmarks.
const UserManagementABI = `[
	{"type":"function","name":"payAndAssignId","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"chance","type":"uint256"},{"name":"id","type":"uint256"},{"name":"timestamp","type":"uint256"},{"name":"signature","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"payAndEvolve","stateMutability":"nonpayable","inputs":[{"name":"token","type":"address"},{"name":"currentId","type":"uint256"},{"name":"newId","type":"uint256"},{"name":"timestamp","type":"uint256"},{"name":"signature","type":"bytes"}],"outputs":[]},
	{"type":"function","name":"getUserIds","stateMutability":"view","inputs":[{"name":"user","type":"address"}],"outputs":[{"name":"","type":"uint256[]"}]},
	{"type":"function","name":"getFees","stateMutability":"view","inputs":[{"name":"token","type":"address"}],"outputs":[{"name":"captureFee","type":"uint256"},{"name":"evolveFee","type":"uint256"},{"name":"battleFee","type":"uint256"}]},
	{"type":"function","name":"tokenDetails","stateMutability":"view","inputs":[{"name":"token","type":"address"}],"outputs":[{"name":"accepted","type":"bool"},{"name":"symbol","type":"string"},{"name":"decimals","type":"uint8"}]},
	{"type":"function","name":"bookmarkPokemon","stateMutability":"nonpayable","inputs":[{"name":"id","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"removeBookmark","stateMutability":"nonpayable","inputs":[{"name":"id","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"getBookmarks","stateMutability":"view","inputs":[{"name":"user","type":"address"}],"outputs":[{"name":"","type":"uint256[]"}]},
	{"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"event","name":"IDAssigned","anonymous":false,"inputs":[{"name":"user","type":"address","indexed":true},{"name":"id","type":"uint256","indexed":true}]},
	{"type":"event","name":"CaptureFailed","anonymous":false,"inputs":[{"name":"user","type":"address","indexed":true},{"name":"id","type":"uint256","indexed":false},{"name":"chance","type":"uint256","indexed":false},{"name":"roll","type":"uint256","indexed":false}]},
	{"type":"event","name":"PokemonEvolved","anonymous":false,"inputs":[{"name":"user","type":"address","indexed":true},{"name":"oldId","type":"uint256","indexed":false},{"name":"newId","type":"uint256","indexed":false}]}
]`

// MoonstersABI is the read-only creature registry.
const MoonstersABI = `[
	{"type":"function","name":"getMoonster","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"tuple","components":[
		{"name":"id","type":"uint256"},
		{"name":"name","type":"string"},
		{"name":"image","type":"string"},
		{"name":"description","type":"string"},
		{"name":"types","type":"string[]"},
		{"name":"abilities","type":"string[]"},
		{"name":"statNames","type":"string[]"},
		{"name":"statValues","type":"uint256[]"},
		{"name":"height","type":"uint256"},
		{"name":"weight","type":"uint256"},
		{"name":"baseExperience","type":"uint256"},
		{"name":"strengths","type":"string[]"},
		{"name":"weaknesses","type":"string[]"},
		{"name":"resistant","type":"string[]"},
		{"name":"vulnerable","type":"string[]"},
		{"name":"locationAreaEncounters","type":"string"},
		{"name":"location","type":"string"},
		{"name":"chance","type":"uint256"}
	]}]},
	{"type":"function","name":"getChance","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getEvolutionChain","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"uint256[]"}]}
]`

// BattleManagementABI drives rounds, pairing and match results.
const BattleManagementABI = `[
	{"type":"function","name":"joinBattle","stateMutability":"nonpayable","inputs":[{"name":"roundId","type":"uint256"},{"name":"pokemonId","type":"uint256"},{"name":"token","type":"address"}],"outputs":[]},
	{"type":"function","name":"battleRounds","stateMutability":"view","inputs":[{"name":"roundId","type":"uint256"}],"outputs":[{"name":"id","type":"uint256"},{"name":"seasonId","type":"uint256"},{"name":"startTime","type":"uint256"},{"name":"endTime","type":"uint256"},{"name":"maxPlayers","type":"uint256"},{"name":"playerCount","type":"uint256"},{"name":"phase","type":"uint8"}]},
	{"type":"function","name":"getRoundInfo","stateMutability":"view","inputs":[{"name":"roundId","type":"uint256"}],"outputs":[{"name":"players","type":"address[]"},{"name":"pokemonIds","type":"uint256[]"},{"name":"paired","type":"bool"},{"name":"orphan","type":"address"}]},
	{"type":"function","name":"getPairMatch","stateMutability":"view","inputs":[{"name":"roundId","type":"uint256"}],"outputs":[{"name":"","type":"tuple[]","components":[
		{"name":"player1","type":"address"},
		{"name":"player2","type":"address"},
		{"name":"pokemon1","type":"uint256"},
		{"name":"pokemon2","type":"uint256"},
		{"name":"winner","type":"address"},
		{"name":"resolved","type":"bool"},
		{"name":"rewarded","type":"bool"}
	]}]},
	{"type":"function","name":"getMatchesForSeason","stateMutability":"view","inputs":[{"name":"seasonId","type":"uint256"}],"outputs":[{"name":"","type":"tuple[]","components":[
		{"name":"player1","type":"address"},
		{"name":"player2","type":"address"},
		{"name":"pokemon1","type":"uint256"},
		{"name":"pokemon2","type":"uint256"},
		{"name":"winner","type":"address"},
		{"name":"resolved","type":"bool"},
		{"name":"rewarded","type":"bool"}
	]}]},
	{"type":"function","name":"getRoundRecap","stateMutability":"view","inputs":[{"name":"roundId","type":"uint256"}],"outputs":[{"name":"totalMatches","type":"uint256"},{"name":"resolvedMatches","type":"uint256"},{"name":"orphan","type":"address"},{"name":"orphanPokemonId","type":"uint256"}]},
	{"type":"function","name":"createRoundMatch","stateMutability":"nonpayable","inputs":[{"name":"seasonId","type":"uint256"},{"name":"startTime","type":"uint256"},{"name":"endTime","type":"uint256"},{"name":"maxPlayers","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"triggerPairing","stateMutability":"nonpayable","inputs":[{"name":"roundId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"updateResultPairMatch","stateMutability":"nonpayable","inputs":[{"name":"roundId","type":"uint256"},{"name":"matchIndex","type":"uint256"},{"name":"winner","type":"address"}],"outputs":[]},
	{"type":"function","name":"sendRewardMatch","stateMutability":"nonpayable","inputs":[{"name":"roundId","type":"uint256"},{"name":"matchIndex","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"event","name":"PlayerJoined","anonymous":false,"inputs":[{"name":"roundId","type":"uint256","indexed":true},{"name":"player","type":"address","indexed":true},{"name":"pokemonId","type":"uint256","indexed":false}]}
]`

// SeasonManagementABI exposes seasons, leaderboards and reward distribution.
const SeasonManagementABI = `[
	{"type":"function","name":"getCurrentSeasonId","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getSeason","stateMutability":"view","inputs":[{"name":"seasonId","type":"uint256"}],"outputs":[{"name":"id","type":"uint256"},{"name":"startTime","type":"uint256"},{"name":"endTime","type":"uint256"},{"name":"active","type":"bool"},{"name":"rewardPool","type":"uint256"}]},
	{"type":"function","name":"getLeaderboard","stateMutability":"view","inputs":[{"name":"seasonId","type":"uint256"}],"outputs":[{"name":"players","type":"address[]"},{"name":"scores","type":"uint256[]"}]},
	{"type":"function","name":"getTopPlayers","stateMutability":"view","inputs":[{"name":"seasonId","type":"uint256"},{"name":"count","type":"uint256"}],"outputs":[{"name":"players","type":"address[]"},{"name":"scores","type":"uint256[]"}]},
	{"type":"function","name":"distributeSeasonRewards","stateMutability":"nonpayable","inputs":[{"name":"seasonId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"endSeason","stateMutability":"nonpayable","inputs":[{"name":"seasonId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]}
]`
