package action

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
)

func BookmarkCall(id int64) SubmitRequest {
	return SubmitRequest{
		Contract: chain.ContractUserManagement,
		Method:   "bookmarkPokemon",
		Args:     []interface{}{big.NewInt(id)},
		Label:    displayName("", id),
	}
}

func RemoveBookmarkCall(id int64) SubmitRequest {
	return SubmitRequest{
		Contract: chain.ContractUserManagement,
		Method:   "removeBookmark",
		Args:     []interface{}{big.NewInt(id)},
		Label:    displayName("", id),
	}
}

// CreateRoundMatchCall opens a battle round. Times are unix seconds.
func CreateRoundMatchCall(seasonID int64, startTime int64, endTime int64, maxPlayers int64) SubmitRequest {
	return SubmitRequest{
		Contract: chain.ContractBattleManagement,
		Method:   "createRoundMatch",
		Args:     []interface{}{big.NewInt(seasonID), big.NewInt(startTime), big.NewInt(endTime), big.NewInt(maxPlayers)},
		Label:    "createRoundMatch",
	}
}

func TriggerPairingCall(roundID int64) SubmitRequest {
	return SubmitRequest{
		Contract: chain.ContractBattleManagement,
		Method:   "triggerPairing",
		Args:     []interface{}{big.NewInt(roundID)},
		Label:    "triggerPairing",
	}
}

func UpdateResultPairMatchCall(roundID int64, matchIndex int64, winner common.Address) SubmitRequest {
	return SubmitRequest{
		Contract: chain.ContractBattleManagement,
		Method:   "updateResultPairMatch",
		Args:     []interface{}{big.NewInt(roundID), big.NewInt(matchIndex), winner},
		Label:    "updateResultPairMatch",
	}
}

func SendRewardMatchCall(roundID int64, matchIndex int64) SubmitRequest {
	return SubmitRequest{
		Contract: chain.ContractBattleManagement,
		Method:   "sendRewardMatch",
		Args:     []interface{}{big.NewInt(roundID), big.NewInt(matchIndex)},
		Label:    "sendRewardMatch",
	}
}

func DistributeSeasonRewardsCall(seasonID int64) SubmitRequest {
	return SubmitRequest{
		Contract: chain.ContractSeasonManagement,
		Method:   "distributeSeasonRewards",
		Args:     []interface{}{big.NewInt(seasonID)},
		Label:    "distributeSeasonRewards",
	}
}

func EndSeasonCall(seasonID int64) SubmitRequest {
	return SubmitRequest{
		Contract: chain.ContractSeasonManagement,
		Method:   "endSeason",
		Args:     []interface{}{big.NewInt(seasonID)},
		Label:    "endSeason",
	}
}
