package facade

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type Fees struct {
	CaptureFee *big.Int `json:"captureFee"`
	EvolveFee  *big.Int `json:"evolveFee"`
	BattleFee  *big.Int `json:"battleFee"`
}

type TokenDetails struct {
	Address  common.Address `json:"address"`
	Accepted bool           `json:"accepted"`
	Symbol   string         `json:"symbol"`
	Decimals uint8          `json:"decimals"`
}

type Stat struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type EvolutionStage struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// MoonsterSummary is the read-only projection of an on-chain creature.
type MoonsterSummary struct {
	ID                     int64            `json:"id"`
	Name                   string           `json:"name"`
	Image                  string           `json:"image"`
	Description            string           `json:"description"`
	Types                  []string         `json:"types"`
	Abilities              []string         `json:"abilities"`
	Stats                  []Stat           `json:"stats"`
	Height                 int64            `json:"height"`
	Weight                 int64            `json:"weight"`
	BaseExperience         int64            `json:"baseExperience"`
	EvolutionChain         []EvolutionStage `json:"evolutionChain"`
	Strengths              []string         `json:"strengths"`
	Weaknesses             []string         `json:"weaknesses"`
	Resistant              []string         `json:"resistant"`
	Vulnerable             []string         `json:"vulnerable"`
	LocationAreaEncounters string           `json:"locationAreaEncounters"`
	Location               string           `json:"location"`
	Chance                 int64            `json:"chance"`
}

type Season struct {
	ID         int64    `json:"id"`
	StartTime  int64    `json:"startTime"`
	EndTime    int64    `json:"endTime"`
	Active     bool     `json:"active"`
	RewardPool *big.Int `json:"rewardPool"`
}

type RoundPhase uint8

const (
	PhaseOpen RoundPhase = iota
	PhasePaired
	PhaseResolved
	PhaseRewarded
)

func (p RoundPhase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhasePaired:
		return "paired"
	case PhaseResolved:
		return "resolved"
	case PhaseRewarded:
		return "rewarded"
	default:
		return "unknown"
	}
}

func (p RoundPhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type BattleRound struct {
	ID          int64      `json:"id"`
	SeasonID    int64      `json:"seasonId"`
	StartTime   int64      `json:"startTime"`
	EndTime     int64      `json:"endTime"`
	MaxPlayers  int64      `json:"maxPlayers"`
	PlayerCount int64      `json:"playerCount"`
	Phase       RoundPhase `json:"phase"`
}

// Full reports whether no further player can join.
func (r BattleRound) Full() bool {
	return r.MaxPlayers > 0 && r.PlayerCount >= r.MaxPlayers
}

type RoundInfo struct {
	Players     []common.Address `json:"players"`
	MoonsterIDs []int64          `json:"moonsterIds"`
	Paired      bool             `json:"paired"`
	Orphan      common.Address   `json:"orphan"`
}

type Match struct {
	Player1   common.Address `json:"player1"`
	Player2   common.Address `json:"player2"`
	Moonster1 int64          `json:"moonster1"`
	Moonster2 int64          `json:"moonster2"`
	Winner    common.Address `json:"winner"`
	Resolved  bool           `json:"resolved"`
	Rewarded  bool           `json:"rewarded"`
}

// RoundRecap summarizes a round. With an odd number of players the unpaired one is the orphan.
type RoundRecap struct {
	TotalMatches     int64          `json:"totalMatches"`
	ResolvedMatches  int64          `json:"resolvedMatches"`
	Orphan           common.Address `json:"orphan"`
	OrphanMoonsterID int64          `json:"orphanMoonsterId"`
}

func (r RoundRecap) HasOrphan() bool {
	return r.Orphan != (common.Address{})
}

type LeaderboardEntry struct {
	Player common.Address `json:"player"`
	Score  int64          `json:"score"`
}

// raw tuples, fields in ABI component order

type rawMoonster struct {
	Id                     *big.Int //nolint:revive,stylecheck // matches the ABI component name
	Name                   string
	Image                  string
	Description            string
	Types                  []string
	Abilities              []string
	StatNames              []string
	StatValues             []*big.Int
	Height                 *big.Int
	Weight                 *big.Int
	BaseExperience         *big.Int
	Strengths              []string
	Weaknesses             []string
	Resistant              []string
	Vulnerable             []string
	LocationAreaEncounters string
	Location               string
	Chance                 *big.Int
}

type rawMatch struct {
	Player1  common.Address
	Player2  common.Address
	Pokemon1 *big.Int
	Pokemon2 *big.Int
	Winner   common.Address
	Resolved bool
	Rewarded bool
}
