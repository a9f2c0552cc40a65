package facade

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/cache"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/chain"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/config"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

var ErrNotFound = errors.New("record not found")

// Service wraps the read-only contract calls behind typed, defensively decoded queries.
type Service interface {
	UserIDs(ctx context.Context, user common.Address) ([]int64, error)
	Bookmarks(ctx context.Context, user common.Address) ([]int64, error)
	Fees(ctx context.Context, token common.Address) (*Fees, error)
	TokenDetails(ctx context.Context, token common.Address) (*TokenDetails, error)
	Balance(ctx context.Context, token common.Address, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, token common.Address, owner common.Address, spender common.Address) (*big.Int, error)
	Moonster(ctx context.Context, id int64) (*MoonsterSummary, error)
	CaptureChance(ctx context.Context, id int64) (int64, error)
	EvolutionChain(ctx context.Context, id int64) ([]EvolutionStage, error)
	UserMoonsters(ctx context.Context, user common.Address) ([]MoonsterSummary, error)
	CurrentSeasonID(ctx context.Context) (int64, error)
	Season(ctx context.Context, seasonID int64) (*Season, error)
	BattleRound(ctx context.Context, roundID int64) (*BattleRound, error)
	RoundInfo(ctx context.Context, roundID int64) (*RoundInfo, error)
	PairMatches(ctx context.Context, roundID int64) ([]Match, error)
	SeasonMatches(ctx context.Context, seasonID int64) ([]Match, error)
	RoundRecap(ctx context.Context, roundID int64) (*RoundRecap, error)
	Leaderboard(ctx context.Context, seasonID int64) ([]LeaderboardEntry, error)
	TopPlayers(ctx context.Context, seasonID int64, count int64) ([]LeaderboardEntry, error)
	IsOwner(ctx context.Context, contract string, account common.Address) (bool, error)
	InvalidateUser(ctx context.Context, user common.Address) error
	InvalidateEvolution(ctx context.Context, ids ...int64) error
}

type service struct {
	caller    chain.Caller
	contracts *chain.Contracts
	store     cache.Store
	cfg       config.Cache
}

//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(caller chain.Caller, contracts *chain.Contracts, store cache.Store, cfg config.Cache) Service {
	return &service{
		caller:    caller,
		contracts: contracts,
		store:     store,
		cfg:       cfg,
	}
}

func userIDsKey(user common.Address) string {
	return "userids:" + strings.ToLower(user.Hex())
}

func evolutionKey(id int64) string {
	return fmt.Sprintf("evolution:%d", id)
}

func (s *service) UserIDs(ctx context.Context, user common.Address) ([]int64, error) {
	log := util.LogFromContext(ctx)

	var ids []int64
	err := cache.GetJSON(ctx, s.store, userIDsKey(user), &ids)
	if err == nil {
		return ids, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Msg("Failed to read cached user ids, falling back to chain")
	}

	out, err := s.contracts.UserManagement.Call(ctx, s.caller, "getUserIds", user)
	if err != nil {
		return nil, err
	}

	ids = filterPositive(toInt64s(at(out, 0)))

	if err := cache.SetJSON(ctx, s.store, userIDsKey(user), ids, s.cfg.UserIDsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to cache user ids")
	}

	return ids, nil
}

func (s *service) Bookmarks(ctx context.Context, user common.Address) ([]int64, error) {
	out, err := s.contracts.UserManagement.Call(ctx, s.caller, "getBookmarks", user)
	if err != nil {
		return nil, err
	}

	return filterPositive(toInt64s(at(out, 0))), nil
}

func (s *service) Fees(ctx context.Context, token common.Address) (*Fees, error) {
	out, err := s.contracts.UserManagement.Call(ctx, s.caller, "getFees", token)
	if err != nil {
		return nil, err
	}

	return &Fees{
		CaptureFee: toBig(at(out, 0)),
		EvolveFee:  toBig(at(out, 1)),
		BattleFee:  toBig(at(out, 2)),
	}, nil
}

func (s *service) TokenDetails(ctx context.Context, token common.Address) (*TokenDetails, error) {
	out, err := s.contracts.UserManagement.Call(ctx, s.caller, "tokenDetails", token)
	if err != nil {
		return nil, err
	}

	return &TokenDetails{
		Address:  token,
		Accepted: toBool(at(out, 0)),
		Symbol:   orUnknown(toString(at(out, 1))),
		Decimals: uint8(toInt64(at(out, 2))), //nolint:gosec // uint8 on chain
	}, nil
}

func (s *service) Balance(ctx context.Context, token common.Address, owner common.Address) (*big.Int, error) {
	out, err := s.contracts.ERC20(token).Call(ctx, s.caller, "balanceOf", owner)
	if err != nil {
		return nil, err
	}

	return toBig(at(out, 0)), nil
}

func (s *service) Allowance(ctx context.Context, token common.Address, owner common.Address, spender common.Address) (*big.Int, error) {
	out, err := s.contracts.ERC20(token).Call(ctx, s.caller, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}

	return toBig(at(out, 0)), nil
}

func (s *service) readMoonster(ctx context.Context, id int64) (*rawMoonster, error) {
	if id <= 0 {
		return nil, errors.Wrapf(ErrNotFound, "moonster %d", id)
	}

	out, err := s.contracts.Moonsters.Call(ctx, s.caller, "getMoonster", big.NewInt(id))
	if err != nil {
		if errors.Is(err, chain.ErrDecode) {
			util.LogFromContext(ctx).Warn().Err(err).Int64("id", id).Msg("Treating undecodable moonster as absent")
			return nil, errors.Wrapf(ErrNotFound, "moonster %d", id)
		}
		return nil, err
	}

	raw, err := convert[rawMoonster](at(out, 0))
	if err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Int64("id", id).Msg("Treating undecodable moonster as absent")
		return nil, errors.Wrapf(ErrNotFound, "moonster %d", id)
	}

	if toInt64(raw.Id) == 0 || len(raw.Name) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "moonster %d", id)
	}

	return &raw, nil
}

func (s *service) Moonster(ctx context.Context, id int64) (*MoonsterSummary, error) {
	raw, err := s.readMoonster(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := summarize(raw)

	stages, err := s.EvolutionChain(ctx, summary.ID)
	if err != nil {
		util.LogFromContext(ctx).Debug().Err(err).Int64("id", id).Msg("Evolution chain unavailable")
	} else {
		summary.EvolutionChain = stages
	}

	return summary, nil
}

func summarize(raw *rawMoonster) *MoonsterSummary {
	names := raw.StatNames
	stats := make([]Stat, 0, len(names))
	for i, name := range names {
		var value int64
		if i < len(raw.StatValues) {
			value = toInt64(raw.StatValues[i])
		}
		stats = append(stats, Stat{Name: orUnknown(name), Value: value})
	}

	return &MoonsterSummary{
		ID:                     toInt64(raw.Id),
		Name:                   raw.Name,
		Image:                  orUnknown(raw.Image),
		Description:            orUnknown(raw.Description),
		Types:                  toStrings(raw.Types),
		Abilities:              toStrings(raw.Abilities),
		Stats:                  stats,
		Height:                 toInt64(raw.Height),
		Weight:                 toInt64(raw.Weight),
		BaseExperience:         toInt64(raw.BaseExperience),
		EvolutionChain:         []EvolutionStage{},
		Strengths:              toStrings(raw.Strengths),
		Weaknesses:             toStrings(raw.Weaknesses),
		Resistant:              toStrings(raw.Resistant),
		Vulnerable:             toStrings(raw.Vulnerable),
		LocationAreaEncounters: orUnknown(raw.LocationAreaEncounters),
		Location:               orUnknown(raw.Location),
		Chance:                 toInt64(raw.Chance),
	}
}

func (s *service) CaptureChance(ctx context.Context, id int64) (int64, error) {
	out, err := s.contracts.Moonsters.Call(ctx, s.caller, "getChance", big.NewInt(id))
	if err != nil {
		return 0, err
	}

	return toInt64(at(out, 0)), nil
}

func (s *service) EvolutionChain(ctx context.Context, id int64) ([]EvolutionStage, error) {
	log := util.LogFromContext(ctx)

	var stages []EvolutionStage
	err := cache.GetJSON(ctx, s.store, evolutionKey(id), &stages)
	if err == nil {
		return stages, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		log.Warn().Err(err).Msg("Failed to read cached evolution chain, falling back to chain")
	}

	out, err := s.contracts.Moonsters.Call(ctx, s.caller, "getEvolutionChain", big.NewInt(id))
	if err != nil {
		return nil, err
	}

	ids := filterPositive(toInt64s(at(out, 0)))
	stages = make([]EvolutionStage, 0, len(ids))
	for _, stageID := range ids {
		raw, err := s.readMoonster(ctx, stageID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}

		stages = append(stages, EvolutionStage{
			ID:    toInt64(raw.Id),
			Name:  raw.Name,
			Image: orUnknown(raw.Image),
		})
	}

	if err := cache.SetJSON(ctx, s.store, evolutionKey(id), stages, s.cfg.EvolutionTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to cache evolution chain")
	}

	return stages, nil
}

func (s *service) UserMoonsters(ctx context.Context, user common.Address) ([]MoonsterSummary, error) {
	ids, err := s.UserIDs(ctx, user)
	if err != nil {
		return nil, err
	}

	moonsters := make([]MoonsterSummary, 0, len(ids))
	for _, id := range ids {
		m, err := s.Moonster(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		moonsters = append(moonsters, *m)
	}

	return moonsters, nil
}

func (s *service) CurrentSeasonID(ctx context.Context) (int64, error) {
	out, err := s.contracts.SeasonManagement.Call(ctx, s.caller, "getCurrentSeasonId")
	if err != nil {
		return 0, err
	}

	return toInt64(at(out, 0)), nil
}

func (s *service) Season(ctx context.Context, seasonID int64) (*Season, error) {
	out, err := s.contracts.SeasonManagement.Call(ctx, s.caller, "getSeason", big.NewInt(seasonID))
	if err != nil {
		return nil, err
	}

	season := &Season{
		ID:         toInt64(at(out, 0)),
		StartTime:  toInt64(at(out, 1)),
		EndTime:    toInt64(at(out, 2)),
		Active:     toBool(at(out, 3)),
		RewardPool: toBig(at(out, 4)),
	}

	if season.ID == 0 {
		return nil, errors.Wrapf(ErrNotFound, "season %d", seasonID)
	}

	return season, nil
}

func (s *service) BattleRound(ctx context.Context, roundID int64) (*BattleRound, error) {
	out, err := s.contracts.BattleManagement.Call(ctx, s.caller, "battleRounds", big.NewInt(roundID))
	if err != nil {
		return nil, err
	}

	round := &BattleRound{
		ID:          toInt64(at(out, 0)),
		SeasonID:    toInt64(at(out, 1)),
		StartTime:   toInt64(at(out, 2)),
		EndTime:     toInt64(at(out, 3)),
		MaxPlayers:  toInt64(at(out, 4)),
		PlayerCount: toInt64(at(out, 5)),
		Phase:       RoundPhase(toInt64(at(out, 6))), //nolint:gosec // uint8 on chain
	}

	if round.ID == 0 {
		return nil, errors.Wrapf(ErrNotFound, "round %d", roundID)
	}

	return round, nil
}

func (s *service) RoundInfo(ctx context.Context, roundID int64) (*RoundInfo, error) {
	out, err := s.contracts.BattleManagement.Call(ctx, s.caller, "getRoundInfo", big.NewInt(roundID))
	if err != nil {
		return nil, err
	}

	return &RoundInfo{
		Players:     toAddresses(at(out, 0)),
		MoonsterIDs: toInt64s(at(out, 1)),
		Paired:      toBool(at(out, 2)),
		Orphan:      toAddress(at(out, 3)),
	}, nil
}

func (s *service) PairMatches(ctx context.Context, roundID int64) ([]Match, error) {
	return s.matches(ctx, "getPairMatch", roundID)
}

func (s *service) SeasonMatches(ctx context.Context, seasonID int64) ([]Match, error) {
	return s.matches(ctx, "getMatchesForSeason", seasonID)
}

func (s *service) matches(ctx context.Context, method string, id int64) ([]Match, error) {
	out, err := s.contracts.BattleManagement.Call(ctx, s.caller, method, big.NewInt(id))
	if err != nil {
		return nil, err
	}

	raws, err := convert[[]rawMatch](at(out, 0))
	if err != nil {
		util.LogFromContext(ctx).Warn().Err(err).Str("method", method).Msg("Treating undecodable matches as empty")
		return []Match{}, nil
	}

	matches := make([]Match, 0, len(raws))
	for _, raw := range raws {
		if raw.Player1 == (common.Address{}) && raw.Player2 == (common.Address{}) {
			continue
		}

		matches = append(matches, Match{
			Player1:   raw.Player1,
			Player2:   raw.Player2,
			Moonster1: toInt64(raw.Pokemon1),
			Moonster2: toInt64(raw.Pokemon2),
			Winner:    raw.Winner,
			Resolved:  raw.Resolved,
			Rewarded:  raw.Rewarded,
		})
	}

	return matches, nil
}

func (s *service) RoundRecap(ctx context.Context, roundID int64) (*RoundRecap, error) {
	out, err := s.contracts.BattleManagement.Call(ctx, s.caller, "getRoundRecap", big.NewInt(roundID))
	if err != nil {
		return nil, err
	}

	return &RoundRecap{
		TotalMatches:     toInt64(at(out, 0)),
		ResolvedMatches:  toInt64(at(out, 1)),
		Orphan:           toAddress(at(out, 2)),
		OrphanMoonsterID: toInt64(at(out, 3)),
	}, nil
}

func (s *service) Leaderboard(ctx context.Context, seasonID int64) ([]LeaderboardEntry, error) {
	out, err := s.contracts.SeasonManagement.Call(ctx, s.caller, "getLeaderboard", big.NewInt(seasonID))
	if err != nil {
		return nil, err
	}

	return zipLeaderboard(out), nil
}

func (s *service) TopPlayers(ctx context.Context, seasonID int64, count int64) ([]LeaderboardEntry, error) {
	out, err := s.contracts.SeasonManagement.Call(ctx, s.caller, "getTopPlayers", big.NewInt(seasonID), big.NewInt(count))
	if err != nil {
		return nil, err
	}

	return zipLeaderboard(out), nil
}

func zipLeaderboard(out []interface{}) []LeaderboardEntry {
	players := toAddresses(at(out, 0))
	scores := toInt64s(at(out, 1))

	entries := make([]LeaderboardEntry, 0, len(players))
	for i, player := range players {
		if player == (common.Address{}) {
			continue
		}

		var score int64
		if i < len(scores) {
			score = scores[i]
		}

		entries = append(entries, LeaderboardEntry{Player: player, Score: score})
	}

	return entries
}

func (s *service) IsOwner(ctx context.Context, contract string, account common.Address) (bool, error) {
	c, err := s.contracts.ByName(contract)
	if err != nil {
		return false, err
	}

	out, err := c.Call(ctx, s.caller, "owner")
	if err != nil {
		return false, err
	}

	owner := toAddress(at(out, 0))

	return owner != (common.Address{}) && owner == account, nil
}

func (s *service) InvalidateUser(ctx context.Context, user common.Address) error {
	if err := s.store.Delete(ctx, userIDsKey(user)); err != nil {
		return errors.Wrap(err, "failed to invalidate user ids")
	}

	return nil
}

func (s *service) InvalidateEvolution(ctx context.Context, ids ...int64) error {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, evolutionKey(id))
	}

	if err := s.store.Delete(ctx, keys...); err != nil {
		return errors.Wrap(err, "failed to invalidate evolution chains")
	}

	return nil
}

func filterPositive(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			out = append(out, id)
		}
	}

	return out
}
