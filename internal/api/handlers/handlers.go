package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/handlers/actions"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/handlers/admin"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/handlers/battles"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/handlers/common"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/handlers/lists"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/handlers/moonsters"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api/handlers/signatures"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		actions.DeleteBookmarkRoute(s),
		actions.GetFeesRoute(s),
		actions.GetFlowRoute(s),
		actions.GetFlowsRoute(s),
		actions.GetStateRoute(s),
		actions.PostBookmarkRoute(s),
		actions.PostCaptureRoute(s),
		actions.PostEvolveRoute(s),
		actions.PostJoinBattleRoute(s),
		admin.PostAdminRoute(s),
		battles.GetCurrentSeasonRoute(s),
		battles.GetLeaderboardRoute(s),
		battles.GetRoundMatchesRoute(s),
		battles.GetRoundRoute(s),
		battles.GetSeasonMatchesRoute(s),
		battles.GetSeasonRoute(s),
		common.GetHealthyRoute(s),
		common.GetMetricsRoute(s),
		common.GetReadyRoute(s),
		lists.DeleteListEntryRoute(s),
		lists.DeleteListRoute(s),
		lists.GetListRoute(s),
		lists.PostListEntryRoute(s),
		moonsters.GetEvolutionChainRoute(s),
		moonsters.GetMoonsterRoute(s),
		moonsters.GetUserBookmarksRoute(s),
		moonsters.GetUserMoonstersRoute(s),
		signatures.PostSignCaptureRoute(s),
		signatures.PostSignEvolveRoute(s),
	}
}
