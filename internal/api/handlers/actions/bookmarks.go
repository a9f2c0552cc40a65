package actions

import (
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/action"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func PostBookmarkRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Actions.POST("/bookmarks", postBookmarkHandler(s))
}

func postBookmarkHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostBookmarkPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		return Respond(c, s.Orchestrator.Submit(c.Request().Context(), action.BookmarkCall(*body.ID)))
	}
}

func DeleteBookmarkRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Actions.DELETE("/bookmarks/:id", deleteBookmarkHandler(s))
}

func deleteBookmarkHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := util.ParseIDParam(c, "id")
		if err != nil {
			return err
		}

		return Respond(c, s.Orchestrator.Submit(c.Request().Context(), action.RemoveBookmarkCall(id)))
	}
}
