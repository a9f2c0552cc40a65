package lists

import (
	"github.com/labstack/echo/v4"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/api"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/lists"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/types"
	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/util"
)

func PostListEntryRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Lists.POST("/:kind", postListEntryHandler(s))
}

func postListEntryHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		service, kind, session, err := target(s, c)
		if err != nil {
			return err
		}

		var body types.PostListEntryPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		entries, err := service.Add(c.Request().Context(), session, lists.Entry{
			ID:    *body.ID,
			Name:  *body.Name,
			Image: body.Image,
		})
		if err != nil {
			return listError(c, err)
		}

		return respond(c, service, kind, entries)
	}
}
