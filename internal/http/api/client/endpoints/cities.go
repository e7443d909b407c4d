package endpoints

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/islamku/muadzin/internal/http/api"
	"github.com/islamku/muadzin/internal/http/api/client/packets"
	"github.com/islamku/muadzin/internal/myquran"
)

// CitySearcher is the slice of the myquran client the lookup endpoint needs.
type CitySearcher interface {
	SearchCities(ctx context.Context, name string) ([]myquran.City, error)
}

type CityController struct {
	searcher CitySearcher
}

// CityModule mounts the city lookup endpoint.
func CityModule(searcher CitySearcher) api.Module {
	ctl := &CityController{searcher: searcher}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/cities/search/:name", ctl.searchCities)
	})
}

// GET /api/client/cities/search/:name
func (c *CityController) searchCities(ctx *gin.Context) (any, *api.APIError) {
	name := ctx.Param("name")

	cities, err := c.searcher.SearchCities(ctx.Request.Context(), name)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("city search failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "location lookup unavailable"}
	}
	if len(cities) == 0 {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
	}

	response := make([]packets.CityCandidateResponse, 0, len(cities))
	for _, city := range cities {
		response = append(response, packets.CityCandidateResponse{ID: city.ID, Lokasi: city.Lokasi})
	}
	return response, nil
}
