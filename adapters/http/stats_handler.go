package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	statsUC "github.com/tradehub-app/tradehub/internal/application/usecase/stats"
	"github.com/tradehub-app/tradehub/pkg/logger"
)

type StatsHandler struct {
	popularCitiesUseCase *statsUC.PopularCitiesUseCase
	logger               logger.Logger
}

func NewStatsHandler(uc *statsUC.PopularCitiesUseCase, log logger.Logger) *StatsHandler {
	return &StatsHandler{
		popularCitiesUseCase: uc,
		logger:               log,
	}
}

func (h *StatsHandler) PopularCities(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	cities, err := h.popularCitiesUseCase.Execute(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]CityCountDTO, len(cities))
	for i, cc := range cities {
		dtos[i] = ToCityCountDTO(cc)
	}
	c.JSON(http.StatusOK, dtos)
}
