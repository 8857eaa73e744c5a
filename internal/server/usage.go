package server

import (
	"net/http"

	"github.com/gagnaveita/portvakt/internal/kennitala"
	"github.com/gagnaveita/portvakt/internal/observability/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type getUsageDataRequest struct {
	Kennitala string `json:"kennitala"`
}

// GetUsageData validates the identifier, then runs the lookup-and-query
// pipeline. Validation failures never reach orchestration.
func (s *Server) GetUsageData(c *gin.Context) {
	var req getUsageDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	policy := kennitala.CenturyPolicy{Pivot: s.cfg.KennitalaCenturyPivot}
	kt, err := kennitala.ParseWithPolicy(req.Kennitala, policy)
	if err != nil {
		s.log.Debug("kennitala rejected",
			zap.String("kennitala", logger.MaskKennitala(req.Kennitala)),
			zap.Error(err),
		)
		AbortWithError(c, kennitalaValidationError(err))
		return
	}

	record, err := s.usageSvc.GetUsageData(c.Request.Context(), kt)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
