package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/loyalty-pro/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type InsightsHandler struct {
	ledgerSvs  LedgerServicer
	insightSvs InsightServicer
}

func NewInsightsHandler(ledgerSvs LedgerServicer, insightSvs InsightServicer) *InsightsHandler {
	return &InsightsHandler{
		ledgerSvs:  ledgerSvs,
		insightSvs: insightSvs,
	}
}

type InsightParams struct {
	Prompt string `binding:"required,min=1,max=2000" json:"prompt"`
}

// Create POST RouteGroup + InsightsRoute. Загружает актуальный список клиентов админа
// и отвечает на вопрос prompt текстом генератора инсайтов.
func (h *InsightsHandler) Create(c *gin.Context) {
	username := c.Param("username")

	var params InsightParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, InsightServiceTimeout)
	defer cancel()

	customers, fetchErr := h.ledgerSvs.Customers(ctx, username)
	if fetchErr != nil {
		if errors.Is(fetchErr, domain.ErrAdminNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, domain.ErrAdminNotFound).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, fetchErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	text, insightErr := h.insightSvs.CustomerInsights(ctx, customers, params.Prompt)
	if insightErr != nil {
		var upstreamErr *domain.UpstreamError

		switch {
		case errors.Is(insightErr, domain.ErrInsightUnavailable):
			_ = c.AbortWithError(http.StatusServiceUnavailable, insightErr).
				SetType(gin.ErrorTypePublic)
		case errors.As(insightErr, &upstreamErr):
			_ = c.AbortWithError(http.StatusBadGateway, insightErr).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, insightErr).
				SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": text})
}
