package plan

import (
	"net/http"

	"meal-planner/internal/core/advisor"
	"meal-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TipHandler serves the standalone advisory-tip endpoint.
type TipHandler struct {
	advisor advisor.Advisor
}

// NewTipHandler creates the tip handler.
func NewTipHandler(adv advisor.Advisor) *TipHandler {
	return &TipHandler{advisor: adv}
}

// HandleSubstitutionTip returns a substitution suggestion for one
// ingredient. A backend failure degrades to inline marked text; this endpoint
// never reports the upstream error as a request failure.
func (h *TipHandler) HandleSubstitutionTip(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req struct {
		Ingredient string `json:"ingredient" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("invalid tip request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	tip := h.advisor.SubstitutionTip(c.Request.Context(), req.Ingredient)

	c.JSON(http.StatusOK, gin.H{
		"ingredient": req.Ingredient,
		"tip":        tip,
	})
}
