package plan

import (
	"context"
	"errors"
	"net/http"

	"meal-planner/internal/core/mealplan"
	"meal-planner/internal/core/spoonacular"
	"meal-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// noMatchMessage is shown when zero candidates survive the selector. This is
// a valid outcome, not an error.
const noMatchMessage = "No recipes found that include your ingredients. Try adjusting your filters."

// PlanGenerator runs the weekly-plan pipeline.
type PlanGenerator interface {
	GenerateWeeklyPlan(ctx context.Context, req mealplan.PlanRequest) (*mealplan.PlanResult, error)
}

// RecipeSearchAPI is the diet-aware search boundary.
type RecipeSearchAPI interface {
	ComplexSearch(ctx context.Context, req spoonacular.SearchRequest) ([]common.RecipeSummary, error)
}

// WeeklyPlanRequest is the body of POST /plan/weekly.
type WeeklyPlanRequest struct {
	Ingredients string `json:"ingredients" binding:"required"`              // comma-separated pantry contents
	Number      int    `json:"number" binding:"omitempty,min=1,max=100"`    // raw candidates to fetch
	MaxDays     int    `json:"max_days" binding:"omitempty,min=1,max=7"`    // plan slots to fill
	WithTips    bool   `json:"with_tips"`                                   // request substitution/pantry tips
}

// WeeklyPlanResponse is the rendered plan for one submission.
type WeeklyPlanResponse struct {
	Week         []mealplan.PlanEntry    `json:"week"`
	ShoppingList []mealplan.ShoppingItem `json:"shopping_list"`
	WasteScore   mealplan.WasteScore     `json:"waste_score"`
	PantryTip    string                  `json:"pantry_tip,omitempty"`
	Message      string                  `json:"message,omitempty"`
}

// SearchRecipesRequest is the body of POST /recipes/search.
type SearchRecipesRequest struct {
	Diet               string `json:"diet" binding:"omitempty,oneof=none vegan vegetarian 'gluten free'"`
	IncludeIngredients string `json:"include_ingredients"`
	ExcludeIngredients string `json:"exclude_ingredients"`
	MaxReadyTime       int    `json:"max_ready_time" binding:"omitempty,min=5,max=120"`
	Servings           int    `json:"servings" binding:"omitempty,min=1,max=10"`
	Number             int    `json:"number" binding:"omitempty,min=1,max=100"`
}

// Handler serves the planning endpoints.
type Handler struct {
	planService PlanGenerator
	searchAPI   RecipeSearchAPI
}

// NewHandler creates the planning handler.
func NewHandler(planService PlanGenerator, searchAPI RecipeSearchAPI) *Handler {
	return &Handler{
		planService: planService,
		searchAPI:   searchAPI,
	}
}

// HandleWeeklyPlan generates a weekly plan, shopping list and waste score
// from the submitted pantry contents.
func (h *Handler) HandleWeeklyPlan(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req WeeklyPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("invalid weekly plan request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	common.LogInfo("weekly plan requested",
		zap.String("request_id", requestID),
		zap.String("client_ip", c.ClientIP()),
		zap.Bool("with_tips", req.WithTips),
	)

	result, err := h.planService.GenerateWeeklyPlan(c.Request.Context(), mealplan.PlanRequest{
		Ingredients: req.Ingredients,
		Number:      req.Number,
		MaxDays:     req.MaxDays,
		WithTips:    req.WithTips,
	})
	if err != nil {
		writePipelineError(c, requestID, err)
		return
	}

	resp := WeeklyPlanResponse{
		Week:         result.Week,
		ShoppingList: result.ShoppingList,
		WasteScore:   result.WasteScore,
		PantryTip:    result.PantryTip,
	}
	if len(result.Week) == 0 {
		resp.Message = noMatchMessage
	}

	c.JSON(http.StatusOK, resp)
}

// HandleRecipeSearch runs the diet-aware search variant.
func (h *Handler) HandleRecipeSearch(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req SearchRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("invalid recipe search request",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	results, err := h.searchAPI.ComplexSearch(c.Request.Context(), spoonacular.SearchRequest{
		Diet:               req.Diet,
		IncludeIngredients: req.IncludeIngredients,
		ExcludeIngredients: req.ExcludeIngredients,
		MaxReadyTime:       req.MaxReadyTime,
		Number:             req.Number,
	})
	if err != nil {
		writePipelineError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
	})
}

// HandleExportPlan renders submitted plan entries as the downloadable
// weekly-plan text file.
func (h *Handler) HandleExportPlan(c *gin.Context) {
	var req struct {
		Week []mealplan.PlanEntry `json:"week" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="weekly_meal_plan.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(mealplan.RenderPlanText(req.Week)))
}

// HandleExportShopping renders submitted shopping items as the downloadable
// shopping-list text file.
func (h *Handler) HandleExportShopping(c *gin.Context) {
	var req struct {
		ShoppingList []mealplan.ShoppingItem `json:"shopping_list" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_list.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(mealplan.RenderShoppingText(req.ShoppingList)))
}

func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// writePipelineError maps a pipeline failure onto the response. Upstream
// failures keep their status and detail so the user sees why the submission
// failed.
func writePipelineError(c *gin.Context, requestID string, err error) {
	common.LogError("pipeline failed",
		zap.Error(err),
		zap.String("request_id", requestID),
	)

	var custom *common.CustomError
	if errors.As(err, &custom) {
		c.JSON(custom.Status, gin.H{
			"error":   custom.Message,
			"code":    custom.Code,
			"details": custom.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Meal plan generation failed",
		"code":  common.ErrCodeInternalError,
	})
}
