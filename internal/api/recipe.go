package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/culina-app/backend/internal/apperr"
	"github.com/culina-app/backend/internal/service"
	"github.com/culina-app/backend/internal/types"
)

// RecipeHandler serves the recipe collection and the AI recipe generator.
type RecipeHandler struct {
	store  *service.RecipeStore
	ai     *service.AIService
	logger *zap.Logger
}

func NewRecipeHandler(store *service.RecipeStore, ai *service.AIService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{store: store, ai: ai, logger: logger}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/generate", h.GenerateRecipe)
	}
}

// ListRecipes returns the in-memory collection, optionally narrowed by the
// q, max_time and category query parameters (ANDed, order preserved).
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var params struct {
		Query    string `form:"q"`
		MaxTime  *int   `form:"max_time" binding:"omitempty,min=1"`
		Category string `form:"category"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := types.Category(params.Category)
	if params.Category == "" {
		category = types.CategoryAll
	}
	recipes := service.FilterRecipes(h.store.Recipes(), params.Query, params.MaxTime, category)

	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"loading": h.store.IsLoading(),
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	rec, ok := h.store.Get(c.Param("id"))
	if !ok {
		respondError(c, h.logger, apperr.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": rec, "displayImageUrl": rec.DisplayImageURL()})
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var form types.RecipeFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.store.Create(c.Request.Context(), form)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": rec})
}

// UpdateRecipe replaces the stored record's fields. An unknown id is a
// silent no-op by contract, so the response is 200 either way.
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var form types.RecipeFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := types.Recipe{
		ID:          c.Param("id"),
		Name:        form.Name,
		Ingredients: types.SplitLines(form.Ingredients),
		Steps:       types.SplitLines(form.Steps),
		CookingTime: form.CookingTime,
		ImageURL:    form.ImageURL,
		Category:    types.Category(form.Category),
	}
	if err := h.store.Update(c.Request.Context(), rec); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe updated", "id": rec.ID})
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")
	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted", "id": id})
}

// GenerateRecipe turns a free-text dish description into form data. The
// result is not saved; the client reviews it in the modal before submitting.
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	form, err := h.ai.GenerateRecipe(c.Request.Context(), req.Prompt)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": form})
}
