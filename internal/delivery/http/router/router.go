// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nutrisheet/internal/delivery/http/middleware"
	"nutrisheet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IngredientHandler *handler.IngredientHandler
	RecipeHandler     *handler.RecipeHandler
	JournalHandler    *handler.JournalHandler
	ProfileHandler    *handler.ProfileHandler
	MenuHandler       *handler.MenuHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	ingredientHandler *handler.IngredientHandler
	recipeHandler     *handler.RecipeHandler
	journalHandler    *handler.JournalHandler
	profileHandler    *handler.ProfileHandler
	menuHandler       *handler.MenuHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		ingredientHandler: params.IngredientHandler,
		recipeHandler:     params.RecipeHandler,
		journalHandler:    params.JournalHandler,
		profileHandler:    params.ProfileHandler,
		menuHandler:       params.MenuHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every spreadsheet call is made with the caller's token.
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", r.ingredientHandler.ListIngredients)
		ingredients.POST("", r.ingredientHandler.CreateIngredient)
		ingredients.GET("/search", r.ingredientHandler.SearchIngredients)
		ingredients.PUT("/:id", r.ingredientHandler.UpdateIngredient)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", r.recipeHandler.ListRecipes)
		recipes.POST("", r.recipeHandler.CreateRecipe)
		recipes.GET("/next-number", r.recipeHandler.NextRecipeNumber)
		recipes.PUT("/:id", r.recipeHandler.UpdateRecipe)
	}

	journal := api.Group("/journal")
	{
		journal.GET("", r.journalHandler.ListJournal)
		journal.POST("", r.journalHandler.CreateJournalEntry)
		journal.DELETE("/:id", r.journalHandler.DeleteJournalEntry)
		journal.GET("/totals/:date", r.journalHandler.DayTotals)
		journal.GET("/week/:start", r.journalHandler.WeekTotals)
	}

	profile := api.Group("/profile")
	profile.Use(r.authMiddleware.RequireUser)
	{
		profile.GET("", r.profileHandler.GetProfile)
		profile.PUT("", r.profileHandler.UpdateProfile)
	}

	api.GET("/menus", r.menuHandler.GetMenuOptions)
}
