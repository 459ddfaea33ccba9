package api

import (
	"net/http"

	"FundPilot/internal/api/handlers"
	"FundPilot/internal/api/middleware"
	"FundPilot/internal/dipfactor"
	"FundPilot/internal/navsource"
	"FundPilot/internal/recorder"
	"FundPilot/internal/store"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the HTTP layer is wired with.
type Deps struct {
	Source    navsource.Source
	Stores    *store.Stores
	Watchlist *store.Watchlist
	Recorder  recorder.Recorder
	Calc      *dipfactor.Calculator
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())

	schemes := handlers.NewSchemeHandler(deps.Source, deps.Calc)
	simulate := handlers.NewSimulateHandler(deps.Source, deps.Recorder)
	simulations := handlers.NewSimulationsHandler(deps.Stores, deps.Source)
	watchlist := handlers.NewWatchlistHandler(deps.Watchlist)
	investments := handlers.NewInvestmentHandler(deps.Stores, deps.Source)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "source": deps.Source.Name()})
	})

	api := router.Group("/api/v1")
	{
		api.GET("/schemes", schemes.ListSchemes)
		api.GET("/schemes/:code", schemes.GetScheme)
		api.GET("/schemes/:code/history", schemes.GetHistory)
		api.GET("/schemes/:code/metrics", schemes.GetMetrics)

		api.POST("/simulate/weekly", simulate.SimulateWeekly)
		api.POST("/simulate/monthly", simulate.SimulateMonthly)

		api.GET("/simulations", simulations.List)
		api.POST("/simulations", simulations.Save)
		api.DELETE("/simulations/:id", simulations.Delete)
		api.POST("/simulations/:id/run", simulations.Run)

		api.GET("/watchlist/favourites", watchlist.ListFavourites)
		api.POST("/watchlist/favourites", watchlist.AddFavourite)
		api.DELETE("/watchlist/favourites/:code", watchlist.RemoveFavourite)
		api.GET("/watchlist/blacklist", watchlist.ListBlacklisted)
		api.POST("/watchlist/blacklist", watchlist.AddBlacklisted)
		api.DELETE("/watchlist/blacklist/:code", watchlist.RemoveBlacklisted)

		api.GET("/investments", investments.List)
		api.POST("/investments", investments.Add)
		api.DELETE("/investments/:id", investments.Remove)
		api.GET("/investments/metrics", investments.PortfolioMetrics)
	}

	return router
}
