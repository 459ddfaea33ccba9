package handlers

import (
	"net/http"

	"FundPilot/internal/api/models"
	"FundPilot/internal/model"
	"FundPilot/internal/store"

	"github.com/gin-gonic/gin"
)

// WatchlistHandler manages the favourites and blacklist registries.
type WatchlistHandler struct {
	Watchlist *store.Watchlist
}

func NewWatchlistHandler(wl *store.Watchlist) *WatchlistHandler {
	return &WatchlistHandler{Watchlist: wl}
}

// ListFavourites handles GET /api/v1/watchlist/favourites
func (h *WatchlistHandler) ListFavourites(c *gin.Context) {
	refs, err := h.Watchlist.Favourites()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(refs))
}

// AddFavourite handles POST /api/v1/watchlist/favourites
func (h *WatchlistHandler) AddFavourite(c *gin.Context) {
	ref, ok := bindRef(c)
	if !ok {
		return
	}
	if err := h.Watchlist.AddFavourite(ref); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ref)
}

// RemoveFavourite handles DELETE /api/v1/watchlist/favourites/:code
func (h *WatchlistHandler) RemoveFavourite(c *gin.Context) {
	if err := h.Watchlist.RemoveFavourite(c.Param("code")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBlacklisted handles GET /api/v1/watchlist/blacklist
func (h *WatchlistHandler) ListBlacklisted(c *gin.Context) {
	refs, err := h.Watchlist.Blacklisted()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(refs))
}

// AddBlacklisted handles POST /api/v1/watchlist/blacklist
func (h *WatchlistHandler) AddBlacklisted(c *gin.Context) {
	ref, ok := bindRef(c)
	if !ok {
		return
	}
	if err := h.Watchlist.AddBlacklisted(ref); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ref)
}

// RemoveBlacklisted handles DELETE /api/v1/watchlist/blacklist/:code
func (h *WatchlistHandler) RemoveBlacklisted(c *gin.Context) {
	if err := h.Watchlist.RemoveBlacklisted(c.Param("code")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindRef(c *gin.Context) (model.SchemeRef, bool) {
	var req models.WatchlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return model.SchemeRef{}, false
	}
	return model.SchemeRef{SchemeCode: req.SchemeCode, SchemeName: req.SchemeName}, true
}

func emptyIfNil(refs []model.SchemeRef) []model.SchemeRef {
	if refs == nil {
		return []model.SchemeRef{}
	}
	return refs
}
