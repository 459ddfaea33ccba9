package store

import "FundPilot/internal/model"

// Watchlist keeps the favourites and blacklist registries mutually
// exclusive: marking a scheme as one removes it from the other. The rule
// lives here, as an explicit two-store operation, rather than inside the
// collections themselves.
type Watchlist struct {
	favourites *Collection[model.SchemeRef]
	blacklist  *Collection[model.SchemeRef]
}

// NewWatchlist pairs the two registries.
func NewWatchlist(favourites, blacklist *Collection[model.SchemeRef]) *Watchlist {
	return &Watchlist{favourites: favourites, blacklist: blacklist}
}

// AddFavourite marks a scheme as favourite, clearing any blacklist entry.
func (w *Watchlist) AddFavourite(ref model.SchemeRef) error {
	if err := w.blacklist.RemoveByKey(ref.SchemeCode); err != nil {
		return err
	}
	return w.favourites.AddUnique(ref)
}

// RemoveFavourite drops a scheme from the favourites.
func (w *Watchlist) RemoveFavourite(schemeCode string) error {
	return w.favourites.RemoveByKey(schemeCode)
}

// AddBlacklisted blacklists a scheme, clearing any favourite entry.
func (w *Watchlist) AddBlacklisted(ref model.SchemeRef) error {
	if err := w.favourites.RemoveByKey(ref.SchemeCode); err != nil {
		return err
	}
	return w.blacklist.AddUnique(ref)
}

// RemoveBlacklisted drops a scheme from the blacklist.
func (w *Watchlist) RemoveBlacklisted(schemeCode string) error {
	return w.blacklist.RemoveByKey(schemeCode)
}

// Favourites lists the favourite schemes.
func (w *Watchlist) Favourites() ([]model.SchemeRef, error) {
	return w.favourites.Load()
}

// Blacklisted lists the blacklisted schemes.
func (w *Watchlist) Blacklisted() ([]model.SchemeRef, error) {
	return w.blacklist.Load()
}
