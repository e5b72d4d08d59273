package world

// Named room indices the daily schedule handlers re-parent prisoners
// between and reset the shadowed bed/bench state of. These are
// synthesized, plausible placements (see DESIGN.md) rather than recovered
// originals: the retrieval pack's room-def data doesn't carry real room
// identities.
const (
	HutLeftRoom  Room = 3
	HutRightRoom Room = 5
	DiningRoomA  Room = 23
	DiningRoomB  Room = 25
)

// Named route-table indices the daily schedule assigns to characters,
// mirroring specific routeindex_* constants from the original's route
// table. RouteState.Index stores these directly.
const (
	RouteExitHut2        uint8 = 5
	RouteGoToYard        uint8 = 14
	RouteBreakfast25     uint8 = 16
	RouteGuard12RollCall uint8 = 26
	RouteGuard12Bed      uint8 = 38
	RouteHut2LeftToRight uint8 = 42
	RouteHut2RightToLeft uint8 = 44
	RouteHeroRollCall    uint8 = 45
	// RouteCommandantToSolitary is the route the commandant walks once the
	// hero is caught with the wrong papers.
	RouteCommandantToSolitary uint8 = 36
)

// PrisonersAndGuards returns the ten characters the daily schedule moves
// in two waves: four guards tied to the huts' entrances, followed by all
// six prisoners. It mirrors the original's fixed prisoners_and_guards
// array, though the specific character ids differ (see DESIGN.md).
func PrisonersAndGuards() [10]CharacterID {
	var out [10]CharacterID
	for i := 0; i < 4; i++ {
		out[i] = firstGuard() + CharacterID(i)
	}
	for i := 0; i < 6; i++ {
		out[4+i] = firstPrisoner() + CharacterID(i)
	}
	return out
}
