// Package greatescape ties the simulation's packages together into one
// tickable engine: input sampling, hero and off-screen character AI,
// door transitions, item pickup, the status displays, the daily
// schedule, and the tile/sprite buffer pipeline that feeds a Host's
// framebuffer. Every package it imports can be (and is) exercised
// standalone; this package only sequences them.
package greatescape

import (
	"fmt"

	"github.com/dpt/greatescape-core/internal/ai"
	"github.com/dpt/greatescape-core/internal/anim"
	"github.com/dpt/greatescape-core/internal/doors"
	"github.com/dpt/greatescape-core/internal/events"
	"github.com/dpt/greatescape-core/internal/gelog"
	"github.com/dpt/greatescape-core/internal/hero"
	"github.com/dpt/greatescape-core/internal/host"
	"github.com/dpt/greatescape-core/internal/hud"
	"github.com/dpt/greatescape-core/internal/input"
	"github.com/dpt/greatescape-core/internal/items"
	"github.com/dpt/greatescape-core/internal/plotter"
	"github.com/dpt/greatescape-core/internal/save"
	"github.com/dpt/greatescape-core/internal/screen"
	"github.com/dpt/greatescape-core/internal/world"
)

// catchRadius is how close a pursuing guard/dog must be to the hero to
// catch them, in map units.
const catchRadius = 3

// solitaryDuration is how many ticks the hero spends in solitary
// confinement after being caught.
const solitaryDuration = 2000

// moraleFailurePenalty is how much morale a hero capture costs.
const moraleFailurePenalty = 32

const (
	plotterWindowPixelWidth  = plotter.Columns * 8
	plotterWindowPixelHeight = plotter.Rows * 8
)

// messageCaught and its siblings name the fixed HUD messages the engine
// itself enqueues.
const (
	messageCaught hud.MessageID = iota
	messageFreed
	messagePickup
	messageEscapeWon
	messageEscapeCrossedBorder
	messageEscapeCaughtInUniform
	messageItIsOpen
	messageAnotherDayDawns
	messageTimeToWakeUp
	messageRollCall
	messageBreakfastTime
	messageExerciseTime
	messageTimeForBed
	messageItemsConfiscated
	messageSentToSolitary
)

// mainGateDoor is the main gate's door half, locked for the exercise
// period and unlocked at bed-time; it doubles as the "main gate" both
// the gate-lock schedule handlers and action_papers reason about.
const mainGateDoor world.DoorID = 0

// discoveryAlertRadius is how far (map units) a dropped, discoverable
// item alerts nearby guards into pursuit.
const discoveryAlertRadius = 8

// Engine bundles the whole simulation: the world state, the scheduling
// and AI helpers that act on it, and the HUD/clock state that sits
// alongside it. Engine owns no concrete Host; every tick is driven
// against one passed in by the caller.
type Engine struct {
	World *world.World

	scheduler ai.Scheduler
	prng      *ai.PRNG
	animTable anim.AnimationTable
	clock     *events.Clock

	Searchlight hud.SearchlightState
	Bell        hud.BellState
	Morale      hud.MoraleState
	Score       hud.ScoreState
	Messages    hud.Queue
	Solitary    hero.SolitaryConfinement
	Lockout     items.Lockout

	PermittedAreas []hero.PermittedArea
	EscapeBoundary world.Rect
	Escaped        bool

	interiorDoors [4]world.DoorID
	inputLatch    input.Latch

	Log  *gelog.Logger
	tick uint64

	buf   plotter.Buffers
	tiles plotter.TileSource
	glyph plotter.GlyphSource
	masks plotter.MaskSource
	frame *screen.FrameBuffer
}

// New creates an Engine over w, with its own daily schedule, PRNG and
// logger. w is expected to already hold the populated static tables
// (rooms, doors, items, routes, animations); tiles and glyphs supply the
// map/glyph art the plotter pipeline composites every tick. New only
// wires the stateful helpers around w.
func New(w *world.World, tiles plotter.TileSource, glyphs plotter.GlyphSource) (*Engine, error) {
	schedule, err := events.DefaultSchedule()
	if err != nil {
		return nil, fmt.Errorf("greatescape: loading schedule: %w", err)
	}
	e := &Engine{
		World:     w,
		prng:      &ai.PRNG{},
		animTable: anim.NewTable(w.Animations[:]),
		clock:     events.NewClock(schedule),
		Log:       gelog.New(4096),
		tiles:     tiles,
		glyph:     glyphs,
		frame:     screen.NewFrameBuffer(plotterWindowPixelWidth, plotterWindowPixelHeight),
	}
	e.interiorDoors = doors.SetupDoors(w, w.HeroVischar().Room)
	e.Searchlight.State = hud.SearchlightSearching
	e.reseedTiles(w.HeroVischar().Room != world.RoomOutdoors)
	return e, nil
}

// SetMaskSource installs the interior-mask bitmap art RenderFrame uses to
// occlude sprites with foreground scenery. Without one, RenderFrame plots
// sprites unmasked, which is fine for headless/test worlds that never
// populate RoomDef.Masks.
func (e *Engine) SetMaskSource(masks plotter.MaskSource) {
	e.masks = masks
}

// reseedTiles re-reads the supertile window around the buffer's current
// MapPosition and fully re-expands it, used on room entry and whenever
// the hero's indoor/outdoor state changes.
func (e *Engine) reseedTiles(indoors bool) {
	e.buf.GetSupertiles(e.tiles)
	e.buf.PlotAllTiles(e.tiles, indoors, e.glyph)
}

// Tick advances the whole simulation by one frame: samples input, steps
// the hero and every on-screen/off-screen character, resolves door
// transitions and item pickups, advances the HUD state machines and the
// daily schedule, composites the frame and presents it to h.
func (e *Engine) Tick(h host.Host) error {
	e.tick++
	e.Log.SetTick(e.tick)

	up, down, left, right, fire, kick := h.PollInput()
	e.sampleHeroInput(up, down, left, right, fire, kick)

	e.stepHero(h)
	e.stepOffScreenCharacters()

	if fire {
		e.dispatchFireAction()
	}

	if e.Lockout.Active() {
		if door, opened := e.Lockout.Tick(&e.World.Locks); opened {
			_ = door
			e.Messages.Enqueue(messageItIsOpen)
		}
	}

	e.tickHUD()
	e.tickSchedule()

	if e.Solitary.Active() {
		if justEnded := e.Solitary.Tick(); justEnded {
			e.Messages.Enqueue(messageFreed)
		}
	}

	if !e.Escaped {
		e.resolveEscape(hero.CheckEscape(e.World, e.EscapeBoundary))
	}

	if err := e.World.CheckInvariants(); err != nil {
		return fmt.Errorf("greatescape: invariant violated: %w", err)
	}

	e.RenderFrame(&e.buf, e.frame)
	h.Present(e.frame)
	return nil
}

func (e *Engine) sampleHeroInput(up, down, left, right, fire, kick bool) {
	hv := e.World.HeroVischar()
	hv.Input = e.inputLatch.Sample(up, down, left, right, fire, kick)
}

func (e *Engine) stepHero(h host.Host) {
	hv := e.World.HeroVischar()
	if e.Solitary.Active() || e.Escaped || e.Lockout.Active() {
		return
	}
	e.checkPermittedArea(hv)
	anim.SelectAnimation(hv, e.animTable)
	_, _, exhausted := anim.Advance(hv)
	if exhausted {
		anim.SelectAnimation(hv, e.animTable)
	}

	wasRoom := hv.Room
	heroPos := hv.Item.Pos.ToPos8()
	var outcome doors.TransitionOutcome
	if hv.Room == world.RoomOutdoors {
		outcome = doors.DoorHandlingExterior(e.World, hv, heroPos)
	} else {
		outcome = doors.DoorHandlingInterior(e.World, hv, e.interiorDoors, heroPos)
	}
	switch outcome {
	case doors.TransitionedIndoors, doors.TransitionedOutdoors:
		e.interiorDoors = doors.SetupDoors(e.World, hv.Room)
		h.PlaySound(host.SoundCue(0))
		if hv.Room != wasRoom {
			e.reseedTiles(hv.Room != world.RoomOutdoors)
		}
	}
}

// checkPermittedArea drains morale and rings the bell whenever the hero
// strays outside every configured permitted area. An empty PermittedAreas
// means no restriction is configured (e.g. a headless demo world), so it
// is a no-op rather than a perpetual violation.
func (e *Engine) checkPermittedArea(hv *world.Vischar) {
	if len(e.PermittedAreas) == 0 {
		return
	}
	pos := hv.Item.Pos.ToPos8()
	if hero.InPermittedArea(e.PermittedAreas, hv.Room, pos) {
		return
	}
	e.Bell.Ring()
	if justFailed := e.Morale.Adjust(-1); justFailed {
		e.catchHero()
	}
}

func (e *Engine) stepOffScreenCharacters() {
	e.scheduler.StepOffScreen(e.World)
	ai.PurgeInvisible(e.World)

	hv := e.World.HeroVischar()
	for i := range e.World.Vischars {
		v := &e.World.Vischars[i]
		if v.Empty() || v == hv {
			continue
		}

		var target world.Pos8
		if v.PursuitMode() == world.PursuitPursue {
			t, action := ai.StepPursuit(v, hv, catchRadius)
			target = t
			if action == ai.ActionCaughtHero {
				e.catchHero()
			}
		} else if route := e.routeFor(v); route != nil {
			t, _ := ai.StepCharacter(e.World, v, route)
			target = t
		} else {
			target = v.Item.Pos.ToPos8()
		}
		v.Target = target

		anim.SelectAnimation(v, e.animTable)
		_, _, exhausted := anim.Advance(v)
		if exhausted {
			anim.SelectAnimation(v, e.animTable)
		}

		if v.Room != world.RoomOutdoors {
			doors.DoorHandlingInterior(e.World, v, doors.SetupDoors(e.World, v.Room), v.Item.Pos.ToPos8())
		}
	}
}

// routeFor returns the stored Route a non-hero vischar is walking, or
// nil for characters in free-roam ("wander") mode.
func (e *Engine) routeFor(v *world.Vischar) *world.Route {
	idx := v.Route.PlainIndex()
	if idx == world.RouteWander || int(idx) >= len(e.World.Routes) {
		return nil
	}
	return &e.World.Routes[idx]
}

func (e *Engine) catchHero() {
	e.Solitary.Begin(solitaryDuration)
	e.Morale.Adjust(-moraleFailurePenalty)
	hv := e.World.HeroVischar()
	hv.Room = hero.SolitaryRoom
	hv.Item.Pos = world.Pos8{U: 32, V: 32, W: 0}.ToPos16()
	e.reseedTiles(true)
	e.Messages.Enqueue(messageCaught)
}

// resolveEscape applies the outcome of an escape attempt made this tick.
// A win or border-crossing ends the game in the hero's favour; a uniform
// or any other combination sends the hero back to solitary instead.
func (e *Engine) resolveEscape(outcome hero.EscapeOutcome) {
	switch outcome {
	case hero.NotEscaped:
		return
	case hero.EscapeWon:
		e.Escaped = true
		e.Score.Add(200)
		e.Messages.Enqueue(messageEscapeWon)
	case hero.EscapeCrossedBorder:
		e.Escaped = true
		e.Score.Add(100)
		e.Messages.Enqueue(messageEscapeCrossedBorder)
	case hero.EscapeCaughtInUniform:
		e.Messages.Enqueue(messageEscapeCaughtInUniform)
		e.catchHero()
	default:
		e.catchHero()
	}
}

// dispatchFireAction routes a fire-button press to one of the four
// actions a held input direction selects: fire alone picks up a nearby
// item; fire+up drops the first held slot; fire+down uses the first
// held slot; fire+left uses the second held slot. (Fire+right has no
// original mapping recoverable from the retrieval pack and is a no-op;
// see DESIGN.md.)
func (e *Engine) dispatchFireAction() {
	hv := e.World.HeroVischar()
	switch {
	case hv.Input.Has(world.InputUp):
		e.tryDrop(0)
	case hv.Input.Has(world.InputDown):
		e.tryUse(0)
	case hv.Input.Has(world.InputLeft):
		e.tryUse(1)
	default:
		e.tryPickup()
	}
}

func (e *Engine) tryPickup() {
	hv := e.World.HeroVischar()
	heroPos := hv.Item.Pos.ToPos8()
	item, found := items.NearbyItem(e.World, heroPos)
	if !found {
		return
	}
	firstTime := !e.World.Items[item].Found()
	if err := items.Pickup(e.World, item); err != nil {
		return
	}
	if firstTime {
		items.MarkFound(e.World, item)
		e.Morale.Adjust(5)
		e.Score.Add(5)
	}
	e.Messages.Enqueue(messagePickup)
}

func (e *Engine) tryDrop(slot int) {
	hv := e.World.HeroVischar()
	heroPos := hv.Item.Pos.ToPos8()
	item := e.World.ItemsHeld[slot]
	if item == world.NoItemHeld {
		return
	}
	if err := items.Drop(e.World, slot, heroPos, hv.Room); err != nil {
		return
	}
	if items.IsDiscoverable(item, hv.Room, heroPos, e.EscapeBoundary) {
		items.Discovered(e.World, item)
		e.alertNearbyGuards(heroPos)
	}
}

func (e *Engine) tryUse(slot int) {
	hv := e.World.HeroVischar()
	heroPos := hv.Item.Pos.ToPos8()
	eff, err := items.Use(e.World, slot, heroPos, hv.Room, &e.Lockout)
	if err != nil {
		e.Log.Warn(gelog.Items, "use action failed", err.Error())
		return
	}
	switch {
	case eff.SendSolitary:
		e.sendToSolitaryForWrongPapers()
	case eff.TeleportHero:
		hv.Room = eff.TeleportRoom
		hv.Item.Pos = eff.TeleportPos.ToPos16()
		e.reseedTiles(eff.TeleportRoom != world.RoomOutdoors)
	}
	if eff.Message != "" {
		e.Log.Info(gelog.Items, "use action effect", eff.Message)
	}
}

// alertNearbyGuards puts every guard within discoveryAlertRadius of pos
// into pursuit, as happens once a discarded item is discovered.
func (e *Engine) alertNearbyGuards(pos world.Pos8) {
	for i := range e.World.Vischars {
		v := &e.World.Vischars[i]
		if v.Empty() || v.Character == world.CharacterHero || !v.Character.IsGuard() {
			continue
		}
		vp := v.Item.Pos.ToPos8()
		du := int(vp.U) - int(pos.U)
		if du < 0 {
			du = -du
		}
		dv := int(vp.V) - int(pos.V)
		if dv < 0 {
			dv = -dv
		}
		if du <= discoveryAlertRadius && dv <= discoveryAlertRadius {
			v.SetPursuitMode(world.PursuitPursue)
		}
	}
}

// sendToSolitaryForWrongPapers is action_papers' failure path: every
// held item is seized and immediately re-discovered at its default
// position, the hero is marched to solitary, and the commandant starts
// walking their own route to deal with it.
func (e *Engine) sendToSolitaryForWrongPapers() {
	for slot := 0; slot < 2; slot++ {
		item := e.World.ItemsHeld[slot]
		if item == world.NoItemHeld {
			continue
		}
		items.ReturnToDefault(e.World, item)
		e.World.ItemsHeld[slot] = world.NoItemHeld
	}
	hv := e.World.HeroVischar()
	hv.Room = hero.SolitaryRoom
	hv.Item.Pos = world.Pos8{U: 58, V: 42}.ToPos16()
	e.World.Characters[world.CharacterCommandant].Route = world.RouteState{Index: world.RouteCommandantToSolitary}
	e.Solitary.Begin(solitaryDuration)
	e.reseedTiles(true)
	e.Messages.Enqueue(messageItemsConfiscated)
	e.Messages.Enqueue(messageCaught)
	e.Messages.Enqueue(messageSentToSolitary)
}

func (e *Engine) tickHUD() {
	e.Bell.Tick()
	e.Messages.Tick()
	if !e.clock.IsNight() {
		return
	}
	hv := e.World.HeroVischar()
	if hv.Room != world.RoomOutdoors {
		return
	}
	hud.Advance(&e.Searchlight)
	col, _ := world.ToUDG(hv.Iso)
	if caught, moraleHit := hud.CaughtByBeam(&e.Searchlight, col, hv.Room, true); caught {
		e.Bell.RingPerpetual()
		if moraleHit {
			if justFailed := e.Morale.Adjust(-10); justFailed {
				e.catchHero()
			}
		}
	}
	if attr, write := e.Searchlight.Attribute(); write {
		for c := e.Searchlight.Position - 1; c <= e.Searchlight.Position+1; c++ {
			e.frame.SetAttribute(c, 0, attr)
		}
	}
}

func (e *Engine) tickSchedule() {
	for _, action := range e.clock.Tick() {
		e.dispatchScheduleAction(action)
	}
}

// setCharacterRoute assigns routeIndex to character c: always on its
// characterstruct, and additionally on its live vischar's route when c is
// currently on screen. The vischar's Target is left unchanged.
func (e *Engine) setCharacterRoute(c world.CharacterID, routeIndex uint8, reversed bool) {
	idx := routeIndex
	if reversed {
		idx |= world.RouteReverseFlag
	}
	route := world.RouteState{Index: idx}
	e.World.Characters[c].Route = route
	if v := e.World.FindVischar(c); v != nil {
		v.Route = route
	}
}

// dispatchScheduleAction mutates world state for one of the daily
// schedule's 15 dispatch values: reassigning routes across the ten
// prisoners/guards, locking/unlocking the main gate, re-parenting
// prisoners between huts, resetting bed/bench shadow state, and
// restocking the red-cross parcel.
func (e *Engine) dispatchScheduleAction(action string) {
	switch action {
	case "another_day_dawns":
		e.Searchlight.Active = false
		e.Bell.Stop()
		e.Messages.Enqueue(messageAnotherDayDawns)

	case "wake_up":
		e.wakeUp()

	case "new_red_cross_parcel":
		e.World.RedCrossParcelContents = items.RerollRedCrossParcel(e.World, e.prng)

	case "go_to_roll_call":
		e.setCharacterRoute(world.CharacterHero, world.RouteHeroRollCall, false)
		for _, c := range world.PrisonersAndGuards() {
			e.setCharacterRoute(c, world.RouteGuard12RollCall, false)
		}

	case "roll_call":
		e.Bell.Ring()
		e.Messages.Enqueue(messageRollCall)

	case "go_to_breakfast_time":
		e.setCharacterRoute(world.CharacterHero, world.RouteBreakfast25, false)
		for _, c := range world.PrisonersAndGuards() {
			e.setCharacterRoute(c, world.RouteBreakfast25, false)
		}

	case "end_of_breakfast":
		e.World.Shadows[world.DiningRoomA].BenchOccupied = false
		e.World.Shadows[world.DiningRoomB].BenchOccupied = false
		e.Messages.Enqueue(messageBreakfastTime)

	case "go_to_exercise_time":
		e.World.Locks.Lock(mainGateDoor)
		for _, c := range world.PrisonersAndGuards() {
			e.setCharacterRoute(c, world.RouteGoToYard, false)
		}

	case "exercise_time":
		e.Messages.Enqueue(messageExerciseTime)

	case "go_to_time_for_bed":
		e.World.Locks.Unlock(mainGateDoor)
		e.setCharacterRoute(world.CharacterHero, world.RouteHut2RightToLeft, false)
		for _, c := range world.PrisonersAndGuards() {
			e.setCharacterRoute(c, world.RouteHut2RightToLeft, false)
		}

	case "time_for_bed":
		e.World.Shadows[world.HutLeftRoom].BedOccupied = [3]bool{true, true, true}
		e.World.Shadows[world.HutRightRoom].BedOccupied = [3]bool{true, true, true}
		e.Messages.Enqueue(messageTimeForBed)

	case "night_time":
		e.Searchlight.Active = true

	case "search_light":
		e.Searchlight.Active = true

	default:
		e.Log.Warn(gelog.Events, "unhandled schedule action", action)
	}
}

// wakeUp is the clock-8 handler: the hero and all ten prisoners and guards
// are routed from hut-left to hut-right, the six prisoners are moved into
// HutRightRoom, the two huts' three beds
// each are cleared, and the alarm bell rings forty times.
func (e *Engine) wakeUp() {
	e.setCharacterRoute(world.CharacterHero, world.RouteHut2LeftToRight, false)
	for _, c := range world.PrisonersAndGuards() {
		e.setCharacterRoute(c, world.RouteHut2LeftToRight, false)
		if c.IsPrisoner() {
			e.World.Characters[c].Room = world.HutRightRoom
		}
	}
	e.World.Shadows[world.HutLeftRoom].BedOccupied = [3]bool{}
	e.World.Shadows[world.HutRightRoom].BedOccupied = [3]bool{}
	e.Bell.RingFor(hud.RingFortyTimes)
	e.Messages.Enqueue(messageTimeToWakeUp)
}

// SaveState serialises the engine's full state (world plus AI/HUD
// counters) to bytes suitable for host.Host.SaveGame.
func (e *Engine) SaveState() ([]byte, error) {
	s := &save.State{
		World:        *e.World,
		SchedulerPos: uint8(e.scheduler.Cursor()),
		PRNGCursor:   e.prng.Cursor(),
		Bell:         e.Bell,
		Morale:       e.Morale,
		Score:        e.Score,
		Solitary:     e.Solitary,
		Lockout:      e.Lockout,
		ClockTick:    e.clock.Now(),
		Escaped:      e.Escaped,
	}
	return save.Encode(s)
}

// LoadState restores the engine from bytes previously produced by
// SaveState.
func (e *Engine) LoadState(data []byte) error {
	s, err := save.Decode(data)
	if err != nil {
		return err
	}
	*e.World = s.World
	e.prng = save.RestorePRNG(s)
	e.scheduler = *save.RestoreScheduler(s)
	e.Bell = s.Bell
	e.Morale = s.Morale
	e.Score = s.Score
	e.Solitary = s.Solitary
	e.Lockout = s.Lockout
	e.Escaped = s.Escaped
	e.clock.SetTick(s.ClockTick)
	e.interiorDoors = doors.SetupDoors(e.World, e.World.HeroVischar().Room)
	e.reseedTiles(e.World.HeroVischar().Room != world.RoomOutdoors)
	return nil
}
