package hud

// BellState is the alarm bell's ring pattern: a countdown of how many
// more ticks it rings for, once triggered. A negative TicksRemaining
// means the bell rings perpetually (PERPETUAL mode), which only Stop
// silences.
type BellState struct {
	TicksRemaining int
}

// RingDuration is how long (in ticks) the bell rings for a routine
// trigger (roll call, straying outside a permitted area).
const RingDuration = 60

// RingFortyTimes is the original's bell_RING_40_TIMES duration, used by
// the wake-up handler.
const RingFortyTimes = 40

// perpetual is the sentinel TicksRemaining value meaning "rings forever".
const perpetual = -1

// Ring (re)starts the bell ringing for RingDuration ticks.
func (b *BellState) Ring() { b.TicksRemaining = RingDuration }

// RingFor (re)starts the bell ringing for the given number of ticks.
func (b *BellState) RingFor(ticks int) { b.TicksRemaining = ticks }

// RingPerpetual sets the bell to ring until Stop is called, as happens
// once the searchlight catches the hero.
func (b *BellState) RingPerpetual() { b.TicksRemaining = perpetual }

// Stop silences the bell immediately, including a perpetual ring.
func (b *BellState) Stop() { b.TicksRemaining = 0 }

// Ringing reports whether the bell is currently sounding.
func (b *BellState) Ringing() bool { return b.TicksRemaining != 0 }

// Tick decrements the countdown by one tick; a perpetual ring is left
// untouched.
func (b *BellState) Tick() {
	if b.TicksRemaining > 0 {
		b.TicksRemaining--
	}
}
