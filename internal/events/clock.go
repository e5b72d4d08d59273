// Package events implements the daily schedule: a fixed dispatch table of
// times-of-day mapped to actions (wake the prisoners, ring the bell for
// roll call, serve breakfast, send everyone to bed), loaded from
// an embedded YAML table, and the Clock that advances through it tick by
// tick.
package events

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// TicksPerClockValue is how many raw engine ticks make up one step of the
// clock-of-day value; the dispatch table is evaluated once per step, not
// once per raw tick.
const TicksPerClockValue = 64

// ClockWrapValue is the exclusive upper bound of the clock-of-day value;
// it wraps back to 0 (a new day) on reaching this.
const ClockWrapValue = 140

//go:embed schedule.yaml
var defaultScheduleYAML []byte

// ScheduleEntry is one dispatch-table row: a clock-of-day value (0..139)
// and the action name to invoke when the clock reaches it.
type ScheduleEntry struct {
	Clock  int    `yaml:"clock"`
	Action string `yaml:"action"`
}

// Schedule is the full day's dispatch table, sorted by Clock.
type Schedule struct {
	Entries []ScheduleEntry `yaml:"schedule"`
}

// LoadSchedule parses a YAML schedule document (see schedule.yaml for the
// shape) and sorts its entries by clock value so Clock can walk them in
// order.
func LoadSchedule(data []byte) (*Schedule, error) {
	var s Schedule
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("events: parsing schedule: %w", err)
	}
	sort.Slice(s.Entries, func(i, j int) bool { return s.Entries[i].Clock < s.Entries[j].Clock })
	return &s, nil
}

// DefaultSchedule loads the engine's built-in daily schedule.
func DefaultSchedule() (*Schedule, error) { return LoadSchedule(defaultScheduleYAML) }

// Clock advances through a Schedule, firing each entry's action exactly
// once per day as the clock-of-day value reaches it. rawTick subdivides
// each clock-of-day step into TicksPerClockValue raw engine ticks; only
// every 64th raw tick actually advances clock and walks the dispatch
// table.
type Clock struct {
	schedule *Schedule
	rawTick  int
	clock    int
	nextIdx  int
}

// NewClock creates a Clock starting at clock-of-day 0 against schedule.
func NewClock(schedule *Schedule) *Clock {
	return &Clock{schedule: schedule}
}

// Tick advances the clock by one raw engine tick, returning the actions
// (if any) whose scheduled clock value was just reached. Actions only
// fire on the raw tick that completes a clock-of-day step.
func (c *Clock) Tick() []string {
	c.rawTick++
	if c.rawTick < TicksPerClockValue {
		return nil
	}
	c.rawTick = 0
	c.clock++
	if c.clock >= ClockWrapValue {
		c.clock = 0
		c.nextIdx = 0
	}
	var fired []string
	for c.nextIdx < len(c.schedule.Entries) && c.schedule.Entries[c.nextIdx].Clock <= c.clock {
		fired = append(fired, c.schedule.Entries[c.nextIdx].Action)
		c.nextIdx++
	}
	return fired
}

// Now reports the current clock-of-day value, in [0, ClockWrapValue).
func (c *Clock) Now() int { return c.clock }

// SetTick restores a previously saved clock-of-day value, repositioning
// nextIdx so the next Tick only fires entries still ahead of it. The
// sub-tick phase (rawTick) is not preserved across save/load.
func (c *Clock) SetTick(clock int) {
	c.clock = clock
	c.rawTick = 0
	c.nextIdx = 0
	for c.nextIdx < len(c.schedule.Entries) && c.schedule.Entries[c.nextIdx].Clock <= c.clock {
		c.nextIdx++
	}
}

// IsNight reports whether the current clock value falls within the night
// window (night_time to wake_up), used by the searchlight and bed-return
// logic.
func (c *Clock) IsNight() bool {
	const lightsOut, wakeUp = 100, 8
	return c.clock >= lightsOut || c.clock < wakeUp
}
