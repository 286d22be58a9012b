// Package sim drives a double-buffered Game of Life board from a host event
// loop: one Tick per frame, pointer events in between.
package sim

import (
	"time"

	"life-ca/internal/core"
)

// Options configures a Controller.
type Options struct {
	Width    int
	Height   int
	CellSize int
	TPS      int
	// Workers > 1 splits each step into concurrently computed row bands.
	Workers int
}

// StepInfo describes an accepted generation step.
type StepInfo struct {
	Generation uint64
	Population int
	At         time.Time
	Took       time.Duration
}

// Controller owns both grid buffers. The parity of the generation counter
// selects which buffer is current; the other is the step target.
type Controller struct {
	buffers    [2]*core.Grid
	generation uint64
	clock      *core.Clock
	cellSize   int
	workers    int
	held       bool
	onStep     func(StepInfo)
}

// New constructs a Controller with two all-dead buffers.
func New(opts Options) *Controller {
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	return &Controller{
		buffers: [2]*core.Grid{
			core.NewGrid(opts.Width, opts.Height),
			core.NewGrid(opts.Width, opts.Height),
		},
		clock:    core.NewClock(opts.TPS),
		cellSize: opts.CellSize,
		workers:  opts.Workers,
	}
}

// SetStepHook registers fn to be called after every accepted step.
func (c *Controller) SetStepHook(fn func(StepInfo)) { c.onStep = fn }

// Current returns the buffer holding the latest completed generation.
func (c *Controller) Current() *core.Grid { return c.buffers[c.generation%2] }

func (c *Controller) next() *core.Grid { return c.buffers[(c.generation+1)%2] }

// Generation returns the number of steps taken so far.
func (c *Controller) Generation() uint64 { return c.generation }

// Size returns the grid dimensions.
func (c *Controller) Size() core.Size { return c.Current().Size() }

// CellSize returns the on-screen size of a cell in pixels.
func (c *Controller) CellSize() int { return c.cellSize }

// Clock exposes the step gate so the host can change the tick rate.
func (c *Controller) Clock() *core.Clock { return c.clock }

// Tick advances one generation if the clock says a step is due. It reports
// whether a step was taken.
func (c *Controller) Tick(now time.Time) bool {
	if !c.clock.ShouldStep(now) {
		return false
	}
	c.Step(now)
	return true
}

// Step advances one generation regardless of the clock and records now as
// the step time.
func (c *Controller) Step(now time.Time) {
	start := time.Now()
	c.Current().StepParallel(c.next(), c.workers)
	c.generation++
	c.clock.RecordStep(now)

	if c.onStep != nil {
		c.onStep(StepInfo{
			Generation: c.generation,
			Population: c.Current().Population(),
			At:         now,
			Took:       time.Since(start),
		})
	}
}

// HandlePointer sets the cell under the screen position alive in the
// current buffer.
func (c *Controller) HandlePointer(screenX, screenY float64) {
	Paint(c.Current(), screenX, screenY, c.cellSize)
}

// PointerDown paints under the pointer and starts a drag.
func (c *Controller) PointerDown(screenX, screenY float64) {
	c.held = true
	c.HandlePointer(screenX, screenY)
}

// PointerMove paints under the pointer while a drag is in progress.
func (c *Controller) PointerMove(screenX, screenY float64) {
	if c.held {
		c.HandlePointer(screenX, screenY)
	}
}

// PointerUp ends a drag.
func (c *Controller) PointerUp() { c.held = false }

// PointerFrame routes one frame of primary-button state: a fresh press
// starts a drag, a fresh release ends it, anything else is a move.
func (c *Controller) PointerFrame(pressed, released bool, screenX, screenY float64) {
	switch {
	case pressed:
		c.PointerDown(screenX, screenY)
	case released:
		c.PointerUp()
	default:
		c.PointerMove(screenX, screenY)
	}
}

// Held reports whether a drag is in progress.
func (c *Controller) Held() bool { return c.held }

// Reset clears both buffers and lets seed populate the current one. The
// generation counter keeps counting.
func (c *Controller) Reset(seed func(g *core.Grid)) {
	c.next().Clear()
	cur := c.Current()
	cur.Clear()
	if seed != nil {
		seed(cur)
	}
}

// Parameters reports the values shown on the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	size := c.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.Uint64Param("generation", "Generation", c.generation),
				core.IntParam("population", "Population", c.Current().Population()),
				core.IntParam("tps", "Ticks/s", c.clock.TPS()),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
				core.IntParam("cell_size", "Cell size", c.cellSize),
			},
		},
	}}
}
