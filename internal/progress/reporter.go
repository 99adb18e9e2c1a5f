// Package progress drives the staged status indicator shown while a
// verification is in flight. The stages are presentation labels on a fixed
// schedule, not backend-observed milestones: the backend exposes no
// progress channel.
package progress

import (
	"fmt"
	"time"

	"github.com/warunap/sathya/internal/render"
)

// State is the reporter lifecycle state
type State int

const (
	StateIdle State = iota
	StateRunning
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	default:
		return "failed"
	}
}

// Stages is the fixed, ordered interim message sequence. The last entry
// holds until the run completes or fails.
var Stages = []string{
	"⏳ Starting verification...",
	"🔍 Gathering evidence...",
	"🧠 Analyzing evidence...",
}

// doneMessage is shown briefly on success before the status line clears
const doneMessage = "✓ Verification complete"

// lingerSleep is swapped out in tests
var lingerSleep = time.Sleep

// Reporter emits the stage sequence to a surface at a fixed interval.
// Single-use: one reporter per run, no state is resumable.
type Reporter struct {
	surface  *render.Surface
	gen      int64
	interval time.Duration
	linger   time.Duration

	state State
	stop  chan struct{}
	done  chan struct{}
}

// NewReporter creates an idle reporter bound to one run generation
func NewReporter(surface *render.Surface, gen int64, interval, linger time.Duration) *Reporter {
	if interval <= 0 {
		interval = 900 * time.Millisecond
	}
	return &Reporter{
		surface:  surface,
		gen:      gen,
		interval: interval,
		linger:   linger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// State returns the current lifecycle state
func (r *Reporter) State() State {
	return r.state
}

// Start moves Idle to Running and begins emitting stages. Starting a
// reporter that already ran is an error: every run gets a fresh reporter.
func (r *Reporter) Start() error {
	if r.state != StateIdle {
		return fmt.Errorf("progress reporter already %s", r.state)
	}
	r.state = StateRunning

	r.surface.SetStatus(r.gen, Stages[0])

	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		next := 1
		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				if next >= len(Stages) {
					continue
				}
				r.surface.SetStatus(r.gen, Stages[next])
				next++
			}
		}
	}()

	return nil
}

// Done moves Running to Done: the terminal message shows briefly, then the
// status line clears. No-op unless Running.
func (r *Reporter) Done() {
	if r.state != StateRunning {
		return
	}
	r.state = StateDone
	r.halt()
	r.surface.SetStatus(r.gen, doneMessage)
	if r.linger > 0 {
		lingerSleep(r.linger)
	}
	r.surface.ClearStatus(r.gen)
}

// Fail moves Running to Failed and replaces the progress display with a
// visible error line.
func (r *Reporter) Fail(msg string) {
	if r.state != StateRunning {
		return
	}
	r.state = StateFailed
	r.halt()
	// Print clears the in-progress status line before writing, so the
	// error line takes the progress display's place.
	r.surface.Print(r.gen, "✗ "+msg+"\n")
}

// Abandon stops a reporter whose run was superseded. No display writes:
// the surface already belongs to a newer run.
func (r *Reporter) Abandon() {
	if r.state != StateRunning {
		return
	}
	r.state = StateDone
	r.halt()
}

func (r *Reporter) halt() {
	close(r.stop)
	<-r.done
}
