package render

import "time"

// revealSleep is swapped out in tests so reveal timing can be observed
// without waiting.
var revealSleep = time.Sleep

// Revealer displays long text progressively, a fixed number of runes per
// step, after passing it through the markup transform.
type Revealer struct {
	surface    *Surface
	chunkRunes int
	interval   time.Duration
	minRunes   int // Below this, the text is shown at once
}

// NewRevealer creates a Revealer writing to the given surface.
// chunkRunes < 1 and minRunes < 0 fall back to defaults.
func NewRevealer(surface *Surface, chunkRunes int, interval time.Duration, minRunes int) *Revealer {
	if chunkRunes < 1 {
		chunkRunes = 3
	}
	if minRunes < 0 {
		minRunes = 50
	}
	return &Revealer{
		surface:    surface,
		chunkRunes: chunkRunes,
		interval:   interval,
		minRunes:   minRunes,
	}
}

// Reveal shows text on the surface under the given generation token.
// Empty text displays nothing and schedules no delays. Text shorter than
// the minimum threshold is shown fully transformed in one step. Longer
// text is revealed left to right in fixed-size rune chunks with a delay
// between chunks; ownership is re-checked before every chunk, so a
// superseded run stops without leaving orphaned timers.
func (r *Revealer) Reveal(gen int64, text string) {
	if text == "" {
		return
	}

	transformed := Transform(text)

	if len([]rune(text)) < r.minRunes {
		r.surface.Print(gen, transformed)
		return
	}

	runes := []rune(transformed)
	for i := 0; i < len(runes); i += r.chunkRunes {
		if !r.surface.Owned(gen) {
			return
		}
		end := i + r.chunkRunes
		if end > len(runes) {
			end = len(runes)
		}
		r.surface.Print(gen, string(runes[i:end]))
		if end < len(runes) {
			revealSleep(r.interval)
		}
	}
}
