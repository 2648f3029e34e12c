package plan

import "math/rand/v2"

// RandomSource supplies the draws used to pick filler phrases.
// IntN must return a value in [0, n) for n > 0. *rand.Rand from math/rand/v2
// satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// globalSource draws from the package-level math/rand/v2 generator, which is
// safe for concurrent use and seeded by the runtime.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// NewDefaultSource returns the RandomSource used outside of tests.
// It is safe for concurrent use and its output is not reproducible.
func NewDefaultSource() RandomSource {
	return globalSource{}
}

// Phrases is the fixed wording used to dress up a plan.
type Phrases struct {
	// Openings are candidate first sentences. One is chosen per plan.
	Openings []string
	// Tips are candidate focus tips. One is chosen per day.
	Tips []string
	// RestDay is the line shown for a day with nothing assigned.
	RestDay string
	// Closing is the final sentence of every plan.
	Closing string
}

// DefaultPhrases returns the stock wording.
func DefaultPhrases() Phrases {
	return Phrases{
		Openings: []string{
			"Here’s a focused 7‑day study plan I created from your tasks.",
			"I’ve looked at your tasks and built a balanced 7‑day schedule for you.",
			"Based on your deadlines and importance levels, here’s a realistic plan for the next week.",
		},
		Tips: []string{
			"Keep sessions short (25–30 minutes) with 5‑minute breaks.",
			"Put your phone away and study at a clear desk to stay focused.",
			"Start with the most important or earliest‑due task each day.",
			"If you finish early, use the extra time to review or get ahead.",
			"Remember to drink water and take short breaks to avoid burnout.",
		},
		RestDay: "No heavy tasks today. Use this day to rest or lightly review your notes.",
		Closing: "This is a starting point—feel free to move tasks between days " +
			"if your real schedule changes.",
	}
}

// Opening returns the opening sentence selected by draw.
func (p Phrases) Opening(draw int) string {
	return pick(p.Openings, draw)
}

// Tip returns the focus tip selected by draw.
func (p Phrases) Tip(draw int) string {
	return pick(p.Tips, draw)
}

// pick returns options[draw] with draw folded into range, or "" when there
// are no options.
func pick(options []string, draw int) string {
	n := len(options)
	if n == 0 {
		return ""
	}
	return options[((draw%n)+n)%n]
}

// draw asks src for an index into a list of n items. It returns 0 without
// consulting src when n is zero.
func draw(src RandomSource, n int) int {
	if n <= 0 {
		return 0
	}
	return src.IntN(n)
}
