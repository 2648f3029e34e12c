// Package plan spreads stored tasks over the coming week and writes the
// result up as a short, conversational study plan.
//
// The heuristic is deliberately simple: tasks are ordered by due date
// (undated tasks last) and then by importance, and dealt out one per day in
// turn across seven consecutive days. Duration is shown to the reader but
// never influences placement.
//
// Everything here is pure. The caller supplies the start date and the source
// of randomness used to pick filler phrases, so the output is fully
// reproducible under test.
package plan
