// Package filtergraph compiles sharing intervals, canvas resolution and
// pane geometry into a single ffmpeg filter_complex program that renders
// the whole composition in one pass, switching layouts frame-accurately
// without intermediate re-encoding.
package filtergraph

import (
	"strconv"
	"strings"

	"github.com/kartoza/kartoza-meeting-compositor/internal/models"
)

// Chain is one processing stage: a filter body applied to zero or more
// labeled inputs, producing one or more labeled outputs. Source stages
// (color, movie) have no inputs.
type Chain struct {
	Inputs  []string
	Body    string
	Outputs []string
}

// Program is the compiled composition: an ordered chain list forming a
// DAG with a single video terminal. It is immutable once built and
// opaque to ffmpeg, which only sees the serialized text.
type Program struct {
	Chains []Chain
	// Output is the terminal video label (without brackets) to map in
	// the ffmpeg invocation.
	Output string
	// Selector is the time-gate enable expression routing frames
	// through the active pipeline, empty when the program is the
	// speaker-only pipeline end to end.
	Selector string
}

// HasSelector reports whether the program switches pipelines over time.
func (p *Program) HasSelector() bool {
	return p.Selector != ""
}

// String serializes the program into ffmpeg filter_complex syntax.
// Serialization is deterministic: identical programs produce identical
// text.
func (p *Program) String() string {
	parts := make([]string, 0, len(p.Chains))
	for _, c := range p.Chains {
		var b strings.Builder
		for _, in := range c.Inputs {
			b.WriteString("[" + in + "]")
		}
		b.WriteString(c.Body)
		for _, out := range c.Outputs {
			b.WriteString("[" + out + "]")
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, ";")
}

// ActiveAt evaluates the selector predicate the compiler emits: whether
// t falls inside any sharing interval, with half-open [start, end)
// semantics. Interval counts are small, so a linear scan is fine.
func ActiveAt(ivs []models.SharingInterval, t float64) bool {
	for _, iv := range ivs {
		if iv.Contains(t) {
			return true
		}
	}
	return false
}

// activeExpr compiles the interval set into the ffmpeg enable
// expression: a disjunction of between(t,a,b) tests, with gte(t,a) for
// an unbounded tail. ffmpeg's between() is inclusive on both ends, but
// frame timestamps are sampled strictly inside the interval so the
// half-open contract holds at frame granularity.
func activeExpr(ivs []models.SharingInterval) string {
	terms := make([]string, 0, len(ivs))
	for _, iv := range ivs {
		if iv.Unbounded {
			terms = append(terms, "gte(t,"+formatSeconds(iv.Start)+")")
		} else {
			terms = append(terms, "between(t,"+formatSeconds(iv.Start)+","+formatSeconds(iv.End)+")")
		}
	}
	return strings.Join(terms, "+")
}

// formatSeconds renders a timestamp without trailing zeros ("10",
// "12.5") so compiled programs stay stable and readable.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
