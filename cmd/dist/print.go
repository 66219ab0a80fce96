package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aclements/go-distrange/stats"
)

// barWidth is the length of a bar for probability 1.
const barWidth = 40

// FprintCurve writes the points of c as a table, marking the points
// that fall in r.
func FprintCurve(w io.Writer, c stats.Curve, r stats.Range) {
	fn := "PDF"
	if c.Discrete() {
		fn = "PMF"
	}
	fmt.Fprintf(w, "%s %s  (peak %.6g)\n", c.Kind.Title(), fn, c.Peak())
	fmt.Fprintf(w, "%12s %12s\n", "x", "p(x)")
	for _, p := range c.Points {
		mark := ""
		if r.Contains(p.X) {
			mark = " *"
		}
		if c.Discrete() {
			fmt.Fprintf(w, "%12d %12.6g%s\n", int(p.X), p.Y, mark)
		} else {
			fmt.Fprintf(w, "%12.2f %12.6g%s\n", p.X, p.Y, mark)
		}
	}
	fmt.Fprintf(w, "(* in range %v)\n", r)
}

// FprintSplit writes s, rounded for display, as a pair of bars and
// the matching pie-chart percentages.
func FprintSplit(w io.Writer, title string, s stats.Split) {
	s = s.Rounded()
	fmt.Fprintf(w, "%s (p=%.2f)\n", title, s.InRange)
	fmt.Fprintf(w, "  %-10s %5.2f  %s\n", "In Range", s.InRange, bar(s.InRange))
	fmt.Fprintf(w, "  %-10s %5.2f  %s\n", "Out Range", s.OutOfRange, bar(s.OutOfRange))

	in, out := share(s)
	fmt.Fprintf(w, "  In Probability %.2f%%, Out Probability %.2f%%\n", in, out)
}

func bar(p float64) string {
	n := int(math.Round(math.Max(0, math.Min(1, p)) * barWidth))
	return strings.Repeat("#", n)
}

// share returns the percentage of s.Total in and out of range, the
// way a pie chart divides it.
func share(s stats.Split) (in, out float64) {
	total := s.Total()
	if total <= 0 {
		return 0, 0
	}
	return 100 * s.InRange / total, 100 * s.OutOfRange / total
}

// FprintModel writes a one-line description of m.
func FprintModel(w io.Writer, m stats.Model) {
	params := stats.Params(m)
	var b strings.Builder
	for i, name := range m.Kind().Params() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%g", name, params[name])
	}
	fmt.Fprintf(w, "%s(%s)  mean %.6g  variance %.6g\n", m.Kind().Title(), b.String(), m.Mean(), m.Variance())
}
