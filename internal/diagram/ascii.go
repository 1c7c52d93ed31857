package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}

	border := strings.Repeat("═", maxLen+4)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes; %-*s counts bytes
func pad(s string, n int) string {
	if k := utf8.RuneCountInString(s); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}

// DeflectionGraph renders values as an ASCII line graph
func DeflectionGraph(values []float64, caption string) string {
	if len(values) == 0 {
		return ""
	}
	if len(values) == 1 {
		values = []float64{values[0], values[0]}
	}
	return asciigraph.Plot(values,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(4),
		asciigraph.Caption(caption),
	)
}

// MemberDeflection samples the transverse displacement of member m in its
// local axes at n equally spaced points, ends included. Frame members follow
// the cubic shape implied by their end rotations; truss members stay straight.
func MemberDeflection(data ShapeData, m, n int) []float64 {
	if m < 0 || m >= len(data.Members) || n < 2 {
		return nil
	}
	line := data.Members[m]
	g := data.local(line)

	out := make([]float64, n)
	for k := range out {
		xi := float64(k) / float64(n-1)
		_, v := g.at(xi, line.Truss)
		out[k] = v
	}
	return out
}
