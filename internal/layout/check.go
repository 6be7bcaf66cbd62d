// pattern: Functional Core

package layout

import "fmt"

// ProblemKind classifies a geometry defect found by Check.
type ProblemKind string

const (
	ProblemGap         ProblemKind = "gap"
	ProblemOverlap     ProblemKind = "overlap"
	ProblemOutOfBounds ProblemKind = "out-of-bounds"
)

// Problem describes one defect between neighbouring windows on a grid line,
// or a window extending past the terminal edge.
type Problem struct {
	Kind   ProblemKind
	Axis   string // "column" or "row"
	Line   int
	First  string
	Second string // empty for out-of-bounds
	Amount int
}

func (p Problem) String() string {
	if p.Kind == ProblemOutOfBounds {
		return fmt.Sprintf("%s: %s exceeds terminal by %d on %s axis", p.Kind, p.First, p.Amount, p.Axis)
	}
	return fmt.Sprintf("%s of %d between %s and %s at %s %d", p.Kind, p.Amount, p.First, p.Second, p.Axis, p.Line)
}

// Check scans every column and row of a rows x cols terminal and reports
// gaps and overlaps between vertically or horizontally adjacent windows.
// Each pair of windows is reported at most once per axis.
func Check(windows []*Window, rows, cols int) []Problem {
	var problems []Problem
	b := Snapshot(windows)

	for _, w := range windows {
		r := b[w]
		if over := r.Bottom() - rows; over > 0 {
			problems = append(problems, Problem{Kind: ProblemOutOfBounds, Axis: "row", First: w.ID, Amount: over})
		}
		if over := r.Right() - cols; over > 0 {
			problems = append(problems, Problem{Kind: ProblemOutOfBounds, Axis: "column", First: w.ID, Amount: over})
		}
	}

	problems = append(problems, checkAxis(heightAxis, "column", b, windows, cols)...)
	problems = append(problems, checkAxis(widthAxis, "row", b, windows, rows)...)
	return problems
}

func checkAxis(ax axis, name string, b Baseline, windows []*Window, lines int) []Problem {
	var problems []Problem
	seen := make(map[[2]*Window]bool)

	for line := 0; line < lines; line++ {
		stack := ax.lineAt(b, windows, line)
		for i := 1; i < len(stack); i++ {
			prev, next := stack[i-1], stack[i]
			pair := [2]*Window{prev, next}
			if seen[pair] {
				continue
			}
			end := ax.pos(b[prev]) + ax.size(b[prev])
			start := ax.pos(b[next])
			if start == end {
				continue
			}
			seen[pair] = true
			p := Problem{Kind: ProblemGap, Axis: name, Line: line, First: prev.ID, Second: next.ID, Amount: start - end}
			if start < end {
				p.Kind = ProblemOverlap
				p.Amount = end - start
			}
			problems = append(problems, p)
		}
	}
	return problems
}
