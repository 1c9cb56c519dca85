package pdftext

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// rowTolerance is how far apart, in points, two baselines may be and still
// belong to the same row.
const rowTolerance = 2.0

// tjSpaceThreshold is the TJ adjustment, in thousandths of an em, from which
// a gap is read as a word break.
const tjSpaceThreshold = 200

// matrix is a PDF affine transform [a b c d e f].
type matrix [6]float64

var identity = matrix{1, 0, 0, 1, 0, 0}

func translate(tx, ty float64) matrix {
	return matrix{1, 0, 0, 1, tx, ty}
}

// mul returns m followed by n.
func (m matrix) mul(n matrix) matrix {
	return matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

// textRun is one shown string and the device-space origin it was drawn at.
type textRun struct {
	x, y float64
	text string
}

// textState follows the operators that move the text origin.
type textState struct {
	ctm     matrix
	tm      matrix
	tlm     matrix
	leading float64
	enc     pdf.TextEncoding
}

// pageRows walks the page's content stream, records where each string is
// drawn and groups the strings into rows.
func pageRows(page pdf.Page) []string {
	contents := page.V.Key("Contents")
	if contents.Kind() == pdf.Null {
		return nil
	}

	var (
		runs  []textRun
		stack []matrix
		moved = true
	)
	st := textState{ctm: identity, tm: identity, tlm: identity}

	decode := func(raw string) string {
		if st.enc == nil {
			return raw
		}
		return st.enc.Decode(raw)
	}
	// show records text at the current origin. Text shown without moving
	// the origin continues the previous run.
	show := func(text string) {
		if !moved && len(runs) > 0 {
			runs[len(runs)-1].text += text
			return
		}
		origin := st.tm.mul(st.ctm)
		runs = append(runs, textRun{x: origin[4], y: origin[5], text: text})
		moved = false
	}
	nextLine := func() {
		st.tlm = translate(0, -st.leading).mul(st.tlm)
		st.tm = st.tlm
		moved = true
	}

	pdf.Interpret(contents, func(stk *pdf.Stack, op string) {
		n := stk.Len()
		args := make([]pdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}

		switch op {
		case "q":
			stack = append(stack, st.ctm)
		case "Q":
			if len(stack) > 0 {
				st.ctm = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
		case "cm":
			if len(args) == 6 {
				st.ctm = toMatrix(args).mul(st.ctm)
			}
		case "BT":
			st.tm, st.tlm = identity, identity
			moved = true
		case "Tm":
			if len(args) == 6 {
				st.tm = toMatrix(args)
				st.tlm = st.tm
				moved = true
			}
		case "TD":
			if len(args) == 2 {
				st.leading = -args[1].Float64()
			}
			fallthrough
		case "Td":
			if len(args) == 2 {
				st.tlm = translate(args[0].Float64(), args[1].Float64()).mul(st.tlm)
				st.tm = st.tlm
				moved = true
			}
		case "TL":
			if len(args) == 1 {
				st.leading = args[0].Float64()
			}
		case "T*":
			nextLine()
		case "Tf":
			if len(args) == 2 {
				st.enc = page.Font(args[0].Name()).Encoder()
			}
		case "'":
			nextLine()
			if len(args) == 1 {
				show(decode(args[0].RawString()))
			}
		case "\"":
			nextLine()
			if len(args) == 3 {
				show(decode(args[2].RawString()))
			}
		case "Tj":
			if len(args) == 1 {
				show(decode(args[0].RawString()))
			}
		case "TJ":
			if len(args) == 1 {
				show(joinTJ(args[0], decode))
			}
		}
	})

	return groupRows(runs)
}

// joinTJ concatenates the decoded strings of a TJ array, turning wide
// negative adjustments into spaces.
func joinTJ(v pdf.Value, decode func(string) string) string {
	var b strings.Builder
	for i := 0; i < v.Len(); i++ {
		part := v.Index(i)
		if part.Kind() == pdf.String {
			b.WriteString(decode(part.RawString()))
			continue
		}
		if -part.Float64() >= tjSpaceThreshold {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func toMatrix(args []pdf.Value) matrix {
	var m matrix
	for i := range m {
		m[i] = args[i].Float64()
	}
	return m
}

// groupRows clusters runs by baseline, orders rows top to bottom and runs
// left to right, and joins each row's runs with a space.
func groupRows(runs []textRun) []string {
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].y > runs[j].y
	})

	var (
		lines []string
		row   []textRun
		rowY  float64
	)
	flush := func() {
		if len(row) == 0 {
			return
		}
		sort.SliceStable(row, func(i, j int) bool { return row[i].x < row[j].x })
		cells := make([]string, 0, len(row))
		for _, r := range row {
			if cell := strings.TrimSpace(r.text); cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, " "))
		}
		row = row[:0]
	}

	for _, r := range runs {
		if len(row) > 0 && math.Abs(r.y-rowY) > rowTolerance {
			flush()
		}
		if len(row) == 0 {
			rowY = r.y
		}
		row = append(row, r)
	}
	flush()

	return lines
}
