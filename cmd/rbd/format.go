package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rbd/matrix"
)

// printer writes labelled numbers with a fixed precision.
type printer struct {
	w    io.Writer
	prec int
}

func (a *app) printer(w io.Writer) printer {
	return printer{w: w, prec: a.cfg.Precision}
}

func (p printer) num(x float64) string {
	if x == 0 || math.Abs(x) < 0.5*math.Pow(10, -float64(p.prec)) {
		x = 0 // no "-0.0000"
	}
	return strconv.FormatFloat(x, 'f', p.prec, 64)
}

func (p printer) vec(v matrix.Vec3) string {
	return "[" + p.num(v[0]) + " " + p.num(v[1]) + " " + p.num(v[2]) + "]"
}

// Section prints a header line.
func (p printer) Section(title string) {
	fmt.Fprintf(p.w, "### %s\n", title)
}

// Scalar prints "label: x".
func (p printer) Scalar(label string, x float64) {
	fmt.Fprintf(p.w, "%s: %s\n", label, p.num(x))
}

// Vec prints "label: [x y z]".
func (p printer) Vec(label string, v matrix.Vec3) {
	fmt.Fprintf(p.w, "%s: %s\n", label, p.vec(v))
}

// Mat prints the label followed by one indented row per line.
func (p printer) Mat(label string, m matrix.Mat3) {
	fmt.Fprintf(p.w, "%s:\n", label)
	for i := 0; i < matrix.Dim; i++ {
		fmt.Fprintf(p.w, "  %s\n", p.vec(m.Row(i)))
	}
}

// Text prints a free-form line.
func (p printer) Text(format string, args ...interface{}) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// parseMat3 reads nine numbers, row-major.
func parseMat3(vals []float64) (matrix.Mat3, error) {
	if len(vals) != matrix.Dim*matrix.Dim {
		return matrix.Mat3{}, fmt.Errorf("expected 9 numbers (row-major 3×3), got %d", len(vals))
	}
	m, err := matrix.FromDense(mat.NewDense(matrix.Dim, matrix.Dim, vals))
	if err != nil {
		return matrix.Mat3{}, err
	}

	return m, matrix.ValidateFinite(m)
}

// degrees converts radians for display.
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// joinNums formats a list for log fields.
func joinNums(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strings.Join(parts, ",")
}
