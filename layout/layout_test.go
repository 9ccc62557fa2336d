// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"
	"image"
	"testing"

	"alertui.org/layout"
	"alertui.org/unit"
)

func ExampleConstraints_Constrain() {
	cs := layout.Constraints{
		Min: image.Pt(10, 10),
		Max: image.Pt(100, 100),
	}

	fmt.Println(cs.Constrain(image.Pt(50, 5)))
	fmt.Println(cs.Constrain(image.Pt(200, 50)))

	// Output:
	// (50,10)
	// (100,50)
}

func ExampleAxis_Convert() {
	pt := image.Pt(30, 40)

	fmt.Println(layout.Horizontal.Convert(pt))
	fmt.Println(layout.Vertical.Convert(pt))

	// Output:
	// (30,40)
	// (40,30)
}

func TestExact(t *testing.T) {
	size := image.Pt(270, 180)
	cs := layout.Exact(size)
	if cs.Min != size || cs.Max != size {
		t.Errorf("Exact(%v) = %v, want min = max = size", size, cs)
	}
	if got := cs.Constrain(image.Pt(0, 0)); got != size {
		t.Errorf("Constrain(0,0) = %v, want %v", got, size)
	}
}

func TestAxisConstraints(t *testing.T) {
	cs := layout.Constraints{Min: image.Pt(1, 2), Max: image.Pt(3, 4)}
	for _, test := range []struct {
		axis               layout.Axis
		mainMin, mainMax   int
		crossMin, crossMax int
	}{
		{layout.Horizontal, 1, 3, 2, 4},
		{layout.Vertical, 2, 4, 1, 3},
	} {
		t.Run(test.axis.String(), func(t *testing.T) {
			mn, mx := test.axis.MainConstraint(cs)
			if mn != test.mainMin || mx != test.mainMax {
				t.Errorf("MainConstraint = %d, %d, want %d, %d", mn, mx, test.mainMin, test.mainMax)
			}
			mn, mx = test.axis.CrossConstraint(cs)
			if mn != test.crossMin || mx != test.crossMax {
				t.Errorf("CrossConstraint = %d, %d, want %d, %d", mn, mx, test.crossMin, test.crossMax)
			}
			if got := test.axis.Constraints(test.mainMin, test.mainMax, test.crossMin, test.crossMax); got != cs {
				t.Errorf("Constraints = %v, want %v", got, cs)
			}
		})
	}
}

func TestContext(t *testing.T) {
	m := unit.Metric{PxPerDp: 2, PxPerSp: 2}
	gtx := layout.NewContext(m, image.Pt(100, 100))
	if gtx.Constraints != layout.Exact(image.Pt(100, 100)) {
		t.Errorf("NewContext constraints = %v, want exact 100x100", gtx.Constraints)
	}
	if got := gtx.Dp(unit.Dp(18)); got != 36 {
		t.Errorf("Dp(18) = %d, want 36", got)
	}
	if got := gtx.Sp(unit.Sp(16)); got != 32 {
		t.Errorf("Sp(16) = %d, want 32", got)
	}
}

func TestUniformInset(t *testing.T) {
	in := layout.UniformInset(unit.Dp(18))
	if in.Top != 18 || in.Bottom != 18 || in.Left != 18 || in.Right != 18 {
		t.Errorf("UniformInset(18) = %+v, want all edges 18", in)
	}
}
