// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"reflect"
	"testing"
)

func TestBuildLegend(t *testing.T) {
	points := []Point{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 1, Y: 1},
		{Name: "C", X: 2, Y: 2},
		{Name: "D", X: 3, Y: 3, Group: "Grp"},
		{Name: "E", X: 4, Y: 4, Group: "Grp"},
	}
	want := []LegendDecision{
		{true, "A, B, C"},
		{false, "B"},
		{false, "C"},
		{true, "Grp: D, E"},
		{false, "E"},
	}
	got := BuildLegend(points)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildLegend = %v, want %v", got, want)
	}

	// Re-running over the same points changes nothing.
	again := BuildLegend(points)
	if !reflect.DeepEqual(again, got) {
		t.Errorf("second BuildLegend = %v, want %v", again, got)
	}
}

func TestBuildLegendSortedNames(t *testing.T) {
	// Entry names are sorted regardless of point order, and
	// duplicate names collapse.
	points := []Point{
		{Name: "zeta", X: 0, Y: 0},
		{Name: "alpha", X: 1, Y: 1},
		{Name: "mid", X: 2, Y: 2},
		{Name: "alpha", X: 3, Y: 3},
	}
	got := BuildLegend(points)
	if got[0].Label != "alpha, mid, zeta" {
		t.Errorf("label = %q, want %q", got[0].Label, "alpha, mid, zeta")
	}
	for i := 1; i < len(got); i++ {
		if got[i].ShowInLegend {
			t.Errorf("point %d shown in legend, want only point 0", i)
		}
	}
}

func TestBuildLegendCrop(t *testing.T) {
	names := []string{
		"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta",
		"Eta", "Theta", "Iota", "Kappa", "Lambda", "Omicron",
	}
	var points []Point
	for i, name := range names {
		points = append(points, Point{Name: name, X: float64(i), Y: 0})
	}
	got := BuildLegend(points)
	// The sorted, joined list is 82 characters, cropped to 60.
	want := "Alpha, Beta, Delta, Epsilon, Eta, Gamma, Iota, Kappa, Lambda..."
	if got[0].Label != want {
		t.Errorf("label = %q, want %q", got[0].Label, want)
	}
}

func TestBuildLegendStyleKeys(t *testing.T) {
	size := 4.0
	zero := 0.0
	points := []Point{
		{Name: "plain", X: 0, Y: 0},
		{Name: "red", X: 1, Y: 1, Color: "red"},
		{Name: "big", X: 2, Y: 2, MarkerSize: &size},
		{Name: "zeroed", X: 3, Y: 3, MarkerSize: &zero},
		{Name: "plain2", X: 4, Y: 4},
	}
	got := BuildLegend(points)
	want := []LegendDecision{
		{true, "plain, plain2"},
		{true, "red"},
		{true, "big"},
		// An explicit zero size is a different style than no
		// size at all.
		{true, "zeroed"},
		{false, "plain2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildLegend = %v, want %v", got, want)
	}
}

func TestBuildLegendHidden(t *testing.T) {
	// A hidden point never carries the entry, but its name still
	// counts toward the entry of its style.
	points := []Point{
		{Name: "H", X: 0, Y: 0, HideInLegend: true},
		{Name: "V", X: 1, Y: 1},
	}
	want := []LegendDecision{
		{false, "H"},
		{true, "H, V"},
	}
	got := BuildLegend(points)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildLegend = %v, want %v", got, want)
	}

	// All points hidden: no legend entries at all.
	points = []Point{
		{Name: "H1", X: 0, Y: 0, HideInLegend: true},
		{Name: "H2", X: 1, Y: 1, HideInLegend: true},
	}
	for i, d := range BuildLegend(points) {
		if d.ShowInLegend {
			t.Errorf("hidden point %d shown in legend", i)
		}
		if d.Label != points[i].Name {
			t.Errorf("hidden point %d label = %q, want own name", i, d.Label)
		}
	}
}

func TestBuildLegendDisabled(t *testing.T) {
	points := []Point{
		{Name: "A", X: 0, Y: 0},
		{Name: "B", X: 1, Y: 1},
	}
	want := []LegendDecision{
		{false, "A"},
		{false, "B"},
	}
	got := buildLegend(points, false)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("buildLegend(points, false) = %v, want %v", got, want)
	}
}

func TestBuildLegendGroupBeforeCrop(t *testing.T) {
	// The group prefix participates in cropping.
	long := make([]rune, 70)
	for i := range long {
		long[i] = 'x'
	}
	points := []Point{{Name: string(long), X: 0, Y: 0, Group: "G"}}
	got := BuildLegend(points)
	if len([]rune(got[0].Label)) != maxLegendWidth+3 {
		t.Errorf("label length = %d, want %d", len([]rune(got[0].Label)), maxLegendWidth+3)
	}
	if got[0].Label[:3] != "G: " {
		t.Errorf("label = %q, want group prefix first", got[0].Label)
	}
}
