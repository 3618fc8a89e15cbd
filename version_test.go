package flp

import "testing"

func TestFLVersionCompare(t *testing.T) {
	cases := []struct {
		a, b FLVersion
		want int
	}{
		{FLVersion{1, 0, 0, 0}, FLVersion{1, 0, 0, 0}, 0},
		{FLVersion{1, 0, 0, 0}, FLVersion{1, 0, 1, 0}, -1},
		{FLVersion{2, 0, 0, 0}, FLVersion{1, 9, 9, 9}, 1},
		{FLVersion{1, 6, 5, 1}, FLVersion{1, 6, 5, 0}, 1},
	}
	for _, c := range cases {
		if got := c.a.Compare(c.b); got != c.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestMaxInsertsTable(t *testing.T) {
	cases := []struct {
		v    FLVersion
		want int
	}{
		{FLVersion{1, 0, 0, 0}, 5},
		{FLVersion{1, 6, 5, 0}, 5},
		{FLVersion{2, 0, 0, 0}, 8},
		{FLVersion{3, 0, 0, 0}, 18},
		{FLVersion{4, 0, 0, 0}, 64},
		{FLVersion{9, 0, 0, 0}, 105},
		{FLVersion{12, 9, 0, 0}, 127},
		{FLVersion{20, 0, 0, 0}, 127},
	}
	for _, c := range cases {
		if got := maxInserts(c.v); got != c.want {
			t.Errorf("maxInserts(%v) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestMaxSlotsTable(t *testing.T) {
	cases := []struct {
		v    FLVersion
		want int
	}{
		{FLVersion{1, 0, 0, 0}, 4},
		{FLVersion{2, 0, 0, 0}, 8},
		{FLVersion{20, 0, 0, 0}, 10},
	}
	for _, c := range cases {
		if got := maxSlots(c.v); got != c.want {
			t.Errorf("maxSlots(%v) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestConfigWideEncoding(t *testing.T) {
	old := Config{Version: FLVersion{9, 0, 0, 0}}
	if old.wide() {
		t.Error("expected ANSI (narrow) encoding below the unicode threshold")
	}
	newer := Config{Version: FLVersion{12, 0, 0, 0}}
	if !newer.wide() {
		t.Error("expected UTF-16LE (wide) encoding at or above the unicode threshold")
	}

	forced := false
	overridden := Config{Version: FLVersion{12, 0, 0, 0}, StringEncodingWide: &forced}
	if overridden.wide() {
		t.Error("expected StringEncodingWide override to take precedence")
	}
}
