package aoc

import "testing"

func TestGridBasics(t *testing.T) {
	g := MakeGrid[int](3, 2)
	if got := g.Size(); got != (Pt{3, 2}) {
		t.Fatalf("Size = %v, want {3 2}", got)
	}
	g.Set(Pt{2, 1}, 7)
	if got := g.At(Pt{2, 1}); got != 7 {
		t.Errorf("At = %v, want 7", got)
	}
	if _, ok := g.AtOk(Pt{3, 0}); ok {
		t.Error("AtOk out of bounds reported ok")
	}
	if v, ok := g.AtOk(Pt{0, 0}); !ok || v != 0 {
		t.Errorf("AtOk = %v, %v", v, ok)
	}
}

func TestGridTranspose(t *testing.T) {
	g := Grid[int]{{1, 2, 3}, {4, 5, 6}}
	want := Grid[int]{{1, 4}, {2, 5}, {3, 6}}
	got := g.Transpose()
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Fatalf("Transpose = %v, want %v", got, want)
			}
		}
	}
}

func TestGridHash(t *testing.T) {
	a := Grid[int]{{1, 2}, {3, 4}}
	b := Grid[int]{{1, 2}, {3, 4}}
	if a.Hash() != b.Hash() {
		t.Error("equal grids hash differently")
	}
	b.Set(Pt{0, 0}, 9)
	if a.Hash() == b.Hash() {
		t.Error("different grids hash alike")
	}
	// A different element type goes through its own cached hasher.
	c := Grid[byte]{{1, 2}, {3, 4}}
	_ = c.Hash()
}

func TestFloodFill(t *testing.T) {
	g := Grid[byte]{
		[]byte("#..#"),
		[]byte("..##"),
		[]byte("##.."),
	}
	open := func(b byte) bool { return b == '.' }
	if got := FloodFill(g, Pt{1, 0}, false, open, '#'); got != 4 {
		t.Errorf("region size = %v, want 4", got)
	}
	if g.At(Pt{0, 1}) != '#' {
		t.Error("region cell not filled")
	}
	if got := FloodFill(g, Pt{1, 0}, false, open, '#'); got != 0 {
		t.Errorf("refill size = %v, want 0", got)
	}
	if got := FloodFill(g, Pt{2, 2}, false, open, '#'); got != 2 {
		t.Errorf("second region size = %v, want 2", got)
	}
}

func TestStandardizePt(t *testing.T) {
	size := Pt{10, 5}
	tests := []struct {
		in, want Pt
	}{
		{Pt{3, 2}, Pt{3, 2}},
		{Pt{10, 2}, Pt{0, 2}},
		{Pt{-1, 5}, Pt{9, 0}},
	}
	for _, tt := range tests {
		if got := StandardizePt(tt.in, size); got != tt.want {
			t.Errorf("StandardizePt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToward(t *testing.T) {
	p := Pt{0, 0}
	b := Pt{3, -3}
	var steps int
	for p != b {
		p = p.Toward(b)
		steps++
	}
	if steps != 3 {
		t.Errorf("steps = %v, want 3", steps)
	}
}

func TestMDist(t *testing.T) {
	if got := (Pt{1, 2}).MDist(Pt{4, -2}); got != 7 {
		t.Errorf("Pt2 MDist = %v, want 7", got)
	}
	a := Pt3Int{1105, -1205, 1229}
	b := Pt3Int{-92, -2380, -20}
	if got := a.MDist(b); got != 3621 {
		t.Errorf("Pt3 MDist = %v, want 3621", got)
	}
	if got := a.Sub(b).Add(b); got != a {
		t.Errorf("Sub/Add round trip = %v, want %v", got, a)
	}
}
