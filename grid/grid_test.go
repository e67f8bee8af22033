package grid_test

import (
	"testing"

	"github.com/clipperhouse/bopomofo/grid"
	"github.com/clipperhouse/bopomofo/reading"
)

type fakeModel map[reading.Reading][]reading.Unigram

func (m fakeModel) Unigrams(r reading.Reading) []reading.Unigram { return m[r] }
func (m fakeModel) HasUnigrams(r reading.Reading) bool           { _, ok := m[r]; return ok }

func newTestGrid() (*grid.ReadingGrid, fakeModel) {
	lm := fakeModel{
		"ㄓㄨㄥ":    {{Value: "中", Score: -2}, {Value: "終", Score: -3}},
		"ㄨㄣˊ":    {{Value: "文", Score: -2}},
		"ㄓㄨㄥ-ㄨㄣˊ": {{Value: "中文", Score: -1}},
		"ㄋㄧㄢˊ":   {{Value: "年", Score: -2}},
		"ㄋㄧㄢˊ-ㄓㄨㄥ": {{Value: "年中", Score: -1.5}},
		"年終":      nil,
	}
	return grid.New(lm), lm
}

func TestInsertReadingRejectsUnknown(t *testing.T) {
	g, _ := newTestGrid()
	if g.InsertReading("ㄅㄨˋㄗㄞˋ") {
		t.Fatal("InsertReading should reject a reading the model doesn't know")
	}
	if g.InsertReading("") {
		t.Fatal("InsertReading should reject an empty reading")
	}
}

func TestWalkPrefersMultiSpanOverTwoSingles(t *testing.T) {
	g, _ := newTestGrid()
	if !g.InsertReading("ㄓㄨㄥ") || !g.InsertReading("ㄨㄣˊ") {
		t.Fatal("InsertReading failed")
	}
	result := g.Walk()
	if len(result.Nodes) != 1 || result.Nodes[0].Value != "中文" {
		t.Fatalf("Walk() = %+v, want single node 中文", result.Nodes)
	}
}

func TestOverrideCandidateThenOverlapReset(t *testing.T) {
	g, lm := newTestGrid()
	lm["年終"] = []reading.Unigram{{Value: "年終", Score: -5}}
	// Give the grid a two-reading span whose joined key is recognized too.
	lm["ㄋㄧㄢˊ-ㄓㄨㄥ"] = append(lm["ㄋㄧㄢˊ-ㄓㄨㄥ"], reading.Unigram{Value: "年終", Score: -5})

	g.InsertReading("ㄋㄧㄢˊ")
	g.InsertReading("ㄓㄨㄥ")

	if !g.OverrideCandidate(0, "年中", grid.OverrideSpecified) {
		t.Fatal("OverrideCandidate(0, 年中) should succeed")
	}
	result := g.Walk()
	if len(result.Nodes) != 1 || result.Nodes[0].Value != "年中" {
		t.Fatalf("Walk() after override = %+v, want 年中", result.Nodes)
	}

	// Overriding the overlapping span at position 1 must reset position 0's
	// SPECIFIED pin, since its range now overlaps a fresh override.
	if !g.OverrideCandidate(1, "終", grid.OverrideSpecified) {
		t.Fatal("OverrideCandidate(1, 終) should succeed")
	}
	result = g.Walk()
	if len(result.Nodes) != 2 {
		t.Fatalf("Walk() after overlapping override = %+v, want two nodes", result.Nodes)
	}
}

func TestDeleteReadingRepairsSpans(t *testing.T) {
	g, _ := newTestGrid()
	g.InsertReading("ㄓㄨㄥ")
	g.InsertReading("ㄨㄣˊ")
	if g.Length() != 2 {
		t.Fatalf("Length() = %d, want 2", g.Length())
	}

	if !g.DeleteReadingBeforeCursor() {
		t.Fatal("DeleteReadingBeforeCursor should succeed with cursor at end")
	}
	if g.Length() != 1 {
		t.Fatalf("Length() after delete = %d, want 1", g.Length())
	}
	result := g.Walk()
	if len(result.Nodes) != 1 || result.Nodes[0].Value != "中" {
		t.Fatalf("Walk() after delete = %+v, want 中", result.Nodes)
	}
}

func TestDeleteReadingAfterCursor(t *testing.T) {
	g, _ := newTestGrid()
	g.InsertReading("ㄓㄨㄥ")
	g.InsertReading("ㄨㄣˊ")
	g.SetCursor(0)
	if !g.DeleteReadingAfterCursor() {
		t.Fatal("DeleteReadingAfterCursor should succeed")
	}
	if g.Length() != 1 {
		t.Fatalf("Length() = %d, want 1", g.Length())
	}
	if g.DeleteReadingAfterCursor() == false {
		// cursor still 0, one reading left, delete should succeed once more
		t.Fatal("DeleteReadingAfterCursor should still succeed")
	}
	if g.Length() != 0 {
		t.Fatalf("Length() = %d, want 0", g.Length())
	}
	if g.DeleteReadingAfterCursor() {
		t.Fatal("DeleteReadingAfterCursor on empty grid should fail")
	}
}

func TestCandidatesAtOrdersShortestSpanFirst(t *testing.T) {
	g, _ := newTestGrid()
	g.InsertReading("ㄓㄨㄥ")
	g.InsertReading("ㄨㄣˊ")

	candidates := g.CandidatesAt(0)
	if len(candidates) == 0 {
		t.Fatal("CandidatesAt(0) returned nothing")
	}
	if candidates[0].Value != "中" && candidates[0].Value != "終" {
		t.Fatalf("CandidatesAt(0)[0] = %+v, want a single-reading candidate first", candidates[0])
	}
}

// checkConsistency verifies that every node's key equals the joined
// readings it covers and that no node exceeds MaxSpan.
func checkConsistency(t *testing.T, g *grid.ReadingGrid) {
	t.Helper()
	readings := g.Readings()
	for pos := 0; pos < g.Length(); pos++ {
		for _, n := range g.SpanNodes(pos) {
			if n.SpanLength > grid.MaxSpan {
				t.Fatalf("node at %d has span %d > MaxSpan", pos, n.SpanLength)
			}
			want := reading.Join(readings[pos:pos+n.SpanLength], g.Separator())
			if n.Reading != want {
				t.Fatalf("node at %d covers %q, want %q", pos, n.Reading, want)
			}
		}
	}
}

func TestGridConsistencyThroughMutations(t *testing.T) {
	g, _ := newTestGrid()
	g.InsertReading("ㄓㄨㄥ")
	g.InsertReading("ㄨㄣˊ")
	checkConsistency(t, g)

	g.SetCursor(1)
	g.InsertReading("ㄋㄧㄢˊ")
	checkConsistency(t, g)

	g.DeleteReadingBeforeCursor()
	checkConsistency(t, g)
}

func TestInsertThenDeleteRoundTrip(t *testing.T) {
	g, _ := newTestGrid()
	rs := []reading.Reading{"ㄓㄨㄥ", "ㄨㄣˊ", "ㄋㄧㄢˊ", "ㄓㄨㄥ"}
	for _, r := range rs {
		if !g.InsertReading(r) {
			t.Fatalf("InsertReading(%q) failed", r)
		}
	}
	for g.Length() > 0 {
		if !g.DeleteReadingBeforeCursor() {
			t.Fatal("DeleteReadingBeforeCursor failed before the grid emptied")
		}
		checkConsistency(t, g)
	}
	if g.Cursor() != 0 {
		t.Fatalf("Cursor() after emptying = %d, want 0", g.Cursor())
	}
	if got := g.Walk(); len(got.Nodes) != 0 {
		t.Fatalf("Walk() of an empty grid = %+v, want no nodes", got.Nodes)
	}
}

func scenario2Model() fakeModel {
	lm := fakeModel{
		"ㄍㄠ":   {{Value: "高", Score: -8}},
		"ㄎㄜ":   {{Value: "科", Score: -8}},
		"ㄐㄧˋ":  {{Value: "技", Score: -8}},
		"ㄍㄨㄥ":  {{Value: "公", Score: -8}},
		"ㄙ":    {{Value: "司", Score: -8}},
		"ㄉㄜ˙":  {{Value: "的", Score: -1}},
		"ㄋㄧㄢˊ": {{Value: "年", Score: -8}},
		"ㄓㄨㄥ":  {{Value: "中", Score: -8}},
		"ㄐㄧㄤˇ": {{Value: "獎", Score: -8}},
		"ㄐㄧㄣ":  {{Value: "金", Score: -8}},

		"ㄍㄠ-ㄎㄜ-ㄐㄧˋ": {{Value: "高科技", Score: -9.84}},
		"ㄍㄨㄥ-ㄙ":     {{Value: "公司", Score: -6.30}},
		"ㄋㄧㄢˊ-ㄓㄨㄥ": {
			{Value: "年中", Score: -11.37},
			{Value: "年終", Score: -11.67},
		},
		"ㄐㄧㄤˇ-ㄐㄧㄣ": {{Value: "獎金", Score: -10.34}},
	}
	return lm
}

func walkValues(result grid.WalkResult) []string {
	out := make([]string, len(result.Nodes))
	for i, n := range result.Nodes {
		out[i] = n.Value
	}
	return out
}

func TestWalkBonusPhraseSegmentationAndOverride(t *testing.T) {
	g := grid.New(scenario2Model())
	for _, r := range []reading.Reading{
		"ㄍㄠ", "ㄎㄜ", "ㄐㄧˋ", "ㄍㄨㄥ", "ㄙ", "ㄉㄜ˙", "ㄋㄧㄢˊ", "ㄓㄨㄥ", "ㄐㄧㄤˇ", "ㄐㄧㄣ",
	} {
		if !g.InsertReading(r) {
			t.Fatalf("InsertReading(%q) failed", r)
		}
	}

	want := []string{"高科技", "公司", "的", "年中", "獎金"}
	got := walkValues(g.Walk())
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Walk()[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}

	if !g.OverrideCandidate(6, "年終", grid.OverrideSpecified) {
		t.Fatal("OverrideCandidate(6, 年終) should succeed")
	}
	got = walkValues(g.Walk())
	want = []string{"高科技", "公司", "的", "年終", "獎金"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Walk() after override = %v, want %v", got, want)
		}
	}
}

func TestWalkCoversLongRunOfSingleReading(t *testing.T) {
	lm := fakeModel{
		"ㄧ":   {{Value: "一", Score: -2.08}},
		"ㄧ-ㄧ": {{Value: "一一", Score: -4.38}},
	}
	g := grid.New(lm)
	const n = 9
	for i := 0; i < n; i++ {
		if !g.InsertReading("ㄧ") {
			t.Fatal("InsertReading(ㄧ) failed")
		}
	}
	result := g.Walk()
	covered := 0
	for _, node := range result.Nodes {
		covered += node.SpanLength
	}
	if covered != n {
		t.Fatalf("walk covers %d readings, want %d", covered, n)
	}
}

func TestSetCursorBounds(t *testing.T) {
	g, _ := newTestGrid()
	g.InsertReading("ㄓㄨㄥ")
	if g.SetCursor(-1) || g.SetCursor(2) {
		t.Fatal("SetCursor should reject out-of-range positions")
	}
	if !g.SetCursor(0) || !g.SetCursor(1) {
		t.Fatal("SetCursor should accept in-range positions")
	}
}
