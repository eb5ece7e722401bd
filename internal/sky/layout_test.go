package sky

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/nightsky/internal/pos"
	"github.com/papapumpkin/nightsky/internal/tagger"
)

func newTestEngine(opts ...Option) *Engine {
	return New(tagger.NewLexicon(), opts...)
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSplitParagraphs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "one line", []string{"one line"}},
		{"two", "first\n\nsecond", []string{"first", "second"}},
		{"blank paragraphs dropped", "\n\nfirst\n\n   \n\n\n\nsecond\n\n", []string{"first", "second"}},
		{"single newline kept inside", "a\nb\n\nc", []string{"a\nb", "c"}},
		{"crlf", "a\r\n\r\nb", []string{"a", "b"}},
		{"blank", "  \n\n \t ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, SplitParagraphs(tt.in)); diff != "" {
				t.Errorf("SplitParagraphs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAreaFor(t *testing.T) {
	t.Parallel()

	if got := AreaFor(0, 1); got != (Area{50, 50, 40}) {
		t.Errorf("AreaFor(0,1) = %+v", got)
	}
	if got := AreaFor(0, 2); got != (Area{35, 50, 25}) {
		t.Errorf("AreaFor(0,2) = %+v", got)
	}
	if got := AreaFor(1, 2); got != (Area{65, 50, 25}) {
		t.Errorf("AreaFor(1,2) = %+v", got)
	}
	triangle := []Area{{50, 30, 20}, {35, 65, 20}, {65, 65, 20}}
	for i, want := range triangle {
		if got := AreaFor(i, 3); got != want {
			t.Errorf("AreaFor(%d,3) = %+v, want %+v", i, got, want)
		}
	}
	if got := AreaFor(7, 3); got != triangle[0] {
		t.Errorf("AreaFor(7,3) = %+v, want first area", got)
	}

	first := AreaFor(0, 4)
	if !near(first.CenterX, 75) || !near(first.CenterY, 50) || first.Radius != 15 {
		t.Errorf("AreaFor(0,4) = %+v, want (75,50,15)", first)
	}
	second := AreaFor(1, 4)
	if !near(second.CenterX, 50) || !near(second.CenterY, 75) {
		t.Errorf("AreaFor(1,4) = %+v, want (50,75)", second)
	}

	for n := 1; n <= 12; n++ {
		for i := range n {
			a := AreaFor(i, n)
			reach := math.Hypot(a.CenterX-50, a.CenterY-50) + a.Radius
			if reach > 45+1e-9 {
				t.Errorf("AreaFor(%d,%d) reaches %.2f from center, want <= 45", i, n, reach)
			}
		}
	}
}

func TestRoman(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		0: "", -3: "", 1: "I", 2: "II", 3: "III", 4: "IV", 5: "V", 9: "IX",
		14: "XIV", 19: "XIX", 40: "XL", 90: "XC", 400: "CD", 1994: "MCMXCIV", 2026: "MMXXVI",
	}
	for n, want := range tests {
		if got := Roman(n); got != want {
			t.Errorf("Roman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestSizeFor(t *testing.T) {
	t.Parallel()

	tests := map[int]Size{
		0: SizeTiny, 3: SizeTiny, 4: SizeSmall, 5: SizeSmall,
		6: SizeMedium, 8: SizeMedium, 9: SizeLarge, 20: SizeLarge,
	}
	for n, want := range tests {
		if got := SizeFor(n); got != want {
			t.Errorf("SizeFor(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestGenerateSingleLongWord(t *testing.T) {
	t.Parallel()

	scene := newTestEngine().Generate("wonderful")
	if len(scene.Stars) != 1 {
		t.Fatalf("got %d stars, want 1", len(scene.Stars))
	}
	if len(scene.Connections) != 0 {
		t.Errorf("got %d connections, want 0", len(scene.Connections))
	}
	st := scene.Stars[0]
	if st.Size != SizeLarge {
		t.Errorf("size = %s, want large", st.Size)
	}
	if st.Roman != "I" || st.X != 50 || st.Y != 50 {
		t.Errorf("star = %+v, want roman I at (50,50)", st)
	}
	if st.Word != "wonderful" || st.Category != pos.Adjective {
		t.Errorf("word/category = %s/%s, want wonderful/Adjective", st.Word, st.Category)
	}
}

func TestGenerateWalkingSteps(t *testing.T) {
	t.Parallel()

	scene := newTestEngine().Generate("The lantern glowed")
	if len(scene.Stars) != 3 {
		t.Fatalf("got %d stars, want 3", len(scene.Stars))
	}

	x, y := 50.0, 50.0
	steps := []struct {
		cat    pos.Category
		length int
	}{
		{pos.Noun, 7},
		{pos.Verb, 6},
	}
	for i, step := range steps {
		theta := pos.Angle(step.cat) * math.Pi / 180
		x += float64(step.length) * DefaultEdgeMultiplier * math.Cos(theta)
		y += float64(step.length) * DefaultEdgeMultiplier * math.Sin(theta)
		st := scene.Stars[i+1]
		if st.Category != step.cat {
			t.Errorf("star %d category = %s, want %s", i+1, st.Category, step.cat)
		}
		if !near(st.X, x) || !near(st.Y, y) {
			t.Errorf("star %d at (%.4f,%.4f), want (%.4f,%.4f)", i+1, st.X, st.Y, x, y)
		}
	}
	if st := scene.Stars[0]; st.Category != pos.Article || st.Color != "#4A4A4A" || st.Size != SizeTiny {
		t.Errorf("first star = %+v", st)
	}
	want := []Connection{{0, 1, 0}, {1, 2, 0}}
	if diff := cmp.Diff(want, scene.Connections); diff != "" {
		t.Errorf("connections mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateClampsToMargin(t *testing.T) {
	t.Parallel()

	// Ten nouns in a row walk 280° repeatedly, far past the top edge.
	text := strings.Repeat("lighthouse ", 10)
	for _, margin := range []float64{5, 10} {
		scene := newTestEngine(WithMargin(margin)).Generate(text)
		for i, st := range scene.Stars {
			if st.X < margin || st.X > 100-margin || st.Y < margin || st.Y > 100-margin {
				t.Errorf("margin %v: star %d at (%.2f,%.2f) escapes the margin", margin, i, st.X, st.Y)
			}
		}
		if last := scene.Stars[len(scene.Stars)-1]; last.Y != margin {
			t.Errorf("margin %v: last star y = %.2f, want clamped to %v", margin, last.Y, margin)
		}
	}
}

func TestGenerateTwoParagraphs(t *testing.T) {
	t.Parallel()

	scene := newTestEngine().Generate("Once upon a time\n\nThe end")
	if diff := cmp.Diff([]string{"Once upon a time", "The end"}, scene.Paragraphs); diff != "" {
		t.Errorf("paragraphs mismatch (-want +got):\n%s", diff)
	}
	if len(scene.Stars) != 6 {
		t.Fatalf("got %d stars, want 6", len(scene.Stars))
	}
	second := scene.Stars[4]
	if second.Roman != "II" || second.Paragraph != 1 || second.X != 65 || second.Y != 50 {
		t.Errorf("second paragraph's first star = %+v, want II at (65,50)", second)
	}
	if first := scene.Stars[0]; first.X != 35 || first.Y != 50 {
		t.Errorf("first paragraph starts at (%v,%v), want (35,50)", first.X, first.Y)
	}
	last := scene.Connections[len(scene.Connections)-1]
	if last != (Connection{From: 4, To: 5, Paragraph: 1}) {
		t.Errorf("last connection = %+v, want 4->5 in paragraph 1", last)
	}
}

func TestGenerateRadial(t *testing.T) {
	t.Parallel()

	scene := newTestEngine(WithStrategy(StrategyRadial)).Generate("The lantern glowed")
	area := AreaFor(0, 1)
	words := []struct {
		cat    pos.Category
		length int
	}{{pos.Article, 3}, {pos.Noun, 7}, {pos.Verb, 6}}
	for k, w := range words {
		theta := (pos.Angle(w.cat) + 15*float64(k)) * math.Pi / 180
		dist := math.Min(0.3*area.Radius, 3*float64(w.length)+2*float64(k))
		x, y := area.CenterX+dist*math.Cos(theta), area.CenterY+dist*math.Sin(theta)
		if st := scene.Stars[k]; !near(st.X, x) || !near(st.Y, y) {
			t.Errorf("star %d at (%.4f,%.4f), want (%.4f,%.4f)", k, st.X, st.Y, x, y)
		}
	}
	if scene.Stars[0].Roman != "I" || len(scene.Connections) != 2 {
		t.Errorf("radial scene = %+v", scene)
	}
}

func TestGenerateShapeByClass(t *testing.T) {
	t.Parallel()

	scene := newTestEngine(WithShapeByClass(true)).Generate("The lantern glowed")
	got := []pos.Shape{scene.Stars[0].Shape, scene.Stars[1].Shape, scene.Stars[2].Shape}
	want := []pos.Shape{pos.ShapeCircle, pos.ShapeCircle, pos.ShapeStar}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shapes mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateBlank(t *testing.T) {
	t.Parallel()

	scene := newTestEngine().Generate(" \n\n ")
	if len(scene.Stars) != 0 || len(scene.Connections) != 0 || len(scene.Paragraphs) != 0 {
		t.Errorf("blank text produced %+v", scene)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	t.Parallel()

	text := "It is a truth universally acknowledged.\n\nHowever little known the feelings or views of such a man may be.\n\nMy dear Mr. Bennet!"
	e := newTestEngine()
	var a, b bytes.Buffer
	if err := Encode(&a, e.Generate(text), FormatJSON); err != nil {
		t.Fatal(err)
	}
	if err := Encode(&b, newTestEngine().Generate(text), FormatJSON); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two generations of the same text differ")
	}
}

type recordingObserver struct {
	indices []int
	stars   int
}

func (r *recordingObserver) ParagraphLaidOut(index int, _ Area, stars []Star, _ []Connection) {
	r.indices = append(r.indices, index)
	r.stars += len(stars)
}

func TestGenerateNotifiesObserver(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	scene := newTestEngine(WithObserver(obs)).Generate("a b\n\nc\n\nd e f")
	if diff := cmp.Diff([]int{0, 1, 2}, obs.indices); diff != "" {
		t.Errorf("observer indices mismatch (-want +got):\n%s", diff)
	}
	if obs.stars != len(scene.Stars) {
		t.Errorf("observer saw %d stars, scene has %d", obs.stars, len(scene.Stars))
	}
}

func TestCleanWord(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Sara's":      "saras",
		"odd-looking": "oddlooking",
		"1905":        "",
		"Crewe":       "crewe",
	}
	for in, want := range tests {
		if got := cleanWord(in); got != want {
			t.Errorf("cleanWord(%q) = %q, want %q", in, got, want)
		}
	}
}
