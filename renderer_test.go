package docsite

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderTitleAndTOC(t *testing.T) {
	t.Parallel()

	r := newPageRenderer()
	doc, err := r.Render("# Main\n\n## One\n\n### Sub\n\n## Two\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if doc.Title != "Main" {
		t.Errorf("Title = %q, want %q", doc.Title, "Main")
	}

	want := []TocLink{
		{Text: "Main", ID: "main", Level: 1},
		{Text: "One", ID: "one", Level: 2},
		{Text: "Sub", ID: "sub", Level: 3},
		{Text: "Two", ID: "two", Level: 2},
	}
	if len(doc.TOC) != len(want) {
		t.Fatalf("TOC has %d entries, want %d: %+v", len(doc.TOC), len(want), doc.TOC)
	}
	for i, w := range want {
		if doc.TOC[i] != w {
			t.Errorf("TOC[%d] = %+v, want %+v", i, doc.TOC[i], w)
		}
	}
}

func TestRenderMissingTitle(t *testing.T) {
	t.Parallel()

	r := newPageRenderer()
	if _, err := r.Render("Just a paragraph, no heading.\n"); !errors.Is(err, ErrMissingTitle) {
		t.Errorf("Render() error = %v, want ErrMissingTitle", err)
	}
}

func TestRenderDuplicateHeadingIDs(t *testing.T) {
	t.Parallel()

	r := newPageRenderer()
	doc, err := r.Render("# Title\n\n## Usage\n\n## Usage\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(doc.HTML, `id="usage"`) {
		t.Errorf("HTML missing id=\"usage\":\n%s", doc.HTML)
	}
	if !strings.Contains(doc.HTML, `id="usage-1"`) {
		t.Errorf("HTML missing id=\"usage-1\":\n%s", doc.HTML)
	}

	// TOC ids must match the rendered anchors exactly.
	if doc.TOC[1].ID != "usage" || doc.TOC[2].ID != "usage-1" {
		t.Errorf("TOC ids = %q, %q, want usage, usage-1", doc.TOC[1].ID, doc.TOC[2].ID)
	}
}

func TestRenderWrapsTables(t *testing.T) {
	t.Parallel()

	r := newPageRenderer()
	doc, err := r.Render("# T\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(doc.HTML, "<div class=\"overflow-auto w-100\">\n<table>") {
		t.Errorf("table not wrapped:\n%s", doc.HTML)
	}
	if !strings.Contains(doc.HTML, "</table>\n</div>") {
		t.Errorf("wrapper not closed after table:\n%s", doc.HTML)
	}
	if n := strings.Count(doc.HTML, `overflow-auto w-100`); n != 1 {
		t.Errorf("wrapper count = %d, want 1:\n%s", n, doc.HTML)
	}
}

func TestRenderNoTableNoWrapper(t *testing.T) {
	t.Parallel()

	r := newPageRenderer()
	doc, err := r.Render("# T\n\nplain paragraph\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(doc.HTML, "overflow-auto") {
		t.Errorf("unexpected table wrapper:\n%s", doc.HTML)
	}
}

func TestRenderTabs(t *testing.T) {
	t.Parallel()

	src := "# T\n\n" +
		"{% tabs %}\n" +
		"{% tab title=\"Go\" %}\n" +
		"go install\n" +
		"{% endtab %}\n" +
		"{% tab title=\"Rust\" %}\n" +
		"cargo add\n" +
		"{% endtab %}\n" +
		"{% endtabs %}\n"

	r := newPageRenderer()
	doc, err := r.Render(src)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(doc.HTML, `<div class="tabs">`) {
		t.Errorf("missing tab group:\n%s", doc.HTML)
	}
	first := strings.Index(doc.HTML, `data-title="Go"`)
	second := strings.Index(doc.HTML, `data-title="Rust"`)
	if first < 0 || second < 0 || second < first {
		t.Errorf("tab titles missing or out of order (Go@%d, Rust@%d):\n%s", first, second, doc.HTML)
	}
	if !strings.Contains(doc.HTML, "go install") || !strings.Contains(doc.HTML, "cargo add") {
		t.Errorf("tab bodies missing:\n%s", doc.HTML)
	}
	if strings.Contains(doc.HTML, "{%") {
		t.Errorf("directive markers leaked into output:\n%s", doc.HTML)
	}
}

func TestRenderHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		src       string
		wantClass string
		wantTitle string
	}{
		{
			name:      "warning style",
			src:       "# T\n\n{% hint style=\"warning\" %}\nCareful.\n{% endhint %}\n",
			wantClass: `<div class="admonition admonition-warning">`,
			wantTitle: `<div class="admonition-title">Warning</div>`,
		},
		{
			name:      "missing style defaults to info",
			src:       "# T\n\n{% hint %}\nNote this.\n{% endhint %}\n",
			wantClass: `<div class="admonition admonition-info">`,
			wantTitle: `<div class="admonition-title">Info</div>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newPageRenderer()
			doc, err := r.Render(tt.src)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(doc.HTML, tt.wantClass) {
				t.Errorf("missing %q:\n%s", tt.wantClass, doc.HTML)
			}
			if !strings.Contains(doc.HTML, tt.wantTitle) {
				t.Errorf("missing %q:\n%s", tt.wantTitle, doc.HTML)
			}
		})
	}
}

func TestRenderUnknownDirectiveIsLiteral(t *testing.T) {
	t.Parallel()

	r := newPageRenderer()
	doc, err := r.Render("# T\n\n{% embed url=\"x\" %}\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(doc.HTML, "{% embed") {
		t.Errorf("unknown directive not passed through literally:\n%s", doc.HTML)
	}
	if strings.Contains(doc.HTML, "admonition") || strings.Contains(doc.HTML, `class="tabs"`) {
		t.Errorf("unknown directive was expanded:\n%s", doc.HTML)
	}
}

func TestRenderUnterminatedDirectiveIsLiteral(t *testing.T) {
	t.Parallel()

	r := newPageRenderer()
	doc, err := r.Render("# T\n\n{% hint style=\"info\" %}\nno closing marker\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(doc.HTML, "{% hint") {
		t.Errorf("unterminated directive not passed through literally:\n%s", doc.HTML)
	}
	if strings.Contains(doc.HTML, "admonition") {
		t.Errorf("unterminated directive was expanded:\n%s", doc.HTML)
	}
}

func TestRenderDirectiveInCodeFenceUntouched(t *testing.T) {
	t.Parallel()

	r := newPageRenderer()
	doc, err := r.Render("# T\n\n```\n{% tabs %}\n```\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(doc.HTML, "{% tabs %}") {
		t.Errorf("directive inside fence was consumed:\n%s", doc.HTML)
	}
	if strings.Contains(doc.HTML, `class="tabs"`) {
		t.Errorf("directive inside fence was expanded:\n%s", doc.HTML)
	}
}

func TestRenderHighlightsKnownLanguage(t *testing.T) {
	t.Parallel()

	r := newPageRenderer()
	doc, err := r.Render("# T\n\n```postgresql\nSELECT 1;\n```\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(doc.HTML, `<code class="language-postgresql">`) {
		t.Errorf("missing language class:\n%s", doc.HTML)
	}
	if !strings.Contains(doc.HTML, `<span class="syntax-highlight">SELECT</span>`) {
		t.Errorf("keyword not wrapped:\n%s", doc.HTML)
	}
}

func TestRenderUnknownLanguagePlain(t *testing.T) {
	t.Parallel()

	r := newPageRenderer()
	doc, err := r.Render("# T\n\n```nosuchlang\nfoo bar\n```\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(doc.HTML, "syntax-highlight") {
		t.Errorf("unknown language should not be highlighted:\n%s", doc.HTML)
	}
	if !strings.Contains(doc.HTML, "foo bar") {
		t.Errorf("code body missing:\n%s", doc.HTML)
	}
}

func TestRenderEscapesCodeContent(t *testing.T) {
	t.Parallel()

	r := newPageRenderer()
	doc, err := r.Render("# T\n\n```\na < b && c > d\n```\n")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(doc.HTML, "a &lt; b &amp;&amp; c &gt; d") {
		t.Errorf("code not escaped:\n%s", doc.HTML)
	}
}
