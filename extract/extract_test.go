package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zvishalem/sofer/markup"
	"github.com/zvishalem/sofer/model"
)

func parseString(t *testing.T, src string) *Page {
	t.Helper()
	p, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return p
}

func TestParseBasicPage(t *testing.T) {
	p := parseString(t, `<!DOCTYPE html>
<html dir="rtl" lang="he">
<head><title>מאמר לדוגמה</title></head>
<body>
<h1>כותרת ראשית</h1>
<p>פסקה ראשונה עם <strong>הדגשה</strong> וגם <em>הטיה</em>.</p>
<blockquote>ציטוט חשוב</blockquote>
<h2>תת כותרת</h2>
<p>פסקה שנייה.</p>
</body>
</html>`)

	if p.Title != "מאמר לדוגמה" {
		t.Errorf("title = %q", p.Title)
	}
	if p.BlockCount() != 5 {
		t.Fatalf("blocks = %d, want 5", p.BlockCount())
	}

	got := p.Markup()
	want := "# כותרת ראשית\n\n" +
		"פסקה ראשונה עם **הדגשה** וגם *הטיה*.\n\n" +
		"> ציטוט חשוב\n\n" +
		"## תת כותרת\n\n" +
		"פסקה שנייה.\n"
	if got != want {
		t.Errorf("markup:\n%q\nwant:\n%q", got, want)
	}
}

func TestHeadingLevelClamp(t *testing.T) {
	p := parseString(t, "<body><h4>עמוק</h4><h6>עמוק יותר</h6></body>")
	got := p.Markup()
	if !strings.Contains(got, "### עמוק\n") || !strings.Contains(got, "### עמוק יותר") {
		t.Errorf("h4/h6 must clamp to level 3, got %q", got)
	}
}

func TestLists(t *testing.T) {
	p := parseString(t, `<body>
<ol><li>ראשון</li><li>שני</li></ol>
<ul><li>נקודה</li><li>עוד נקודה<ul><li>מקוננת</li></ul></li></ul>
</body>`)

	got := p.Markup()
	for _, want := range []string{"1. ראשון", "2. שני", "- נקודה", "- עוד נקודה", "- מקוננת"} {
		if !strings.Contains(got, want) {
			t.Errorf("markup missing %q:\n%s", want, got)
		}
	}
}

func TestOrderedCounterResets(t *testing.T) {
	p := parseString(t, `<body>
<ol><li>א</li><li>ב</li></ol>
<p>הפסקה</p>
<ol><li>ג</li></ol>
</body>`)

	got := p.Markup()
	if !strings.Contains(got, "1. ג") {
		t.Errorf("second list must restart numbering:\n%s", got)
	}
}

func TestTable(t *testing.T) {
	p := parseString(t, `<body><table>
<thead><tr><th>שם</th><th>ערך</th></tr></thead>
<tbody><tr><td>א</td><td>1</td></tr><tr><td>עם|צינור</td><td>2</td></tr></tbody>
</table></body>`)

	got := p.Markup()
	if !strings.Contains(got, "| שם | ערך |") {
		t.Errorf("missing header row:\n%s", got)
	}
	if !strings.Contains(got, "| --- | --- |") {
		t.Errorf("missing separator row:\n%s", got)
	}
	if strings.Contains(got, "עם|צינור") {
		t.Errorf("cell pipe must be stripped:\n%s", got)
	}
}

func TestSkipsChromeAndScripts(t *testing.T) {
	p := parseString(t, `<body>
<nav><p>תפריט</p></nav>
<header><p>לוגו</p></header>
<script>var x = 1;</script>
<style>p { color: red }</style>
<main><p>תוכן אמיתי</p></main>
<footer><p>זכויות</p></footer>
</body>`)

	got := p.Markup()
	if got != "תוכן אמיתי\n" {
		t.Errorf("markup = %q, want only the main content", got)
	}
}

func TestSeparatorAndDivHandling(t *testing.T) {
	p := parseString(t, `<body>
<div><p>בתוך מיכל</p></div>
<hr>
<div>טקסט ישיר</div>
</body>`)

	got := p.Markup()
	want := "בתוך מיכל\n\n---\n\nטקסט ישיר\n"
	if got != want {
		t.Errorf("markup = %q, want %q", got, want)
	}
}

func TestMarkupRoundTripsThroughParser(t *testing.T) {
	p := parseString(t, `<body>
<h1>כותרת</h1>
<p>פסקה עם <strong>הדגשה</strong>.</p>
<ul><li>פריט</li></ul>
<table><tr><th>א</th></tr><tr><td>ב</td></tr></table>
<blockquote>ציטוט</blockquote>
</body>`)

	blocks, _ := markup.Parse(p.Markup())
	wantTypes := []model.BlockType{
		model.BlockTypeHeading,
		model.BlockTypeParagraph,
		model.BlockTypeListItem,
		model.BlockTypeTable,
		model.BlockTypeBlockquote,
	}
	if len(blocks) != len(wantTypes) {
		t.Fatalf("blocks = %d, want %d", len(blocks), len(wantTypes))
	}
	for i, w := range wantTypes {
		if blocks[i].Type() != w {
			t.Errorf("block %d type = %v, want %v", i, blocks[i].Type(), w)
		}
	}

	para := blocks[1].(*model.Paragraph)
	var sawBold bool
	for _, s := range para.Spans {
		if s.Kind == model.SpanBold && s.Text == "הדגשה" {
			sawBold = true
		}
	}
	if !sawBold {
		t.Error("bold span lost in round trip")
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<html><head><title>קובץ</title></head><body><p>תוכן</p></body></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := ParseFile(path)
	if err != nil {
		t.Fatalf("parse file: %v", err)
	}
	if p.Title != "קובץ" {
		t.Errorf("title = %q", p.Title)
	}
}

func TestFetch(t *testing.T) {
	var gotUA, gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotLang = r.Header.Get("Accept-Language")
		w.Write([]byte("<html><body><p>מהשרת</p></body></html>"))
	}))
	defer srv.Close()

	p, err := Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p.Markup() != "מהשרת\n" {
		t.Errorf("markup = %q", p.Markup())
	}
	if !strings.Contains(gotUA, "Mozilla") {
		t.Errorf("user agent = %q, want a browser string", gotUA)
	}
	if !strings.HasPrefix(gotLang, "he") {
		t.Errorf("accept-language = %q, want Hebrew first", gotLang)
	}
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
