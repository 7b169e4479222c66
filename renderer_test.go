package violetpress

import (
	"strings"
	"testing"
)

func TestArticleRendererUnsafe(t *testing.T) {
	r := articleRenderer{
		fs:     testFS(),
		mdPath: "/blog/first/article.md",
		unsafe: true,
	}
	html, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "<script>") {
		t.Errorf("unsafe page must keep raw html: %q", html)
	}
}

func TestArticleRendererMissing(t *testing.T) {
	r := articleRenderer{fs: testFS(), mdPath: "/blog/first/missing.md"}
	if _, err := r.Render(); err == nil {
		t.Error("expected an error for a missing markdown file")
	}
}

func TestTeamRendererOneLinkPerMember(t *testing.T) {
	r := newTeamRenderer(testFS(), "/crew/team.yaml")
	html, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(html), `class="profile-link"`); got != 2 {
		t.Errorf("expected 2 profile links, got %d: %q", got, html)
	}
	if got := strings.Count(string(html), "<path "); got != 4 {
		t.Errorf("expected 2 paths per mark, got %d total", got)
	}
}
