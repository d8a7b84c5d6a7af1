package staticgen

import (
	"strings"
	"testing"
)

func TestRemoveElement(t *testing.T) {
	html := `<div><button class="tab" data-target="android-section">Android</button><p>keep</p></div>`

	doc := NewDocument(html)
	doc.RemoveElement(`data-target="android-section"`)

	if doc.Contains("Android") {
		t.Errorf("button content survived removal: %s", doc.String())
	}
	if !doc.Contains("<p>keep</p>") {
		t.Errorf("sibling removed: %s", doc.String())
	}
}

func TestRemoveElementNested(t *testing.T) {
	html := `<section id="tvbox-section"><section><p>inner</p></section><p>outer</p></section><footer>f</footer>`

	doc := NewDocument(html)
	doc.RemoveElement(`id="tvbox-section"`)

	if doc.Contains("inner") || doc.Contains("outer") {
		t.Errorf("nested section not fully removed: %s", doc.String())
	}
	if !doc.Contains("<footer>f</footer>") {
		t.Errorf("trailing content removed: %s", doc.String())
	}
}

func TestRemoveElementMissingMarker(t *testing.T) {
	html := `<div><p>keep</p></div>`
	doc := NewDocument(html)
	doc.RemoveElement(`id="absent"`)
	if doc.String() != html {
		t.Errorf("document changed without a match: %s", doc.String())
	}
}

func TestSetInner(t *testing.T) {
	html := `<section><div id="video-grid" class="grid"><p>placeholder</p></div></section>`

	doc := NewDocument(html)
	if !doc.SetInner(`id="video-grid"`, "<span>filled</span>") {
		t.Fatal("SetInner did not find the grid")
	}

	if doc.Contains("placeholder") {
		t.Errorf("old inner markup survived: %s", doc.String())
	}
	if !strings.Contains(doc.String(), `<div id="video-grid" class="grid"><span>filled</span></div>`) {
		t.Errorf("inner not replaced in place: %s", doc.String())
	}
}

func TestSetInnerMissing(t *testing.T) {
	doc := NewDocument("<div></div>")
	if doc.SetInner(`id="absent"`, "x") {
		t.Error("SetInner reported success without a match")
	}
}

func TestReplaceTokens(t *testing.T) {
	doc := NewDocument(`<h1>{{app_name}}</h1><a href="{{download_url}}">{{app_name}}</a>`)
	doc.ReplaceTokens(map[string]string{
		"app_name":     "Meu App",
		"download_url": "/d",
	})

	want := `<h1>Meu App</h1><a href="/d">Meu App</a>`
	if doc.String() != want {
		t.Errorf("got %q, want %q", doc.String(), want)
	}
}

// Button and section may appear in either order in the template.
func TestRemoveElementOrderTolerant(t *testing.T) {
	sectionFirst := `<section id="firestick-section"><p>s</p></section><button data-target="firestick-section">b</button>`
	buttonFirst := `<button data-target="firestick-section">b</button><section id="firestick-section"><p>s</p></section>`

	for _, html := range []string{sectionFirst, buttonFirst} {
		doc := NewDocument(html)
		doc.RemoveElement(`data-target="firestick-section"`)
		doc.RemoveElement(`id="firestick-section"`)
		if doc.Contains("firestick-section") {
			t.Errorf("marker survived for %q: %s", html, doc.String())
		}
	}
}
