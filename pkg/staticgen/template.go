package staticgen

import "strings"

// Document wraps a page template and exposes its named regions, so callers
// fill or remove blocks through markers instead of pattern matching over raw
// markup. Markers are attribute snippets such as `id="video-grid"`.
type Document struct {
	html string
}

func NewDocument(html string) *Document { return &Document{html: html} }

func (d *Document) String() string { return d.html }

// ReplaceTokens substitutes every {{token}} placeholder with its value.
func (d *Document) ReplaceTokens(values map[string]string) {
	pairs := make([]string, 0, len(values)*2)
	for token, value := range values {
		pairs = append(pairs, "{{"+token+"}}", value)
	}
	d.html = strings.NewReplacer(pairs...).Replace(d.html)
}

// RemoveElement deletes the whole element whose opening tag carries marker.
// A marker that does not occur is ignored.
func (d *Document) RemoveElement(marker string) {
	if s, ok := findElement(d.html, marker); ok {
		d.html = d.html[:s.start] + d.html[s.end:]
	}
}

// SetInner replaces the inner markup of the element carrying marker,
// reporting whether the element was found.
func (d *Document) SetInner(marker, inner string) bool {
	s, ok := findElement(d.html, marker)
	if !ok {
		return false
	}
	d.html = d.html[:s.openEnd] + inner + d.html[s.innerEnd:]
	return true
}

// Contains reports whether marker still occurs in the document.
func (d *Document) Contains(marker string) bool {
	return strings.Contains(d.html, marker)
}

type elementSpan struct {
	start    int // '<' of the opening tag
	openEnd  int // just past '>' of the opening tag
	innerEnd int // '<' of the matching closing tag
	end      int // just past '>' of the closing tag
}

func isNameByte(c byte) bool {
	return c == '-' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// findElement locates the element whose opening tag contains marker and
// matches its closing tag, tolerating nested elements of the same name.
func findElement(html, marker string) (elementSpan, bool) {
	at := strings.Index(html, marker)
	if at < 0 {
		return elementSpan{}, false
	}
	start := strings.LastIndex(html[:at], "<")
	if start < 0 {
		return elementSpan{}, false
	}
	nameEnd := start + 1
	for nameEnd < len(html) && isNameByte(html[nameEnd]) {
		nameEnd++
	}
	name := html[start+1 : nameEnd]
	if name == "" {
		return elementSpan{}, false
	}
	openEnd := strings.IndexByte(html[at:], '>')
	if openEnd < 0 {
		return elementSpan{}, false
	}
	openEnd += at + 1

	openTag := "<" + name
	closeTag := "</" + name + ">"
	depth := 1
	pos := openEnd
	for {
		next := strings.Index(html[pos:], closeTag)
		if next < 0 {
			return elementSpan{}, false
		}
		next += pos

		// Same-name openings between pos and the close candidate keep the
		// element open past this closing tag.
		seek := pos
		for {
			i := strings.Index(html[seek:next], openTag)
			if i < 0 {
				break
			}
			i += seek
			after := i + len(openTag)
			if after >= len(html) || !isNameByte(html[after]) {
				depth++
			}
			seek = after
		}

		depth--
		pos = next + len(closeTag)
		if depth == 0 {
			return elementSpan{start: start, openEnd: openEnd, innerEnd: next, end: pos}, true
		}
	}
}
