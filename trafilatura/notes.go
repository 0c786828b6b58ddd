package trafilatura

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lsftools/lsfextract"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure NotesExtractor implements lsfextract.NotesExtractor at compile time.
var _ lsfextract.NotesExtractor = (*NotesExtractor)(nil)

// keywordCatalog groups the course-related search terms, German first with
// common English variants. Categories are the keys of CourseNotes.Stichworte.
var keywordCatalog = map[string][]string{
	"klausur":      {"klausur", "prüfung", "exam", "prüfungstermin"},
	"sprechstunde": {"sprechstunde", "sprechzeit", "office hours"},
	"skript":       {"skript", "vorlesungsunterlagen", "materialien", "lecture notes"},
	"vorlesung":    {"vorlesung", "lecture"},
	"übung":        {"übung", "tutorium", "exercise"},
	"ects":         {"ects", "leistungspunkte", "credit points"},
	"modul":        {"modul", "module"},
	"dozent":       {"dozent", "professor", "lecturer"},
	"raum":         {"raum", "gebäude", "room"},
	"termin":       {"termin", "termine", "schedule"},
}

// contextChars bounds the snippet captured around each keyword occurrence.
const contextChars = 200

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// NotesExtractor wraps go-trafilatura to pull keyword-driven notes from
// course-related web pages (chair homepages, course sites). These pages have
// no table structure to extract from, so the main text is distilled first
// and then scanned for catalog terms.
type NotesExtractor struct{}

// NewNotesExtractor creates a new NotesExtractor.
func NewNotesExtractor() *NotesExtractor {
	return &NotesExtractor{}
}

// ExtractNotes processes raw HTML and returns keyword notes.
func (e *NotesExtractor) ExtractNotes(rawHTML string, sourceID string) (*lsfextract.CourseNotes, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, lsfextract.Errorf(lsfextract.EINVALID, "empty HTML input")
	}

	node, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, lsfextract.Errorf(lsfextract.EUNPROCESSABLE, "failed to parse document: %v", err)
	}
	fullText := collapse(nodeText(node))

	notes := &lsfextract.CourseNotes{
		SourceID:   sourceID,
		Stichworte: map[string][]lsfextract.KeywordHit{},
		Links:      collectLinks(node),
		Emails:     []string{},
	}

	// Distilled main text keeps snippets free of navigation chrome; the
	// full document text is the fallback when distillation finds nothing.
	text := fullText
	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{EnableFallback: true})
	if err == nil {
		notes.Titel = result.Metadata.Title
		if distilled := collapse(result.ContentText); distilled != "" {
			text = distilled
		}
	}
	notes.TextLaenge = len(text)

	lower := strings.ToLower(text)
	for category, words := range keywordCatalog {
		var hits []lsfextract.KeywordHit
		for _, w := range words {
			hits = append(hits, findKeyword(text, lower, w)...)
		}
		if len(hits) > 0 {
			notes.Stichworte[category] = hits
		}
	}

	seen := map[string]bool{}
	for _, email := range emailPattern.FindAllString(fullText, -1) {
		if !seen[email] {
			seen[email] = true
			notes.Emails = append(notes.Emails, email)
		}
	}

	return notes, nil
}

// findKeyword locates every occurrence of keyword and captures surrounding
// context, widened outward to rune boundaries.
func findKeyword(text, lower, keyword string) []lsfextract.KeywordHit {
	var hits []lsfextract.KeywordHit
	kw := strings.ToLower(keyword)

	for from := 0; ; {
		i := strings.Index(lower[from:], kw)
		if i < 0 {
			break
		}
		pos := from + i

		start := pos - contextChars
		if start < 0 {
			start = 0
		}
		for start > 0 && !utf8.RuneStart(text[start]) {
			start--
		}
		end := pos + len(kw) + contextChars
		if end > len(text) {
			end = len(text)
		}
		for end < len(text) && !utf8.RuneStart(text[end]) {
			end++
		}

		hits = append(hits, lsfextract.KeywordHit{
			Keyword:  keyword,
			Context:  strings.TrimSpace(text[start:end]),
			Position: pos,
		})
		from = pos + len(kw)
	}
	return hits
}

// collectLinks gathers absolute outbound links with usable anchor text.
func collectLinks(root *html.Node) []lsfextract.NoteLink {
	links := []lsfextract.NoteLink{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			href := attrValue(n, "href")
			if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
				text := collapse(nodeText(n))
				if text != "" && len(text) < 200 {
					links = append(links, lsfextract.NoteLink{URL: href, Text: text})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return links
}

// nodeText collects the text content of a subtree, skipping script and
// style elements.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return ""
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
		b.WriteString(" ")
	}
	return b.String()
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collapse normalizes all whitespace runs to single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
