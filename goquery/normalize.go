package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lsftools/lsfextract"
)

const nbsp = '\u00a0'

// normalizeText replaces non-breaking spaces with regular spaces, collapses
// whitespace runs and trims the result. Embedded markup has already been
// reduced to text content by the caller, so free-text cells keep their
// wording but lose formatting tags.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, string(nbsp), " ")), " ")
}

// cellValue returns the normalized text of a cell.
//
// The missing-vs-empty convention lives here: a nil selection (no such cell)
// returns nil, a cell holding only a non-breaking space returns nil (LSF
// renders unassigned slots as &nbsp;), and a cell that is present but
// textually empty returns a pointer to the empty string.
func cellValue(sel *goquery.Selection) *string {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	raw := sel.Text()
	norm := normalizeText(raw)
	if norm == "" && strings.ContainsRune(raw, nbsp) {
		return nil
	}
	return &norm
}

// classifyLink builds a Link from an anchor element. A href that routes
// through the LSF redirect servlet with a destination parameter is an
// internal redirect; the destination payload is captured undecoded since
// URL-decoding belongs to a later cleaning stage.
func classifyLink(sel *goquery.Selection) lsfextract.Link {
	href := sel.AttrOr("href", "")
	link := lsfextract.Link{
		Text: normalizeText(sel.Text()),
		Href: href,
	}

	if !strings.Contains(href, "redirect") {
		return link
	}
	idx := strings.Index(href, "destination=")
	if idx < 0 {
		return link
	}

	raw := href[idx+len("destination="):]
	if amp := strings.IndexByte(raw, '&'); amp >= 0 {
		raw = raw[:amp]
	}
	link.IsInternalRedirect = true
	link.RawDestinationParam = &raw
	return link
}
