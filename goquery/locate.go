package goquery

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Anchor names marking sections in detail pages.
const (
	anchorBasics       = "basicdata"
	anchorTerms        = "terms"
	anchorPersons      = "persons"
	anchorCurricular   = "curricular"
	anchorInstitutions = "institutions"
)

// Distinguishing table labels. LSF writes a human-readable description into
// each table's summary attribute; these strings are unique per table and are
// the only reliable disambiguation keys, so they must match exactly.
const (
	labelBasics       = "Grunddaten zur Veranstaltung"
	labelTerms        = "Übersicht über alle Veranstaltungstermine"
	labelPersons      = "Verantwortliche Dozenten"
	labelCurricula    = "Übersicht über die zugehörigen Studiengänge"
	labelModules      = "Übersicht über die zugehörigen Module"
	labelInstitutions = "Übersicht über die zugehörigen Einrichtungen"
)

// locateTable finds the table carrying the distinguishing label.
//
// When the anchor exists the search runs forward in document order from the
// anchor node. The anchor is only a starting position, never a uniqueness
// guarantee: detail pages repeat the "curricular" anchor name across
// unrelated tables, and the forward search for the label is what binds each
// section to the right table. Without an anchor the first matching table in
// the document wins. Returns nil when the section is absent; absence is not
// an error.
func locateTable(doc *goquery.Document, anchorName, label string) *goquery.Selection {
	anchor := doc.Find(fmt.Sprintf("a[name=%q]", anchorName)).First()
	if anchor.Length() == 0 {
		table := doc.Find(fmt.Sprintf("table[summary=%q]", label)).First()
		if table.Length() == 0 {
			return nil
		}
		return table
	}

	for n := nextNode(anchor.Nodes[0]); n != nil; n = nextNode(n) {
		if n.Type == html.ElementNode && n.Data == "table" && nodeAttr(n, "summary") == label {
			return doc.FindNodes(n)
		}
	}
	return nil
}

// nextNode returns the successor of n in document order.
func nextNode(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for ; n != nil; n = n.Parent {
		if n.NextSibling != nil {
			return n.NextSibling
		}
	}
	return nil
}

func nodeAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
