package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lsftools/lsfextract"
	"golang.org/x/net/html"
)

// Ensure Extractor implements lsfextract.CourseExtractor at compile time.
var _ lsfextract.CourseExtractor = (*Extractor)(nil)

// Extractor extracts normalized course records from LSF detail pages.
// Extraction of a single document is a pure, synchronous computation over
// the parsed tree; an Extractor holds no state and is safe for concurrent
// use by independent workers.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractCourse parses rawHTML and assembles one CourseRecord.
//
// Section extractors run independently: a missing or malformed section
// degrades to a warning on the record and never aborts the others, so a
// document with zero recognizable sections still yields a mostly-empty
// record plus warnings. Only input that cannot be parsed as markup fails
// the call.
func (e *Extractor) ExtractCourse(rawHTML string, sourceID string) (*lsfextract.CourseRecord, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, lsfextract.Errorf(lsfextract.EINVALID, "empty HTML input")
	}

	node, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, lsfextract.Errorf(lsfextract.EUNPROCESSABLE, "failed to parse document: %v", err)
	}
	doc := goquery.NewDocumentFromNode(node)

	record := &lsfextract.CourseRecord{
		SourceID:      sourceID,
		WeitereLinks:  []lsfextract.Link{},
		Termine:       []lsfextract.ScheduleEntry{},
		Personen:      []lsfextract.Person{},
		Studiengaenge: []lsfextract.Curriculum{},
		Module:        []string{},
		Einrichtungen: []string{},
		Warnings:      []lsfextract.Warning{},
	}

	record.Titel = extractTitle(doc)

	if table := locateTable(doc, anchorBasics, labelBasics); table != nil {
		basics := extractBasics(table)
		record.Art = basics.art
		record.VeranstaltungsID = basics.veranstaltungsID
		record.Semester = basics.semester
		record.ECTS = basics.ects
		record.Hauptlink = basics.hauptlink
		record.Sprache = basics.sprache
		record.WeitereLinks = basics.weitereLinks
		record.Warnings = append(record.Warnings, basics.warnings...)
	} else {
		record.Warnings = append(record.Warnings, missingSection("grunddaten", labelBasics))
	}

	if table := locateTable(doc, anchorTerms, labelTerms); table != nil {
		termine, warnings := extractSchedule(table)
		record.Termine = termine
		record.Warnings = append(record.Warnings, warnings...)
	} else {
		record.Warnings = append(record.Warnings, missingSection("termine", labelTerms))
	}

	if table := locateTable(doc, anchorPersons, labelPersons); table != nil {
		record.Personen = extractPersons(table)
	} else {
		record.Warnings = append(record.Warnings, missingSection("personen", labelPersons))
	}

	if table := locateTable(doc, anchorCurricular, labelCurricula); table != nil {
		record.Studiengaenge = extractCurricula(table)
	} else {
		record.Warnings = append(record.Warnings, missingSection("studiengaenge", labelCurricula))
	}

	// Absent module or institution tables are the normal "none associated"
	// case and carry no warning.
	if table := locateTable(doc, anchorCurricular, labelModules); table != nil {
		record.Module = extractNameList(table)
	}
	if table := locateTable(doc, anchorInstitutions, labelInstitutions); table != nil {
		record.Einrichtungen = extractNameList(table)
	}

	return record, nil
}

func missingSection(section, label string) lsfextract.Warning {
	return lsfextract.Warning{
		Code:    lsfextract.WarnMissingSection,
		Section: section,
		Message: fmt.Sprintf("no table with label %q found", label),
	}
}
