// Package lsfextract extracts structured course data from LSF detail pages.
// LSF is the HIS course catalog used by German universities; its detail
// views are rendered HTML table layouts rather than a stable schema, so the
// extraction engine works from named anchors, distinguishing table labels
// and header-relationship attributes instead of positions or styling.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, trafilatura/).
package lsfextract
