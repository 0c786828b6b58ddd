package lsfextract

import (
	"context"
	"time"
)

// CourseRecord is the normalized result of extracting one detail page.
//
// Singular fields distinguish structural absence from present-but-empty
// values: a nil pointer means no matching section or cell was found, an
// empty string means the cell exists but holds no text. Collections are
// never nil; an absent section yields an empty slice. Downstream consumers
// rely on this distinction, so the JSON field names and nil/empty semantics
// are a wire contract.
//
// A record is assembled once per extraction call and not mutated afterwards.
type CourseRecord struct {
	// SourceID is the caller-supplied identifier of the input document.
	SourceID string `json:"sourceId"`

	Titel            *string `json:"titel"`
	Art              *string `json:"art"`
	VeranstaltungsID *string `json:"veranstaltungsId"`
	Semester         *string `json:"semester"`

	// ECTS holds the raw credit value text. Exam/no-exam variants share the
	// same header identifier; the first non-empty candidate wins and extra
	// non-empty candidates produce a duplicate_value warning.
	ECTS *string `json:"ects"`

	// Hauptlink is the raw href of the primary course link, undecoded.
	Hauptlink    *string `json:"hauptlink"`
	WeitereLinks []Link  `json:"weitereLinks"`

	Sprache *string `json:"sprache"`

	// Termine preserves document order, which reflects weekly occurrence order.
	Termine []ScheduleEntry `json:"termine"`

	Personen      []Person     `json:"personen"`
	Studiengaenge []Curriculum `json:"studiengaenge"`
	Module        []string     `json:"module"`
	Einrichtungen []string     `json:"einrichtungen"`

	Warnings []Warning `json:"warnings"`
}

// ScheduleEntry is one row of the schedule table.
//
// Dauer is kept verbatim: either a date range ("14.10.2025 bis 03.02.2026"),
// a single-date phrase ("am 14.11.2025") or empty. No date parsing happens
// at this layer.
type ScheduleEntry struct {
	Tag           *string `json:"tag"`
	Zeit          *string `json:"zeit"`
	Rhythmus      *string `json:"rhythmus"`
	Dauer         *string `json:"dauer"`
	Raum          *string `json:"raum"`
	Lehrperson    *string `json:"lehrperson"`
	Status        *string `json:"status"`
	Bemerkung     *string `json:"bemerkung"`
	FaelltAusAm   *string `json:"faelltAusAm"`
	MaxTeilnehmer *string `json:"maxTeilnehmer"`
}

// Person is one row of the responsible-lecturers table. Name is not
// normalized and may contain academic titles and comma-separated
// surname/given-name. Rolle passes unknown values through unchanged.
type Person struct {
	Name  string  `json:"name"`
	Rolle *string `json:"rolle"`
}

// Curriculum is one row of the associated-curricula table. Studiengang
// frequently embeds a version marker inline; splitting it apart is left to
// a later cleaning stage.
type Curriculum struct {
	Abschluss   *string `json:"abschluss"`
	Studiengang *string `json:"studiengang"`
	Semester    *string `json:"semester"`
	POVersion   *string `json:"poVersion"`
}

// Link is a classified hyperlink. RawDestinationParam holds the undecoded
// destination payload of redirect-style internal links; decoding is
// deliberately deferred.
type Link struct {
	Text               string  `json:"text"`
	Href               string  `json:"href"`
	IsInternalRedirect bool    `json:"isInternalRedirect"`
	RawDestinationParam *string `json:"rawDestinationParam"`
}

// Warning codes attached to a CourseRecord.
const (
	WarnShapeMismatch  = "shape_mismatch"  // row has fewer/more cells than expected
	WarnDuplicateValue = "duplicate_value" // repeated header identifier with multiple non-empty values
	WarnMissingSection = "missing_section" // expected section/table not found
)

// Warning is a non-fatal anomaly encountered during extraction. Extractor-
// local anomalies degrade to warnings attached to the record; only an
// unparsable document fails the extraction call.
type Warning struct {
	Code    string `json:"code"`
	Section string `json:"section"`
	Message string `json:"message"`
}

// CourseExtractor turns one detail page into a normalized record.
type CourseExtractor interface {
	// ExtractCourse parses the raw HTML of a single detail page and returns
	// one CourseRecord. Missing or malformed sections degrade to warnings on
	// the record; only a document that cannot be parsed as markup returns an
	// error (EUNPROCESSABLE, or EINVALID for empty input).
	ExtractCourse(html string, sourceID string) (*CourseRecord, error)
}

// Course is a stored extraction result.
type Course struct {
	ID          string        `json:"id"`
	SourceID    string        `json:"sourceId"`
	SourceHash  string        `json:"sourceHash"`
	Record      *CourseRecord `json:"record"`
	ExtractedAt time.Time     `json:"extractedAt"`
}

// Validate returns an error if the course contains invalid fields.
func (c *Course) Validate() error {
	if c.SourceID == "" {
		return Errorf(EINVALID, "course source ID required")
	}
	if c.Record == nil {
		return Errorf(EINVALID, "course record required")
	}
	return nil
}

// CourseService represents a service for managing stored courses.
type CourseService interface {
	// CreateCourse stores a new course.
	CreateCourse(ctx context.Context, course *Course) error

	// FindCourseByID retrieves a course by ID.
	// Returns ENOTFOUND if the course does not exist.
	FindCourseByID(ctx context.Context, id string) (*Course, error)

	// FindCourses retrieves courses matching the filter.
	FindCourses(ctx context.Context, filter CourseFilter) ([]*Course, error)

	// DeleteCourse permanently removes a course.
	// Returns ENOTFOUND if the course does not exist.
	DeleteCourse(ctx context.Context, id string) error
}

// CourseFilter represents a filter for FindCourses.
type CourseFilter struct {
	ID       *string `json:"id"`
	SourceID *string `json:"sourceId"`
	Semester *string `json:"semester"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordWriter persists extracted records outside the engine. Serialization
// is a collaborator concern, not part of the extraction core.
type RecordWriter interface {
	WriteRecord(ctx context.Context, record *CourseRecord) error
}
