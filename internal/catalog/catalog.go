package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed data/courses.json
var embeddedCatalog []byte

//go:embed data/courses_schema.json
var catalogSchemaDef []byte

// ErrCourseNotFound is returned when a course ID is not in the catalog.
var ErrCourseNotFound = errors.New("course not found")

// Catalog is the immutable set of course definitions. Loaded once at
// startup; the engine never mutates it.
type Catalog struct {
	version string
	courses []Course
	byID    map[string]int
}

type catalogDocument struct {
	Version string   `json:"version"`
	Courses []Course `json:"courses"`
}

// Load parses and validates the embedded course catalog.
func Load() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Parse validates raw catalog JSON against the catalog schema and builds
// a Catalog. Malformed documents are rejected before any course is exposed.
func Parse(raw []byte) (*Catalog, error) {
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc catalogDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		version: doc.Version,
		courses: doc.Courses,
		byID:    make(map[string]int, len(doc.Courses)),
	}

	for i, course := range doc.Courses {
		if _, dup := c.byID[course.ID]; dup {
			return nil, fmt.Errorf("duplicate course id %q", course.ID)
		}
		c.byID[course.ID] = i

		for _, lesson := range course.Lessons {
			for qi, q := range lesson.Questions {
				if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
					return nil, fmt.Errorf("course %q lesson %q question %d: correct_index %d out of range",
						course.ID, lesson.ID, qi, q.CorrectIndex)
				}
			}
		}
	}

	return c, nil
}

// Version returns the catalog document version.
func (c *Catalog) Version() string {
	return c.version
}

// Course returns the course with the given ID.
func (c *Catalog) Course(id string) (*Course, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, id)
	}
	return &c.courses[i], nil
}

// Courses returns all courses in catalog order.
func (c *Catalog) Courses() []Course {
	return c.courses
}

// Lesson returns the lesson with the given ID from the given course.
func (c *Catalog) Lesson(courseID, lessonID string) (*Lesson, error) {
	course, err := c.Course(courseID)
	if err != nil {
		return nil, err
	}
	for i := range course.Lessons {
		if course.Lessons[i].ID == lessonID {
			return &course.Lessons[i], nil
		}
	}
	return nil, fmt.Errorf("lesson %q not found in course %q", lessonID, courseID)
}

// validateDocument checks the raw JSON against the catalog schema.
func validateDocument(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid catalog JSON: %w", err)
	}

	var schemaParsed any
	if err := json.Unmarshal(catalogSchemaDef, &schemaParsed); err != nil {
		return fmt.Errorf("parse catalog schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	const schemaURL = "schema://catalog.json"
	if err := compiler.AddResource(schemaURL, schemaParsed); err != nil {
		return fmt.Errorf("add catalog schema: %w", err)
	}
	compiled, err := compiler.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("catalog schema validation failed: %w", err)
	}
	return nil
}
