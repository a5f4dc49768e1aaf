// Code generated by ent, DO NOT EDIT.

package lessoncompletionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessoncompletionevent type in the database.
	Label = "lesson_completion_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLessonID holds the string denoting the lesson_id field in the database.
	FieldLessonID = "lesson_id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTimeSpentMinutes holds the string denoting the time_spent_minutes field in the database.
	FieldTimeSpentMinutes = "time_spent_minutes"
	// FieldQuestionsTotal holds the string denoting the questions_total field in the database.
	FieldQuestionsTotal = "questions_total"
	// FieldQuestionsCorrect holds the string denoting the questions_correct field in the database.
	FieldQuestionsCorrect = "questions_correct"
	// Table holds the table name of the lessoncompletionevent in the database.
	Table = "lesson_completion_events"
)

// Columns holds all SQL columns for lessoncompletionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLessonID,
	FieldCourseID,
	FieldCategory,
	FieldDifficulty,
	FieldScore,
	FieldTimeSpentMinutes,
	FieldQuestionsTotal,
	FieldQuestionsCorrect,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	LessonIDValidator func(string) error
	// CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	CourseIDValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// DefaultTimeSpentMinutes holds the default value on creation for the "time_spent_minutes" field.
	DefaultTimeSpentMinutes int
	// DefaultQuestionsTotal holds the default value on creation for the "questions_total" field.
	DefaultQuestionsTotal int
	// DefaultQuestionsCorrect holds the default value on creation for the "questions_correct" field.
	DefaultQuestionsCorrect int
)

// OrderOption defines the ordering options for the LessonCompletionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLessonID orders the results by the lesson_id field.
func ByLessonID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonID, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTimeSpentMinutes orders the results by the time_spent_minutes field.
func ByTimeSpentMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentMinutes, opts...).ToFunc()
}

// ByQuestionsTotal orders the results by the questions_total field.
func ByQuestionsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsTotal, opts...).ToFunc()
}

// ByQuestionsCorrect orders the results by the questions_correct field.
func ByQuestionsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsCorrect, opts...).ToFunc()
}
