// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finlingo/finlingo/ent/lessoncompletionevent"
)

// LessonCompletionEvent is the model entity for the LessonCompletionEvent schema.
type LessonCompletionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the lesson session
	SessionID string `json:"session_id,omitempty"`
	// LessonID holds the value of the "lesson_id" field.
	LessonID string `json:"lesson_id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID string `json:"course_id,omitempty"`
	// Course category at completion time
	Category string `json:"category,omitempty"`
	// Course difficulty at completion time
	Difficulty string `json:"difficulty,omitempty"`
	// Lesson score, 0-100
	Score float64 `json:"score,omitempty"`
	// TimeSpentMinutes holds the value of the "time_spent_minutes" field.
	TimeSpentMinutes int `json:"time_spent_minutes,omitempty"`
	// QuestionsTotal holds the value of the "questions_total" field.
	QuestionsTotal int `json:"questions_total,omitempty"`
	// QuestionsCorrect holds the value of the "questions_correct" field.
	QuestionsCorrect int `json:"questions_correct,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonCompletionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessoncompletionevent.FieldScore:
			values[i] = new(sql.NullFloat64)
		case lessoncompletionevent.FieldID, lessoncompletionevent.FieldSequence, lessoncompletionevent.FieldTimeSpentMinutes, lessoncompletionevent.FieldQuestionsTotal, lessoncompletionevent.FieldQuestionsCorrect:
			values[i] = new(sql.NullInt64)
		case lessoncompletionevent.FieldSessionID, lessoncompletionevent.FieldLessonID, lessoncompletionevent.FieldCourseID, lessoncompletionevent.FieldCategory, lessoncompletionevent.FieldDifficulty:
			values[i] = new(sql.NullString)
		case lessoncompletionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonCompletionEvent fields.
func (_m *LessonCompletionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessoncompletionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessoncompletionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case lessoncompletionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case lessoncompletionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case lessoncompletionevent.FieldLessonID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_id", values[i])
			} else if value.Valid {
				_m.LessonID = value.String
			}
		case lessoncompletionevent.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.String
			}
		case lessoncompletionevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case lessoncompletionevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case lessoncompletionevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case lessoncompletionevent.FieldTimeSpentMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_minutes", values[i])
			} else if value.Valid {
				_m.TimeSpentMinutes = int(value.Int64)
			}
		case lessoncompletionevent.FieldQuestionsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_total", values[i])
			} else if value.Valid {
				_m.QuestionsTotal = int(value.Int64)
			}
		case lessoncompletionevent.FieldQuestionsCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field questions_correct", values[i])
			} else if value.Valid {
				_m.QuestionsCorrect = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonCompletionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LessonCompletionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonCompletionEvent.
// Note that you need to call LessonCompletionEvent.Unwrap() before calling this method if this LessonCompletionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonCompletionEvent) Update() *LessonCompletionEventUpdateOne {
	return NewLessonCompletionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonCompletionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonCompletionEvent) Unwrap() *LessonCompletionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonCompletionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonCompletionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LessonCompletionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("lesson_id=")
	builder.WriteString(_m.LessonID)
	builder.WriteString(", ")
	builder.WriteString("course_id=")
	builder.WriteString(_m.CourseID)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("time_spent_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeSpentMinutes))
	builder.WriteString(", ")
	builder.WriteString("questions_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsTotal))
	builder.WriteString(", ")
	builder.WriteString("questions_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionsCorrect))
	builder.WriteByte(')')
	return builder.String()
}

// LessonCompletionEvents is a parsable slice of LessonCompletionEvent.
type LessonCompletionEvents []*LessonCompletionEvent
