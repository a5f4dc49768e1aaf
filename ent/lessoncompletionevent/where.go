// Code generated by ent, DO NOT EDIT.

package lessoncompletionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/finlingo/finlingo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldSessionID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldLessonID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldCourseID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldCategory, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldScore, v))
}

// TimeSpentMinutes applies equality check predicate on the "time_spent_minutes" field. It's identical to TimeSpentMinutesEQ.
func TimeSpentMinutes(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// QuestionsTotal applies equality check predicate on the "questions_total" field. It's identical to QuestionsTotalEQ.
func QuestionsTotal(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldQuestionsTotal, v))
}

// QuestionsCorrect applies equality check predicate on the "questions_correct" field. It's identical to QuestionsCorrectEQ.
func QuestionsCorrect(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldQuestionsCorrect, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContainsFold(FieldLessonID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContainsFold(FieldCourseID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContainsFold(FieldCategory, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldScore, v))
}

// TimeSpentMinutesEQ applies the EQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesEQ(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesNEQ applies the NEQ predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNEQ(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesIn applies the In predicate on the "time_spent_minutes" field.
func TimeSpentMinutesIn(vs ...int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesNotIn applies the NotIn predicate on the "time_spent_minutes" field.
func TimeSpentMinutesNotIn(vs ...int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldTimeSpentMinutes, vs...))
}

// TimeSpentMinutesGT applies the GT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGT(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesGTE applies the GTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesGTE(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLT applies the LT predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLT(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldTimeSpentMinutes, v))
}

// TimeSpentMinutesLTE applies the LTE predicate on the "time_spent_minutes" field.
func TimeSpentMinutesLTE(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldTimeSpentMinutes, v))
}

// QuestionsTotalEQ applies the EQ predicate on the "questions_total" field.
func QuestionsTotalEQ(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldQuestionsTotal, v))
}

// QuestionsTotalNEQ applies the NEQ predicate on the "questions_total" field.
func QuestionsTotalNEQ(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldQuestionsTotal, v))
}

// QuestionsTotalIn applies the In predicate on the "questions_total" field.
func QuestionsTotalIn(vs ...int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldQuestionsTotal, vs...))
}

// QuestionsTotalNotIn applies the NotIn predicate on the "questions_total" field.
func QuestionsTotalNotIn(vs ...int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldQuestionsTotal, vs...))
}

// QuestionsTotalGT applies the GT predicate on the "questions_total" field.
func QuestionsTotalGT(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldQuestionsTotal, v))
}

// QuestionsTotalGTE applies the GTE predicate on the "questions_total" field.
func QuestionsTotalGTE(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldQuestionsTotal, v))
}

// QuestionsTotalLT applies the LT predicate on the "questions_total" field.
func QuestionsTotalLT(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldQuestionsTotal, v))
}

// QuestionsTotalLTE applies the LTE predicate on the "questions_total" field.
func QuestionsTotalLTE(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldQuestionsTotal, v))
}

// QuestionsCorrectEQ applies the EQ predicate on the "questions_correct" field.
func QuestionsCorrectEQ(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldEQ(FieldQuestionsCorrect, v))
}

// QuestionsCorrectNEQ applies the NEQ predicate on the "questions_correct" field.
func QuestionsCorrectNEQ(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNEQ(FieldQuestionsCorrect, v))
}

// QuestionsCorrectIn applies the In predicate on the "questions_correct" field.
func QuestionsCorrectIn(vs ...int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldIn(FieldQuestionsCorrect, vs...))
}

// QuestionsCorrectNotIn applies the NotIn predicate on the "questions_correct" field.
func QuestionsCorrectNotIn(vs ...int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldNotIn(FieldQuestionsCorrect, vs...))
}

// QuestionsCorrectGT applies the GT predicate on the "questions_correct" field.
func QuestionsCorrectGT(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGT(FieldQuestionsCorrect, v))
}

// QuestionsCorrectGTE applies the GTE predicate on the "questions_correct" field.
func QuestionsCorrectGTE(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldGTE(FieldQuestionsCorrect, v))
}

// QuestionsCorrectLT applies the LT predicate on the "questions_correct" field.
func QuestionsCorrectLT(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLT(FieldQuestionsCorrect, v))
}

// QuestionsCorrectLTE applies the LTE predicate on the "questions_correct" field.
func QuestionsCorrectLTE(v int) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.FieldLTE(FieldQuestionsCorrect, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonCompletionEvent) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonCompletionEvent) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonCompletionEvent) predicate.LessonCompletionEvent {
	return predicate.LessonCompletionEvent(sql.NotPredicates(p))
}
