// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/finlingo/finlingo/ent/achievementevent"
	"github.com/finlingo/finlingo/ent/courseevent"
	"github.com/finlingo/finlingo/ent/lessoncompletionevent"
	"github.com/finlingo/finlingo/ent/llmrequestevent"
	"github.com/finlingo/finlingo/ent/schema"
	"github.com/finlingo/finlingo/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescTitle is the schema descriptor for title field.
	achievementeventDescTitle := achievementeventFields[0].Descriptor()
	// achievementevent.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	achievementevent.TitleValidator = achievementeventDescTitle.Validators[0].(func(string) error)
	// achievementeventDescDescription is the schema descriptor for description field.
	achievementeventDescDescription := achievementeventFields[1].Descriptor()
	// achievementevent.DefaultDescription holds the default value on creation for the description field.
	achievementevent.DefaultDescription = achievementeventDescDescription.Default.(string)
	// achievementeventDescCategory is the schema descriptor for category field.
	achievementeventDescCategory := achievementeventFields[2].Descriptor()
	// achievementevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	achievementevent.CategoryValidator = achievementeventDescCategory.Validators[0].(func(string) error)
	// achievementeventDescIcon is the schema descriptor for icon field.
	achievementeventDescIcon := achievementeventFields[3].Descriptor()
	// achievementevent.DefaultIcon holds the default value on creation for the icon field.
	achievementevent.DefaultIcon = achievementeventDescIcon.Default.(string)
	// achievementeventDescMilestone is the schema descriptor for milestone field.
	achievementeventDescMilestone := achievementeventFields[4].Descriptor()
	// achievementevent.DefaultMilestone holds the default value on creation for the milestone field.
	achievementevent.DefaultMilestone = achievementeventDescMilestone.Default.(int)
	courseeventMixin := schema.CourseEvent{}.Mixin()
	courseeventMixinFields0 := courseeventMixin[0].Fields()
	_ = courseeventMixinFields0
	courseeventFields := schema.CourseEvent{}.Fields()
	_ = courseeventFields
	// courseeventDescTimestamp is the schema descriptor for timestamp field.
	courseeventDescTimestamp := courseeventMixinFields0[1].Descriptor()
	// courseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	courseevent.DefaultTimestamp = courseeventDescTimestamp.Default.(func() time.Time)
	// courseeventDescCourseID is the schema descriptor for course_id field.
	courseeventDescCourseID := courseeventFields[0].Descriptor()
	// courseevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	courseevent.CourseIDValidator = courseeventDescCourseID.Validators[0].(func(string) error)
	// courseeventDescAction is the schema descriptor for action field.
	courseeventDescAction := courseeventFields[1].Descriptor()
	// courseevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	courseevent.ActionValidator = courseeventDescAction.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessoncompletioneventMixin := schema.LessonCompletionEvent{}.Mixin()
	lessoncompletioneventMixinFields0 := lessoncompletioneventMixin[0].Fields()
	_ = lessoncompletioneventMixinFields0
	lessoncompletioneventFields := schema.LessonCompletionEvent{}.Fields()
	_ = lessoncompletioneventFields
	// lessoncompletioneventDescTimestamp is the schema descriptor for timestamp field.
	lessoncompletioneventDescTimestamp := lessoncompletioneventMixinFields0[1].Descriptor()
	// lessoncompletionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessoncompletionevent.DefaultTimestamp = lessoncompletioneventDescTimestamp.Default.(func() time.Time)
	// lessoncompletioneventDescSessionID is the schema descriptor for session_id field.
	lessoncompletioneventDescSessionID := lessoncompletioneventFields[0].Descriptor()
	// lessoncompletionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessoncompletionevent.SessionIDValidator = lessoncompletioneventDescSessionID.Validators[0].(func(string) error)
	// lessoncompletioneventDescLessonID is the schema descriptor for lesson_id field.
	lessoncompletioneventDescLessonID := lessoncompletioneventFields[1].Descriptor()
	// lessoncompletionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lessoncompletionevent.LessonIDValidator = lessoncompletioneventDescLessonID.Validators[0].(func(string) error)
	// lessoncompletioneventDescCourseID is the schema descriptor for course_id field.
	lessoncompletioneventDescCourseID := lessoncompletioneventFields[2].Descriptor()
	// lessoncompletionevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	lessoncompletionevent.CourseIDValidator = lessoncompletioneventDescCourseID.Validators[0].(func(string) error)
	// lessoncompletioneventDescCategory is the schema descriptor for category field.
	lessoncompletioneventDescCategory := lessoncompletioneventFields[3].Descriptor()
	// lessoncompletionevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	lessoncompletionevent.CategoryValidator = lessoncompletioneventDescCategory.Validators[0].(func(string) error)
	// lessoncompletioneventDescDifficulty is the schema descriptor for difficulty field.
	lessoncompletioneventDescDifficulty := lessoncompletioneventFields[4].Descriptor()
	// lessoncompletionevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	lessoncompletionevent.DifficultyValidator = lessoncompletioneventDescDifficulty.Validators[0].(func(string) error)
	// lessoncompletioneventDescTimeSpentMinutes is the schema descriptor for time_spent_minutes field.
	lessoncompletioneventDescTimeSpentMinutes := lessoncompletioneventFields[6].Descriptor()
	// lessoncompletionevent.DefaultTimeSpentMinutes holds the default value on creation for the time_spent_minutes field.
	lessoncompletionevent.DefaultTimeSpentMinutes = lessoncompletioneventDescTimeSpentMinutes.Default.(int)
	// lessoncompletioneventDescQuestionsTotal is the schema descriptor for questions_total field.
	lessoncompletioneventDescQuestionsTotal := lessoncompletioneventFields[7].Descriptor()
	// lessoncompletionevent.DefaultQuestionsTotal holds the default value on creation for the questions_total field.
	lessoncompletionevent.DefaultQuestionsTotal = lessoncompletioneventDescQuestionsTotal.Default.(int)
	// lessoncompletioneventDescQuestionsCorrect is the schema descriptor for questions_correct field.
	lessoncompletioneventDescQuestionsCorrect := lessoncompletioneventFields[8].Descriptor()
	// lessoncompletionevent.DefaultQuestionsCorrect holds the default value on creation for the questions_correct field.
	lessoncompletionevent.DefaultQuestionsCorrect = lessoncompletioneventDescQuestionsCorrect.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
