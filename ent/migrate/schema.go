// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementEventsColumns holds the columns for the "achievement_events" table.
	AchievementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeString},
		{Name: "icon", Type: field.TypeString, Default: ""},
		{Name: "milestone", Type: field.TypeInt, Default: 0},
	}
	// AchievementEventsTable holds the schema information for the "achievement_events" table.
	AchievementEventsTable = &schema.Table{
		Name:       "achievement_events",
		Columns:    AchievementEventsColumns,
		PrimaryKey: []*schema.Column{AchievementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[1]},
			},
			{
				Name:    "achievementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[2]},
			},
			{
				Name:    "achievementevent_title",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[3]},
			},
			{
				Name:    "achievementevent_category",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[5]},
			},
		},
	}
	// CourseEventsColumns holds the columns for the "course_events" table.
	CourseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "course_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
	}
	// CourseEventsTable holds the schema information for the "course_events" table.
	CourseEventsTable = &schema.Table{
		Name:       "course_events",
		Columns:    CourseEventsColumns,
		PrimaryKey: []*schema.Column{CourseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "courseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CourseEventsColumns[1]},
			},
			{
				Name:    "courseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CourseEventsColumns[2]},
			},
			{
				Name:    "courseevent_course_id",
				Unique:  false,
				Columns: []*schema.Column{CourseEventsColumns[3]},
			},
			{
				Name:    "courseevent_action",
				Unique:  false,
				Columns: []*schema.Column{CourseEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonCompletionEventsColumns holds the columns for the "lesson_completion_events" table.
	LessonCompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "time_spent_minutes", Type: field.TypeInt, Default: 0},
		{Name: "questions_total", Type: field.TypeInt, Default: 0},
		{Name: "questions_correct", Type: field.TypeInt, Default: 0},
	}
	// LessonCompletionEventsTable holds the schema information for the "lesson_completion_events" table.
	LessonCompletionEventsTable = &schema.Table{
		Name:       "lesson_completion_events",
		Columns:    LessonCompletionEventsColumns,
		PrimaryKey: []*schema.Column{LessonCompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessoncompletionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonCompletionEventsColumns[1]},
			},
			{
				Name:    "lessoncompletionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonCompletionEventsColumns[2]},
			},
			{
				Name:    "lessoncompletionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{LessonCompletionEventsColumns[3]},
			},
			{
				Name:    "lessoncompletionevent_course_id",
				Unique:  false,
				Columns: []*schema.Column{LessonCompletionEventsColumns[5]},
			},
			{
				Name:    "lessoncompletionevent_category",
				Unique:  false,
				Columns: []*schema.Column{LessonCompletionEventsColumns[6]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementEventsTable,
		CourseEventsTable,
		LlmRequestEventsTable,
		LessonCompletionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
