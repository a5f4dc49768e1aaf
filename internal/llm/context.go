package llm

import "context"

type contextKey string

const ctxKeyPurpose contextKey = "llm_purpose"

// WithPurpose labels the context so the event log can tell what a
// request was for (e.g. "coach-note").
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, ctxKeyPurpose, purpose)
}

// PurposeFrom reads the purpose label back, or "unknown" when unset.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyPurpose).(string); ok {
		return v
	}
	return "unknown"
}
