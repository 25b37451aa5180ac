// Package api provides a typed HTTP client for the douban-bot daemon API.
//
// Every endpoint answers with the uniform envelope
//
//	{"success": bool, "data": ..., "error": ..., "pagination": ...}
//
// which the client unwraps: success=false becomes *api.Error carrying the
// backend's message, while network failures, unexpected HTTP statuses and
// malformed JSON are plain wrapped errors. Callers separate the two with
// errors.As.
//
// The backend's field naming drifted between snake_case and camelCase across
// revisions; the view-model types in types.go accept both spellings so the
// rest of the console works against a single schema.
//
// Write-only secret fields (crawler cookie, LLM API key) are modeled with the
// Secret type: a request serializes the field only when the operator supplied
// a new value, because an absent field means "keep the stored value" on the
// backend.
//
// The client never retries and imposes no timeout of its own. Requests honor
// context cancellation; callers who need a deadline wrap the context.
package api
