// internal/app/system/limits/limits.go
package limits

// Request body size limits.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// DefaultMaxJSONBody is the default cap on a JSON request body.
	DefaultMaxJSONBody = 1 << 20 // 1 MB

	// MaxUserStories caps the stories embedded in one session so a single
	// create stays well below Mongo's 16 MB document limit.
	MaxUserStories = 500

	// MaxVotesPerStory caps the votes embedded in one story.
	MaxVotesPerStory = 200

	// MaxDurationMinutes is the longest session accepted. It keeps the
	// stored duration within a 32-bit integer.
	MaxDurationMinutes = 1<<31 - 1
)
