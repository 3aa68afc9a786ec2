package constants

// Discord constants
const (
	// DiscordMaxMessageLength is the maximum character limit for Discord messages
	DiscordMaxMessageLength = 2000

	// DiscordMaxEmbedDescription is the maximum length of an embed description
	DiscordMaxEmbedDescription = 4096

	// DiscordMaxSelectOptions is the most options a select menu may carry
	DiscordMaxSelectOptions = 25

	// DefaultCommandPrefix starts every bot command
	DefaultCommandPrefix = "!tools"

	// MaxBrowseSessions bounds the grid views kept for interactive messages.
	// The oldest view is dropped first.
	MaxBrowseSessions = 500
)

// Related tools constants
const (
	// DefaultRelatedLimit is used when no limit is requested
	DefaultRelatedLimit = 4

	// MaxRelatedLimit caps the limit accepted by the HTTP API
	MaxRelatedLimit = 50
)
