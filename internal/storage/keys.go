package storage

// Key scheme. Collection keys hold the complete set as of the most
// recent successful sync; per-id keys are idempotently overwritten.
// There is no deletion path, so entities removed upstream remain
// stale under their keys indefinitely.
const (
	KeyAudiences  = "audiences"
	KeyBroadcasts = "broadcasts"
	KeyEmails     = "emails"
	KeyCursor     = "last_email_id"
)

func AudienceKey(id string) string { return "audience_" + id }

func BroadcastKey(id string) string { return "broadcast_" + id }

// BroadcastInfoKey holds the broadcast detail with its html/text.
func BroadcastInfoKey(id string) string { return "broadcast_" + id + "_info" }

// BroadcastMarkdownKey holds the derived markdown artifact.
func BroadcastMarkdownKey(id string) string { return "broadcast_" + id + "_info_md" }

func EmailKey(id string) string { return "email_" + id }
