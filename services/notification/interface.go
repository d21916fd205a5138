package notification

import "context"

// Publisher is the real-time notification primitive injected into the
// booking service. Implementations deliver fire-and-forget payloads to a
// named channel; callers do not wait for delivery confirmation.
type Publisher interface {
	Publish(ctx context.Context, channel string, payload any) error
}

// ChannelForUser returns the per-user notification channel name.
func ChannelForUser(userID string) string {
	return "notification" + userID
}
