package common

type NotificationType string

const (
	MessageType NotificationType = "message"
	MentionType NotificationType = "mention"
	SystemType  NotificationType = "system"
)

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	switch t {
	case MessageType, MentionType, SystemType:
		return true
	}
	return false
}

// Participated is anything that has a set of users allowed to see it.
type Participated interface {
	Participants() []string
}

// Conversation is the unordered pair of users exchanging messages. Never stored.
type Conversation struct {
	UserA string `json:"user_a"`
	UserB string `json:"user_b"`
}

func (c Conversation) Participants() []string {
	return []string{c.UserA, c.UserB}
}

// Includes reports whether the pair is exactly {a, b} in either order.
func (c Conversation) Includes(a, b string) bool {
	return (c.UserA == a && c.UserB == b) || (c.UserA == b && c.UserB == a)
}

func IsParticipant(obj Participated, userID string) bool {
	if obj == nil || userID == "" {
		return false
	}
	for _, id := range obj.Participants() {
		if id == userID {
			return true
		}
	}
	return false
}
