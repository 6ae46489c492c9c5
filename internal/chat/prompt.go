package chat

import "strings"

// promptSeparator is placed between rendered messages.
const promptSeparator = "\n\n"

// RenderPrompt flattens a conversation into the single prompt string sent upstream.
// System content is kept verbatim, user and assistant content gets a role label.
// Messages with an unknown role are kept verbatim as well.
func RenderPrompt(messages []Message) string {
	parts := make([]string, 0, len(messages))
	for _, msg := range messages {
		parts = append(parts, renderMessage(msg))
	}
	return strings.Join(parts, promptSeparator)
}

func renderMessage(msg Message) string {
	switch msg.Role {
	case RoleUser:
		return "User: " + msg.Content
	case RoleAssistant:
		return "Assistant: " + msg.Content
	default:
		return msg.Content
	}
}
