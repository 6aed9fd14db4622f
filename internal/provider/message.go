package provider

import "encoding/json"

// Role identifies the author of a message in the conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single backend-neutral chat message.
type Message struct {
	Role    Role
	Content string

	// Set on assistant messages that request tool execution.
	ToolCalls []ToolCall

	// Set on tool messages: the call being answered and the tool that answered it.
	ToolCallID string
	Name       string
}

// HasToolCalls reports whether the message asks for at least one tool execution.
func (m Message) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}

// ToolCall is a model-issued request to run a declared tool.
type ToolCall struct {
	ID       string
	Function FunctionCall
}

// FunctionCall names the tool and carries its JSON-encoded arguments.
type FunctionCall struct {
	Name      string
	Arguments json.RawMessage
}
