package capability

import "context"

// Kind identifies the class of a capability.
type Kind string

const (
	KindResource Kind = "resource"
	KindTool     Kind = "tool"
	KindPrompt   Kind = "prompt"
)

// Param declares a single named parameter of a capability.
type Param struct {
	Name        string
	Type        string // JSON Schema type, e.g. "string", "number"
	Description string
	Required    bool
	Default     interface{} // substituted when an optional parameter is absent
}

// ParamSpec is the ordered parameter declaration of a capability.
type ParamSpec []Param

// Invocation carries the validated input of a single dispatch to a handler.
type Invocation struct {
	// Args holds the validated arguments with defaults already substituted.
	Args map[string]interface{}
	// URI is the addressing URI of the request. Set for resources only.
	URI string
}

// HandlerFunc executes a capability. The dispatcher invokes it synchronously
// and waits for completion; handlers are free to block on I/O internally.
type HandlerFunc func(ctx context.Context, inv Invocation) (Result, error)

// Content is a single ordered content item of a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Message is a single conversational message of a prompt result.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Result is the outcome of a successful dispatch. Which fields are populated
// depends on the capability kind: tools fill Content and IsError, prompts
// fill Description and Messages, resources fill URI, MIMEType and Text.
type Result struct {
	// Tool fields
	Content []Content
	IsError bool

	// Prompt fields
	Description string
	Messages    []Message

	// Resource fields
	URI      string
	MIMEType string
	Text     string
}

// TextResult builds a successful tool or prompt content result.
func TextResult(text string) Result {
	return Result{
		Content: []Content{{Type: "text", Text: text}},
	}
}

// ErrorResult builds an in-band tool error result.
func ErrorResult(text string) Result {
	return Result{
		Content: []Content{{Type: "text", Text: text}},
		IsError: true,
	}
}

// ResourceResult builds a resource result for the given URI.
func ResourceResult(uri, mimeType, text string) Result {
	return Result{
		URI:      uri,
		MIMEType: mimeType,
		Text:     text,
	}
}

// PromptResult builds a prompt result from ordered messages.
func PromptResult(description string, messages ...Message) Result {
	return Result{
		Description: description,
		Messages:    messages,
	}
}

// Definition describes a single registered capability. Definitions are
// created once at startup and are immutable afterwards; the registry is
// their sole owner.
type Definition struct {
	Kind        Kind
	Name        string
	Description string

	// URI and MIMEType apply to resources only.
	URI      string
	MIMEType string

	Params  ParamSpec
	Handler HandlerFunc
}
