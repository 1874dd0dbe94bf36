package schema

// Role identifies the author of a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// BlockKind discriminates the variants of ContentBlock.
type BlockKind string

const (
	BlockText       BlockKind = "text"
	BlockToolUse    BlockKind = "tool_use"
	BlockToolResult BlockKind = "tool_result"
)

// ContentBlock is one block in a message. It is a closed tagged variant:
// exactly one of Text, ToolUse, or ToolResult is meaningful, selected by Kind.
// Code consuming blocks switches on Kind exhaustively so a new kind cannot
// silently fall through.
type ContentBlock struct {
	Kind       BlockKind
	Text       string           // Kind == BlockText
	ToolUse    *ToolUseBlock    // Kind == BlockToolUse
	ToolResult *ToolResultBlock // Kind == BlockToolResult
}

// ToolUseBlock is a model request to run a named tool. Input is untyped at
// the protocol boundary; executors coerce and validate every argument.
type ToolUseBlock struct {
	ID    string
	Name  string
	Input map[string]any
}

// ToolResultBlock is the correlated reply to one ToolUseBlock.
type ToolResultBlock struct {
	ID      string
	Status  OutcomeStatus
	Content any // structured result on success, message string on error
}

func NewTextBlock(text string) ContentBlock {
	return ContentBlock{Kind: BlockText, Text: text}
}

func NewToolUseBlock(id, name string, input map[string]any) ContentBlock {
	return ContentBlock{Kind: BlockToolUse, ToolUse: &ToolUseBlock{ID: id, Name: name, Input: input}}
}

func NewToolResultBlock(result ToolResultBlock) ContentBlock {
	r := result
	return ContentBlock{Kind: BlockToolResult, ToolResult: &r}
}

// Message is one entry in the conversation history: a role plus an ordered
// sequence of content blocks.
type Message struct {
	Role    Role
	Content []ContentBlock
}

// NewUserMessage returns a user message with a single text block.
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Content: []ContentBlock{NewTextBlock(text)}}
}

// NewToolResultMessage wraps tool outcomes into the user message that answers
// one assistant turn. Every ToolUse id of that turn appears exactly once.
func NewToolResultMessage(results []ToolResultBlock) Message {
	blocks := make([]ContentBlock, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, NewToolResultBlock(r))
	}
	return Message{Role: RoleUser, Content: blocks}
}
