package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"

	"github.com/tickertalk/tickertalk/internal/schema"
)

// BedrockClient implements schema.ModelClient against the AWS Bedrock
// Converse API.
type BedrockClient struct {
	client  *bedrockruntime.Client
	timeout time.Duration
}

// NewBedrockClient builds a client from the default AWS credential chain.
// timeout 0 means no per-call deadline.
func NewBedrockClient(ctx context.Context, region string, timeout time.Duration) (*BedrockClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &BedrockClient{
		client:  bedrockruntime.NewFromConfig(cfg),
		timeout: timeout,
	}, nil
}

// Chat implements schema.ModelClient.
func (c *BedrockClient) Chat(
	ctx context.Context,
	system string,
	history schema.Messages,
	tools []schema.ToolSpec,
	opts schema.ChatOptions,
) (schema.ModelResponse, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	messages, err := toConverseMessages(history)
	if err != nil {
		return schema.ModelResponse{}, err
	}

	input := &bedrockruntime.ConverseInput{
		ModelId:  aws.String(opts.Model),
		Messages: messages,
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:     aws.Int32(int32(opts.MaxTokens)),
			Temperature:   aws.Float32(float32(opts.Temperature)),
			TopP:          aws.Float32(float32(opts.TopP)),
			StopSequences: opts.StopSequences,
		},
	}
	if system != "" {
		input.System = []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: system},
		}
	}
	if len(tools) > 0 {
		toolConfig, err := toConverseToolConfig(tools)
		if err != nil {
			return schema.ModelResponse{}, err
		}
		input.ToolConfig = toolConfig
	}

	out, err := c.client.Converse(ctx, input)
	if err != nil {
		return schema.ModelResponse{}, fmt.Errorf("bedrock converse: %w", err)
	}

	return fromConverseOutput(out)
}

// toConverseMessages converts the typed history into Converse union types.
func toConverseMessages(history schema.Messages) ([]types.Message, error) {
	out := make([]types.Message, 0, len(history.Messages))
	for _, msg := range history.Messages {
		blocks := make([]types.ContentBlock, 0, len(msg.Content))
		for _, b := range msg.Content {
			switch b.Kind {
			case schema.BlockText:
				blocks = append(blocks, &types.ContentBlockMemberText{Value: b.Text})

			case schema.BlockToolUse:
				blocks = append(blocks, &types.ContentBlockMemberToolUse{
					Value: types.ToolUseBlock{
						ToolUseId: aws.String(b.ToolUse.ID),
						Name:      aws.String(b.ToolUse.Name),
						Input:     document.NewLazyDocument(b.ToolUse.Input),
					},
				})

			case schema.BlockToolResult:
				result := types.ToolResultBlock{
					ToolUseId: aws.String(b.ToolResult.ID),
					Status:    types.ToolResultStatusSuccess,
				}
				if b.ToolResult.Status == schema.StatusError {
					result.Status = types.ToolResultStatusError
					result.Content = []types.ToolResultContentBlock{
						&types.ToolResultContentBlockMemberText{Value: anyToString(b.ToolResult.Content)},
					}
				} else {
					result.Content = []types.ToolResultContentBlock{
						&types.ToolResultContentBlockMemberJson{Value: document.NewLazyDocument(b.ToolResult.Content)},
					}
				}
				blocks = append(blocks, &types.ContentBlockMemberToolResult{Value: result})
			}
		}
		out = append(out, types.Message{
			Role:    types.ConversationRole(msg.Role),
			Content: blocks,
		})
	}
	return out, nil
}

// toConverseToolConfig converts advertised specs into the Converse tool
// configuration. Input schemas travel as smithy JSON documents.
func toConverseToolConfig(tools []schema.ToolSpec) (*types.ToolConfiguration, error) {
	out := make([]types.Tool, 0, len(tools))
	for _, t := range tools {
		var schemaDoc map[string]any
		if err := json.Unmarshal(t.InputSchema, &schemaDoc); err != nil {
			return nil, fmt.Errorf("tool %s: invalid input schema: %w", t.Name, err)
		}
		out = append(out, &types.ToolMemberToolSpec{
			Value: types.ToolSpecification{
				Name:        aws.String(t.Name),
				Description: aws.String(t.Description),
				InputSchema: &types.ToolInputSchemaMemberJson{
					Value: document.NewLazyDocument(schemaDoc),
				},
			},
		})
	}
	return &types.ToolConfiguration{Tools: out}, nil
}

// fromConverseOutput converts a Converse response into the normalised form.
func fromConverseOutput(out *bedrockruntime.ConverseOutput) (schema.ModelResponse, error) {
	outMsg, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return schema.ModelResponse{}, fmt.Errorf("bedrock converse: unexpected output type %T", out.Output)
	}

	msg := schema.Message{Role: schema.Role(outMsg.Value.Role)}
	for _, cb := range outMsg.Value.Content {
		switch b := cb.(type) {
		case *types.ContentBlockMemberText:
			msg.Content = append(msg.Content, schema.NewTextBlock(b.Value))

		case *types.ContentBlockMemberToolUse:
			input := map[string]any{}
			if b.Value.Input != nil {
				if err := b.Value.Input.UnmarshalSmithyDocument(&input); err != nil {
					return schema.ModelResponse{}, fmt.Errorf("decode tool input for %s: %w", aws.ToString(b.Value.Name), err)
				}
			}
			msg.Content = append(msg.Content, schema.NewToolUseBlock(
				aws.ToString(b.Value.ToolUseId),
				aws.ToString(b.Value.Name),
				input,
			))
		}
	}

	usage := map[string]int{}
	if out.Usage != nil {
		usage["input_tokens"] = int(aws.ToInt32(out.Usage.InputTokens))
		usage["output_tokens"] = int(aws.ToInt32(out.Usage.OutputTokens))
	}

	return schema.ModelResponse{
		Message:    msg,
		StopReason: schema.StopReason(out.StopReason),
		Usage:      usage,
	}, nil
}
