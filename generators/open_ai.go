package generators

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/rlm/cmds"
	"github.com/reusee/rlm/debugs"
	"github.com/reusee/rlm/logs"
	"github.com/reusee/rlm/nets"
	"github.com/reusee/rlm/vars"
)

type OpenAI struct {
	args   GeneratorArgs
	apiKey string
	client nets.HTTPClient

	Count  dscope.Inject[BPETokenCounter]
	Logger dscope.Inject[logs.Logger]
	Tap    dscope.Inject[debugs.Tap]
}

var _ Generator = new(OpenAI)

var (
	temperatureFlag = cmds.Var[float32]("-temperature")
	debugOpenAI     = cmds.Switch("-debug-openai")
	tapOpenAI       = cmds.Switch("-tap-openai")
)

func (o *OpenAI) Args() GeneratorArgs {
	return o.args
}

func (o *OpenAI) CountTokens(text string) (int, error) {
	return o.Count()(text)
}

func (o *OpenAI) Complete(ctx context.Context, messages []Message) (string, error) {

	temperature := float32(0)
	if o.args.Temperature != nil {
		temperature = *o.args.Temperature
	}
	if *temperatureFlag != 0 {
		temperature = *temperatureFlag
	}

	req := ChatCompletionRequest{
		Model:               o.args.Model,
		Messages:            toChatMessages(messages),
		Stream:              true,
		ReasoningEffort:     o.args.ReasoningEffort,
		MaxCompletionTokens: vars.DerefOrZero(o.args.MaxCompletionTokens),
		Temperature:         temperature,
	}

	if o.args.IsOpenRouter && req.ReasoningEffort != "" {
		req.Reasoning = &Reasoning{
			Effort: req.ReasoningEffort,
		}
		req.ReasoningEffort = ""
	}

	if *tapOpenAI {
		o.Tap()(ctx, "before chat completion", map[string]any{
			"messages": messages,
			"args":     o.args,
		})
	}

	o.Logger().InfoContext(ctx, "completing",
		"model", o.args.Model,
		"messages", len(messages),
	)

	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, "POST", o.args.BaseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", OpenAIError{
			Err:     err,
			Request: req,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == nil {
			return "", OpenAIError{
				Err:     fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, string(body)),
				Request: req,
			}
		}
		errResp.Error.HTTPStatusCode = resp.StatusCode
		return "", OpenAIError{
			Err:     errResp.Error,
			Request: req,
		}
	}

	var content strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "data: [DONE]") {
			break
		}

		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := line[6:]

		var streamResp ChatCompletionStreamResponse
		if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
			return "", fmt.Errorf("error unmarshalling stream response: %w", err)
		}

		if *debugOpenAI {
			o.Logger().InfoContext(ctx, "stream response",
				"details", streamResp,
			)
		}

		if len(streamResp.Choices) == 0 {
			continue
		}
		choice := streamResp.Choices[0]
		content.WriteString(choice.Delta.Content)

		if reason := choice.FinishReason; reason != "" {
			if reason == "error" {
				return "", OpenAIError{
					Err:     errors.New("stream finished with error"),
					Request: req,
				}
			}
			if reason != "stop" {
				o.Logger().InfoContext(ctx, "finish reason",
					"reason", reason,
				)
			}
		}

	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error reading stream: %w", err)
	}

	return content.String(), nil
}

func toChatMessages(messages []Message) []ChatCompletionMessage {
	ret := make([]ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		ret = append(ret, ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Text,
		})
	}
	return ret
}

type NewOpenAI func(args GeneratorArgs, apiKey string) *OpenAI

func (Module) NewOpenAI(
	inject dscope.InjectStruct,
	client nets.HTTPClient,
) NewOpenAI {
	return func(args GeneratorArgs, apiKey string) *OpenAI {
		ret := &OpenAI{
			args:   args,
			client: client,
			apiKey: apiKey,
		}
		inject(&ret)
		return ret
	}
}

type ChatCompletionRequest struct {
	Model               string                  `json:"model"`
	Messages            []ChatCompletionMessage `json:"messages"`
	Stream              bool                    `json:"stream"`
	ReasoningEffort     string                  `json:"reasoning_effort,omitempty"`
	Reasoning           *Reasoning              `json:"reasoning,omitempty"`
	MaxCompletionTokens int                     `json:"max_completion_tokens,omitempty"`
	Temperature         float32                 `json:"temperature"`
}

type Reasoning struct {
	Effort    string `json:"effort,omitempty"`
	MaxTokens int    `json:"max_tokens,omitempty"`
	Exclude   bool   `json:"exclude,omitempty"`
	Enabled   bool   `json:"enabled,omitempty"`
}

type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionStreamResponse struct {
	Choices []ChatCompletionStreamChoice `json:"choices"`
}

type ChatCompletionStreamChoice struct {
	Delta        ChatCompletionStreamChoiceDelta `json:"delta"`
	FinishReason string                          `json:"finish_reason"`
}

type ChatCompletionStreamChoiceDelta struct {
	Content          string `json:"content,omitempty"`
	Role             string `json:"role,omitempty"`
	ReasoningContent string `json:"reasoning_content,omitempty"`
}

type ErrorResponse struct {
	Error *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code           any     `json:"code,omitempty"`
	Message        string  `json:"message,omitempty"`
	Param          *string `json:"param,omitempty"`
	Type           string  `json:"type,omitempty"`
	HTTPStatusCode int     `json:"-"`
}

func (e *APIError) Error() string {
	return e.Message
}
