package generators

type GeneratorArgs struct {
	BaseURL             string   `json:"base_url"`
	APIKey              string   `json:"api_key"`
	Model               string   `json:"model"`
	MaxCompletionTokens *int     `json:"max_completion_tokens"`
	Temperature         *float32 `json:"temperature"`
	ReasoningEffort     string   `json:"reasoning_effort"`
	IsOpenRouter        bool     `json:"is_open_router"`
}
