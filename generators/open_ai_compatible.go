package generators

import (
	"github.com/reusee/rlm/configs"
	"github.com/reusee/rlm/vars"
)

type NewGroq func(args GeneratorArgs) *OpenAI

func (Module) NewGroq(
	apiKey GroqAPIKey,
	newOpenAI NewOpenAI,
) NewGroq {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = "https://api.groq.com/openai/v1"
		return newOpenAI(
			args,
			vars.FirstNonZero(
				args.APIKey,
				string(apiKey),
			),
		)
	}
}

type NewOllama func(args GeneratorArgs) *OpenAI

func (Module) NewOllama(
	newOpenAI NewOpenAI,
	loader configs.Loader,
) NewOllama {
	return func(args GeneratorArgs) *OpenAI {
		if endpoint := configs.First[string](loader, "ollama_endpoint"); endpoint != "" {
			args.BaseURL = endpoint
		} else {
			args.BaseURL = "http://127.0.0.1:11434/v1"
		}
		return newOpenAI(args, "")
	}
}

type NewDeepseek func(args GeneratorArgs) *OpenAI

func (Module) NewDeepseek(
	apiKey DeepseekAPIKey,
	newOpenAI NewOpenAI,
) NewDeepseek {
	return func(args GeneratorArgs) *OpenAI {
		args.BaseURL = "https://api.deepseek.com"
		return newOpenAI(
			args,
			vars.FirstNonZero(
				args.APIKey,
				string(apiKey),
			),
		)
	}
}

type NewOpenRouter func(args GeneratorArgs) *OpenAI

func (Module) NewOpenRouter(
	newOpenAI NewOpenAI,
	apiKey OpenRouterAPIKey,
	loader configs.Loader,
) NewOpenRouter {
	return func(args GeneratorArgs) *OpenAI {
		if endpoint := configs.First[string](loader, "openrouter_endpoint"); endpoint != "" {
			args.BaseURL = endpoint
		} else {
			args.BaseURL = "https://openrouter.ai/api/v1"
		}
		args.IsOpenRouter = true
		return newOpenAI(
			args,
			vars.FirstNonZero(
				args.APIKey,
				string(apiKey),
			),
		)
	}
}
