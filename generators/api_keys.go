package generators

import (
	"os"

	"github.com/reusee/rlm/configs"
	"github.com/reusee/rlm/vars"
)

type (
	OpenAIAPIKey     string
	GroqAPIKey       string
	DeepseekAPIKey   string
	OpenRouterAPIKey string
)

func (OpenAIAPIKey) StarlarkConfigurable() {}

func (GroqAPIKey) StarlarkConfigurable() {}

func (DeepseekAPIKey) StarlarkConfigurable() {}

func (OpenRouterAPIKey) StarlarkConfigurable() {}

var (
	_ configs.Configurable = OpenAIAPIKey("")
	_ configs.Configurable = GroqAPIKey("")
	_ configs.Configurable = DeepseekAPIKey("")
	_ configs.Configurable = OpenRouterAPIKey("")
)

func (Module) OpenAIAPIKey(
	loader configs.Loader,
) OpenAIAPIKey {
	return vars.FirstNonZero(
		configs.First[OpenAIAPIKey](loader, "openai_api_key"),
		OpenAIAPIKey(os.Getenv("OPENAI_API_KEY")),
	)
}

func (Module) GroqAPIKey(
	loader configs.Loader,
) GroqAPIKey {
	return vars.FirstNonZero(
		configs.First[GroqAPIKey](loader, "groq_api_key"),
		GroqAPIKey(os.Getenv("GROQ_API_KEY")),
	)
}

func (Module) DeepseekAPIKey(
	loader configs.Loader,
) DeepseekAPIKey {
	return vars.FirstNonZero(
		configs.First[DeepseekAPIKey](loader, "deepseek_api_key"),
		DeepseekAPIKey(os.Getenv("DEEPSEEK_API_KEY")),
	)
}

func (Module) OpenRouterAPIKey(
	loader configs.Loader,
) OpenRouterAPIKey {
	return vars.FirstNonZero(
		configs.First[OpenRouterAPIKey](loader, "open_router_api_key"),
		configs.First[OpenRouterAPIKey](loader, "openrouter_api_key"),
		OpenRouterAPIKey(os.Getenv("OPEN_ROUTER_API_KEY")),
		OpenRouterAPIKey(os.Getenv("OPENROUTER_API_KEY")),
	)
}
