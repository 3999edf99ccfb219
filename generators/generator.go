package generators

import (
	"context"
	"fmt"
	"strings"

	"github.com/reusee/rlm/vars"
)

type Generator interface {
	Args() GeneratorArgs
	CountTokens(string) (int, error)
	Complete(ctx context.Context, messages []Message) (string, error)
}

type GetGenerator func(name string) (Generator, error)

func (Module) GetGenerator(
	newOpenAI NewOpenAI,
	newGroq NewGroq,
	newOllama NewOllama,
	newDeepseek NewDeepseek,
	newOpenRouter NewOpenRouter,
	getSpecs GetGeneratorSpecs,
	openAIKey OpenAIAPIKey,
	maxTokens DefaultMaxCompletionTokens,
) GetGenerator {

	withDefaults := func(args GeneratorArgs) GeneratorArgs {
		if args.MaxCompletionTokens == nil && maxTokens > 0 {
			args.MaxCompletionTokens = vars.PtrTo(int(maxTokens))
		}
		return args
	}

	return func(name string) (Generator, error) {

		// user-defined first
		specs, err := getSpecs()
		if err != nil {
			return nil, err
		}
		for _, spec := range specs {
			if spec.Name != name {
				continue
			}
			switch strings.ToLower(spec.Type) {
			case "openai", "open-ai", "open_ai":
				return newOpenAI(withDefaults(spec.GeneratorArgs), spec.APIKey), nil
			case "groq":
				return newGroq(withDefaults(spec.GeneratorArgs)), nil
			case "ollama":
				return newOllama(withDefaults(spec.GeneratorArgs)), nil
			case "deepseek":
				return newDeepseek(withDefaults(spec.GeneratorArgs)), nil
			case "open-router", "open_router", "openrouter":
				return newOpenRouter(withDefaults(spec.GeneratorArgs)), nil
			default:
				return nil, fmt.Errorf("unknown generator type: %q", spec.Type)
			}
		}

		// provider/model names, model part may contain slashes or tags
		provider, modelName, ok := strings.Cut(name, "/")
		if ok {
			switch provider {
			case "openai":
				return newOpenAI(withDefaults(GeneratorArgs{
					BaseURL: "https://api.openai.com/v1",
					Model:   modelName,
				}), string(openAIKey)), nil
			case "groq":
				return newGroq(withDefaults(GeneratorArgs{
					Model: modelName,
				})), nil
			case "ollama", "ollama_chat":
				return newOllama(withDefaults(GeneratorArgs{
					Model: modelName,
				})), nil
			case "deepseek":
				return newDeepseek(withDefaults(GeneratorArgs{
					Model: modelName,
				})), nil
			case "openrouter":
				return newOpenRouter(withDefaults(GeneratorArgs{
					Model: modelName,
				})), nil
			}
		}

		return nil, fmt.Errorf("invalid model: %s", name)
	}
}
