package generators

import (
	"github.com/tiktoken-go/tokenizer"
)

type TokenCounter = func(text string) (int, error)

// BPETokenCounter counts tokens with the o200k_base encoding. The count
// is an estimate for non OpenAI models, good enough for history size
// reporting.
type BPETokenCounter TokenCounter

func (Module) BPETokenCounter() BPETokenCounter {
	enc, err := tokenizer.Get(tokenizer.O200kBase)
	if err != nil {
		return func(string) (int, error) {
			return 0, err
		}
	}

	return func(text string) (int, error) {
		n, err := enc.Count(text)
		if err != nil {
			return 0, err
		}
		return n, nil
	}
}
