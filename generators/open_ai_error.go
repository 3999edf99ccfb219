package generators

// OpenAIError pairs a failed chat completion with the request that
// produced it.
type OpenAIError struct {
	Err     error
	Request ChatCompletionRequest
}

var _ error = OpenAIError{}

func (o OpenAIError) Error() string {
	return o.Err.Error()
}

func (o OpenAIError) Unwrap() error {
	return o.Err
}
