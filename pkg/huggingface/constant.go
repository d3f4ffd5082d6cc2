package huggingface

import "time"

const (
	// DefaultModel is the default text-generation model
	DefaultModel = "HuggingFaceH4/zephyr-7b-beta"

	// DefaultBaseURL is the serverless inference endpoint; the model id is appended
	DefaultBaseURL = "https://api-inference.huggingface.co/models"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// DefaultMaxNewTokens caps generated output length
	DefaultMaxNewTokens = 1024
)

// Output formats the inference API is known to return.
const (
	FormatGeneratedText = "generated_text"
	FormatSummaryText   = "summary_text"
)
