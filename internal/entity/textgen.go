package entity

// Chat-completions wire types for the text-generation service.

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model     string        `json:"model"`
	Messages  []ChatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []ChatChoice `json:"choices"`
}

type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

// Image-search wire types.

type ImageSearchResponse struct {
	Results []ImageSearchResult `json:"results"`
}

type ImageSearchResult struct {
	URLs ImageURLs `json:"urls"`
}

type ImageURLs struct {
	Raw string `json:"raw"`
}
