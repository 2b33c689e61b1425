package imagegen

const (
	ProviderOpenAI      = "openai"
	ProviderPlaceholder = "placeholder"
)

type ImageRequest struct {
	Prompt   string `json:"prompt"`
	Provider string `json:"provider,omitempty"`
}

type ImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
