package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/waldcafe/wald/internal/common"
	"github.com/waldcafe/wald/internal/llm"
)

// LoadLLMConfig loads the AI provider configuration. The API key may
// come from config, WALD_OPENAI_API_KEY, or OPENAI_API_KEY.
func LoadLLMConfig() (llm.Config, error) {
	config := llm.Config{
		Provider:    viper.GetString("openai.provider"),
		APIKey:      viper.GetString("openai.api_key"),
		Model:       viper.GetString("openai.model"),
		Temperature: viper.GetFloat64("openai.temperature"),
		MaxTokens:   viper.GetInt("openai.max_tokens"),
	}

	if config.APIKey == "" {
		config.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if config.APIKey == "" {
		return llm.Config{}, fmt.Errorf("%w: openai.api_key (or OPENAI_API_KEY)", common.ErrMissingConfig)
	}

	return config, nil
}
