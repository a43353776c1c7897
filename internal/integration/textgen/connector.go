package textgen

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/futig/sitegen-backend/internal/config"
	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/futig/sitegen-backend/internal/integration/common"
	pkghttp "github.com/futig/sitegen-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.TextGenConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.TextGenConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Generate issues one chat-completion request and returns the generated text.
func (c *Connector) Generate(ctx context.Context, prompt string, hint entity.ModelHint) (string, error) {
	model := c.model(hint)

	ctxzap.Debug(ctx, "generating text",
		zap.String("model", model),
		zap.Int("prompt_length", len(prompt)),
	)

	req := entity.ChatCompletionRequest{
		Model: model,
		Messages: []entity.ChatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens: c.config.MaxTokens,
	}

	var resp entity.ChatCompletionResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, c.config.CompletionsEndpoint, req, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", entity.ErrEmptyGeneration
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)

	ctxzap.Debug(ctx, "text generated", zap.Int("result_length", len(text)))

	return text, nil
}

func (c *Connector) model(hint entity.ModelHint) string {
	if hint == entity.ModelHintStyle && c.config.StyleModel != "" {
		return c.config.StyleModel
	}
	return c.config.ContentModel
}
