package imagesearch

import (
	"context"
	"fmt"
	"net/url"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns deterministic photo URLs for local development.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Search(ctx context.Context, keywords, orientation string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] searching image", zap.String("keywords", keywords))

	return fmt.Sprintf("https://images.example.com/photo?topic=%s&orientation=%s",
		url.QueryEscape(keywords), url.QueryEscape(orientation)), nil
}
