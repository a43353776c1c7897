package imagesearch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/futig/sitegen-backend/internal/config"
	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/futig/sitegen-backend/internal/integration/common"
	pkghttp "github.com/futig/sitegen-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.ImageSearchConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.ImageSearchConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Search returns the base URL of one photo matching the keywords and
// orientation. The pipeline appends explicit size/crop arguments itself.
func (c *Connector) Search(ctx context.Context, keywords, orientation string) (string, error) {
	ctxzap.Debug(ctx, "searching image",
		zap.String("keywords", keywords),
		zap.String("orientation", orientation),
	)

	endpoint := fmt.Sprintf("%s?query=%s&orientation=%s&per_page=1",
		c.config.SearchEndpoint, url.QueryEscape(keywords), url.QueryEscape(orientation))

	var resp entity.ImageSearchResponse
	if err := c.connector.DoRequest(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrImageLookupFailed, err)
	}

	if len(resp.Results) == 0 || resp.Results[0].URLs.Raw == "" {
		return "", fmt.Errorf("%w: no results for %q", entity.ErrImageLookupFailed, keywords)
	}

	return resp.Results[0].URLs.Raw, nil
}
