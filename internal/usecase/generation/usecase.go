package generation

import (
	"context"
	"fmt"
	"strings"

	retrygo "github.com/avast/retry-go/v4"
	"github.com/futig/sitegen-backend/internal/entity"
	"github.com/futig/sitegen-backend/internal/pkg/assets"
	"github.com/futig/sitegen-backend/internal/pkg/bundle"
	"github.com/futig/sitegen-backend/internal/pkg/category"
	"github.com/futig/sitegen-backend/internal/pkg/contact"
	"github.com/futig/sitegen-backend/internal/pkg/markup"
	"github.com/futig/sitegen-backend/internal/pkg/postprocess"
	"github.com/futig/sitegen-backend/internal/pkg/prompts"
	"github.com/futig/sitegen-backend/internal/pkg/retry"
	"github.com/futig/sitegen-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const businessPageFilename = "index.html"

// GenerationUsecase runs the site-generation pipelines: description in,
// all-or-nothing bundle out.
type GenerationUsecase struct {
	textGen       TextGenerator
	imageSearcher postprocess.Searcher
	retryCfg      *retry.RetryConfig
	logger        *zap.Logger
}

// NewUsecase creates a new generation use case. A nil imageSearcher disables
// image resolution: bundles keep their placeholder directives.
func NewUsecase(
	textGen TextGenerator,
	imageSearcher postprocess.Searcher,
	retryCfg *retry.RetryConfig,
	logger *zap.Logger,
) *GenerationUsecase {
	if retryCfg == nil {
		retryCfg = retry.DefaultRetryConfig()
	}
	return &GenerationUsecase{
		textGen:       textGen,
		imageSearcher: imageSearcher,
		retryCfg:      retryCfg,
		logger:        logger,
	}
}

// GenerateSite runs the multi-page pipeline: plan the site, generate every
// page concurrently, post-process the page set, then generate the stylesheet.
// Any fatal step aborts the whole build; no partial bundle is ever returned.
func (uc *GenerationUsecase) GenerateSite(ctx context.Context, req *entity.GenerationRequest) (*entity.SiteBundle, error) {
	if err := validator.ValidateGenerationRequest(req); err != nil {
		return nil, err
	}

	info, businessName := contact.Extract(req.Description)
	cat := category.Detect(req.Description)
	filenames := bundle.Filenames(req.PageCount)

	ctxzap.Info(ctx, "starting site generation",
		zap.Int("page_count", req.PageCount),
		zap.String("category", string(cat)),
		zap.Bool("has_contact_info", info.HasAny()),
	)

	// The plan is generated exactly once. A failed plan fails the build:
	// pages generated against different plans would not form one site.
	planText, err := uc.textGen.Generate(ctx, prompts.SitePlan(req.Description, req.PageCount, cat), entity.ModelHintContent)
	if err != nil {
		return nil, fmt.Errorf("generate site plan: %w", err)
	}
	plan := entity.SitePlan(markup.StripFences(planText))

	pages, err := uc.generatePages(ctx, plan, filenames, cat)
	if err != nil {
		return nil, err
	}

	pages, err = uc.postProcess(ctx, pages, filenames, info, businessName)
	if err != nil {
		return nil, err
	}

	css, err := uc.generateStylesheet(ctx, pages)
	if err != nil {
		return nil, err
	}

	b, err := bundle.Assemble(filenames, pages, css, assets.SharedScript)
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "site generated successfully", zap.Int("page_count", len(b.Pages)))

	return b, nil
}

// generatePages fans out one generation call per page. Each page retries
// exactly once on upstream failure; a page failing both attempts aborts the
// whole fan-out.
func (uc *GenerationUsecase) generatePages(
	ctx context.Context,
	plan entity.SitePlan,
	filenames []string,
	cat category.Category,
) ([]string, error) {
	pages := make([]string, len(filenames))

	g, gctx := errgroup.WithContext(ctx)
	for i := range filenames {
		g.Go(func() error {
			opts := append(uc.retryCfg.ToRetryOptions(), retrygo.Context(gctx))

			fragment, err := retrygo.DoWithData(func() (string, error) {
				return uc.generatePageFragment(gctx, plan, i, filenames, cat)
			}, opts...)
			if err != nil {
				return fmt.Errorf("generate %s: %w", filenames[i], err)
			}

			pages[i] = markup.WrapPage(fragment)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return pages, nil
}

func (uc *GenerationUsecase) generatePageFragment(
	ctx context.Context,
	plan entity.SitePlan,
	pageIndex int,
	filenames []string,
	cat category.Category,
) (string, error) {
	raw, err := uc.textGen.Generate(ctx,
		prompts.PageContent(string(plan), pageIndex, len(filenames), filenames, cat),
		entity.ModelHintContent)
	if err != nil {
		return "", err
	}

	fragment := markup.ExtractBody(markup.StripFences(raw))
	if strings.TrimSpace(fragment) == "" {
		return "", fmt.Errorf("%w: page %d", entity.ErrEmptyGeneration, pageIndex+1)
	}

	ctxzap.Debug(ctx, "page fragment generated",
		zap.String("filename", filenames[pageIndex]),
		zap.Int("fragment_length", len(fragment)),
	)

	return fragment, nil
}

// postProcess applies the deterministic pipeline stages: per-page contact
// wiring and CTA rewiring, then the batch navigation normalization, then
// image resolution across the whole page set.
func (uc *GenerationUsecase) postProcess(
	ctx context.Context,
	pages, filenames []string,
	info entity.ContactInfo,
	businessName string,
) ([]string, error) {
	pipeline := postprocess.New(info, businessName)

	for i, page := range pages {
		wired, err := pipeline.WireContacts(page)
		if err != nil {
			return nil, fmt.Errorf("wire contacts in %s: %w", filenames[i], err)
		}

		wired, err = pipeline.RewireCTAs(wired)
		if err != nil {
			return nil, fmt.Errorf("rewire CTAs in %s: %w", filenames[i], err)
		}

		pages[i] = wired
	}

	pages, err := pipeline.NormalizeSite(pages, filenames)
	if err != nil {
		return nil, fmt.Errorf("normalize site: %w", err)
	}

	resolver := postprocess.NewImageResolver(uc.imageSearcher)
	pages, err = resolver.ResolvePages(ctx, pages)
	if err != nil {
		return nil, fmt.Errorf("resolve images: %w", err)
	}

	return pages, nil
}

func (uc *GenerationUsecase) generateStylesheet(ctx context.Context, pages []string) (string, error) {
	raw, err := uc.textGen.Generate(ctx, prompts.Stylesheet(pages), entity.ModelHintStyle)
	if err != nil {
		return "", fmt.Errorf("generate stylesheet: %w", err)
	}

	css := markup.StripFences(raw)
	if strings.TrimSpace(css) == "" {
		return "", fmt.Errorf("%w: stylesheet", entity.ErrEmptyGeneration)
	}

	return css + "\n" + assets.StyleOverrides, nil
}

// GenerateBusinessSite runs the single-page flow: the model produces a typed
// content document, the page markup is rendered locally, and the fixed design
// system replaces the generated stylesheet.
func (uc *GenerationUsecase) GenerateBusinessSite(ctx context.Context, description string) (*entity.SiteBundle, error) {
	if err := validator.ValidateDescription(description); err != nil {
		return nil, err
	}

	info, businessName := contact.Extract(description)

	ctxzap.Info(ctx, "starting business site generation",
		zap.Bool("has_contact_info", info.HasAny()),
	)

	opts := append(uc.retryCfg.ToRetryOptions(), retrygo.Context(ctx))
	raw, err := retrygo.DoWithData(func() (string, error) {
		return uc.textGen.Generate(ctx, prompts.BusinessContent(description), entity.ModelHintContent)
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("generate business content: %w", err)
	}

	// Decode failures are terminal: a malformed document means the model
	// broke the content contract, and a second identical call is not a fix.
	content, err := entity.DecodePageContent(raw)
	if err != nil {
		return nil, err
	}

	if businessName == "" {
		businessName = content.BusinessName
	}

	page := markup.BuildBusinessPage(content, info)

	filenames := []string{businessPageFilename}
	pages, err := uc.postProcess(ctx, []string{page}, filenames, info, businessName)
	if err != nil {
		return nil, err
	}

	css := assets.DesignSystemCSS + "\n" + assets.StyleOverrides

	b, err := bundle.Assemble(filenames, pages, css, assets.SharedScript)
	if err != nil {
		return nil, err
	}

	ctxzap.Info(ctx, "business site generated successfully")

	return b, nil
}
