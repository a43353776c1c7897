package generation

import (
	"context"

	"github.com/futig/sitegen-backend/internal/entity"
)

// TextGenerator is the text-generation service surface the pipeline depends
// on. One prompt in, one generated text out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, hint entity.ModelHint) (string, error)
}
