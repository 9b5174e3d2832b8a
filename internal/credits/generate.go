package credits

import (
	"context"

	"github.com/klozestickers/credits/internal/generation"
	"github.com/klozestickers/credits/internal/limiter"
	"github.com/klozestickers/credits/internal/model"
)

// Uploader stores a generated image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}

// WithUploader makes Generate upload image bytes as part of the paid effect.
func (o *Orchestrator) WithUploader(u Uploader) *Orchestrator {
	o.uploader = u
	return o
}

// Generate charges the provider's cost and runs one generation. A failed
// generation or upload refunds the cost.
func (o *Orchestrator) Generate(ctx context.Context, owner model.Owner, req generation.Request, gen generation.Generator) (*generation.Image, Result, error) {
	if err := req.Validate(); err != nil {
		return nil, Result{}, err
	}
	cost, err := req.Provider.Cost()
	if err != nil {
		return nil, Result{}, err
	}

	var img *generation.Image
	res, err := o.Attempt(ctx, owner, cost, limiter.ActionGeneration, func(ctx context.Context) error {
		out, err := gen.Generate(ctx, req)
		if err != nil {
			return err
		}
		if o.uploader != nil && len(out.Data) > 0 {
			url, err := o.uploader.Upload(ctx, out.Data, out.ContentType)
			if err != nil {
				return err
			}
			out.URL = url
		}
		img = out
		return nil
	})
	if err != nil {
		return nil, res, err
	}
	return img, res, nil
}
