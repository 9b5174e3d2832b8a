// Package generation describes sticker generation requests, their credit cost
// and the providers that fulfil them.
package generation

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/klozestickers/credits/internal/errs"
)

// Provider is an image generation model.
type Provider string

const (
	Flux2         Provider = "flux-2"
	NanoBanana    Provider = "nano-banana"
	NanoBananaPro Provider = "nano-banana-pro"
)

var costs = map[Provider]int64{
	Flux2:         1,
	NanoBanana:    3,
	NanoBananaPro: 5,
}

// MaxPromptLen bounds a prompt in runes.
const MaxPromptLen = 1000

// Cost returns the credits charged for one generation with p.
func (p Provider) Cost() (int64, error) {
	c, ok := costs[p]
	if !ok {
		return 0, fmt.Errorf("%w: unknown provider %q", errs.ErrInvalidArgument, string(p))
	}
	return c, nil
}

// ParseProvider accepts a provider name, case-insensitively.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	if _, err := p.Cost(); err != nil {
		return "", err
	}
	return p, nil
}

// Request is a single sticker generation.
type Request struct {
	Prompt           string
	Provider         Provider
	RemoveBackground bool
}

// Validate checks the prompt and provider.
func (r Request) Validate() error {
	prompt := strings.TrimSpace(r.Prompt)
	if prompt == "" {
		return fmt.Errorf("%w: empty prompt", errs.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(prompt) > MaxPromptLen {
		return fmt.Errorf("%w: prompt longer than %d characters", errs.ErrInvalidArgument, MaxPromptLen)
	}
	_, err := r.Provider.Cost()
	return err
}

// Image is a generated sticker. Data may be empty when only URL is known.
type Image struct {
	URL         string
	Data        []byte
	ContentType string
}

// Generator produces an image for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Image, error)
}
