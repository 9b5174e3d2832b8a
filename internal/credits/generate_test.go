package credits

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/generation"
)

type fakeGenerator struct {
	img *generation.Image
	err error
}

func (g fakeGenerator) Generate(context.Context, generation.Request) (*generation.Image, error) {
	return g.img, g.err
}

type fakeUploader struct {
	err   error
	calls int
}

func (u *fakeUploader) Upload(context.Context, []byte, string) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return "https://cdn.example/s.png", nil
}

func TestGenerate_ChargesProviderCost(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 0, 10, nil)
	up := &fakeUploader{}
	f.orch.WithUploader(up)
	gen := fakeGenerator{img: &generation.Image{Data: []byte{1}, ContentType: "image/png"}}

	img, res, err := f.orch.Generate(context.Background(), account,
		generation.Request{Prompt: "a cat", Provider: generation.NanoBananaPro}, gen)
	require.NoError(t, err)
	require.EqualValues(t, 5, res.Cost)
	require.EqualValues(t, 5, f.remote.get())
	require.Equal(t, "https://cdn.example/s.png", img.URL)
	require.Equal(t, 1, up.calls)
}

func TestGenerate_UploadFailureRefunds(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 3, 0, nil)
	f.orch.WithUploader(&fakeUploader{err: errors.New("s3 down")})
	gen := fakeGenerator{img: &generation.Image{Data: []byte{1}}}

	_, _, err := f.orch.Generate(context.Background(), guest,
		generation.Request{Prompt: "a cat", Provider: generation.NanoBanana}, gen)
	require.ErrorIs(t, err, errs.ErrExternalEffectFailed)
	require.EqualValues(t, 3, f.guestBalance(t))
}

func TestGenerate_InvalidRequest(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 3, 0, nil)
	_, _, err := f.orch.Generate(context.Background(), guest, generation.Request{Prompt: " ", Provider: generation.Flux2}, fakeGenerator{})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, _, err = f.orch.Generate(context.Background(), guest, generation.Request{Prompt: "x", Provider: "sdxl"}, fakeGenerator{})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	require.EqualValues(t, 3, f.guestBalance(t))
}
