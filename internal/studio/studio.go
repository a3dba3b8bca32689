// ABOUTME: Controller glue between the API gateway and the two stores
// ABOUTME: One generate flow: gate, call backend, record result, deduct credits

package studio

import (
	"context"
	"errors"
	"time"

	"github.com/mediaforge/mediaforge-cli/internal/api"
	"github.com/mediaforge/mediaforge-cli/internal/generation"
	"github.com/mediaforge/mediaforge-cli/internal/session"
)

// ErrBusy is returned when a generation is already awaiting a response
var ErrBusy = errors.New("a generation is already running")

// Controller implements the submit flow shared by the CLI commands and the
// TUI: acquire the in-flight gate, call the backend, and on success record
// the generation and deduct its cost locally. On failure both stores are
// left untouched.
type Controller struct {
	api         *api.Client
	session     *session.Store
	generations *generation.Store
}

// New wires a controller to its collaborators
func New(client *api.Client, sess *session.Store, gens *generation.Store) *Controller {
	return &Controller{
		api:         client,
		session:     sess,
		generations: gens,
	}
}

// Session exposes the session store to UI layers
func (c *Controller) Session() *session.Store { return c.session }

// Generations exposes the generation store to UI layers
func (c *Controller) Generations() *generation.Store { return c.generations }

// API exposes the gateway for read-only calls made directly by UI layers
func (c *Controller) API() *api.Client { return c.api }

// run executes one generation request under the in-flight gate
func (c *Controller) run(ctx context.Context, call func(context.Context) (*api.Generation, error)) (*api.Generation, error) {
	if !c.generations.Begin() {
		return nil, ErrBusy
	}
	defer c.generations.SetGenerating(false)

	gen, err := call(ctx)
	if err != nil {
		return nil, err
	}

	c.generations.Add(*gen)
	c.generations.SetCurrent(gen)
	if user := c.session.User(); user != nil {
		c.session.UpdateCredits(user.Credits - gen.CreditsUsed)
	}
	return gen, nil
}

// Image generates a general image
func (c *Controller) Image(ctx context.Context, req *api.ImageRequest) (*api.Generation, error) {
	return c.run(ctx, func(ctx context.Context) (*api.Generation, error) {
		return c.api.GenerateImage(ctx, req)
	})
}

// Banner generates a social/marketing banner
func (c *Controller) Banner(ctx context.Context, req *api.BannerRequest) (*api.Generation, error) {
	return c.run(ctx, func(ctx context.Context) (*api.Generation, error) {
		return c.api.GenerateBanner(ctx, req)
	})
}

// Logo generates a brand logo
func (c *Controller) Logo(ctx context.Context, req *api.LogoRequest) (*api.Generation, error) {
	return c.run(ctx, func(ctx context.Context) (*api.Generation, error) {
		return c.api.GenerateLogo(ctx, req)
	})
}

// RemoveBackground strips the background from an image
func (c *Controller) RemoveBackground(ctx context.Context, req *api.RemoveBackgroundRequest) (*api.Generation, error) {
	return c.run(ctx, func(ctx context.Context) (*api.Generation, error) {
		return c.api.RemoveBackground(ctx, req)
	})
}

// Video generates a video from a topic
func (c *Controller) Video(ctx context.Context, req *api.VideoRequest) (*api.Generation, error) {
	return c.run(ctx, func(ctx context.Context) (*api.Generation, error) {
		return c.api.GenerateVideo(ctx, req)
	})
}

// Presenter generates an avatar presenter video
func (c *Controller) Presenter(ctx context.Context, req *api.PresenterRequest) (*api.Generation, error) {
	return c.run(ctx, func(ctx context.Context) (*api.Generation, error) {
		return c.api.GeneratePresenter(ctx, req)
	})
}

// Voiceover converts text to speech
func (c *Controller) Voiceover(ctx context.Context, req *api.VoiceoverRequest) (*api.Generation, error) {
	return c.run(ctx, func(ctx context.Context) (*api.Generation, error) {
		return c.api.GenerateVoiceover(ctx, req)
	})
}

// RefreshStatus fetches the latest state of a generation and merges it into
// the store. Terminal statuses already observed are never reverted.
func (c *Controller) RefreshStatus(ctx context.Context, id string) (*api.Generation, error) {
	gen, err := c.api.VideoStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	c.generations.Update(id, generation.PatchFrom(gen))
	return gen, nil
}

// WaitForCompletion polls a generation until it reaches a terminal state
// or the context is done
func (c *Controller) WaitForCompletion(ctx context.Context, id string, interval time.Duration) (*api.Generation, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		gen, err := c.RefreshStatus(ctx, id)
		if err != nil {
			return nil, err
		}
		if gen.Terminal() {
			return gen, nil
		}

		select {
		case <-ctx.Done():
			return gen, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Logout clears the session and wipes the generation list
func (c *Controller) Logout() {
	c.session.Logout()
	c.generations.Clear()
}
