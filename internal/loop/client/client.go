// Package client plays a session in a terminal: it feeds key presses to the
// simulation and draws every published frame.
package client

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/rocketraid/internal/draw"
	"github.com/tomz197/rocketraid/internal/event"
	"github.com/tomz197/rocketraid/internal/input"
	"github.com/tomz197/rocketraid/internal/loop"
	"github.com/tomz197/rocketraid/internal/loop/config"
	"github.com/tomz197/rocketraid/internal/object"
)

// Client handles rendering and input for a single terminal.
type Client struct {
	session      *loop.Session
	keys         *input.KeyState
	state        clientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	Arena        object.Arena
	TermSizeFunc draw.TermSizeFunc
	Sink         event.Sink
	Logger       *log.Logger
	Timing       loop.Timing
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r io.ByteReader, w io.Writer, opts ClientOptions) (*Client, error) {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Client{
		keys:         new(input.KeyState),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
	}

	session, err := loop.NewSession(loop.Options{
		Arena:    opts.Arena,
		Keys:     c.keys,
		Sink:     opts.Sink,
		Renderer: c,
		Logger:   logger,
		Timing:   opts.Timing,
	})
	if err != nil {
		return nil, err
	}
	c.session = session

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, err := termSizeFunc()
	if err != nil {
		logger.Warn("terminal size unavailable", "err", err)
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	c.canvas = draw.NewScaledCanvas(renderWidth, renderHeight, float64(opts.Arena.Width), float64(opts.Arena.Height))
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter = draw.NewChunkWriter(w, offsetCol, offsetRow)
	return c, nil
}

// Session returns the session the client drives.
func (c *Client) Session() *loop.Session {
	return c.session
}

// Run plays until the player quits, the input ends, ctx is cancelled or the
// terminal can no longer be written.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return c.session.Run(ctx)
	})
	g.Go(func() error {
		c.pollInput(ctx)
		return nil
	})
	err := g.Wait()

	draw.ClearScreen(c.writer)
	return err
}

// pollInput samples the input stream into the shared key state. Quit stops
// the session. Keys held when the player dies are forgotten, so a held
// ENTER does not restart straight away.
func (c *Client) pollInput(ctx context.Context) {
	t := time.NewTicker(config.InputPollTime)
	defer t.Stop()
	alive := true
	for {
		if a := c.session.Snapshot().PlayerAlive; a != alive {
			alive = a
			if !alive {
				input.ResetKeyInput(c.inputStream)
			}
		}

		keys := input.ReadInput(c.inputStream)
		c.keys.Set(keys)
		if keys.Quit {
			c.logger.Debug("quit requested", "input_closed", c.inputStream.Closed())
			c.session.Stop()
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.ClearScreen()
		c.canvas.Resize(renderWidth, renderHeight)
		c.canvas.SetOffset(offsetCol, offsetRow)
		c.chunkWriter.SetOffset(offsetCol, offsetRow)
	}
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
