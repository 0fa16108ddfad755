package client

import (
	"fmt"
	"time"

	"github.com/tomz197/rocketraid/internal/draw"
	"github.com/tomz197/rocketraid/internal/loop"
	"github.com/tomz197/rocketraid/internal/loop/config"
	"github.com/tomz197/rocketraid/internal/object"
	"github.com/tomz197/rocketraid/internal/physics"
)

var (
	rocketColor = draw.Color{R: 200, G: 60, B: 50}
	heavyColor  = draw.Orange
	flameColor  = draw.Color{R: 255, G: 190, B: 60}
)

// thrustFlame is drawn behind the ship while thrusting, in the ship's local
// sprite coordinates.
var thrustFlame = physics.Polygon{
	{X: 2, Y: 22},
	{X: -14, Y: object.PlayerSize / 2},
	{X: 2, Y: object.PlayerSize - 22},
}

var playerPivot = physics.Vec{X: object.PlayerSize / 2, Y: object.PlayerSize / 2}

// Render draws snap to the terminal. It implements loop.Renderer and is only
// called from the session's frame loop.
func (c *Client) Render(snap *loop.Snapshot) error {
	c.updateScreen()

	// On screen transitions, do a full terminal clear so text from the
	// previous screen doesn't persist.
	if c.state.advance(snap) {
		c.chunkWriter.ClearScreen()
		c.canvas.ForceRedraw()
	}

	c.canvas.Clear()
	c.drawEffects(snap.Effects)
	c.drawRockets(snap.Rockets)
	c.drawBullets(snap.Bullets)
	if snap.PlayerAlive {
		c.drawPlayer(snap.Player)
	}

	if err := c.canvas.Render(c.chunkWriter); err != nil {
		return err
	}
	if err := c.canvas.RenderBorder(c.chunkWriter); err != nil {
		return err
	}

	c.drawUI(snap)
	return c.chunkWriter.Flush()
}

func (c *Client) polygon(hull physics.Polygon, filled bool) {
	pts := c.canvas.BorrowPoints(len(hull))
	for i, v := range hull {
		pts[i] = draw.Point{X: v.X, Y: v.Y}
	}
	c.canvas.DrawPolygon(pts, filled)
}

func (c *Client) drawEffects(effects []loop.EffectView) {
	for _, e := range effects {
		if e.Alpha <= 0 {
			continue
		}
		c.canvas.SetColor(e.Color.Scale(e.Alpha))
		for _, p := range e.Particles {
			c.canvas.FillRect(p.Center.X-p.Size/2, p.Center.Y-p.Size/2, p.Size, p.Size)
		}
	}
}

func (c *Client) drawRockets(rockets []loop.RocketView) {
	c.canvas.SetColor(rocketColor)
	for _, r := range rockets {
		c.polygon(r.Hull, true)
		if r.Health != nil {
			c.healthBar(r.X, r.Y, object.RocketSize, r.Health)
		}
	}
}

func (c *Client) drawBullets(bullets []loop.BulletView) {
	for _, b := range bullets {
		if b.Size >= object.HeavyBulletSize {
			c.canvas.SetColor(heavyColor)
		} else {
			c.canvas.SetColor(draw.White)
		}
		c.canvas.FillCircle(draw.Point{X: b.Center.X, Y: b.Center.Y}, b.Size/2)
	}
}

func (c *Client) drawPlayer(p loop.PlayerView) {
	if p.Thrusting {
		c.canvas.SetColor(flameColor)
		c.polygon(physics.Transform(thrustFlame, playerPivot, p.Angle, physics.Vec{X: p.X, Y: p.Y}), true)
	}
	c.canvas.SetColor(draw.White)
	c.polygon(p.Hull, true)
	if p.Health != nil {
		c.healthBar(p.X, p.Y, object.PlayerSize, p.Health)
	}
}

// healthBar draws a bar above a sprite whose top-left is (x, y).
func (c *Client) healthBar(x, y, width float64, h *loop.HealthView) {
	top := y - config.HealthBarGap - config.HealthBarHeight
	c.canvas.DrawHealthBar(x, top, width, config.HealthBarHeight, h.Fraction(), draw.Green, draw.Gray)
}

// drawUI draws the text overlay. Every row written is marked dirty so the
// canvas repaints it on the next frame.
func (c *Client) drawUI(snap *loop.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	if termWidth <= 0 || termHeight <= 0 {
		return
	}

	switch c.state.screen {
	case screenPlaying:
		c.drawPlayingHUD(termWidth, termHeight, snap)
	case screenGameOver:
		c.drawGameOverScreen(termWidth/2, termHeight/2, snap)
	}
}

func (c *Client) writeAt(col, row int, s string) {
	if row < 1 || row > c.canvas.TerminalHeight() {
		return
	}
	c.chunkWriter.WriteAt(max(col, 1), row, s)
	c.canvas.MarkTextDirty(row)
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, snap *loop.Snapshot) {
	scoreText := fmt.Sprintf("Score: %-8d", snap.Score)
	c.writeAt(2, 1, scoreText)

	hp := object.PlayerStartHP.Max // No health view means exactly full
	if h := snap.Player.Health; h != nil {
		hp = max(h.Current, 0)
	}
	hpText := fmt.Sprintf("HP: %-4.0f", hp)
	c.writeAt(termWidth-len(hpText)-1, 1, hpText)

	hint := "A/D turn  W thrust  J/K fire  Q quit"
	if len(hint)+2 < termWidth {
		c.writeAt(2, termHeight, hint)
	}
}

// drawGameOverScreen draws the game over screen.
func (c *Client) drawGameOverScreen(centerX, centerY int, snap *loop.Snapshot) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}
	titleWidth := len(titleArt[0])

	titleStartY := centerY - 5
	for i, line := range titleArt {
		c.writeAt(centerX-titleWidth/2, titleStartY+i, line)
	}

	scoreText := fmt.Sprintf("Score: %d", snap.Score)
	c.writeAt(centerX-len(scoreText)/2, titleStartY+len(titleArt)+2, scoreText)

	// Blinking prompt; the blank variant erases the text.
	prompt := ">>  Press ENTER to Restart  <<"
	if time.Now().UnixMilli()/600%2 != 0 {
		prompt = fmt.Sprintf("%*s", len(prompt), "")
	}
	c.writeAt(centerX-len(prompt)/2, titleStartY+len(titleArt)+4, prompt)

	hint := "Q to quit"
	c.writeAt(centerX-len(hint)/2, titleStartY+len(titleArt)+6, hint)
}
