// Package present implements the display and input collaborators the
// rendering core leaves external: windowing, GPU texture upload, a
// full-screen textured quad, and keyboard/mouse input that drives the
// camera and invalidation protocol.
package present

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// moveSpeed and lookSpeed tune the free-fly camera's responsiveness;
// unrelated to any integrator constant.
const (
	moveSpeed = 0.08
	lookSpeed = 0.0035
)

// Game implements ebiten.Game, driving renderer.Context's presentation
// loop and feeding camera input back through Invalidate.
type Game struct {
	ctx     *renderer.Context
	session string

	screenW, screenH int
	scale            int

	tex *ebiten.Image
	hud *ebiten.Image

	lastCursorX, lastCursorY int
	cursorInit               bool
}

// NewGame creates the display/input collaborator for ctx, presenting at
// the given scale (1 = native resolution) into a screenW x screenH window.
func NewGame(ctx *renderer.Context, screenW, screenH, scale int) *Game {
	if scale < 1 {
		scale = 1
	}
	return &Game{
		ctx:     ctx,
		session: uuid.NewString(),
		screenW: screenW,
		screenH: screenH,
		scale:   scale,
	}
}

// Session returns the run's log-correlation identifier.
func (g *Game) Session() string { return g.session }

// Update polls keyboard and mouse state, applies camera motion/look, and
// invalidates the accumulator on any change.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	moved := g.handleKeys()
	looked := g.handleMouse()
	if moved || looked {
		g.ctx.Invalidate()
	}
	return nil
}

func (g *Game) handleKeys() bool {
	var dir core.Vec3
	moved := false
	press := func(key ebiten.Key, d core.Vec3) {
		if ebiten.IsKeyPressed(key) {
			dir = dir.Add(d)
			moved = true
		}
	}
	press(ebiten.KeyW, core.NewVec3(0, 0, -1))
	press(ebiten.KeyS, core.NewVec3(0, 0, 1))
	press(ebiten.KeyA, core.NewVec3(-1, 0, 0))
	press(ebiten.KeyD, core.NewVec3(1, 0, 0))
	press(ebiten.KeySpace, core.NewVec3(0, 1, 0))
	press(ebiten.KeyShiftLeft, core.NewVec3(0, -1, 0))

	if moved {
		g.ctx.Camera.Move(dir, moveSpeed)
	}
	return moved
}

func (g *Game) handleMouse() bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.cursorInit = false
		return false
	}

	x, y := ebiten.CursorPosition()
	if !g.cursorInit {
		g.lastCursorX, g.lastCursorY = x, y
		g.cursorInit = true
		return false
	}

	dx, dy := x-g.lastCursorX, y-g.lastCursorY
	g.lastCursorX, g.lastCursorY = x, y
	if dx == 0 && dy == 0 {
		return false
	}

	g.ctx.Camera.Rotate(float64(dx)*lookSpeed, -float64(dy)*lookSpeed)
	return true
}

// Draw produces the next presentation frame and blits it into the screen
// as a full-screen textured quad.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.ctx.Present(g.scale, g.screenW, g.screenH)
	if frame.Width == 0 || frame.Height == 0 {
		return
	}

	if g.tex == nil || g.tex.Bounds().Dx() != frame.Width || g.tex.Bounds().Dy() != frame.Height {
		g.tex = ebiten.NewImage(frame.Width, frame.Height)
	}
	g.tex.WritePixels(toRGBA(frame))

	op := &ebiten.DrawImageOptions{}
	sx := float64(g.screenW) / float64(frame.Width)
	sy := float64(g.screenH) / float64(frame.Height)
	op.GeoM.Scale(sx, sy)
	screen.DrawImage(g.tex, op)

	g.drawHUD(screen)
}

// hudWidth/hudHeight size the fixed opaque black readout panel drawn over
// the top-left corner of the frame.
const (
	hudWidth  = 160
	hudHeight = 16
)

// drawHUD overlays the accumulator's current sample weight using
// golang.org/x/image's built-in bitmap font, so the readout needs no
// shipped font asset.
func (g *Game) drawHUD(screen *ebiten.Image) {
	text := fmt.Sprintf("samples: %.1f", g.ctx.SampleWeight())

	img := image.NewRGBA(image.Rect(0, 0, hudWidth, hudHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: image.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(2), Y: fixed.I(12)},
	}
	d.DrawString(text)

	if g.hud == nil {
		g.hud = ebiten.NewImage(hudWidth, hudHeight)
	}
	g.hud.WritePixels(img.Pix)
	screen.DrawImage(g.hud, &ebiten.DrawImageOptions{})
}

// Layout reports the window's logical pixel dimensions to ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// toRGBA converts a linear-RGB Frame into the 8-bit sRGB-ish byte buffer
// WritePixels expects. Values are already clamped to [0,1] by Present;
// this only gamma-corrects and quantizes for display.
func toRGBA(f renderer.Frame) []byte {
	out := make([]byte, f.Width*f.Height*4)
	for i, c := range f.Pix {
		out[i*4+0] = toSRGB8(c.X)
		out[i*4+1] = toSRGB8(c.Y)
		out[i*4+2] = toSRGB8(c.Z)
		out[i*4+3] = 255
	}
	return out
}

func toSRGB8(linear float64) byte {
	if linear <= 0 {
		return 0
	}
	if linear >= 1 {
		return 255
	}
	srgb := math.Pow(linear, 1.0/2.2)
	return byte(srgb*255 + 0.5)
}

// Run opens the window and blocks until the game loop ends, which happens
// when the window is closed (Update then returns ebiten.Termination). The
// game holds no context, so cancelling one does not end the loop.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.screenW, g.screenH)
	ebiten.SetWindowTitle(fmt.Sprintf("%s [%s]", title, g.session[:8]))
	ebiten.SetWindowResizable(false)

	return ebiten.RunGame(g)
}
