package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/zombie-arena/components"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font/gofont/goregular"
)

// Overlay shows the centered menu and game over panels. Its labels mirror
// the overlay-layer text entities in the world.
type Overlay struct {
	UI *ebitenui.UI

	titleLabel *widget.Label
	hintLabel  *widget.Label
	visible    bool
	alpha      float64

	layer   *ebiten.Image
	layerOp ebiten.DrawImageOptions

	titleFace text.Face
	hintFace  text.Face
}

func NewOverlay() *Overlay {
	o := &Overlay{}
	o.loadFonts()
	o.buildUI()
	return o
}

func (o *Overlay) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	o.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   32,
	}
	o.hintFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
}

func (o *Overlay) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	o.titleLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &o.titleFace, &widget.LabelColor{
			Idle: color.RGBA{230, 60, 60, 255},
		}),
	)
	contentContainer.AddChild(o.titleLabel)

	o.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &o.hintFace, &widget.LabelColor{
			Idle: color.RGBA{220, 220, 220, 255},
		}),
	)
	contentContainer.AddChild(o.hintLabel)

	rootContainer.AddChild(contentContainer)

	o.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// panel is the overlay text currently present in the world
type panel struct {
	title string
	hint  string
	alpha float64
}

// readPanel collects the overlay-layer title and hint. The panel takes the
// highest alpha among them so a fading message fades as a whole.
func readPanel(world donburi.World) panel {
	var p panel
	components.Text.Each(world, func(entry *donburi.Entry) {
		t := components.Text.Get(entry)
		if t.Layer != components.TextLayerOverlay {
			return
		}
		switch t.Name {
		case components.TextMenuTitle, components.TextGameOverTitle:
			p.title = t.Content
		case components.TextMenuHint, components.TextGameOverHint:
			p.hint = t.Content
		default:
			return
		}
		if t.Alpha > p.alpha {
			p.alpha = t.Alpha
		}
	})
	return p
}

// Sync copies the current overlay text entities into the labels
func (o *Overlay) Sync(world donburi.World) {
	p := readPanel(world)

	o.visible = p.title != "" || p.hint != ""
	o.alpha = p.alpha
	o.titleLabel.Label = p.title
	o.hintLabel.Label = p.hint
}

// Visible reports whether a panel is currently shown
func (o *Overlay) Visible() bool {
	return o.visible
}

// Alpha is the opacity the panel is drawn with
func (o *Overlay) Alpha() float64 {
	return o.alpha
}

func (o *Overlay) Update() {
	if !o.visible {
		return
	}
	o.UI.Update()
}

// Draw renders the panel offscreen and composites it at the panel alpha
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || o.alpha <= 0 {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if o.layer == nil || o.layer.Bounds().Dx() != w || o.layer.Bounds().Dy() != h {
		o.layer = ebiten.NewImage(w, h)
	}
	o.layer.Clear()
	o.UI.Draw(o.layer)

	o.layerOp.ColorScale.Reset()
	o.layerOp.ColorScale.ScaleAlpha(float32(o.alpha))
	screen.DrawImage(o.layer, &o.layerOp)
}
