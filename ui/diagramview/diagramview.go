// Package diagramview provides the interactive damage diagram widget:
// colorized body markup with tap selection, hover highlight, and optional
// pan and zoom.
package diagramview

import (
	"bytes"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"bodymap/internal/taxonomy"
	"bodymap/internal/view"
	"bodymap/pkg/geometry"
)

const (
	minZoom  = 0.5
	maxZoom  = 8.0
	zoomStep = 1.25
)

var hoverOutline = color.RGBA{R: 0x19, G: 0x76, B: 0xd2, A: 0xff}

// DiagramView displays the current view of a view.Controller.
type DiagramView struct {
	widget.BaseWidget

	ctrl *view.Controller
	win  fyne.Window

	raster *fynecanvas.Raster

	// Display state
	zoom       float64
	panX, panY float32
	dragging   bool

	// Cached rasterization of the current markup
	rendered     *image.RGBA
	renderedSize geometry.Size
	dirty        bool

	// Callbacks
	onTooltip func(text string)
}

// New creates a diagram view bound to the controller. The window is used to
// host the fallback part picker dialog.
func New(ctrl *view.Controller, win fyne.Window) *DiagramView {
	dv := &DiagramView{
		ctrl:  ctrl,
		win:   win,
		zoom:  1.0,
		dirty: true,
	}
	dv.raster = fynecanvas.NewRaster(dv.draw)
	dv.raster.SetMinSize(fyne.NewSize(300, 220))
	dv.ExtendBaseWidget(dv)

	ctrl.On(view.EventDiagramReady, func(interface{}) {
		dv.ResetView()
	})
	ctrl.On(view.EventRecordChanged, func(interface{}) {
		dv.dirty = true
		dv.Refresh()
	})
	ctrl.On(view.EventLoadError, func(interface{}) {
		dv.dirty = true
		dv.Refresh()
	})
	return dv
}

// OnTooltip sets a callback receiving hover descriptions for display.
func (dv *DiagramView) OnTooltip(callback func(text string)) {
	dv.onTooltip = callback
}

// ResetView clears zoom and pan and repaints, used on view switches.
func (dv *DiagramView) ResetView() {
	dv.zoom = 1.0
	dv.panX, dv.panY = 0, 0
	dv.dirty = true
	dv.Refresh()
}

// Zoom returns the current zoom factor.
func (dv *DiagramView) Zoom() float64 { return dv.zoom }

// SetZoom clamps and applies a zoom factor.
func (dv *DiagramView) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	if zoom == dv.zoom {
		return
	}
	dv.zoom = zoom
	dv.dirty = true
	dv.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (dv *DiagramView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(dv.raster)
}

// renderTarget computes the aspect-fit rendered size for the current widget
// area and zoom. The diagram keeps its native aspect ratio; the surrounding
// band stays empty.
func (dv *DiagramView) renderTarget(availW, availH int) geometry.Size {
	doc := dv.ctrl.Document()
	native := geometry.Size{Width: float64(availW), Height: float64(availH)}
	if doc != nil && !doc.Size().IsEmpty() {
		native = doc.Size()
	}
	scale := float64(availW) / native.Width
	if s := float64(availH) / native.Height; s < scale {
		scale = s
	}
	scale *= dv.zoom
	return geometry.Size{Width: native.Width * scale, Height: native.Height * scale}
}

func (dv *DiagramView) draw(w, h int) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}

	target := dv.renderTarget(w, h)
	if dv.dirty || dv.rendered == nil || dv.renderedSize != target {
		markup := dv.ctrl.Markup()
		if markup == nil {
			return out
		}
		img, err := rasterize(markup, int(target.Width), int(target.Height))
		if err != nil {
			// Keep the previous frame on a transient render failure.
			if dv.rendered == nil {
				return out
			}
		} else {
			dv.rendered = img
			dv.renderedSize = target
			dv.dirty = false
		}
	}

	dst := image.Rect(int(dv.panX), int(dv.panY),
		int(dv.panX)+dv.rendered.Bounds().Dx(), int(dv.panY)+dv.rendered.Bounds().Dy())
	xdraw.Draw(out, dst, dv.rendered, image.Point{}, xdraw.Over)

	dv.drawHoverOutline(out)
	return out
}

// drawHoverOutline paints a thin frame around the highlighted part by
// mapping its native bounds onto the rendered surface.
func (dv *DiagramView) drawHoverOutline(out *image.RGBA) {
	key := dv.ctrl.Highlight()
	resolver := dv.ctrl.Resolver()
	doc := dv.ctrl.Document()
	if key == "" || resolver == nil || doc == nil {
		return
	}
	bounds, ok := resolver.PartBounds(key)
	if !ok {
		return
	}

	dst := geometry.Rect{
		X: float64(dv.panX), Y: float64(dv.panY),
		Width: dv.renderedSize.Width, Height: dv.renderedSize.Height,
	}
	mapping, err := geometry.RectMapping(doc.ViewBox, dst)
	if err != nil {
		return
	}
	r := mapping.ApplyRect(bounds)

	x0, y0 := int(r.X), int(r.Y)
	x1, y1 := int(r.X+r.Width), int(r.Y+r.Height)
	for x := x0; x <= x1; x++ {
		setPixel(out, x, y0)
		setPixel(out, x, y1)
	}
	for y := y0; y <= y1; y++ {
		setPixel(out, x0, y)
		setPixel(out, x1, y)
	}
}

func setPixel(img *image.RGBA, x, y int) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, hoverOutline)
	}
}

func rasterize(markup []byte, w, h int) (*image.RGBA, error) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(markup))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}

// surfacePoint converts a pointer event position to rendered-surface
// coordinates, removing the pan offset.
func (dv *DiagramView) surfacePoint(pos fyne.Position) geometry.Point2D {
	return geometry.Point2D{
		X: float64(pos.X - dv.panX),
		Y: float64(pos.Y - dv.panY),
	}
}

// Tapped resolves a tap to a part selection, falling back to the explicit
// picker when the tap misses.
func (dv *DiagramView) Tapped(ev *fyne.PointEvent) {
	p := dv.surfacePoint(ev.Position)
	if _, ok := dv.ctrl.TapAt(p, dv.renderedSize); ok {
		dv.Refresh()
		return
	}
	if dv.ctrl.PickerEligible() {
		dv.showPicker()
	}
}

// TappedSecondary opens the part picker directly.
func (dv *DiagramView) TappedSecondary(*fyne.PointEvent) {
	if dv.ctrl.PickerEligible() {
		dv.showPicker()
	}
}

func (dv *DiagramView) showPicker() {
	candidates := dv.ctrl.Candidates()
	if len(candidates) == 0 {
		return
	}
	lang := dv.ctrl.Config().Language

	list := widget.NewList(
		func() int { return len(candidates) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(candidates[i].Label(lang))
		},
	)

	d := dialog.NewCustom(pickerTitle(lang), cancelLabel(lang), list, dv.win)
	list.OnSelected = func(i widget.ListItemID) {
		dv.ctrl.SelectPart(candidates[i])
		d.Hide()
		dv.Refresh()
	}
	d.Resize(fyne.NewSize(280, 380))
	d.Show()
}

func pickerTitle(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return "Выберите деталь"
	}
	return "Select a part"
}

func cancelLabel(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return "Отмена"
	}
	return "Cancel"
}

// MouseIn implements desktop.Hoverable.
func (dv *DiagramView) MouseIn(ev *desktop.MouseEvent) {
	dv.MouseMoved(ev)
}

// MouseMoved updates the hover highlight and tooltip.
func (dv *DiagramView) MouseMoved(ev *desktop.MouseEvent) {
	p := dv.surfacePoint(ev.Position)
	key, changed := dv.ctrl.HoverAt(p, dv.renderedSize)
	if !changed {
		return
	}
	if dv.onTooltip != nil {
		if key == "" {
			dv.onTooltip("")
		} else {
			dv.onTooltip(dv.ctrl.Tooltip(key))
		}
	}
	dv.Refresh()
}

// MouseOut clears hover state.
func (dv *DiagramView) MouseOut() {
	dv.ctrl.ClearHover()
	if dv.onTooltip != nil {
		dv.onTooltip("")
	}
	dv.Refresh()
}

// Dragged pans the diagram when panning is enabled.
func (dv *DiagramView) Dragged(ev *fyne.DragEvent) {
	if !dv.ctrl.Config().EnablePan {
		return
	}
	dv.dragging = true
	dv.panX += ev.Dragged.DX
	dv.panY += ev.Dragged.DY
	dv.Refresh()
}

// DragEnd implements fyne.Draggable.
func (dv *DiagramView) DragEnd() {
	dv.dragging = false
}

// Scrolled zooms with the mouse wheel when zooming is enabled.
func (dv *DiagramView) Scrolled(ev *fyne.ScrollEvent) {
	if !dv.ctrl.Config().EnableZoom {
		return
	}
	if ev.Scrolled.DY > 0 {
		dv.SetZoom(dv.zoom * zoomStep)
	} else if ev.Scrolled.DY < 0 {
		dv.SetZoom(dv.zoom / zoomStep)
	}
}
