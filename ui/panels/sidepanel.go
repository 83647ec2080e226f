// Package panels provides the side panel with view selection, the condition
// legend, and inspection report loading.
package panels

import (
	"image/color"
	"io"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"bodymap/internal/inspect"
	"bodymap/internal/taxonomy"
	"bodymap/internal/view"
)

// SidePanel groups the view controls and the legend.
type SidePanel struct {
	ctrl *view.Controller
	win  fyne.Window

	template taxonomy.CarTemplateType

	templateSelect *widget.Select
	angleRadio     *widget.RadioGroup
	content        *fyne.Container

	// OnRecordLoaded is called after an inspection report was loaded and
	// applied to the controller.
	OnRecordLoaded func(rec inspect.Record)
}

// NewSidePanel creates the side panel bound to the controller.
func NewSidePanel(ctrl *view.Controller, win fyne.Window) *SidePanel {
	sp := &SidePanel{
		ctrl:     ctrl,
		win:      win,
		template: taxonomy.TemplateSedan,
	}
	sp.buildControls()
	return sp
}

// Container returns the panel's root object for embedding in layouts.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return container.NewVScroll(sp.content)
}

// Template returns the currently selected body template.
func (sp *SidePanel) Template() taxonomy.CarTemplateType {
	return sp.template
}

func (sp *SidePanel) buildControls() {
	lang := sp.ctrl.Config().Language

	templateLabels := make([]string, len(taxonomy.AllTemplates))
	templateByLabel := make(map[string]taxonomy.CarTemplateType, len(taxonomy.AllTemplates))
	for i, tpl := range taxonomy.AllTemplates {
		label := tpl.Label(lang)
		templateLabels[i] = label
		templateByLabel[label] = tpl
	}
	sp.templateSelect = widget.NewSelect(templateLabels, func(label string) {
		sp.template = templateByLabel[label]
		sp.ctrl.Select(sp.template, sp.ctrl.Angle())
	})
	sp.templateSelect.SetSelected(taxonomy.TemplateSedan.Label(lang))

	angleLabels := make([]string, len(taxonomy.AllViewAngles))
	angleByLabel := make(map[string]taxonomy.ViewAngle, len(taxonomy.AllViewAngles))
	for i, angle := range taxonomy.AllViewAngles {
		label := angle.Label(lang)
		angleLabels[i] = label
		angleByLabel[label] = angle
	}
	sp.angleRadio = widget.NewRadioGroup(angleLabels, func(label string) {
		angle, ok := angleByLabel[label]
		if !ok {
			return
		}
		sp.ctrl.Select(sp.template, angle)
	})
	sp.angleRadio.SetSelected(taxonomy.AngleFront.Label(lang))

	loadBtn := widget.NewButton(loadReportLabel(lang), sp.openReport)

	sp.content = container.NewVBox(
		widget.NewLabelWithStyle(templateHeading(lang), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sp.templateSelect,
		widget.NewLabelWithStyle(angleHeading(lang), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		sp.angleRadio,
		widget.NewSeparator(),
		loadBtn,
		widget.NewSeparator(),
		sp.buildLegend(lang),
	)
}

func (sp *SidePanel) buildLegend(lang taxonomy.Language) fyne.CanvasObject {
	pal := sp.ctrl.Palette()
	rows := []fyne.CanvasObject{
		widget.NewLabelWithStyle(legendHeading(lang), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}
	for _, item := range pal.Legend(lang) {
		rows = append(rows, legendRow(item.Color, item.Label))
	}
	rows = append(rows, widget.NewLabelWithStyle(tireHeading(lang), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, item := range pal.TireLegend(lang) {
		rows = append(rows, legendRow(item.Color, item.Label))
	}
	return container.NewVBox(rows...)
}

func legendRow(c color.RGBA, label string) fyne.CanvasObject {
	swatch := fynecanvas.NewRectangle(c)
	swatch.SetMinSize(fyne.NewSize(16, 16))
	return container.NewHBox(swatch, widget.NewLabel(label))
}

// openReport shows a file dialog and applies the chosen inspection report.
func (sp *SidePanel) openReport() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, sp.win)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			dialog.ShowError(err, sp.win)
			return
		}
		report, err := inspect.DecodeReport(data)
		if err != nil {
			dialog.ShowError(err, sp.win)
			return
		}
		rec := report.Unify()
		sp.ctrl.SetRecord(rec)
		if sp.OnRecordLoaded != nil {
			sp.OnRecordLoaded(rec)
		}
	}, sp.win)
}

func templateHeading(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return "Кузов"
	}
	return "Body template"
}

func angleHeading(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return "Ракурс"
	}
	return "View angle"
}

func legendHeading(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return "Состояние"
	}
	return "Condition"
}

func tireHeading(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return "Шины"
	}
	return "Tires"
}

func loadReportLabel(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return "Открыть отчет..."
	}
	return "Open report..."
}
