// Package mainwindow provides the main application window.
package mainwindow

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"bodymap/internal/inspect"
	"bodymap/internal/taxonomy"
	"bodymap/internal/version"
	"bodymap/internal/view"
	"bodymap/ui/dialogs"
	"bodymap/ui/diagramview"
	"bodymap/ui/panels"
	"bodymap/ui/prefs"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app  fyne.App
	ctrl *view.Controller
	log  zerolog.Logger

	diagram   *diagramview.DiagramView
	sidePanel *panels.SidePanel
	statusBar *widget.Label

	prefs *prefs.Prefs
}

// New creates the main window around an already configured controller.
func New(fyneApp fyne.App, ctrl *view.Controller, p *prefs.Prefs, log zerolog.Logger) *MainWindow {
	fyneApp.Settings().SetTheme(&viewerTheme{})
	win := fyneApp.NewWindow("Body Map " + version.String())

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		ctrl:   ctrl,
		log:    log,
		prefs:  p,
	}

	mw.setupUI()
	mw.setupEventHandlers()
	return mw
}

func (mw *MainWindow) setupUI() {
	mw.diagram = diagramview.New(mw.ctrl, mw.Window)
	mw.sidePanel = panels.NewSidePanel(mw.ctrl, mw.Window)
	mw.statusBar = widget.NewLabel("")

	mw.diagram.OnTooltip(func(text string) {
		mw.statusBar.SetText(text)
	})
	mw.sidePanel.OnRecordLoaded = func(rec inspect.Record) {
		mw.log.Info().Int("parts", len(rec)).Msg("inspection report loaded")
	}

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		mw.diagram,
	)
	split.SetOffset(0.28)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar),
		nil,
		nil,
		split,
	)
	mw.SetContent(content)
	mw.Resize(fyne.NewSize(900, 620))
}

func (mw *MainWindow) setupEventHandlers() {
	mw.ctrl.On(view.EventPartSelected, func(data interface{}) {
		key := data.(taxonomy.PartKey)
		mw.log.Debug().Str("part", string(key)).Msg("part selected")
		dialogs.ShowPartDetails(key, mw.ctrl.Record(), mw.ctrl.Palette(), mw.ctrl.Config().Language, mw.Window)
	})
	mw.ctrl.On(view.EventAngleChanged, func(data interface{}) {
		angle := data.(taxonomy.ViewAngle)
		mw.prefs.SetString(prefs.KeyAngle, string(angle))
	})
	mw.ctrl.On(view.EventLoadError, func(data interface{}) {
		err := data.(error)
		mw.statusBar.SetText(err.Error())
	})
	mw.ctrl.On(view.EventDiagramReady, func(interface{}) {
		mw.statusBar.SetText("")
		mw.prefs.SetString(prefs.KeyTemplate, string(mw.ctrl.Template()))
	})

	mw.SetOnClosed(func() {
		if err := mw.prefs.Save(); err != nil {
			mw.log.Warn().Err(err).Msg("saving preferences failed")
		}
	})
}

// ShowInitialView restores the persisted template and angle selection.
func (mw *MainWindow) ShowInitialView() {
	template := taxonomy.CarTemplateType(mw.prefs.String(prefs.KeyTemplate, string(taxonomy.TemplateSedan)))
	if !template.Valid() {
		template = taxonomy.TemplateSedan
	}
	angle := taxonomy.ViewAngle(mw.prefs.String(prefs.KeyAngle, string(taxonomy.AngleFront)))
	if !angle.Valid() {
		angle = taxonomy.AngleFront
	}
	mw.ctrl.Select(template, angle)
}
