// Package view owns the current body-template and view-angle state, loads
// and caches the matching diagram asset, and drives the parse/colorize/
// hit-test pipeline on change.
package view

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"bodymap/internal/asset"
	"bodymap/internal/diagram"
	"bodymap/internal/hittest"
	"bodymap/internal/inspect"
	"bodymap/internal/palette"
	"bodymap/internal/taxonomy"
	"bodymap/pkg/geometry"
)

// State is the controller's loading lifecycle state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// EventType identifies controller events delivered to the host UI.
type EventType int

const (
	// EventDiagramReady fires when a view finished loading and parsing.
	// The render surface should redraw and reset any zoom/pan transform.
	EventDiagramReady EventType = iota

	// EventRecordChanged fires when the condition record or highlight
	// changed and the colorized markup must be recomputed.
	EventRecordChanged

	// EventPartSelected carries the tapped taxonomy.PartKey.
	EventPartSelected

	// EventPartHovered carries the hovered taxonomy.PartKey, or "" when the
	// pointer left every part. Purely advisory; never mutates damage data.
	EventPartHovered

	// EventAngleChanged carries the new taxonomy.ViewAngle.
	EventAngleChanged

	// EventLoadError carries the error that moved the controller to its
	// error state.
	EventLoadError
)

// Listener receives controller events.
type Listener func(data interface{})

// Config tunes engine behavior for one render surface.
type Config struct {
	// ReadOnly disables selection callbacks while still rendering colors.
	ReadOnly bool

	// EnableZoom and EnablePan gate pointer-driven scale/translate on the
	// render surface.
	EnableZoom bool
	EnablePan  bool

	// Language selects the label locale for tooltips and the picker.
	Language taxonomy.Language

	// ColorOverrides substitutes palette colors.
	ColorOverrides palette.Overrides
}

// Controller is the view/template state machine. All state is owned by the
// host UI's event loop; the mutex only guards against the asset-load
// goroutine completing concurrently with a new selection.
type Controller struct {
	mu sync.Mutex

	cfg       Config
	loader    asset.Loader
	cache     *diagram.Cache
	colorizer *diagram.Colorizer
	pal       *palette.Palette
	log       zerolog.Logger

	template taxonomy.CarTemplateType
	angle    taxonomy.ViewAngle
	state    State
	lastErr  error

	src      []byte
	doc      *diagram.Document
	resolver *hittest.Resolver

	record    inspect.Record
	highlight taxonomy.PartKey
	hover     taxonomy.PartKey

	// generation implements last-requested-wins: a load result is discarded
	// when a newer selection superseded it before arrival.
	generation uint64
	cancel     context.CancelFunc

	listeners map[EventType][]Listener
}

// NewController creates a controller over the given asset loader.
func NewController(loader asset.Loader, cfg Config, log zerolog.Logger) *Controller {
	if cfg.Language == "" {
		cfg.Language = taxonomy.LangEN
	}
	return &Controller{
		cfg:       cfg,
		loader:    loader,
		cache:     diagram.NewCache(),
		colorizer: diagram.NewColorizer(),
		pal:       palette.New(cfg.ColorOverrides),
		log:       log,
		record:    inspect.Record{},
		listeners: make(map[EventType][]Listener),
	}
}

// On registers an event listener.
func (c *Controller) On(event EventType, l Listener) {
	c.mu.Lock()
	c.listeners[event] = append(c.listeners[event], l)
	c.mu.Unlock()
}

func (c *Controller) emit(event EventType, data interface{}) {
	c.mu.Lock()
	ls := c.listeners[event]
	c.mu.Unlock()
	for _, l := range ls {
		l(data)
	}
}

// Config returns the controller configuration.
func (c *Controller) Config() Config { return c.cfg }

// Palette returns the resolver used for legend and tooltip entries.
func (c *Controller) Palette() *palette.Palette { return c.pal }

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError returns the error behind the current error state, preserved for
// display next to the retry action.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Template returns the current template selection.
func (c *Controller) Template() taxonomy.CarTemplateType {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.template
}

// Angle returns the current view angle.
func (c *Controller) Angle() taxonomy.ViewAngle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.angle
}

// Interactive reports whether hit-testing is available for the current view.
// A view whose markup failed structure parsing still renders colors but
// takes no taps.
func (c *Controller) Interactive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateReady && c.resolver != nil && c.resolver.PartCount() > 0
}

// Select switches the controller to a new (template, angle) view. Any
// in-flight load is superseded; its result will be discarded on arrival.
// Highlight and hover are cleared; the surface resets zoom/pan on
// EventDiagramReady.
func (c *Controller) Select(template taxonomy.CarTemplateType, angle taxonomy.ViewAngle) {
	c.mu.Lock()
	angleChanged := angle != c.angle
	c.template = template
	c.angle = angle
	c.state = StateLoading
	c.lastErr = nil
	c.highlight = ""
	c.hover = ""
	c.generation++
	gen := c.generation
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.mu.Unlock()

	if angleChanged {
		c.emit(EventAngleChanged, angle)
	}
	c.log.Debug().Str("template", string(template)).Str("angle", string(angle)).Msg("loading diagram")

	go c.load(ctx, gen, template, angle)
}

// Retry re-runs the transition for the current selection after a failure.
func (c *Controller) Retry() {
	c.mu.Lock()
	template, angle := c.template, c.angle
	c.mu.Unlock()
	c.Select(template, angle)
}

func (c *Controller) load(ctx context.Context, gen uint64, template taxonomy.CarTemplateType, angle taxonomy.ViewAngle) {
	src, err := c.loader.LoadDiagram(ctx, template, angle)

	c.mu.Lock()
	if gen != c.generation {
		// Superseded by a newer selection.
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.state = StateError
		c.lastErr = err
		c.src = nil
		c.doc = nil
		c.resolver = nil
		c.mu.Unlock()
		c.log.Warn().Err(err).Str("template", string(template)).Str("angle", string(angle)).Msg("diagram load failed")
		c.emit(EventLoadError, err)
		return
	}

	doc, perr := c.cache.Parse(template, angle, src)
	c.src = src
	c.doc = doc
	if perr != nil {
		// Recoverable: keep the raw markup for a color-only rendering,
		// surface the retry action.
		c.state = StateError
		c.lastErr = perr
		c.resolver = nil
		c.mu.Unlock()
		c.log.Warn().Err(perr).Msg("diagram structure parse failed, view degrades to color-only")
		c.emit(EventLoadError, perr)
		return
	}

	c.resolver = hittest.NewResolver(doc)
	c.state = StateReady
	c.mu.Unlock()
	c.emit(EventDiagramReady, doc)
}

// SetRecord replaces the unified inspection record and recomputes colors.
func (c *Controller) SetRecord(rec inspect.Record) {
	c.mu.Lock()
	if rec == nil {
		rec = inspect.Record{}
	}
	c.record = rec
	c.mu.Unlock()
	c.emit(EventRecordChanged, nil)
}

// Record returns the current unified inspection record.
func (c *Controller) Record() inspect.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record
}

// Markup returns the colorized diagram markup for the current view. During
// a degraded (parse-failed) view the raw source is still colorized by id,
// yielding the color-only rendering.
func (c *Controller) Markup() []byte {
	c.mu.Lock()
	src := c.src
	doc := c.doc
	rec := c.record
	highlight := c.highlight
	c.mu.Unlock()

	if len(src) == 0 {
		return nil
	}

	parts := taxonomy.AllPartKeys
	if doc != nil && len(doc.Order) > 0 {
		parts = doc.Order
	}
	return c.colorizer.Colorize(src, rec.Fills(parts, c.pal), highlight)
}

// TapAt resolves a tap on the rendered surface. A true second return means
// a part was hit and EventPartSelected was emitted. A false return with
// PickerEligible() true means the surface should offer the fallback picker.
// Read-only surfaces take no taps.
func (c *Controller) TapAt(p geometry.Point2D, rendered geometry.Size) (taxonomy.PartKey, bool) {
	c.mu.Lock()
	readOnly := c.cfg.ReadOnly
	resolver := c.resolver
	ready := c.state == StateReady
	c.mu.Unlock()

	if readOnly || !ready || resolver == nil {
		return "", false
	}
	key, ok := resolver.Resolve(p, rendered)
	if !ok {
		return "", false
	}
	c.SelectPart(key)
	return key, true
}

// PickerEligible reports whether a missed tap should offer the explicit
// part picker: at least one part is registered for the current diagram.
func (c *Controller) PickerEligible() bool {
	return c.Interactive() && !c.cfg.ReadOnly
}

// Candidates lists every registered part sorted by display label, for the
// fallback picker.
func (c *Controller) Candidates() []taxonomy.PartKey {
	c.mu.Lock()
	resolver := c.resolver
	lang := c.cfg.Language
	c.mu.Unlock()
	if resolver == nil {
		return nil
	}
	return resolver.Candidates(lang)
}

// SelectPart reports an explicit part selection (from a direct hit or the
// fallback picker), highlights it, and notifies the host.
func (c *Controller) SelectPart(key taxonomy.PartKey) {
	c.mu.Lock()
	if c.cfg.ReadOnly {
		c.mu.Unlock()
		return
	}
	c.highlight = key
	c.mu.Unlock()
	c.emit(EventRecordChanged, nil)
	c.emit(EventPartSelected, key)
}

// HoverAt resolves a pointer move on the rendered surface. Hover is purely
// advisory: it drives highlight and tooltip, never damage data. Returns the
// hovered part (or "") and whether the hover changed.
func (c *Controller) HoverAt(p geometry.Point2D, rendered geometry.Size) (taxonomy.PartKey, bool) {
	c.mu.Lock()
	resolver := c.resolver
	ready := c.state == StateReady
	prev := c.hover
	c.mu.Unlock()

	if !ready || resolver == nil {
		return "", false
	}

	key, _ := resolver.Resolve(p, rendered)
	if key == prev {
		return key, false
	}

	c.mu.Lock()
	c.hover = key
	c.highlight = key
	c.mu.Unlock()
	c.emit(EventRecordChanged, nil)
	c.emit(EventPartHovered, key)
	return key, true
}

// ClearHover resets hover state when the pointer leaves the surface.
func (c *Controller) ClearHover() {
	c.mu.Lock()
	changed := c.hover != "" || c.highlight != ""
	c.hover = ""
	c.highlight = ""
	c.mu.Unlock()
	if changed {
		c.emit(EventRecordChanged, nil)
		c.emit(EventPartHovered, taxonomy.PartKey(""))
	}
}

// Highlight returns the currently highlighted part, if any.
func (c *Controller) Highlight() taxonomy.PartKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.highlight
}

// Resolver exposes the hit-test resolver for the current view, or nil while
// not ready.
func (c *Controller) Resolver() *hittest.Resolver {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolver
}

// Document exposes the parsed structure for the current view, or nil.
func (c *Controller) Document() *diagram.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc
}

// Tooltip renders the hover/selection description for one part in the
// configured locale: part label plus its resolved condition and severity.
func (c *Controller) Tooltip(key taxonomy.PartKey) string {
	c.mu.Lock()
	rec := c.record
	lang := c.cfg.Language
	c.mu.Unlock()

	label := key.Label(lang)
	data, ok := rec[key]
	if !ok {
		return label + ": " + c.pal.Resolve(taxonomy.ConditionNotInspected).Label(lang)
	}
	if key.IsWheel() && data.TireStatus != "" {
		return label + ": " + c.pal.ResolveTire(data.TireStatus).Label(lang)
	}
	return label + ": " + c.pal.Describe(data.Condition, data.Severity, lang)
}
