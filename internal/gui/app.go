package gui

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/appengine-ltd/deep-mine/internal/format"
	"github.com/appengine-ltd/deep-mine/internal/geom"
	"github.com/appengine-ltd/deep-mine/internal/items"
	"github.com/appengine-ltd/deep-mine/internal/settings"
	"github.com/appengine-ltd/deep-mine/internal/ui/theme"
)

type AppConfig struct {
	Version      string
	Commit       string
	BuildDate    string
	Settings     settings.Settings
	SettingsPath string
	Logger       *slog.Logger
	// LogLevel, when set, follows log_level from reloaded settings.
	LogLevel *slog.LevelVar
	// ForceDebug pins LogLevel to debug regardless of log_level.
	ForceDebug bool
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

func (a *App) Run() error {
	return newClient(a.cfg).Run()
}

const (
	shiftLength     = "20m"
	crateInterval   = "3m 30s"
	minCameraRange  = float32(6)
	maxCameraRange  = float32(60)
	cameraZoomStep  = float32(2)
	lookSensitivity = float32(0.004)
)

// rewards unlocked by total ore mined
var oreRewards = []struct {
	at   int64
	item string
}{
	{at: 25, item: "Dynamite"},
	{at: 120, item: "Iron Pickaxe"},
	{at: 400, item: "Conveyor Belt"},
	{at: 2500, item: "Ore Furnace"},
	{at: 100_000, item: "Diamond Drill"},
}

type client struct {
	cfg    AppConfig
	logger *slog.Logger
	set    settings.Settings

	width  int32
	height int32
	quit   bool

	camera  rl.Camera3D
	scene   *geom.Scene
	yields  map[string]int64
	catalog *items.Catalog

	pointer   *raylibPointer
	mouse     *MouseController
	crosshair *Crosshair
	building  *BuildingHotbar
	hotbar    *Hotbar
	buttons   []*ModeButton
	cancels   []func()

	ore       int64
	rewarded  int
	placed    []geom.StorableVector
	placePath string

	started    time.Time
	shiftSecs  int64
	crateSecs  int64
	lastTarget string
	status     string
}

func newClient(cfg AppConfig) *client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := &client{
		cfg:       cfg,
		logger:    logger,
		set:       cfg.Settings,
		width:     cfg.Settings.Window.Width,
		height:    cfg.Settings.Window.Height,
		scene:     geom.NewScene(),
		yields:    make(map[string]int64),
		catalog:   items.DefaultCatalog(),
		shiftSecs: format.ToSeconds(shiftLength),
		crateSecs: format.ToSeconds(crateInterval),
	}
	c.camera = rl.Camera3D{
		Position:   rl.NewVector3(14, 14, 14),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	if cfg.SettingsPath != "" {
		c.placePath = filepath.Join(filepath.Dir(cfg.SettingsPath), "placements.bin")
	}

	c.pointer = newRaylibPointer(&c.camera)
	c.mouse = NewMouseController(c.pointer, c.scene, MouseOptions{
		RayDistance:  cfg.Settings.Mouse.RayDistance,
		InvertScroll: cfg.Settings.Mouse.InvertScroll,
		Logger:       logger.With("component", "mouse"),
	})
	c.crosshair = NewCrosshair(c.mouse)
	c.building = NewBuildingHotbar(logger.With("component", "building"))
	c.hotbar = NewHotbar(HotbarDeps{
		Catalog:   c.catalog,
		Crosshair: c.crosshair,
		Building:  c.building,
		Logger:    logger.With("component", "hotbar"),
	})
	c.buildMine()
	c.buildButtons()
	return c
}

func (c *client) buildMine() {
	for x := -3; x <= 3; x++ {
		for z := -3; z <= 3; z++ {
			name := fmt.Sprintf("ore-%d-%d", x, z)
			rot := mgl32.Ident3()
			if (x+z)%3 == 0 {
				rot = mgl32.Rotate3DY(mgl32.DegToRad(45))
			}
			pos := mgl32.Vec3{float32(x) * 2.2, 0, float32(z) * 2.2}
			c.scene.Add(&geom.Part{Name: name, Region: geom.RegionFromPart(pos, rot, mgl32.Vec3{1.6, 1.6, 1.6}, 0.05)})
			c.yields[name] = int64(1 + (x*x+z*z)%5)
		}
	}
	c.scene.Add(&geom.Part{Name: "floor", Region: geom.Region{Min: mgl32.Vec3{-9, -1.2, -9}, Max: mgl32.Vec3{9, -0.8, 9}}})
	c.mouse.SetTargetFilter("floor")
}

func (c *client) buildButtons() {
	hover := theme.AccentGold
	if h, err := theme.FromHex(c.set.UI.HoverColor); err == nil {
		hover = h
	}
	mk := func(i int, label string, fn func()) {
		rect := rl.NewRectangle(theme.PaddingM, theme.PaddingM+float32(i)*52, 150, 44)
		b := NewModeButton(rect, label, ModeButtonStyle{
			HoverColor:        hover,
			TextImage:         "assets/ui/mode_" + strings.ToLower(label) + ".png",
			InvertedTextImage: "assets/ui/mode_" + strings.ToLower(label) + "_inverted.png",
		})
		b.OnClick(fn)
		c.buttons = append(c.buttons, b)
	}
	mk(0, "Mine", func() {
		c.building.ExitBuildMode()
		c.mouse.SetBehavior(BehaviorDefault)
		c.status = "Mining"
	})
	mk(1, "Build", func() {
		c.building.EnterBuildMode()
		c.crosshair.Set(MouseIconDrag)
		c.status = "Click the floor to place a support"
	})
	mk(2, "Look", func() {
		c.mouse.SetBehavior(BehaviorLockCenter)
		c.status = "Esc to release the cursor"
	})
}

func (c *client) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(c.width, c.height, "deep-mine")
	rl.SetExitKey(0)
	rl.SetTargetFPS(c.set.Window.FPS)
	initFonts()
	theme.InitSkin()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var updates <-chan settings.Settings
	if c.cfg.SettingsPath != "" {
		w, err := settings.Watch(ctx, c.cfg.SettingsPath, c.logger.With("component", "settings"))
		if err != nil {
			c.logger.Warn("settings hot reload disabled", "err", err)
		} else {
			defer w.Close()
			updates = w.Updates()
		}
	}

	c.start()
	for !c.quit && !rl.WindowShouldClose() {
		select {
		case s := <-updates:
			c.applySettings(s)
		default:
		}

		c.width = int32(rl.GetScreenWidth())
		c.height = int32(rl.GetScreenHeight())
		c.update()

		rl.BeginDrawing()
		rl.ClearBackground(theme.BG)
		c.draw()
		rl.EndDrawing()
		c.mouse.Render()
	}

	c.stop()
	theme.Unload()
	shutdownFonts()
	rl.CloseWindow()
	return nil
}

func (c *client) start() {
	placed, err := loadPlacements(c.placePath)
	if err != nil {
		c.logger.Warn("could not load placements", "path", c.placePath, "err", err)
	}
	for _, p := range placed {
		c.addSupport(p.Vec3())
	}

	c.cancels = append(c.cancels,
		c.mouse.OnClick(c.clickButtons, c.anyButtonHovered),
		c.mouse.OnClick(c.clickHotbar, c.pointerOnHotbar),
		c.mouse.OnClick(c.clickWorld, func() bool {
			return !c.anyButtonHovered() && !c.pointerOnHotbar() && c.mouse.Behavior() == BehaviorDefault
		}),
		c.mouse.OnScroll(c.zoom),
	)
	c.hotbar.Start()
	c.started = time.Now()
	c.logger.Info("client started", "version", c.cfg.Version, "placements", len(placed))
}

func (c *client) stop() {
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
	if err := savePlacements(c.placePath, c.placed); err != nil {
		c.logger.Error("could not save placements", "path", c.placePath, "err", err)
	}
	c.logger.Info("client stopped", "ore", c.ore, "placements", len(c.placed))
}

func (c *client) applySettings(s settings.Settings) {
	c.set = s
	rl.SetTargetFPS(s.Window.FPS)
	c.mouse.SetRayDistance(s.Mouse.RayDistance)
	c.mouse.SetInvertScroll(s.Mouse.InvertScroll)
	if h, err := theme.FromHex(s.UI.HoverColor); err == nil {
		for _, b := range c.buttons {
			b.SetHoverColor(h)
		}
	}
	c.applyLogLevel(s)
	c.logger.Info("settings applied")
}

func (c *client) applyLogLevel(s settings.Settings) {
	if c.cfg.LogLevel == nil {
		return
	}
	if lvl, ok := reloadedLogLevel(s, c.cfg.ForceDebug); ok {
		c.cfg.LogLevel.Set(lvl)
	}
}

// reloadedLogLevel is the level to apply after settings change. A debug
// level forced on the command line wins over the file.
func reloadedLogLevel(s settings.Settings, forceDebug bool) (slog.Level, bool) {
	if forceDebug {
		return slog.LevelDebug, true
	}
	lvl, err := s.Level()
	if err != nil {
		return 0, false
	}
	return lvl, true
}

func (c *client) update() {
	pos := c.mouse.Position()
	for _, b := range c.buttons {
		b.Update(pos)
	}
	c.mouse.Update()
	c.hotbar.Update()

	if c.mouse.Behavior() != BehaviorDefault {
		if rl.IsKeyPressed(rl.KeyEscape) {
			c.mouse.SetBehavior(BehaviorDefault)
		} else {
			c.orbit(c.mouse.Delta())
		}
	}
	if rl.IsKeyPressed(rl.KeyX) {
		if sel := c.hotbar.Selected(); sel != HarvestingToolSlot {
			c.hotbar.RemoveItem(sel)
		}
	}
	if rl.IsKeyPressed(rl.KeyQ) && ctrlDown() {
		c.quit = true
	}

	c.lastTarget = ""
	if part, ok := c.mouse.Target(0); ok {
		c.lastTarget = part.Name
	}
}

func (c *client) anyButtonHovered() bool {
	for _, b := range c.buttons {
		if b.Hovered() {
			return true
		}
	}
	return false
}

func (c *client) pointerOnHotbar() bool {
	pos := c.mouse.Position()
	for _, r := range hotbarSlotRects(c.width, c.height) {
		if pointInRect(pos, r) {
			return true
		}
	}
	return false
}

func (c *client) clickButtons() {
	for _, b := range c.buttons {
		if b.Click() {
			return
		}
	}
}

func (c *client) clickHotbar() {
	c.hotbar.HandleClick(c.mouse.Position(), c.width, c.height)
}

func (c *client) clickWorld() {
	if c.building.Active() {
		c.placeSupport()
		return
	}
	c.mineTarget()
}

func (c *client) mineTarget() {
	it, ok := c.hotbar.Item(c.hotbar.Selected())
	if !ok || !it.Tool {
		c.status = "Select a tool to mine"
		return
	}
	part, ok := c.mouse.Target(0)
	if !ok {
		return
	}
	yield, ok := c.yields[part.Name]
	if !ok {
		return
	}
	if it.Rarity > items.Common {
		yield *= int64(it.Rarity) + 1
	}
	c.ore += yield
	c.status = fmt.Sprintf("+%s ore from %s", format.CommaFormat(yield), part.Name)
	c.grantRewards()
}

func (c *client) grantRewards() {
	for c.rewarded < len(oreRewards) && c.ore >= oreRewards[c.rewarded].at {
		name := oreRewards[c.rewarded].item
		c.rewarded++
		it, ok := c.catalog.ByName(name)
		if !ok {
			c.logger.Warn("reward item missing from catalog", "item", name)
			continue
		}
		if !c.hotbar.PushItem(it) {
			c.status = "Hotbar full, " + it.Name + " dropped"
			c.logger.Info("hotbar full", "item", it.Name)
			continue
		}
		c.status = "Unlocked " + it.Name
	}
}

func (c *client) placeSupport() {
	pos := c.mouse.WorldPosition(0)
	c.addSupport(pos)
	c.placed = append(c.placed, geom.ToStorable(pos))
	c.status = fmt.Sprintf("Placed support at %.1f, %.1f", pos.X(), pos.Z())
}

func (c *client) addSupport(pos mgl32.Vec3) {
	name := fmt.Sprintf("support-%d", len(c.scene.Parts()))
	region := geom.RegionFromPart(pos.Add(mgl32.Vec3{0, 1, 0}), mgl32.Ident3(), mgl32.Vec3{0.4, 2, 0.4}, 0)
	c.scene.Add(&geom.Part{Name: name, Region: region})
}

func (c *client) zoom(direction float32) {
	offset := rlToVec(c.camera.Position).Sub(rlToVec(c.camera.Target))
	dist := offset.Len()
	next := max(minCameraRange, min(maxCameraRange, dist+direction*cameraZoomStep))
	if dist == 0 {
		return
	}
	c.camera.Position = vecToRl(rlToVec(c.camera.Target).Add(offset.Mul(next / dist)))
}

func (c *client) orbit(delta rl.Vector2) {
	if delta.X == 0 {
		return
	}
	offset := rlToVec(c.camera.Position).Sub(rlToVec(c.camera.Target))
	rotated := mgl32.Rotate3DY(-delta.X * lookSensitivity).Mul3x1(offset)
	c.camera.Position = vecToRl(rlToVec(c.camera.Target).Add(rotated))
}

func (c *client) draw() {
	rl.BeginMode3D(c.camera)
	for _, p := range c.scene.Parts() {
		center := vecToRl(p.Region.Center())
		size := vecToRl(p.Region.Size())
		fill := theme.AccentOre
		switch {
		case p.Name == "floor":
			fill = theme.Panel
		case strings.HasPrefix(p.Name, "support-"):
			fill = theme.Border
		case p.Name == c.lastTarget:
			fill = theme.Mix(theme.AccentOre, theme.AccentGold, 0.5)
		}
		rl.DrawCubeV(center, size, fill)
		rl.DrawCubeWiresV(center, size, theme.BG)
	}
	rl.EndMode3D()

	for _, b := range c.buttons {
		b.Draw()
	}
	c.building.Draw(c.width)
	c.hotbar.Draw(c.width, c.height)
	c.drawStats()
}

func (c *client) drawStats() {
	x := c.width - 280
	y := int32(theme.PaddingM)
	line := func(text string, clr rl.Color) {
		theme.DrawText(text, x, y, theme.Type.Body, clr)
		y += theme.Type.Body + 8
	}

	line("Ore "+format.SuffixedNumber(c.ore), theme.AccentGold)
	if c.ore >= 100_000 {
		line(format.CommaFormat(c.ore)+" total", theme.TextMuted)
	}
	if c.set.UI.ShowTimers {
		elapsed := int64(time.Since(c.started).Seconds())
		left := max(0, c.shiftSecs-elapsed)
		if timer, err := format.TimerFormat(left); err == nil {
			line("Shift "+timer, theme.TextPrimary)
		}
		if c.crateSecs > 0 {
			next := c.crateSecs - elapsed%c.crateSecs
			if remaining, err := format.RemainingTime(next); err == nil {
				line("Crate in "+remaining, theme.TextMuted)
			}
		}
	}
	if c.lastTarget != "" {
		line(c.lastTarget, theme.TextMuted)
	}
	if c.status != "" {
		theme.DrawText(c.status, int32(theme.PaddingM), c.height-int32(theme.SlotSize+theme.SlotMargin)-40, theme.Type.Small, theme.TextPrimary)
	}
	theme.DrawText(fmt.Sprintf("v%s", c.cfg.Version), int32(theme.PaddingM), c.height-24, theme.Type.Small, theme.TextMuted)
}

func rlToVec(v rl.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func vecToRl(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}
