package gui

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/deep-mine/internal/items"
	"github.com/appengine-ltd/deep-mine/internal/ui/theme"
)

const (
	// HotbarSlots is the number of slots, selected with keys 1 to 6.
	HotbarSlots = 6
	// HarvestingToolSlot always holds the pickaxe and cannot be cleared.
	HarvestingToolSlot = 1
)

type cursorSetter interface {
	Set(icon MouseIcon)
}

type buildModeExiter interface {
	ExitBuildMode()
}

type hotbarSlot struct {
	itemName string
	filled   bool
}

type HotbarDeps struct {
	Catalog   *items.Catalog
	Crosshair cursorSetter
	Building  buildModeExiter
	Keys      KeyInput
	Logger    *slog.Logger
}

// Hotbar is the row of quick-select slots at the bottom of the screen. Slots
// are numbered from 1; slot 1 is the harvesting tool.
type Hotbar struct {
	slots    [HotbarSlots]hotbarSlot
	selected int

	catalog   *items.Catalog
	crosshair cursorSetter
	building  buildModeExiter
	keys      KeyInput
	logger    *slog.Logger
}

func NewHotbar(deps HotbarDeps) *Hotbar {
	if deps.Catalog == nil {
		deps.Catalog = items.DefaultCatalog()
	}
	if deps.Keys == nil {
		deps.Keys = raylibKeys{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Hotbar{
		catalog:   deps.Catalog,
		crosshair: deps.Crosshair,
		building:  deps.Building,
		keys:      deps.Keys,
		logger:    deps.Logger,
	}
}

// Start equips the default pickaxe and selects it.
func (h *Hotbar) Start() {
	h.SetHarvestingTool(items.DefaultPickaxe)
	h.SelectSlot(HarvestingToolSlot)
}

func (h *Hotbar) SetHarvestingTool(pickaxe items.Item) {
	h.slots[HarvestingToolSlot-1] = hotbarSlot{itemName: pickaxe.Name, filled: true}
}

// PushItem puts it in the first empty regular slot. It reports false when the
// hotbar is full.
func (h *Hotbar) PushItem(it items.Item) bool {
	slot, ok := h.firstEmptySlot()
	if !ok {
		return false
	}
	h.AddItem(slot, it)
	return true
}

func (h *Hotbar) AddItem(slot int, it items.Item) {
	if slot == HarvestingToolSlot || !validSlot(slot) {
		return
	}
	h.slots[slot-1] = hotbarSlot{itemName: it.Name, filled: true}
}

// RemoveItem clears slot and falls back to the harvesting tool.
func (h *Hotbar) RemoveItem(slot int) {
	if slot == HarvestingToolSlot || !validSlot(slot) {
		return
	}
	h.slots[slot-1] = hotbarSlot{}
	h.SelectSlot(HarvestingToolSlot)
}

// SelectSlot makes slot the active one. Empty regular slots are ignored.
func (h *Hotbar) SelectSlot(slot int) {
	if !validSlot(slot) {
		return
	}
	s := h.slots[slot-1]
	if slot != HarvestingToolSlot && !s.filled {
		return
	}

	it, ok := h.catalog.ByName(s.itemName)
	if !ok {
		attrs := []any{"slot", slot, "item", s.itemName}
		if guess, found := h.catalog.Suggest(s.itemName); found {
			attrs = append(attrs, "did_you_mean", guess)
		}
		h.logger.Warn("failed to select slot: could not fetch item info", attrs...)
		return
	}

	if h.crosshair != nil {
		h.crosshair.Set(it.HoldIcon)
	}
	h.selected = slot
	if h.building != nil {
		h.building.ExitBuildMode()
	}
}

// Selected returns the active slot, or 0 before anything is selected.
func (h *Hotbar) Selected() int {
	return h.selected
}

// Item returns the item definition held in slot.
func (h *Hotbar) Item(slot int) (items.Item, bool) {
	if !validSlot(slot) || !h.slots[slot-1].filled {
		return items.Item{}, false
	}
	return h.catalog.ByName(h.slots[slot-1].itemName)
}

func (h *Hotbar) Empty(slot int) bool {
	return validSlot(slot) && !h.slots[slot-1].filled
}

// Update selects a slot when its number key is pressed.
func (h *Hotbar) Update() {
	for slot := 1; slot <= HotbarSlots; slot++ {
		if h.keys.KeyPressed(rl.KeyOne + int32(slot-1)) {
			h.SelectSlot(slot)
		}
	}
}

// HandleClick selects the slot under pos and reports whether one was hit.
func (h *Hotbar) HandleClick(pos rl.Vector2, screenW, screenH int32) bool {
	for i, r := range hotbarSlotRects(screenW, screenH) {
		if pointInRect(pos, r) {
			h.SelectSlot(i + 1)
			return true
		}
	}
	return false
}

func (h *Hotbar) Draw(screenW, screenH int32) {
	for i, rect := range hotbarSlotRects(screenW, screenH) {
		slot := i + 1
		label := string(rune('0' + slot))
		it, ok := h.Item(slot)
		if !ok {
			theme.DrawSlot(rect, theme.EmptySlot, true, slot == h.selected, rl.Texture2D{}, label)
			continue
		}
		theme.DrawSlot(rect, theme.RarityColor(it.Rarity), false, slot == h.selected, theme.Icon(it.Icon), label)
	}
}

func (h *Hotbar) firstEmptySlot() (int, bool) {
	for slot := HarvestingToolSlot + 1; slot <= HotbarSlots; slot++ {
		if !h.slots[slot-1].filled {
			return slot, true
		}
	}
	return 0, false
}

func validSlot(slot int) bool {
	return slot >= 1 && slot <= HotbarSlots
}

// hotbarSlotRects lays the slots out centred along the bottom edge.
func hotbarSlotRects(screenW, screenH int32) [HotbarSlots]rl.Rectangle {
	var rects [HotbarSlots]rl.Rectangle
	total := HotbarSlots*theme.SlotSize + (HotbarSlots-1)*theme.SlotGap
	x := (float32(screenW) - total) / 2
	y := float32(screenH) - theme.SlotSize - theme.SlotMargin
	for i := range rects {
		rects[i] = rl.NewRectangle(x+float32(i)*(theme.SlotSize+theme.SlotGap), y, theme.SlotSize, theme.SlotSize)
	}
	return rects
}

func pointInRect(p rl.Vector2, r rl.Rectangle) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
