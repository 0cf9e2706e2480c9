package gui

// Crosshair shows the cursor that matches the held item.
type Crosshair struct {
	mouse   *MouseController
	current MouseIcon
}

func NewCrosshair(mouse *MouseController) *Crosshair {
	return &Crosshair{mouse: mouse}
}

func (c *Crosshair) Set(icon MouseIcon) {
	c.current = icon
	c.mouse.SetIcon(icon)
}

func (c *Crosshair) Current() MouseIcon {
	return c.current
}
