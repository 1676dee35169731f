package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blocky/internal/core"
)

// KeyMap defines the key bindings of a game. Each binding maps to one
// core.Action.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	LevelUp    key.Binding
	LevelDown  key.Binding
	RotateCW   key.Binding
	RotateCCW  key.Binding
	SwapH      key.Binding
	SwapV      key.Binding
	Smash      key.Binding
	Combine    key.Binding
	Paint      key.Binding
	Pass       key.Binding
	Trigger    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LevelUp, k.LevelDown, k.RotateCW, k.SwapH, k.Smash, k.Paint, k.Trigger, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.LevelUp, k.LevelDown},
		{k.RotateCW, k.RotateCCW, k.SwapH, k.SwapV},
		{k.Smash, k.Combine, k.Paint, k.Pass},
		{k.Trigger, k.Pause, k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		LevelUp:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "bigger block")),
		LevelDown:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "smaller block")),
		RotateCW:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rotate cw")),
		RotateCCW:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "rotate ccw")),
		SwapH:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "swap left/right")),
		SwapV:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "swap top/bottom")),
		Smash:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "smash")),
		Combine:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "combine")),
		Paint:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "paint")),
		Pass:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pass")),
		Trigger:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "computer move")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new game")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// actions pairs each game binding with its action, in FullHelp order.
func (k KeyMap) actions() []struct {
	binding key.Binding
	action  core.Action
} {
	return []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.LevelUp, core.ActionLevelUp},
		{k.LevelDown, core.ActionLevelDown},
		{k.RotateCW, core.ActionRotateCW},
		{k.RotateCCW, core.ActionRotateCCW},
		{k.SwapH, core.ActionSwapHorizontal},
		{k.SwapV, core.ActionSwapVertical},
		{k.Smash, core.ActionSmash},
		{k.Combine, core.ActionCombine},
		{k.Paint, core.ActionPaint},
		{k.Pass, core.ActionPass},
		{k.Trigger, core.ActionTrigger},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Quit, core.ActionQuit},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, a := range k.actions() {
		if key.Matches(msg, a.binding) {
			return a.action, a.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a mouse press in an input frame: the pointer
// moves to the pressed cell and a left click also lets a computer player
// move.
func MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}
	frame.SetPointer(msg.X, msg.Y)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionTrigger)
	}
}
