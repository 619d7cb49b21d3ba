// ABOUTME: Built-in themes: default, dark, light and mono
// ABOUTME: Builtin returns a private copy so callers may edit the sheet

package theme

import (
	"sort"

	"github.com/mauromedda/gridtui/pkg/tui/style"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "default"

var builtins = map[string]*Theme{
	"default": {Name: "default", Sheet: style.Sheet{
		ClassTitle:                            newRule().font(style.Bold).done(),
		ClassPanel:                            newRule().outline(style.White).done(),
		style.Key(ClassPanel, style.Hovered):  newRule().outline(style.Cyan).done(),
		style.Key(ClassButton, style.Hovered): newRule().font(style.Underline).done(),
		style.Key(ClassButton, style.Clicked): newRule().fg(style.Black).bg(style.White).done(),
		style.Key(ClassMenu, style.Selected):  newRule().fg(style.Black).bg(style.Magenta).done(),
		ClassMenu:                             newRule().cursor(style.Magenta, style.None).done(),
		style.Key(ClassTab, style.Clicked):    newRule().fg(style.Red).done(),
		ClassInput:                            newRule().cursor(style.Black, style.White).done(),
		ClassStatus:                           newRule().fg(style.White).bg(style.Blue).done(),
		ClassError:                            newRule().fg(style.Red).font(style.Bold).done(),
	}},
	"dark": {Name: "dark", Sheet: style.Sheet{
		ClassRoot:                             newRule().fg(style.RGB(0xd0, 0xd0, 0xd0)).done(),
		ClassTitle:                            newRule().fg(style.RGB(0xff, 0xaf, 0x00)).font(style.Bold).done(),
		ClassPanel:                            newRule().outline(style.RGB(0x58, 0x58, 0x58)).done(),
		style.Key(ClassPanel, style.Hovered):  newRule().outline(style.RGB(0x87, 0xd7, 0xff)).done(),
		style.Key(ClassButton, style.Hovered): newRule().fg(style.RGB(0x87, 0xd7, 0xff)).done(),
		style.Key(ClassButton, style.Clicked): newRule().fg(style.Black).bg(style.RGB(0x87, 0xd7, 0xff)).done(),
		style.Key(ClassMenu, style.Selected):  newRule().fg(style.Black).bg(style.RGB(0xd7, 0x87, 0xff)).done(),
		ClassMenu:                             newRule().cursor(style.RGB(0xd7, 0x87, 0xff), style.None).done(),
		style.Key(ClassTab, style.Clicked):    newRule().fg(style.RGB(0xff, 0x5f, 0x5f)).done(),
		ClassInput:                            newRule().cursor(style.Black, style.RGB(0xd0, 0xd0, 0xd0)).done(),
		ClassStatus:                           newRule().fg(style.RGB(0xd0, 0xd0, 0xd0)).bg(style.RGB(0x30, 0x30, 0x30)).done(),
		ClassError:                            newRule().fg(style.RGB(0xff, 0x5f, 0x5f)).font(style.Bold).done(),
	}},
	"light": {Name: "light", Sheet: style.Sheet{
		ClassRoot:                             newRule().fg(style.Black).done(),
		ClassTitle:                            newRule().fg(style.RGB(0xaf, 0x5f, 0x00)).font(style.Bold).done(),
		ClassPanel:                            newRule().outline(style.RGB(0xb2, 0xb2, 0xb2)).done(),
		style.Key(ClassPanel, style.Hovered):  newRule().outline(style.Blue).done(),
		style.Key(ClassButton, style.Hovered): newRule().fg(style.Blue).done(),
		style.Key(ClassButton, style.Clicked): newRule().fg(style.White).bg(style.Blue).done(),
		style.Key(ClassMenu, style.Selected):  newRule().fg(style.White).bg(style.Magenta).done(),
		ClassMenu:                             newRule().cursor(style.Magenta, style.None).done(),
		style.Key(ClassTab, style.Clicked):    newRule().fg(style.RGB(0xd7, 0x00, 0x00)).done(),
		ClassInput:                            newRule().cursor(style.White, style.Black).done(),
		ClassStatus:                           newRule().fg(style.Black).bg(style.RGB(0xe4, 0xe4, 0xe4)).done(),
		ClassError:                            newRule().fg(style.RGB(0xd7, 0x00, 0x00)).font(style.Bold).done(),
	}},
	"mono": {Name: "mono", Sheet: style.Sheet{
		ClassTitle:                            newRule().font(style.Bold).done(),
		style.Key(ClassButton, style.Hovered): newRule().font(style.Underline).done(),
		style.Key(ClassButton, style.Clicked): newRule().font(style.Reverse).done(),
		style.Key(ClassMenu, style.Selected):  newRule().font(style.Reverse).done(),
		style.Key(ClassTab, style.Clicked):    newRule().font(style.Bold).done(),
		ClassInput:                            newRule().done(),
		ClassStatus:                           newRule().font(style.Reverse).done(),
		ClassError:                            newRule().font(style.Fonts(style.Bold, style.Underline)).done(),
	}},
}

// Builtin returns a copy of the named built-in theme, or nil.
func Builtin(name string) *Theme {
	return builtins[name].Clone()
}

// BuiltinNames returns the built-in theme names sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
