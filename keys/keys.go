package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyName int

const (
	KeyUp KeyName = iota
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyTop
	KeyBottom

	KeyNextSection
	KeyPrevSection
	// KeySection1 through KeySection5 jump straight to the nth section.
	KeySection1
	KeySection2
	KeySection3
	KeySection4
	KeySection5

	KeyToggleTheme
	KeyToggleSnap
	KeyMenu
	KeyTOC // Opens the table of contents (toggle on tablet)
	KeyDownloadCV
	KeyCopyEmail
	KeyPrefs
	KeyStatusBar
	KeyVersion
	KeyHelp
	KeyEscape
	KeyQuit
)

// GlobalKeyStringsMap is a global, immutable map string to keybinding.
var GlobalKeyStringsMap = map[string]KeyName{
	"up":        KeyUp,
	"k":         KeyUp,
	"down":      KeyDown,
	"j":         KeyDown,
	"pgup":      KeyPageUp,
	"b":         KeyPageUp,
	"pgdown":    KeyPageDown,
	" ":         KeyPageDown,
	"g":         KeyTop,
	"home":      KeyTop,
	"G":         KeyBottom,
	"end":       KeyBottom,
	"n":         KeyNextSection,
	"tab":       KeyNextSection,
	"p":         KeyPrevSection,
	"shift+tab": KeyPrevSection,
	"1":         KeySection1,
	"2":         KeySection2,
	"3":         KeySection3,
	"4":         KeySection4,
	"5":         KeySection5,
	"t":         KeyToggleTheme,
	"s":         KeyToggleSnap,
	"m":         KeyMenu,
	"T":         KeyTOC,
	"d":         KeyDownloadCV,
	"c":         KeyCopyEmail,
	",":         KeyPrefs,
	"i":         KeyStatusBar,
	"v":         KeyVersion,
	"?":         KeyHelp,
	"esc":       KeyEscape,
	"q":         KeyQuit,
	"ctrl+c":    KeyQuit,
}

// SectionIndex maps KeySection1..KeySection5 to a zero-based section index.
func SectionIndex(k KeyName) (int, bool) {
	if k < KeySection1 || k > KeySection5 {
		return 0, false
	}
	return int(k - KeySection1), true
}

// GlobalkeyBindings is a global, immutable map of KeyName tot keybinding.
var GlobalkeyBindings = map[KeyName]key.Binding{
	KeyUp: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	KeyDown: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	KeyPageUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("pgup/b", "page up"),
	),
	KeyPageDown: key.NewBinding(
		key.WithKeys("pgdown", " "),
		key.WithHelp("pgdn/space", "page down"),
	),
	KeyTop: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	KeyBottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	KeyNextSection: key.NewBinding(
		key.WithKeys("n", "tab"),
		key.WithHelp("n/tab", "next section"),
	),
	KeyPrevSection: key.NewBinding(
		key.WithKeys("p", "shift+tab"),
		key.WithHelp("p", "previous section"),
	),
	KeySection1: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "jump to section"),
	),
	KeyToggleTheme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	KeyToggleSnap: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "scroll snap"),
	),
	KeyMenu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	KeyTOC: key.NewBinding(
		key.WithKeys("T"),
		key.WithHelp("T", "contents"),
	),
	KeyDownloadCV: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "download cv"),
	),
	KeyCopyEmail: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy email"),
	),
	KeyPrefs: key.NewBinding(
		key.WithKeys(","),
		key.WithHelp(",", "preferences"),
	),
	KeyStatusBar: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "status line"),
	),
	KeyVersion: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "version"),
	),
	KeyHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	KeyEscape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	KeyQuit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// HelpOrder is the order bindings appear in the help overlay.
var HelpOrder = []KeyName{
	KeyDown, KeyUp, KeyPageDown, KeyPageUp, KeyTop, KeyBottom,
	KeyNextSection, KeyPrevSection, KeySection1,
	KeyToggleTheme, KeyToggleSnap, KeyMenu, KeyTOC,
	KeyDownloadCV, KeyCopyEmail, KeyPrefs, KeyStatusBar, KeyVersion, KeyHelp, KeyQuit,
}
