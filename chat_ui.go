package main

import (
	"image/color"
	"strings"

	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/robotButler/battlelines/common"
)

// ChatUI is the in-game chat overlay: a history readout and a text entry
// line, with clipboard paste. While open it owns the keyboard, so the game
// skips action handling until it closes.
type ChatUI struct {
	ui          *ebitenui.UI
	entry       *widget.TextInput
	historyText *widget.Text

	history    []string
	maxHistory int
	open       bool

	clipboardOK bool
}

func NewChatUI(maxHistory int) *ChatUI {
	if maxHistory <= 0 {
		maxHistory = 50
	}
	c := &ChatUI{maxHistory: maxHistory}

	// clipboard needs a one-time init; paste quietly disables on failure
	c.clipboardOK = clipboard.Init() == nil

	panelImg := imageui.NewNineSliceColor(color.NRGBA{0x00, 0x00, 0x00, 0xb4})
	entryImg := imageui.NewNineSliceColor(color.NRGBA{0x22, 0x22, 0x22, 0xff})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{0x33, 0x33, 0x33, 0xff})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{0xff, 0xff, 0xff, 0xff}
	gray := color.NRGBA{0xaa, 0xaa, 0xaa, 0xff}

	c.historyText = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
	)

	c.entry = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, 22),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{Idle: entryImg, Disabled: entryImg}),
		widget.TextInputOpts.Face(&face),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          white,
			Disabled:      gray,
			Caret:         white,
			DisabledCaret: gray,
		}),
		widget.TextInputOpts.CaretWidth(2),
		widget.TextInputOpts.Placeholder("say something"),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			c.submit(args.InputText)
		}),
	)

	pasteBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Paste", &face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			c.paste()
		}),
	)

	entryRow := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true})),
	)
	entryRow.AddChild(c.entry)
	entryRow.AddChild(pasteBtn)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	panel.AddChild(c.historyText)
	panel.AddChild(entryRow)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	c.ui = &ebitenui.UI{Container: root}
	return c
}

func (c *ChatUI) IsOpen() bool { return c.open }

func (c *ChatUI) Open() {
	c.open = true
	c.entry.Focus(true)
}

func (c *ChatUI) Close() {
	c.open = false
	c.entry.Focus(false)
}

func (c *ChatUI) Update() {
	if !c.open {
		return
	}
	c.ui.Update()
}

func (c *ChatUI) Draw(screen *ebiten.Image) {
	if !c.open {
		return
	}
	c.ui.Draw(screen)
}

func (c *ChatUI) submit(line string) {
	line = strings.TrimSpace(line)
	if line != "" {
		c.history = append(c.history, line)
		if len(c.history) > c.maxHistory {
			c.history = c.history[len(c.history)-c.maxHistory:]
		}
		// show the last few lines above the entry
		tail := c.history
		if len(tail) > 6 {
			tail = tail[len(tail)-6:]
		}
		c.historyText.Label = strings.Join(tail, "\n")
	}
	c.entry.SetText("")
}

func (c *ChatUI) paste() {
	if !c.clipboardOK {
		return
	}
	txt := string(clipboard.Read(clipboard.FmtText))
	if txt == "" {
		return
	}
	c.entry.SetText(c.entry.GetText() + txt)
}
