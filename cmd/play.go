package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/taki/internal/card"
	"github.com/arcanaland/taki/internal/deck"
	"github.com/arcanaland/taki/internal/game"
	"github.com/arcanaland/taki/internal/render"
	"github.com/arcanaland/taki/internal/sound"
	"github.com/arcanaland/taki/internal/visual"
)

const (
	slotWidth  = 8 // card width plus a gap
	cardHeight = 6
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the card table in the terminal",
	Long: `Play deals a hand and opens the card table.

Keys:
  space   draw a card from the bank
  q, Esc  quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadSettings()

		cat, source, err := loadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("error loading card designs: %w", err)
		}
		logger.Debug("card designs loaded", zap.String("source", source), zap.Int("sections", cat.Len()))

		g, err := game.Setup(game.Options{HandSize: cfg.HandSize, ShuffleRounds: cfg.ShuffleRounds})
		if err != nil {
			return err
		}

		var snd *sound.Player
		if on, _ := cmd.Flags().GetBool("sound"); on {
			if snd, err = sound.NewPlayer(); err != nil {
				logger.Warn("sound disabled", zap.Error(err))
			}
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()

		t := newTable(screen, g, visual.NewResolver(cat), snd)
		return t.run()
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Bool("sound", false, "Play a tone when drawing")
}

// table is the play screen: one player's hand and the bank
type table struct {
	screen   tcell.Screen
	game     *game.Game
	player   *game.Player
	resolver *visual.Resolver
	sound    *sound.Player
	status   string
}

func newTable(screen tcell.Screen, g *game.Game, res *visual.Resolver, snd *sound.Player) *table {
	return &table{
		screen:   screen,
		game:     g,
		player:   g.Players[0],
		resolver: res,
		sound:    snd,
	}
}

func (t *table) run() error {
	for {
		if err := t.draw(); err != nil {
			return err
		}
		if !t.handle(t.screen.PollEvent()) {
			return nil
		}
	}
}

// handle applies one event and reports whether the table stays open
func (t *table) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				t.drawCard()
			}
		}
	case nil:
		// Screen finalized
		return false
	}
	return true
}

// drawCard moves the bank's top card into the player's hand
func (t *table) drawCard() {
	err := t.game.Draw(t.player)
	switch {
	case errors.Is(err, deck.ErrEmptyDeck):
		t.status = "The bank is empty"
		t.sound.Play(sound.EmptyTone, 80*time.Millisecond)
	case err != nil:
		t.status = err.Error()
	default:
		t.status = ""
		t.sound.Play(sound.DrawTone, 50*time.Millisecond)
	}
}

// draw renders a full frame. Every card is resolved again, so wild cards
// change colors on each frame.
func (t *table) draw() error {
	t.screen.Clear()
	width, height := t.screen.Size()

	title := "Taki!"
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkCyan).Background(tcell.ColorGray).Bold(true)
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, 0, ' ', nil, titleStyle)
	}
	render.DrawString(t.screen, (width-len(title))/2, 0, title, titleStyle)

	// Hand along the bottom, above the status line, newest card first
	hand := t.player.Hand.Items()
	fit := max((width-3)/slotWidth, 1)
	shown := hand
	if len(shown) > fit {
		shown = shown[:fit]
	}

	boxW := len(shown)*slotWidth + 3
	boxX := max((width-boxW)/2, 0)
	boxY := height - cardHeight - 5

	// Bank, face down, in the right quarter and clear of the hand
	bankX := min(3*width/4, width-slotWidth-1)
	bankY := max(min(height/2-cardHeight, boxY-cardHeight-2), 1)
	t.drawBox(bankX, bankY, slotWidth+1, cardHeight+2, fmt.Sprintf("Bank %d", t.game.Bank.Len()))
	if t.game.Bank.Len() > 0 {
		back, err := t.resolver.Resolve(card.Back)
		if err != nil {
			return err
		}
		render.DrawFace(t.screen, bankX+1, bankY+1, back)
	}

	label := fmt.Sprintf("Your Cards (%d)", t.player.HandSize())
	if len(hand) > len(shown) {
		label += fmt.Sprintf(" +%d hidden", len(hand)-len(shown))
	}
	t.drawBox(boxX, boxY, boxW, cardHeight+4, label)

	for i, c := range shown {
		face, err := t.resolver.Resolve(c)
		if err != nil {
			return err
		}
		render.DrawFace(t.screen, boxX+2+i*slotWidth, boxY+2, face)
	}

	if t.status != "" {
		render.DrawString(t.screen, 1, height-1, t.status, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	} else {
		render.DrawString(t.screen, 1, height-1, "space: draw  q: quit", tcell.StyleDefault.Dim(true))
	}

	t.screen.Show()
	return nil
}

// drawBox draws a single line border with a title on the top edge
func (t *table) drawBox(x, y, w, h int, title string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i := x + 1; i < x+w-1; i++ {
		t.screen.SetContent(i, y, '─', nil, style)
		t.screen.SetContent(i, y+h-1, '─', nil, style)
	}
	for j := y + 1; j < y+h-1; j++ {
		t.screen.SetContent(x, j, '│', nil, style)
		t.screen.SetContent(x+w-1, j, '│', nil, style)
	}
	t.screen.SetContent(x, y, '┌', nil, style)
	t.screen.SetContent(x+w-1, y, '┐', nil, style)
	t.screen.SetContent(x, y+h-1, '└', nil, style)
	t.screen.SetContent(x+w-1, y+h-1, '┘', nil, style)
	render.DrawString(t.screen, x+1, y, title, style)
}
