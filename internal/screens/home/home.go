package home

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/rlemos/provinha/internal/content"
	"github.com/rlemos/provinha/internal/router"
	"github.com/rlemos/provinha/internal/screen"
	"github.com/rlemos/provinha/internal/screens/history"
	"github.com/rlemos/provinha/internal/screens/player"
	"github.com/rlemos/provinha/internal/ui/components"
)

// HomeScreen is the entry screen: content card, recent stats and menu.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	item       *content.Item
	attempts   int
	bestPoints int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen for one loaded content item.
func New(item *content.Item, deps player.Deps) *HomeScreen {
	var attempts, best int
	if deps.Events != nil {
		rows, err := deps.Events.RecentAttempts(context.Background(), 100)
		if err == nil {
			attempts = len(rows)
			for _, r := range rows {
				if r.TotalPoints > best {
					best = r.TotalPoints
				}
			}
		}
	}

	menuLabels := []string{"COMEÇAR PROVA", "HISTÓRICO", "SAIR"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: player.New(item, deps)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if deps.Events == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Events)}
			}
		}, Disabled: deps.Events == nil},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		item:       item,
		attempts:   attempts,
		bestPoints: best,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderContentCard(h.item, cw),
		renderStatsBar(h.attempts, h.bestPoints, cw, compact),
		renderMenuBox(h.menuLabels, h.menu.Selected, cw),
	}

	content := ""
	for i, s := range sections {
		if i > 0 {
			content += "\n\n"
		}
		content += s
	}

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Início"
}
