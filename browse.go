// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/slovar/dictionary"
)

// Focus targets, in tab order.
const (
	focusInput = iota
	focusWords
	focusCard
	focusCount
)

// BrowseModel is the Bubble Tea state of the browse screen.
type BrowseModel struct {
	ready bool

	input textinput.Model
	words list.Model
	card  viewport.Model

	dict           *dictionary.Dictionary
	cards          *cache.Cache
	renderMarkdown bool
	renderer       *glamour.TermRenderer

	focusIndex int
	matches    []dictionary.WordPair
	lastQuery  string
	banner     string
	status     string

	styles *Styles

	width  int
	height int
}

// Styles holds all the styling for the browse screen
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	Banner         lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(accentColor()).
			Padding(0, 1).
			Bold(true),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Padding(0, 1),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// wordItem is one row of the word list.
type wordItem struct {
	pair dictionary.WordPair
}

func (i wordItem) FilterValue() string { return i.pair.Key }
func (i wordItem) Title() string       { return i.pair.Key }
func (i wordItem) Description() string { return i.pair.Value }

// clipboardMsg reports the result of a copy.
type clipboardMsg struct {
	text string
	err  error
}

func NewBrowseModel(d *dictionary.Dictionary, cfg BrowseConfig, now time.Time) BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "Type an English word..."
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	words := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	words.SetShowTitle(false)
	words.SetShowHelp(false)
	words.SetFilteringEnabled(false)

	card := viewport.New(0, 0)
	card.SetContent("Select a word to see its card...")

	var renderer *glamour.TermRenderer
	if cfg.RenderMarkdown {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	}

	m := BrowseModel{
		input:          ti,
		words:          words,
		card:           card,
		dict:           d,
		cards:          NewCardCache(time.Duration(cfg.CardCacheMinutes) * time.Minute),
		renderMarkdown: renderer != nil,
		renderer:       renderer,
		focusIndex:     focusInput,
		banner:         getBanner(d, now),
		styles:         NewStyles(),
	}
	m.updateWords("")
	return m
}

func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width >= 30 && m.height >= 10 {
			m.updateLayout()
		}
		m.ready = true

	case clipboardMsg:
		if msg.err != nil {
			m.status = m.styles.ErrorMessage.Render("copy failed: " + msg.err.Error())
		} else {
			m.status = m.styles.SuccessMessage.Render("📋 copied " + msg.text)
		}
	}
	return m, nil
}

func (m BrowseModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.setFocus((m.focusIndex + 1) % focusCount)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
		return m, nil
	case "ctrl+y":
		pair, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, copyCmd(pair.Value)
	case "up", "down", "pgup", "pgdown":
		switch m.focusIndex {
		case focusWords:
			var cmd tea.Cmd
			m.words, cmd = m.words.Update(msg)
			m.updateCard()
			return m, cmd
		case focusCard:
			var cmd tea.Cmd
			m.card, cmd = m.card.Update(msg)
			return m, cmd
		}
	case "enter":
		if m.focusIndex == focusInput && len(m.matches) > 0 {
			m.setFocus(focusWords)
		}
		return m, nil
	}

	if m.focusIndex != focusInput {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if q := m.input.Value(); q != m.lastQuery {
		m.updateWords(q)
	}
	return m, cmd
}

func (m *BrowseModel) setFocus(i int) {
	m.focusIndex = i
	if i == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// updateWords lists the words starting with query, in dictionary order.
func (m *BrowseModel) updateWords(query string) {
	m.lastQuery = query
	m.matches = m.dict.SearchPrefix(query)

	items := make([]list.Item, len(m.matches))
	for i, p := range m.matches {
		items[i] = wordItem{pair: p}
	}
	m.words.SetItems(items)
	m.words.Select(0)
	m.updateCard()
}

func (m BrowseModel) selected() (dictionary.WordPair, bool) {
	i := m.words.Index()
	if i < 0 || i >= len(m.matches) {
		return dictionary.WordPair{}, false
	}
	return m.matches[i], true
}

func (m *BrowseModel) updateCard() {
	pair, ok := m.selected()
	if !ok {
		if m.lastQuery != "" {
			m.card.SetContent(fmt.Sprintf("No words start with %q.", m.lastQuery))
		} else {
			m.card.SetContent("The dictionary is empty. Add words with `slovar add`.")
		}
		return
	}
	m.card.SetContent(m.cardFor(pair))
	m.card.GotoTop()
}

// cardFor returns the rendered card for pair, rendering it at most once
// per cache lifetime.
func (m *BrowseModel) cardFor(pair dictionary.WordPair) string {
	if card := GetCard(m.cards, pair.Key, pair.Value); card != "" {
		return card
	}

	card := cardMarkdown(pair)
	if m.renderMarkdown {
		if rendered, err := m.renderer.Render(card); err == nil {
			card = rendered
		}
	}
	CacheCard(m.cards, pair.Key, pair.Value, card)
	return card
}

func cardMarkdown(pair dictionary.WordPair) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", pair.Key)
	if pair.Value == "" {
		b.WriteString("_no translation yet_\n")
	} else {
		fmt.Fprintf(&b, "**%s**\n", pair.Value)
	}
	return b.String()
}

func (m BrowseModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.boxStyle(focusInput).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(m.title(focusInput, " 🔍 Search")),
			m.input.View(),
		))

	wordsBox := m.boxStyle(focusWords).
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(m.title(focusWords, fmt.Sprintf(" 📋 Words (%d)", len(m.matches)))),
			m.words.View(),
		))

	cardBox := m.boxStyle(focusCard).
		Width(rightWidth).
		Height(inputHeight + listHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(m.title(focusCard, " 📖 Card")),
			m.card.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, wordsBox),
		cardBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Banner.Render(m.banner),
		main,
		m.renderHelp(),
	)
}

func (m BrowseModel) boxStyle(target int) lipgloss.Style {
	if m.focusIndex == target {
		return m.styles.BorderFocused
	}
	return m.styles.BorderBlurred
}

func (m BrowseModel) title(target int, title string) string {
	if m.focusIndex == target {
		return title + " (Active) "
	}
	return title + " "
}

func (m *BrowseModel) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.input.Width = leftWidth - 4
	m.words.SetSize(leftWidth-2, listHeight-2)
	m.card.Width = rightWidth - 2
	m.card.Height = inputHeight + listHeight
}

func (m BrowseModel) renderHelp() string {
	keys := []string{"tab", "↑/↓", "ctrl+y", "esc"}
	descs := []string{"switch focus", "move", "copy translation", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	line := strings.Join(helpEntries, " • ")
	if m.status != "" {
		line += "   " + m.status
	}
	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(line)
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: clipboard.WriteAll(text)}
	}
}

// runBrowse starts the browse screen on d.
func runBrowse(d *dictionary.Dictionary, cfg BrowseConfig) error {
	program := tea.NewProgram(
		NewBrowseModel(d, cfg, time.Now()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
