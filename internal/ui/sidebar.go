package ui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/sidechat/internal/config"
	"github.com/zhubert/sidechat/internal/keys"
)

// Branding shown at the top of the sidebar
const (
	BrandTitle    = "林子"
	BrandSubtitle = "公众号：是林子呀"
)

// Sidebar glyphs
const (
	iconLogo     = "◉"
	iconMasks    = "◧"
	iconPlugins  = "⧉"
	iconDelete   = "✕"
	iconSettings = "⚙"
	iconContact  = "✉"
	iconNewChat  = "+"

	handleIdle   = "│"
	handleActive = "┃"
)

// SidebarAction identifies the control under a point on the sidebar
type SidebarAction int

const (
	ActionNone SidebarAction = iota
	ActionDragHandle
	ActionContact
	ActionMasks
	ActionPlugins
	ActionSelectChat
	ActionHome
	ActionDelete
	ActionSettings
	ActionNewChat
)

func (a SidebarAction) String() string {
	switch a {
	case ActionDragHandle:
		return "drag-handle"
	case ActionContact:
		return "contact"
	case ActionMasks:
		return "masks"
	case ActionPlugins:
		return "plugins"
	case ActionSelectChat:
		return "select-chat"
	case ActionHome:
		return "home"
	case ActionDelete:
		return "delete"
	case ActionSettings:
		return "settings"
	case ActionNewChat:
		return "new-chat"
	default:
		return "none"
	}
}

// SidebarHit is the result of hit-testing a point on the sidebar.
// Index is only meaningful for ActionSelectChat.
type SidebarHit struct {
	Action SidebarAction
	Index  int
}

// SelectChatMsg asks the app to make the chat at Index current
type SelectChatMsg struct {
	Index int
}

type segment struct {
	text   string
	style  lipgloss.Style
	action SidebarAction
}

type placedSegment struct {
	segment
	x, w int
}

// sidebarRow is a fixed row: segments flow from the left edge and from the
// right edge of the content area.
type sidebarRow struct {
	left, right []segment
}

// Sidebar renders the chat sidebar: branding header, bar buttons, the chat
// list, tail actions and the drag handle on its right edge.
type Sidebar struct {
	width  int
	height int

	sessions     []config.Session
	selectedIdx  int
	scrollOffset int

	narrow   bool
	mobile   bool
	dragging bool
	focused  bool

	searchMode  bool
	searchInput textinput.Model
	filtered    []int
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	ti := textinput.New()
	ti.Placeholder = "search chats"
	ti.Prompt = ""
	ti.CharLimit = 64

	return &Sidebar{searchInput: ti}
}

// SetSize sets the sidebar dimensions, including the drag handle column
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.ensureSelectedVisible()
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetSessions replaces the chat list and marks current as selected
func (s *Sidebar) SetSessions(sessions []config.Session, current int) {
	s.sessions = append([]config.Session(nil), sessions...)
	s.selectedIdx = current
	if s.filtered != nil {
		s.applyFilter(s.searchInput.Value())
	}
	s.ensureSelectedVisible()
}

// SelectedIndex returns the index of the highlighted chat
func (s *Sidebar) SelectedIndex() int {
	return s.selectedIdx
}

// SetNarrow switches between the full and the collapsed rendering
func (s *Sidebar) SetNarrow(narrow bool) {
	s.narrow = narrow
	s.ensureSelectedVisible()
}

// IsNarrow reports whether the collapsed rendering is active
func (s *Sidebar) IsNarrow() bool {
	return s.narrow
}

// SetMobile shows or hides the mobile-only tail actions
func (s *Sidebar) SetMobile(mobile bool) {
	s.mobile = mobile
}

// SetDragging highlights the drag handle while a gesture is active
func (s *Sidebar) SetDragging(dragging bool) {
	s.dragging = dragging
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// EnterSearchMode activates search mode
func (s *Sidebar) EnterSearchMode() tea.Cmd {
	s.searchMode = true
	s.searchInput.SetValue("")
	s.applyFilter("")
	return s.searchInput.Focus()
}

// ExitSearchMode deactivates search mode and clears the filter
func (s *Sidebar) ExitSearchMode() {
	s.searchMode = false
	s.searchInput.Blur()
	s.searchInput.SetValue("")
	s.filtered = nil
	s.ensureSelectedVisible()
}

// IsSearchMode returns whether search mode is active
func (s *Sidebar) IsSearchMode() bool {
	return s.searchMode
}

// SearchQuery returns the current search query
func (s *Sidebar) SearchQuery() string {
	return s.searchInput.Value()
}

// applyFilter keeps the chats whose topic contains query
func (s *Sidebar) applyFilter(query string) {
	if query == "" {
		s.filtered = nil
		return
	}

	query = strings.ToLower(query)
	s.filtered = []int{}
	for i, sess := range s.sessions {
		if strings.Contains(strings.ToLower(sess.Topic), query) {
			s.filtered = append(s.filtered, i)
		}
	}
	s.scrollOffset = 0
}

// visible returns the indices of the chats currently listed
func (s *Sidebar) visible() []int {
	if s.filtered != nil {
		return s.filtered
	}
	out := make([]int, len(s.sessions))
	for i := range out {
		out[i] = i
	}
	return out
}

// ScrollBy scrolls the chat list by delta entries
func (s *Sidebar) ScrollBy(delta int) {
	s.scrollOffset += delta
	s.clampScroll()
}

func (s *Sidebar) padding() int {
	if s.narrow {
		return 0
	}
	return 1
}

func (s *Sidebar) contentWidth() int {
	return max(0, s.width-DragHandleWidth)
}

func (s *Sidebar) innerWidth() int {
	return max(0, s.contentWidth()-2*s.padding())
}

func (s *Sidebar) itemHeight() int {
	if s.narrow {
		return 1
	}
	return SidebarItemHeight
}

func (s *Sidebar) bodyTop() int {
	return SidebarHeaderHeight + SidebarBarHeight
}

func (s *Sidebar) bodyHeight() int {
	return max(0, s.height-s.bodyTop()-SidebarTailHeight)
}

func (s *Sidebar) capacity() int {
	return max(1, s.bodyHeight()/s.itemHeight())
}

func (s *Sidebar) clampScroll() {
	maxOffset := max(0, len(s.visible())-s.capacity())
	s.scrollOffset = max(0, min(s.scrollOffset, maxOffset))
}

func (s *Sidebar) ensureSelectedVisible() {
	pos := indexOf(s.visible(), s.selectedIdx)
	if pos >= 0 {
		if pos < s.scrollOffset {
			s.scrollOffset = pos
		} else if pos >= s.scrollOffset+s.capacity() {
			s.scrollOffset = pos - s.capacity() + 1
		}
	}
	s.clampScroll()
}

func indexOf(list []int, v int) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}

func (s *Sidebar) button(icon, label string, action SidebarAction) segment {
	text := " " + icon + " "
	if !s.narrow && label != "" {
		text = " " + icon + " " + label + " "
	}
	return segment{text: text, style: SidebarButtonStyle, action: action}
}

// fixedRow returns the header, bar or tail row at y
func (s *Sidebar) fixedRow(y int) (sidebarRow, bool) {
	tailTop := s.height - SidebarTailHeight
	switch {
	case y == 0:
		logo := segment{text: iconLogo, style: SidebarLogoStyle, action: ActionContact}
		if s.narrow {
			return sidebarRow{left: []segment{logo}}, true
		}
		return sidebarRow{
			left:  []segment{{text: BrandTitle, style: SidebarTitleStyle}},
			right: []segment{logo},
		}, true
	case y == 1:
		if s.narrow {
			return sidebarRow{}, true
		}
		return sidebarRow{left: []segment{{text: BrandSubtitle, style: SidebarSubtitleStyle}}}, true
	case y == 2:
		return sidebarRow{left: []segment{
			s.button(iconMasks, "Masks", ActionMasks),
			s.button(iconPlugins, "Plugins", ActionPlugins),
		}}, true
	case y < s.bodyTop():
		return sidebarRow{}, false
	case y == tailTop:
		var actions []segment
		if s.mobile {
			actions = append(actions, s.button(iconDelete, "", ActionDelete))
		}
		actions = append(actions,
			s.button(iconSettings, "", ActionSettings),
			s.button(iconContact, "", ActionContact),
		)
		return sidebarRow{left: actions}, true
	case y == tailTop+1:
		return sidebarRow{left: []segment{s.button(iconNewChat, "New Chat", ActionNewChat)}}, true
	}
	return sidebarRow{}, false
}

// place lays a row out in sidebar columns
func (s *Sidebar) place(row sidebarRow) []placedSegment {
	x0 := s.padding()
	var out []placedSegment

	x := x0
	for _, seg := range row.left {
		w := ansi.StringWidth(seg.text)
		out = append(out, placedSegment{segment: seg, x: x, w: w})
		x += w + 1
	}
	leftEnd := x0
	if len(row.left) > 0 {
		leftEnd = x
	}

	rightWidth := 0
	for i, seg := range row.right {
		if i > 0 {
			rightWidth++
		}
		rightWidth += ansi.StringWidth(seg.text)
	}
	x = max(leftEnd, x0+s.innerWidth()-rightWidth)
	for _, seg := range row.right {
		w := ansi.StringWidth(seg.text)
		out = append(out, placedSegment{segment: seg, x: x, w: w})
		x += w + 1
	}
	return out
}

// HitTest reports the control at (x, y), relative to the sidebar's top-left
// corner
func (s *Sidebar) HitTest(x, y int) SidebarHit {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return SidebarHit{Action: ActionNone}
	}
	if x >= s.contentWidth() {
		return SidebarHit{Action: ActionDragHandle}
	}

	if row, ok := s.fixedRow(y); ok {
		for _, p := range s.place(row) {
			if p.action != ActionNone && x >= p.x && x < p.x+p.w {
				return SidebarHit{Action: p.action}
			}
		}
		return SidebarHit{Action: ActionNone}
	}
	if y < s.bodyTop() {
		return SidebarHit{Action: ActionNone}
	}

	pos := s.scrollOffset + (y-s.bodyTop())/s.itemHeight()
	if vis := s.visible(); pos < len(vis) {
		return SidebarHit{Action: ActionSelectChat, Index: vis[pos]}
	}
	return SidebarHit{Action: ActionHome}
}

// Update handles key presses while the sidebar is focused
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}

	if s.searchMode {
		switch keyMsg.String() {
		case keys.Escape:
			s.ExitSearchMode()
			return s, nil
		case keys.Enter:
			// Keep the filter applied
			s.searchMode = false
			s.searchInput.Blur()
			return s, nil
		case keys.Up:
			return s, s.move(-1)
		case keys.Down:
			return s, s.move(1)
		default:
			var cmd tea.Cmd
			s.searchInput, cmd = s.searchInput.Update(msg)
			s.applyFilter(s.searchInput.Value())
			return s, cmd
		}
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		return s, s.move(-1)
	case keys.Down, "j":
		return s, s.move(1)
	case "/":
		return s, s.EnterSearchMode()
	case keys.Escape:
		if s.filtered != nil {
			s.ExitSearchMode()
		}
	}
	return s, nil
}

// move returns a command selecting the chat delta entries away from the
// selection within the listed chats
func (s *Sidebar) move(delta int) tea.Cmd {
	vis := s.visible()
	if len(vis) == 0 {
		return nil
	}
	pos := indexOf(vis, s.selectedIdx)
	next := 0
	if pos >= 0 {
		next = max(0, min(pos+delta, len(vis)-1))
		if next == pos {
			return nil
		}
	}
	index := vis[next]
	return func() tea.Msg { return SelectChatMsg{Index: index} }
}

// fitWidth truncates or pads a rendered line to exactly w columns
func fitWidth(line string, w int) string {
	line = ansi.Truncate(line, w, "")
	return line + strings.Repeat(" ", max(0, w-ansi.StringWidth(line)))
}

func (s *Sidebar) renderPlaced(placed []placedSegment) string {
	var b strings.Builder
	x := 0
	for _, p := range placed {
		if p.x > x {
			b.WriteString(strings.Repeat(" ", p.x-x))
			x = p.x
		}
		b.WriteString(p.style.Render(p.text))
		x += p.w
	}
	return b.String()
}

func (s *Sidebar) renderSearchRow() string {
	if !s.searchMode && s.filtered == nil {
		return ""
	}
	s.searchInput.SetWidth(max(1, s.innerWidth()-2))
	prompt := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Render("/")
	return strings.Repeat(" ", s.padding()) + prompt + " " + s.searchInput.View()
}

func (s *Sidebar) renderBodyRow(r int) string {
	vis := s.visible()
	pad := strings.Repeat(" ", s.padding())
	iw := s.innerWidth()

	if len(vis) == 0 {
		if r != 0 || s.narrow {
			return ""
		}
		text := "No chats."
		if s.filtered != nil {
			text = "No matches."
		}
		return pad + lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true).Render(text)
	}

	pos := s.scrollOffset + r/s.itemHeight()
	if pos >= len(vis) {
		return ""
	}
	idx := vis[pos]
	sess := s.sessions[idx]
	selected := idx == s.selectedIdx

	var text string
	style := SidebarItemStyle
	switch {
	case s.narrow:
		text = strconv.Itoa(idx + 1)
	case r%s.itemHeight() == 0:
		text = sess.Topic
	default:
		text = fmt.Sprintf("%d messages", sess.MessageCount)
		if sess.MessageCount == 1 {
			text = "1 message"
		}
		if !sess.UpdatedAt.IsZero() {
			text += "  " + sess.UpdatedAt.Local().Format("2006/01/02 15:04")
		}
		style = SidebarItemMetaStyle
	}
	if selected {
		style = SidebarSelectedStyle
	}

	text = ansi.Truncate(text, iw, "…")
	return pad + style.Width(iw).Render(text)
}

func (s *Sidebar) renderRow(y int) string {
	if row, ok := s.fixedRow(y); ok {
		return s.renderPlaced(s.place(row))
	}
	if y < s.bodyTop() {
		return s.renderSearchRow()
	}
	return s.renderBodyRow(y - s.bodyTop())
}

// View renders the sidebar
func (s *Sidebar) View() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}

	handle := DragHandleStyle.Render(handleIdle)
	if s.dragging {
		handle = DragHandleActiveStyle.Render(handleActive)
	}

	cw := s.contentWidth()
	lines := make([]string, 0, s.height)
	for y := 0; y < s.height; y++ {
		lines = append(lines, fitWidth(s.renderRow(y), cw)+handle)
	}
	return strings.Join(lines, "\n")
}
