package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/somfix/dashboard/internal/store"
)

// Alert banner and notification read-sweep durations. Success banners
// linger long enough to read the full thank-you message.
const (
	readSweepDelay   = 3 * time.Second
	errorBannerTTL   = 7 * time.Second
	successBannerTTL = 20 * time.Second
)

// Banner is an on-screen alert with its dismissal identity.
type Banner struct {
	ID       int
	Text     string
	Severity store.Severity
}

// bannerExpiredMsg fires when a banner's auto-dismiss timer elapses.
// Stale timers for already-dismissed banners are ignored by id.
type bannerExpiredMsg struct {
	id int
}

// readSweepMsg fires when the debounced notification read-marking delay
// elapses. Carries the generation it was scheduled under; a stale
// generation means the timer was superseded and the sweep is skipped.
type readSweepMsg struct {
	gen int
}

// pushBanner registers a banner and returns its auto-dismiss timer.
func (m *Model) pushBanner(b store.Banner) tea.Cmd {
	m.nextBannerID++
	id := m.nextBannerID
	m.banners = append(m.banners, Banner{ID: id, Text: b.Text, Severity: b.Severity})

	ttl := errorBannerTTL
	if b.Severity == store.SeveritySuccess {
		ttl = successBannerTTL
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return bannerExpiredMsg{id: id}
	})
}

// dismissBanner removes the banner with the given id, if still present.
func (m *Model) dismissBanner(id int) {
	next := m.banners[:0]
	for _, b := range m.banners {
		if b.ID != id {
			next = append(next, b)
		}
	}
	m.banners = next
}

// dismissOldestBanner removes the banner that has been showing longest.
// Used for manual early dismissal.
func (m *Model) dismissOldestBanner() {
	if len(m.banners) > 0 {
		m.banners = m.banners[1:]
	}
}

// clearBanners discards every pending banner. Their timers keep running
// but fire against ids that no longer exist.
func (m *Model) clearBanners() {
	m.banners = nil
}

// scheduleReadSweep starts (or restarts) the debounced read-marking
// timer when the active session has unread notifications. Bumping the
// generation invalidates any timer already in flight.
func (m *Model) scheduleReadSweep() tea.Cmd {
	if !store.HasUnread(m.state, m.state.Session.ID) {
		return nil
	}
	m.sweepGen++
	gen := m.sweepGen
	return tea.Tick(readSweepDelay, func(time.Time) tea.Msg {
		return readSweepMsg{gen: gen}
	})
}
