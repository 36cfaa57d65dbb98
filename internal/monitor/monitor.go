package monitor

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"revu/internal/approval"
	"revu/internal/notify"
)

// Monitor periodically reloads the workflow scope and raises a notification
// when the overdue count grows, so SLA slips get surfaced without anyone
// watching the dashboard.
type Monitor struct {
	store    *approval.Store
	scope    approval.Scope
	notifier notify.Notifier
	spec     string

	mu          sync.Mutex
	cron        *cron.Cron
	lastOverdue int
}

// New creates a monitor over the store. spec is a cron expression
// (e.g. "@every 5m").
func New(store *approval.Store, scope approval.Scope, notifier notify.Notifier, spec string) *Monitor {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Monitor{store: store, scope: scope, notifier: notifier, spec: spec}
}

// Start begins the periodic overdue sweep. Safe to call once.
func (m *Monitor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastOverdue = m.store.Stats().Overdue

	m.cron = cron.New()
	if _, err := m.cron.AddFunc(m.spec, m.sweep); err != nil {
		return fmt.Errorf("register overdue sweep %q: %w", m.spec, err)
	}
	m.cron.Start()
	log.Printf("[monitor] started, sweep %s", m.spec)
	return nil
}

// Stop shuts down the cron runner, waiting for a running sweep to finish.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cron != nil {
		ctx := m.cron.Stop()
		<-ctx.Done()
		m.cron = nil
	}
	log.Printf("[monitor] stopped")
}

// sweep reloads the scope and compares overdue counts. Load failures keep the
// prior working set, so a flaky backend never produces a false alarm.
func (m *Monitor) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := m.store.Load(ctx, m.scope); err != nil {
		log.Printf("[monitor] sweep reload failed: %v", err)
		return
	}

	overdue := m.store.Stats().Overdue

	m.mu.Lock()
	prev := m.lastOverdue
	m.lastOverdue = overdue
	m.mu.Unlock()

	if msg, fire := overdueMessage(prev, overdue); fire {
		if err := m.notifier.Send(notify.Notification{Title: "Overdue reviews", Message: msg}); err != nil {
			log.Printf("[monitor] notify failed: %v", err)
		}
	}
}

// overdueMessage decides whether a sweep result warrants a notification.
// Only a rising overdue count fires; a steady or shrinking backlog stays quiet.
func overdueMessage(prev, current int) (string, bool) {
	if current <= prev {
		return "", false
	}
	return fmt.Sprintf("%d workflows past due (was %d)", current, prev), true
}
