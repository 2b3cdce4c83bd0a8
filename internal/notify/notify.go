// Package notify delivers created tasks to an optional automation webhook.
// Delivery is best-effort: failures are logged and never reach the caller.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"taskpad/internal/task"
)

type Notifier interface {
	Notify(ctx context.Context, t task.Task) error
}

// Webhook POSTs the full task record as JSON to a fixed URL.
type Webhook struct {
	URL    string
	Client *http.Client
}

func NewWebhook(url string) *Webhook {
	return &Webhook{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *Webhook) Notify(ctx context.Context, t task.Task) error {
	body, err := json.Marshal(t)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook http %d", resp.StatusCode)
	}
	return nil
}

// Dispatcher runs deliveries in the background and keeps delivered/failed
// tallies. A nil Notifier disables dispatch entirely.
type Dispatcher struct {
	n         Notifier
	wg        sync.WaitGroup
	delivered atomic.Int64
	failed    atomic.Int64
}

func NewDispatcher(n Notifier) *Dispatcher { return &Dispatcher{n: n} }

// Dispatch fires a delivery attempt and returns immediately. The caller's
// request path never waits on, or learns about, the outcome.
func (d *Dispatcher) Dispatch(t task.Task) {
	if d == nil || d.n == nil {
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.n.Notify(context.Background(), t); err != nil {
			d.failed.Add(1)
			log.Printf("notify: delivery failed for task %s: %v", t.ID, err)
			return
		}
		d.delivered.Add(1)
	}()
}

// Wait blocks until all in-flight deliveries finish. Used on shutdown and
// in tests.
func (d *Dispatcher) Wait() {
	if d == nil {
		return
	}
	d.wg.Wait()
}

func (d *Dispatcher) Delivered() int64 { return d.delivered.Load() }
func (d *Dispatcher) Failed() int64    { return d.failed.Load() }
