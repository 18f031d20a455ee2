package paginate

import (
	"sync"
	"time"
)

const DefaultDebounce = 200 * time.Millisecond

// Debouncer agrupa cambios de filtros muy seguidos en una sola
// notificación por ventana de silencio. Solo se entrega el último valor.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(map[string]string)
	timer   *time.Timer
	pending map[string]string
	stopped bool
}

func NewDebouncer(delay time.Duration, fn func(map[string]string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay, fn: fn}
}

// Notify registra el estado actual de los filtros y reinicia la ventana.
func (d *Debouncer) Notify(filters map[string]string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	copia := make(map[string]string, len(filters))
	for k, v := range filters {
		copia[k] = v
	}
	d.pending = copia

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	stopped := d.stopped
	d.mu.Unlock()

	if stopped || pending == nil {
		return
	}
	d.fn(pending)
}

// Flush dispara inmediatamente la notificación pendiente, si existe.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
	d.fire()
}

// Stop cancela cualquier notificación pendiente. Tras Stop el Debouncer
// queda inutilizable.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
