package paginate

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		name       string
		totalItems int
		pageSize   int
		want       int
	}{
		{"exacto", 10, 5, 2},
		{"con resto", 12, 5, 3},
		{"vacio", 0, 5, 0},
		{"un elemento", 1, 5, 1},
		{"pagina grande", 3, 25, 1},
		{"page size cero", 10, 0, 0},
		{"total negativo", -4, 5, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalPages(tc.totalItems, tc.pageSize))
		})
	}
}

func TestPagerClampAndNavigation(t *testing.T) {
	p := NewPager(5)
	p.SetTotal(12) // 3 páginas

	assert.Equal(t, 1, p.Page())
	assert.Equal(t, 3, p.TotalPages())

	p.Next()
	p.Next()
	assert.Equal(t, 3, p.Page())

	// no pasa de la última página
	p.Next()
	assert.Equal(t, 3, p.Page())

	p.SetPage(99)
	assert.Equal(t, 3, p.Page())

	p.Prev()
	assert.Equal(t, 2, p.Page())

	p.SetPage(-1)
	assert.Equal(t, 1, p.Page())
}

func TestPagerResetOnFilterChange(t *testing.T) {
	p := NewPager(5)
	p.SetTotal(50)
	p.SetPage(7)

	p.Reset()
	assert.Equal(t, 1, p.Page())
}

func TestPagerSetTotalShrinksPage(t *testing.T) {
	p := NewPager(5)
	p.SetTotal(50)
	p.SetPage(10)

	// el resultado nuevo tiene menos páginas: la actual se recorta
	p.SetTotal(12)
	assert.Equal(t, 3, p.Page())
}

func TestPagerBounds(t *testing.T) {
	p := NewPager(5)
	p.SetTotal(12)

	lo, hi := p.Bounds(12)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 5, hi)

	p.SetPage(3)
	lo, hi = p.Bounds(12)
	assert.Equal(t, 10, lo)
	assert.Equal(t, 12, hi)

	lo, hi = p.Bounds(0)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 0, hi)
}

func TestDebouncerCoalesces(t *testing.T) {
	var mu sync.Mutex
	var calls []map[string]string

	d := NewDebouncer(50*time.Millisecond, func(f map[string]string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, f)
	})
	defer d.Stop()

	// cinco cambios seguidos dentro de la ventana
	for _, v := range []string{"h", "ho", "hor", "horm", "hormigon"} {
		d.Notify(map[string]string{"search": v})
		time.Sleep(5 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "hormigon", calls[0]["search"])
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var mu sync.Mutex
	fired := 0

	d := NewDebouncer(50*time.Millisecond, func(map[string]string) {
		mu.Lock()
		defer mu.Unlock()
		fired++
	})

	d.Notify(map[string]string{"search": "x"})
	d.Stop()

	time.Sleep(120 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, fired)
}

func TestDebouncerFlush(t *testing.T) {
	got := make(chan map[string]string, 1)
	d := NewDebouncer(time.Hour, func(f map[string]string) { got <- f })
	defer d.Stop()

	d.Notify(map[string]string{"empresa": "3"})
	d.Flush()

	select {
	case f := <-got:
		assert.Equal(t, "3", f["empresa"])
	case <-time.After(time.Second):
		t.Fatal("Flush no disparó la notificación")
	}
}
