package paginate

import "sync"

const (
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// TotalPages calcula ceil(totalItems / pageSize). Con cero elementos no hay
// páginas.
func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Pager lleva la página actual sobre un total de elementos. La página
// siempre es >= 1 aunque el resultado esté vacío.
type Pager struct {
	mu         sync.Mutex
	pageSize   int
	totalItems int
	page       int
}

func NewPager(pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return &Pager{pageSize: pageSize, page: 1}
}

func (p *Pager) SetTotal(totalItems int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if totalItems < 0 {
		totalItems = 0
	}
	p.totalItems = totalItems
	p.page = p.clamp(p.page)
}

func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

func (p *Pager) PageSize() int {
	return p.pageSize
}

func (p *Pager) TotalItems() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalItems
}

func (p *Pager) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return TotalPages(p.totalItems, p.pageSize)
}

func (p *Pager) SetPage(page int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = p.clamp(page)
}

func (p *Pager) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = p.clamp(p.page + 1)
}

func (p *Pager) Prev() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = p.clamp(p.page - 1)
}

// Reset vuelve a la primera página. Se invoca siempre que cambia cualquier
// filtro, para no quedarse en una página fuera de rango frente a un
// resultado nuevo.
func (p *Pager) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = 1
}

// Bounds devuelve los índices [lo, hi) del corte visible sobre una lista de
// n elementos.
func (p *Pager) Bounds(n int) (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	lo := (p.page - 1) * p.pageSize
	if lo >= n {
		return 0, 0
	}
	hi := lo + p.pageSize
	if hi > n {
		hi = n
	}
	return lo, hi
}

func (p *Pager) clamp(page int) int {
	if page < 1 {
		return 1
	}
	if max := TotalPages(p.totalItems, p.pageSize); max > 0 && page > max {
		return max
	}
	return page
}
