package memory

// table is an id-keyed collection that remembers insertion order and hands
// out ids from a counter that never goes backwards.
type table[T any] struct {
	nextID uint
	order  []uint
	rows   map[uint]T
}

func newTable[T any]() *table[T] {
	return &table[T]{
		nextID: 1,
		rows:   make(map[uint]T),
	}
}

func (t *table[T]) allocate() uint {
	id := t.nextID
	t.nextID++
	return id
}

func (t *table[T]) put(id uint, row T) {
	if _, exists := t.rows[id]; !exists {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

func (t *table[T]) get(id uint) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) remove(id uint) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// each visits rows in insertion order until fn returns false.
func (t *table[T]) each(fn func(T) bool) {
	for _, id := range t.order {
		if !fn(t.rows[id]) {
			return
		}
	}
}

func (t *table[T]) values() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}
