package settings

// table is the in-memory representation shared by MemoryStore and FileStore.
type table map[Key][][]byte

func (t table) get(key Key, index int) ([]byte, error) {
	values := t[key]
	if index < 0 || index >= len(values) {
		return nil, ErrNotFound
	}
	return clone(values[index]), nil
}

func (t table) set(key Key, value []byte) {
	t[key] = [][]byte{clone(value)}
}

func (t table) add(key Key, value []byte) {
	t[key] = append(t[key], clone(value))
}

func (t table) delete(key Key, index int) error {
	values, ok := t[key]
	if !ok {
		return ErrNotFound
	}
	if index == DeleteAll {
		delete(t, key)
		return nil
	}
	if index < 0 || index >= len(values) {
		return ErrNotFound
	}
	values = append(values[:index], values[index+1:]...)
	if len(values) == 0 {
		delete(t, key)
		return nil
	}
	t[key] = values
	return nil
}

// copy returns a table whose value lists can be changed without affecting
// t. The byte slices are shared; they are never modified in place.
func (t table) copy() table {
	out := make(table, len(t))
	for k, v := range t {
		out[k] = append([][]byte(nil), v...)
	}
	return out
}

func clone(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
