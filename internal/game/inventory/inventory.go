package inventory

// Inventory maps item keys to items and remembers insertion order, so
// listings are stable across turns.
//
// The zero value is not usable; call New.
type Inventory struct {
	keys  []string
	items map[string]Item
}

// New returns an empty Inventory.
//
// Postcondition: Len() == 0.
func New() *Inventory {
	return &Inventory{items: make(map[string]Item)}
}

// Set stores item under key. A new key is appended to the iteration order;
// an existing key keeps its position.
func (inv *Inventory) Set(key string, item Item) {
	if _, ok := inv.items[key]; !ok {
		inv.keys = append(inv.keys, key)
	}
	inv.items[key] = item
}

// Get returns the item stored under key.
//
// Postcondition: Returns (item, true) if found, or (Item{}, false) otherwise.
func (inv *Inventory) Get(key string) (Item, bool) {
	if inv == nil {
		return Item{}, false
	}
	item, ok := inv.items[key]
	return item, ok
}

// Has reports whether key is present, regardless of the item's location.
func (inv *Inventory) Has(key string) bool {
	_, ok := inv.Get(key)
	return ok
}

// Update applies fn to the item stored under key and writes the result back.
//
// Postcondition: Returns false and leaves the inventory untouched if key is absent.
func (inv *Inventory) Update(key string, fn func(*Item)) bool {
	item, ok := inv.Get(key)
	if !ok {
		return false
	}
	fn(&item)
	inv.items[key] = item
	return true
}

// Keys returns the item keys in insertion order.
func (inv *Inventory) Keys() []string {
	if inv == nil {
		return nil
	}
	out := make([]string, len(inv.keys))
	copy(out, inv.keys)
	return out
}

// Held returns the items whose location is not a room, in insertion order.
func (inv *Inventory) Held() []Item {
	if inv == nil {
		return nil
	}
	var held []Item
	for _, key := range inv.keys {
		if item := inv.items[key]; item.IsHeld() {
			held = append(held, item)
		}
	}
	return held
}

// Len returns the number of keys.
func (inv *Inventory) Len() int {
	if inv == nil {
		return 0
	}
	return len(inv.keys)
}

// Clone returns an independent copy. A nil receiver clones to an empty inventory.
func (inv *Inventory) Clone() *Inventory {
	out := New()
	if inv == nil {
		return out
	}
	out.keys = append([]string(nil), inv.keys...)
	for k, v := range inv.items {
		out.items[k] = v
	}
	return out
}
