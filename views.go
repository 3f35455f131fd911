package chainmap

// KeySet - A live view of the keys in a HashMap. It holds no data of its own, every call goes to the map.
type KeySet[K, V any] struct {
	hashMap *HashMap[K, V]
}

// KeySet - Returns a view of the keys backed by the map
func (H *HashMap[K, V]) KeySet() KeySet[K, V] {
	return KeySet[K, V]{hashMap: H}
}

// Iterator - Returns a fail-fast iterator over the keys
func (S KeySet[K, V]) Iterator() *KeyIterator[K, V] {
	return &KeyIterator[K, V]{it: newHashIterator(S.hashMap)}
}

// Size - Returns the number of keys
func (S KeySet[K, V]) Size() int {
	return S.hashMap.size
}

// Contains - Returns true if key is in the map
func (S KeySet[K, V]) Contains(key K) bool {
	return S.hashMap.ContainsKey(key)
}

// Remove - Removes key and its value from the map, returns true if it was present
func (S KeySet[K, V]) Remove(key K) bool {
	return S.hashMap.removeEntryForKey(key) != nil
}

// Clear - Removes all entries from the map
func (S KeySet[K, V]) Clear() {
	S.hashMap.Clear()
}

// Values - A live view of the values in a HashMap
type Values[K, V any] struct {
	hashMap *HashMap[K, V]
}

// Values - Returns a view of the values backed by the map
func (H *HashMap[K, V]) Values() Values[K, V] {
	return Values[K, V]{hashMap: H}
}

// Iterator - Returns a fail-fast iterator over the values
func (C Values[K, V]) Iterator() *ValueIterator[K, V] {
	return &ValueIterator[K, V]{it: newHashIterator(C.hashMap)}
}

// Size - Returns the number of values, duplicates included
func (C Values[K, V]) Size() int {
	return C.hashMap.size
}

// Contains - Returns true if at least one key maps to value
func (C Values[K, V]) Contains(value V) bool {
	return C.hashMap.ContainsValue(value)
}

// Clear - Removes all entries from the map
func (C Values[K, V]) Clear() {
	C.hashMap.Clear()
}

// EntrySet - A live view of the key/value entries in a HashMap
type EntrySet[K, V any] struct {
	hashMap *HashMap[K, V]
}

// EntrySet - Returns a view of the entries backed by the map
func (H *HashMap[K, V]) EntrySet() EntrySet[K, V] {
	return EntrySet[K, V]{hashMap: H}
}

// Iterator - Returns a fail-fast iterator over the entries
func (S EntrySet[K, V]) Iterator() *EntryIterator[K, V] {
	return &EntryIterator[K, V]{it: newHashIterator(S.hashMap)}
}

// Size - Returns the number of entries
func (S EntrySet[K, V]) Size() int {
	return S.hashMap.size
}

// Contains - Returns true if key is in the map and maps to value
func (S EntrySet[K, V]) Contains(key K, value V) bool {
	e := S.hashMap.getEntry(key)
	return e != nil && S.hashMap.valueEqual(value, e.value)
}

// Remove - Removes key if it maps to value, returns true if an entry was removed
func (S EntrySet[K, V]) Remove(key K, value V) bool {
	return S.hashMap.removeMapping(key, value) != nil
}

// Clear - Removes all entries from the map
func (S EntrySet[K, V]) Clear() {
	S.hashMap.Clear()
}
