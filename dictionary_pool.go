package whack

import "sync"

// dictionaryPool is a pool of compressor dictionaries.
var dictionaryPool = sync.Pool{
	New: func() any {
		return &dictionary{}
	},
}

// acquireDictionary acquires a dictionary from the pool, reset for the given
// level. The chain arrays must be re-zeroed on every acquire: the terminator
// check relies on fresh zero buckets together with the initial counter value.
func acquireDictionary(level int) *dictionary {
	dict := dictionaryPool.Get().(*dictionary)
	dict.reset(level)
	return dict
}

// releaseDictionary releases a dictionary to the pool.
func releaseDictionary(dict *dictionary) {
	if dict == nil {
		return
	}

	dictionaryPool.Put(dict)
}
