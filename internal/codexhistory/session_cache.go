package codexhistory

import (
	"os"
	"sync"
	"time"
)

// Rollout files are immutable once a session ends, so metadata can be reused
// across discovery passes within one process as long as the mtime is stable.
type sessionFileCacheEntry struct {
	mtime time.Time
	meta  sessionFileMeta
}

var sessionFileCache = struct {
	mu      sync.Mutex
	entries map[string]sessionFileCacheEntry
}{
	entries: map[string]sessionFileCacheEntry{},
}

func resetSessionFileCache() {
	sessionFileCache.mu.Lock()
	sessionFileCache.entries = map[string]sessionFileCacheEntry{}
	sessionFileCache.mu.Unlock()
}

func readSessionFileMetaCached(filePath string) (sessionFileMeta, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		sessionFileCache.mu.Lock()
		delete(sessionFileCache.entries, filePath)
		sessionFileCache.mu.Unlock()
		return sessionFileMeta{}, err
	}
	mtime := info.ModTime()

	sessionFileCache.mu.Lock()
	entry, ok := sessionFileCache.entries[filePath]
	sessionFileCache.mu.Unlock()
	if ok && entry.mtime.Equal(mtime) {
		return entry.meta, nil
	}

	meta, err := readSessionFileMeta(filePath)
	if err != nil {
		return meta, err
	}
	sessionFileCache.mu.Lock()
	sessionFileCache.entries[filePath] = sessionFileCacheEntry{mtime: mtime, meta: meta}
	sessionFileCache.mu.Unlock()
	return meta, nil
}

// ResetCache clears the session file cache. Useful for testing.
func ResetCache() {
	resetSessionFileCache()
}
