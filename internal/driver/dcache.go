package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"place/internal/diag"
	"place/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Key identifies one cached expansion: the input content plus every option
// that changes the output.
type Key [32]byte

// DiskCache хранит результаты раскрытия по хэшу содержимого на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached outcome of expanding one file.
type DiskPayload struct {
	Schema      uint16
	Output      string
	Failed      bool
	Diagnostics []CachedDiagnostic
}

// CachedDiagnostic is a diagnostic with its spans reduced to offsets into
// the cached file.
type CachedDiagnostic struct {
	Code       uint16
	Severity   uint8
	Message    string
	Start, End uint32
	Notes      []CachedNote
}

// CachedNote is a note reduced to offsets.
type CachedNote struct {
	Message    string
	Start, End uint32
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/app (or ~/.cache/app).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens a cache rooted at dir, creating it if needed.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// KeyFor derives the cache key of a file expanded with opts.
func KeyFor(file *source.File, opts Options) Key {
	h := sha256.New()
	// кэшированный список диагностик обрезан по лимиту, поэтому лимит входит в ключ
	var hdr [7]byte
	binary.LittleEndian.PutUint16(hdr[:2], diskCacheSchemaVersion)
	if opts.KeepDocComments {
		hdr[2] = 1
	}
	limit, err := safecast.Conv[uint32](opts.maxDiagnostics())
	if err != nil {
		limit = math.MaxUint32
	}
	binary.LittleEndian.PutUint32(hdr[3:], limit)
	h.Write(hdr[:])
	h.Write(file.Hash[:])
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}

func (c *DiskCache) pathFor(key Key) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум символам, чтобы не раздувать один каталог
	return filepath.Join(c.dir, "exp", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Key, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена
	return os.Rename(tmp, p)
}

// Get reads a payload. A missing entry or one written by another schema
// version is a miss, not an error.
func (c *DiskCache) Get(key Key, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()
	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	return out.Schema == diskCacheSchemaVersion, nil
}

// DropAll removes every cached entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог, чтобы параллельный процесс не увидел половину
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func toCached(bag *diag.Bag) []CachedDiagnostic {
	out := make([]CachedDiagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		cd := CachedDiagnostic{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, CachedNote{Message: n.Msg, Start: n.Span.Start, End: n.Span.End})
		}
		out = append(out, cd)
	}
	return out
}

// fromCached restores diagnostics against file id.
func fromCached(items []CachedDiagnostic, id source.FileID, bag *diag.Bag) {
	for _, cd := range items {
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code),
			source.Span{File: id, Start: cd.Start, End: cd.End}, cd.Message)
		for _, n := range cd.Notes {
			d = d.WithNote(source.Span{File: id, Start: n.Start, End: n.End}, n.Message)
		}
		bag.Add(d)
	}
}
