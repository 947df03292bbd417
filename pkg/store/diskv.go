package store

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/picklist/pkg/lists"
)

// ErrNotFound is returned when no list is stored under an ID.
var ErrNotFound = errors.New("store: list not found")

// Source supplies the raw lists and announces later changes to them.
type Source interface {
	Lists(ctx context.Context) ([]lists.Record, error)
	Watch(ctx context.Context) (<-chan Event, error)
}

const listsPrefix = "lists"

// Catalog stores one JSON document per list under <base>/lists.
type Catalog struct {
	d        *diskv.Diskv
	basePath string
}

// Load creates a Catalog backed by diskv using the provided config.
func Load(cfg Config) (*Catalog, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &Catalog{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// BasePath is the directory the catalog lives in.
func (c *Catalog) BasePath() string {
	return c.basePath
}

func (c *Catalog) read(key string) (lists.Record, error) {
	val, err := c.d.Read(key)
	if err != nil {
		return lists.Record{}, err
	}
	rec := lists.Record{}
	if err := json.Unmarshal(val, &rec); err != nil {
		var list []lists.Record
		if err2 := json.Unmarshal(val, &list); err2 == nil && len(list) > 0 {
			rec = list[0]
		} else {
			return lists.Record{}, err
		}
	}
	if rec.ID == "" {
		rec.ID = fromFileName(keyToPathTransform(key).FileName)
	}
	return rec, nil
}

// Lists returns every stored list, oldest first. Unreadable documents are
// reported on stderr and skipped.
func (c *Catalog) Lists(ctx context.Context) ([]lists.Record, error) {
	all := make([]lists.Record, 0)
	for key := range c.d.Keys(ctx.Done()) {
		if pk := keyToPathTransform(key); len(pk.Path) == 0 || pk.Path[0] != listsPrefix {
			continue
		}
		rec, err := c.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, rec)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sortRecords(all)
	return all, nil
}

// Get returns the list stored under id.
func (c *Catalog) Get(id string) (lists.Record, error) {
	key := toKey(id)
	if !c.d.Has(key) {
		return lists.Record{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.read(key)
}

// Put stores rec, deriving an ID from its content when it has none.
func (c *Catalog) Put(rec *lists.Record) error {
	if rec.ID == "" {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		sum := md5.Sum(b)
		rec.ID = fmt.Sprintf("%x", sum[:8])
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return c.d.Write(toKey(rec.ID), data)
}

// Delete removes the list stored under id.
func (c *Catalog) Delete(id string) error {
	key := toKey(id)
	if !c.d.Has(key) {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.d.Erase(key)
}

func sortRecords(records []lists.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		lt := records[i].Timestamp.Time
		rt := records[j].Timestamp.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return records[i].ID < records[j].ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return records[i].ID < records[j].ID
			}
			return lt.Before(rt)
		}
	})
}

// keyToPathTransform maps `lists-<encoded id>` to lists/<encoded id>. The
// encoded ID may itself contain dashes, so only the first one separates.
func keyToPathTransform(s string) *diskv.PathKey {
	prefix, name, found := strings.Cut(s, "-")
	if !found {
		return &diskv.PathKey{FileName: s}
	}
	return &diskv.PathKey{
		Path:     []string{prefix},
		FileName: name,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `lists-<encoded id>`
func toKey(id string) string {
	return fmt.Sprintf("%s-%s", listsPrefix, toFileName(id))
}

func toFileName(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

func fromFileName(s string) string {
	id, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(id)
}
