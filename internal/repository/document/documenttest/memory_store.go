// Package documenttest - хранилище документов в памяти для тестов.
// Документы проходят через bson так же, как в MongoDB, поэтому теги и
// кастомные кодеки работают одинаково.
package documenttest

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore реализует repository.DocumentStore в памяти
type MemoryStore struct {
	mu      sync.Mutex
	colls   map[string]*memoryCollection
	failure error
	closed  bool
}

var _ repository.DocumentStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{colls: make(map[string]*memoryCollection)}
}

// SetFailure заставляет все операции коллекций возвращать err; nil снимает сбой
func (s *MemoryStore) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// Closed сообщает, был ли вызван Close
func (s *MemoryStore) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *MemoryStore) Collection(name string) repository.DocumentCollection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collectionLocked(name)
}

func (s *MemoryStore) collectionLocked(name string) *memoryCollection {
	c, ok := s.colls[name]
	if !ok {
		c = &memoryCollection{store: s, name: name, unique: make(map[string]bool)}
		s.colls[name] = c
	}
	return c
}

func (s *MemoryStore) EnsureIndex(_ context.Context, collection, field string, unique bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if unique {
		s.collectionLocked(collection).unique[field] = true
	}
	return nil
}

func (s *MemoryStore) Health(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

func (s *MemoryStore) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

type memoryCollection struct {
	store  *MemoryStore
	name   string
	docs   []bson.Raw
	unique map[string]bool
}

func (c *memoryCollection) Name() string {
	return c.name
}

func (c *memoryCollection) Find(_ context.Context, opts repository.FindOptions, results interface{}) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if err := c.store.failure; err != nil {
		return err
	}

	docs := make([]bson.Raw, len(c.docs))
	copy(docs, c.docs)
	if opts.SortBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			return lessValues(docs[i].Lookup(opts.SortBy), docs[j].Lookup(opts.SortBy))
		})
	}

	items := make(bson.A, 0, len(docs))
	for _, d := range docs {
		items = append(items, d)
	}
	data, err := bson.Marshal(bson.D{{Key: "items", Value: items}})
	if err != nil {
		return err
	}
	return bson.Raw(data).Lookup("items").Unmarshal(results)
}

func (c *memoryCollection) FindOne(_ context.Context, filter repository.Filter, result interface{}) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if err := c.store.failure; err != nil {
		return err
	}

	i, err := c.indexOf(filter)
	if err != nil {
		return err
	}
	return bson.Unmarshal(c.docs[i], result)
}

func (c *memoryCollection) InsertOne(_ context.Context, doc interface{}) (primitive.ObjectID, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if err := c.store.failure; err != nil {
		return primitive.NilObjectID, err
	}

	id := primitive.NewObjectID()
	raw, err := withID(doc, id)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if err := c.checkUnique(raw, -1); err != nil {
		return primitive.NilObjectID, err
	}

	c.docs = append(c.docs, raw)
	return id, nil
}

func (c *memoryCollection) FindOneAndReplace(_ context.Context, filter repository.Filter, doc interface{}, result interface{}) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if err := c.store.failure; err != nil {
		return err
	}

	i, err := c.indexOf(filter)
	if err != nil {
		return err
	}

	id := c.docs[i].Lookup(repository.IDField).ObjectID()
	raw, err := withID(doc, id)
	if err != nil {
		return err
	}
	if err := c.checkUnique(raw, i); err != nil {
		return err
	}

	c.docs[i] = raw
	return bson.Unmarshal(raw, result)
}

func (c *memoryCollection) DeleteOne(_ context.Context, filter repository.Filter) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if err := c.store.failure; err != nil {
		return err
	}

	i, err := c.indexOf(filter)
	if err != nil {
		return err
	}
	c.docs = append(c.docs[:i], c.docs[i+1:]...)
	return nil
}

func (c *memoryCollection) Count(_ context.Context) (int64, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	if err := c.store.failure; err != nil {
		return 0, err
	}
	return int64(len(c.docs)), nil
}

func (c *memoryCollection) indexOf(filter repository.Filter) (int, error) {
	t, data, err := bson.MarshalValue(filter.Value)
	if err != nil {
		return -1, fmt.Errorf("encode filter value: %w", err)
	}
	want := bson.RawValue{Type: t, Value: data}

	for i, d := range c.docs {
		got, err := d.LookupErr(filter.Field)
		if err == nil && equalValues(got, want) {
			return i, nil
		}
	}
	return -1, domain.ErrNotFound
}

func (c *memoryCollection) checkUnique(doc bson.Raw, skip int) error {
	for field := range c.unique {
		v, err := doc.LookupErr(field)
		if err != nil {
			continue
		}
		for i, other := range c.docs {
			if i == skip {
				continue
			}
			if ov, err := other.LookupErr(field); err == nil && equalValues(v, ov) {
				return fmt.Errorf("%s.%s: %w", c.name, field, domain.ErrDuplicateKey)
			}
		}
	}
	return nil
}

// withID кодирует документ и ставит ему идентичность первым полем
func withID(doc interface{}, id primitive.ObjectID) (bson.Raw, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	elems, err := bson.Raw(data).Elements()
	if err != nil {
		return nil, err
	}

	out := bson.D{{Key: repository.IDField, Value: id}}
	for _, e := range elems {
		if e.Key() == repository.IDField {
			continue
		}
		out = append(out, bson.E{Key: e.Key(), Value: e.Value()})
	}

	encoded, err := bson.Marshal(out)
	if err != nil {
		return nil, err
	}
	return bson.Raw(encoded), nil
}

func numeric(v bson.RawValue) (float64, bool) {
	switch v.Type {
	case bsontype.Int32:
		return float64(v.Int32()), true
	case bsontype.Int64:
		return float64(v.Int64()), true
	case bsontype.Double:
		return v.Double(), true
	default:
		return 0, false
	}
}

func equalValues(a, b bson.RawValue) bool {
	if an, ok := numeric(a); ok {
		bn, ok := numeric(b)
		return ok && an == bn
	}
	return a.Type == b.Type && bytes.Equal(a.Value, b.Value)
}

func lessValues(a, b bson.RawValue) bool {
	an, aok := numeric(a)
	bn, bok := numeric(b)
	if aok && bok {
		return an < bn
	}
	if as, ok := a.StringValueOK(); ok {
		if bs, ok := b.StringValueOK(); ok {
			return strings.Compare(as, bs) < 0
		}
	}
	return false
}
