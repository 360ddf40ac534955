package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

// docWithID возвращает документ вместе с идентичностью в форме {"_id": {"$oid": ...}},
// чтобы он декодировался теми же bson-тегами, что и в MongoDB
const docWithID = `doc || jsonb_build_object('_id', jsonb_build_object('$oid', id))`

// DocumentStore - документное хранилище поверх JSONB-таблиц PostgreSQL
type DocumentStore struct {
	db     *DB
	logger *zap.Logger

	mu     sync.Mutex
	tables map[string]bool
}

var _ repository.DocumentStore = (*DocumentStore)(nil)

// NewDocumentStore создаёт хранилище на открытом подключении
func NewDocumentStore(db *DB, logger *zap.Logger) *DocumentStore {
	return &DocumentStore{
		db:     db,
		logger: logger,
		tables: make(map[string]bool),
	}
}

func (s *DocumentStore) Collection(name string) repository.DocumentCollection {
	return &documentCollection{db: s.db, name: name, table: pq.QuoteIdentifier(name)}
}

// EnsureIndex создаёт таблицу коллекции (если её нет) и индекс по полю документа
func (s *DocumentStore) EnsureIndex(ctx context.Context, collection, field string, unique bool) error {
	if err := s.ensureTable(ctx, collection); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, createIndexQuery(collection, field, unique)); err != nil {
		return fmt.Errorf("create index %s.%s: %w", collection, field, err)
	}

	s.logger.Debug("Index ensured",
		zap.String("collection", collection),
		zap.String("field", field),
		zap.Bool("unique", unique),
	)
	return nil
}

func (s *DocumentStore) ensureTable(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tables[collection] {
		return nil
	}

	if _, err := s.db.ExecContext(ctx, createTableQuery(collection)); err != nil {
		return fmt.Errorf("create table %s: %w", collection, err)
	}
	s.tables[collection] = true
	return nil
}

func (s *DocumentStore) Health(ctx context.Context) error {
	return s.db.Health(ctx)
}

func (s *DocumentStore) Close(_ context.Context) error {
	return s.db.Close()
}

type documentCollection struct {
	db    *DB
	name  string
	table string
}

func (c *documentCollection) Name() string {
	return c.name
}

func (c *documentCollection) Find(ctx context.Context, opts repository.FindOptions, results interface{}) error {
	order := "seq"
	if opts.SortBy != "" {
		order = fmt.Sprintf("doc -> %s, seq", pq.QuoteLiteral(opts.SortBy))
	}

	query := fmt.Sprintf(
		`SELECT jsonb_build_object('items', COALESCE(jsonb_agg(%s ORDER BY %s), '[]'::jsonb)) FROM %s`,
		docWithID, order, c.table,
	)

	var payload types.JSONText
	if err := c.db.GetContext(ctx, &payload, query); err != nil {
		return fmt.Errorf("find in %s: %w", c.name, err)
	}

	var raw bson.Raw
	if err := bson.UnmarshalExtJSON(payload, false, &raw); err != nil {
		return fmt.Errorf("decode %s: %w", c.name, err)
	}
	if err := raw.Lookup("items").Unmarshal(results); err != nil {
		return fmt.Errorf("decode %s: %w", c.name, err)
	}
	return nil
}

func (c *documentCollection) FindOne(ctx context.Context, filter repository.Filter, result interface{}) error {
	where, args, err := whereClause(filter)
	if err != nil {
		return err
	}

	query := c.db.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s LIMIT 1`, docWithID, c.table, where))

	var doc types.JSONText
	err = c.db.GetContext(ctx, &doc, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find one in %s: %w", c.name, err)
	}

	return decodeDocument(c.name, doc, result)
}

func (c *documentCollection) InsertOne(ctx context.Context, doc interface{}) (primitive.ObjectID, error) {
	data, err := encodeDocument(doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", c.name, err)
	}

	id := primitive.NewObjectID()
	query := c.db.Rebind(fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES (?, ?::jsonb)`, c.table))

	if _, err := c.db.ExecContext(ctx, query, id.Hex(), string(data)); err != nil {
		return primitive.NilObjectID, translateWriteError(c.name, "insert", err)
	}
	return id, nil
}

func (c *documentCollection) FindOneAndReplace(ctx context.Context, filter repository.Filter, doc interface{}, result interface{}) error {
	data, err := encodeDocument(doc)
	if err != nil {
		return fmt.Errorf("replace in %s: %w", c.name, err)
	}

	where, args, err := whereClause(filter)
	if err != nil {
		return err
	}

	query := c.db.Rebind(fmt.Sprintf(
		`UPDATE %s SET doc = ?::jsonb, updated_at = NOW() WHERE %s RETURNING %s`,
		c.table, where, docWithID,
	))

	var updated types.JSONText
	err = c.db.GetContext(ctx, &updated, query, append([]interface{}{string(data)}, args...)...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return translateWriteError(c.name, "replace", err)
	}

	return decodeDocument(c.name, updated, result)
}

func (c *documentCollection) DeleteOne(ctx context.Context, filter repository.Filter) error {
	where, args, err := whereClause(filter)
	if err != nil {
		return err
	}

	query := c.db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE %s`, c.table, where))

	res, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", c.name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", c.name, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *documentCollection) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := c.db.GetContext(ctx, &n, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, c.table)); err != nil {
		return 0, fmt.Errorf("count %s: %w", c.name, err)
	}
	return n, nil
}

// whereClause строит условие равенства: идентичность сравнивается с колонкой id,
// остальные поля - с верхним уровнем документа
func whereClause(f repository.Filter) (string, []interface{}, error) {
	if f.Field == repository.IDField {
		oid, ok := f.Value.(primitive.ObjectID)
		if !ok {
			return "", nil, fmt.Errorf("filter on %s expects ObjectID, got %T", repository.IDField, f.Value)
		}
		return "id = ?", []interface{}{oid.Hex()}, nil
	}

	value, err := json.Marshal(f.Value)
	if err != nil {
		return "", nil, fmt.Errorf("encode filter value for %s: %w", f.Field, err)
	}
	return "doc -> ? = ?::jsonb", []interface{}{f.Field, string(value)}, nil
}

// encodeDocument сериализует документ в relaxed Extended JSON по bson-тегам;
// идентичность хранится в колонке id, а не в документе
func encodeDocument(doc interface{}) ([]byte, error) {
	data, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if _, ok := raw[repository.IDField]; !ok {
		return data, nil
	}

	delete(raw, repository.IDField)
	return json.Marshal(raw)
}

func decodeDocument(collection string, doc types.JSONText, result interface{}) error {
	if err := bson.UnmarshalExtJSON(doc, false, result); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

func translateWriteError(collection, op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s %s: %w", op, collection, domain.ErrDuplicateKey)
	}
	return fmt.Errorf("%s %s: %w", op, collection, err)
}
