package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Каждая коллекция - отдельная таблица: идентичность в id, документ целиком в doc.
// seq сохраняет порядок вставки для выборки без сортировки.
const createTableTemplate = `
	CREATE TABLE IF NOT EXISTS %s (
		seq        BIGSERIAL PRIMARY KEY,
		id         TEXT NOT NULL UNIQUE,
		doc        JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

func createTableQuery(collection string) string {
	return fmt.Sprintf(createTableTemplate, pq.QuoteIdentifier(collection))
}

func createIndexQuery(collection, field string, unique bool) string {
	kind := "INDEX"
	if unique {
		kind = "UNIQUE INDEX"
	}

	return fmt.Sprintf(
		"CREATE %s IF NOT EXISTS %s ON %s ((doc ->> %s))",
		kind,
		pq.QuoteIdentifier(indexName(collection, field, unique)),
		pq.QuoteIdentifier(collection),
		pq.QuoteLiteral(field),
	)
}

func indexName(collection, field string, unique bool) string {
	suffix := "idx"
	if unique {
		suffix = "uniq"
	}
	return strings.Join([]string{collection, sanitize(field), suffix}, "_")
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, s)
}
