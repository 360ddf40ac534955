package domain

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection представляет коллекцию фото/фильмов
type Collection struct {
	ObjectID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	CollectionID       string             `json:"collection_id" bson:"collection_id"`
	Title              LocalizedString    `json:"title" bson:"title"`
	YearsRange         string             `json:"years_range" bson:"years_range"`
	FilmItemReferences []FilmItemRef      `json:"film_item_references" bson:"film_item_references"`
}

// FilmItemRefKind - вариант ссылки на элемент коллекции
type FilmItemRefKind uint8

const (
	FilmRefInvalid FilmItemRefKind = iota
	FilmRefString
	FilmRefIndex
)

// String возвращает имя варианта
func (k FilmItemRefKind) String() string {
	switch k {
	case FilmRefString:
		return "string"
	case FilmRefIndex:
		return "index"
	default:
		return ""
	}
}

// FilmItemRef - слабая ссылка на элемент: либо строковый идентификатор, либо числовой индекс.
// На проводе и в хранилище это просто строка или целое число.
type FilmItemRef struct {
	kind  FilmItemRefKind
	str   string
	index int64
}

// StringRef создаёт ссылку по строковому идентификатору
func StringRef(id string) FilmItemRef {
	return FilmItemRef{kind: FilmRefString, str: id}
}

// IndexRef создаёт ссылку по числовому индексу
func IndexRef(index int64) FilmItemRef {
	return FilmItemRef{kind: FilmRefIndex, index: index}
}

// Kind возвращает вариант ссылки; FilmRefInvalid для значений, не прошедших разбор
func (r FilmItemRef) Kind() FilmItemRefKind {
	return r.kind
}

// StringID возвращает строковый идентификатор, если ссылка строковая
func (r FilmItemRef) StringID() (string, bool) {
	return r.str, r.kind == FilmRefString
}

// Index возвращает индекс, если ссылка числовая
func (r FilmItemRef) Index() (int64, bool) {
	return r.index, r.kind == FilmRefIndex
}

// MarshalJSON реализует json.Marshaler
func (r FilmItemRef) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case FilmRefString:
		return json.Marshal(r.str)
	case FilmRefIndex:
		return strconv.AppendInt(nil, r.index, 10), nil
	default:
		return nil, fmt.Errorf("film item reference has no value")
	}
}

// UnmarshalJSON реализует json.Unmarshaler.
// Значения других JSON-типов не считаются ошибкой разбора: ссылка остаётся
// FilmRefInvalid и отклоняется валидатором с указанием позиции в списке.
func (r *FilmItemRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*r = FilmItemRef{}
	if len(data) == 0 {
		return nil
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = StringRef(s)
	case c == '-' || (c >= '0' && c <= '9'):
		if idx, ok := parseIndex(string(data)); ok {
			*r = IndexRef(idx)
		}
	}
	return nil
}

func parseIndex(s string) (int64, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// MarshalBSONValue реализует bson.ValueMarshaler
func (r FilmItemRef) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch r.kind {
	case FilmRefString:
		return bson.MarshalValue(r.str)
	case FilmRefIndex:
		return bson.MarshalValue(r.index)
	default:
		return 0, nil, fmt.Errorf("film item reference has no value")
	}
}

// UnmarshalBSONValue реализует bson.ValueUnmarshaler
func (r *FilmItemRef) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bsontype.String:
		*r = StringRef(raw.StringValue())
	case bsontype.Int32:
		*r = IndexRef(int64(raw.Int32()))
	case bsontype.Int64:
		*r = IndexRef(raw.Int64())
	case bsontype.Double:
		f := raw.Double()
		if f != math.Trunc(f) {
			return fmt.Errorf("film item reference %v is not an integer", f)
		}
		*r = IndexRef(int64(f))
	default:
		return fmt.Errorf("unsupported film item reference type %s", t)
	}
	return nil
}
