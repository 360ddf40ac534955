package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/heritage-archive/content-service/internal/domain/repository"
	"github.com/heritage-archive/content-service/internal/repository/postgres"
	"github.com/heritage-archive/content-service/internal/repository/postgres/testhelpers"
)

const testCollection = "test_collections"

// DocumentStoreTestSuite тестирует JSONB-хранилище на реальной базе
type DocumentStoreTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	store  *postgres.DocumentStore
	coll   repository.DocumentCollection
	ctx    context.Context
}

// SetupSuite выполняется один раз перед всеми тестами
func (s *DocumentStoreTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.store = testhelpers.NewDocumentStoreForTest(s.testDB.DB, s.testDB.Logger)
}

// SetupTest пересоздаёт таблицу перед каждым тестом
func (s *DocumentStoreTestSuite) SetupTest() {
	s.Require().NoError(s.testDB.DropTables(s.ctx, testCollection))
	s.store = testhelpers.NewDocumentStoreForTest(s.testDB.DB, s.testDB.Logger)
	s.Require().NoError(s.store.EnsureIndex(s.ctx, testCollection, "collection_id", true))
	s.coll = s.store.Collection(testCollection)
}

// TearDownSuite выполняется один раз после всех тестов
func (s *DocumentStoreTestSuite) TearDownSuite() {
	if s.testDB != nil {
		_ = s.testDB.DropTables(s.ctx, testCollection)
		s.testDB.Close()
	}
}

func (s *DocumentStoreTestSuite) newCollection(id string, refs ...domain.FilmItemRef) *domain.Collection {
	if refs == nil {
		refs = []domain.FilmItemRef{}
	}
	return &domain.Collection{
		CollectionID:       id,
		Title:              domain.LocalizedString{He: "א", En: "A"},
		YearsRange:         "1900-1910",
		FilmItemReferences: refs,
	}
}

func (s *DocumentStoreTestSuite) TestInsertAndFindOne() {
	doc := s.newCollection("c1", domain.StringRef("film-1"), domain.IndexRef(4))

	id, err := s.coll.InsertOne(s.ctx, doc)
	s.Require().NoError(err)
	s.False(id.IsZero())

	var byKey domain.Collection
	s.Require().NoError(s.coll.FindOne(s.ctx, repository.ByField("collection_id", "c1"), &byKey))
	s.Equal(id, byKey.ObjectID)
	s.Equal("A", byKey.Title.En)
	s.Require().Len(byKey.FilmItemReferences, 2)

	ref, ok := byKey.FilmItemReferences[0].StringID()
	s.True(ok)
	s.Equal("film-1", ref)
	idx, ok := byKey.FilmItemReferences[1].Index()
	s.True(ok)
	s.Equal(int64(4), idx)

	var byID domain.Collection
	s.Require().NoError(s.coll.FindOne(s.ctx, repository.ByObjectID(id), &byID))
	s.Equal("c1", byID.CollectionID)
}

func (s *DocumentStoreTestSuite) TestFindOneMissing() {
	var doc domain.Collection
	err := s.coll.FindOne(s.ctx, repository.ByField("collection_id", "missing"), &doc)
	s.ErrorIs(err, domain.ErrNotFound)

	err = s.coll.FindOne(s.ctx, repository.ByObjectID(primitive.NewObjectID()), &doc)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *DocumentStoreTestSuite) TestDuplicateKey() {
	_, err := s.coll.InsertOne(s.ctx, s.newCollection("c1"))
	s.Require().NoError(err)

	_, err = s.coll.InsertOne(s.ctx, s.newCollection("c1"))
	s.ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *DocumentStoreTestSuite) TestFindPreservesInsertionOrder() {
	_, err := testhelpers.LoadFixtures(s.ctx, s.coll,
		s.newCollection("c3"), s.newCollection("c1"), s.newCollection("c2"))
	s.Require().NoError(err)

	var docs []*domain.Collection
	s.Require().NoError(s.coll.Find(s.ctx, repository.FindOptions{}, &docs))
	s.Require().Len(docs, 3)
	s.Equal("c3", docs[0].CollectionID)
	s.Equal("c1", docs[1].CollectionID)
	s.Equal("c2", docs[2].CollectionID)

	var sorted []*domain.Collection
	s.Require().NoError(s.coll.Find(s.ctx, repository.FindOptions{SortBy: "collection_id"}, &sorted))
	s.Equal("c1", sorted[0].CollectionID)
	s.Equal("c3", sorted[2].CollectionID)
}

func (s *DocumentStoreTestSuite) TestFindEmpty() {
	var docs []*domain.Collection
	s.Require().NoError(s.coll.Find(s.ctx, repository.FindOptions{}, &docs))
	s.Empty(docs)
}

func (s *DocumentStoreTestSuite) TestReplace() {
	id, err := s.coll.InsertOne(s.ctx, s.newCollection("c1", domain.IndexRef(1)))
	s.Require().NoError(err)

	replacement := s.newCollection("c1")
	replacement.YearsRange = "1920"

	var updated domain.Collection
	err = s.coll.FindOneAndReplace(s.ctx, repository.ByField("collection_id", "c1"), replacement, &updated)
	s.Require().NoError(err)
	s.Equal(id, updated.ObjectID)
	s.Equal("1920", updated.YearsRange)
	s.Empty(updated.FilmItemReferences)

	err = s.coll.FindOneAndReplace(s.ctx, repository.ByField("collection_id", "nope"), replacement, &updated)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *DocumentStoreTestSuite) TestDeleteAndCount() {
	ids, err := testhelpers.LoadFixtures(s.ctx, s.coll, s.newCollection("c1"), s.newCollection("c2"))
	s.Require().NoError(err)
	s.Require().Len(ids, 2)

	n, err := s.coll.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	s.Require().NoError(s.coll.DeleteOne(s.ctx, repository.ByField("collection_id", "c1")))
	s.ErrorIs(s.coll.DeleteOne(s.ctx, repository.ByField("collection_id", "c1")), domain.ErrNotFound)

	n, err = s.coll.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func TestDocumentStoreTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentStoreTestSuite))
}
