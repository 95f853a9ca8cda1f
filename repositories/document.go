//go:generate go run go.uber.org/mock/mockgen -source=document.go -destination=../mocks/mock_document_store.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"queue-bot/errors"

	"github.com/dgraph-io/badger/v4"
)

type DocumentKind string

const (
	UsersDocument          DocumentKind = "users"
	EventsDocument         DocumentKind = "events"
	EventsSequenceDocument DocumentKind = "events_sequence"
)

// Key is the Badger key holding the whole document.
func (k DocumentKind) Key() []byte {
	return []byte("doc:" + string(k))
}

type Document struct {
	Kind  DocumentKind
	Value any
}

// IDocumentStore is a durable key-value store of whole documents.
// It performs no business validation.
type IDocumentStore interface {
	Load(kind DocumentKind, value any) (bool, error)
	LoadMany(documents ...Document) (map[DocumentKind]bool, error)
	Save(documents ...Document) error
}

type DocumentStore struct {
	db *badger.DB
}

func NewDocumentStore(db *badger.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Load decodes the document into value.
// It returns false and leaves value untouched when the document was never saved.
func (s DocumentStore) Load(kind DocumentKind, value any) (bool, error) {
	found, err := s.LoadMany(Document{Kind: kind, Value: value})
	if err != nil {
		return false, err
	}
	return found[kind], nil
}

// LoadMany decodes every document, each Value being a pointer, from one read transaction
// so that documents saved together are observed together.
// Documents never saved are absent from the returned set and their Value is untouched.
func (s DocumentStore) LoadMany(documents ...Document) (map[DocumentKind]bool, error) {
	found := make(map[DocumentKind]bool, len(documents))
	err := s.db.View(func(txn *badger.Txn) error {
		for _, doc := range documents {
			item, err := txn.Get(doc.Kind.Key())
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("load %s: %w", doc.Kind, err)
			}
			err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, doc.Value)
			})
			if err != nil {
				return fmt.Errorf("load %s: %w", doc.Kind, err)
			}
			found[doc.Kind] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Save overwrites every given document within a single transaction.
// Readers observe either all the previous documents or all the new ones.
func (s DocumentStore) Save(documents ...Document) error {
	encoded := make(map[DocumentKind][]byte, len(documents))
	for _, doc := range documents {
		bytes, err := json.Marshal(doc.Value)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", doc.Kind, err)
		}
		encoded[doc.Kind] = bytes
	}
	return s.db.Update(func(txn *badger.Txn) error {
		for kind, bytes := range encoded {
			if err := txn.Set(kind.Key(), bytes); err != nil {
				return fmt.Errorf("save %s: %w", kind, err)
			}
		}
		return nil
	})
}
