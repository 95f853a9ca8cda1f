//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import "encoding/json"

type IUserRepository interface {
	LoadUsers() ([]DiskUser, error)
	SaveUsers(users []DiskUser) error
}

type UserRepository struct {
	store IDocumentStore
}

func NewUserRepository(store IDocumentStore) *UserRepository {
	return &UserRepository{store: store}
}

// DiskUser is the persisted representation of a known user.
// The users document is an ordered sequence of them, unique by ID.
type DiskUser struct {
	ID     int64  `json:"id"`
	Handle string `json:"handle,omitempty"`
}

// UnmarshalJSON also reads the legacy layout where a user is a bare numeric id.
func (u *DiskUser) UnmarshalJSON(data []byte) error {
	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		*u = DiskUser{ID: id}
		return nil
	}
	type record DiskUser
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*u = DiskUser(r)
	return nil
}

// LoadUsers returns an empty slice on first run.
func (u UserRepository) LoadUsers() ([]DiskUser, error) {
	users := []DiskUser{}
	if _, err := u.store.Load(UsersDocument, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (u UserRepository) SaveUsers(users []DiskUser) error {
	if users == nil {
		users = []DiskUser{}
	}
	return u.store.Save(Document{Kind: UsersDocument, Value: users})
}
