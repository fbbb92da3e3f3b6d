//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"chat-dojo/domain"
	"chat-dojo/errors"
)

type IUserRepository interface {
	CreateUser(user domain.User) error
	GetUserByHandle(handle string) (domain.User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

type diskUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Handle    string    `json:"handle"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUser persists a user keyed by handle. Handles are unique:
// a second user with the same handle is rejected.
func (u UserRepository) CreateUser(user domain.User) error {
	data, err := json.Marshal(diskUser{
		ID:        user.ID,
		Name:      user.Name,
		Handle:    user.Handle,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return u.db.Update(func(txn *badger.Txn) error {
		key := []byte("user:" + user.Handle)
		if _, err = txn.Get(key); err == nil {
			return errors.ErrHandleTaken
		}
		return txn.Set(key, data)
	})
}

func (u UserRepository) GetUserByHandle(handle string) (domain.User, error) {
	var stored diskUser

	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("user:" + handle))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stored)
		})
	})
	if err != nil {
		return domain.User{}, err
	}

	return domain.User{ID: stored.ID, Name: stored.Name, Handle: stored.Handle}, nil
}
