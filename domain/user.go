// Package domain contains core concepts of the event queue.
// This file defines User identities and the placeholder used when a handle is missing.
// No runtime, storage, or transport logic should be added here.
package domain

// PlaceholderHandle is rendered when a user has no public handle.
const PlaceholderHandle = "Без @юзернейма"

type UserID int64

// User is a known identity. Handle is optional and may change over time,
// ID never does.
type User struct {
	ID     UserID
	Handle string
}

func NewUser(id int64, handle string) User {
	return User{ID: UserID(id), Handle: handle}
}

// DisplayHandle returns the handle or the placeholder when absent.
func (u User) DisplayHandle() string {
	return DisplayHandle(u.Handle)
}

func DisplayHandle(handle string) string {
	if handle == "" {
		return PlaceholderHandle
	}
	return handle
}

// ChatID returns the private chat the user can be reached in.
func (u User) ChatID() ChatID {
	return ChatID(u.ID)
}
