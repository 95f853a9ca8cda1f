package domain

type ChatID int64

// MessageRef points to a message previously sent by the bot, so it can be edited.
type MessageRef struct {
	Chat ChatID
	ID   int
}

// Origin describes where an inbound action comes from.
type Origin struct {
	User    User
	Chat    ChatID
	Message MessageRef
}

func (o Origin) SessionKey() SessionKey {
	return SessionKey{Chat: o.Chat, User: o.User.ID}
}

// Choice is a labeled interactive control rendered by the transport.
// When selected, the transport reports Action back as an inbound action.
type Choice struct {
	Label  string
	Action Action
}
