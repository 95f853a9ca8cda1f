package internal

import (
	"bytes"
	"queue-bot/repositories"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Render_Store(t *testing.T) {
	req := require.New(t)
	users := []repositories.DiskUser{{ID: 1, Handle: "alice"}, {ID: 2}}
	book := repositories.EventBook{
		Sequence: 2,
		Events: map[string]repositories.DiskEvent{
			"2": {Name: "Retro", DateTime: "2025-06-02 18:00", Creator: "alice", CreatorID: 1},
			"1": {
				Name: "Launch", DateTime: "2025-06-01 10:00", Creator: "alice", CreatorID: 1,
				Participants: []repositories.DiskParticipant{{ID: 2}, {ID: 1, Handle: "old_alice"}},
			},
		},
	}
	var out bytes.Buffer

	RenderStore(&out, users, book, false)

	text := out.String()
	req.Contains(text, "USERS (2)")
	req.Contains(text, "EVENTS (2, next id 3)")
	req.Contains(text, "QUEUE 1 'Launch'")
	req.NotContains(text, "QUEUE 2")
	req.Contains(text, "@alice")
	req.NotContains(text, "old_alice")
	req.Contains(text, "Без @юзернейма")
	req.Less(bytes.Index(out.Bytes(), []byte("Launch")), bytes.Index(out.Bytes(), []byte("Retro")))
}
