package internal

import (
	"fmt"
	"io"
	"queue-bot/domain"
	"queue-bot/repositories"
	"sort"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// RenderStore prints the users and every event queue as plain tables.
func RenderStore(w io.Writer, users []repositories.DiskUser, book repositories.EventBook, colours bool) {
	handles := lo.SliceToMap(users, func(u repositories.DiskUser) (int64, string) { return u.ID, u.Handle })

	header(w, fmt.Sprintf("USERS (%d)", len(users)), colours)
	table := newTable(w, "ID", "Handle")
	for _, u := range users {
		table.Append([]string{strconv.FormatInt(u.ID, 10), domain.DisplayHandle(u.Handle)})
	}
	table.Render()

	ids := lo.Keys(book.Events)
	sort.Slice(ids, func(i, j int) bool {
		return domain.EventID(ids[i]).Number() < domain.EventID(ids[j]).Number()
	})

	header(w, fmt.Sprintf("EVENTS (%d, next id %s)", len(ids), domain.NextEventID(book.Sequence)), colours)
	table = newTable(w, "ID", "Name", "Date time", "Creator", "Queue")
	for _, id := range ids {
		evt := book.Events[id]
		table.Append([]string{id, evt.Name, evt.DateTime, "@" + domain.DisplayHandle(evt.Creator), strconv.Itoa(len(evt.Participants))})
	}
	table.Render()

	for _, id := range ids {
		evt := book.Events[id]
		if len(evt.Participants) == 0 {
			continue
		}
		header(w, fmt.Sprintf("QUEUE %s '%s'", id, evt.Name), colours)
		table = newTable(w, "#", "User ID", "Handle")
		for i, p := range evt.Participants {
			handle := p.Handle
			if current := handles[p.ID]; current != "" {
				handle = current
			}
			table.Append([]string{strconv.Itoa(i + 1), strconv.FormatInt(p.ID, 10), "@" + domain.DisplayHandle(handle)})
		}
		table.Render()
	}
}

func header(w io.Writer, title string, colours bool) {
	title = fmt.Sprintf("  ====== %s ======", title)
	if colours {
		title = color.New(color.BgBlack, color.FgGreen).Render(title)
	}
	_, _ = fmt.Fprintln(w, title)
}

func newTable(w io.Writer, columns ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(columns)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
