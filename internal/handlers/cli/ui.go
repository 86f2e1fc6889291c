package cli

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/gabapcia/web3lab/internal/session"

	"github.com/pterm/pterm"
)

// ui serializes terminal output. Notifications and monitored events arrive
// from background goroutines.
type ui struct {
	mu  sync.Mutex
	out io.Writer

	notifications atomic.Int64
}

func newUI(out io.Writer) *ui {
	return &ui{out: out}
}

func (u *ui) notify(n session.Notification) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.notifications.Add(1)

	switch n.Kind {
	case session.KindSuccess:
		pterm.Success.WithWriter(u.out).Println(n.Text)
	case session.KindError:
		pterm.Error.WithWriter(u.out).Println(n.Text)
	default:
		pterm.Info.WithWriter(u.out).Println(n.Text)
	}
}

func (u *ui) event(e session.EventLogEntry) {
	u.println(e.String())
}

func (u *ui) println(a ...any) {
	u.mu.Lock()
	defer u.mu.Unlock()

	pterm.Fprintln(u.out, a...)
}

func (u *ui) printf(format string, a ...any) {
	u.println(fmt.Sprintf(format, a...))
}

func (u *ui) prompt(text string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	pterm.Fprint(u.out, text)
}

func (u *ui) warning(text string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	pterm.Warning.WithWriter(u.out).Println(text)
}

func (u *ui) failure(err error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	pterm.Error.WithWriter(u.out).Println(err.Error())
}

func (u *ui) section(title string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	pterm.Fprintln(u.out, pterm.Bold.Sprint(title))
}

// table renders rows as a two-column key/value table.
func (u *ui) table(rows [][]string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	return pterm.DefaultTable.WithWriter(u.out).WithData(rows).Render()
}
