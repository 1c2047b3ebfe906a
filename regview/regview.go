/*
File    : goeval/regview/regview.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package regview implements a small tview/tcell text user interface that
evaluates expressions against a long-lived session.Session and shows
the register bank's contents alongside a scrolling evaluation history.
Layout and view-panel composition are grounded on the ARM-emulator
debugger's TUI (App/Pages/panel-of-TextViews, command InputField wired
to a DoneFunc), scaled down to the one register-bank concern this
evaluator has.
*/
package regview

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/akashmaji946/goeval/session"
)

// TUI is the live register-bank/evaluation viewer.
type TUI struct {
	Session *session.Session

	App   *tview.Application
	Pages *tview.Pages

	MainLayout   *tview.Flex
	RegisterView *tview.TextView
	HistoryView  *tview.TextView
	CommandInput *tview.InputField

	history []string
}

// NewTUI builds a TUI bound to sess. The register view and history
// start empty until the first command is evaluated.
func NewTUI(sess *session.Session) *TUI {
	t := &TUI{
		Session: sess,
		App:     tview.NewApplication(),
	}

	t.initializeViews()
	t.buildLayout()
	t.setupKeyBindings()

	return t
}

func (t *TUI) initializeViews() {
	t.RegisterView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	t.RegisterView.SetBorder(true).SetTitle(" Registers ")

	t.HistoryView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	t.HistoryView.SetBorder(true).SetTitle(" History ")

	t.CommandInput = tview.NewInputField().
		SetLabel("> ").
		SetFieldWidth(0)
	t.CommandInput.SetBorder(true).SetTitle(" Expression ")
	t.CommandInput.SetDoneFunc(t.handleCommand)
}

func (t *TUI) buildLayout() {
	top := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(t.HistoryView, 0, 2, false).
		AddItem(t.RegisterView, 0, 1, false)

	t.MainLayout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 0, 4, false).
		AddItem(t.CommandInput, 3, 0, true)

	t.Pages = tview.NewPages().
		AddPage("main", t.MainLayout, true, true)
}

func (t *TUI) setupKeyBindings() {
	t.App.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC {
			t.App.Stop()
			return nil
		}
		return event
	})
}

func (t *TUI) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	expr := t.CommandInput.GetText()
	if expr == "" {
		return
	}
	t.evaluate(expr)
	t.CommandInput.SetText("")
}

func (t *TUI) evaluate(expr string) {
	result, ok := t.Session.Evaluate(expr)
	if ok {
		t.history = append(t.history, fmt.Sprintf("[green]> %s[white] = %g", expr, result))
	} else {
		t.history = append(t.history, fmt.Sprintf("[green]> %s[white]\n[red]%s[white]", expr, t.Session.Perror()))
	}
	t.refresh()
}

func (t *TUI) refresh() {
	t.HistoryView.SetText(strings.Join(t.history, "\n"))
	t.HistoryView.ScrollToEnd()
	t.updateRegisterView()
	t.App.Draw()
}

// updateRegisterView renders every assigned register; registers reset
// at the start of each evaluation (see session.Session.evaluate), so
// this always reflects only the most recently evaluated expression.
func (t *TUI) updateRegisterView() {
	t.RegisterView.Clear()

	var lines []string
	bank := t.Session.Registers
	any := false
	for i := 0; i < bank.Capacity(); i++ {
		v, _, ok := bank.Recall(i)
		if !ok {
			continue
		}
		any = true
		lines = append(lines, fmt.Sprintf("#%-2d: %g", i, v))
	}
	if !any {
		lines = append(lines, "[yellow]no registers assigned[white]")
	}

	t.RegisterView.SetText(strings.Join(lines, "\n"))
}

// Run starts the TUI application, blocking until the user quits.
func (t *TUI) Run() error {
	t.refresh()
	return t.App.SetRoot(t.Pages, true).SetFocus(t.CommandInput).Run()
}

// Stop stops the TUI application.
func (t *TUI) Stop() {
	t.App.Stop()
}
