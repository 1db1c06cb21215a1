// Package cli is the terminal presentation layer. It collects user input,
// drives the engine services and renders their results; the engine never
// touches the terminal itself.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/bankist/pkg/app"
	"github.com/amirasaad/bankist/pkg/domain"
	"github.com/amirasaad/bankist/pkg/domain/events"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// CLI runs the interactive demo session loop.
type CLI struct {
	app    *app.App
	in     *bufio.Reader
	out    io.Writer
	sorted bool
}

// New creates a CLI bound to the given streams.
func New(a *app.App, in io.Reader, out io.Writer) *CLI {
	return &CLI{app: a, in: bufio.NewReader(in), out: out}
}

// Run drives login and command loops until the input ends or the context is
// cancelled. A background ticker advances the session countdown once per
// second, the way the engine expects from its external clock.
func (c *CLI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.app.Deps.Bus.Register(events.SessionExpired{}.Type(),
		func(ctx context.Context, e domain.Event) error {
			fmt.Fprintln(c.out, "\nYou have been logged out due to inactivity.")
			return nil
		})

	go c.tickLoop(ctx)

	fmt.Fprintln(c.out, "Welcome to Bankist.")
	for {
		if err := c.login(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, domain.ErrAuthFailure) {
				fmt.Fprintln(c.out, "Wrong username or PIN.")
				continue
			}
			return err
		}
		if err := c.sessionLoop(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (c *CLI) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.app.SessionService.Tick()
		}
	}
}

func (c *CLI) login(ctx context.Context) error {
	username, err := c.prompt("Username")
	if err != nil {
		return err
	}
	pin, err := c.promptPIN()
	if err != nil {
		return err
	}
	acc, err := c.app.AuthService.Login(ctx, username, pin)
	if err != nil {
		return err
	}
	c.sorted = false
	fmt.Fprintf(c.out, "\n%s, %s!\n", greeting(time.Now()), acc.FirstName())
	c.renderStatement(acc)
	return nil
}

func (c *CLI) sessionLoop(ctx context.Context) error {
	for {
		if c.app.SessionService.Current() == nil {
			return nil
		}
		line, err := c.prompt("Command (transfer, loan, sort, close, logout, quit)")
		if err != nil {
			return err
		}
		acc := c.app.SessionService.Current()
		if acc == nil {
			// Session expired while waiting for input.
			return nil
		}
		cmd, rest, _ := strings.Cut(line, " ")
		switch strings.ToLower(cmd) {
		case "transfer":
			c.transfer(ctx, rest)
		case "loan":
			c.loan(ctx, rest)
		case "sort":
			c.sorted = !c.sorted
			c.renderStatement(acc)
		case "close":
			c.close(ctx)
		case "logout":
			c.app.SessionService.Logout()
			fmt.Fprintln(c.out, "Logged out.")
			return nil
		case "quit":
			return io.EOF
		case "":
			c.renderStatement(acc)
		default:
			fmt.Fprintf(c.out, "Unknown command %q.\n", cmd)
		}
	}
}

func (c *CLI) transfer(ctx context.Context, args string) {
	to, amountStr, _ := strings.Cut(strings.TrimSpace(args), " ")
	amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	if to == "" || err != nil {
		fmt.Fprintln(c.out, "Usage: transfer <username> <amount>")
		return
	}
	acc := c.app.SessionService.Current()
	if acc == nil {
		return
	}
	if err := c.app.AccountService.Transfer(ctx, acc, to, amount); err != nil {
		fmt.Fprintln(c.out, "Transfer rejected.")
		return
	}
	c.renderStatement(acc)
}

func (c *CLI) loan(ctx context.Context, args string) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(args), 64)
	if err != nil {
		fmt.Fprintln(c.out, "Usage: loan <amount>")
		return
	}
	acc := c.app.SessionService.Current()
	if acc == nil {
		return
	}
	if err := c.app.AccountService.RequestLoan(ctx, acc, amount); err != nil {
		fmt.Fprintln(c.out, "Loan denied.")
		return
	}
	fmt.Fprintln(c.out, "Loan approved.")
	c.renderStatement(acc)
}

func (c *CLI) close(ctx context.Context) {
	username, err := c.prompt("Confirm username")
	if err != nil {
		return
	}
	pin, err := c.promptPIN()
	if err != nil {
		return
	}
	if err := c.app.AccountService.Close(ctx, username, pin); err != nil {
		fmt.Fprintln(c.out, "Closure rejected.")
		return
	}
	fmt.Fprintln(c.out, "Account closed. Goodbye.")
}

// prompt prints a label and reads one trimmed line.
func (c *CLI) prompt(label string) (string, error) {
	if _, err := fmt.Fprintf(c.out, "%s\n> ", label); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPIN reads the PIN without echo when stdin is a terminal, and falls
// back to a plain line read otherwise (tests, piped input).
func (c *CLI) promptPIN() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(c.out, "PIN: ")
		pin, err := readPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(c.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(pin)), nil
	}
	return c.prompt("PIN")
}

func greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 5:
		return "Good Night"
	case h < 12:
		return "Good Morning"
	case h < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}
