package movieapi

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
	"golang.org/x/term"
)

// TerminalLogin runs a username/password login on the plain terminal,
// before the TUI takes over the screen
type TerminalLogin struct {
	auth domain.AuthRepository
	in   io.Reader
	out  io.Writer
}

// NewTerminalLogin creates a login flow reading from stdin
func NewTerminalLogin(auth domain.AuthRepository) *TerminalLogin {
	return &TerminalLogin{auth: auth, in: os.Stdin, out: os.Stdout}
}

// Run prompts for credentials and authenticates against the API
func (f *TerminalLogin) Run(ctx context.Context) (*domain.Session, error) {
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, "Marquee Login")
	fmt.Fprintln(f.out, "━━━━━━━━━━━━━")

	reader := bufio.NewReader(f.in)
	fmt.Fprint(f.out, "Username: ")
	username, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read username: %w", err)
	}
	username = strings.TrimSpace(username)

	fmt.Fprint(f.out, "Password: ")
	password, err := f.readPassword(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Fprintln(f.out) // newline after hidden input

	fmt.Fprintln(f.out, "Authenticating...")

	session, err := f.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(f.out, "Signed in as %s\n", session.Username)
	return session, nil
}

// readPassword hides input when stdin is a terminal, otherwise reads a plain line
func (f *TerminalLogin) readPassword(reader *bufio.Reader) (string, error) {
	if file, ok := f.in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		b, err := term.ReadPassword(int(file.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
