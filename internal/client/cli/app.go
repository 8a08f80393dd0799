// Package cli implements a small interactive client for the account service.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/accountd/internal/client/api"
	"github.com/dmitrijs2005/accountd/internal/client/config"
)

type App struct {
	config *config.Config
	client *api.Client

	// token holds the bearer token of the current session, if any.
	token string

	in  *bufio.Reader
	out io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	return &App{
		config: cfg,
		client: api.NewClient(cfg.ServerAddr),
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Register(ctx context.Context) {
	username, err := GetSimpleText(a.in, "Enter username", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	email, err := GetSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	if err := a.client.Register(ctx, username, email, password); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintln(a.out, "Success!")
}

func (a *App) Login(ctx context.Context) {
	email, err := GetSimpleText(a.in, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	a.token = token
	fmt.Fprintln(a.out, "Logged in.")
}

func (a *App) WhoAmI(ctx context.Context) {
	if a.token == "" {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	profile, err := a.client.Me(ctx, a.token)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintf(a.out, "%s <%s> role=%s id=%s\n", profile.Username, profile.Email, profile.Role, profile.ID)
}

// Run starts the command loop and returns when the user quits or input ends.
func (a *App) Run(ctx context.Context) {
	for {
		cmd, err := GetSimpleText(a.in, "Commands: register, login, whoami, quit", a.out)
		if err != nil {
			return
		}

		switch cmd {
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "whoami":
			a.WhoAmI(ctx)
		case "quit", "exit":
			return
		case "":
		default:
			fmt.Fprintf(a.out, "Unknown command: %s\n", cmd)
		}
	}
}
