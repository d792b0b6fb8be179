package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/RINKESH2497/todo-app-fullstack/client"
	"github.com/RINKESH2497/todo-app-fullstack/core"
)

func main() {
	var (
		server   string
		register bool
		login    bool
		logout   bool
		name     string
		email    string
		password string
	)
	flag.StringVar(&server, "server", "http://localhost:8080", "API server base URL")
	flag.BoolVar(&register, "register", false, "register a new account and save the session")
	flag.BoolVar(&login, "login", false, "log in and save the session")
	flag.BoolVar(&logout, "logout", false, "discard the saved session")
	flag.StringVar(&name, "name", "", "display name (with -register)")
	flag.StringVar(&email, "email", "", "account email")
	flag.StringVar(&password, "password", "", "account password")
	flag.Parse()

	if err := run(server, register, login, logout, name, email, password); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(server string, register, login, logout bool, name, email, password string) error {
	c := client.New(server)

	switch {
	case logout:
		return client.ClearSession()

	case register, login:
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		var a client.Auth
		var err error
		if register {
			a, err = c.Register(ctx, name, email, password)
		} else {
			a, err = c.Login(ctx, email, password)
		}
		if err != nil {
			return err
		}

		err = client.SaveSession(client.Session{
			Token: a.Token,
			User:  client.Profile{ID: a.ID, Name: a.Name, Email: a.Email},
		})
		if err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		fmt.Printf("logged in as %s <%s>\n", a.Name, a.Email)
		return nil
	}

	sess, err := client.LoadSession()
	if err != nil {
		return errors.New("no saved session; run with -login or -register first")
	}
	c.SetToken(sess.Token)

	if err := runTUI(c, sess.User); err != nil {
		if errors.Is(err, core.ErrUnauthenticated) {
			_ = client.ClearSession()
			return errors.New("session expired; log in again")
		}
		return err
	}
	return nil
}
