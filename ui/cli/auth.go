// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// auth.go holds the account lifecycle commands: login, logout, whoami and
// register. Passwords are read without echo when stdin is a terminal.

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/acheiapp/achei/internal/api"
	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/model"
	"github.com/acheiapp/achei/internal/validate"
)

func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// promptPassword reads a password without echo. Falls back to a plain line
// read when stdin is not a terminal, e.g. in scripts and tests.
func promptPassword(label string) (string, error) {
	fmt.Printf("%s: ", label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return promptLine("")
}

func promptLine(label string) (string, error) {
	if label != "" {
		fmt.Printf("%s: ", label)
	}
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return trimmed(line), nil
}

func newLoginCmd() *cobra.Command {
	var police bool
	cmd := &cobra.Command{
		Use:   "login [cpf|matricula]",
		Short: "Sign in and persist the session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var identifier string
			var err error
			if len(args) == 1 {
				identifier = args[0]
			} else {
				label := i18n.T("login.cpf")
				if police {
					label = i18n.T("login.matricula")
				}
				if identifier, err = promptLine(label); err != nil {
					return err
				}
			}
			password, err := promptPassword(i18n.T("login.password"))
			if err != nil {
				return err
			}

			var msgID string
			if police {
				msgID = validate.OfficerLogin(identifier, password)
			} else {
				msgID = validate.CitizenLogin(identifier, password)
			}
			if msgID != "" {
				return errors.New(i18n.T(msgID))
			}

			ctx, cancel := commandContext()
			defer cancel()
			var sess model.Session
			if police {
				sess, err = apiClient.LoginOfficer(ctx, identifier, password)
			} else {
				sess, err = apiClient.LoginCitizen(ctx, identifier, password)
			}
			if err != nil {
				return err
			}
			if err := sessions.Login(sess); err != nil {
				return err
			}
			fmt.Println(i18n.T("login.success"))
			fmt.Println(sess.User.Name)
			return nil
		},
	}
	cmd.Flags().BoolVar(&police, "policial", false, "Sign in to the police portal")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sessions.Logout(); err != nil {
				return err
			}
			fmt.Println(i18n.T("logout.done"))
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(); err != nil {
				return err
			}
			u := sessions.Current().User
			fmt.Printf("%s (%s)\n", u.Name, u.Document)
			if u.Type == model.UserOfficer {
				fmt.Println(i18n.T("menu.title.police"))
			} else {
				fmt.Println(i18n.T("menu.title.citizen"))
			}
			return nil
		},
	}
}

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "registro",
		Short: "Create a citizen account",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(i18n.T("register.title"))
			name, err := promptLine(i18n.T("register.name"))
			if err != nil {
				return err
			}
			cpf, err := promptLine(i18n.T("login.cpf"))
			if err != nil {
				return err
			}
			email, err := promptLine("E-mail")
			if err != nil {
				return err
			}
			password, err := promptPassword(i18n.T("login.password"))
			if err != nil {
				return err
			}
			if msgID := validate.Registration(name, cpf, email, password); msgID != "" {
				return errors.New(i18n.T(msgID))
			}

			ctx, cancel := commandContext()
			defer cancel()

			// The address is auto-filled from the CEP; only the number and
			// complement stay manual.
			var addr model.Address
			if code, err := promptLine("CEP"); err == nil && code != "" {
				addr, err = cepClient.Lookup(ctx, code)
				if err != nil {
					return cepError(err)
				}
				fmt.Printf("%s, %s - %s/%s\n", addr.Street, addr.Neighborhood, addr.City, addr.State)
				if complement, err := promptLine(i18n.T("register.complement")); err == nil {
					addr.Complement = complement
				}
			}

			sess, err := apiClient.Register(ctx, api.RegisterRequest{
				Name:     name,
				Document: cpf,
				Email:    email,
				Password: password,
				Address:  addr,
			})
			if err != nil {
				return err
			}
			if err := sessions.Login(sess); err != nil {
				return err
			}
			fmt.Println(i18n.T("register.success"))
			return nil
		},
	}
}
