package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/siakad-id/siakad/core/session"
	"github.com/siakad-id/siakad/navigation"
)

var readPasswordFunc = term.ReadPassword // mockable

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	pwd, err := readPasswordFunc(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(pwd), nil
}

func newLoginCmd(a *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, decision, err := a.guard.Navigate(navigation.LoginPath)
			if err != nil {
				return err
			}
			if decision == navigation.RedirectToHome {
				a.out.Noticef("already signed in (redirected to %s); run `siakad logout` first", rt.Path)
				return nil
			}

			pwd, err := promptPassword("Enter password: ")
			if err != nil {
				return err
			}

			idt, err := a.sessionSvc.Login(cmd.Context(), session.Credentials{Email: email, Password: pwd})
			if err != nil {
				return err
			}
			a.out.Successf("signed in as %s <%s>", idt.Name, idt.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the remote token and clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.sessionSvc.Logout(cmd.Context())
			a.out.Successf("signed out")
			return nil
		},
	}
}

func newRegisterCmd(a *app) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, decision, err := a.guard.Navigate("/signup")
			if err != nil {
				return err
			}
			if decision == navigation.RedirectToHome {
				a.out.Noticef("already signed in (redirected to %s)", rt.Path)
				return nil
			}

			pwd, err := promptPassword("Enter password: ")
			if err != nil {
				return err
			}
			confirm, err := promptPassword("Confirm password: ")
			if err != nil {
				return err
			}

			reg := session.Registration{Name: name, Email: email, Password: pwd, PasswordConfirm: confirm}
			if err := a.sessionSvc.Register(cmd.Context(), reg); err != nil {
				return err
			}
			a.out.Successf("account created; run `siakad login` to sign in")
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "full name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			idt, ok := a.store.Identity()
			if !ok {
				a.out.Noticef("not signed in")
				return nil
			}
			fmt.Printf("%s <%s>\n", idt.Name, idt.Email)
			if len(idt.Roles) > 0 {
				fmt.Printf("roles: %v\n", idt.Roles)
			}
			if len(idt.Permissions) > 0 {
				fmt.Printf("permissions: %v\n", idt.Permissions)
			}
			return nil
		},
	}
}
