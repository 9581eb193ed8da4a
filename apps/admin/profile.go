package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siakad-id/siakad/core/profile"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the signed-in account's profile",
	}
	cmd.AddCommand(newProfileShowCmd(a), newProfileLinkCmd(a))
	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the signed-in account's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/profile"); err != nil {
				return err
			}
			p, err := a.profileSvc.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s>\n", p.Name, p.Email)
			switch {
			case !p.Linked():
				a.out.Noticef("no school profile linked yet; run `profile link --token TOKEN`")
			case p.Userable.Teacher != nil:
				t := p.Userable.Teacher
				fmt.Printf("linked teacher: %s (%s), %d subject(s)\n", t.Name, t.ID, t.SubjectCount)
			case p.Userable.Student != nil:
				s := p.Userable.Student
				fmt.Printf("linked student: %s (%s), NISN=%s NIS=%s\n", s.Name, s.ID, s.NISN, s.NIS)
			}
			return nil
		},
	}
}

func newProfileLinkCmd(a *app) *cobra.Command {
	var lp profile.LinkProfile

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Link this account to a teacher or student record",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/link-account"); err != nil {
				return err
			}
			p, err := a.profileSvc.Link(cmd.Context(), lp)
			if err != nil {
				return err
			}
			a.out.Successf("account linked as %s", p.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&lp.Token, "token", "", "one-time link token issued by the school")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}
