package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Hold the realtime channel open and report its lifecycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.enter("/dashboard"); err != nil {
				return err
			}
			if a.supervisor == nil {
				return errors.New("realtime is disabled; set DEV_ENABLEREALTIME=true")
			}

			a.supervisor.OnConnected(func() { a.out.Successf("realtime channel connected") })
			a.supervisor.OnDisconnected(func() { a.out.Noticef("realtime channel disconnected") })
			a.supervisor.OnError(func(err error) { a.out.Failuref("realtime channel error: %v", err) })

			if err := a.supervisor.Connect(cmd.Context()); err != nil {
				return err
			}
			a.out.Noticef("watching; press Ctrl-C to stop")

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig

			return a.supervisor.Close()
		},
	}
}
