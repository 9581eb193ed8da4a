package main

import (
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/siakad-id/siakad/core"
	"github.com/siakad-id/siakad/core/profile"
	"github.com/siakad-id/siakad/core/session"
	"github.com/siakad-id/siakad/core/student"
	"github.com/siakad-id/siakad/core/teacher"
	"github.com/siakad-id/siakad/httpapi"
	"github.com/siakad-id/siakad/navigation"
	"github.com/siakad-id/siakad/realtime"
	logsvc "github.com/siakad-id/siakad/services/logger"
	"github.com/siakad-id/siakad/storage/keyring"
)

// app holds the wired dependencies for one process lifetime. There is a
// single wiring path; optional concerns are toggled by config flags
// rather than by separate entry points.
type app struct {
	conf   *core.Config
	logger core.Logger
	out    *output

	store      *session.Store
	sessionSvc *session.Service
	teacherSvc *teacher.Service
	studentSvc *student.Service
	profileSvc *profile.Service

	guard      *navigation.Guard
	supervisor *realtime.Supervisor
}

func newApp(conf *core.Config) (*app, error) {
	// set up logger
	std := log.New(os.Stderr, "ADMIN : ", log.LstdFlags)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	// set up session persistence
	krPath, err := keyring.DefaultPath("siakad")
	if err != nil {
		return nil, err
	}
	kr, err := keyring.Open(krPath)
	if err != nil {
		if !errors.Is(err, keyring.ErrCorrupted) {
			return nil, err
		}
		// treated as "no session"; the next write replaces the file
		logger.Warn("discarding corrupted keyring", err)
	}
	store := session.NewStore(kr, logger)

	// set up services
	client := httpapi.NewClient(conf.API, store.Token)
	a := &app{
		conf:       conf,
		logger:     logger,
		out:        newOutput(conf.Features.EnableColor),
		store:      store,
		sessionSvc: session.NewService(store, httpapi.NewAuthRepository(client), logger),
		teacherSvc: teacher.NewService(httpapi.NewTeacherRepository(client)),
		studentSvc: student.NewService(httpapi.NewStudentRepository(client)),
		profileSvc: profile.NewService(httpapi.NewProfileRepository(client)),
	}

	// set up navigation
	var indicator navigation.Indicator
	if conf.Features.EnableSpinner {
		indicator = newSpinnerIndicator()
	}
	a.guard = navigation.NewGuard(navigation.DefaultRoutes(), store, indicator, setTerminalTitle, logger)

	// set up the realtime channel
	if conf.Features.EnableRealtime {
		rconf, err := realtime.ValidateConfig(conf.Realtime)
		if err != nil {
			return nil, errors.Wrap(err, "realtime configuration")
		}
		a.supervisor = realtime.NewSupervisor(realtime.NewWebsocketTransport(rconf, conf.Build), logger)
	}
	return a, nil
}

// enter runs the navigation guard for the screen a command belongs to.
// A redirect to the login screen aborts the command.
func (a *app) enter(path string) error {
	rt, decision, err := a.guard.Navigate(path)
	if err != nil {
		return err
	}
	if decision == navigation.RedirectToLogin {
		return errors.Errorf("authentication required, please run `siakad login` first (redirected to %s)", rt.Path)
	}
	return nil
}
