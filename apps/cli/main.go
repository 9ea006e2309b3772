package main

import (
	"log"
	"net/http"
	"os"

	"github.com/campuspulse/aews/client"
	"github.com/campuspulse/aews/core"
	"github.com/campuspulse/aews/core/notification"
	"github.com/campuspulse/aews/core/session"
	"github.com/campuspulse/aews/core/tutorial"
	logsvc "github.com/campuspulse/aews/services/logger"
	"github.com/campuspulse/aews/storage/localstate"
)

var logger core.Logger

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "AEWS : ", log.LstdFlags)
	conf := core.NewConfig()

	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = logsvc.NewConsoleLogger(std)
		logger.Enable(conf.Debug)
	}

	// anything escaping the command layer is unexpected; report it and
	// show a generic failure instead of a stack trace
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("unexpected failure", rec)
			std.Println("Something went wrong. Please try again.")
			os.Exit(1)
		}
	}()

	db, err := localstate.Open(conf.StateDir)
	errAndDie(err)

	cli := commandLine{
		conf:     conf,
		api:      client.New(conf.APIBaseURL, http.DefaultClient, logger),
		sessions: session.NewStore(localstate.NewSessionRepository(db), logger),
		notifs:   notification.NewStore(nil),
		tutorial: tutorial.NewStore(localstate.NewTutorialRepository(db), logger),
		stdout:   os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err.Error())
	}
}
