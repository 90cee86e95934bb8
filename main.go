package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskdesk/internal/config"
	"taskdesk/internal/factory"
	httptaskdesk "taskdesk/internal/http"
	middlewareEcho "taskdesk/internal/middleware"
	"taskdesk/internal/scheduler"
	db "taskdesk/pkg/database"
	"taskdesk/pkg/log"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// @title taskdesk
// @version 1.0.0.
// @description This is a doc for taskdesk

func main() {
	config.Init()

	log.Init()

	db.Init()

	f := factory.NewFactory()

	if err := db.Migrate(f.Db); err != nil {
		logrus.Fatal(err)
	}

	e := echo.New()

	middlewareEcho.Init(e)

	httptaskdesk.Init(e, f)

	sched := scheduler.New(f)
	if err := sched.Start(); err != nil {
		logrus.Fatal(err)
	}

	ch := make(chan os.Signal, 1)

	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		err := e.Start(":" + config.Get().App.Port)
		if err != nil {
			if err != http.ErrServerClosed {
				logrus.Fatal(err)
			}
		}
	}()

	<-ch

	logrus.Println("Shutting down server...")
	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	e.Shutdown(ctx)
	logrus.Println("Server gracefully stopped")
}
