package main

import (
	"github.com/FPFAVILA/raspadinhabet/internal/app"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	a := app.NewApp()
	if err := a.Run(); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}
