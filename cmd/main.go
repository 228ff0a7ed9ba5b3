//go:generate swag init --dir ../ --generalInfo cmd/main.go --output ../docs

package main

import (
	"os"

	"storefront/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Storefront API
// @version 1.0
// @description Regional pricing, exchange rates and offline purchase queue for the game storefront.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}
