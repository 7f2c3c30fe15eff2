package main

import (
	"github.com/rios0rios0/packagecount/internal"
	"github.com/rios0rios0/packagecount/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectCountController() *controllers.CountController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var countController *controllers.CountController
	if err := container.Invoke(func(cc *controllers.CountController) {
		countController = cc
	}); err != nil {
		panic(err)
	}

	return countController
}
