package internal

import (
	"github.com/rios0rios0/packagecount/internal/domain/entities"
)

// AppInternal aggregates the application's subcommand controllers.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the AppInternal with all registered controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
