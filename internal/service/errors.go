package service

import (
	"errors"

	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/alexanderramin/crewplan/internal/repository"
)

// lookupErr maps a repository read failure onto the service error taxonomy.
func lookupErr(err error, entity, id string) error {
	if err == nil {
		return nil
	}
	var appErr *app.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, repository.ErrNotFound) {
		return app.NotFound("%s %s not found", entity, id)
	}
	return app.Internal(err, "loading "+entity+" "+id)
}
