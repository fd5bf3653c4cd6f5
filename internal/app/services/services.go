package services

import (
	"errors"

	"github.com/yigit/schoolhub/internal/app/repositories"
)

// mapNotFound replaces the repository not-found error with notFound and
// leaves every other error untouched.
func mapNotFound(err, notFound error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound
	}
	return err
}
