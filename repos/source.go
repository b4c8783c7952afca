package repos

import (
	"context"

	"github.com/jmgilman/iostep/decode"
	"github.com/jmgilman/iostep/errors"
)

// Source lists repositories for an owner.
type Source interface {
	List(ctx context.Context, owner string) ([]decode.Record, error)
}

func validateOwner(owner string) error {
	if owner == "" {
		err := errors.New(errors.CodeInvalidInput, "owner cannot be empty")
		return errors.WithContext(err, "field", "owner")
	}
	return nil
}
