package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/hareware-api/internal/domain"
	"github.com/jhoicas/hareware-api/internal/domain/entity"
)

// Clock fuente de tiempo inyectable; nil usa time.Now.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

func (c Clock) today() time.Time {
	return entity.DateOnly(c.now())
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func notFound(what string, id any) error {
	return fmt.Errorf("%w: %s %v", domain.ErrNotFound, what, id)
}
