package application

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"

	domainerrors "vershyna/contexts/catalog/mountain-service/domain/errors"
)

// maxSlugAttempts bounds the suffix probe. Exhausting it is a configuration
// problem (a hundred entities sharing one name), surfaced as ErrSlugExhausted.
const maxSlugAttempts = 100

// uniqueSlug turns name into a lowercase ASCII hyphenated token and probes the
// store for a free variant: base, base-1, base-2, ... The unique index on the
// slug column remains the final arbiter against concurrent inserts.
func (s Service) uniqueSlug(ctx context.Context, kind string, name string) (string, error) {
	base := slug.Make(name)
	for k := 0; k < maxSlugAttempts; k++ {
		candidate := base
		if k > 0 {
			candidate = fmt.Sprintf("%s-%d", base, k)
		}
		used, err := s.Slugs.SlugInUse(ctx, kind, candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
	}
	return "", domainerrors.ErrSlugExhausted
}
