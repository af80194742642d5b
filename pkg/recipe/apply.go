package recipe

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// Apply runs the trained step sequence over a dataset and returns the
// transformed result. A nil dataset applies to the template.
//
// Apply does not check that the steps are trained; rejecting an untrained
// apply is each step's own responsibility. It never mutates the recipe, so a
// trained recipe can be applied any number of times, from any number of
// goroutines.
func (r *Recipe) Apply(data model.Dataset, opts ...ApplyOption) (model.Dataset, error) {
	cfg := &applyConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if data == nil {
		data = r.template
	}

	rolling, err := narrow(data, r.vars)
	if err != nil {
		return nil, err
	}

	for i, step := range r.steps {
		rolling, err = step.Apply(rolling)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to apply step %q", StepName(i, step))
		}
	}

	if len(cfg.roles) == 0 {
		return rolling, nil
	}

	return r.projectRoles(rolling, cfg.roles)
}

// projectRoles narrows the transformed dataset down to the columns whose
// metadata role matches. When no metadata row matches at all the unfiltered
// dataset is returned instead of an empty one, so that a mistyped role request
// degrades to "return everything" rather than silently returning nothing.
func (r *Recipe) projectRoles(data model.Dataset, roles []string) (model.Dataset, error) {
	matched := r.termInfo.NamesWithRole(roles...)
	if len(matched) == 0 {
		r.logger.Warn("no variables match the requested roles, returning every column",
			"requested", roles,
			"present", r.termInfo.Roles(),
		)

		return data, nil
	}

	wanted := make(map[string]struct{}, len(matched))
	for _, name := range matched {
		wanted[name] = struct{}{}
	}

	// Keep the dataset's own column order, not the metadata table's.
	keep := []string{}
	for _, name := range data.Columns() {
		if _, ok := wanted[name]; ok {
			keep = append(keep, name)
		}
	}

	projected, err := data.Select(keep...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to project the requested roles")
	}

	return projected, nil
}

// ApplyAll applies one trained recipe to several independent datasets
// concurrently. Results are returned in input order; the first error cancels
// the remaining work.
func ApplyAll(ctx context.Context, r *Recipe, datasets []model.Dataset, opts ...ApplyOption) ([]model.Dataset, error) {
	out := make([]model.Dataset, len(datasets))

	errGrp, dCtx := errgroup.WithContext(ctx)
	for i, data := range datasets {
		i, data := i, data
		errGrp.Go(func() error {
			if err := dCtx.Err(); err != nil {
				return err
			}

			transformed, err := r.Apply(data, opts...)
			if err != nil {
				return errors.Wrapf(err, "dataset %d", i)
			}
			out[i] = transformed

			return nil
		})
	}

	if err := errGrp.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
