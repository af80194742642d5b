package recipe

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-recipe/pkg/recipe/model"
)

// Train walks the step list in declared order, training every untrained step
// against the data as transformed by all prior steps and updating the live
// metadata table after each one. A nil dataset trains against the template.
//
// A step that is already trained is skipped unless Fresh is requested, but its
// transformation is still applied so that subsequent steps see the correct
// input. Steps trained before a failing step keep their parameters and their
// metadata updates; nothing is rolled back.
func (r *Recipe) Train(data model.Dataset, opts ...TrainOption) error {
	cfg := &trainConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(r.steps) == 0 {
		return ErrNoSteps
	}

	if data == nil {
		data = r.template
	}

	rolling, err := narrow(data, r.vars)
	if err != nil {
		return err
	}

	for i, step := range r.steps {
		name := StepName(i, step)

		if step.Trained() && !cfg.fresh {
			if cfg.verbose {
				r.logger.Info("step already trained, skipped", "step", name)
			}

			// The rolling dataset must still advance through the trained
			// step, otherwise every later step trains on the wrong input.
			rolling, err = step.Apply(rolling)
			if err != nil {
				return errors.Wrapf(err, "unable to apply step %q", name)
			}

			continue
		}

		if cfg.verbose {
			r.logger.Info("training step", "step", name)
		}

		start := time.Now()

		trained, next, err := r.trainStep(step, rolling, r.termInfo)
		if err != nil {
			return errors.Wrapf(err, "unable to train step %q", name)
		}

		if cfg.measure != nil {
			cfg.measure.AddMetric(name).AddDuration(time.Since(start))
		}

		r.steps[i] = trained
		rolling = next
	}

	return nil
}

// trainStep trains a single step against the rolling dataset and folds the
// resulting column metadata into the given table. It returns the trained step
// and the next rolling dataset.
func (r *Recipe) trainStep(step model.Step, rolling model.Dataset, info *Table) (model.Step, model.Dataset, error) {
	trained, err := step.Train(rolling)
	if err != nil {
		return nil, nil, err
	}

	next, err := trained.Apply(rolling)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to apply the trained step")
	}

	types, err := r.classifier.Classify(next)
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to classify the step output")
	}

	info.Merge(next.Columns(), types)
	info.FillRoles(trained.Role())
	info.FillSources(model.SourceDerived)

	return trained, next, nil
}
