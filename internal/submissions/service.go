package submissions

import (
	"context"
	"errors"

	"careerpath-backend/internal/bundles"
	"careerpath-backend/internal/profile"
	"careerpath-backend/internal/recommend"
	"careerpath-backend/internal/shared/metrics"
	"careerpath-backend/internal/shared/telemetry"
	"careerpath-backend/internal/users"
)

// Service runs one submission end-to-end: profile build, three ordered
// provider calls, optional persistence. Strictly forward-only, single pass.
type Service struct {
	Client  recommend.Client
	Bundles *bundles.Service
	Users   *users.Service
}

// Result carries everything the results view needs. SaveErr is reported
// separately so a persistence failure never erases computed recommendations.
type Result struct {
	Profile  profile.Profile
	Careers  recommend.CareerSet
	Colleges recommend.CollegeSet
	Roadmap  recommend.Roadmap
	Bundle   *bundles.Bundle
	SaveErr  error
}

// Process handles a submission. A returned error is either a
// *profile.ValidationError or a *recommend.ProviderError; anything after the
// three generation steps is reported inside Result, not as an error.
func (s *Service) Process(ctx context.Context, fields map[string]string, save bool, userID int64) (Result, error) {
	metrics.IncSubmissionStarted()
	start := metrics.NowMillis()

	p, err := profile.Build(fields)
	if err != nil {
		metrics.IncSubmissionFailed()
		return Result{}, err
	}

	careers, err := s.Client.GenerateCareers(ctx, p)
	if err != nil {
		return Result{}, s.providerFailure(recommend.OpCareers, err)
	}
	colleges, err := s.Client.GenerateColleges(ctx, p, careers)
	if err != nil {
		return Result{}, s.providerFailure(recommend.OpColleges, err)
	}
	roadmap, err := s.Client.GenerateRoadmap(ctx, p, careers)
	if err != nil {
		return Result{}, s.providerFailure(recommend.OpRoadmap, err)
	}

	result := Result{
		Profile:  p,
		Careers:  careers,
		Colleges: colleges,
		Roadmap:  roadmap,
	}

	if save {
		ownerID := s.resolveOwner(ctx, userID)
		bundle, err := s.Bundles.Save(ctx, p, careers, colleges, roadmap, ownerID)
		if err != nil {
			telemetry.Error("submission.save_failed", map[string]any{
				"err":     err.Error(),
				"user_id": ownerID,
			})
			result.SaveErr = err
		} else {
			result.Bundle = &bundle
		}
	}

	metrics.IncSubmissionCompleted()
	metrics.ObserveSubmissionDurationMs(metrics.NowMillis() - start)
	return result, nil
}

// resolveOwner attaches ownership only when the account actually exists; an
// unresolvable ID degrades to an anonymous save rather than failing the
// request.
func (s *Service) resolveOwner(ctx context.Context, userID int64) int64 {
	if userID == 0 || s.Users == nil {
		return 0
	}
	if _, err := s.Users.Load(ctx, userID); err != nil {
		if !errors.Is(err, users.ErrNotFound) {
			telemetry.Warn("submission.user_lookup_failed", map[string]any{
				"err":     err.Error(),
				"user_id": userID,
			})
		}
		return 0
	}
	return userID
}

func (s *Service) providerFailure(op string, err error) error {
	metrics.IncSubmissionFailed()
	metrics.IncProviderCallFailed()
	telemetry.Error("submission.provider_failed", map[string]any{
		"op":  op,
		"err": err.Error(),
	})
	return err
}
