package salary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gpdavidyang/inopnc-payroll/internal/config"
	"github.com/gpdavidyang/inopnc-payroll/internal/domain/salary"
)

// policySource is one tier of the policy resolution chain. Returning a nil
// policy with a nil error means the tier has no answer and the next tier is
// consulted; an error means the backing store itself failed.
type policySource interface {
	name() string
	tryResolve(ctx context.Context, workerID string, asOf time.Time) (*salary.Policy, error)
}

// PolicyResolver resolves the pay policy in force for a worker on a given
// date: worker-specific policy rows first, then the legacy salary record with
// an employment type inferred from the worker's role, then the configured
// default. The final tier always answers, so Resolve fails only when a store
// errors.
type PolicyResolver struct {
	sources []policySource
	logger  *slog.Logger
}

func NewPolicyResolver(
	policyRepo salary.PolicyRepository,
	workerRepo salary.WorkerRepository,
	defaults config.PayrollConfig,
	logger *slog.Logger,
) *PolicyResolver {
	return &PolicyResolver{
		sources: []policySource{
			&workerPolicySource{repo: policyRepo},
			&legacyRecordSource{repo: policyRepo, workers: workerRepo},
			&defaultPolicySource{hourlyRate: defaults.DefaultHourlyRate},
		},
		logger: logger,
	}
}

func (r *PolicyResolver) Resolve(ctx context.Context, workerID string, asOf time.Time) (salary.Policy, error) {
	for i, src := range r.sources {
		policy, err := src.tryResolve(ctx, workerID, asOf)
		if err != nil {
			return salary.Policy{}, fmt.Errorf("%w: %w", salary.ErrPolicyLookup, err)
		}
		if policy == nil {
			continue
		}
		if i > 0 {
			r.logger.Debug("salary policy resolved from fallback tier",
				slog.String("worker_id", workerID),
				slog.String("tier", src.name()),
			)
		}
		return *policy, nil
	}

	// Unreachable while the default source terminates the chain.
	return salary.Policy{}, salary.ErrPolicyLookup
}

// workerPolicySource reads the worker's effective-dated salary settings. The
// repository returns active rows newest effective_date first, so the head of
// the list is authoritative.
type workerPolicySource struct {
	repo salary.PolicyRepository
}

func (s *workerPolicySource) name() string { return "worker_policy" }

func (s *workerPolicySource) tryResolve(ctx context.Context, workerID string, asOf time.Time) (*salary.Policy, error) {
	policies, err := s.repo.ListActiveByWorker(ctx, workerID, asOf)
	if err != nil {
		return nil, fmt.Errorf("list active policies: %w", err)
	}
	if len(policies) == 0 {
		return nil, nil
	}
	return &policies[0], nil
}

// legacyRecordSource reads the pre-migration salary table. That table never
// stored an employment type, so it is inferred from the worker's general
// role: field roles are paid as daily workers, everyone else as regular
// employees.
type legacyRecordSource struct {
	repo    salary.PolicyRepository
	workers salary.WorkerRepository
}

func (s *legacyRecordSource) name() string { return "legacy_record" }

func (s *legacyRecordSource) tryResolve(ctx context.Context, workerID string, asOf time.Time) (*salary.Policy, error) {
	policy, err := s.repo.GetLegacyRecord(ctx, workerID, asOf)
	if err != nil {
		if errors.Is(err, salary.ErrLegacyRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get legacy salary record: %w", err)
	}

	role, err := s.workers.GetRole(ctx, workerID)
	if err != nil {
		if !errors.Is(err, salary.ErrWorkerNotFound) {
			return nil, fmt.Errorf("get worker role: %w", err)
		}
		role = ""
	}

	policy.EmploymentType = employmentTypeForRole(role)
	return &policy, nil
}

func employmentTypeForRole(role string) salary.EmploymentType {
	switch role {
	case "worker", "site_manager":
		return salary.EmploymentDailyWorker
	default:
		return salary.EmploymentRegular
	}
}

// defaultPolicySource terminates the chain so payroll can always be computed
// for a worker with no salary configuration at all.
type defaultPolicySource struct {
	hourlyRate int64
}

func (s *defaultPolicySource) name() string { return "default" }

func (s *defaultPolicySource) tryResolve(_ context.Context, workerID string, asOf time.Time) (*salary.Policy, error) {
	return &salary.Policy{
		WorkerID:       workerID,
		EmploymentType: salary.EmploymentRegular,
		HourlyRate:     s.hourlyRate,
		EffectiveDate:  asOf,
	}, nil
}
