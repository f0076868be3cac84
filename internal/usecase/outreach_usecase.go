package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"internscout/internal/domain/outreach"
	"internscout/internal/repository"
)

var ErrComplianceFailed = errors.New("draft failed compliance check")

type OutreachUsecase interface {
	Generate(ctx context.Context, userID uuid.UUID, listingID string) (outreach.Draft, outreach.Result, error)
	List(ctx context.Context, userID uuid.UUID) ([]outreach.Draft, error)
	UpdateStatus(ctx context.Context, userID, draftID uuid.UUID, status outreach.Status) (outreach.Draft, error)
}

type Outreach struct {
	profiles repository.ProfileRepository
	listings repository.ListingRepository
	drafts   repository.DraftRepository
	policy   outreach.Policy

	now func() time.Time
}

func NewOutreachUsecase(
	profiles repository.ProfileRepository,
	listings repository.ListingRepository,
	drafts repository.DraftRepository,
	policy outreach.Policy,
) *Outreach {
	return &Outreach{
		profiles: profiles,
		listings: listings,
		drafts:   drafts,
		policy:   policy,
		now:      time.Now,
	}
}

// Generate renders a templated outreach draft, runs it through the compliance
// filter and persists the sanitized version. A draft that fails the filter is
// never stored; the issues are returned so the caller can surface them.
// Regenerating for the same listing replaces the earlier draft.
func (u *Outreach) Generate(ctx context.Context, userID uuid.UUID, listingID string) (outreach.Draft, outreach.Result, error) {
	if userID == uuid.Nil {
		return outreach.Draft{}, outreach.Result{}, ErrUnauthorized
	}

	p, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return outreach.Draft{}, outreach.Result{}, ErrProfileNotFound
		}
		return outreach.Draft{}, outreach.Result{}, ErrInternal
	}

	l, err := u.listings.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return outreach.Draft{}, outreach.Result{}, ErrListingNotFound
		}
		return outreach.Draft{}, outreach.Result{}, ErrInternal
	}

	draft := outreach.NewDraft(p, l, u.now())

	res := u.policy.Check(draft.Subject, draft.Body)
	if !res.Passed {
		return outreach.Draft{}, res, ErrComplianceFailed
	}

	draft.Subject = res.SanitizedSubject
	draft.Body = res.SanitizedBody
	draft.ComplianceChecked = true

	if err := u.drafts.Upsert(ctx, draft); err != nil {
		return outreach.Draft{}, outreach.Result{}, ErrInternal
	}
	return draft, res, nil
}

func (u *Outreach) List(ctx context.Context, userID uuid.UUID) ([]outreach.Draft, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	drafts, err := u.drafts.ListByProfile(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return drafts, nil
}

func (u *Outreach) UpdateStatus(ctx context.Context, userID, draftID uuid.UUID, status outreach.Status) (outreach.Draft, error) {
	if userID == uuid.Nil {
		return outreach.Draft{}, ErrUnauthorized
	}
	if !status.Valid() {
		return outreach.Draft{}, ErrInvalidInput
	}

	d, err := u.drafts.GetByID(ctx, userID, draftID)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return outreach.Draft{}, ErrDraftNotFound
		}
		return outreach.Draft{}, ErrInternal
	}

	if !d.Status.CanTransition(status) {
		return outreach.Draft{}, outreach.ErrInvalidTransition
	}

	d.Status = status
	if status == outreach.StatusSent {
		sentAt := u.now().UTC()
		d.SentAt = &sentAt
	}

	if err := u.drafts.Update(ctx, d); err != nil {
		return outreach.Draft{}, ErrInternal
	}
	return d, nil
}
