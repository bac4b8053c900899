package campaigning

import (
	"context"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
	"github.com/vfg2006/weathertrigger-console/pkg/optimistic"
	"github.com/vfg2006/weathertrigger-console/pkg/requestcache"
)

func googleCacheKey(customerID string) string { return "google-campaigns-" + customerID }

// LoadGoogleCampaigns carrega as campanhas de um cliente Google Ads
func (s *Store) LoadGoogleCampaigns(ctx context.Context, customerID string, force bool) ([]backenddomain.GoogleCampaign, error) {
	campaigns, err := requestcache.Get(ctx, s.cache, googleCacheKey(customerID), func(ctx context.Context) ([]backenddomain.GoogleCampaign, error) {
		return s.backend.GetGoogleCampaigns(ctx, customerID)
	}, requestcache.Options{TTL: s.freshness, Force: force})
	if err != nil {
		s.logger.WithError(err).WithField("customer_id", customerID).Error("Falha ao carregar campanhas Google")
		return nil, err
	}

	s.mu.Lock()
	s.googleCampaigns[customerID] = append([]backenddomain.GoogleCampaign(nil), campaigns...)
	s.mu.Unlock()

	return append([]backenddomain.GoogleCampaign(nil), campaigns...), nil
}

func (s *Store) GoogleCampaigns(customerID string) []backenddomain.GoogleCampaign {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]backenddomain.GoogleCampaign{}, s.googleCampaigns[customerID]...)
}

// UpdateGoogleCampaignStatus alterna entre ENABLED e PAUSED
func (s *Store) UpdateGoogleCampaignStatus(ctx context.Context, customerID, campaignID string, action backenddomain.Action) error {
	if !action.Valid() {
		return NewCampaignError(ErrInvalidAction, apiErrors.ErrInvalidRequest, "Invalid action: "+string(action))
	}

	unlock := s.locks.Lock(campaignID)
	defer unlock()

	view := googleView{s: s, customerID: customerID, campaignID: campaignID}
	if view.Snapshot().campaign == nil {
		return errCampaignNotFound(campaignID)
	}

	past, title := actionVerb(action)
	s.setActionState(campaignID, ActionState{IsLoading: true, LastAction: string(action)})

	_, err := optimistic.Run(ctx, view, optimistic.Tx[*backenddomain.ActionResponse]{
		Apply: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			list := s.googleCampaigns[customerID]
			for i := range list {
				if list[i].ID == campaignID {
					list[i].Status = action.GoogleStatusAfter()
				}
			}
		},
		Remote: func(ctx context.Context) (*backenddomain.ActionResponse, error) {
			return s.backend.GoogleCampaignAction(ctx, campaignID, action)
		},
		Commit: func(*backenddomain.ActionResponse) {
			s.setActionState(campaignID, ActionState{})
			s.notifier.Success("Campaign "+capitalize(past), "Campaign "+past+" successfully")
			s.cache.Invalidate(googleCacheKey(customerID))
		},
		Rollback: func(err error) {
			message := errMessage(err, "Failed to update campaign")
			s.setActionState(campaignID, ActionState{Error: message})
			s.notifier.Error(title+" Failed", "Failed to "+string(action)+" campaign: "+message)
		},
	})
	return err
}
