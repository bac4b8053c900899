package campaigning

import (
	"context"
	"fmt"
	"strings"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"github.com/vfg2006/weathertrigger-console/pkg/optimistic"
	"github.com/vfg2006/weathertrigger-console/pkg/utils"
)

const (
	billingEventImpressions = "IMPRESSIONS"
	optimizationGoalReach   = "REACH"
)

func defaultTargeting() backenddomain.Targeting {
	return backenddomain.Targeting{
		AgeMin:       18,
		AgeMax:       65,
		Genders:      []int{1, 2},
		GeoLocations: &backenddomain.GeoLocations{Countries: []string{"US"}},
	}
}

func actionVerb(action backenddomain.Action) (past, title string) {
	if action == backenddomain.ActionPause {
		return "paused", "Pause"
	}
	return "resumed", "Resume"
}

// UpdateCampaignStatus pausa ou retoma a campanha com atualização otimista
func (s *Store) UpdateCampaignStatus(ctx context.Context, campaignID string, action backenddomain.Action) error {
	if !action.Valid() {
		return NewCampaignError(ErrInvalidAction, apiErrors.ErrInvalidRequest, fmt.Sprintf("Invalid action: %s", action))
	}

	unlock := s.locks.Lock(campaignID)
	defer unlock()

	campaign, ok := s.CampaignByID(campaignID)
	if !ok {
		return errCampaignNotFound(campaignID)
	}

	past, title := actionVerb(action)
	s.setActionState(campaignID, ActionState{IsLoading: true, LastAction: string(action)})

	view := campaignView{s: s, id: campaignID, accountID: campaign.AdAccountID}
	_, err := optimistic.Run(ctx, view, optimistic.Tx[*backenddomain.ActionResponse]{
		Apply: func() {
			s.mutateCampaign(campaignID, func(c *CampaignWithAdSets) {
				c.Status = action.StatusAfter()
			})
		},
		Remote: func(ctx context.Context) (*backenddomain.ActionResponse, error) {
			return s.backend.CampaignAction(ctx, campaignID, action)
		},
		Commit: func(*backenddomain.ActionResponse) {
			s.setActionState(campaignID, ActionState{})
			s.notifier.Success("Campaign "+capitalize(past), "Campaign "+past+" successfully")
			s.cache.InvalidatePattern(campaignsPattern)
		},
		Rollback: func(err error) {
			message := errMessage(err, "Failed to update campaign")
			s.setActionState(campaignID, ActionState{Error: message})
			s.notifier.Error(title+" Failed", fmt.Sprintf("Failed to %s campaign: %s", action, message))
		},
	})
	if err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"campaign_id": campaignID,
			"action":      action,
		}).Warn("Falha ao alterar status da campanha, estado restaurado")
	}
	return err
}

// UpdateCampaign altera nome e objetivo da campanha
func (s *Store) UpdateCampaign(ctx context.Context, campaignID string, form CampaignForm) error {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return NewCampaignError(ErrInvalidCampaign, apiErrors.ErrMissingRequiredData, "Campaign name is required")
	}

	unlock := s.locks.Lock(campaignID)
	defer unlock()

	campaign, ok := s.CampaignByID(campaignID)
	if !ok {
		return errCampaignNotFound(campaignID)
	}

	objective := form.Objective
	if objective == "" {
		objective = campaign.Objective
	}

	s.setActionState(campaignID, ActionState{IsLoading: true, LastAction: "update"})

	view := campaignView{s: s, id: campaignID, accountID: campaign.AdAccountID}
	_, err := optimistic.Run(ctx, view, optimistic.Tx[struct{}]{
		Apply: func() {
			s.mutateCampaign(campaignID, func(c *CampaignWithAdSets) {
				c.Name = name
				c.Objective = objective
				c.Type = AdTypeFromObjective(objective)
			})
		},
		Remote: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.backend.UpdateCampaign(ctx, campaignID, backenddomain.UpdateCampaignRequest{
				Name:      name,
				Objective: objective,
			})
		},
		Commit: func(struct{}) {
			s.setActionState(campaignID, ActionState{})
			s.notifier.Success("Campaign Updated", fmt.Sprintf("Campaign \"%s\" updated successfully", name))
			s.cache.InvalidatePattern(campaignsPattern)
		},
		Rollback: func(err error) {
			message := errMessage(err, "Failed to update campaign")
			s.setActionState(campaignID, ActionState{Error: message})
			s.notifier.Error("Update Failed", "Failed to update campaign: "+message)
		},
	})
	return err
}

// CreateCampaign cria a campanha pausada na conta selecionada (ou na primeira conectada).
// Um placeholder com id temporário fica visível até a resposta do backend.
func (s *Store) CreateCampaign(ctx context.Context, form CampaignForm) (*CampaignWithAdSets, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, NewCampaignError(ErrInvalidCampaign, apiErrors.ErrMissingRequiredData, "Campaign name is required")
	}

	s.mu.RLock()
	meta := s.metaAccount
	selected := s.selectedAccountID
	var first backenddomain.AdAccount
	hasAccount := meta != nil && len(meta.AdAccounts) > 0
	if hasAccount {
		first = meta.AdAccounts[0]
	}
	s.mu.RUnlock()

	if !hasAccount {
		return nil, NewCampaignError(ErrAdAccountNotFound, apiErrors.ErrAdAccountUnavailable, "No ad account found. Please connect your Meta Ads account.")
	}

	firstID := first.CanonicalID()
	if firstID == "" {
		return nil, NewCampaignError(ErrAdAccountNotFound, apiErrors.ErrAdAccountUnavailable, "Invalid ad account ID. Please reconnect your Meta account.")
	}

	targetID := selected
	if targetID == "" {
		targetID = firstID
	}
	targetName, targetCurrency := first.Name, first.Currency
	for _, acc := range s.AvailableAccounts() {
		if acc.ID == targetID {
			targetName, targetCurrency = acc.Name, acc.Currency
			break
		}
	}

	tempID := utils.NewID("temp-")
	placeholder := CampaignWithAdSets{
		Campaign: backenddomain.Campaign{
			ID:          tempID,
			Name:        name,
			Status:      backenddomain.StatusPaused,
			Objective:   form.Objective,
			CreatedTime: s.now().UTC().Format("2006-01-02T15:04:05.000Z"),
		},
		AdSets:        []backenddomain.AdSet{},
		Platform:      PlatformMeta,
		Channel:       channelFacebook,
		Type:          AdTypeFromObjective(form.Objective),
		AdAccountID:   targetID,
		AdAccountName: accountName(targetName, targetID),
		Currency:      currencyOrDefault(targetCurrency),
	}

	s.setActionState(tempID, ActionState{IsLoading: true, LastAction: "create"})

	var created CampaignWithAdSets
	view := campaignView{s: s, id: tempID, accountID: targetID}
	_, err := optimistic.Run(ctx, view, optimistic.Tx[*backenddomain.CreateCampaignResponse]{
		Apply: func() {
			s.mu.Lock()
			s.campaigns = append(s.campaigns, placeholder.clone())
			s.mu.Unlock()
			s.adjustAccountCount(targetID, 1)
		},
		Remote: func(ctx context.Context) (*backenddomain.CreateCampaignResponse, error) {
			return s.backend.CreateCampaign(ctx, backenddomain.CreateCampaignRequest{
				AdAccountID: targetID,
				Name:        name,
				Objective:   form.Objective,
				Status:      backenddomain.StatusPaused,
			})
		},
		Commit: func(resp *backenddomain.CreateCampaignResponse) {
			created = placeholder.clone()
			created.ID = resp.ID
			// uma recarga durante a chamada pode já ter substituído o placeholder
			s.mutateCampaign(tempID, func(c *CampaignWithAdSets) {
				c.ID = resp.ID
			})
			s.setActionState(tempID, ActionState{})
			s.notifier.Success("Campaign Created", fmt.Sprintf("Campaign \"%s\" created successfully in %s", name, placeholder.AdAccountName))
			s.cache.InvalidatePattern(campaignsPattern)
		},
		Rollback: func(err error) {
			message := errMessage(err, "Failed to create campaign")
			s.setActionState(tempID, ActionState{Error: message})
			s.notifier.Error("Campaign Creation Failed", message)
		},
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// DeleteCampaign remove a campanha otimisticamente
func (s *Store) DeleteCampaign(ctx context.Context, campaignID string) error {
	unlock := s.locks.Lock(campaignID)
	defer unlock()

	campaign, ok := s.CampaignByID(campaignID)
	if !ok {
		return errCampaignNotFound(campaignID)
	}

	s.setActionState(campaignID, ActionState{IsLoading: true, LastAction: "delete-campaign"})

	view := campaignView{s: s, id: campaignID, accountID: campaign.AdAccountID}
	_, err := optimistic.Run(ctx, view, optimistic.Tx[struct{}]{
		Apply: func() {
			s.removeCampaign(campaignID)
			if campaign.AdAccountID != "" {
				s.adjustAccountCount(campaign.AdAccountID, -1)
			}
		},
		Remote: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.backend.DeleteCampaign(ctx, campaignID)
		},
		Commit: func(struct{}) {
			s.setActionState(campaignID, ActionState{})
			s.notifier.Success("Campaign Deleted", fmt.Sprintf("Campaign \"%s\" deleted successfully", campaign.Name))
			s.cache.InvalidatePattern(campaignsPattern)
			s.cache.Invalidate(adSetsCacheKey(campaignID))
		},
		Rollback: func(err error) {
			message := errMessage(err, "Failed to delete campaign")
			s.setActionState(campaignID, ActionState{Error: message})
			s.notifier.Error("Delete Failed", "Failed to delete campaign: "+message)
		},
	})
	return err
}

// resolveAdAccount segue a ordem: conta da campanha, conta selecionada, primeira conta conectada
func (s *Store) resolveAdAccount(campaign *CampaignWithAdSets) (id string, currency string, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lookup := func(id string) (backenddomain.AdAccount, bool) {
		if s.metaAccount == nil {
			return backenddomain.AdAccount{}, false
		}
		for _, acc := range s.metaAccount.AdAccounts {
			if acc.CanonicalID() == id {
				return acc, true
			}
		}
		return backenddomain.AdAccount{}, false
	}

	switch {
	case campaign != nil && campaign.AdAccountID != "":
		id = campaign.AdAccountID
		currency = campaign.Currency
		if acc, ok := lookup(id); ok && acc.Currency != "" {
			currency = acc.Currency
		}
	case s.selectedAccountID != "":
		id = s.selectedAccountID
		if acc, ok := lookup(id); ok {
			currency = acc.Currency
		}
	case s.metaAccount != nil && len(s.metaAccount.AdAccounts) > 0:
		acc := s.metaAccount.AdAccounts[0]
		id = acc.CanonicalID()
		currency = acc.Currency
	}

	if id == "" {
		return "", "", NewCampaignError(ErrAdAccountNotFound, apiErrors.ErrAdAccountUnavailable,
			"Ad account not found. Please load campaigns or reconnect your Meta account.")
	}

	return id, currencyOrDefault(currency), nil
}

// CreateAdSet valida nome e orçamento antes de qualquer alteração de estado ou chamada remota
func (s *Store) CreateAdSet(ctx context.Context, campaignID string, form AdSetForm) (*backenddomain.AdSet, error) {
	var campaignRef *CampaignWithAdSets
	if c, ok := s.CampaignByID(campaignID); ok {
		campaignRef = &c
	}

	adAccountID, currency, err := s.resolveAdAccount(campaignRef)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		return nil, NewCampaignError(ErrInvalidAdSet, apiErrors.ErrMissingRequiredData, "Ad set name is required")
	}

	budget, err := ValidateDailyBudget(form.DailyBudget, currency)
	if err != nil {
		return nil, err
	}
	minor := fmt.Sprintf("%d", ToMinorUnits(budget))

	targeting := defaultTargeting()
	if form.Targeting != nil {
		targeting = *cloneTargeting(form.Targeting)
	}

	tempID := utils.NewID("temp-adset-")
	placeholder := backenddomain.AdSet{
		ID:               tempID,
		Name:             name,
		CampaignID:       campaignID,
		Status:           backenddomain.StatusPaused,
		DailyBudget:      minor,
		Targeting:        cloneTargeting(&targeting),
		BillingEvent:     billingEventImpressions,
		OptimizationGoal: optimizationGoalReach,
		CreatedTime:      s.now().UTC().Format("2006-01-02T15:04:05.000Z"),
	}

	s.setActionState(tempID, ActionState{IsLoading: true, LastAction: "create-adset"})

	var created backenddomain.AdSet
	view := adSetView{s: s, campaignID: campaignID, adSetID: tempID}
	_, err = optimistic.Run(ctx, view, optimistic.Tx[*backenddomain.CreateAdSetResponse]{
		Apply: func() {
			s.mutateCampaign(campaignID, func(c *CampaignWithAdSets) {
				c.AdSets = append(c.AdSets, cloneAdSet(placeholder))
			})
		},
		Remote: func(ctx context.Context) (*backenddomain.CreateAdSetResponse, error) {
			return s.backend.CreateAdSet(ctx, backenddomain.CreateAdSetRequest{
				AdAccountID:      adAccountID,
				CampaignID:       campaignID,
				Name:             name,
				DailyBudget:      minor,
				Targeting:        targeting,
				BillingEvent:     billingEventImpressions,
				OptimizationGoal: optimizationGoalReach,
				Status:           backenddomain.StatusPaused,
			})
		},
		Commit: func(resp *backenddomain.CreateAdSetResponse) {
			created = cloneAdSet(placeholder)
			created.ID = resp.ID
			s.mutateAdSet(campaignID, tempID, func(as *backenddomain.AdSet) {
				as.ID = resp.ID
			})
			s.setActionState(tempID, ActionState{})
			s.notifier.Success("Ad Set Created",
				fmt.Sprintf("Ad set \"%s\" created successfully with %s %s daily budget", name, formatAmount(budget), currency))
			s.cache.InvalidatePattern(campaignsPattern)
			s.cache.Invalidate(adSetsCacheKey(campaignID))
		},
		Rollback: func(err error) {
			message := errMessage(err, "Failed to create ad set")
			s.setActionState(tempID, ActionState{Error: message})
			s.notifier.Error("Ad Set Creation Failed", message)
		},
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateAdSetStatus pausa ou retoma um ad set já carregado
func (s *Store) UpdateAdSetStatus(ctx context.Context, adSetID string, action backenddomain.Action) error {
	if !action.Valid() {
		return NewCampaignError(ErrInvalidAction, apiErrors.ErrInvalidRequest, fmt.Sprintf("Invalid action: %s", action))
	}

	unlock := s.locks.Lock(adSetID)
	defer unlock()

	campaignID, ok := s.adSetOwner(adSetID)
	if !ok {
		return errAdSetNotFound(adSetID)
	}

	past, title := actionVerb(action)
	s.setActionState(adSetID, ActionState{IsLoading: true, LastAction: string(action)})

	view := adSetView{s: s, campaignID: campaignID, adSetID: adSetID}
	_, err := optimistic.Run(ctx, view, optimistic.Tx[*backenddomain.ActionResponse]{
		Apply: func() {
			s.mutateAdSet(campaignID, adSetID, func(as *backenddomain.AdSet) {
				as.Status = action.StatusAfter()
			})
		},
		Remote: func(ctx context.Context) (*backenddomain.ActionResponse, error) {
			return s.backend.AdSetAction(ctx, adSetID, action)
		},
		Commit: func(*backenddomain.ActionResponse) {
			s.setActionState(adSetID, ActionState{})
			s.notifier.Success("Ad Set "+capitalize(past), "Ad set "+past+" successfully")
			s.cache.InvalidatePattern(campaignsPattern)
			s.cache.Invalidate(adSetsCacheKey(campaignID))
		},
		Rollback: func(err error) {
			message := errMessage(err, "Failed to update ad set")
			s.setActionState(adSetID, ActionState{Error: message})
			s.notifier.Error(title+" Failed", fmt.Sprintf("Failed to %s ad set: %s", action, message))
		},
	})
	return err
}

// DeleteAdSet remove o ad set otimisticamente
func (s *Store) DeleteAdSet(ctx context.Context, adSetID string) error {
	unlock := s.locks.Lock(adSetID)
	defer unlock()

	campaignID, ok := s.adSetOwner(adSetID)
	if !ok {
		return errAdSetNotFound(adSetID)
	}

	s.setActionState(adSetID, ActionState{IsLoading: true, LastAction: "delete-adset"})

	view := adSetView{s: s, campaignID: campaignID, adSetID: adSetID}
	_, err := optimistic.Run(ctx, view, optimistic.Tx[struct{}]{
		Apply: func() {
			s.mutateCampaign(campaignID, func(c *CampaignWithAdSets) {
				kept := c.AdSets[:0:0]
				for _, as := range c.AdSets {
					if as.ID != adSetID {
						kept = append(kept, as)
					}
				}
				c.AdSets = kept
			})
		},
		Remote: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.backend.DeleteAdSet(ctx, adSetID)
		},
		Commit: func(struct{}) {
			s.setActionState(adSetID, ActionState{})
			s.notifier.Success("Ad Set Deleted", "Ad set deleted successfully")
			s.cache.InvalidatePattern(campaignsPattern)
			s.cache.Invalidate(adSetsCacheKey(campaignID))
		},
		Rollback: func(err error) {
			s.setActionState(adSetID, ActionState{Error: errMessage(err, "Failed to delete ad set")})
			s.notifier.Error("Delete Failed", "Failed to delete ad set")
		},
	})
	return err
}

func (s *Store) mutateCampaign(id string, fn func(*CampaignWithAdSets)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			fn(&s.campaigns[i])
			return true
		}
	}
	return false
}

func (s *Store) mutateAdSet(campaignID, adSetID string, fn func(*backenddomain.AdSet)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.campaigns {
		if s.campaigns[i].ID != campaignID {
			continue
		}
		for j := range s.campaigns[i].AdSets {
			if s.campaigns[i].AdSets[j].ID == adSetID {
				fn(&s.campaigns[i].AdSets[j])
				return true
			}
		}
	}
	return false
}

func (s *Store) removeCampaign(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]CampaignWithAdSets, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.campaigns = kept
}

func (s *Store) adjustAccountCount(accountID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.adAccounts {
		if s.adAccounts[i].ID == accountID {
			s.adAccounts[i].CampaignCount = max(0, s.adAccounts[i].CampaignCount+delta)
		}
	}
}

func (s *Store) adSetOwner(adSetID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.campaigns {
		for _, as := range c.AdSets {
			if as.ID == adSetID {
				return c.ID, true
			}
		}
	}
	return "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
