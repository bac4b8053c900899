package campaigning

import (
	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

// As views abaixo limitam snapshot e restauração à entidade alterada, para que
// o rollback de uma campanha não desfaça mutações concorrentes de outra.

type campaignSnapshot struct {
	campaign     *CampaignWithAdSets
	index        int
	accountCount int
	hasAccount   bool
}

type campaignView struct {
	s         *Store
	id        string
	accountID string
}

func (v campaignView) Snapshot() campaignSnapshot {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	snap := campaignSnapshot{index: len(v.s.campaigns)}
	for i, c := range v.s.campaigns {
		if c.ID == v.id {
			cp := c.clone()
			snap.campaign = &cp
			snap.index = i
			break
		}
	}

	for _, acc := range v.s.adAccounts {
		if acc.ID == v.accountID {
			snap.accountCount = acc.CampaignCount
			snap.hasAccount = true
			break
		}
	}

	return snap
}

func (v campaignView) Restore(snap campaignSnapshot) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	campaigns := make([]CampaignWithAdSets, 0, len(v.s.campaigns)+1)
	for _, c := range v.s.campaigns {
		if c.ID != v.id {
			campaigns = append(campaigns, c)
		}
	}

	if snap.campaign != nil {
		idx := min(snap.index, len(campaigns))
		campaigns = append(campaigns[:idx], append([]CampaignWithAdSets{snap.campaign.clone()}, campaigns[idx:]...)...)
	}
	v.s.campaigns = campaigns

	if snap.hasAccount {
		for i := range v.s.adAccounts {
			if v.s.adAccounts[i].ID == v.accountID {
				v.s.adAccounts[i].CampaignCount = snap.accountCount
			}
		}
	}
}

type adSetSnapshot struct {
	adSet *backenddomain.AdSet
	index int
	// nilList preserva a distinção entre lista nula e vazia na restauração
	nilList bool
}

type adSetView struct {
	s          *Store
	campaignID string
	adSetID    string
}

func (v adSetView) Snapshot() adSetSnapshot {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	for _, c := range v.s.campaigns {
		if c.ID != v.campaignID {
			continue
		}
		snap := adSetSnapshot{index: len(c.AdSets), nilList: c.AdSets == nil}
		for i, as := range c.AdSets {
			if as.ID == v.adSetID {
				cp := cloneAdSet(as)
				snap.adSet = &cp
				snap.index = i
				break
			}
		}
		return snap
	}
	return adSetSnapshot{}
}

func (v adSetView) Restore(snap adSetSnapshot) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	for i := range v.s.campaigns {
		if v.s.campaigns[i].ID != v.campaignID {
			continue
		}

		adSets := make([]backenddomain.AdSet, 0, len(v.s.campaigns[i].AdSets)+1)
		for _, as := range v.s.campaigns[i].AdSets {
			if as.ID != v.adSetID {
				adSets = append(adSets, as)
			}
		}
		if snap.adSet != nil {
			idx := min(snap.index, len(adSets))
			adSets = append(adSets[:idx], append([]backenddomain.AdSet{cloneAdSet(*snap.adSet)}, adSets[idx:]...)...)
		}
		if len(adSets) == 0 && snap.nilList {
			adSets = nil
		}
		v.s.campaigns[i].AdSets = adSets
		return
	}
}

type googleSnapshot struct {
	campaign *backenddomain.GoogleCampaign
	index    int
}

type googleView struct {
	s          *Store
	customerID string
	campaignID string
}

func (v googleView) Snapshot() googleSnapshot {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()

	list := v.s.googleCampaigns[v.customerID]
	for i, c := range list {
		if c.ID == v.campaignID {
			cp := c
			return googleSnapshot{campaign: &cp, index: i}
		}
	}
	return googleSnapshot{index: len(list)}
}

func (v googleView) Restore(snap googleSnapshot) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	list := v.s.googleCampaigns[v.customerID]
	out := make([]backenddomain.GoogleCampaign, 0, len(list)+1)
	for _, c := range list {
		if c.ID != v.campaignID {
			out = append(out, c)
		}
	}
	if snap.campaign != nil {
		idx := min(snap.index, len(out))
		out = append(out[:idx], append([]backenddomain.GoogleCampaign{*snap.campaign}, out[idx:]...)...)
	}
	v.s.googleCampaigns[v.customerID] = out
}
