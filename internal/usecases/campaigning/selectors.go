package campaigning

import (
	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

// Campaigns devolve uma cópia de todas as campanhas carregadas
func (s *Store) Campaigns() []CampaignWithAdSets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCampaigns(s.campaigns)
}

func (s *Store) CampaignByID(id string) (CampaignWithAdSets, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.campaigns {
		if c.ID == id {
			return c.clone(), true
		}
	}
	return CampaignWithAdSets{}, false
}

func (s *Store) AdSetsByCampaign(campaignID string) []backenddomain.AdSet {
	c, ok := s.CampaignByID(campaignID)
	if !ok || c.AdSets == nil {
		return []backenddomain.AdSet{}
	}
	return c.AdSets
}

func (s *Store) CampaignsForAccount(adAccountID string) []CampaignWithAdSets {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CampaignWithAdSets, 0)
	for _, c := range s.campaigns {
		if c.AdAccountID == adAccountID {
			out = append(out, c.clone())
		}
	}
	return out
}

func (s *Store) AvailableAccounts() []AccountInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]AccountInfo(nil), s.adAccounts...)
}

// CurrentAccountInfo devolve a conta selecionada, se existir
func (s *Store) CurrentAccountInfo() (AccountInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, acc := range s.adAccounts {
		if acc.ID == s.selectedAccountID {
			return acc, true
		}
	}
	return AccountInfo{}, false
}

func (s *Store) SelectedAccountID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedAccountID
}

// SetSelectedAccount troca a conta usada como filtro; vazio limpa a seleção
func (s *Store) SetSelectedAccount(adAccountID string) {
	s.mu.Lock()
	s.selectedAccountID = adAccountID
	s.mu.Unlock()
}

func (s *Store) ActionState(id string) ActionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.actionStates[id]
	return ActionState{IsLoading: state.IsLoading, Error: state.Error}
}

func (s *Store) ClearActionError(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state, ok := s.actionStates[id]; ok {
		state.Error = ""
		s.actionStates[id] = state
	}
}

func (s *Store) IsAccountLoading(adAccountID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountsLoading[adAccountID]
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Store) ClearError() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

func (s *Store) MetaAccount() *backenddomain.MetaAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.metaAccount == nil {
		return nil
	}
	account := *s.metaAccount
	account.AdAccounts = append([]backenddomain.AdAccount(nil), s.metaAccount.AdAccounts...)
	return &account
}
