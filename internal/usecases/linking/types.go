package linking

import (
	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusLoading    Status = "loading"
	StatusConnecting Status = "connecting"
	StatusConnected  Status = "connected"
	StatusError      Status = "error"
)

// AdAccount é a conta de anúncios já normalizada: um único id e um único flag de ativação
type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	AccountStatus string `json:"account_status,omitempty"`
	Currency      string `json:"currency,omitempty"`
	TimezoneName  string `json:"timezone_name,omitempty"`
	BusinessID    string `json:"business_id,omitempty"`
	BusinessName  string `json:"business_name,omitempty"`
	IsActive      bool   `json:"isActive"`
}

type Account struct {
	ID          string      `json:"id"`
	Name        string      `json:"name,omitempty"`
	Email       string      `json:"email,omitempty"`
	ConnectedAt string      `json:"connectedAt,omitempty"`
	AdAccounts  []AdAccount `json:"adAccounts"`
}

// State é uma cópia do estado da integração
type State struct {
	Status        Status          `json:"status"`
	Connected     bool            `json:"connected"`
	Error         string          `json:"error,omitempty"`
	Account       *Account        `json:"account,omitempty"`
	AdAccounts    []AdAccount     `json:"adAccounts"`
	Selected      map[string]bool `json:"selected"`
	IsInitialized bool            `json:"isInitialized"`
	IsFetching    bool            `json:"isFetchingAccount"`
	TotalSelected int             `json:"totalSelected"`
}

type LoadOptions struct {
	Force             bool
	PreserveSelection bool
}

// normalizeAdAccounts descarta contas sem id; isActive ausente vale false
func normalizeAdAccounts(raw []backenddomain.AdAccount) []AdAccount {
	out := make([]AdAccount, 0, len(raw))
	for _, acc := range raw {
		id := acc.CanonicalID()
		if id == "" {
			continue
		}
		out = append(out, AdAccount{
			ID:            id,
			Name:          acc.Name,
			AccountStatus: acc.AccountStatus,
			Currency:      acc.Currency,
			TimezoneName:  acc.TimezoneName,
			BusinessID:    acc.BusinessID,
			BusinessName:  acc.BusinessName,
			IsActive:      acc.Active(),
		})
	}
	return out
}

func buildSelection(accounts []AdAccount, previous map[string]bool, preserve bool) map[string]bool {
	next := make(map[string]bool, len(accounts))
	for _, acc := range accounts {
		if preserve {
			if v, ok := previous[acc.ID]; ok {
				next[acc.ID] = v
				continue
			}
		}
		next[acc.ID] = acc.IsActive
	}
	return next
}

func toAccount(raw *backenddomain.MetaAccount, adAccounts []AdAccount) *Account {
	if raw == nil {
		return nil
	}
	return &Account{
		ID:          raw.ID,
		Name:        raw.Name,
		Email:       raw.Email,
		ConnectedAt: raw.ConnectedAt,
		AdAccounts:  append([]AdAccount(nil), adAccounts...),
	}
}

func copyAccount(a *Account) *Account {
	if a == nil {
		return nil
	}
	cp := *a
	cp.AdAccounts = append([]AdAccount(nil), a.AdAccounts...)
	return &cp
}

func copySelection(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
