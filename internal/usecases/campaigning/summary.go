package campaigning

import (
	"slices"
	"strings"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

type Summary struct {
	TotalAccounts   int      `json:"totalAccounts"`
	ActiveAccounts  int      `json:"activeAccounts"`
	TotalCampaigns  int      `json:"totalCampaigns"`
	ActiveCampaigns int      `json:"activeCampaigns"`
	TotalAdSets     int      `json:"totalAdSets"`
	Currencies      []string `json:"currencies"`
}

type AccountWithStats struct {
	AccountInfo
	Campaigns       []CampaignWithAdSets `json:"campaigns"`
	ActiveCampaigns int                  `json:"activeCampaigns"`
	PausedCampaigns int                  `json:"pausedCampaigns"`
	TotalAdSets     int                  `json:"totalAdSets"`
	ActiveAdSets    int                  `json:"activeAdSets"`
}

func Summarize(accounts []AccountInfo, campaigns []CampaignWithAdSets) Summary {
	summary := Summary{TotalAccounts: len(accounts), Currencies: []string{}}

	seen := make(map[string]bool)
	for _, acc := range accounts {
		if acc.IsActive {
			summary.ActiveAccounts++
		}
		if acc.Currency != "" && !seen[acc.Currency] {
			seen[acc.Currency] = true
			summary.Currencies = append(summary.Currencies, acc.Currency)
		}
	}

	for _, c := range campaigns {
		if c.AdAccountID == "" {
			continue
		}
		summary.TotalCampaigns++
		if c.Status == backenddomain.StatusActive {
			summary.ActiveCampaigns++
		}
		summary.TotalAdSets += len(c.AdSets)
	}

	return summary
}

func EnrichAccounts(accounts []AccountInfo, campaigns []CampaignWithAdSets) []AccountWithStats {
	out := make([]AccountWithStats, 0, len(accounts))
	for _, acc := range accounts {
		stats := AccountWithStats{AccountInfo: acc, Campaigns: []CampaignWithAdSets{}}
		for _, c := range campaigns {
			if c.AdAccountID != acc.ID {
				continue
			}
			stats.Campaigns = append(stats.Campaigns, c)
			switch c.Status {
			case backenddomain.StatusActive:
				stats.ActiveCampaigns++
			case backenddomain.StatusPaused:
				stats.PausedCampaigns++
			}
			stats.TotalAdSets += len(c.AdSets)
			for _, as := range c.AdSets {
				if as.Status == backenddomain.StatusActive {
					stats.ActiveAdSets++
				}
			}
		}
		out = append(out, stats)
	}
	return out
}

// SortByPreference ordena: ativas primeiro, mais campanhas, depois nome
func SortByPreference(accounts []AccountWithStats) []AccountWithStats {
	out := slices.Clone(accounts)
	slices.SortStableFunc(out, func(a, b AccountWithStats) int {
		if a.IsActive != b.IsActive {
			if a.IsActive {
				return -1
			}
			return 1
		}
		if len(a.Campaigns) != len(b.Campaigns) {
			return len(b.Campaigns) - len(a.Campaigns)
		}
		return strings.Compare(strings.ToLower(displayKey(a.AccountInfo)), strings.ToLower(displayKey(b.AccountInfo)))
	})
	return out
}

func displayKey(a AccountInfo) string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// DisplayName formata "Nome (MOEDA)"
func DisplayName(a AccountInfo) string {
	name := accountName(a.Name, a.ID)
	if a.Currency != "" {
		return name + " (" + a.Currency + ")"
	}
	return name
}

// DefaultAccountID prefere a primeira conta ativa
func DefaultAccountID(accounts []AccountInfo) string {
	for _, acc := range accounts {
		if acc.IsActive {
			return acc.ID
		}
	}
	if len(accounts) > 0 {
		return accounts[0].ID
	}
	return ""
}

// FilterCampaigns busca o termo no nome, conta, id e tipo da campanha
func FilterCampaigns(campaigns []CampaignWithAdSets, term string) []CampaignWithAdSets {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return campaigns
	}

	out := make([]CampaignWithAdSets, 0)
	for _, c := range campaigns {
		if strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.AdAccountName), term) ||
			strings.Contains(strings.ToLower(c.ID), term) ||
			strings.Contains(strings.ToLower(c.Type), term) {
			out = append(out, c)
		}
	}
	return out
}

func GroupByAccount(campaigns []CampaignWithAdSets) map[string][]CampaignWithAdSets {
	grouped := make(map[string][]CampaignWithAdSets)
	for _, c := range campaigns {
		key := c.AdAccountID
		if key == "" {
			key = "unknown"
		}
		grouped[key] = append(grouped[key], c)
	}
	return grouped
}

func (s *Store) Summary() Summary {
	return Summarize(s.AvailableAccounts(), s.Campaigns())
}

func (s *Store) AccountsWithStats() []AccountWithStats {
	return SortByPreference(EnrichAccounts(s.AvailableAccounts(), s.Campaigns()))
}
