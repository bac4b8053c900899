package campaigning

import (
	"strings"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

const (
	PlatformMeta   = "meta"
	PlatformGoogle = "google"

	channelFacebook = "Facebook"
	defaultCurrency = "USD"
)

// CampaignWithAdSets é a campanha do backend enriquecida com o contexto da conta
type CampaignWithAdSets struct {
	backenddomain.Campaign
	AdSets        []backenddomain.AdSet `json:"adSets,omitempty"`
	Platform      string                `json:"platform"`
	Channel       string                `json:"channel"`
	Type          string                `json:"type"`
	AdAccountID   string                `json:"adAccountId,omitempty"`
	AdAccountName string                `json:"adAccountName,omitempty"`
	Currency      string                `json:"currency,omitempty"`
}

type AccountInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	Currency      string `json:"currency,omitempty"`
	IsActive      bool   `json:"isActive"`
	CampaignCount int    `json:"campaignCount"`
}

// ActionState é o estado da última ação sobre uma entidade
type ActionState struct {
	IsLoading  bool   `json:"isLoading"`
	Error      string `json:"error,omitempty"`
	LastAction string `json:"lastAction,omitempty"`
}

type CampaignForm struct {
	Name      string `json:"name"`
	Objective string `json:"objective"`
}

// AdSetForm recebe o orçamento diário em unidades da moeda (ex.: "12.50")
type AdSetForm struct {
	Name        string                   `json:"name"`
	DailyBudget string                   `json:"daily_budget"`
	Targeting   *backenddomain.Targeting `json:"targeting,omitempty"`
}

func (c CampaignWithAdSets) clone() CampaignWithAdSets {
	out := c
	if c.AdSets != nil {
		out.AdSets = make([]backenddomain.AdSet, len(c.AdSets))
		for i, as := range c.AdSets {
			out.AdSets[i] = cloneAdSet(as)
		}
	}
	return out
}

func cloneAdSet(as backenddomain.AdSet) backenddomain.AdSet {
	out := as
	out.Targeting = cloneTargeting(as.Targeting)
	return out
}

func cloneTargeting(t *backenddomain.Targeting) *backenddomain.Targeting {
	if t == nil {
		return nil
	}
	out := *t
	out.Genders = append([]int(nil), t.Genders...)
	out.Interests = append([]backenddomain.NamedRef(nil), t.Interests...)
	out.Behaviors = append([]backenddomain.NamedRef(nil), t.Behaviors...)
	out.CustomAudiences = append([]backenddomain.NamedRef(nil), t.CustomAudiences...)
	if t.GeoLocations != nil {
		geo := *t.GeoLocations
		geo.Countries = append([]string(nil), t.GeoLocations.Countries...)
		geo.Regions = append([]string(nil), t.GeoLocations.Regions...)
		geo.Cities = append([]string(nil), t.GeoLocations.Cities...)
		out.GeoLocations = &geo
	}
	return &out
}

func cloneCampaigns(in []CampaignWithAdSets) []CampaignWithAdSets {
	out := make([]CampaignWithAdSets, len(in))
	for i, c := range in {
		out[i] = c.clone()
	}
	return out
}

// AdTypeFromObjective traduz o objetivo do Meta no rótulo exibido
func AdTypeFromObjective(objective string) string {
	switch strings.ToUpper(objective) {
	case "OUTCOME_SALES", "OUTCOME_CONVERSIONS", "CONVERSIONS":
		return "Conversion Ad"
	case "OUTCOME_TRAFFIC", "LINK_CLICKS", "TRAFFIC":
		return "Traffic Ad"
	case "OUTCOME_ENGAGEMENT":
		return "Engagement Ad"
	case "OUTCOME_AWARENESS", "BRAND_AWARENESS":
		return "Brand Awareness"
	case "OUTCOME_LEADS", "LEAD_GENERATION":
		return "Lead Generation"
	case "OUTCOME_APP_PROMOTION":
		return "App Promotion"
	case "VIDEO_VIEWS":
		return "Video Ad"
	case "REACH":
		return "Reach Ad"
	default:
		return "Campaign Ad"
	}
}

func accountName(name, id string) string {
	if name != "" {
		return name
	}
	return "Account " + id
}

func currencyOrDefault(currency string) string {
	if currency != "" {
		return currency
	}
	return defaultCurrency
}

func withContext(c backenddomain.Campaign, accountID, name, currency string) CampaignWithAdSets {
	return CampaignWithAdSets{
		Campaign:      c,
		Platform:      PlatformMeta,
		Channel:       channelFacebook,
		Type:          AdTypeFromObjective(c.Objective),
		AdAccountID:   accountID,
		AdAccountName: accountName(name, accountID),
		Currency:      currencyOrDefault(currency),
	}
}
