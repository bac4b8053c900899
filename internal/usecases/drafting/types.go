package drafting

import (
	"slices"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

type Channel string

const (
	ChannelFacebook  Channel = "facebook"
	ChannelGoogleAds Channel = "google_ads"
)

// ChannelConfig descreve um canal oferecido no primeiro passo do assistente
type ChannelConfig struct {
	ID      Channel `json:"id"`
	Label   string  `json:"label"`
	Enabled bool    `json:"enabled"`
}

// Channels lista os canais na ordem exibida; Google Ads ainda não executa regras
var Channels = []ChannelConfig{
	{ID: ChannelFacebook, Label: "Facebook & Instagram", Enabled: true},
	{ID: ChannelGoogleAds, Label: "Google Ads", Enabled: false},
}

type LocationType string

const (
	LocationSingle LocationType = "single"
	LocationMulti  LocationType = "multi"
)

type SelectedAdSet struct {
	Platform     string `json:"platform"`
	AdSetID      string `json:"adSetId"`
	AdSetName    string `json:"adSetName"`
	CampaignID   string `json:"campaignId"`
	CampaignName string `json:"campaignName,omitempty"`
	// AccountID é a conta de anúncios do Meta ou o customer id do Google
	AccountID string `json:"accountId,omitempty"`
}

type Location struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

var (
	parameters = []string{"temperature", "humidity", "wind_speed", "precipitation", "visibility", "cloud_cover"}
	operators  = []string{"greater_than", "less_than", "equals", "between"}
	logicOps   = []string{"AND", "OR"}
)

type Condition = backenddomain.WeatherCondition

type ConditionGroup = backenddomain.ConditionGroup

type ConditionLogic = backenddomain.ConditionLogic

// Draft é a regra em construção; campos opcionais ficam nil até o passo correspondente
type Draft struct {
	Name                 string          `json:"name"`
	Channel              Channel         `json:"channel,omitempty"`
	LocationType         LocationType    `json:"locationType"`
	SelectedAdSets       []SelectedAdSet `json:"selectedAdSets"`
	Location             *Location       `json:"location,omitempty"`
	Conditions           []Condition     `json:"conditions"`
	ConditionLogic       *ConditionLogic `json:"conditionLogic,omitempty"`
	CheckIntervalMinutes int             `json:"checkIntervalMinutes"`
}

func initialDraft() Draft {
	return Draft{
		LocationType:         LocationSingle,
		SelectedAdSets:       []SelectedAdSet{},
		Conditions:           []Condition{},
		CheckIntervalMinutes: backenddomain.CheckIntervalHalfDay,
	}
}

func copyDraft(d Draft) Draft {
	out := d
	out.SelectedAdSets = slices.Clone(d.SelectedAdSets)
	out.Conditions = slices.Clone(d.Conditions)
	if d.Location != nil {
		loc := *d.Location
		out.Location = &loc
	}
	if d.ConditionLogic != nil {
		logic := *d.ConditionLogic
		logic.Groups = make([]ConditionGroup, len(d.ConditionLogic.Groups))
		for i, g := range d.ConditionLogic.Groups {
			g.Conditions = slices.Clone(g.Conditions)
			logic.Groups[i] = g
		}
		if d.ConditionLogic.TimeFrame != nil {
			tf := *d.ConditionLogic.TimeFrame
			logic.TimeFrame = &tf
		}
		out.ConditionLogic = &logic
	}
	return out
}

func validInterval(minutes int) bool {
	return minutes == backenddomain.CheckIntervalHalfDay || minutes == backenddomain.CheckIntervalDaily
}

func channelEnabled(ch Channel) bool {
	for _, c := range Channels {
		if c.ID == ch {
			return c.Enabled
		}
	}
	return false
}

func validCondition(c Condition) bool {
	return slices.Contains(parameters, c.Parameter) && slices.Contains(operators, c.Operator)
}
