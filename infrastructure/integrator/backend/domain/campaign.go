package backenddomain

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusPaused   Status = "PAUSED"
	StatusArchived Status = "ARCHIVED"

	// status de campanhas do Google
	StatusEnabled Status = "ENABLED"
	StatusRemoved Status = "REMOVED"
)

type Action string

const (
	ActionPause  Action = "pause"
	ActionResume Action = "resume"
)

// StatusAfter devolve o status de uma campanha Meta após a ação
func (a Action) StatusAfter() Status {
	if a == ActionPause {
		return StatusPaused
	}
	return StatusActive
}

// GoogleStatusAfter devolve o status de uma campanha Google após a ação
func (a Action) GoogleStatusAfter() Status {
	if a == ActionPause {
		return StatusPaused
	}
	return StatusEnabled
}

func (a Action) Valid() bool {
	return a == ActionPause || a == ActionResume
}

type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type GeoLocations struct {
	Countries []string `json:"countries,omitempty"`
	Regions   []string `json:"regions,omitempty"`
	Cities    []string `json:"cities,omitempty"`
}

type Targeting struct {
	AgeMin          int           `json:"age_min,omitempty"`
	AgeMax          int           `json:"age_max,omitempty"`
	Genders         []int         `json:"genders,omitempty"`
	GeoLocations    *GeoLocations `json:"geo_locations,omitempty"`
	Interests       []NamedRef    `json:"interests,omitempty"`
	Behaviors       []NamedRef    `json:"behaviors,omitempty"`
	CustomAudiences []NamedRef    `json:"custom_audiences,omitempty"`
}

type Campaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         Status `json:"status"`
	Objective      string `json:"objective"`
	DailyBudget    string `json:"daily_budget,omitempty"`
	LifetimeBudget string `json:"lifetime_budget,omitempty"`
	StartTime      string `json:"start_time,omitempty"`
	StopTime       string `json:"stop_time,omitempty"`
	CreatedTime    string `json:"created_time,omitempty"`
	UpdatedTime    string `json:"updated_time,omitempty"`
}

type AdSet struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	CampaignID       string     `json:"campaign_id"`
	Status           Status     `json:"status"`
	DailyBudget      string     `json:"daily_budget,omitempty"`
	LifetimeBudget   string     `json:"lifetime_budget,omitempty"`
	StartTime        string     `json:"start_time,omitempty"`
	EndTime          string     `json:"end_time,omitempty"`
	Targeting        *Targeting `json:"targeting,omitempty"`
	BillingEvent     string     `json:"billing_event,omitempty"`
	OptimizationGoal string     `json:"optimization_goal,omitempty"`
	CreatedTime      string     `json:"created_time,omitempty"`
	UpdatedTime      string     `json:"updated_time,omitempty"`
}

type GoogleCampaign struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      Status `json:"status"`
	Type        string `json:"type"`
	Budget      string `json:"budget,omitempty"`
	CreatedTime string `json:"created_time,omitempty"`
	UpdatedTime string `json:"updated_time,omitempty"`
}

type CampaignsResponse struct {
	Campaigns []Campaign `json:"campaigns"`
}

type GoogleCampaignsResponse struct {
	Campaigns []GoogleCampaign `json:"campaigns"`
}

type CreateCampaignRequest struct {
	AdAccountID    string `json:"adAccountId"`
	Name           string `json:"name"`
	Objective      string `json:"objective"`
	Status         Status `json:"status,omitempty"`
	DailyBudget    string `json:"daily_budget,omitempty"`
	LifetimeBudget string `json:"lifetime_budget,omitempty"`
	StartTime      string `json:"start_time,omitempty"`
	StopTime       string `json:"stop_time,omitempty"`
}

type CreateCampaignResponse struct {
	ID       string    `json:"id"`
	Campaign *Campaign `json:"campaign,omitempty"`
}

type UpdateCampaignRequest struct {
	Name      string `json:"name,omitempty"`
	Status    Status `json:"status,omitempty"`
	Objective string `json:"objective,omitempty"`
}

type CampaignActionRequest struct {
	CampaignID string `json:"campaignId"`
	Action     Action `json:"action"`
}

type AdSetActionRequest struct {
	AdSetID string `json:"adSetId"`
	Action  Action `json:"action"`
}

type ActionResponse struct {
	Message    string `json:"message"`
	CampaignID string `json:"campaignId,omitempty"`
	AdSetID    string `json:"adSetId,omitempty"`
	NewStatus  Status `json:"newStatus,omitempty"`
}

type AdSetsResponse struct {
	AdSets []AdSet `json:"adSets"`
}

type AdSetResponse struct {
	AdSet AdSet `json:"adset"`
}

type CreateAdSetRequest struct {
	AdAccountID      string    `json:"adAccountId"`
	CampaignID       string    `json:"campaignId"`
	Name             string    `json:"name"`
	DailyBudget      string    `json:"daily_budget,omitempty"`
	LifetimeBudget   string    `json:"lifetime_budget,omitempty"`
	StartTime        string    `json:"start_time,omitempty"`
	EndTime          string    `json:"end_time,omitempty"`
	Status           Status    `json:"status,omitempty"`
	Targeting        Targeting `json:"targeting"`
	BillingEvent     string    `json:"billing_event,omitempty"`
	OptimizationGoal string    `json:"optimization_goal,omitempty"`
}

type CreateAdSetResponse struct {
	ID string `json:"id"`
}
