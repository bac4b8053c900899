package backenddomain

const (
	CheckIntervalHalfDay = 720
	CheckIntervalDaily   = 1440
)

type RuleCampaign struct {
	ID         string `json:"id,omitempty"`
	Platform   string `json:"platform,omitempty"`
	TargetType string `json:"target_type"`
	AdSetID    string `json:"ad_set_id,omitempty"`
	CampaignID string `json:"campaign_id,omitempty"`
	AccountID  string `json:"account_id,omitempty"`
}

type RuleLocation struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

type WeatherCondition struct {
	Parameter string  `json:"parameter"`
	Operator  string  `json:"operator"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
}

type ConditionGroup struct {
	ID         string             `json:"id,omitempty"`
	Operator   string             `json:"operator"`
	Conditions []WeatherCondition `json:"conditions"`
}

type TimeFrame struct {
	Days   int    `json:"days"`
	Action string `json:"action"`
}

type ConditionLogic struct {
	Groups         []ConditionGroup `json:"groups"`
	GlobalOperator string           `json:"globalOperator"`
	TimeFrame      *TimeFrame       `json:"timeFrame,omitempty"`
}

type AutomationRule struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	IsActive             bool               `json:"is_active"`
	Campaigns            []RuleCampaign     `json:"campaigns,omitempty"`
	CreatedAt            string             `json:"created_at,omitempty"`
	Description          string             `json:"description,omitempty"`
	Location             *RuleLocation      `json:"location,omitempty"`
	Conditions           []WeatherCondition `json:"conditions,omitempty"`
	CheckIntervalMinutes int                `json:"check_interval_minutes,omitempty"`
	LastCheckedAt        string             `json:"last_checked_at,omitempty"`
	LastExecutedAt       string             `json:"last_executed_at,omitempty"`
	UpdatedAt            string             `json:"updated_at,omitempty"`
}

type RulesResponse struct {
	Rules []AutomationRule `json:"rules"`
	Total int              `json:"total"`
}

type RuleResponse struct {
	Rule AutomationRule `json:"rule"`
}

type CreateRuleCampaign struct {
	Platform      string `json:"platform"`
	CampaignID    string `json:"campaign_id"`
	CampaignName  string `json:"campaign_name"`
	AdAccountID   string `json:"ad_account_id"`
	AdAccountName string `json:"ad_account_name"`
	Action        Action `json:"action"`
	AdSetID       string `json:"ad_set_id"`
	AdSetName     string `json:"ad_set_name"`
	TargetType    string `json:"target_type"`
}

type CreateRuleRequest struct {
	Name                 string               `json:"name"`
	Description          string               `json:"description,omitempty"`
	Location             RuleLocation         `json:"location"`
	Conditions           []WeatherCondition   `json:"conditions"`
	ConditionLogic       *ConditionLogic      `json:"conditionLogic,omitempty"`
	Campaigns            []CreateRuleCampaign `json:"campaigns"`
	CheckIntervalMinutes int                  `json:"check_interval_minutes"`
}

type UpdateRuleRequest struct {
	Name                 *string `json:"name,omitempty"`
	Description          *string `json:"description,omitempty"`
	IsActive             *bool   `json:"is_active,omitempty"`
	CheckIntervalMinutes *int    `json:"check_interval_minutes,omitempty"`
}

type Execution struct {
	ID         string `json:"id"`
	RuleID     string `json:"rule_id"`
	ExecutedAt string `json:"executed_at"`
	Status     string `json:"status"`
	Result     any    `json:"result,omitempty"`
	Error      string `json:"error,omitempty"`
}

type ExecutionsResponse struct {
	Executions []Execution `json:"executions"`
	Total      int         `json:"total"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

type Worker struct {
	WorkerID      string `json:"worker_id"`
	Status        string `json:"status"`
	CurrentJobs   int    `json:"current_jobs"`
	JobsProcessed int    `json:"jobs_processed"`
	JobsSucceeded int    `json:"jobs_succeeded"`
	JobsFailed    int    `json:"jobs_failed"`
	LastHeartbeat string `json:"last_heartbeat"`
}

type EngineStats struct {
	Jobs       map[string]any `json:"jobs"`
	RateLimits map[string]any `json:"rateLimits"`
	Timestamp  string         `json:"timestamp"`
	Workers    []Worker       `json:"workers,omitempty"`
}
