package handler

import (
	"net/http"

	"github.com/vfg2006/weathertrigger-console/internal/api/handler/router"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/authenticating"
)

// Rotas liberadas sem sessão; a de callback do OAuth é acrescentada pelo servidor
const (
	PathHealthcheck = "/healthcheck"
	PathLogin       = "/v1/auth/login"
	PathRegister    = "/v1/auth/register"
	PathProfile     = "/v1/auth/profile"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    PathHealthcheck,
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    PathLogin,
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    PathRegister,
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/auth/logout",
			Method:  http.MethodPost,
			Handler: Logout(service),
		},
		{
			Path:    PathProfile,
			Method:  http.MethodGet,
			Handler: GetProfile(service),
		},
	}
}

func Meta(service MetaService, opener *PopupOpener, callbackPath string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meta/status",
			Method:  http.MethodGet,
			Handler: GetMetaStatus(service),
		},
		{
			Path:    "/v1/meta/connect",
			Method:  http.MethodPost,
			Handler: ConnectMeta(service, opener),
		},
		{
			Path:    "/v1/meta/connect/cancel",
			Method:  http.MethodPost,
			Handler: CancelMetaConnect(service, opener),
		},
		{
			Path:    "/v1/meta/refresh",
			Method:  http.MethodPost,
			Handler: RefreshMeta(service),
		},
		{
			Path:    "/v1/meta/accounts/:id/select",
			Method:  http.MethodPost,
			Handler: SelectMetaAccount(service),
		},
		{
			Path:    "/v1/meta/activate",
			Method:  http.MethodPost,
			Handler: ActivateMetaAccounts(service),
		},
		{
			Path:    "/v1/meta/account",
			Method:  http.MethodDelete,
			Handler: DisconnectMeta(service),
		},
		{
			Path:    callbackPath,
			Method:  http.MethodGet,
			Handler: MetaCallback(service, opener),
		},
	}
}

func Campaigns(service CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodPost,
			Handler: CreateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodPut,
			Handler: UpdateCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCampaign(service),
		},
		{
			Path:    "/v1/campaigns/:id/status",
			Method:  http.MethodPost,
			Handler: UpdateCampaignStatus(service),
		},
		{
			Path:    "/v1/campaigns/:id/adsets",
			Method:  http.MethodGet,
			Handler: ListAdSets(service),
		},
		{
			Path:    "/v1/campaigns/:id/adsets",
			Method:  http.MethodPost,
			Handler: CreateAdSet(service),
		},
		{
			Path:    "/v1/adsets/:id/status",
			Method:  http.MethodPost,
			Handler: UpdateAdSetStatus(service),
		},
		{
			Path:    "/v1/adsets/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAdSet(service),
		},
		{
			Path:    "/v1/google/campaigns/:customerId",
			Method:  http.MethodGet,
			Handler: ListGoogleCampaigns(service),
		},
		{
			Path:    "/v1/google/campaigns/:customerId/:id/status",
			Method:  http.MethodPost,
			Handler: UpdateGoogleCampaignStatus(service),
		},
	}
}

func AdAccounts(service CampaignService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AdAccountList(service),
		},
		{
			Path:    "/v1/accounts/selected",
			Method:  http.MethodPut,
			Handler: SelectAdAccount(service),
		},
		{
			Path:    "/v1/reports/summary",
			Method:  http.MethodGet,
			Handler: GetReportSummary(service),
		},
	}
}

func Rules(service AutomationService, wizard RuleWizard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rules",
			Method:  http.MethodGet,
			Handler: ListRules(service),
		},
		{
			Path:    "/v1/rules",
			Method:  http.MethodPost,
			Handler: CreateRule(service),
		},
		{
			Path:    "/v1/rules/:id",
			Method:  http.MethodGet,
			Handler: GetRule(service),
		},
		{
			Path:    "/v1/rules/:id",
			Method:  http.MethodPut,
			Handler: UpdateRule(service),
		},
		{
			Path:    "/v1/rules/:id",
			Method:  http.MethodDelete,
			Handler: DeleteRule(service),
		},
		{
			Path:    "/v1/rules/:id/toggle",
			Method:  http.MethodPost,
			Handler: ToggleRule(service),
		},
		{
			Path:    "/v1/rule-draft",
			Method:  http.MethodGet,
			Handler: GetRuleDraft(wizard),
		},
		{
			Path:    "/v1/rule-draft",
			Method:  http.MethodPut,
			Handler: ReplaceRuleDraft(wizard),
		},
		{
			Path:    "/v1/rule-draft",
			Method:  http.MethodDelete,
			Handler: ResetRuleDraft(wizard),
		},
		{
			Path:    "/v1/rule-draft/submit",
			Method:  http.MethodPost,
			Handler: SubmitRuleDraft(wizard),
		},
		{
			Path:    "/v1/automation/executions",
			Method:  http.MethodGet,
			Handler: RecentExecutions(service),
		},
		{
			Path:    "/v1/automation/stats",
			Method:  http.MethodGet,
			Handler: EngineStats(service),
		},
		{
			Path:    "/v1/weather/city",
			Method:  http.MethodGet,
			Handler: WeatherByCity(service),
		},
		{
			Path:    "/v1/weather/current",
			Method:  http.MethodGet,
			Handler: WeatherByCoordinates(service),
		},
	}
}

func Notification(service Notifications) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/notifications",
			Method:  http.MethodGet,
			Handler: ListNotifications(service),
		},
		{
			Path:    "/v1/notifications/:id",
			Method:  http.MethodDelete,
			Handler: DismissNotification(service),
		},
	}
}

func UserPreferences(prefs Preferences) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/preferences/theme",
			Method:  http.MethodGet,
			Handler: GetTheme(prefs),
		},
		{
			Path:    "/v1/preferences/theme",
			Method:  http.MethodPut,
			Handler: SetTheme(prefs),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
