package backenddomain

// AdAccount é uma conta de anúncios como devolvida pelo backend. O backend
// usa nomes diferentes para o id e para o flag de ativação dependendo da rota.
type AdAccount struct {
	ID            string `json:"id,omitempty"`
	AdAccountID   string `json:"ad_account_id,omitempty"`
	Name          string `json:"name,omitempty"`
	AccountStatus string `json:"account_status,omitempty"`
	Currency      string `json:"currency,omitempty"`
	TimezoneName  string `json:"timezone_name,omitempty"`
	IsActive      *bool  `json:"isActive,omitempty"`
	IsActiveSnake *bool  `json:"is_active,omitempty"`
	BusinessID    string `json:"business_id,omitempty"`
	BusinessName  string `json:"business_name,omitempty"`
}

// CanonicalID prefere ad_account_id e cai para id
func (a AdAccount) CanonicalID() string {
	if a.AdAccountID != "" {
		return a.AdAccountID
	}
	return a.ID
}

// Active unifica isActive e is_active; ausente significa inativa
func (a AdAccount) Active() bool {
	if a.IsActive != nil {
		return *a.IsActive
	}
	if a.IsActiveSnake != nil {
		return *a.IsActiveSnake
	}
	return false
}

type MetaAccount struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email,omitempty"`
	ConnectedAt string      `json:"connectedAt,omitempty"`
	AdAccounts  []AdAccount `json:"adAccounts,omitempty"`
}

type AccountStatusResponse struct {
	Connected bool         `json:"connected"`
	Expired   bool         `json:"expired,omitempty"`
	Message   string       `json:"message,omitempty"`
	Account   *MetaAccount `json:"account,omitempty"`
}

type AuthURLRequest struct {
	RedirectURI string `json:"redirectUri"`
}

type AuthURLResponse struct {
	AuthURL string `json:"authUrl"`
	State   string `json:"state"`
}

type AuthCallbackRequest struct {
	Code        string `json:"code"`
	State       string `json:"state"`
	RedirectURI string `json:"redirectUri"`
}

type AuthCallbackResponse struct {
	Message     string `json:"message"`
	AccountInfo struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		Email           string `json:"email,omitempty"`
		AdAccountsCount int    `json:"adAccountsCount"`
	} `json:"accountInfo"`
}

type ToggleAccountRequest struct {
	AdAccountID string `json:"adAccountId"`
	IsActive    bool   `json:"isActive"`
}

type ToggleAccountResponse struct {
	Message     string `json:"message"`
	AdAccountID string `json:"adAccountId"`
	IsActive    bool   `json:"isActive"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
