package drafting

import (
	"context"
	"slices"
	"strings"
	"sync"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
)

const (
	platformMeta     = "meta"
	targetTypeAdSet  = "ad_set"
	untitledRuleName = "Untitled Automation"
)

// Wizard guarda o rascunho da regra de clima entre os passos do assistente
type Wizard struct {
	rules    Rules
	accounts Accounts
	notifier Notifier
	logger   log.Logger

	mu         sync.RWMutex
	draft      Draft
	submitting bool
}

func NewWizard(rules Rules, accounts Accounts, notifier Notifier, logger log.Logger) *Wizard {
	return &Wizard{
		rules:    rules,
		accounts: accounts,
		notifier: notifier,
		logger:   logger.WithField("component", "drafting"),
		draft:    initialDraft(),
	}
}

func (w *Wizard) Draft() Draft {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return copyDraft(w.draft)
}

func (w *Wizard) update(fn func(d *Draft)) {
	w.mu.Lock()
	fn(&w.draft)
	w.mu.Unlock()
}

func (w *Wizard) SetName(name string) {
	w.update(func(d *Draft) { d.Name = name })
}

func (w *Wizard) SetChannel(ch Channel) {
	w.update(func(d *Draft) { d.Channel = ch })
}

func (w *Wizard) SetLocationType(t LocationType) {
	w.update(func(d *Draft) { d.LocationType = t })
}

func (w *Wizard) SetSelectedAdSets(items []SelectedAdSet) {
	items = append([]SelectedAdSet{}, items...)
	w.update(func(d *Draft) { d.SelectedAdSets = items })
}

func (w *Wizard) SetLocation(loc *Location) {
	if loc != nil {
		copied := *loc
		loc = &copied
	}
	w.update(func(d *Draft) { d.Location = loc })
}

func (w *Wizard) SetConditions(conditions []Condition) {
	conditions = append([]Condition{}, conditions...)
	w.update(func(d *Draft) { d.Conditions = conditions })
}

func (w *Wizard) SetConditionLogic(logic *ConditionLogic) {
	w.update(func(d *Draft) {
		if logic == nil {
			d.ConditionLogic = nil
			return
		}
		d.ConditionLogic = copyDraft(Draft{ConditionLogic: logic}).ConditionLogic
	})
}

// SetCheckInterval aceita apenas os intervalos suportados pelo backend (720 ou 1440)
func (w *Wizard) SetCheckInterval(minutes int) error {
	if !validInterval(minutes) {
		return errInvalidInterval()
	}
	w.update(func(d *Draft) { d.CheckIntervalMinutes = minutes })
	return nil
}

// Replace troca o rascunho inteiro; intervalo zero volta ao padrão
func (w *Wizard) Replace(d Draft) error {
	if d.CheckIntervalMinutes == 0 {
		d.CheckIntervalMinutes = backenddomain.CheckIntervalHalfDay
	}
	if !validInterval(d.CheckIntervalMinutes) {
		return errInvalidInterval()
	}
	if d.LocationType == "" {
		d.LocationType = LocationSingle
	}
	if d.SelectedAdSets == nil {
		d.SelectedAdSets = []SelectedAdSet{}
	}
	if d.Conditions == nil {
		d.Conditions = []Condition{}
	}

	copied := copyDraft(d)
	w.update(func(cur *Draft) { *cur = copied })
	return nil
}

func (w *Wizard) Reset() {
	w.update(func(d *Draft) { *d = initialDraft() })
}

// CanSubmit informa se o rascunho tem tudo o que a regra exige
func (w *Wizard) CanSubmit() bool {
	_, err := Build(w.Draft(), nil)
	return err == nil
}

// Build valida o rascunho e monta o corpo de criação da regra. accountNames
// resolve o nome de cada conta; contas ausentes usam o próprio id.
func Build(d Draft, accountNames map[string]string) (backenddomain.CreateRuleRequest, error) {
	name := strings.TrimSpace(d.Name)
	switch {
	case name == "":
		return backenddomain.CreateRuleRequest{}, NewDraftError(ErrIncompleteDraft, "Automation name is required")
	case d.Channel == "":
		return backenddomain.CreateRuleRequest{}, NewDraftError(ErrIncompleteDraft, "Select a channel")
	case !channelEnabled(d.Channel):
		return backenddomain.CreateRuleRequest{}, NewDraftError(ErrInvalidDraft, "Channel not available: "+string(d.Channel))
	case len(d.SelectedAdSets) == 0:
		return backenddomain.CreateRuleRequest{}, NewDraftError(ErrIncompleteDraft, "Select at least one ad set")
	case d.Location == nil:
		return backenddomain.CreateRuleRequest{}, NewDraftError(ErrIncompleteDraft, "Choose a weather location")
	case len(d.Conditions) == 0:
		return backenddomain.CreateRuleRequest{}, NewDraftError(ErrIncompleteDraft, "Add at least one weather condition")
	}

	for _, c := range d.Conditions {
		if !validCondition(c) {
			return backenddomain.CreateRuleRequest{}, NewDraftError(ErrInvalidDraft, "Unsupported weather condition: "+c.Parameter+" "+c.Operator)
		}
	}

	if err := validateLogic(d.ConditionLogic); err != nil {
		return backenddomain.CreateRuleRequest{}, err
	}

	interval := d.CheckIntervalMinutes
	if interval == 0 {
		interval = backenddomain.CheckIntervalHalfDay
	}
	if !validInterval(interval) {
		return backenddomain.CreateRuleRequest{}, errInvalidInterval()
	}

	campaigns := make([]backenddomain.CreateRuleCampaign, 0, len(d.SelectedAdSets))
	for _, s := range d.SelectedAdSets {
		platform := s.Platform
		if platform == "" {
			platform = platformMeta
		}
		campaignName := s.CampaignName
		if campaignName == "" {
			campaignName = s.CampaignID
		}
		accountName := accountNames[s.AccountID]
		if accountName == "" {
			accountName = s.AccountID
		}

		campaigns = append(campaigns, backenddomain.CreateRuleCampaign{
			Platform:      platform,
			CampaignID:    s.CampaignID,
			CampaignName:  campaignName,
			AdAccountID:   s.AccountID,
			AdAccountName: accountName,
			Action:        backenddomain.ActionResume,
			AdSetID:       s.AdSetID,
			AdSetName:     s.AdSetName,
			TargetType:    targetTypeAdSet,
		})
	}

	d = copyDraft(d)

	return backenddomain.CreateRuleRequest{
		Name:                 name,
		Location:             backenddomain.RuleLocation(*d.Location),
		Conditions:           d.Conditions,
		ConditionLogic:       d.ConditionLogic,
		Campaigns:            campaigns,
		CheckIntervalMinutes: interval,
	}, nil
}

func validateLogic(logic *ConditionLogic) error {
	if logic == nil {
		return nil
	}
	if !slices.Contains(logicOps, logic.GlobalOperator) {
		return NewDraftError(ErrInvalidDraft, "Invalid condition operator: "+logic.GlobalOperator)
	}
	for _, g := range logic.Groups {
		if !slices.Contains(logicOps, g.Operator) {
			return NewDraftError(ErrInvalidDraft, "Invalid condition operator: "+g.Operator)
		}
		for _, c := range g.Conditions {
			if !validCondition(c) {
				return NewDraftError(ErrInvalidDraft, "Unsupported weather condition: "+c.Parameter+" "+c.Operator)
			}
		}
	}
	if tf := logic.TimeFrame; tf != nil && (tf.Days <= 0 || (tf.Action != "on" && tf.Action != "off")) {
		return NewDraftError(ErrInvalidDraft, "Invalid time frame")
	}
	return nil
}

// Submit cria a regra a partir do rascunho e limpa o assistente em caso de sucesso
func (w *Wizard) Submit(ctx context.Context) (*backenddomain.AutomationRule, error) {
	w.mu.Lock()
	if w.submitting {
		w.mu.Unlock()
		return nil, NewDraftError(ErrInvalidDraft, "Rule is already being created")
	}
	draft := copyDraft(w.draft)
	w.submitting = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.submitting = false
		w.mu.Unlock()
	}()

	// valida antes de consultar as contas no backend
	if _, err := Build(draft, nil); err != nil {
		return nil, err
	}

	req, err := Build(draft, w.accountNames(ctx))
	if err != nil {
		return nil, err
	}

	rule, err := w.rules.CreateRule(ctx, req)
	if err != nil {
		message := err.Error()
		if message == "" {
			message = "Failed to create rule"
		}
		w.notifier.Error("", message)
		return nil, err
	}

	w.notifier.Success("", "Automation rule created")
	w.logger.WithField("rule_id", rule.ID).Info("Regra criada pelo assistente")

	w.Reset()

	return rule, nil
}

// accountNames ignora falhas; sem nomes a regra usa os ids das contas
func (w *Wizard) accountNames(ctx context.Context) map[string]string {
	names := make(map[string]string)

	res, err := w.accounts.GetMetaAccount(ctx)
	if err != nil {
		w.logger.WithError(err).Warn("Não foi possível resolver nomes das contas")
		return names
	}
	if res == nil || res.Account == nil {
		return names
	}

	for _, a := range res.Account.AdAccounts {
		id := a.CanonicalID()
		name := a.Name
		if name == "" {
			name = a.AdAccountID
		}
		names[id] = name
	}
	return names
}

// DisplayName é o nome mostrado na revisão antes de o usuário escolher um
func (d Draft) DisplayName() string {
	if strings.TrimSpace(d.Name) == "" {
		return untitledRuleName
	}
	return d.Name
}
