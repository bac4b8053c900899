package campaigning

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"github.com/vfg2006/weathertrigger-console/pkg/requestcache"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type toast struct {
	kind    string
	title   string
	message string
}

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []toast
}

func (n *recordingNotifier) Success(title, message string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toast{"success", title, message})
	return "id"
}

func (n *recordingNotifier) Error(title, message string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, toast{"error", title, message})
	return "id"
}

func (n *recordingNotifier) all() []toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]toast(nil), n.toasts...)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	store    *Store
	backend  *mocks.MockBackend
	notifier *recordingNotifier
	clock    *fakeClock
	cache    *requestcache.Cache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	clock := &fakeClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	cache := requestcache.New(requestcache.DefaultTTL, requestcache.WithClock(clock.Now))
	backend := mocks.NewMockBackend(ctrl)
	notifier := &recordingNotifier{}

	store := NewStore(nil, backend, cache, notifier, log.Discard(), WithClock(clock.Now))

	return &fixture{store: store, backend: backend, notifier: notifier, clock: clock, cache: cache}
}

func boolPtr(b bool) *bool { return &b }

// seed coloca o store no estado de uma carga já concluída
func (f *fixture) seed(accounts []backenddomain.AdAccount, campaigns ...CampaignWithAdSets) {
	s := f.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metaAccount = &backenddomain.MetaAccount{ID: "meta-1", Name: "Ana", AdAccounts: accounts}
	s.adAccounts = nil
	for _, acc := range accounts {
		count := 0
		for _, c := range campaigns {
			if c.AdAccountID == acc.CanonicalID() {
				count++
			}
		}
		s.adAccounts = append(s.adAccounts, AccountInfo{
			ID:            acc.CanonicalID(),
			Name:          accountName(acc.Name, acc.CanonicalID()),
			Currency:      currencyOrDefault(acc.Currency),
			IsActive:      true,
			CampaignCount: count,
		})
	}
	if len(s.adAccounts) > 0 {
		s.selectedAccountID = s.adAccounts[0].ID
	}
	s.campaigns = cloneCampaigns(campaigns)
	s.initialized = true
	s.lastFetch = f.clock.Now()
}

func metaCampaign(id, accountID, currency string, status backenddomain.Status, adSets ...backenddomain.AdSet) CampaignWithAdSets {
	c := withContext(backenddomain.Campaign{
		ID:        id,
		Name:      "Campanha " + id,
		Status:    status,
		Objective: "OUTCOME_TRAFFIC",
	}, accountID, "Loja "+accountID, currency)
	c.AdSets = adSets
	return c
}

func TestStore_LoadCampaigns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.backend.EXPECT().GetMetaAccount(gomock.Any()).Return(&backenddomain.AccountStatusResponse{
		Connected: true,
		Account: &backenddomain.MetaAccount{
			ID: "meta-1",
			AdAccounts: []backenddomain.AdAccount{
				{AdAccountID: "act_1", Name: "Loja Centro", Currency: "BRL", IsActiveSnake: boolPtr(false)},
				{ID: "act_2"},
				{ID: "act_3", Name: "Quebrada"},
			},
		},
	}, nil).Times(1)
	f.backend.EXPECT().GetCampaigns(gomock.Any(), "act_1").Return([]backenddomain.Campaign{
		{ID: "c1", Name: "Chuva", Status: backenddomain.StatusActive, Objective: "OUTCOME_SALES"},
	}, nil)
	f.backend.EXPECT().GetCampaigns(gomock.Any(), "act_2").Return([]backenddomain.Campaign{
		{ID: "c2", Name: "Sol", Status: backenddomain.StatusPaused, Objective: "VIDEO_VIEWS"},
	}, nil)
	f.backend.EXPECT().GetCampaigns(gomock.Any(), "act_3").Return(nil, errors.New("rate limited"))

	require.NoError(t, f.store.LoadCampaigns(ctx))

	campaigns := f.store.Campaigns()
	require.Len(t, campaigns, 2)

	byID := map[string]CampaignWithAdSets{}
	for _, c := range campaigns {
		byID[c.ID] = c
	}

	assert.Equal(t, "act_1", byID["c1"].AdAccountID)
	assert.Equal(t, "Loja Centro", byID["c1"].AdAccountName)
	assert.Equal(t, "BRL", byID["c1"].Currency)
	assert.Equal(t, "Conversion Ad", byID["c1"].Type)
	assert.Equal(t, "Facebook", byID["c1"].Channel)

	assert.Equal(t, "Account act_2", byID["c2"].AdAccountName)
	assert.Equal(t, "USD", byID["c2"].Currency)
	assert.Equal(t, "Video Ad", byID["c2"].Type)

	accounts := f.store.AvailableAccounts()
	require.Len(t, accounts, 2, "conta com falha deve ser omitida")
	assert.False(t, accounts[0].IsActive)
	assert.True(t, accounts[1].IsActive, "conta sem flag conta como ativa")
	assert.Equal(t, "act_1", f.store.SelectedAccountID())
	assert.Empty(t, f.store.Error())
	assert.Empty(t, f.notifier.all())
}

func TestStore_LoadCampaigns_JanelaDeFrescor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	status := &backenddomain.AccountStatusResponse{
		Connected: true,
		Account:   &backenddomain.MetaAccount{AdAccounts: []backenddomain.AdAccount{{ID: "act_1"}}},
	}
	f.backend.EXPECT().GetMetaAccount(gomock.Any()).Return(status, nil).Times(2)
	f.backend.EXPECT().GetCampaigns(gomock.Any(), "act_1").Return([]backenddomain.Campaign{}, nil).Times(2)

	require.NoError(t, f.store.LoadCampaigns(ctx))

	f.clock.Advance(10 * time.Second)
	require.NoError(t, f.store.LoadCampaigns(ctx), "dentro da janela não deve buscar de novo")

	f.clock.Advance(25 * time.Second)
	require.NoError(t, f.store.LoadCampaigns(ctx))
}

func TestStore_LoadCampaigns_Concorrente(t *testing.T) {
	f := newFixture(t)

	release := make(chan struct{})
	var calls atomic.Int32
	f.backend.EXPECT().GetMetaAccount(gomock.Any()).DoAndReturn(func(context.Context) (*backenddomain.AccountStatusResponse, error) {
		calls.Add(1)
		<-release
		return &backenddomain.AccountStatusResponse{Connected: false}, nil
	}).Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.store.LoadCampaigns(context.Background()))
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestStore_LoadCampaigns_Desconectado(t *testing.T) {
	tests := []struct {
		name       string
		response   *backenddomain.AccountStatusResponse
		err        error
		wantErr    bool
		wantToasts []toast
	}{
		{
			name:     "Não conectado sem expiração fica vazio e silencioso",
			response: &backenddomain.AccountStatusResponse{Connected: false},
		},
		{
			name:     "Conexão expirada mostra toast",
			response: &backenddomain.AccountStatusResponse{Connected: false, Expired: true},
			wantToasts: []toast{
				{"error", "Connection Expired", "Your Meta connection has expired. Please reconnect to continue."},
			},
		},
		{
			name:    "Falha geral registra erro e mostra toast",
			err:     &backenddomain.APIError{Message: "Server exploded", Status: 500},
			wantErr: true,
			wantToasts: []toast{
				{"error", "Failed to Load Campaigns", "Server exploded"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.backend.EXPECT().GetMetaAccount(gomock.Any()).Return(tt.response, tt.err)

			err := f.store.LoadCampaigns(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "Server exploded", f.store.Error())
			} else {
				require.NoError(t, err)
			}

			assert.Empty(t, f.store.Campaigns())
			assert.Equal(t, tt.wantToasts, f.notifier.all())
		})
	}
}

func TestStore_UpdateCampaignStatus(t *testing.T) {
	accounts := []backenddomain.AdAccount{{ID: "act_1", Currency: "USD"}}

	t.Run("Falha do backend restaura o status original e mostra toast de erro", func(t *testing.T) {
		f := newFixture(t)
		f.seed(accounts,
			metaCampaign("c1", "act_1", "USD", backenddomain.StatusActive, backenddomain.AdSet{ID: "as1", Status: backenddomain.StatusActive}),
			metaCampaign("c2", "act_1", "USD", backenddomain.StatusPaused),
		)
		before := f.store.Campaigns()

		f.backend.EXPECT().CampaignAction(gomock.Any(), "c1", backenddomain.ActionPause).
			DoAndReturn(func(context.Context, string, backenddomain.Action) (*backenddomain.ActionResponse, error) {
				c, _ := f.store.CampaignByID("c1")
				assert.Equal(t, backenddomain.StatusPaused, c.Status, "status deve mudar antes da resposta")
				return nil, errors.New("boom")
			})

		err := f.store.UpdateCampaignStatus(context.Background(), "c1", backenddomain.ActionPause)
		require.Error(t, err)

		if diff := cmp.Diff(before, f.store.Campaigns()); diff != "" {
			t.Errorf("estado após rollback difere do snapshot (-antes +depois):\n%s", diff)
		}
		assert.Equal(t, ActionState{Error: "boom"}, f.store.ActionState("c1"))
		assert.Equal(t, []toast{{"error", "Pause Failed", "Failed to pause campaign: boom"}}, f.notifier.all())
	})

	t.Run("Sucesso mantém o novo status e invalida o cache", func(t *testing.T) {
		f := newFixture(t)
		f.seed(accounts, metaCampaign("c1", "act_1", "USD", backenddomain.StatusPaused))

		_, err := f.cache.Do(context.Background(), "campaigns-act_1", func(context.Context) (any, error) {
			return "stale", nil
		}, requestcache.Options{})
		require.NoError(t, err)

		f.backend.EXPECT().CampaignAction(gomock.Any(), "c1", backenddomain.ActionResume).
			Return(&backenddomain.ActionResponse{NewStatus: backenddomain.StatusActive}, nil)

		require.NoError(t, f.store.UpdateCampaignStatus(context.Background(), "c1", backenddomain.ActionResume))

		c, ok := f.store.CampaignByID("c1")
		require.True(t, ok)
		assert.Equal(t, backenddomain.StatusActive, c.Status)
		assert.False(t, f.store.ActionState("c1").IsLoading)
		assert.Equal(t, []toast{{"success", "Campaign Resumed", "Campaign resumed successfully"}}, f.notifier.all())
		assert.Equal(t, 0, f.cache.Stats().Total)
	})

	t.Run("Campanha desconhecida não chama o backend", func(t *testing.T) {
		f := newFixture(t)
		err := f.store.UpdateCampaignStatus(context.Background(), "nope", backenddomain.ActionPause)
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}

func TestStore_MutacoesNaMesmaEntidadeSaoSerializadas(t *testing.T) {
	f := newFixture(t)
	f.seed([]backenddomain.AdAccount{{ID: "act_1"}}, metaCampaign("c1", "act_1", "USD", backenddomain.StatusActive))

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	var inFlight, maxInFlight atomic.Int32

	f.backend.EXPECT().CampaignAction(gomock.Any(), "c1", gomock.Any()).
		DoAndReturn(func(context.Context, string, backenddomain.Action) (*backenddomain.ActionResponse, error) {
			n := inFlight.Add(1)
			if n > maxInFlight.Load() {
				maxInFlight.Store(n)
			}
			started <- struct{}{}
			<-release
			inFlight.Add(-1)
			return &backenddomain.ActionResponse{}, nil
		}).Times(2)

	var wg sync.WaitGroup
	for _, action := range []backenddomain.Action{backenddomain.ActionPause, backenddomain.ActionResume} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.store.UpdateCampaignStatus(context.Background(), "c1", action))
		}()
	}

	<-started
	select {
	case <-started:
		t.Fatal("segunda mutação começou antes da primeira terminar")
	case <-time.After(30 * time.Millisecond):
	}

	release <- struct{}{}
	<-started
	release <- struct{}{}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestStore_CreateAdSet_Validacao(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		form     AdSetForm
		wantErr  string
	}{
		{
			name:     "Orçamento abaixo do mínimo em USD",
			currency: "USD",
			form:     AdSetForm{Name: "Chuva SP", DailyBudget: "0.5"},
			wantErr:  "Daily budget must be at least 1 USD for your ad account.",
		},
		{
			name:     "Orçamento abaixo do mínimo em RUB",
			currency: "RUB",
			form:     AdSetForm{Name: "Снег", DailyBudget: "50"},
			wantErr:  "Daily budget must be at least 85 RUB for your ad account.",
		},
		{
			name:     "Orçamento zero",
			currency: "USD",
			form:     AdSetForm{Name: "Chuva SP", DailyBudget: "0"},
			wantErr:  "Daily budget must be greater than 0",
		},
		{
			name:     "Orçamento não numérico",
			currency: "EUR",
			form:     AdSetForm{Name: "Chuva SP", DailyBudget: "abc"},
			wantErr:  "Daily budget must be greater than 0",
		},
		{
			name:     "Orçamento acima do máximo",
			currency: "USD",
			form:     AdSetForm{Name: "Chuva SP", DailyBudget: "1e300"},
			wantErr:  "Daily budget is too large",
		},
		{
			name:     "Nome vazio",
			currency: "USD",
			form:     AdSetForm{Name: "   ", DailyBudget: "10"},
			wantErr:  "Ad set name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// nenhum EXPECT: qualquer chamada ao backend falha o teste
			f := newFixture(t)
			f.seed([]backenddomain.AdAccount{{ID: "act_1", Currency: tt.currency}},
				metaCampaign("c1", "act_1", tt.currency, backenddomain.StatusActive))
			before := f.store.Campaigns()

			_, err := f.store.CreateAdSet(context.Background(), "c1", tt.form)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.True(t, IsValidationError(err))

			assert.Empty(t, cmp.Diff(before, f.store.Campaigns()))
			assert.Empty(t, f.notifier.all())
		})
	}
}

func TestStore_CreateAdSet(t *testing.T) {
	f := newFixture(t)
	f.seed([]backenddomain.AdAccount{{AdAccountID: "act_1", ID: "123", Currency: "BRL"}},
		metaCampaign("c1", "act_1", "BRL", backenddomain.StatusActive))

	var sent backenddomain.CreateAdSetRequest
	f.backend.EXPECT().CreateAdSet(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req backenddomain.CreateAdSetRequest) (*backenddomain.CreateAdSetResponse, error) {
			sent = req
			adSets := f.store.AdSetsByCampaign("c1")
			require.Len(t, adSets, 1, "placeholder deve estar visível durante a chamada")
			assert.Contains(t, adSets[0].ID, "temp-adset-")
			return &backenddomain.CreateAdSetResponse{ID: "as-99"}, nil
		})

	adSet, err := f.store.CreateAdSet(context.Background(), "c1", AdSetForm{Name: " Chuva SP ", DailyBudget: "12.5"})
	require.NoError(t, err)

	assert.Equal(t, "act_1", sent.AdAccountID)
	assert.Equal(t, "Chuva SP", sent.Name)
	assert.Equal(t, "1250", sent.DailyBudget)
	assert.Equal(t, "IMPRESSIONS", sent.BillingEvent)
	assert.Equal(t, "REACH", sent.OptimizationGoal)
	assert.Equal(t, backenddomain.StatusPaused, sent.Status)
	assert.Equal(t, defaultTargeting(), sent.Targeting)

	assert.Equal(t, "as-99", adSet.ID)
	adSets := f.store.AdSetsByCampaign("c1")
	require.Len(t, adSets, 1)
	assert.Equal(t, "as-99", adSets[0].ID)
	assert.Equal(t, []toast{{"success", "Ad Set Created", `Ad set "Chuva SP" created successfully with 12.5 BRL daily budget`}}, f.notifier.all())
}

func TestStore_CreateAdSet_FalhaRemovePlaceholder(t *testing.T) {
	f := newFixture(t)
	f.seed([]backenddomain.AdAccount{{ID: "act_1"}}, metaCampaign("c1", "act_1", "USD", backenddomain.StatusActive))
	before := f.store.Campaigns()

	f.backend.EXPECT().CreateAdSet(gomock.Any(), gomock.Any()).Return(nil, &backenddomain.APIError{Message: "Invalid targeting", Status: 400})

	_, err := f.store.CreateAdSet(context.Background(), "c1", AdSetForm{Name: "Chuva", DailyBudget: "5"})
	require.Error(t, err)

	assert.Empty(t, cmp.Diff(before, f.store.Campaigns()))
	assert.Equal(t, []toast{{"error", "Ad Set Creation Failed", "Invalid targeting"}}, f.notifier.all())
}

func TestStore_ResolucaoDeConta(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(f *fixture)
		campaignID  string
		wantAccount string
		wantErr     string
	}{
		{
			name: "Prefere a conta da campanha",
			setup: func(f *fixture) {
				f.seed([]backenddomain.AdAccount{{ID: "act_1"}, {ID: "act_2"}},
					metaCampaign("c2", "act_2", "USD", backenddomain.StatusActive))
			},
			campaignID:  "c2",
			wantAccount: "act_2",
		},
		{
			name: "Usa a conta selecionada para campanha desconhecida",
			setup: func(f *fixture) {
				f.seed([]backenddomain.AdAccount{{ID: "act_1"}, {ID: "act_2"}})
				f.store.SetSelectedAccount("act_2")
			},
			campaignID:  "c-externa",
			wantAccount: "act_2",
		},
		{
			name: "Cai para a primeira conta conectada",
			setup: func(f *fixture) {
				f.seed([]backenddomain.AdAccount{{AdAccountID: "act_9"}})
				f.store.SetSelectedAccount("")
			},
			campaignID:  "c-externa",
			wantAccount: "act_9",
		},
		{
			name:       "Sem nenhuma conta falha explicitamente",
			setup:      func(f *fixture) {},
			campaignID: "c1",
			wantErr:    "Ad account not found. Please load campaigns or reconnect your Meta account.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			if tt.wantErr == "" {
				f.backend.EXPECT().CreateAdSet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req backenddomain.CreateAdSetRequest) (*backenddomain.CreateAdSetResponse, error) {
						assert.Equal(t, tt.wantAccount, req.AdAccountID)
						return &backenddomain.CreateAdSetResponse{ID: "as-1"}, nil
					})
			}

			_, err := f.store.CreateAdSet(context.Background(), tt.campaignID, AdSetForm{Name: "Chuva", DailyBudget: "10"})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.ErrorIs(t, err, ErrAdAccountNotFound)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStore_DeleteCampaign_RollbackRestauraPosicaoEContagem(t *testing.T) {
	f := newFixture(t)
	f.seed([]backenddomain.AdAccount{{ID: "act_1"}},
		metaCampaign("c1", "act_1", "USD", backenddomain.StatusActive),
		metaCampaign("c2", "act_1", "USD", backenddomain.StatusActive),
		metaCampaign("c3", "act_1", "USD", backenddomain.StatusPaused),
	)
	before := f.store.Campaigns()

	f.backend.EXPECT().DeleteCampaign(gomock.Any(), "c2").
		DoAndReturn(func(context.Context, string) error {
			_, ok := f.store.CampaignByID("c2")
			assert.False(t, ok)
			assert.Equal(t, 2, f.store.AvailableAccounts()[0].CampaignCount)
			return errors.New("forbidden")
		})

	err := f.store.DeleteCampaign(context.Background(), "c2")
	require.Error(t, err)

	assert.Empty(t, cmp.Diff(before, f.store.Campaigns()))
	assert.Equal(t, 3, f.store.AvailableAccounts()[0].CampaignCount)
	assert.Equal(t, []toast{{"error", "Delete Failed", "Failed to delete campaign: forbidden"}}, f.notifier.all())
}

func TestStore_CreateCampaign(t *testing.T) {
	t.Run("Sucesso troca o id temporário pelo id do servidor", func(t *testing.T) {
		f := newFixture(t)
		f.seed([]backenddomain.AdAccount{{ID: "act_1", Name: "Loja Centro", Currency: "BRL"}})

		f.backend.EXPECT().CreateCampaign(gomock.Any(), backenddomain.CreateCampaignRequest{
			AdAccountID: "act_1",
			Name:        "Inverno",
			Objective:   "OUTCOME_AWARENESS",
			Status:      backenddomain.StatusPaused,
		}).Return(&backenddomain.CreateCampaignResponse{ID: "c-new"}, nil)

		created, err := f.store.CreateCampaign(context.Background(), CampaignForm{Name: "Inverno", Objective: "OUTCOME_AWARENESS"})
		require.NoError(t, err)

		assert.Equal(t, "c-new", created.ID)
		assert.Equal(t, "Brand Awareness", created.Type)
		assert.Equal(t, "Loja Centro", created.AdAccountName)
		assert.Equal(t, 1, f.store.AvailableAccounts()[0].CampaignCount)
		require.Len(t, f.store.Campaigns(), 1)
		assert.Equal(t, []toast{{"success", "Campaign Created", `Campaign "Inverno" created successfully in Loja Centro`}}, f.notifier.all())
	})

	t.Run("Falha remove o placeholder e restaura a contagem", func(t *testing.T) {
		f := newFixture(t)
		f.seed([]backenddomain.AdAccount{{ID: "act_1"}})

		f.backend.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).Return(nil, errors.New("quota"))

		_, err := f.store.CreateCampaign(context.Background(), CampaignForm{Name: "Inverno", Objective: "OUTCOME_TRAFFIC"})
		require.Error(t, err)

		assert.Empty(t, f.store.Campaigns())
		assert.Equal(t, 0, f.store.AvailableAccounts()[0].CampaignCount)
		assert.Equal(t, []toast{{"error", "Campaign Creation Failed", "quota"}}, f.notifier.all())
	})

	t.Run("Sem conta conectada", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.store.CreateCampaign(context.Background(), CampaignForm{Name: "Inverno"})
		require.Error(t, err)
		assert.Equal(t, "No ad account found. Please connect your Meta Ads account.", err.Error())
	})
}

func TestStore_AdSetStatusEDelete(t *testing.T) {
	adSets := []backenddomain.AdSet{
		{ID: "as1", Name: "Chuva", CampaignID: "c1", Status: backenddomain.StatusActive},
		{ID: "as2", Name: "Sol", CampaignID: "c1", Status: backenddomain.StatusPaused},
	}

	t.Run("Pausa com sucesso", func(t *testing.T) {
		f := newFixture(t)
		f.seed([]backenddomain.AdAccount{{ID: "act_1"}}, metaCampaign("c1", "act_1", "USD", backenddomain.StatusActive, adSets...))

		f.backend.EXPECT().AdSetAction(gomock.Any(), "as1", backenddomain.ActionPause).Return(&backenddomain.ActionResponse{}, nil)

		require.NoError(t, f.store.UpdateAdSetStatus(context.Background(), "as1", backenddomain.ActionPause))
		assert.Equal(t, backenddomain.StatusPaused, f.store.AdSetsByCampaign("c1")[0].Status)
		assert.Equal(t, []toast{{"success", "Ad Set Paused", "Ad set paused successfully"}}, f.notifier.all())
	})

	t.Run("Delete com falha recoloca o ad set na mesma posição", func(t *testing.T) {
		f := newFixture(t)
		f.seed([]backenddomain.AdAccount{{ID: "act_1"}}, metaCampaign("c1", "act_1", "USD", backenddomain.StatusActive, adSets...))
		before := f.store.AdSetsByCampaign("c1")

		f.backend.EXPECT().DeleteAdSet(gomock.Any(), "as1").Return(errors.New("boom"))

		require.Error(t, f.store.DeleteAdSet(context.Background(), "as1"))
		assert.Empty(t, cmp.Diff(before, f.store.AdSetsByCampaign("c1")))
		assert.Equal(t, []toast{{"error", "Delete Failed", "Failed to delete ad set"}}, f.notifier.all())
	})

	t.Run("Ad set desconhecido", func(t *testing.T) {
		f := newFixture(t)
		err := f.store.DeleteAdSet(context.Background(), "as-x")
		assert.ErrorIs(t, err, ErrAdSetNotFound)
	})
}

func TestStore_LoadAdSets(t *testing.T) {
	f := newFixture(t)
	f.seed([]backenddomain.AdAccount{{ID: "act_1"}},
		metaCampaign("c1", "act_1", "USD", backenddomain.StatusActive),
		metaCampaign("c2", "act_1", "USD", backenddomain.StatusActive, backenddomain.AdSet{ID: "as-mem"}),
	)

	f.backend.EXPECT().GetAdSets(gomock.Any(), "c1").Return([]backenddomain.AdSet{{ID: "as1"}, {ID: "as2"}}, nil).Times(1)

	adSets, err := f.store.LoadAdSets(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, adSets, 2)

	// segunda leitura vem da memória
	adSets, err = f.store.LoadAdSets(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, adSets, 2)

	adSets, err = f.store.LoadAdSets(context.Background(), "c2")
	require.NoError(t, err)
	assert.Equal(t, "as-mem", adSets[0].ID)

	_, err = f.store.LoadAdSets(context.Background(), "c-x")
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestStore_GoogleCampaignStatus(t *testing.T) {
	f := newFixture(t)

	f.backend.EXPECT().GetGoogleCampaigns(gomock.Any(), "cust-1").Return([]backenddomain.GoogleCampaign{
		{ID: "g1", Name: "Search", Status: backenddomain.StatusEnabled},
	}, nil)
	_, err := f.store.LoadGoogleCampaigns(context.Background(), "cust-1", false)
	require.NoError(t, err)

	f.backend.EXPECT().GoogleCampaignAction(gomock.Any(), "g1", backenddomain.ActionPause).Return(nil, errors.New("boom"))
	require.Error(t, f.store.UpdateGoogleCampaignStatus(context.Background(), "cust-1", "g1", backenddomain.ActionPause))
	assert.Equal(t, backenddomain.StatusEnabled, f.store.GoogleCampaigns("cust-1")[0].Status)

	f.backend.EXPECT().GoogleCampaignAction(gomock.Any(), "g1", backenddomain.ActionPause).Return(&backenddomain.ActionResponse{}, nil)
	require.NoError(t, f.store.UpdateGoogleCampaignStatus(context.Background(), "cust-1", "g1", backenddomain.ActionPause))
	assert.Equal(t, backenddomain.StatusPaused, f.store.GoogleCampaigns("cust-1")[0].Status)
}

func TestStore_CreateAdSet_FalhaPreservaListaVaziaOuNula(t *testing.T) {
	tests := []struct {
		name   string
		adSets []backenddomain.AdSet
	}{
		{name: "Lista nula continua nula", adSets: nil},
		{name: "Lista vazia continua vazia", adSets: []backenddomain.AdSet{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			c := metaCampaign("c1", "act_1", "USD", backenddomain.StatusActive)
			c.AdSets = tt.adSets
			f.seed([]backenddomain.AdAccount{{ID: "act_1"}}, c)
			before := f.store.Campaigns()

			f.backend.EXPECT().CreateAdSet(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

			_, err := f.store.CreateAdSet(context.Background(), "c1", AdSetForm{Name: "Chuva", DailyBudget: "5"})
			require.Error(t, err)

			after, ok := f.store.CampaignByID("c1")
			require.True(t, ok)
			assert.Equal(t, tt.adSets == nil, after.AdSets == nil)
			assert.Empty(t, cmp.Diff(before, f.store.Campaigns()))
		})
	}
}

func TestStore_CreateCampaign_RecargaDuranteAChamada(t *testing.T) {
	f := newFixture(t)
	f.seed([]backenddomain.AdAccount{{ID: "act_1", Name: "Loja Centro", Currency: "BRL"}})

	f.backend.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, backenddomain.CreateCampaignRequest) (*backenddomain.CreateCampaignResponse, error) {
			// uma recarga concluída no meio da criação descarta o placeholder
			f.store.mu.Lock()
			f.store.campaigns = []CampaignWithAdSets{metaCampaign("c-new", "act_1", "BRL", backenddomain.StatusPaused)}
			f.store.mu.Unlock()
			return &backenddomain.CreateCampaignResponse{ID: "c-new"}, nil
		})

	created, err := f.store.CreateCampaign(context.Background(), CampaignForm{Name: "Inverno", Objective: "OUTCOME_TRAFFIC"})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "c-new", created.ID)
	assert.Equal(t, "Inverno", created.Name)
	assert.Equal(t, "act_1", created.AdAccountID)
	require.Len(t, f.store.Campaigns(), 1)
}

func TestStore_UpdateCampaign(t *testing.T) {
	accounts := []backenddomain.AdAccount{{ID: "act_1", Currency: "USD"}}

	tests := []struct {
		name       string
		campaignID string
		form       CampaignForm
		setup      func(f *fixture)
		wantErr    string
		wantName   string
		wantType   string
		wantToasts []toast
	}{
		{
			name:       "Sucesso altera nome e objetivo",
			campaignID: "c1",
			form:       CampaignForm{Name: " Inverno ", Objective: "OUTCOME_AWARENESS"},
			setup: func(f *fixture) {
				f.backend.EXPECT().UpdateCampaign(gomock.Any(), "c1", backenddomain.UpdateCampaignRequest{
					Name:      "Inverno",
					Objective: "OUTCOME_AWARENESS",
				}).Return(nil)
			},
			wantName:   "Inverno",
			wantType:   "Brand Awareness",
			wantToasts: []toast{{"success", "Campaign Updated", `Campaign "Inverno" updated successfully`}},
		},
		{
			name:       "Objetivo vazio mantém o atual",
			campaignID: "c1",
			form:       CampaignForm{Name: "Inverno"},
			setup: func(f *fixture) {
				f.backend.EXPECT().UpdateCampaign(gomock.Any(), "c1", backenddomain.UpdateCampaignRequest{
					Name:      "Inverno",
					Objective: "OUTCOME_TRAFFIC",
				}).Return(nil)
			},
			wantName:   "Inverno",
			wantType:   AdTypeFromObjective("OUTCOME_TRAFFIC"),
			wantToasts: []toast{{"success", "Campaign Updated", `Campaign "Inverno" updated successfully`}},
		},
		{
			name:       "Falha do backend restaura nome e objetivo",
			campaignID: "c1",
			form:       CampaignForm{Name: "Inverno", Objective: "OUTCOME_AWARENESS"},
			setup: func(f *fixture) {
				f.backend.EXPECT().UpdateCampaign(gomock.Any(), "c1", gomock.Any()).
					DoAndReturn(func(context.Context, string, backenddomain.UpdateCampaignRequest) error {
						c, _ := f.store.CampaignByID("c1")
						assert.Equal(t, "Inverno", c.Name, "alteração otimista visível durante a chamada")
						assert.True(t, f.store.ActionState("c1").IsLoading)
						return errors.New("forbidden")
					})
			},
			wantErr:    "forbidden",
			wantToasts: []toast{{"error", "Update Failed", "Failed to update campaign: forbidden"}},
		},
		{
			name:       "Nome vazio não chama o backend",
			campaignID: "c1",
			form:       CampaignForm{Name: "  "},
			wantErr:    "Campaign name is required",
		},
		{
			name:       "Campanha desconhecida",
			campaignID: "c404",
			form:       CampaignForm{Name: "Inverno"},
			wantErr:    "Campaign not found: c404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.seed(accounts, metaCampaign("c1", "act_1", "USD", backenddomain.StatusActive))
			before := f.store.Campaigns()
			if tt.setup != nil {
				tt.setup(f)
			}

			err := f.store.UpdateCampaign(context.Background(), tt.campaignID, tt.form)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Empty(t, cmp.Diff(before, f.store.Campaigns()))
			} else {
				require.NoError(t, err)
				c, ok := f.store.CampaignByID("c1")
				require.True(t, ok)
				assert.Equal(t, tt.wantName, c.Name)
				assert.Equal(t, tt.wantType, c.Type)
				assert.Equal(t, ActionState{}, f.store.ActionState("c1"))
			}

			assert.Equal(t, tt.wantToasts, f.notifier.all())
		})
	}
}

func TestStore_LoadCampaignsForAccount(t *testing.T) {
	accounts := []backenddomain.AdAccount{
		{ID: "act_1", Name: "Loja Centro", Currency: "BRL"},
		{ID: "act_2", Name: "Loja Norte", Currency: "BRL"},
	}
	seedCampaigns := []CampaignWithAdSets{
		metaCampaign("c1", "act_1", "BRL", backenddomain.StatusActive),
		metaCampaign("c2", "act_1", "BRL", backenddomain.StatusPaused),
		metaCampaign("c3", "act_2", "BRL", backenddomain.StatusActive),
	}

	t.Run("Recarrega só a conta pedida ignorando o cache", func(t *testing.T) {
		f := newFixture(t)
		f.seed(accounts, seedCampaigns...)

		_, err := requestcache.Get(context.Background(), f.cache, campaignsCacheKey("act_1"), func(context.Context) ([]backenddomain.Campaign, error) {
			return []backenddomain.Campaign{{ID: "stale"}}, nil
		}, requestcache.Options{TTL: time.Minute})
		require.NoError(t, err)

		f.backend.EXPECT().GetCampaigns(gomock.Any(), "act_1").Return([]backenddomain.Campaign{
			{ID: "c9", Name: "Granizo", Status: backenddomain.StatusActive, Objective: "OUTCOME_SALES"},
		}, nil).Times(1)

		require.NoError(t, f.store.LoadCampaignsForAccount(context.Background(), "act_1"))

		forAccount := f.store.CampaignsForAccount("act_1")
		require.Len(t, forAccount, 1)
		assert.Equal(t, "c9", forAccount[0].ID)
		assert.Equal(t, "Loja Centro", forAccount[0].AdAccountName)

		other := f.store.CampaignsForAccount("act_2")
		require.Len(t, other, 1)
		assert.Equal(t, "c3", other[0].ID)

		counts := map[string]int{}
		for _, acc := range f.store.AvailableAccounts() {
			counts[acc.ID] = acc.CampaignCount
		}
		assert.Equal(t, map[string]int{"act_1": 1, "act_2": 1}, counts)
		assert.False(t, f.store.IsAccountLoading("act_1"))
	})

	t.Run("Carga já em andamento para a conta é ignorada", func(t *testing.T) {
		f := newFixture(t)
		f.seed(accounts, seedCampaigns...)
		f.store.mu.Lock()
		f.store.accountsLoading["act_1"] = true
		f.store.mu.Unlock()

		require.NoError(t, f.store.LoadCampaignsForAccount(context.Background(), "act_1"))
		assert.Len(t, f.store.CampaignsForAccount("act_1"), 2)
	})

	t.Run("Falha mantém as campanhas e libera a conta", func(t *testing.T) {
		f := newFixture(t)
		f.seed(accounts, seedCampaigns...)
		before := f.store.Campaigns()

		f.backend.EXPECT().GetCampaigns(gomock.Any(), "act_1").Return(nil, errors.New("rate limited"))

		require.Error(t, f.store.LoadCampaignsForAccount(context.Background(), "act_1"))
		assert.Empty(t, cmp.Diff(before, f.store.Campaigns()))
		assert.False(t, f.store.IsAccountLoading("act_1"))
	})
}

func TestStore_RefreshCampaignsEForceRefresh(t *testing.T) {
	accounts := []backenddomain.AdAccount{{ID: "act_1", Name: "Loja Centro", Currency: "BRL"}}
	status := &backenddomain.AccountStatusResponse{
		Connected: true,
		Account:   &backenddomain.MetaAccount{ID: "meta-1", AdAccounts: accounts},
	}

	tests := []struct {
		name            string
		refresh         func(s *Store, ctx context.Context) error
		wantActionState ActionState
	}{
		{
			name:            "RefreshCampaigns ignora a janela e mantém estados de ação",
			refresh:         (*Store).RefreshCampaigns,
			wantActionState: ActionState{Error: "Failed to pause"},
		},
		{
			name:            "ForceRefresh ignora a janela e limpa estados de ação",
			refresh:         (*Store).ForceRefresh,
			wantActionState: ActionState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.seed(accounts, metaCampaign("c1", "act_1", "BRL", backenddomain.StatusActive))
			f.store.setActionState("c1", ActionState{Error: "Failed to pause"})

			// dentro da janela de frescor a carga normal não vai ao backend
			require.NoError(t, f.store.LoadCampaigns(context.Background()))

			f.backend.EXPECT().GetMetaAccount(gomock.Any()).Return(status, nil).Times(1)
			f.backend.EXPECT().GetCampaigns(gomock.Any(), "act_1").Return([]backenddomain.Campaign{
				{ID: "c1", Name: "Chuva", Status: backenddomain.StatusPaused},
				{ID: "c2", Name: "Sol", Status: backenddomain.StatusActive},
			}, nil).Times(1)

			require.NoError(t, tt.refresh(f.store, context.Background()))

			assert.Len(t, f.store.Campaigns(), 2)
			c, ok := f.store.CampaignByID("c1")
			require.True(t, ok)
			assert.Equal(t, backenddomain.StatusPaused, c.Status)
			assert.Equal(t, tt.wantActionState, f.store.ActionState("c1"))
		})
	}
}
