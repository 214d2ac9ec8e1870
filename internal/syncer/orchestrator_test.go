package syncer

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	integratormocks "github.com/vfg2006/ad-state-sync/infrastructure/integrator/mocks"
	"github.com/vfg2006/ad-state-sync/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-state-sync/internal/domain"
)

func activeAccount() *domain.AdsAccount {
	return &domain.AdsAccount{
		ID:       "ACC001",
		Platform: domain.PlatformFacebook,
		NativeID: "1444838296485002",
		Status:   domain.AdsAccountStatusActive,
		Credentials: domain.Credentials{
			AccessToken: "token",
		},
	}
}

func fetchedStates(account *domain.AdsAccount, n int) []*domain.AdState {
	states := make([]*domain.AdState, 0, n)
	for i := 0; i < n; i++ {
		states = append(states, &domain.AdState{
			Platform:     account.Platform,
			AdsAccountID: account.ID,
			CampaignID:   "cmp-1",
			AdsetID:      "ads-1",
			AdID:         string(rune('a' + i)),
			SyncStatus:   domain.SyncStatusSynced,
		})
	}
	return states
}

func newTestOrchestrator(t *testing.T) (*Orchestrator, *integratormocks.MockPlatformAdapter, *mocks.MockAccountRepository, *mocks.MockAdStateRepository) {
	ctrl := gomock.NewController(t)

	adapter := integratormocks.NewMockPlatformAdapter(ctrl)
	adapter.EXPECT().Platform().Return(domain.PlatformFacebook).AnyTimes()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	adStateRepo := mocks.NewMockAdStateRepository(ctrl)

	orchestrator := NewOrchestrator(
		integrator.NewRegistry(adapter),
		accountRepo,
		adStateRepo,
		nil,
	)

	return orchestrator, adapter, accountRepo, adStateRepo
}

func TestOrchestrator_SyncOne_ContaInativaViraConfigurationError(t *testing.T) {
	orchestrator, _, _, _ := newTestOrchestrator(t)

	account := activeAccount()
	account.Status = domain.AdsAccountStatusInactive

	outcome := orchestrator.SyncOne(context.Background(), account)

	assert.False(t, outcome.Succeeded())
	assert.ErrorAs(t, outcome.Err, new(*integrator.ConfigurationError))
	assert.Zero(t, outcome.RecordsWritten)
}

func TestOrchestrator_SyncOne_ContaSemCredenciaisViraConfigurationError(t *testing.T) {
	orchestrator, _, _, _ := newTestOrchestrator(t)

	account := activeAccount()
	account.Credentials = domain.Credentials{}

	outcome := orchestrator.SyncOne(context.Background(), account)

	assert.False(t, outcome.Succeeded())
	assert.ErrorAs(t, outcome.Err, new(*integrator.ConfigurationError))
}

func TestOrchestrator_SyncOne_FalhaDeAutenticacaoMarcaConta(t *testing.T) {
	orchestrator, adapter, accountRepo, _ := newTestOrchestrator(t)
	account := activeAccount()

	authErr := &integrator.AuthError{Platform: domain.PlatformFacebook, Reason: "token expirado"}

	adapter.EXPECT().
		ValidateCredentials(gomock.Any(), account).
		Return(authErr)

	accountRepo.EXPECT().
		MarkSyncError(account.ID, authErr.Error(), gomock.Any()).
		Return(nil)

	outcome := orchestrator.SyncOne(context.Background(), account)

	assert.False(t, outcome.Succeeded())
	assert.ErrorAs(t, outcome.Err, new(*integrator.AuthError))
	assert.Zero(t, outcome.RecordsWritten)
}

func TestOrchestrator_SyncOne_FalhaNaBuscaNaoGravaNada(t *testing.T) {
	orchestrator, adapter, accountRepo, _ := newTestOrchestrator(t)
	account := activeAccount()

	adapter.EXPECT().ValidateCredentials(gomock.Any(), account).Return(nil)
	adapter.EXPECT().
		FetchAll(gomock.Any(), account).
		Return(nil, &integrator.TransportError{Platform: domain.PlatformFacebook, StatusCode: 500})

	accountRepo.EXPECT().
		MarkSyncError(account.ID, gomock.Any(), gomock.Any()).
		Return(nil)

	// Nenhuma expectativa de Upsert: gravação não pode acontecer
	outcome := orchestrator.SyncOne(context.Background(), account)

	assert.False(t, outcome.Succeeded())
	assert.Zero(t, outcome.RecordsWritten)
	assert.Zero(t, outcome.UpsertFailures)
}

func TestOrchestrator_SyncOne_SucessoGravaTodosERegistraConta(t *testing.T) {
	orchestrator, adapter, accountRepo, adStateRepo := newTestOrchestrator(t)
	account := activeAccount()
	states := fetchedStates(account, 3)

	adapter.EXPECT().ValidateCredentials(gomock.Any(), account).Return(nil)
	adapter.EXPECT().FetchAll(gomock.Any(), account).Return(states, nil)

	adStateRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(3)
	accountRepo.EXPECT().MarkSyncSuccess(account.ID, gomock.Any()).Return(nil)

	outcome := orchestrator.SyncOne(context.Background(), account)

	assert.True(t, outcome.Succeeded())
	assert.Equal(t, 3, outcome.RecordsWritten)
	assert.Zero(t, outcome.UpsertFailures)
}

func TestOrchestrator_SyncOne_FalhaDeUpsertEhContadaMasNaoFatal(t *testing.T) {
	orchestrator, adapter, accountRepo, adStateRepo := newTestOrchestrator(t)
	account := activeAccount()
	states := fetchedStates(account, 3)

	adapter.EXPECT().ValidateCredentials(gomock.Any(), account).Return(nil)
	adapter.EXPECT().FetchAll(gomock.Any(), account).Return(states, nil)

	gomock.InOrder(
		adStateRepo.EXPECT().Upsert(states[0]).Return(nil),
		adStateRepo.EXPECT().Upsert(states[1]).Return(errors.New("deadlock detected")),
		adStateRepo.EXPECT().Upsert(states[2]).Return(nil),
	)

	// Falha individual de gravação não derruba a conta
	accountRepo.EXPECT().MarkSyncSuccess(account.ID, gomock.Any()).Return(nil)

	outcome := orchestrator.SyncOne(context.Background(), account)

	assert.True(t, outcome.Succeeded())
	assert.Equal(t, 2, outcome.RecordsWritten)
	assert.Equal(t, 1, outcome.UpsertFailures)
}

// memoryAdStateStore guarda os registros indexados pela chave composta, para
// exercitar o caminho real de gravação sem banco.
type memoryAdStateStore struct {
	rows map[domain.AdStateKey]domain.AdState
}

func newMemoryAdStateStore() *memoryAdStateStore {
	return &memoryAdStateStore{rows: make(map[domain.AdStateKey]domain.AdState)}
}

func (s *memoryAdStateStore) Upsert(state *domain.AdState) error {
	s.rows[state.Key()] = *state
	return nil
}

func (s *memoryAdStateStore) ListByAccount(platform domain.Platform, adsAccountID string) ([]*domain.AdState, error) {
	states := make([]*domain.AdState, 0, len(s.rows))
	for key, row := range s.rows {
		if key.Platform == platform && key.AdsAccountID == adsAccountID {
			row := row
			states = append(states, &row)
		}
	}
	return states, nil
}

func TestOrchestrator_SyncOne_DuasPassadasNaoDuplicamLinhas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := integratormocks.NewMockPlatformAdapter(ctrl)
	adapter.EXPECT().Platform().Return(domain.PlatformFacebook).AnyTimes()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	store := newMemoryAdStateStore()

	account := activeAccount()
	states := fetchedStates(account, 3)

	adapter.EXPECT().ValidateCredentials(gomock.Any(), account).Return(nil).Times(2)
	adapter.EXPECT().FetchAll(gomock.Any(), account).Return(states, nil).Times(2)
	accountRepo.EXPECT().MarkSyncSuccess(account.ID, gomock.Any()).Return(nil).Times(2)

	orchestrator := NewOrchestrator(integrator.NewRegistry(adapter), accountRepo, store, nil)

	first := orchestrator.SyncOne(context.Background(), account)
	second := orchestrator.SyncOne(context.Background(), account)

	assert.Equal(t, 3, first.RecordsWritten)
	assert.Equal(t, 3, second.RecordsWritten)

	// A segunda passada sobrescreve as mesmas linhas, nunca cria novas
	assert.Len(t, store.rows, 3)
}

func TestOrchestrator_SyncOne_MesmaChaveSobrescreveComUltimaVersao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adapter := integratormocks.NewMockPlatformAdapter(ctrl)
	adapter.EXPECT().Platform().Return(domain.PlatformFacebook).AnyTimes()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	store := newMemoryAdStateStore()

	account := activeAccount()

	stateV1 := &domain.AdState{
		Platform:     account.Platform,
		AdsAccountID: account.ID,
		CampaignID:   "cmp-1",
		AdsetID:      "ads-1",
		AdID:         "ad-1",
		AdName:       "Anúncio v1",
		SyncStatus:   domain.SyncStatusSynced,
	}
	stateV2 := &domain.AdState{
		Platform:     account.Platform,
		AdsAccountID: account.ID,
		CampaignID:   "cmp-1",
		AdsetID:      "ads-1",
		AdID:         "ad-1",
		AdName:       "Anúncio v2",
		SyncStatus:   domain.SyncStatusSynced,
	}

	adapter.EXPECT().ValidateCredentials(gomock.Any(), account).Return(nil).Times(2)
	gomock.InOrder(
		adapter.EXPECT().FetchAll(gomock.Any(), account).Return([]*domain.AdState{stateV1}, nil),
		adapter.EXPECT().FetchAll(gomock.Any(), account).Return([]*domain.AdState{stateV2}, nil),
	)
	accountRepo.EXPECT().MarkSyncSuccess(account.ID, gomock.Any()).Return(nil).Times(2)

	orchestrator := NewOrchestrator(integrator.NewRegistry(adapter), accountRepo, store, nil)

	orchestrator.SyncOne(context.Background(), account)
	orchestrator.SyncOne(context.Background(), account)

	require.Len(t, store.rows, 1)

	row := store.rows[stateV2.Key()]
	assert.Equal(t, "Anúncio v2", row.AdName)
}

func TestOrchestrator_SyncOne_PlataformaSemAdapter(t *testing.T) {
	orchestrator, _, _, _ := newTestOrchestrator(t)

	account := activeAccount()
	account.Platform = domain.PlatformTikTok

	outcome := orchestrator.SyncOne(context.Background(), account)

	assert.False(t, outcome.Succeeded())
	assert.ErrorAs(t, outcome.Err, new(*integrator.ConfigurationError))
}
