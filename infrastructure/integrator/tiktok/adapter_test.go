package tiktok

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	tkdomain "github.com/vfg2006/ad-state-sync/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/tiktok/tkclient/mocks"
	"github.com/vfg2006/ad-state-sync/internal/domain"
)

func testAccount() *domain.AdsAccount {
	return &domain.AdsAccount{
		ID:       "ACC003",
		Platform: domain.PlatformTikTok,
		NativeID: "6912345678901234567",
		Status:   domain.AdsAccountStatusActive,
		Credentials: domain.Credentials{
			AccessToken: "tk-token",
		},
	}
}

func TestAdapter_FetchAll_PercorreArvoreSequencial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient)
	account := testAccount()

	advertiserID := account.NativeID

	mockClient.EXPECT().
		ListCampaigns(gomock.Any(), advertiserID, "tk-token").
		Return([]tkdomain.Campaign{
			{CampaignID: "c1", CampaignName: "Campanha TikTok", OperationStatus: "ENABLE", Budget: 120},
		}, nil)

	mockClient.EXPECT().
		ListAdGroups(gomock.Any(), advertiserID, "c1", "tk-token").
		Return([]tkdomain.AdGroup{
			{
				AdGroupID:         "g1",
				AdGroupName:       "Grupo 1",
				CampaignID:        "c1",
				OperationStatus:   "ENABLE",
				BidPrice:          0.8,
				BidType:           "BID_TYPE_CUSTOM",
				OptimizationGoal:  "CLICK",
				BillingEvent:      "CPC",
				ScheduleStartTime: "2024-05-01 10:00:00",
			},
		}, nil)

	mockClient.EXPECT().
		ListAds(gomock.Any(), advertiserID, "g1", "tk-token").
		Return([]tkdomain.Ad{
			{
				AdID:            "a1",
				AdName:          "Anúncio 1",
				AdGroupID:       "g1",
				CampaignID:      "c1",
				OperationStatus: "ENABLE",
				AdText:          "Texto do anúncio",
				LandingPageURL:  "https://example.com",
			},
		}, nil)

	states, err := adapter.FetchAll(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, states, 1)

	state := states[0]
	assert.Equal(t, domain.PlatformTikTok, state.Platform)
	assert.Equal(t, "c1", state.CampaignID)
	assert.Equal(t, "g1", state.AdsetID)
	assert.Equal(t, "a1", state.AdID)

	// TikTok reporta valores já na unidade principal, sem conversão
	require.NotNil(t, state.DailyBudget)
	assert.Equal(t, 0.8, *state.BidAmount)
	require.NotNil(t, state.AdBody)
	assert.Equal(t, "Texto do anúncio", *state.AdBody)
	require.NotNil(t, state.StartTime)

	require.NotNil(t, state.OptimizationGoal)
	assert.Equal(t, "CLICK", *state.OptimizationGoal)
}

func TestAdapter_FetchAll_OrcamentoDoGrupoPrevalece(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient)
	account := testAccount()

	mockClient.EXPECT().
		ListCampaigns(gomock.Any(), account.NativeID, "tk-token").
		Return([]tkdomain.Campaign{{CampaignID: "c1", Budget: 300}}, nil)

	mockClient.EXPECT().
		ListAdGroups(gomock.Any(), account.NativeID, "c1", "tk-token").
		Return([]tkdomain.AdGroup{{AdGroupID: "g1", Budget: 50}}, nil)

	mockClient.EXPECT().
		ListAds(gomock.Any(), account.NativeID, "g1", "tk-token").
		Return([]tkdomain.Ad{{AdID: "a1", AdText: "texto"}}, nil)

	states, err := adapter.FetchAll(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, states, 1)

	require.NotNil(t, states[0].DailyBudget)
	assert.Equal(t, 50.0, *states[0].DailyBudget)
}

func TestAdapter_FetchAll_BuscaCriativoQuandoAdNaoTemMidia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient)
	account := testAccount()

	mockClient.EXPECT().
		ListCampaigns(gomock.Any(), account.NativeID, "tk-token").
		Return([]tkdomain.Campaign{{CampaignID: "c1"}}, nil)

	mockClient.EXPECT().
		ListAdGroups(gomock.Any(), account.NativeID, "c1", "tk-token").
		Return([]tkdomain.AdGroup{{AdGroupID: "g1"}}, nil)

	// Anúncio sem texto nem mídia inline força a chamada de criativo
	mockClient.EXPECT().
		ListAds(gomock.Any(), account.NativeID, "g1", "tk-token").
		Return([]tkdomain.Ad{{AdID: "a1"}}, nil)

	mockClient.EXPECT().
		GetCreative(gomock.Any(), account.NativeID, "a1", "tk-token").
		Return(&tkdomain.Creative{
			CreativeID: "cr1",
			Title:      "Título do criativo",
			VideoURL:   "https://video.example.com/v1",
		}, nil)

	states, err := adapter.FetchAll(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, states, 1)

	require.NotNil(t, states[0].AdTitle)
	assert.Equal(t, "Título do criativo", *states[0].AdTitle)
	require.NotNil(t, states[0].VideoURL)
}

func TestAdapter_FetchAll_ErroDeProtocoloAbortaConta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient)
	account := testAccount()

	// HTTP 200 com code != 0 vira ProtocolError e descarta a conta inteira
	protocolErr := &integrator.ProtocolError{
		Platform: domain.PlatformTikTok,
		Code:     40100,
		Message:  "Access token is expired",
	}

	mockClient.EXPECT().
		ListCampaigns(gomock.Any(), account.NativeID, "tk-token").
		Return(nil, protocolErr)

	states, err := adapter.FetchAll(context.Background(), account)
	assert.Nil(t, states)
	assert.ErrorAs(t, err, new(*integrator.ProtocolError))
}

func TestAdapter_FetchAll_FalhaNoMeioDaTravessiaDescartaParcial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient)
	account := testAccount()

	mockClient.EXPECT().
		ListCampaigns(gomock.Any(), account.NativeID, "tk-token").
		Return([]tkdomain.Campaign{{CampaignID: "c1"}, {CampaignID: "c2"}}, nil)

	mockClient.EXPECT().
		ListAdGroups(gomock.Any(), account.NativeID, "c1", "tk-token").
		Return([]tkdomain.AdGroup{{AdGroupID: "g1"}}, nil)

	mockClient.EXPECT().
		ListAds(gomock.Any(), account.NativeID, "g1", "tk-token").
		Return([]tkdomain.Ad{{AdID: "a1", AdText: "ok"}}, nil)

	// Segunda campanha falha: nada do que foi acumulado é retornado
	mockClient.EXPECT().
		ListAdGroups(gomock.Any(), account.NativeID, "c2", "tk-token").
		Return(nil, &integrator.TransportError{Platform: domain.PlatformTikTok, StatusCode: 503})

	states, err := adapter.FetchAll(context.Background(), account)
	assert.Nil(t, states)
	assert.Error(t, err)
}

func TestAdapter_ValidateCredentials_AnuncianteInvalidoViraAuthError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient)
	account := testAccount()

	mockClient.EXPECT().
		GetAdvertiserInfo(gomock.Any(), account.NativeID, "tk-token").
		Return(nil, &integrator.ProtocolError{Platform: domain.PlatformTikTok, Code: 40105, Message: "invalid token"})

	err := adapter.ValidateCredentials(context.Background(), account)
	assert.ErrorAs(t, err, new(*integrator.AuthError))
}
