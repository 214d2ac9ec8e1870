package facebook

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	fbdomain "github.com/vfg2006/ad-state-sync/infrastructure/integrator/facebook/domain"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/facebook/fbclient/mocks"
	"github.com/vfg2006/ad-state-sync/internal/domain"
)

func testAccount() *domain.AdsAccount {
	return &domain.AdsAccount{
		ID:       "ACC001",
		Platform: domain.PlatformFacebook,
		NativeID: "1444838296485002",
		Status:   domain.AdsAccountStatusActive,
		Credentials: domain.Credentials{
			AccessToken: "token-abc",
		},
	}
}

func TestAdapter_FetchAll_NormalizaArvoreCompleta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient)
	account := testAccount()

	campaigns := []fbdomain.Campaign{
		{
			ID:              "cmp-1",
			Name:            "Campanha Verão",
			EffectiveStatus: "ACTIVE",
			DailyBudget:     "15000",
			StartTime:       "2024-01-10T08:00:00-0300",
			Adsets: &fbdomain.AdsetList{
				Data: []fbdomain.Adset{
					{
						ID:              "ads-1",
						Name:            "Adset Sul",
						EffectiveStatus: "ACTIVE",
						BidAmount:       "250",
						Ads: &fbdomain.AdList{
							Data: []fbdomain.Ad{
								{
									ID:              "ad-1",
									Name:            "Anúncio 1",
									EffectiveStatus: "ACTIVE",
									Creative: &fbdomain.Creative{
										ID:    "cr-1",
										Title: "Óculos com 50% off",
										Body:  "Só esta semana",
									},
								},
							},
						},
					},
				},
			},
		},
	}

	mockClient.EXPECT().
		FetchCampaignTree(gomock.Any(), account.NativeID, "token-abc").
		Return(campaigns, nil)

	states, err := adapter.FetchAll(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, states, 1)

	state := states[0]
	assert.Equal(t, domain.PlatformFacebook, state.Platform)
	assert.Equal(t, "ACC001", state.AdsAccountID)
	assert.Equal(t, "cmp-1", state.CampaignID)
	assert.Equal(t, "ads-1", state.AdsetID)
	assert.Equal(t, "ad-1", state.AdID)
	assert.Equal(t, domain.SyncStatusSynced, state.SyncStatus)

	// Centavos convertidos para unidade principal
	require.NotNil(t, state.DailyBudget)
	assert.Equal(t, 150.0, *state.DailyBudget)
	require.NotNil(t, state.BidAmount)
	assert.Equal(t, 2.5, *state.BidAmount)

	require.NotNil(t, state.AdTitle)
	assert.Equal(t, "Óculos com 50% off", *state.AdTitle)
	require.NotNil(t, state.StartTime)
	assert.Equal(t, 11, state.StartTime.UTC().Hour())
}

func TestAdapter_FetchAll_CampanhaSemAdsetsGeraRegistroDeCampanha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient)
	account := testAccount()

	campaigns := []fbdomain.Campaign{
		{ID: "cmp-2", Name: "Campanha Vazia", EffectiveStatus: "PAUSED"},
	}

	mockClient.EXPECT().
		FetchCampaignTree(gomock.Any(), account.NativeID, "token-abc").
		Return(campaigns, nil)

	states, err := adapter.FetchAll(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, states, 1)

	assert.Equal(t, "cmp-2", states[0].CampaignID)
	assert.Empty(t, states[0].AdsetID)
	assert.Empty(t, states[0].AdID)
	assert.Nil(t, states[0].DailyBudget)
	assert.Nil(t, states[0].StartTime)
}

func TestAdapter_FetchAll_OrcamentoDoAdsetPrevaleceSobreCampanha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient)
	account := testAccount()

	campaigns := []fbdomain.Campaign{
		{
			ID:          "cmp-3",
			DailyBudget: "10000",
			Adsets: &fbdomain.AdsetList{
				Data: []fbdomain.Adset{
					{ID: "ads-3", DailyBudget: "4000"},
				},
			},
		},
	}

	mockClient.EXPECT().
		FetchCampaignTree(gomock.Any(), account.NativeID, "token-abc").
		Return(campaigns, nil)

	states, err := adapter.FetchAll(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, states, 1)

	require.NotNil(t, states[0].DailyBudget)
	assert.Equal(t, 40.0, *states[0].DailyBudget)
}

func TestAdapter_FetchAll_FalhaDeTransporteDescartaTudo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient)
	account := testAccount()

	transportErr := &integrator.TransportError{
		Platform:   domain.PlatformFacebook,
		StatusCode: 500,
	}

	mockClient.EXPECT().
		FetchCampaignTree(gomock.Any(), account.NativeID, "token-abc").
		Return(nil, transportErr)

	states, err := adapter.FetchAll(context.Background(), account)
	assert.Nil(t, states)
	assert.ErrorAs(t, err, new(*integrator.TransportError))
}

func TestAdapter_ValidateCredentials_TokenInvalidoViraAuthError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient)
	account := testAccount()

	mockClient.EXPECT().
		CheckToken(gomock.Any(), "token-abc").
		Return(&integrator.TransportError{Platform: domain.PlatformFacebook, StatusCode: 401})

	err := adapter.ValidateCredentials(context.Background(), account)
	assert.ErrorAs(t, err, new(*integrator.AuthError))
}

func TestApplyCreative_FallbackParaLinkData(t *testing.T) {
	record := &domain.AdState{}

	applyCreative(record, &fbdomain.Creative{
		ID: "cr-9",
		ObjectStorySpec: &fbdomain.ObjectStorySpec{
			LinkData: &fbdomain.LinkData{
				Name:        "Título do link",
				Message:     "Corpo do link",
				Description: "Descrição",
				Link:        "https://example.com/oferta",
			},
		},
	})

	require.NotNil(t, record.AdTitle)
	assert.Equal(t, "Título do link", *record.AdTitle)
	require.NotNil(t, record.AdBody)
	assert.Equal(t, "Corpo do link", *record.AdBody)
	require.NotNil(t, record.LinkURL)
	assert.Equal(t, "https://example.com/oferta", *record.LinkURL)
}
