package google

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	gdomain "github.com/vfg2006/ad-state-sync/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/google/gclient/mocks"
	"github.com/vfg2006/ad-state-sync/internal/domain"
)

func testAccount() *domain.AdsAccount {
	return &domain.AdsAccount{
		ID:       "ACC002",
		Platform: domain.PlatformGoogle,
		NativeID: "9812345670",
		Status:   domain.AdsAccountStatusActive,
		Credentials: domain.Credentials{
			RefreshToken:   "refresh-xyz",
			ClientID:       "client",
			ClientSecret:   "secret",
			DeveloperToken: "dev-token",
		},
	}
}

func TestAdapter_FetchAll_NormalizaMicrosEAchataBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient, "fallback-dev-token")
	account := testAccount()

	results := []gdomain.Result{
		{
			Campaign: &gdomain.Campaign{
				ID:        "111",
				Name:      "Campanha Search",
				Status:    "ENABLED",
				StartDate: "2024-03-01",
			},
			CampaignBudget: &gdomain.CampaignBudget{AmountMicros: "2500000"},
			AdGroup: &gdomain.AdGroup{
				ID:           "222",
				Name:         "Grupo A",
				Status:       "ENABLED",
				CPCBidMicros: "1500000",
			},
			AdGroupAd: &gdomain.AdGroupAd{
				Status: "ENABLED",
				Ad: &gdomain.Ad{
					ID:        "333",
					Name:      "Anúncio Search",
					Type:      "RESPONSIVE_SEARCH_AD",
					FinalURLs: []string{"https://example.com"},
					ResponsiveSearchAd: &gdomain.ResponsiveSearchAd{
						Headlines:    []gdomain.AdTextAsset{{Text: "Promoção de óculos"}},
						Descriptions: []gdomain.AdTextAsset{{Text: "Frete grátis"}},
					},
				},
			},
		},
	}

	mockClient.EXPECT().
		ExchangeToken(gomock.Any(), account.Credentials).
		Return("access-token", nil)

	mockClient.EXPECT().
		SearchStream(gomock.Any(), account.NativeID, "access-token", "dev-token").
		Return(results, nil)

	states, err := adapter.FetchAll(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, states, 1)

	state := states[0]
	assert.Equal(t, domain.PlatformGoogle, state.Platform)
	assert.Equal(t, "111", state.CampaignID)
	assert.Equal(t, "222", state.AdsetID)
	assert.Equal(t, "333", state.AdID)

	// Micros convertidos para unidade principal
	require.NotNil(t, state.DailyBudget)
	assert.Equal(t, 2.5, *state.DailyBudget)
	require.NotNil(t, state.BidAmount)
	assert.Equal(t, 1.5, *state.BidAmount)

	require.NotNil(t, state.AdTitle)
	assert.Equal(t, "Promoção de óculos", *state.AdTitle)
	require.NotNil(t, state.LinkURL)
	assert.Equal(t, "https://example.com", *state.LinkURL)
	require.NotNil(t, state.StartTime)
}

func TestAdapter_FetchAll_TrocaDeTokenFalhaViraAuthError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient, "")
	account := testAccount()

	mockClient.EXPECT().
		ExchangeToken(gomock.Any(), account.Credentials).
		Return("", &integrator.TransportError{Platform: domain.PlatformGoogle, StatusCode: 400})

	states, err := adapter.FetchAll(context.Background(), account)
	assert.Nil(t, states)
	assert.ErrorAs(t, err, new(*integrator.AuthError))
}

func TestAdapter_FetchAll_ResultadoSemCampanhaEhIgnorado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient, "dev")
	account := testAccount()

	results := []gdomain.Result{
		{AdGroup: &gdomain.AdGroup{ID: "999"}},
		{Campaign: &gdomain.Campaign{ID: "111", Name: "Válida"}},
	}

	mockClient.EXPECT().
		ExchangeToken(gomock.Any(), account.Credentials).
		Return("access-token", nil)

	mockClient.EXPECT().
		SearchStream(gomock.Any(), account.NativeID, "access-token", "dev-token").
		Return(results, nil)

	states, err := adapter.FetchAll(context.Background(), account)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "111", states[0].CampaignID)
}

func TestAdapter_UsaDeveloperTokenDeFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	adapter := NewAdapter(mockClient, "fallback-dev-token")
	account := testAccount()
	account.Credentials.DeveloperToken = ""

	mockClient.EXPECT().
		ExchangeToken(gomock.Any(), account.Credentials).
		Return("access-token", nil)

	mockClient.EXPECT().
		SearchStream(gomock.Any(), account.NativeID, "access-token", "fallback-dev-token").
		Return([]gdomain.Result{}, nil)

	states, err := adapter.FetchAll(context.Background(), account)
	require.NoError(t, err)
	assert.Empty(t, states)
}

func TestApplyCreative_ResponsiveDisplayAd(t *testing.T) {
	state := &domain.AdState{}

	applyCreative(state, &gdomain.Ad{
		ResponsiveDisplayAd: &gdomain.ResponsiveDisplayAd{
			Headlines:        []gdomain.AdTextAsset{{Text: "Headline principal"}},
			Descriptions:     []gdomain.AdTextAsset{{Text: "Descrição display"}},
			CallToActionText: "Compre já",
			MarketingImages:  []gdomain.AdImageAsset{{URL: "https://img.example.com/1.png"}},
		},
	})

	require.NotNil(t, state.AdTitle)
	assert.Equal(t, "Headline principal", *state.AdTitle)
	require.NotNil(t, state.CallToAction)
	assert.Equal(t, "Compre já", *state.CallToAction)
	require.NotNil(t, state.ImageURL)
	assert.Equal(t, "https://img.example.com/1.png", *state.ImageURL)
}
