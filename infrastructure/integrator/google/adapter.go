package google

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	gdomain "github.com/vfg2006/ad-state-sync/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/google/gclient"
	"github.com/vfg2006/ad-state-sync/internal/domain"
	"github.com/vfg2006/ad-state-sync/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Adapter normaliza a resposta plana do searchStream para registros AdState.
// Valores monetários chegam em micros e são divididos por 1.000.000.
type Adapter struct {
	client         gclient.Client
	developerToken string
}

func NewAdapter(client gclient.Client, developerToken string) *Adapter {
	return &Adapter{
		client:         client,
		developerToken: developerToken,
	}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformGoogle
}

// ValidateCredentials usa a própria troca de refresh token como verificação
// leve: se a troca falha, o token está inválido ou revogado.
func (a *Adapter) ValidateCredentials(ctx context.Context, account *domain.AdsAccount) error {
	if _, err := a.client.ExchangeToken(ctx, account.Credentials); err != nil {
		return &integrator.AuthError{
			Platform: domain.PlatformGoogle,
			Reason:   err.Error(),
		}
	}

	return nil
}

func (a *Adapter) FetchAll(ctx context.Context, account *domain.AdsAccount) ([]*domain.AdState, error) {
	accessToken, err := a.client.ExchangeToken(ctx, account.Credentials)
	if err != nil {
		return nil, &integrator.AuthError{
			Platform: domain.PlatformGoogle,
			Reason:   err.Error(),
		}
	}

	developerToken := account.Credentials.DeveloperToken
	if developerToken == "" {
		developerToken = a.developerToken
	}

	results, err := a.client.SearchStream(ctx, account.NativeID, accessToken, developerToken)
	if err != nil {
		return nil, err
	}

	syncedAt := time.Now().UTC()
	states := make([]*domain.AdState, 0, len(results))

	for i := range results {
		state := a.normalizeResult(account, &results[i], syncedAt)
		if state != nil {
			states = append(states, state)
		}
	}

	return states, nil
}

func (a *Adapter) normalizeResult(account *domain.AdsAccount, result *gdomain.Result, syncedAt time.Time) *domain.AdState {
	if result.Campaign == nil {
		logrus.WithField("account_id", account.ID).Warn("sync: google result without campaign node, skipping")
		return nil
	}

	state := &domain.AdState{
		Platform:                domain.PlatformGoogle,
		AdsAccountID:            account.ID,
		CampaignID:              result.Campaign.ID,
		CampaignName:            result.Campaign.Name,
		CampaignEffectiveStatus: result.Campaign.Status,
		BidStrategy:             stringPtr(result.Campaign.BiddingStrategyType),
		StartTime:               utils.ParseTimestamp(result.Campaign.StartDate),
		StopTime:                utils.ParseTimestamp(result.Campaign.EndDate),
		SyncedAt:                syncedAt,
		SyncStatus:              domain.SyncStatusSynced,
		CampaignRawData:         marshalRaw(result.Campaign),
	}

	if result.CampaignBudget != nil {
		state.DailyBudget = utils.NormalizeMinorUnits(result.CampaignBudget.AmountMicros, utils.MicrosPerUnit)
	}

	if adGroup := result.AdGroup; adGroup != nil {
		state.AdsetID = adGroup.ID
		state.AdsetName = adGroup.Name
		state.AdsetEffectiveStatus = adGroup.Status
		state.BidAmount = utils.NormalizeMinorUnits(adGroup.CPCBidMicros, utils.MicrosPerUnit)
		state.AdsetRawData = marshalRaw(adGroup)
	}

	if adGroupAd := result.AdGroupAd; adGroupAd != nil && adGroupAd.Ad != nil {
		ad := adGroupAd.Ad
		state.AdID = ad.ID
		state.AdName = ad.Name
		state.AdEffectiveStatus = adGroupAd.Status
		state.AdRawData = marshalRaw(adGroupAd)

		if len(ad.FinalURLs) > 0 {
			state.LinkURL = stringPtr(ad.FinalURLs[0])
		}

		applyCreative(state, ad)
	}

	return state
}

// applyCreative extrai título/descrição/mídia conforme o tipo do anúncio.
// Cada tipo tem caminhos aninhados próprios; o fallback genérico usa só o
// nome do anúncio.
func applyCreative(state *domain.AdState, ad *gdomain.Ad) {
	switch {
	case ad.ResponsiveDisplayAd != nil:
		creative := ad.ResponsiveDisplayAd
		state.AdTitle = firstText(creative.Headlines)
		if state.AdTitle == nil && creative.LongHeadline != nil {
			state.AdTitle = stringPtr(creative.LongHeadline.Text)
		}
		state.AdDescription = firstText(creative.Descriptions)
		state.AdBody = state.AdDescription
		state.CallToAction = stringPtr(creative.CallToActionText)
		if len(creative.MarketingImages) > 0 {
			state.ImageURL = stringPtr(creative.MarketingImages[0].URL)
		}
		if len(creative.YoutubeVideos) > 0 {
			state.VideoURL = stringPtr(creative.YoutubeVideos[0].Asset)
		}
		state.CreativeRawData = marshalRaw(creative)

	case ad.AppAd != nil:
		creative := ad.AppAd
		state.AdTitle = firstText(creative.Headlines)
		state.AdDescription = firstText(creative.Descriptions)
		state.AdBody = state.AdDescription
		if len(creative.Images) > 0 {
			state.ImageURL = stringPtr(creative.Images[0].URL)
		}
		if len(creative.YoutubeVideos) > 0 {
			state.VideoURL = stringPtr(creative.YoutubeVideos[0].Asset)
		}
		state.CreativeRawData = marshalRaw(creative)

	case ad.ResponsiveSearchAd != nil:
		creative := ad.ResponsiveSearchAd
		state.AdTitle = firstText(creative.Headlines)
		state.AdDescription = firstText(creative.Descriptions)
		state.AdBody = state.AdDescription
		state.CreativeRawData = marshalRaw(creative)

	default:
		// Tipo genérico: sem campos de criativo além do nome do anúncio.
		state.AdTitle = stringPtr(ad.Name)
	}
}

func firstText(assets []gdomain.AdTextAsset) *string {
	for _, asset := range assets {
		if asset.Text != "" {
			return stringPtr(asset.Text)
		}
	}
	return nil
}

func marshalRaw(v interface{}) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Warn("sync: failed to marshal raw payload snapshot")
		return nil
	}
	return raw
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
