package tiktok

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	tkdomain "github.com/vfg2006/ad-state-sync/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/tiktok/tkclient"
	"github.com/vfg2006/ad-state-sync/internal/domain"
	"github.com/vfg2006/ad-state-sync/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Adapter percorre a árvore campanha -> grupo -> anúncio em chamadas
// sequenciais, já que a API do TikTok não tem expansão aninhada. Os valores
// monetários já vêm em unidades da moeda, sem conversão de subunidade.
type Adapter struct {
	client tkclient.Client
}

func NewAdapter(client tkclient.Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformTikTok
}

func (a *Adapter) ValidateCredentials(ctx context.Context, account *domain.AdsAccount) error {
	advertiserID := a.advertiserID(account)

	if _, err := a.client.GetAdvertiserInfo(ctx, advertiserID, account.Credentials.AccessToken); err != nil {
		if protocolErr, ok := err.(*integrator.ProtocolError); ok {
			return &integrator.AuthError{
				Platform: domain.PlatformTikTok,
				Reason:   protocolErr.Message,
			}
		}
		return err
	}

	return nil
}

func (a *Adapter) FetchAll(ctx context.Context, account *domain.AdsAccount) ([]*domain.AdState, error) {
	advertiserID := a.advertiserID(account)
	accessToken := account.Credentials.AccessToken

	campaigns, err := a.client.ListCampaigns(ctx, advertiserID, accessToken)
	if err != nil {
		return nil, err
	}

	syncedAt := time.Now().UTC()
	states := make([]*domain.AdState, 0)

	for i := range campaigns {
		campaign := &campaigns[i]

		adGroups, err := a.client.ListAdGroups(ctx, advertiserID, campaign.CampaignID, accessToken)
		if err != nil {
			return nil, err
		}

		for j := range adGroups {
			adGroup := &adGroups[j]

			ads, err := a.client.ListAds(ctx, advertiserID, adGroup.AdGroupID, accessToken)
			if err != nil {
				return nil, err
			}

			for k := range ads {
				ad := &ads[k]

				state := a.normalizeAd(account, campaign, adGroup, ad, syncedAt)

				// Só busca o criativo quando o anúncio não traz os campos
				// de mídia inline, poupando uma chamada por anúncio.
				if needsCreative(ad) {
					creative, err := a.client.GetCreative(ctx, advertiserID, ad.AdID, accessToken)
					if err != nil {
						return nil, err
					}
					applyCreative(state, creative)
				}

				states = append(states, state)
			}
		}
	}

	logrus.WithFields(logrus.Fields{
		"advertiser_id": advertiserID,
		"campaigns":     len(campaigns),
		"ad_states":     len(states),
	}).Debug("sync: tiktok tree walk completed")

	return states, nil
}

func (a *Adapter) advertiserID(account *domain.AdsAccount) string {
	if account.Credentials.AdvertiserID != "" {
		return account.Credentials.AdvertiserID
	}
	return account.NativeID
}

func (a *Adapter) normalizeAd(
	account *domain.AdsAccount,
	campaign *tkdomain.Campaign,
	adGroup *tkdomain.AdGroup,
	ad *tkdomain.Ad,
	syncedAt time.Time,
) *domain.AdState {
	state := &domain.AdState{
		Platform:                domain.PlatformTikTok,
		AdsAccountID:            account.ID,
		CampaignID:              campaign.CampaignID,
		AdsetID:                 adGroup.AdGroupID,
		AdID:                    ad.AdID,
		CampaignName:            campaign.CampaignName,
		AdsetName:               adGroup.AdGroupName,
		AdName:                  ad.AdName,
		CampaignEffectiveStatus: campaign.OperationStatus,
		AdsetEffectiveStatus:    adGroup.OperationStatus,
		AdEffectiveStatus:       ad.OperationStatus,
		StartTime:               utils.ParseTimestamp(adGroup.ScheduleStartTime),
		StopTime:                utils.ParseTimestamp(adGroup.ScheduleEndTime),
		AdBody:                  stringPtr(ad.AdText),
		CallToAction:            stringPtr(ad.CallToAction),
		LinkURL:                 stringPtr(ad.LandingPageURL),
		SyncedAt:                syncedAt,
		SyncStatus:              domain.SyncStatusSynced,
		CampaignRawData:         marshalRaw(campaign),
		AdsetRawData:            marshalRaw(adGroup),
		AdRawData:               marshalRaw(ad),
	}

	// O orçamento do grupo de anúncios prevalece sobre o da campanha.
	if adGroup.Budget > 0 {
		state.DailyBudget = utils.NormalizeMinorInt(adGroup.Budget, utils.NoMinorUnit)
	} else if campaign.Budget > 0 {
		state.DailyBudget = utils.NormalizeMinorInt(campaign.Budget, utils.NoMinorUnit)
	}

	if adGroup.BidPrice > 0 {
		state.BidAmount = utils.NormalizeMinorInt(adGroup.BidPrice, utils.NoMinorUnit)
	}

	if adGroup.BidType != "" {
		state.BidStrategy = stringPtr(adGroup.BidType)
	}

	state.OptimizationGoal = stringPtr(adGroup.OptimizationGoal)
	state.BillingEvent = stringPtr(adGroup.BillingEvent)

	return state
}

// needsCreative indica se o anúncio precisa de uma chamada extra de criativo:
// sem texto e sem mídia inline, os campos só existem no recurso de criativo.
func needsCreative(ad *tkdomain.Ad) bool {
	return ad.AdText == "" && len(ad.ImageIDs) == 0 && ad.VideoID == ""
}

func applyCreative(state *domain.AdState, creative *tkdomain.Creative) {
	if creative == nil {
		return
	}

	state.AdTitle = stringPtr(creative.Title)
	if state.AdTitle == nil {
		state.AdTitle = stringPtr(creative.CreativeName)
	}
	state.ImageURL = stringPtr(creative.ImageURL)
	state.VideoURL = stringPtr(creative.VideoURL)
	state.ThumbnailURL = stringPtr(creative.ThumbnailURL)
	state.CreativeRawData = marshalRaw(creative)
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
