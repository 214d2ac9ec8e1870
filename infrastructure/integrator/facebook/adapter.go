package facebook

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	fbdomain "github.com/vfg2006/ad-state-sync/infrastructure/integrator/facebook/domain"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/facebook/fbclient"
	"github.com/vfg2006/ad-state-sync/internal/domain"
	"github.com/vfg2006/ad-state-sync/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Adapter normaliza a árvore de campanhas do Graph API para registros
// AdState. Valores monetários chegam em centavos e são divididos por 100.
type Adapter struct {
	client fbclient.Client
}

func NewAdapter(client fbclient.Client) *Adapter {
	return &Adapter{
		client: client,
	}
}

func (a *Adapter) Platform() domain.Platform {
	return domain.PlatformFacebook
}

func (a *Adapter) ValidateCredentials(ctx context.Context, account *domain.AdsAccount) error {
	if err := a.client.CheckToken(ctx, account.Credentials.AccessToken); err != nil {
		return &integrator.AuthError{
			Platform: domain.PlatformFacebook,
			Reason:   err.Error(),
		}
	}

	return nil
}

func (a *Adapter) FetchAll(ctx context.Context, account *domain.AdsAccount) ([]*domain.AdState, error) {
	campaigns, err := a.client.FetchCampaignTree(ctx, account.NativeID, account.Credentials.AccessToken)
	if err != nil {
		return nil, err
	}

	syncedAt := time.Now().UTC()
	states := make([]*domain.AdState, 0, len(campaigns))

	for i := range campaigns {
		states = append(states, a.normalizeCampaign(account, &campaigns[i], syncedAt)...)
	}

	return states, nil
}

func (a *Adapter) normalizeCampaign(account *domain.AdsAccount, campaign *fbdomain.Campaign, syncedAt time.Time) []*domain.AdState {
	base := domain.AdState{
		Platform:                domain.PlatformFacebook,
		AdsAccountID:            account.ID,
		CampaignID:              campaign.ID,
		CampaignName:            campaign.Name,
		CampaignEffectiveStatus: campaign.EffectiveStatus,
		DailyBudget:             utils.NormalizeMinorUnits(campaign.DailyBudget, utils.CentsPerUnit),
		LifetimeBudget:          utils.NormalizeMinorUnits(campaign.LifetimeBudget, utils.CentsPerUnit),
		BudgetRemaining:         utils.NormalizeMinorUnits(campaign.BudgetRemaining, utils.CentsPerUnit),
		BidStrategy:             stringPtr(campaign.BidStrategy),
		StartTime:               utils.ParseTimestamp(campaign.StartTime),
		StopTime:                utils.ParseTimestamp(campaign.StopTime),
		SyncedAt:                syncedAt,
		SyncStatus:              domain.SyncStatusSynced,
		CampaignRawData:         marshalRaw(campaign),
	}

	if campaign.Adsets == nil || len(campaign.Adsets.Data) == 0 {
		record := base
		return []*domain.AdState{&record}
	}

	if len(campaign.Adsets.Data) >= fbclient.NestedPageSize {
		// Limite aceito de completude: coleções aninhadas não são paginadas.
		logrus.WithFields(logrus.Fields{
			"account_id":  account.ID,
			"campaign_id": campaign.ID,
			"limit":       fbclient.NestedPageSize,
		}).Warn("sync: facebook nested adsets collection hit page size limit, data may be incomplete")
	}

	states := make([]*domain.AdState, 0, len(campaign.Adsets.Data))
	for i := range campaign.Adsets.Data {
		states = append(states, a.normalizeAdset(account, base, &campaign.Adsets.Data[i])...)
	}

	return states
}

func (a *Adapter) normalizeAdset(account *domain.AdsAccount, base domain.AdState, adset *fbdomain.Adset) []*domain.AdState {
	base.AdsetID = adset.ID
	base.AdsetName = adset.Name
	base.AdsetEffectiveStatus = adset.EffectiveStatus
	base.BidAmount = utils.NormalizeMinorUnits(adset.BidAmount, utils.CentsPerUnit)
	base.OptimizationGoal = stringPtr(adset.OptimizationGoal)
	base.BillingEvent = stringPtr(adset.BillingEvent)
	base.AdsetRawData = marshalRaw(adset)

	// Orçamento e estratégia do adset têm precedência quando presentes
	// (campanhas com CBO desligado definem orçamento no adset).
	if budget := utils.NormalizeMinorUnits(adset.DailyBudget, utils.CentsPerUnit); budget != nil {
		base.DailyBudget = budget
	}
	if budget := utils.NormalizeMinorUnits(adset.LifetimeBudget, utils.CentsPerUnit); budget != nil {
		base.LifetimeBudget = budget
	}
	if remaining := utils.NormalizeMinorUnits(adset.BudgetRemaining, utils.CentsPerUnit); remaining != nil {
		base.BudgetRemaining = remaining
	}
	if adset.BidStrategy != "" {
		base.BidStrategy = stringPtr(adset.BidStrategy)
	}
	if start := utils.ParseTimestamp(adset.StartTime); start != nil {
		base.StartTime = start
	}
	if end := utils.ParseTimestamp(adset.EndTime); end != nil {
		base.StopTime = end
	}

	if adset.Ads == nil || len(adset.Ads.Data) == 0 {
		record := base
		return []*domain.AdState{&record}
	}

	if len(adset.Ads.Data) >= fbclient.NestedPageSize {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"adset_id":   adset.ID,
			"limit":      fbclient.NestedPageSize,
		}).Warn("sync: facebook nested ads collection hit page size limit, data may be incomplete")
	}

	states := make([]*domain.AdState, 0, len(adset.Ads.Data))
	for i := range adset.Ads.Data {
		ad := &adset.Ads.Data[i]

		record := base
		record.AdID = ad.ID
		record.AdName = ad.Name
		record.AdEffectiveStatus = ad.EffectiveStatus
		record.AdRawData = marshalRaw(ad)

		applyCreative(&record, ad.Creative)

		states = append(states, &record)
	}

	return states
}

// applyCreative preenche os campos de criativo usando os campos de nível
// superior e caindo para object_story_spec.link_data quando ausentes.
func applyCreative(record *domain.AdState, creative *fbdomain.Creative) {
	if creative == nil {
		return
	}

	record.CreativeID = stringPtr(creative.ID)
	record.CreativeName = stringPtr(creative.Name)
	record.AdTitle = stringPtr(creative.Title)
	record.AdBody = stringPtr(creative.Body)
	record.ImageURL = stringPtr(creative.ImageURL)
	record.ThumbnailURL = stringPtr(creative.ThumbnailURL)
	record.CallToAction = stringPtr(creative.CallToActionType)
	record.CreativeRawData = marshalRaw(creative)

	if creative.VideoID != "" {
		videoURL := "https://www.facebook.com/" + creative.VideoID
		record.VideoURL = &videoURL
	}

	spec := creative.ObjectStorySpec
	if spec == nil {
		return
	}

	if linkData := spec.LinkData; linkData != nil {
		if record.AdTitle == nil {
			record.AdTitle = stringPtr(linkData.Name)
		}
		if record.AdBody == nil {
			record.AdBody = stringPtr(linkData.Message)
		}
		record.AdDescription = stringPtr(linkData.Description)
		record.LinkURL = stringPtr(linkData.Link)
		if record.ImageURL == nil {
			record.ImageURL = stringPtr(linkData.Picture)
		}
		if record.CallToAction == nil && linkData.CallToAction != nil {
			record.CallToAction = stringPtr(linkData.CallToAction.Type)
		}
	}

	if videoData := spec.VideoData; videoData != nil {
		if record.AdTitle == nil {
			record.AdTitle = stringPtr(videoData.Title)
		}
		if record.AdBody == nil {
			record.AdBody = stringPtr(videoData.Message)
		}
		if record.ImageURL == nil {
			record.ImageURL = stringPtr(videoData.ImageURL)
		}
		if record.CallToAction == nil && videoData.CallToAction != nil {
			record.CallToAction = stringPtr(videoData.CallToAction.Type)
		}
	}
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
