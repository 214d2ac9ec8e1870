package domain

import (
	"encoding/json"
	"time"
)

type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformGoogle   Platform = "google"
	PlatformTikTok   Platform = "tiktok"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformFacebook, PlatformGoogle, PlatformTikTok:
		return true
	}
	return false
}

type SyncStatus string

const (
	SyncStatusSynced SyncStatus = "synced"
	SyncStatusError  SyncStatus = "error"
)

// AdStateKey é a chave composta de um AdState. AdsetID e AdID podem ser
// vazios para registros que só existem no nível de campanha.
type AdStateKey struct {
	Platform     Platform `json:"platform"`
	AdsAccountID string   `json:"ads_account_id"`
	CampaignID   string   `json:"campaign_id"`
	AdsetID      string   `json:"adset_id"`
	AdID         string   `json:"ad_id"`
}

// AdState é o snapshot normalizado de um anúncio (e seus pais campanha/adset)
// em uma plataforma. Valores monetários sempre em unidade monetária principal.
type AdState struct {
	Platform     Platform `json:"platform"`
	AdsAccountID string   `json:"ads_account_id"`
	CampaignID   string   `json:"campaign_id"`
	AdsetID      string   `json:"adset_id"`
	AdID         string   `json:"ad_id"`

	CampaignName            string `json:"campaign_name"`
	AdsetName               string `json:"adset_name"`
	AdName                  string `json:"ad_name"`
	CampaignEffectiveStatus string `json:"campaign_effective_status"`
	AdsetEffectiveStatus    string `json:"adset_effective_status"`
	AdEffectiveStatus       string `json:"ad_effective_status"`

	DailyBudget      *float64 `json:"daily_budget"`
	LifetimeBudget   *float64 `json:"lifetime_budget"`
	BidAmount        *float64 `json:"bid_amount"`
	BudgetRemaining  *float64 `json:"budget_remaining"`
	BidStrategy      *string  `json:"bid_strategy"`
	OptimizationGoal *string  `json:"optimization_goal"`
	BillingEvent     *string  `json:"billing_event"`

	StartTime *time.Time `json:"start_time"`
	StopTime  *time.Time `json:"stop_time"`

	CreativeID    *string `json:"creative_id"`
	CreativeName  *string `json:"creative_name"`
	ImageURL      *string `json:"image_url"`
	VideoURL      *string `json:"video_url"`
	ThumbnailURL  *string `json:"thumbnail_url"`
	AdTitle       *string `json:"ad_title"`
	AdBody        *string `json:"ad_body"`
	AdDescription *string `json:"ad_description"`
	CallToAction  *string `json:"call_to_action"`
	LinkURL       *string `json:"link_url"`

	SyncedAt   time.Time  `json:"synced_at"`
	SyncStatus SyncStatus `json:"sync_status"`
	SyncError  *string    `json:"sync_error"`

	// Snapshots brutos preservados para auditoria/debug. Nenhuma regra de
	// negócio lê esses campos.
	CampaignRawData json.RawMessage `json:"campaign_raw_data,omitempty"`
	AdsetRawData    json.RawMessage `json:"adset_raw_data,omitempty"`
	AdRawData       json.RawMessage `json:"ad_raw_data,omitempty"`
	CreativeRawData json.RawMessage `json:"creative_raw_data,omitempty"`
}

func (s *AdState) Key() AdStateKey {
	return AdStateKey{
		Platform:     s.Platform,
		AdsAccountID: s.AdsAccountID,
		CampaignID:   s.CampaignID,
		AdsetID:      s.AdsetID,
		AdID:         s.AdID,
	}
}
