package tkdomain

import (
	"encoding/json"
)

// Envelope é o envoltório de toda resposta do TikTok Business API. Um HTTP
// 200 com code != 0 é erro de protocolo, não sucesso.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

const CodeOK = 0

type PageInfo struct {
	Page        int `json:"page"`
	PageSize    int `json:"page_size"`
	TotalNumber int `json:"total_number"`
	TotalPage   int `json:"total_page"`
}

type CampaignList struct {
	List     []Campaign `json:"list"`
	PageInfo PageInfo   `json:"page_info"`
}

type Campaign struct {
	CampaignID      string  `json:"campaign_id"`
	CampaignName    string  `json:"campaign_name"`
	OperationStatus string  `json:"operation_status"`
	SecondaryStatus string  `json:"secondary_status"`
	Budget          float64 `json:"budget"`
	BudgetMode      string  `json:"budget_mode"`
	CreateTime      string  `json:"create_time"`
}

type AdGroupList struct {
	List     []AdGroup `json:"list"`
	PageInfo PageInfo  `json:"page_info"`
}

type AdGroup struct {
	AdGroupID         string  `json:"adgroup_id"`
	AdGroupName       string  `json:"adgroup_name"`
	CampaignID        string  `json:"campaign_id"`
	OperationStatus   string  `json:"operation_status"`
	SecondaryStatus   string  `json:"secondary_status"`
	Budget            float64 `json:"budget"`
	BudgetMode        string  `json:"budget_mode"`
	BidPrice          float64 `json:"bid_price"`
	BidType           string  `json:"bid_type"`
	OptimizationGoal  string  `json:"optimization_goal"`
	BillingEvent      string  `json:"billing_event"`
	ScheduleStartTime string  `json:"schedule_start_time"`
	ScheduleEndTime   string  `json:"schedule_end_time"`
}

type AdList struct {
	List     []Ad     `json:"list"`
	PageInfo PageInfo `json:"page_info"`
}

type Ad struct {
	AdID            string   `json:"ad_id"`
	AdName          string   `json:"ad_name"`
	AdGroupID       string   `json:"adgroup_id"`
	CampaignID      string   `json:"campaign_id"`
	OperationStatus string   `json:"operation_status"`
	SecondaryStatus string   `json:"secondary_status"`
	AdText          string   `json:"ad_text"`
	CallToAction    string   `json:"call_to_action"`
	LandingPageURL  string   `json:"landing_page_url"`
	ImageIDs        []string `json:"image_ids"`
	VideoID         string   `json:"video_id"`
}

type CreativeList struct {
	List     []Creative `json:"list"`
	PageInfo PageInfo   `json:"page_info"`
}

type Creative struct {
	CreativeID   string `json:"creative_id"`
	CreativeName string `json:"creative_name"`
	Title        string `json:"title"`
	ImageURL     string `json:"image_url"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type AdvertiserInfo struct {
	AdvertiserID   string `json:"advertiser_id"`
	AdvertiserName string `json:"advertiser_name"`
	Status         string `json:"status"`
}

type AdvertiserInfoList struct {
	List []AdvertiserInfo `json:"list"`
}
