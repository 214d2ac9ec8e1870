package gdomain

// Estruturas tipadas da resposta REST do googleAds:searchStream. A resposta é
// uma lista de lotes, cada um com sua própria lista results; o adapter achata
// todos os lotes antes de normalizar.

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type SearchStreamBatch struct {
	Results       []Result `json:"results"`
	FieldMask     string   `json:"fieldMask"`
	RequestID     string   `json:"requestId"`
	QueryDuration string   `json:"queryResourceConsumption"`
}

type Result struct {
	Campaign       *Campaign       `json:"campaign"`
	CampaignBudget *CampaignBudget `json:"campaignBudget"`
	AdGroup        *AdGroup        `json:"adGroup"`
	AdGroupAd      *AdGroupAd      `json:"adGroupAd"`
}

type Campaign struct {
	ResourceName        string `json:"resourceName"`
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Status              string `json:"status"`
	BiddingStrategyType string `json:"biddingStrategyType"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
}

type CampaignBudget struct {
	ResourceName string `json:"resourceName"`
	AmountMicros string `json:"amountMicros"`
}

type AdGroup struct {
	ResourceName string `json:"resourceName"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	CPCBidMicros string `json:"cpcBidMicros"`
	Type         string `json:"type"`
}

type AdGroupAd struct {
	ResourceName string `json:"resourceName"`
	Status       string `json:"status"`
	Ad           *Ad    `json:"ad"`
}

type Ad struct {
	ResourceName        string               `json:"resourceName"`
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Type                string               `json:"type"`
	FinalURLs           []string             `json:"finalUrls"`
	ResponsiveDisplayAd *ResponsiveDisplayAd `json:"responsiveDisplayAd"`
	AppAd               *AppAd               `json:"appAd"`
	ResponsiveSearchAd  *ResponsiveSearchAd  `json:"responsiveSearchAd"`
}

type AdTextAsset struct {
	Text string `json:"text"`
}

type AdImageAsset struct {
	Asset string `json:"asset"`
	URL   string `json:"url"`
}

type AdVideoAsset struct {
	Asset string `json:"asset"`
}

type ResponsiveDisplayAd struct {
	Headlines        []AdTextAsset  `json:"headlines"`
	LongHeadline     *AdTextAsset   `json:"longHeadline"`
	Descriptions     []AdTextAsset  `json:"descriptions"`
	MarketingImages  []AdImageAsset `json:"marketingImages"`
	YoutubeVideos    []AdVideoAsset `json:"youtubeVideos"`
	BusinessName     string         `json:"businessName"`
	CallToActionText string         `json:"callToActionText"`
}

type AppAd struct {
	Headlines     []AdTextAsset  `json:"headlines"`
	Descriptions  []AdTextAsset  `json:"descriptions"`
	Images        []AdImageAsset `json:"images"`
	YoutubeVideos []AdVideoAsset `json:"youtubeVideos"`
}

type ResponsiveSearchAd struct {
	Headlines    []AdTextAsset `json:"headlines"`
	Descriptions []AdTextAsset `json:"descriptions"`
	Path1        string        `json:"path1"`
	Path2        string        `json:"path2"`
}
