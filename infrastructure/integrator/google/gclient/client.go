package gclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	gdomain "github.com/vfg2006/ad-state-sync/infrastructure/integrator/google/domain"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/httpfetch"
	"github.com/vfg2006/ad-state-sync/internal/domain"
)

// adStateQuery é a query GAQL única que traz a árvore inteira como lista
// plana, sem descida manual por níveis.
const adStateQuery = `SELECT
  campaign.id, campaign.name, campaign.status, campaign.bidding_strategy_type,
  campaign.start_date, campaign.end_date,
  campaign_budget.amount_micros,
  ad_group.id, ad_group.name, ad_group.status, ad_group.cpc_bid_micros,
  ad_group_ad.status, ad_group_ad.ad.id, ad_group_ad.ad.name, ad_group_ad.ad.type,
  ad_group_ad.ad.final_urls,
  ad_group_ad.ad.responsive_display_ad.headlines,
  ad_group_ad.ad.responsive_display_ad.long_headline,
  ad_group_ad.ad.responsive_display_ad.descriptions,
  ad_group_ad.ad.responsive_display_ad.marketing_images,
  ad_group_ad.ad.responsive_display_ad.youtube_videos,
  ad_group_ad.ad.app_ad.headlines,
  ad_group_ad.ad.app_ad.descriptions,
  ad_group_ad.ad.app_ad.images,
  ad_group_ad.ad.responsive_search_ad.headlines,
  ad_group_ad.ad.responsive_search_ad.descriptions
FROM ad_group_ad
WHERE ad_group_ad.status != 'REMOVED'
LIMIT 10000`

type Client interface {
	// ExchangeToken troca o refresh token por um access token de curta
	// duração. Falha aqui aborta a sincronização da conta inteira.
	ExchangeToken(ctx context.Context, credentials domain.Credentials) (string, error)
	SearchStream(ctx context.Context, customerID, accessToken, developerToken string) ([]gdomain.Result, error)
}

type GoogleClient struct {
	baseURL       string
	oauthTokenURL string
	fetcher       *httpfetch.Fetcher
}

func NewClient(baseURL, oauthTokenURL string, fetcher *httpfetch.Fetcher) Client {
	return &GoogleClient{
		baseURL:       baseURL,
		oauthTokenURL: oauthTokenURL,
		fetcher:       fetcher,
	}
}

func (c *GoogleClient) ExchangeToken(ctx context.Context, credentials domain.Credentials) (string, error) {
	form := url.Values{}
	form.Add("grant_type", "refresh_token")
	form.Add("client_id", credentials.ClientID)
	form.Add("client_secret", credentials.ClientSecret)
	form.Add("refresh_token", credentials.RefreshToken)

	var tokenResp gdomain.TokenResponse
	if err := c.fetcher.PostForm(ctx, c.oauthTokenURL, form, &tokenResp); err != nil {
		return "", err
	}

	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("token retornado pela API é vazio")
	}

	return tokenResp.AccessToken, nil
}

// SearchStream executa a query GAQL e achata os lotes da resposta em uma
// única lista de results.
func (c *GoogleClient) SearchStream(ctx context.Context, customerID, accessToken, developerToken string) ([]gdomain.Result, error) {
	requestURL := fmt.Sprintf("%s/customers/%s/googleAds:searchStream", c.baseURL, customerID)

	headers := map[string]string{
		"Authorization":   "Bearer " + accessToken,
		"developer-token": developerToken,
	}

	body := map[string]string{"query": adStateQuery}

	var batches []gdomain.SearchStreamBatch
	if err := c.fetcher.PostJSON(ctx, requestURL, headers, body, &batches); err != nil {
		return nil, err
	}

	results := make([]gdomain.Result, 0)
	for _, batch := range batches {
		results = append(results, batch.Results...)
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"batches":     len(batches),
		"results":     len(results),
	}).Debug("sync: google search stream fetched")

	return results, nil
}
