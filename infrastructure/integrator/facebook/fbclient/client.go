package fbclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	fbdomain "github.com/vfg2006/ad-state-sync/infrastructure/integrator/facebook/domain"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/httpfetch"
)

// NestedPageSize é o limite fixo das coleções aninhadas (adsets/ads). O Graph
// API não pagina coleções expandidas; acima disso os dados ficam incompletos.
const NestedPageSize = 100

const campaignPageSize = 100

// campaignTreeFields é a query de expansão de campos que traz a árvore
// campanha→adset→ad→criativo inteira em uma única travessia paginada.
var campaignTreeFields = fmt.Sprintf(
	"id,name,effective_status,daily_budget,lifetime_budget,budget_remaining,bid_strategy,start_time,stop_time,"+
		"adsets.limit(%d){id,name,effective_status,daily_budget,lifetime_budget,budget_remaining,bid_amount,bid_strategy,"+
		"optimization_goal,billing_event,start_time,end_time,"+
		"ads.limit(%d){id,name,effective_status,creative{id,name,title,body,image_url,thumbnail_url,video_id,call_to_action_type,object_story_spec}}}",
	NestedPageSize, NestedPageSize,
)

type Client interface {
	CheckToken(ctx context.Context, accessToken string) error
	FetchCampaignTree(ctx context.Context, accountNativeID, accessToken string) ([]fbdomain.Campaign, error)
}

type FacebookClient struct {
	baseURL string
	fetcher *httpfetch.Fetcher
}

func NewClient(baseURL string, fetcher *httpfetch.Fetcher) Client {
	return &FacebookClient{
		baseURL: baseURL,
		fetcher: fetcher,
	}
}

// CheckToken valida o token consultando o endpoint /me.
func (c *FacebookClient) CheckToken(ctx context.Context, accessToken string) error {
	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/me?%s", c.baseURL, params.Encode())

	var me fbdomain.MeResponse
	return c.fetcher.GetJSON(ctx, requestURL, nil, &me)
}

// FetchCampaignTree segue o cursor paging.next até o fim, acumulando todos os
// nós de campanha antes de qualquer descida nas coleções aninhadas.
func (c *FacebookClient) FetchCampaignTree(ctx context.Context, accountNativeID, accessToken string) ([]fbdomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", campaignTreeFields)
	params.Add("limit", fmt.Sprintf("%d", campaignPageSize))
	params.Add("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/act_%s/campaigns?%s", c.baseURL, accountNativeID, params.Encode())

	campaigns := make([]fbdomain.Campaign, 0)
	pages := 0

	for requestURL != "" {
		var response fbdomain.CampaignsResponse
		if err := c.fetcher.GetJSON(ctx, requestURL, nil, &response); err != nil {
			return nil, err
		}

		campaigns = append(campaigns, response.Data...)
		pages++

		requestURL = response.Paging.Next
	}

	logrus.WithFields(logrus.Fields{
		"account_native_id": accountNativeID,
		"campaigns":         len(campaigns),
		"pages":             pages,
	}).Debug("sync: facebook campaign tree fetched")

	return campaigns, nil
}
