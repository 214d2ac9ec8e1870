package tkclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/httpfetch"
	tkdomain "github.com/vfg2006/ad-state-sync/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/ad-state-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const pageSize = 100

type Client interface {
	GetAdvertiserInfo(ctx context.Context, advertiserID, accessToken string) (*tkdomain.AdvertiserInfo, error)
	ListCampaigns(ctx context.Context, advertiserID, accessToken string) ([]tkdomain.Campaign, error)
	ListAdGroups(ctx context.Context, advertiserID, campaignID, accessToken string) ([]tkdomain.AdGroup, error)
	ListAds(ctx context.Context, advertiserID, adGroupID, accessToken string) ([]tkdomain.Ad, error)
	GetCreative(ctx context.Context, advertiserID, adID, accessToken string) (*tkdomain.Creative, error)
}

type TikTokClient struct {
	baseURL string
	fetcher *httpfetch.Fetcher
}

func NewClient(baseURL string, fetcher *httpfetch.Fetcher) Client {
	return &TikTokClient{
		baseURL: baseURL,
		fetcher: fetcher,
	}
}

// getData faz o GET, valida o envelope {code, message, data} e decodifica o
// campo data em out. code != 0 dentro de um HTTP 200 vira ProtocolError.
func (c *TikTokClient) getData(ctx context.Context, path string, params url.Values, accessToken string, out interface{}) error {
	requestURL := fmt.Sprintf("%s/%s/?%s", c.baseURL, path, params.Encode())

	headers := map[string]string{
		"Access-Token": accessToken,
	}

	var envelope tkdomain.Envelope
	if err := c.fetcher.GetJSON(ctx, requestURL, headers, &envelope); err != nil {
		return err
	}

	if envelope.Code != tkdomain.CodeOK {
		return &integrator.ProtocolError{
			Platform: domain.PlatformTikTok,
			Code:     envelope.Code,
			Message:  envelope.Message,
		}
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &integrator.TransportError{Platform: domain.PlatformTikTok, URL: requestURL, Err: err}
	}

	return nil
}

func (c *TikTokClient) GetAdvertiserInfo(ctx context.Context, advertiserID, accessToken string) (*tkdomain.AdvertiserInfo, error) {
	params := url.Values{}
	params.Add("advertiser_ids", fmt.Sprintf(`["%s"]`, advertiserID))

	var data tkdomain.AdvertiserInfoList
	if err := c.getData(ctx, "advertiser/info", params, accessToken, &data); err != nil {
		return nil, err
	}

	if len(data.List) == 0 {
		return nil, &integrator.ProtocolError{
			Platform: domain.PlatformTikTok,
			Message:  fmt.Sprintf("anunciante %s não encontrado", advertiserID),
		}
	}

	return &data.List[0], nil
}

func (c *TikTokClient) ListCampaigns(ctx context.Context, advertiserID, accessToken string) ([]tkdomain.Campaign, error) {
	campaigns := make([]tkdomain.Campaign, 0)

	err := c.paginate(ctx, "campaign/get", advertiserID, accessToken, func(data []byte) (tkdomain.PageInfo, error) {
		var page tkdomain.CampaignList
		if err := json.Unmarshal(data, &page); err != nil {
			return tkdomain.PageInfo{}, err
		}
		campaigns = append(campaigns, page.List...)
		return page.PageInfo, nil
	}, nil)
	if err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (c *TikTokClient) ListAdGroups(ctx context.Context, advertiserID, campaignID, accessToken string) ([]tkdomain.AdGroup, error) {
	adGroups := make([]tkdomain.AdGroup, 0)

	filtering := url.Values{}
	filtering.Add("filtering", fmt.Sprintf(`{"campaign_ids":["%s"]}`, campaignID))

	err := c.paginate(ctx, "adgroup/get", advertiserID, accessToken, func(data []byte) (tkdomain.PageInfo, error) {
		var page tkdomain.AdGroupList
		if err := json.Unmarshal(data, &page); err != nil {
			return tkdomain.PageInfo{}, err
		}
		adGroups = append(adGroups, page.List...)
		return page.PageInfo, nil
	}, filtering)
	if err != nil {
		return nil, err
	}

	return adGroups, nil
}

func (c *TikTokClient) ListAds(ctx context.Context, advertiserID, adGroupID, accessToken string) ([]tkdomain.Ad, error) {
	ads := make([]tkdomain.Ad, 0)

	filtering := url.Values{}
	filtering.Add("filtering", fmt.Sprintf(`{"adgroup_ids":["%s"]}`, adGroupID))

	err := c.paginate(ctx, "ad/get", advertiserID, accessToken, func(data []byte) (tkdomain.PageInfo, error) {
		var page tkdomain.AdList
		if err := json.Unmarshal(data, &page); err != nil {
			return tkdomain.PageInfo{}, err
		}
		ads = append(ads, page.List...)
		return page.PageInfo, nil
	}, filtering)
	if err != nil {
		return nil, err
	}

	return ads, nil
}

func (c *TikTokClient) GetCreative(ctx context.Context, advertiserID, adID, accessToken string) (*tkdomain.Creative, error) {
	params := url.Values{}
	params.Add("advertiser_id", advertiserID)
	params.Add("filtering", fmt.Sprintf(`{"ad_ids":["%s"]}`, adID))

	var data tkdomain.CreativeList
	if err := c.getData(ctx, "creative/get", params, accessToken, &data); err != nil {
		return nil, err
	}

	if len(data.List) == 0 {
		return nil, nil
	}

	return &data.List[0], nil
}

// paginate percorre todas as páginas de um endpoint de listagem. O decode de
// cada página fica com o chamador, que devolve o page_info para o loop.
func (c *TikTokClient) paginate(
	ctx context.Context,
	path string,
	advertiserID string,
	accessToken string,
	consume func(data []byte) (tkdomain.PageInfo, error),
	extra url.Values,
) error {
	page := 1

	for {
		params := url.Values{}
		params.Add("advertiser_id", advertiserID)
		params.Add("page", strconv.Itoa(page))
		params.Add("page_size", strconv.Itoa(pageSize))

		for key, values := range extra {
			for _, value := range values {
				params.Add(key, value)
			}
		}

		var raw jsoniter.RawMessage
		if err := c.getData(ctx, path, params, accessToken, &raw); err != nil {
			return err
		}

		pageInfo, err := consume(raw)
		if err != nil {
			return &integrator.TransportError{Platform: domain.PlatformTikTok, URL: path, Err: err}
		}

		if pageInfo.TotalPage == 0 || page >= pageInfo.TotalPage {
			return nil
		}

		page++
	}
}
