package fbclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ad-state-sync/infrastructure/integrator"
	"github.com/vfg2006/ad-state-sync/infrastructure/integrator/httpfetch"
	"github.com/vfg2006/ad-state-sync/internal/domain"
)

func newTestClient(serverURL string) Client {
	fetcher := httpfetch.New(domain.PlatformFacebook, 5*time.Second, 100)
	return NewClient(serverURL, fetcher)
}

func TestFetchCampaignTree_SegueCursorAteAUltimaPagina(t *testing.T) {
	const totalCampaigns = 40
	const perPage = 15

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/act_1444838296485002/campaigns", r.URL.Path)
		require.NotEmpty(t, r.URL.Query().Get("access_token"))

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 0 {
			page = 1
		}

		start := (page - 1) * perPage
		end := start + perPage
		if end > totalCampaigns {
			end = totalCampaigns
		}

		body := `{"data":[`
		for i := start; i < end; i++ {
			if i > start {
				body += ","
			}
			body += fmt.Sprintf(`{"id":"cmp-%d","name":"Campanha %d","effective_status":"ACTIVE"}`, i, i)
		}
		body += `],"paging":{"cursors":{"before":"b","after":"a"}`
		if end < totalCampaigns {
			body += fmt.Sprintf(`,"next":"%s/act_1444838296485002/campaigns?page=%d&access_token=token"`, server.URL, page+1)
		}
		body += `}}`

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.FetchCampaignTree(context.Background(), "1444838296485002", "token")
	require.NoError(t, err)

	// Todas as campanhas das três páginas, na ordem em que o cursor as entregou
	require.Len(t, campaigns, totalCampaigns)
	assert.Equal(t, "cmp-0", campaigns[0].ID)
	assert.Equal(t, "cmp-39", campaigns[totalCampaigns-1].ID)
}

func TestFetchCampaignTree_FalhaNoMeioDaPaginacaoDescartaTudo(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"An unknown error occurred","code":1}}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w,
			`{"data":[{"id":"cmp-1"}],"paging":{"next":"%s/act_1444838296485002/campaigns?page=2&access_token=token"}}`,
			server.URL,
		)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.FetchCampaignTree(context.Background(), "1444838296485002", "token")
	assert.Nil(t, campaigns)

	var transportErr *integrator.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusInternalServerError, transportErr.StatusCode)
}

func TestCheckToken_TokenInvalidoRetornaTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","code":190}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.CheckToken(context.Background(), "expired")

	var transportErr *integrator.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusUnauthorized, transportErr.StatusCode)
}
