package integrationtests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"housing-market/services/market/helpers"

	"github.com/stretchr/testify/require"
)

func price(p int) *int { return &p }

var terracedHouse = helpers.AdvertiseRequest{
	Kind:        "house",
	Address:     "Ginnekenweg 4, Breda",
	LivingArea:  100,
	PriceAsked:  price(300000),
	HousingType: "TERRACED",
	PlotArea:    200,
}

func TestBiddingFlow(t *testing.T) {
	router := SetupTestRouter()
	id := AdvertiseProperty(t, router, terracedHouse)
	bidsURL := fmt.Sprintf("/properties/%s/bids", id)

	offers := []struct {
		request    helpers.PlaceBidRequest
		wantStatus int
	}{
		{helpers.PlaceBidRequest{Name: "Henk", Price: 500000}, http.StatusCreated},
		{helpers.PlaceBidRequest{Name: "Anne", Price: 510000}, http.StatusCreated},
		{helpers.PlaceBidRequest{Name: "Henk", Price: 505000}, http.StatusConflict},
		{helpers.PlaceBidRequest{Name: "Henk", Price: 510000}, http.StatusConflict},
		{helpers.PlaceBidRequest{Name: "Henk", Price: -1}, http.StatusBadRequest},
		{helpers.PlaceBidRequest{Name: "Henk", Price: 0}, http.StatusBadRequest},
	}
	for _, o := range offers {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, bidsURL, o.request)
		require.Equal(t, o.wantStatus, w.Code, "offer %d by %s", o.request.Price, o.request.Name)
	}

	data, w := ExecuteRequestAndParse(t, router, http.MethodGet, bidsURL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	bids := data.([]any)
	require.Len(t, bids, 2)

	first := bids[0].(map[string]any)
	second := bids[1].(map[string]any)
	require.Equal(t, 500000.0, first["price_offered"])
	require.Equal(t, "Henk", first["customer_name"])
	require.Equal(t, 510000.0, second["price_offered"])
	require.Equal(t, "Anne", second["customer_name"])

	_, err := time.Parse(time.RFC3339, second["time_of_bid"].(string))
	require.NoError(t, err)

	data, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/properties/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 2.0, data.(map[string]any)["bid_count"])
	require.Equal(t, 510000.0, data.(map[string]any)["highest_bid"])
}

func TestBidOnUnknownProperty(t *testing.T) {
	router := SetupTestRouter()

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/properties/unknown/bids", helpers.PlaceBidRequest{Name: "Henk", Price: 100})
	require.Equal(t, http.StatusNotFound, w.Code)

	_, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/properties/unknown/bids", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMonthlyCostFollowsInterestRate(t *testing.T) {
	router := SetupTestRouter()
	id := AdvertiseProperty(t, router, terracedHouse)
	costURL := fmt.Sprintf("/properties/%s/monthly-cost", id)

	data, w := ExecuteRequestAndParse(t, router, http.MethodGet, costURL, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1425.0, data.(map[string]any)["estimated_monthly_cost"])

	_, w = ExecuteRequestAndParse(t, router, http.MethodPut, "/settings/interest-rate", `{"interest_rate": 0.05}`)
	require.Equal(t, http.StatusOK, w.Code)

	data, _ = ExecuteRequestAndParse(t, router, http.MethodGet, costURL, nil)
	require.Equal(t, 1675.0, data.(map[string]any)["estimated_monthly_cost"])
	require.Equal(t, 0.05, data.(map[string]any)["interest_rate"])

	_, w = ExecuteRequestAndParse(t, router, http.MethodPut, fmt.Sprintf("/properties/%s/price", id), `{"price_asked": null}`)
	require.Equal(t, http.StatusOK, w.Code)

	data, _ = ExecuteRequestAndParse(t, router, http.MethodGet, costURL, nil)
	require.Nil(t, data.(map[string]any)["estimated_monthly_cost"])
	require.Equal(t, true, data.(map[string]any)["price_on_request"])
}

func TestSearchByPrice(t *testing.T) {
	router := SetupTestRouter()

	AdvertiseProperty(t, router, helpers.AdvertiseRequest{Kind: "garage", Address: "A", PriceAsked: price(30000), HasElectricity: true})
	AdvertiseProperty(t, router, helpers.AdvertiseRequest{Kind: "apartment", Address: "B", LivingArea: 70, PriceAsked: price(250000), PaymentVVE: 120, Floor: 2})
	AdvertiseProperty(t, router, helpers.AdvertiseRequest{Kind: "house", Address: "C", LivingArea: 150, HousingType: "DETACHED", PlotArea: 600})
	AdvertiseProperty(t, router, terracedHouse)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "unbounded", query: "", want: []string{"A", "B", terracedHouse.Address}},
		{name: "range", query: "?min_price=100000&max_price=300000", want: []string{"B", terracedHouse.Address}},
		{name: "only_min", query: "?min_price=260000", want: []string{terracedHouse.Address}},
		{name: "empty", query: "?max_price=1000", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/properties"+tc.query, nil)
			require.Equal(t, http.StatusOK, w.Code)

			got := []string{}
			for _, p := range data.([]any) {
				got = append(got, p.(map[string]any)["address"].(string))
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestPictures(t *testing.T) {
	router := SetupTestRouter()
	id := AdvertiseProperty(t, router, terracedHouse)
	picURL := fmt.Sprintf("/properties/%s/pictures", id)
	pic := helpers.PictureRequest{Description: "front", ImageURL: "https://img.example.com/front.jpg"}

	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, picURL, pic)
	require.Equal(t, http.StatusCreated, w.Code)

	data, _ := ExecuteRequestAndParse(t, router, http.MethodGet, "/properties/"+id, nil)
	require.Len(t, data.(map[string]any)["pictures"], 1)

	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, picURL, pic)
	require.Equal(t, http.StatusOK, w.Code)
	_, w = ExecuteRequestAndParse(t, router, http.MethodDelete, picURL, pic)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router := SetupTestRouter()
	id := AdvertiseProperty(t, router, terracedHouse)
	ExecuteRequestAndParse(t, router, http.MethodPost, fmt.Sprintf("/properties/%s/bids", id), helpers.PlaceBidRequest{Name: "Henk", Price: 1})

	w := ExecuteRequest(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `housing_market_bids_submitted_total{outcome="accepted"} 1`)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
