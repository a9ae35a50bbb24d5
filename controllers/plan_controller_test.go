package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
)

func TestGetPlans_SortedByTotalPrice(t *testing.T) {
	require.NoError(t, config.DB.Where("1 = 1").Delete(&models.SubscriptionPlan{}).Error)

	// Base price order and total price order deliberately disagree:
	// the cheaper base carries the higher tax.
	plans := []models.SubscriptionPlan{
		{Name: "Gold", BasePrice: 1000, TaxPercent: 18, DurationMonths: 12},
		{Name: "Silver", BasePrice: 1100, TaxPercent: 0, DurationMonths: 12},
		{Name: "Bronze", BasePrice: 500, TaxPercent: 18, DurationMonths: 6},
	}
	for i := range plans {
		require.NoError(t, config.DB.Create(&plans[i]).Error)
	}

	router := gin.New()
	router.GET("/v1/plans", GetPlans)

	req := httptest.NewRequest(http.MethodGet, "/v1/plans", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Plans []struct {
				Name       string  `json:"name"`
				TotalPrice float64 `json:"total_price"`
			} `json:"plans"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Plans, 3)

	// Bronze 590, Silver 1100, Gold 1180
	assert.Equal(t, "Bronze", resp.Data.Plans[0].Name)
	assert.Equal(t, "Silver", resp.Data.Plans[1].Name)
	assert.Equal(t, "Gold", resp.Data.Plans[2].Name)

	assert.Equal(t, float64(590), resp.Data.Plans[0].TotalPrice)
	assert.Equal(t, float64(1180), resp.Data.Plans[2].TotalPrice)
}

func TestSubscriptionPlanTotalPrice(t *testing.T) {
	plan := models.SubscriptionPlan{BasePrice: 999, TaxPercent: 18}
	// 999 * 1.18 = 1178.82, rounded to the nearest rupee
	assert.Equal(t, float64(1179), plan.TotalPrice())

	flat := models.SubscriptionPlan{BasePrice: 500}
	assert.Equal(t, float64(500), flat.TotalPrice())
}
