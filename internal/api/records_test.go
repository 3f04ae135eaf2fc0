package api_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kembang/internal/api"
	"kembang/internal/devserver"
	"kembang/internal/domain"
)

func TestRegisterReturnsUsableToken(t *testing.T) {
	_, anon := newBackend(t)
	ctx := context.Background()

	resp, err := anon.Register(ctx, domain.RegisterRequest{
		Name:                 "Rina",
		Email:                "rina@example.test",
		Password:             "sandi1234",
		PasswordConfirmation: "sandi1234",
		Phone:                "0812",
	})
	require.NoError(t, err)
	me, err := anon.WithToken(resp.Token).Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rina", me.Name)
	assert.Equal(t, "0812", me.Phone)
}

func TestChildCreateUpdateDelete(t *testing.T) {
	_, anon := newBackend(t)
	c := login(t, anon)
	ctx := context.Background()

	weight := 3.1
	kid, err := c.CreateChild(ctx, domain.CreateChildRequest{
		Name:        "Adik",
		Birthday:    time.Now().AddDate(0, -8, 0).Format("2006-01-02"),
		Gender:      domain.GenderMale,
		BirthWeight: &weight,
	})
	require.NoError(t, err)
	require.NotNil(t, kid.BirthWeight)
	assert.InDelta(t, weight, *kid.BirthWeight, 0.001)
	assert.InDelta(t, 8, kid.Age.Months, 1)

	inactive := false
	updated, err := c.UpdateChild(ctx, kid.ID, domain.UpdateChildRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Adik", updated.Name)

	active, err := c.ListChildren(ctx, true)
	require.NoError(t, err)
	for _, ch := range active {
		assert.NotEqual(t, kid.ID, ch.ID)
	}

	require.NoError(t, c.DeleteChild(ctx, kid.ID))
	_, err = c.GetChild(ctx, kid.ID)
	assert.True(t, api.IsNotFound(err))
}

func TestMeasurementsRoundTrip(t *testing.T) {
	_, anon := newBackend(t)
	c := login(t, anon)
	ctx := context.Background()

	head := 47.5
	m, err := c.CreateMeasurement(ctx, devserver.DemoChildID, domain.CreateAnthropometryRequest{
		MeasurementDate:   time.Now().Format("2006-01-02"),
		Weight:            12.4,
		Height:            88,
		HeadCircumference: &head,
		IsLying:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, devserver.DemoChildID, m.ChildID)
	assert.True(t, m.IsLying)
	assert.NotZero(t, m.BMI)

	list, page, err := c.ListMeasurements(ctx, devserver.DemoChildID, domain.AnthropometryListOptions{PerPage: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, m.ID, list[0].ID)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 2, page.LastPage)
}

func TestRequestBodyEncodeFailureIsWrapped(t *testing.T) {
	srv, anon := newBackend(t)
	c := login(t, anon)

	_, err := c.CreateMeasurement(context.Background(), devserver.DemoChildID, domain.CreateAnthropometryRequest{
		MeasurementDate: "2024-01-01",
		Weight:          math.NaN(),
		Height:          80,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encode body")
	assert.Contains(t, err.Error(), "/children/7/anthropometry")
	_, isAPI := api.AsError(err)
	assert.False(t, isAPI)
	assert.Zero(t, srv.Hits("anthropometry.create"))
}

func TestPmtEndpoints(t *testing.T) {
	_, anon := newBackend(t)
	c := login(t, anon)
	ctx := context.Background()
	period := domain.PmtPeriod{StartDate: "2024-03-01", EndDate: "2024-03-31"}

	menus, err := c.PmtMenus(ctx, 8)
	require.NoError(t, err)
	ids := make([]int64, 0, len(menus))
	for _, m := range menus {
		ids = append(ids, m.ID)
	}
	assert.Contains(t, ids, devserver.InfantMenuID)

	sc, err := c.CreatePmtSchedule(ctx, devserver.DemoChildID, domain.CreatePmtScheduleRequest{
		MenuID:        devserver.DemoMenuID,
		ScheduledDate: "2024-03-05",
	})
	require.NoError(t, err)
	assert.Equal(t, devserver.DemoMenuID, sc.Menu.ID)
	assert.False(t, sc.IsLogged)

	logged, err := c.LogPmt(ctx, sc.ID, domain.PmtLogRequest{Portion: domain.PortionQuarter, Notes: "rewel"})
	require.NoError(t, err)
	require.NotNil(t, logged.Log)
	require.NotNil(t, logged.Log.Notes)
	assert.Equal(t, "rewel", *logged.Log.Notes)

	fixed, err := c.UpdatePmtLog(ctx, sc.ID, domain.PmtLogRequest{Portion: domain.PortionHalf})
	require.NoError(t, err)
	assert.Equal(t, 50, fixed.Log.PortionPercentage)

	list, err := c.PmtSchedules(ctx, devserver.DemoChildID, period)
	require.NoError(t, err)
	require.Len(t, list, 1)

	progress, err := c.PmtProgress(ctx, devserver.DemoChildID, period)
	require.NoError(t, err)
	assert.Equal(t, period, progress.Period)
	assert.InDelta(t, 100.0, progress.Summary.ComplianceRate, 0.001)
	assert.Equal(t, 1, progress.ConsumptionBreakdown.Half)
}
