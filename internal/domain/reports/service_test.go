package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkly/internal/core/apperror"
)

// --- Mocks ---

type mockOrderSales struct {
	calls  int
	totals SalesTotals
	daily  []DailySales
	err    error
}

func (m *mockOrderSales) SalesTotals(ctx context.Context, start, end time.Time) (SalesTotals, error) {
	m.calls++
	return m.totals, m.err
}

func (m *mockOrderSales) DailySales(ctx context.Context, start, end time.Time) ([]DailySales, error) {
	m.calls++
	return m.daily, m.err
}

type mockTicketSales struct {
	calls int
	sales []AttractionSales
}

func (m *mockTicketSales) AttractionSales(ctx context.Context, start, end time.Time) ([]AttractionSales, error) {
	m.calls++
	return m.sales, nil
}

type mockPaymentSales struct {
	calls   int
	methods []PaymentMethodSales
}

func (m *mockPaymentSales) MethodBreakdown(ctx context.Context, start, end *time.Time) ([]PaymentMethodSales, error) {
	m.calls++
	return m.methods, nil
}

type mockClientData struct {
	calls     int
	totals    ClientTotals
	top       []ClientSpend
	regs      []DailyRegistrations
	lastLimit int
	lastSince time.Time
}

func (m *mockClientData) Totals(ctx context.Context) (ClientTotals, error) {
	m.calls++
	return m.totals, nil
}

func (m *mockClientData) TopBySpend(ctx context.Context, limit int) ([]ClientSpend, error) {
	m.calls++
	m.lastLimit = limit
	return m.top, nil
}

func (m *mockClientData) RegistrationsByDay(ctx context.Context, since time.Time) ([]DailyRegistrations, error) {
	m.calls++
	m.lastSince = since
	return m.regs, nil
}

type mockAttendanceData struct {
	calls    int
	visitors int64
	daily    []DailyAttendance
	hourly   []HourlyAttendance
	dobs     []time.Time
}

func (m *mockAttendanceData) DistinctVisitors(ctx context.Context, start, end time.Time) (int64, error) {
	m.calls++
	return m.visitors, nil
}

func (m *mockAttendanceData) AttendanceByDay(ctx context.Context, start, end time.Time) ([]DailyAttendance, error) {
	m.calls++
	return m.daily, nil
}

func (m *mockAttendanceData) AttendanceByHour(ctx context.Context, start, end time.Time) ([]HourlyAttendance, error) {
	m.calls++
	return m.hourly, nil
}

func (m *mockAttendanceData) VisitorBirthDates(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	m.calls++
	return m.dobs, nil
}

func newTestService(
	orders *mockOrderSales,
	tickets *mockTicketSales,
	payments *mockPaymentSales,
	clients *mockClientData,
	attendance *mockAttendanceData,
) *Service {
	if orders == nil {
		orders = &mockOrderSales{}
	}
	if tickets == nil {
		tickets = &mockTicketSales{}
	}
	if payments == nil {
		payments = &mockPaymentSales{}
	}
	if clients == nil {
		clients = &mockClientData{}
	}
	if attendance == nil {
		attendance = &mockAttendanceData{}
	}
	return NewService(orders, tickets, payments, clients, attendance, nil)
}

type mockSnapshot struct {
	calls int
}

func (m *mockSnapshot) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- Sales report ---

func TestGetSalesReport_InvalidRange(t *testing.T) {
	orders := &mockOrderSales{}
	tickets := &mockTicketSales{}
	payments := &mockPaymentSales{}
	svc := newTestService(orders, tickets, payments, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
	}{
		{name: "start after end", start: date(2026, 8, 10), end: date(2026, 8, 1)},
		{name: "zero start", start: time.Time{}, end: date(2026, 8, 1)},
		{name: "zero end", start: date(2026, 8, 1), end: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetSalesReport(ctx, tt.start, tt.end)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}

	// Rejected before any data source was touched.
	assert.Zero(t, orders.calls)
	assert.Zero(t, tickets.calls)
	assert.Zero(t, payments.calls)
}

func TestGetSalesReport_Totals(t *testing.T) {
	orders := &mockOrderSales{
		totals: SalesTotals{Orders: 3, Tickets: 9, Revenue: decimal.NewFromInt(4500)},
		daily: []DailySales{
			{Date: date(2026, 8, 1), Orders: 2, Tickets: 6, Revenue: decimal.NewFromInt(3000)},
			{Date: date(2026, 8, 2), Orders: 1, Tickets: 3, Revenue: decimal.NewFromInt(1500)},
		},
	}
	tickets := &mockTicketSales{
		sales: []AttractionSales{
			{AttractionID: 1, AttractionName: "Big Wheel", Tickets: 5, Revenue: decimal.NewFromInt(3150)},
			{AttractionID: 2, AttractionName: "Carousel", Tickets: 3, Revenue: decimal.NewFromInt(900)},
			{AttractionID: 3, AttractionName: "Maze", Tickets: 1, Revenue: decimal.NewFromInt(450)},
		},
	}
	payments := &mockPaymentSales{
		methods: []PaymentMethodSales{
			{Method: "card", Payments: 2, Amount: decimal.NewFromInt(3150)},
			{Method: "cash", Payments: 1, Amount: decimal.NewFromInt(1350)},
		},
	}
	svc := newTestService(orders, tickets, payments, nil, nil)

	report, err := svc.GetSalesReport(context.Background(), date(2026, 8, 1), date(2026, 8, 31))
	require.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalOrders)
	assert.Equal(t, int64(9), report.TotalTickets)
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(4500)))
	assert.True(t, report.AverageOrderValue.Equal(decimal.NewFromInt(1500)))
	assert.Len(t, report.Daily, 2)

	// Attraction shares of total revenue.
	require.Len(t, report.ByAttraction, 3)
	assert.Equal(t, 70.0, report.ByAttraction[0].Percentage)
	assert.Equal(t, 20.0, report.ByAttraction[1].Percentage)
	assert.Equal(t, 10.0, report.ByAttraction[2].Percentage)

	// Method shares of collected payments.
	require.Len(t, report.ByPaymentMethod, 2)
	assert.Equal(t, "card", report.ByPaymentMethod[0].Method)
	assert.Equal(t, 70.0, report.ByPaymentMethod[0].Percentage)
	assert.Equal(t, "cash", report.ByPaymentMethod[1].Method)
	assert.Equal(t, 30.0, report.ByPaymentMethod[1].Percentage)
}

func TestGetSalesReport_PercentagesCloseOver(t *testing.T) {
	// An awkward three-way split still sums to ~100.
	tickets := &mockTicketSales{
		sales: []AttractionSales{
			{AttractionID: 1, Revenue: decimal.NewFromInt(1)},
			{AttractionID: 2, Revenue: decimal.NewFromInt(1)},
			{AttractionID: 3, Revenue: decimal.NewFromInt(1)},
		},
	}
	orders := &mockOrderSales{
		totals: SalesTotals{Orders: 3, Tickets: 3, Revenue: decimal.NewFromInt(3)},
	}
	svc := newTestService(orders, tickets, nil, nil, nil)

	report, err := svc.GetSalesReport(context.Background(), date(2026, 8, 1), date(2026, 8, 2))
	require.NoError(t, err)

	var sum float64
	for _, a := range report.ByAttraction {
		sum += a.Percentage
	}
	assert.InDelta(t, 100.0, sum, 0.01)
}

func TestGetSalesReport_BreakdownOrdering(t *testing.T) {
	// Breakdowns come back ranked even when the rows arrive unordered.
	orders := &mockOrderSales{
		totals: SalesTotals{Orders: 3, Revenue: decimal.NewFromInt(600)},
	}
	tickets := &mockTicketSales{
		sales: []AttractionSales{
			{AttractionID: 1, Revenue: decimal.NewFromInt(100)},
			{AttractionID: 2, Revenue: decimal.NewFromInt(400)},
			{AttractionID: 3, Revenue: decimal.NewFromInt(100)},
		},
	}
	payments := &mockPaymentSales{
		methods: []PaymentMethodSales{
			{Method: "cash", Amount: decimal.NewFromInt(150)},
			{Method: "card", Amount: decimal.NewFromInt(450)},
		},
	}
	svc := newTestService(orders, tickets, payments, nil, nil)

	report, err := svc.GetSalesReport(context.Background(), date(2026, 8, 1), date(2026, 8, 31))
	require.NoError(t, err)

	require.Len(t, report.ByAttraction, 3)
	assert.Equal(t, int64(2), report.ByAttraction[0].AttractionID)
	// Equal revenues keep their incoming order.
	assert.Equal(t, int64(1), report.ByAttraction[1].AttractionID)
	assert.Equal(t, int64(3), report.ByAttraction[2].AttractionID)

	require.Len(t, report.ByPaymentMethod, 2)
	assert.Equal(t, "card", report.ByPaymentMethod[0].Method)
	assert.Equal(t, "cash", report.ByPaymentMethod[1].Method)
}

func TestGetSalesReport_EmptyRange(t *testing.T) {
	tickets := &mockTicketSales{
		sales: []AttractionSales{{AttractionID: 1, Revenue: decimal.Zero}},
	}
	svc := newTestService(&mockOrderSales{}, tickets, nil, nil, nil)

	report, err := svc.GetSalesReport(context.Background(), date(2026, 8, 1), date(2026, 8, 2))
	require.NoError(t, err)

	assert.Equal(t, int64(0), report.TotalOrders)
	assert.True(t, report.AverageOrderValue.IsZero())
	// Zero revenue base yields zero percentages, not NaN.
	assert.Equal(t, 0.0, report.ByAttraction[0].Percentage)
}

func TestGetSalesReport_Snapshot(t *testing.T) {
	snap := &mockSnapshot{}
	svc := NewService(&mockOrderSales{}, &mockTicketSales{}, &mockPaymentSales{},
		&mockClientData{}, &mockAttendanceData{}, snap)

	_, err := svc.GetSalesReport(context.Background(), date(2026, 8, 1), date(2026, 8, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, snap.calls)

	// An invalid range is rejected before the snapshot opens.
	_, err = svc.GetSalesReport(context.Background(), date(2026, 8, 2), date(2026, 8, 1))
	require.Error(t, err)
	assert.Equal(t, 1, snap.calls)
}

// --- User report ---

func TestGetUserReport(t *testing.T) {
	clients := &mockClientData{
		totals: ClientTotals{
			Total:        120,
			Active:       100,
			NewThisMonth: 15,
			TotalSpend:   decimal.NewFromInt(42000),
		},
		top: []ClientSpend{
			{ClientID: 7, Name: "Ada Park", Orders: 12, TotalSpend: decimal.NewFromInt(9000)},
			{ClientID: 3, Name: "Bo Chen", Orders: 8, TotalSpend: decimal.NewFromInt(7000)},
		},
		regs: []DailyRegistrations{
			{Date: date(2026, 8, 3), Count: 2},
			{Date: date(2026, 8, 7), Count: 5},
		},
	}
	svc := newTestService(nil, nil, nil, clients, nil)
	svc.now = func() time.Time { return date(2026, 8, 31) }

	report, err := svc.GetUserReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(120), report.TotalClients)
	assert.Equal(t, int64(100), report.ActiveClients)
	assert.Equal(t, int64(15), report.NewThisMonth)
	assert.True(t, report.AverageSpend.Equal(decimal.NewFromInt(350)))

	assert.Equal(t, 10, clients.lastLimit)
	assert.Equal(t, date(2026, 8, 1), clients.lastSince)

	// Sparse registration days stay sparse; gaps are not zero-filled.
	require.Len(t, report.Registrations, 2)
	assert.Equal(t, date(2026, 8, 3), report.Registrations[0].Date)
	assert.Equal(t, date(2026, 8, 7), report.Registrations[1].Date)
}

func TestGetUserReport_AverageSpendPerClient(t *testing.T) {
	// Two clients, one with orders {100, 100}, one with {400}: the
	// average is 600/2 = 300 per client, not 200 per order.
	clients := &mockClientData{
		totals: ClientTotals{
			Total:      2,
			TotalSpend: decimal.NewFromInt(600),
		},
	}
	svc := newTestService(nil, nil, nil, clients, nil)

	report, err := svc.GetUserReport(context.Background())
	require.NoError(t, err)
	assert.True(t, report.AverageSpend.Equal(decimal.NewFromInt(300)),
		"got %s", report.AverageSpend)
}

func TestGetUserReport_NoClients(t *testing.T) {
	svc := newTestService(nil, nil, nil, &mockClientData{}, nil)

	report, err := svc.GetUserReport(context.Background())
	require.NoError(t, err)
	assert.True(t, report.AverageSpend.IsZero())
}

// --- Attendance report ---

func TestGetAttendanceReport_InvalidRange(t *testing.T) {
	attendance := &mockAttendanceData{}
	svc := newTestService(nil, nil, nil, nil, attendance)

	_, err := svc.GetAttendanceReport(context.Background(), date(2026, 8, 10), date(2026, 8, 1))
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, attendance.calls)
}

func TestGetAttendanceReport(t *testing.T) {
	now := date(2026, 8, 31)
	attendance := &mockAttendanceData{
		visitors: 4,
		daily: []DailyAttendance{
			{Date: date(2026, 8, 1), Visitors: 1},
			{Date: date(2026, 8, 2), Visitors: 3},
			{Date: date(2026, 8, 3), Visitors: 2},
		},
		hourly: []HourlyAttendance{
			{Hour: 10, Visitors: 2},
			{Hour: 14, Visitors: 2},
		},
		dobs: []time.Time{
			date(2016, 5, 1), // 10 -> under 18
			date(2001, 5, 1), // 25 -> 18-30
			date(1986, 5, 1), // 40 -> 31-50
			date(1966, 5, 1), // 60 -> 51+
		},
	}
	svc := newTestService(nil, nil, nil, nil, attendance)
	svc.now = func() time.Time { return now }

	report, err := svc.GetAttendanceReport(context.Background(), date(2026, 8, 1), date(2026, 8, 31))
	require.NoError(t, err)

	assert.Equal(t, int64(4), report.TotalVisitors)
	assert.Equal(t, date(2026, 8, 2), report.PeakDate)
	assert.Equal(t, int64(3), report.PeakVisitors)

	// All 24 hours present, sparse rows merged in.
	require.Len(t, report.Hourly, 24)
	for h, row := range report.Hourly {
		assert.Equal(t, h, row.Hour)
	}
	assert.Equal(t, int64(2), report.Hourly[10].Visitors)
	assert.Equal(t, 50.0, report.Hourly[10].Percentage)
	assert.Equal(t, int64(0), report.Hourly[0].Visitors)
	assert.Equal(t, 0.0, report.Hourly[0].Percentage)

	// One visitor per age band, 25% each.
	require.Len(t, report.AgeGroups, 4)
	for i, band := range AgeBands {
		assert.Equal(t, band, report.AgeGroups[i].Group)
		assert.Equal(t, int64(1), report.AgeGroups[i].Visitors)
		assert.Equal(t, 25.0, report.AgeGroups[i].Percentage)
	}
}

func TestGetAttendanceReport_NoVisitors(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil, &mockAttendanceData{})

	report, err := svc.GetAttendanceReport(context.Background(), date(2026, 8, 1), date(2026, 8, 2))
	require.NoError(t, err)

	assert.Equal(t, int64(0), report.TotalVisitors)
	assert.True(t, report.PeakDate.IsZero())
	require.Len(t, report.Hourly, 24)
	for _, row := range report.Hourly {
		assert.Equal(t, 0.0, row.Percentage)
	}
	require.Len(t, report.AgeGroups, 4)
	for _, g := range report.AgeGroups {
		assert.Equal(t, int64(0), g.Visitors)
		assert.Equal(t, 0.0, g.Percentage)
	}
}

// --- Age banding ---

func TestAgeBand(t *testing.T) {
	at := date(2026, 6, 15)

	tests := []struct {
		name string
		dob  time.Time
		want string
	}{
		{name: "child", dob: date(2016, 1, 1), want: BandUnder18},
		{name: "just under 18", dob: date(2008, 6, 16), want: BandUnder18},
		{name: "18th birthday today", dob: date(2008, 6, 15), want: Band18To30},
		{name: "exactly 30", dob: date(1996, 6, 15), want: Band18To30},
		{name: "just turned 31", dob: date(1995, 6, 15), want: Band31To50},
		{name: "exactly 50", dob: date(1976, 6, 15), want: Band31To50},
		{name: "just turned 51", dob: date(1975, 6, 15), want: Band51Plus},
		{name: "senior", dob: date(1950, 1, 1), want: Band51Plus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeBand(tt.dob, at))
		})
	}
}
