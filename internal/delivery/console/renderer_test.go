package console

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"crm/config"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var renderTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func textLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func sampleInteractions(t *testing.T) []entity.Interaction {
	t.Helper()
	call, err := entity.NewCall("Discussed pricing", 15, renderTime)
	require.NoError(t, err)
	email := entity.NewEmail("Offer details", "VIP Offer", renderTime)
	meeting, err := entity.NewMeeting("Quarterly review", "Headquarters", 60, renderTime)
	require.NoError(t, err)

	return []entity.Interaction{call, email, meeting}
}

func TestRenderer_CustomerInteractions_Text(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatText)

	customer := entity.NewVIPCustomer(entity.Contact{Name: "Jane Smith"}, "Michael Johnson")
	require.NoError(t, r.CustomerInteractions(&usecase.CustomerInteractions{
		Customer:     customer,
		Interactions: sampleInteractions(t),
	}))

	want := []string{
		"Interactions for Jane Smith (VIP):",
		"Call on 2024-03-15 10:30:00 (Duration: 15 minutes): Discussed pricing",
		"Email on 2024-03-15 10:30:00 (Subject: VIP Offer): Offer details",
		"Meeting on 2024-03-15 10:30:00 at Headquarters (Duration: 60 minutes): Quarterly review",
	}
	if diff := cmp.Diff(want, textLines(&buf)); diff != "" {
		t.Errorf("CustomerInteractions mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_CustomerInteractions_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatText)

	customer := entity.NewRegularCustomer(entity.Contact{Name: "John Doe"}, "Small Business")
	require.NoError(t, r.CustomerInteractions(&usecase.CustomerInteractions{Customer: customer}))

	assert.Equal(t, "No interactions recorded for John Doe\n", buf.String())
}

func TestRenderer_EmptyListings(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatText)

	require.NoError(t, r.Customers(nil))
	require.NoError(t, r.SalesReps(nil))
	require.NoError(t, r.Portfolio(&entity.SalesRepresentative{ID: 1, Name: "Alice"}, nil))

	want := []string{
		"No customers in the system.",
		"No sales representatives in the system.",
		"No customers assigned to Alice",
	}
	if diff := cmp.Diff(want, textLines(&buf)); diff != "" {
		t.Errorf("listings mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Record_VIPIncludesLoyalty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatText)

	customer := entity.NewVIPCustomer(entity.Contact{Name: "Jane Smith"}, "Michael Johnson")
	customer.ID = 2
	meeting := sampleInteractions(t)[2]

	require.NoError(t, r.Record(&usecase.RecordOutput{
		Customer:             customer,
		Interaction:          meeting,
		LoyaltyPointsAwarded: 120,
		LoyaltyBalance:       130,
	}))

	want := []string{
		"Meeting recorded with Jane Smith",
		"Added 120 loyalty points to Jane Smith. Total: 130",
	}
	if diff := cmp.Diff(want, textLines(&buf)); diff != "" {
		t.Errorf("Record mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Record_RegularHasNoLoyaltyLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatText)

	customer := entity.NewRegularCustomer(entity.Contact{Name: "John Doe"}, "Small Business")
	require.NoError(t, r.Record(&usecase.RecordOutput{Customer: customer, Interaction: sampleInteractions(t)[0]}))

	assert.Equal(t, "Call recorded with John Doe\n", buf.String())
}

func TestRenderer_ContractRenewal(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatText)

	require.NoError(t, r.ContractRenewal(&entity.ContractRenewal{
		CustomerID: 3, CompanyName: "MegaCorp", OldValue: 50000, NewValue: 75000.5,
	}))

	assert.Equal(t, "Renewing contract for MegaCorp. Old amount: $50000, New amount: $75000.5\n", buf.String())
}

func TestRenderer_InteractionTimeReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatText)

	rep := &entity.SalesRepresentative{ID: 1, Name: "Alice Thompson"}
	require.NoError(t, r.InteractionTimeReport(rep, []usecase.InteractionTimeEntry{
		{CustomerID: 1, Name: "John Doe", Kind: entity.CustomerRegular, TotalMinutes: 15},
		{CustomerID: 2, Name: "Jane Smith", Kind: entity.CustomerVIP, TotalMinutes: 72},
	}))

	want := []string{
		"",
		"Interaction Time Report for Sales Rep: Alice Thompson",
		reportRule,
		"Customer: John Doe (Regular) - Total Interaction Time: 15 minutes",
		"Customer: Jane Smith (VIP) - Total Interaction Time: 72 minutes",
		reportRule,
	}
	if diff := cmp.Diff(want, textLines(&buf)); diff != "" {
		t.Errorf("InteractionTimeReport mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_SystemReport_SkipsEmptyKinds(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatText)

	require.NoError(t, r.SystemReport(&usecase.SystemReport{
		TotalCustomers: 2,
		CustomersByKind: map[entity.CustomerKind]int{
			entity.CustomerRegular:   1,
			entity.CustomerVIP:       0,
			entity.CustomerCorporate: 1,
		},
		TotalSalesReps:       1,
		TotalInteractionTime: 40,
	}))

	want := []string{
		"",
		"========== CRM SYSTEM REPORT ==========",
		"Total Customers: 2",
		"  Regular Customers: 1",
		"  Corporate Customers: 1",
		"Total Sales Representatives: 1",
		"Total Interaction Time: 40 minutes",
		"======================================",
	}
	if diff := cmp.Diff(want, textLines(&buf)); diff != "" {
		t.Errorf("SystemReport mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Section_TextOnly(t *testing.T) {
	var text, js bytes.Buffer

	require.NoError(t, NewRenderer(&text, config.OutputFormatText).Section("Customer Interactions"))
	require.NoError(t, NewRenderer(&js, config.OutputFormatJSON).Section("Customer Interactions"))

	assert.Equal(t, "\n--- Customer Interactions ---\n", text.String())
	assert.Empty(t, js.String())
}

func TestRenderer_JSON_Interaction(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatJSON)

	email := sampleInteractions(t)[1]
	require.NoError(t, r.Interaction(email))

	var got struct {
		Event string         `json:"event"`
		Data  map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "interaction", got.Event)
	assert.Equal(t, "Email", got.Data["kind"])
	assert.Equal(t, "2024-03-15 10:30:00", got.Data["timestamp"])
	assert.Equal(t, "VIP Offer", got.Data["subject"])
	assert.NotContains(t, got.Data, "duration")
	assert.Equal(t, email.ID().String(), got.Data["id"])
}

func TestRenderer_JSON_Customers(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatJSON)

	corp, err := entity.NewCorporateCustomer(entity.Contact{Name: "Bob Anderson"}, "MegaCorp", 1500, 50000)
	require.NoError(t, err)
	corp.ID = 3
	corp.AppendInteraction(sampleInteractions(t)[0])

	require.NoError(t, r.Customers([]*entity.Customer{corp}))

	var got struct {
		Event string         `json:"event"`
		Data  []customerView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	require.Len(t, got.Data, 1)
	assert.Equal(t, "customers", got.Event)
	assert.Equal(t, "Corporate", got.Data[0].Kind)
	assert.Equal(t, 1500, got.Data[0].EmployeeCount)
	assert.Equal(t, 1, got.Data[0].InteractionCount)
	require.NotNil(t, got.Data[0].AnnualContractValue)
	assert.InDelta(t, 50000.0, *got.Data[0].AnnualContractValue, 1e-9)
	assert.Nil(t, got.Data[0].LoyaltyPoints)
}

func TestRenderer_NotFound(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatText)

	require.NoError(t, r.NotFound(domainerrors.ErrCustomerNotFound))
	assert.True(t, strings.HasPrefix(buf.String(), "Not found: "))
}

func TestNew_DefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	r := New(RendererParams{Config: &config.Config{}, Output: &buf})

	require.NoError(t, r.SalesReps(nil))
	assert.Equal(t, "No sales representatives in the system.\n", buf.String())
}

func TestRenderer_NotFound_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatJSON)

	require.NoError(t, r.NotFound(domainerrors.ErrSalesRepNotFound.WithDetails("id 9")))

	var got struct {
		Event string                 `json:"event"`
		Data  domainerrors.ErrorInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "not_found", got.Event)
	assert.Equal(t, domainerrors.KindNotFound, got.Data.Kind)
	assert.Equal(t, "SALES_REP_NOT_FOUND", got.Data.Code)
	assert.Equal(t, "id 9", got.Data.Details)
}

func decodeEvent(t *testing.T, buf *bytes.Buffer) (string, map[string]any) {
	t.Helper()
	var got struct {
		Event string         `json:"event"`
		Data  map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	return got.Event, got.Data
}

func TestRenderer_JSON_SnakeCaseKeys(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, config.OutputFormatJSON)

	require.NoError(t, r.SystemReport(&usecase.SystemReport{
		TotalCustomers:       1,
		CustomersByKind:      map[entity.CustomerKind]int{entity.CustomerVIP: 1},
		TotalSalesReps:       1,
		TotalInteractionTime: 72,
	}))
	event, data := decodeEvent(t, &buf)
	assert.Equal(t, "system_report", event)
	assert.EqualValues(t, 72, data["total_interaction_time"])
	assert.Equal(t, map[string]any{"VIP": float64(1)}, data["customers_by_kind"])

	buf.Reset()
	require.NoError(t, r.ContractRenewal(&entity.ContractRenewal{CustomerID: 3, CompanyName: "MegaCorp", OldValue: 50000, NewValue: 75000}))
	event, data = decodeEvent(t, &buf)
	assert.Equal(t, "contract_renewal", event)
	assert.EqualValues(t, 3, data["customer_id"])
	assert.EqualValues(t, 75000, data["new_value"])

	buf.Reset()
	rep := &entity.SalesRepresentative{ID: 1, Name: "Alice Thompson"}
	require.NoError(t, r.InteractionTimeReport(rep, []usecase.InteractionTimeEntry{
		{CustomerID: 2, Name: "Jane Smith", Kind: entity.CustomerVIP, BaseMinutes: 60, Multiplier: 1.2, TotalMinutes: 72},
	}))
	event, data = decodeEvent(t, &buf)
	assert.Equal(t, "interaction_time_report", event)
	entries, ok := data["entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 1)
	entry, ok := entries[0].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 72, entry["total_minutes"])
	assert.EqualValues(t, 60, entry["base_minutes"])

	buf.Reset()
	require.NoError(t, r.TypeActions([]entity.TypeAction{{CustomerID: 1, Kind: entity.CustomerRegular, Action: "send_promotional_material"}}))
	var actions struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &actions))
	require.Len(t, actions.Data, 1)
	assert.Equal(t, "send_promotional_material", actions.Data[0]["action"])
	assert.Contains(t, actions.Data[0], "customer_id")
}

func TestRenderer_JSON_CustomerWithoutProfile(t *testing.T) {
	for _, kind := range entity.CustomerKinds {
		t.Run(kind.String(), func(t *testing.T) {
			var buf bytes.Buffer
			r := NewRenderer(&buf, config.OutputFormatJSON)

			customer := &entity.Customer{ID: 7, Name: "Bare", Kind: kind}
			require.NotPanics(t, func() {
				require.NoError(t, r.Customers([]*entity.Customer{customer}))
			})

			var got struct {
				Data []customerView `json:"data"`
			}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
			require.Len(t, got.Data, 1)
			assert.Equal(t, kind.String(), got.Data[0].Kind)
			assert.Nil(t, got.Data[0].LoyaltyPoints)
			assert.Nil(t, got.Data[0].AnnualContractValue)
		})
	}
}
