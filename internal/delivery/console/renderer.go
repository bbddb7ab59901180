// Package console renders CRM results for a terminal, either as plain text
// lines or as one JSON document per event.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"crm/config"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TimestampLayout is the layout used for interaction timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

const reportRule = "----------------------------------------"

// RendererParams defines the dependencies of the renderer.
type RendererParams struct {
	fx.In

	Config *config.Config
	Output io.Writer `name:"renderOutput" optional:"true"`
}

// Renderer writes use case results to an io.Writer.
type Renderer struct {
	out    io.Writer
	format string
	runID  string
}

// New creates a renderer from the application config, writing to stdout
// unless another writer is supplied.
func New(params RendererParams) *Renderer {
	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	format := config.OutputFormatText
	if params.Config != nil && params.Config.Output != nil {
		format = params.Config.Output.Format
	}

	return NewRenderer(out, format)
}

// NewRenderer creates a renderer for the given writer and format.
func NewRenderer(out io.Writer, format string) *Renderer {
	return &Renderer{out: out, format: format}
}

// ForRun returns a copy of the renderer that stamps JSON events with runID.
func (r *Renderer) ForRun(runID string) *Renderer {
	cp := *r
	cp.runID = runID

	return &cp
}

func (r *Renderer) isJSON() bool {
	return r.format == config.OutputFormatJSON
}

// --- JSON views ---

type interactionView struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Timestamp string `json:"timestamp"`
	Content   string `json:"content"`
	Duration  *int   `json:"duration,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Location  string `json:"location,omitempty"`
}

type customerView struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	Email               string   `json:"email,omitempty"`
	Phone               string   `json:"phone,omitempty"`
	Kind                string   `json:"kind"`
	Segment             string   `json:"segment,omitempty"`
	AccountManager      string   `json:"account_manager,omitempty"`
	LoyaltyPoints       *float64 `json:"loyalty_points,omitempty"`
	CompanyName         string   `json:"company_name,omitempty"`
	EmployeeCount       int      `json:"employee_count,omitempty"`
	AnnualContractValue *float64 `json:"annual_contract_value,omitempty"`
	InteractionCount    int      `json:"interaction_count"`
}

type salesRepView struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Portfolio []int  `json:"portfolio"`
}

type metaInfo struct {
	RunID string `json:"run_id"`
}

type event struct {
	Event string    `json:"event"`
	Data  any       `json:"data"`
	Meta  *metaInfo `json:"meta,omitempty"`
}

func newInteractionView(i entity.Interaction) interactionView {
	view := interactionView{
		ID:        i.ID().String(),
		Kind:      i.Kind().String(),
		Timestamp: i.Timestamp().Format(TimestampLayout),
		Content:   i.Content(),
		Subject:   i.Subject(),
		Location:  i.Location(),
	}
	if i.Kind() != entity.InteractionEmail {
		duration := i.Duration()
		view.Duration = &duration
	}

	return view
}

func newCustomerView(c *entity.Customer) customerView {
	view := customerView{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		Kind:             c.Kind.String(),
		InteractionCount: c.InteractionCount(),
	}

	switch {
	case c.Kind == entity.CustomerRegular && c.Regular != nil:
		view.Segment = c.Regular.Segment
	case c.IsLoyaltyEligible():
		points := c.LoyaltyPoints()
		view.AccountManager = c.VIP.AccountManager
		view.LoyaltyPoints = &points
	case c.Kind == entity.CustomerCorporate && c.Corporate != nil:
		value := c.Corporate.AnnualContractValue
		view.CompanyName = c.Corporate.CompanyName
		view.EmployeeCount = c.Corporate.EmployeeCount
		view.AnnualContractValue = &value
	}

	return view
}

func (r *Renderer) emit(name string, data any) error {
	e := event{Event: name, Data: data}
	if r.runID != "" {
		e.Meta = &metaInfo{RunID: r.runID}
	}

	enc := json.NewEncoder(r.out)
	if err := enc.Encode(e); err != nil {
		return errors.Wrapf(err, "encode %s", name)
	}

	return nil
}

// printer remembers the first write error so callers can emit several lines.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (r *Renderer) lines(fn func(p *printer)) error {
	p := &printer{w: r.out}
	fn(p)

	return errors.Wrap(p.err, "write output")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func interactionLine(i entity.Interaction) string {
	at := i.Timestamp().Format(TimestampLayout)
	switch i.Kind() {
	case entity.InteractionCall:
		return fmt.Sprintf("Call on %s (Duration: %d minutes): %s", at, i.Duration(), i.Content())
	case entity.InteractionEmail:
		return fmt.Sprintf("Email on %s (Subject: %s): %s", at, i.Subject(), i.Content())
	case entity.InteractionMeeting:
		return fmt.Sprintf("Meeting on %s at %s (Duration: %d minutes): %s", at, i.Location(), i.Duration(), i.Content())
	default:
		return fmt.Sprintf("%s on %s: %s", i.Kind(), at, i.Content())
	}
}

// Section prints a heading between groups of output. JSON output has no headings.
func (r *Renderer) Section(title string) error {
	if r.isJSON() {
		return nil
	}

	return r.lines(func(p *printer) {
		p.linef("\n--- %s ---", title)
	})
}

// Interaction renders a single interaction with all of its variant fields.
func (r *Renderer) Interaction(i entity.Interaction) error {
	if r.isJSON() {
		return r.emit("interaction", newInteractionView(i))
	}

	return r.lines(func(p *printer) {
		p.linef("%s", interactionLine(i))
	})
}

// CustomerInteractions renders a customer's history in recording order.
func (r *Renderer) CustomerInteractions(ci *usecase.CustomerInteractions) error {
	if r.isJSON() {
		views := make([]interactionView, 0, len(ci.Interactions))
		for _, i := range ci.Interactions {
			views = append(views, newInteractionView(i))
		}

		return r.emit("customer_interactions", struct {
			Customer     customerView      `json:"customer"`
			Interactions []interactionView `json:"interactions"`
		}{newCustomerView(ci.Customer), views})
	}

	return r.lines(func(p *printer) {
		if len(ci.Interactions) == 0 {
			p.linef("No interactions recorded for %s", ci.Customer.Name)

			return
		}
		p.linef("Interactions for %s (%s):", ci.Customer.Name, ci.Customer.Kind)
		for _, i := range ci.Interactions {
			p.linef("%s", interactionLine(i))
		}
	})
}

// Customers renders every customer in the registry.
func (r *Renderer) Customers(customers []*entity.Customer) error {
	if r.isJSON() {
		views := make([]customerView, 0, len(customers))
		for _, c := range customers {
			views = append(views, newCustomerView(c))
		}

		return r.emit("customers", views)
	}

	return r.lines(func(p *printer) {
		if len(customers) == 0 {
			p.linef("No customers in the system.")

			return
		}
		p.linef("All Customers:")
		for _, c := range customers {
			p.linef("ID: %d, Name: %s, Type: %s", c.ID, c.Name, c.Kind)
		}
	})
}

// SalesReps renders every sales representative in the registry.
func (r *Renderer) SalesReps(reps []*entity.SalesRepresentative) error {
	if r.isJSON() {
		views := make([]salesRepView, 0, len(reps))
		for _, rep := range reps {
			views = append(views, salesRepView{ID: rep.ID, Name: rep.Name, Portfolio: rep.Portfolio()})
		}

		return r.emit("sales_reps", views)
	}

	return r.lines(func(p *printer) {
		if len(reps) == 0 {
			p.linef("No sales representatives in the system.")

			return
		}
		p.linef("All Sales Representatives:")
		for _, rep := range reps {
			p.linef("ID: %d, Name: %s", rep.ID, rep.Name)
		}
	})
}

// Portfolio renders the customers assigned to one rep.
func (r *Renderer) Portfolio(rep *entity.SalesRepresentative, customers []*entity.Customer) error {
	if r.isJSON() {
		views := make([]customerView, 0, len(customers))
		for _, c := range customers {
			views = append(views, newCustomerView(c))
		}

		return r.emit("portfolio", struct {
			SalesRep  salesRepView   `json:"sales_rep"`
			Customers []customerView `json:"customers"`
		}{salesRepView{ID: rep.ID, Name: rep.Name, Portfolio: rep.Portfolio()}, views})
	}

	return r.lines(func(p *printer) {
		if len(customers) == 0 {
			p.linef("No customers assigned to %s", rep.Name)

			return
		}
		p.linef("Customers assigned to %s:", rep.Name)
		for _, c := range customers {
			p.linef("ID: %d, Name: %s, Type: %s", c.ID, c.Name, c.Kind)
		}
	})
}

// Assignment confirms that a customer joined a rep's portfolio.
func (r *Renderer) Assignment(customer *entity.Customer, rep *entity.SalesRepresentative) error {
	if r.isJSON() {
		return r.emit("assignment", struct {
			CustomerID int `json:"customer_id"`
			SalesRepID int `json:"sales_rep_id"`
		}{customer.ID, rep.ID})
	}

	return r.lines(func(p *printer) {
		p.linef("Customer %s assigned to %s", customer.Name, rep.Name)
	})
}

// TypeActions renders the kind-specific action of each customer.
func (r *Renderer) TypeActions(actions []entity.TypeAction) error {
	if r.isJSON() {
		return r.emit("type_actions", actions)
	}

	return r.lines(func(p *printer) {
		for _, a := range actions {
			p.linef("%s", a.Description)
		}
	})
}

// Record confirms a recorded interaction. VIP customers also get a loyalty line.
func (r *Renderer) Record(out *usecase.RecordOutput) error {
	if r.isJSON() {
		return r.emit("record", struct {
			CustomerID           int             `json:"customer_id"`
			Interaction          interactionView `json:"interaction"`
			LoyaltyPointsAwarded float64         `json:"loyalty_points_awarded"`
			LoyaltyBalance       float64         `json:"loyalty_balance"`
		}{out.Customer.ID, newInteractionView(out.Interaction), out.LoyaltyPointsAwarded, out.LoyaltyBalance})
	}

	if err := r.lines(func(p *printer) {
		p.linef("%s recorded with %s", out.Interaction.Kind(), out.Customer.Name)
	}); err != nil {
		return err
	}

	if out.Customer.Kind != entity.CustomerVIP {
		return nil
	}

	return r.LoyaltyAward(out.Customer, out.LoyaltyPointsAwarded, out.LoyaltyBalance)
}

// LoyaltyAward reports points credited to a VIP customer.
func (r *Renderer) LoyaltyAward(customer *entity.Customer, awarded, balance float64) error {
	if r.isJSON() {
		return r.emit("loyalty_award", struct {
			CustomerID int     `json:"customer_id"`
			Awarded    float64 `json:"awarded"`
			Balance    float64 `json:"balance"`
		}{customer.ID, awarded, balance})
	}

	return r.lines(func(p *printer) {
		p.linef("Added %s loyalty points to %s. Total: %s", formatAmount(awarded), customer.Name, formatAmount(balance))
	})
}

// ContractRenewal reports the old and new value of a corporate contract.
func (r *Renderer) ContractRenewal(renewal *entity.ContractRenewal) error {
	if r.isJSON() {
		return r.emit("contract_renewal", renewal)
	}

	return r.lines(func(p *printer) {
		p.linef("Renewing contract for %s. Old amount: $%s, New amount: $%s",
			renewal.CompanyName, formatAmount(renewal.OldValue), formatAmount(renewal.NewValue))
	})
}

// InteractionTimeReport renders one rep's per-customer multiplied totals.
func (r *Renderer) InteractionTimeReport(rep *entity.SalesRepresentative, entries []usecase.InteractionTimeEntry) error {
	if r.isJSON() {
		return r.emit("interaction_time_report", struct {
			SalesRepID int                            `json:"sales_rep_id"`
			Name       string                         `json:"name"`
			Entries    []usecase.InteractionTimeEntry `json:"entries"`
		}{rep.ID, rep.Name, entries})
	}

	return r.lines(func(p *printer) {
		p.linef("\nInteraction Time Report for Sales Rep: %s", rep.Name)
		p.linef(reportRule)
		for _, e := range entries {
			p.linef("Customer: %s (%s) - Total Interaction Time: %d minutes", e.Name, e.Kind, e.TotalMinutes)
		}
		p.linef(reportRule)
	})
}

// SystemReport renders the registry-wide totals. Kinds with no customers are omitted.
func (r *Renderer) SystemReport(report *usecase.SystemReport) error {
	if r.isJSON() {
		return r.emit("system_report", report)
	}

	return r.lines(func(p *printer) {
		p.linef("\n========== CRM SYSTEM REPORT ==========")
		p.linef("Total Customers: %d", report.TotalCustomers)
		for _, kind := range entity.CustomerKinds {
			if n := report.CustomersByKind[kind]; n > 0 {
				p.linef("  %s Customers: %d", kind, n)
			}
		}
		p.linef("Total Sales Representatives: %d", report.TotalSalesReps)
		p.linef("Total Interaction Time: %d minutes", report.TotalInteractionTime)
		p.linef("======================================")
	})
}

// NotFound reports a failed lookup without aborting the run.
func (r *Renderer) NotFound(err error) error {
	if r.isJSON() {
		return r.emit("not_found", domainerrors.NewErrorInfo(err))
	}

	return r.lines(func(p *printer) {
		p.linef("Not found: %v", err)
	})
}
