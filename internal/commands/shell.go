package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/booksdesk-dev/booksdesk/internal/activity"
	"github.com/booksdesk-dev/booksdesk/internal/companies"
	"github.com/booksdesk-dev/booksdesk/internal/config"
	"github.com/booksdesk-dev/booksdesk/internal/customers"
	"github.com/booksdesk-dev/booksdesk/internal/dashboard"
	"github.com/booksdesk-dev/booksdesk/internal/directory"
	"github.com/booksdesk-dev/booksdesk/internal/document"
	"github.com/booksdesk-dev/booksdesk/internal/fx"
	"github.com/booksdesk-dev/booksdesk/internal/ledger"
	"github.com/booksdesk-dev/booksdesk/internal/model"
	"github.com/booksdesk-dev/booksdesk/internal/session"
	"github.com/booksdesk-dev/booksdesk/internal/suppliers"
	"github.com/booksdesk-dev/booksdesk/internal/vat"
)

func newShellCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive accounting shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := shellConfig(configPath)
			if err != nil {
				return err
			}

			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
			app, err := newShellApp(cfg, os.Stdin, os.Stdout, logger)
			if err != nil {
				return err
			}
			return app.run()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "booksdesk.yaml", "path to config file")

	return cmd
}

// shellConfig loads the config file if present, falls back to defaults
// otherwise, and overlays the environment on top.
func shellConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, err
	}
	if err := config.FromEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// shellApp is the rendering collaborator: it reads session state and
// registry snapshots, invokes the operations, and shows whatever
// message comes back.
type shellApp struct {
	cfg  *config.Config
	log  zerolog.Logger
	in   *bufio.Scanner
	out  io.Writer
	done bool

	session    *session.Manager
	companies  *companies.Service
	customers  *customers.Service
	suppliers  *suppliers.Service
	ledger     *ledger.Service
	vatCodes   *vat.Service
	rates      *fx.Service
	invoice    *document.Draft
	creditNote *document.Draft
	documents  []model.Document
}

func newShellApp(cfg *config.Config, in io.Reader, out io.Writer, logger zerolog.Logger) (*shellApp, error) {
	users, err := directory.New(directory.Defaults())
	if err != nil {
		return nil, fmt.Errorf("seeding user directory: %w", err)
	}

	comps := companies.NewService(companies.Defaults())
	return &shellApp{
		cfg:        cfg,
		log:        logger,
		in:         bufio.NewScanner(in),
		out:        out,
		session:    session.NewManager(users, comps, cfg.Session.MaxLoginAttempts, cfg.IdleTimeout()),
		companies:  comps,
		customers:  customers.NewService(customers.Defaults()),
		suppliers:  suppliers.NewService(suppliers.Defaults()),
		ledger:     ledger.NewService(ledger.DefaultChart()),
		vatCodes:   vat.NewService(vat.Defaults()),
		rates:      fx.NewService(fx.Defaults()),
		invoice:    document.NewDraft(model.KindInvoice),
		creditNote: document.NewDraft(model.KindCreditNote),
	}, nil
}

func (a *shellApp) run() error {
	fmt.Fprintln(a.out, "booksdesk — sign in to continue")

	for !a.done {
		st := a.session.State()
		switch {
		case !st.Authenticated:
			a.loginScreen()
		case st.Company == nil:
			a.companyScreen()
		default:
			a.mainMenu(st)
		}
	}

	a.session.Logout()
	return nil
}

// prompt reads one trimmed line. It flips done on EOF.
func (a *shellApp) prompt(label string) string {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		a.done = true
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *shellApp) loginScreen() {
	username := a.prompt("Username (q to quit)")
	if a.done || username == "q" {
		a.done = true
		return
	}
	password := a.prompt("Password")
	if a.done {
		return
	}

	res := a.session.Login(username, password)
	if !res.Success {
		fmt.Fprintln(a.out, res.Message)
		a.log.Warn().Str("username", username).Msg("login failed")
		return
	}

	fmt.Fprintln(a.out, "Signed in.")
	a.log.Info().Str("username", username).Msg("login succeeded")
	a.record("login", "session opened", "")
}

func (a *shellApp) companyScreen() {
	fmt.Fprintln(a.out, "Select a company:")
	for _, c := range a.session.Companies() {
		fmt.Fprintf(a.out, "  %-12s %s\n", c.ID, c.Name)
	}

	id := a.prompt("Company id (q to sign out)")
	if a.done {
		return
	}
	if id == "q" {
		a.logout()
		return
	}
	if !a.session.SelectCompany(id) {
		fmt.Fprintln(a.out, "Company not found")
		return
	}
	st := a.session.State()
	fmt.Fprintf(a.out, "Working in %s\n", st.Company.Name)
}

func (a *shellApp) mainMenu(st session.State) {
	fmt.Fprintf(a.out, "\n[%s — %s (%s)]\n", st.Company.Name, st.User.Username, st.User.Role)
	fmt.Fprintln(a.out, "  1  Dashboard")
	fmt.Fprintln(a.out, "  2  Invoices")
	fmt.Fprintln(a.out, "  3  Credit notes")
	fmt.Fprintln(a.out, "  4  Customers")
	fmt.Fprintln(a.out, "  5  Suppliers")
	fmt.Fprintln(a.out, "  6  General ledger")
	fmt.Fprintln(a.out, "  7  VAT codes")
	fmt.Fprintln(a.out, "  8  Exchange rates")
	fmt.Fprintln(a.out, "  9  New company")
	fmt.Fprintln(a.out, "  0  Sign out")
	fmt.Fprintln(a.out, "  q  Quit")

	switch a.prompt("Choice") {
	case "1":
		a.dashboardScreen()
	case "2":
		a.documentForm(a.invoice, "Invoice")
	case "3":
		a.documentForm(a.creditNote, "Credit note")
	case "4":
		a.customersForm()
	case "5":
		a.suppliersForm()
	case "6":
		a.ledgerForm()
	case "7":
		a.vatForm()
	case "8":
		a.fxForm()
	case "9":
		a.newCompanyForm()
	case "0":
		a.logout()
	case "q":
		a.done = true
	}
}

func (a *shellApp) logout() {
	st := a.session.State()
	if st.User != nil {
		a.record("logout", "session closed", "")
		a.log.Info().Str("username", st.User.Username).Msg("signed out")
	}
	a.session.Logout()
	fmt.Fprintln(a.out, "Signed out.")
}

// record appends to the activity log; failures are logged, not fatal.
func (a *shellApp) record(action, details, ref string) {
	st := a.session.State()
	username := ""
	if st.User != nil {
		username = st.User.Username
	}
	err := activity.Append(a.cfg.Data.Dir, []activity.Entry{{
		Timestamp: time.Now(),
		User:      username,
		Action:    action,
		Details:   details,
		Ref:       ref,
	}})
	if err != nil {
		a.log.Warn().Err(err).Msg("writing activity log")
	}
}

func (a *shellApp) dashboardScreen() {
	stats := dashboard.Compute(a.invoice.Totals(), a.creditNote.Totals(), a.suppliers.Balances())

	fmt.Fprintln(a.out, "Dashboard")
	fmt.Fprintf(a.out, "  Total Revenue:  %s\n", stats.TotalRevenue.StringFixed(2))
	fmt.Fprintf(a.out, "  Total Expenses: %s\n", stats.TotalExpenses.StringFixed(2))
	fmt.Fprintf(a.out, "  Profit:         %s\n", stats.Profit.StringFixed(2))
	fmt.Fprintf(a.out, "  VAT Due:        %s\n", stats.VATDue.StringFixed(2))

	entries, err := activity.Read(a.cfg.Data.Dir)
	if err != nil {
		a.log.Warn().Err(err).Msg("reading activity log")
		return
	}
	recent := activity.Recent(entries, 5)
	if len(recent) == 0 {
		return
	}
	fmt.Fprintln(a.out, "Recent activity:")
	for _, e := range recent {
		fmt.Fprintf(a.out, "  %s  %-10s %s %s\n", e.Timestamp.Format("2006-01-02 15:04"), e.User, e.Action, e.Details)
	}
}

func (a *shellApp) documentForm(draft *document.Draft, label string) {
	for !a.done {
		a.renderLines(draft, label)
		fmt.Fprintln(a.out, "a add | r remove | c customer | v vat | x amount | d description | t date | g generate | u update | e export | i import | k clear | b back")

		switch a.prompt("Action") {
		case "a":
			draft.AddLine()
		case "r":
			i, ok := a.promptLine(draft)
			if ok && !draft.RemoveLine(i) {
				fmt.Fprintln(a.out, "A document must keep at least one line")
			}
		case "c":
			if i, ok := a.promptLine(draft); ok {
				code := a.prompt("Customer code")
				draft.Lines[i] = document.ApplyCustomer(draft.Lines[i], code, a.customers)
			}
		case "v":
			if i, ok := a.promptLine(draft); ok {
				code := a.prompt("VAT code")
				draft.Lines[i] = document.ApplyVATCode(draft.Lines[i], code, a.vatCodes)
			}
		case "x":
			if i, ok := a.promptLine(draft); ok {
				amount, err := decimal.NewFromString(a.prompt("Exclusive amount"))
				if err != nil {
					fmt.Fprintln(a.out, "Invalid amount")
					continue
				}
				draft.Lines[i] = document.ApplyExclusive(draft.Lines[i], amount, a.vatCodes)
			}
		case "d":
			if i, ok := a.promptLine(draft); ok {
				line, err := document.UpdateField(draft.Lines[i], document.FieldDescription, a.prompt("Description"))
				if err != nil {
					fmt.Fprintln(a.out, err.Error())
					continue
				}
				draft.Lines[i] = line
			}
		case "t":
			if i, ok := a.promptLine(draft); ok {
				line, err := document.UpdateField(draft.Lines[i], document.FieldDate, a.prompt("Date (YYYY-MM-DD)"))
				if err != nil {
					fmt.Fprintln(a.out, "Invalid date")
					continue
				}
				draft.Lines[i] = line
			}
		case "g":
			if i, ok := a.promptLine(draft); ok {
				a.generateLine(draft, i, label)
			}
		case "u":
			if err := document.ValidateLines(draft.Lines); err != nil {
				fmt.Fprintln(a.out, err.Error())
				continue
			}
			fmt.Fprintf(a.out, "%s updated successfully\n", label)
			a.record("document-updated", label, "")
		case "e":
			path := a.prompt("Export file")
			if err := document.Export(path, draft.Lines); err != nil {
				fmt.Fprintln(a.out, err.Error())
				continue
			}
			fmt.Fprintf(a.out, "Exported %d line(s)\n", len(draft.Lines))
		case "i":
			path := a.prompt("Import file")
			lines, err := document.Import(path)
			if err != nil {
				fmt.Fprintln(a.out, err.Error())
				continue
			}
			if len(lines) > 0 {
				draft.Lines = lines
			}
			fmt.Fprintf(a.out, "Imported %d line(s)\n", len(lines))
		case "k":
			if a.prompt("Clear all lines? (y/n)") == "y" {
				draft.Clear()
			}
		case "b":
			return
		}
	}
}

func (a *shellApp) renderLines(draft *document.Draft, label string) {
	fmt.Fprintf(a.out, "\n%s lines:\n", label)
	for i, l := range draft.Lines {
		fmt.Fprintf(a.out, "  %d. %s %s cust=%s %q vat=%s excl=%s vat=%s total=%s\n",
			i+1, l.Date.Format("2006-01-02"), l.Number, l.CustomerCode, l.Description,
			l.VATCode, l.Exclusive.StringFixed(2), l.VAT.StringFixed(2), l.Total.StringFixed(2))
	}
	totals := draft.Totals()
	fmt.Fprintf(a.out, "  Total Exclusive: %s  Total VAT: %s  Grand Total: %s\n",
		totals.Exclusive.StringFixed(2), totals.VAT.StringFixed(2), totals.Total.StringFixed(2))
}

// promptLine asks for a 1-based line number and returns a 0-based
// index.
func (a *shellApp) promptLine(draft *document.Draft) (int, bool) {
	n, err := strconv.Atoi(a.prompt("Line"))
	if err != nil || n < 1 || n > len(draft.Lines) {
		fmt.Fprintln(a.out, "No such line")
		return 0, false
	}
	return n - 1, true
}

func (a *shellApp) generateLine(draft *document.Draft, i int, label string) {
	line := draft.Lines[i]
	if err := document.ValidateLine(line); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	single := &document.Draft{Kind: draft.Kind, Lines: []model.LineItem{line}}
	doc, err := single.Commit(time.Now())
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	if !draft.RemoveLine(i) {
		draft.Clear()
	}

	a.documents = append(a.documents, doc)
	fmt.Fprintf(a.out, "%s generated for %s - %s\n", label, line.CustomerName, line.Description)
	a.record("document-generated", fmt.Sprintf("%s - %s", line.CustomerName, line.Description), doc.Number)
}

func (a *shellApp) customersForm() {
	for !a.done {
		fmt.Fprintln(a.out, "\nCustomers:")
		for _, c := range a.customers.All() {
			fmt.Fprintf(a.out, "  %-8s %-28s %-10s acct=%s bal=%s\n", c.Code, c.Name, c.VATNo, c.AccountCode, c.Balance.StringFixed(2))
		}

		switch a.prompt("a add | x delete | b back") {
		case "a":
			p := customers.Params{
				Code:        a.prompt("Code"),
				Name:        a.prompt("Name"),
				Category:    a.prompt("Category"),
				BRN:         a.prompt("BRN"),
				VATNo:       a.prompt("VAT no"),
				Address:     a.prompt("Address"),
				Contact:     a.prompt("Contact"),
				Currency:    a.prompt("Currency"),
				AccountCode: a.prompt("Account code"),
			}
			balance, err := decimal.NewFromString(a.prompt("Opening balance"))
			if err == nil {
				p.Balance = balance
			}
			c, err := a.customers.Create(p)
			if err != nil {
				fmt.Fprintln(a.out, err.Error())
				continue
			}
			a.record("customer-created", c.Name, c.Code)
		case "x":
			if !a.customers.Delete(a.prompt("Code")) {
				fmt.Fprintln(a.out, "Customer not found")
			}
		case "b":
			return
		}
	}
}

func (a *shellApp) suppliersForm() {
	for !a.done {
		fmt.Fprintln(a.out, "\nSuppliers:")
		for _, s := range a.suppliers.All() {
			fmt.Fprintf(a.out, "  %-8s %-28s %-10s acct=%s bal=%s\n", s.Code, s.Name, s.VATNo, s.AccountCode, s.Balance.StringFixed(2))
		}

		switch a.prompt("a add | x delete | b back") {
		case "a":
			p := suppliers.Params{
				Code:        a.prompt("Code"),
				Name:        a.prompt("Name"),
				Category:    a.prompt("Category"),
				BRN:         a.prompt("BRN"),
				VATNo:       a.prompt("VAT no"),
				Address:     a.prompt("Address"),
				Contact:     a.prompt("Contact"),
				Currency:    a.prompt("Currency"),
				AccountCode: a.prompt("Account code"),
			}
			balance, err := decimal.NewFromString(a.prompt("Opening balance"))
			if err == nil {
				p.Balance = balance
			}
			s, err := a.suppliers.Create(p)
			if err != nil {
				fmt.Fprintln(a.out, err.Error())
				continue
			}
			a.record("supplier-created", s.Name, s.Code)
		case "x":
			if !a.suppliers.Delete(a.prompt("Code")) {
				fmt.Fprintln(a.out, "Supplier not found")
			}
		case "b":
			return
		}
	}
}

func (a *shellApp) ledgerForm() {
	for !a.done {
		fmt.Fprintln(a.out, "\nGeneral ledger:")
		for _, acct := range a.ledger.All() {
			fmt.Fprintf(a.out, "  %-6s %-28s %-10s %s\n", acct.Code, acct.Name, acct.Type, acct.Group)
		}

		switch a.prompt("a add | x delete | b back") {
		case "a":
			p := ledger.Params{
				Code:  a.prompt("Account code"),
				Name:  a.prompt("Account name"),
				Type:  model.AccountType(a.prompt("Type (Asset/Liability/Equity/Revenue/Expense)")),
				Group: model.GroupType(a.prompt("Group")),
			}
			acct, err := a.ledger.Create(p)
			if err != nil {
				fmt.Fprintln(a.out, err.Error())
				continue
			}
			a.record("account-created", acct.Name, acct.Code)
		case "x":
			if !a.ledger.Delete(a.prompt("Account code")) {
				fmt.Fprintln(a.out, "Account not found")
			}
		case "b":
			return
		}
	}
}

func (a *shellApp) vatForm() {
	for !a.done {
		fmt.Fprintln(a.out, "\nVAT codes:")
		for _, c := range a.vatCodes.All() {
			fmt.Fprintf(a.out, "  %-6s %-18s %6s%%  %s\n", c.Code, c.Name, c.Percentage.StringFixed(2), c.Period)
		}

		switch a.prompt("a add | x delete | b back") {
		case "a":
			p := vat.Params{
				VATID:  a.prompt("VAT id"),
				Code:   a.prompt("Code"),
				Name:   a.prompt("Name"),
				Period: model.ReportPeriod(a.prompt("Report period (Monthly/Quarterly)")),
			}
			pct, err := decimal.NewFromString(a.prompt("Percentage"))
			if err != nil {
				fmt.Fprintln(a.out, "Invalid percentage")
				continue
			}
			p.Percentage = pct
			c, err := a.vatCodes.Create(p)
			if err != nil {
				fmt.Fprintln(a.out, err.Error())
				continue
			}
			a.record("vat-code-created", c.Name, c.Code)
		case "x":
			if !a.vatCodes.Delete(a.prompt("Code")) {
				fmt.Fprintln(a.out, "VAT code not found")
			}
		case "b":
			return
		}
	}
}

func (a *shellApp) fxForm() {
	for !a.done {
		fmt.Fprintln(a.out, "\nExchange rates:")
		for _, r := range a.rates.All() {
			monthly := "spot"
			if r.Monthly {
				monthly = "monthly"
			}
			fmt.Fprintf(a.out, "  %-4s %-24s %2s %s (%s, %s)\n", r.Code, r.Name, r.Symbol, r.DisplayRate(), monthly, r.Date.Format("2006-01-02"))
		}

		switch a.prompt("a add/update | x delete | b back") {
		case "a":
			p := fx.Params{
				CurrencyID: a.prompt("Currency id"),
				Code:       a.prompt("Code"),
				Name:       a.prompt("Name"),
				Symbol:     a.prompt("Symbol"),
				Monthly:    a.prompt("Monthly rate? (y/n)") == "y",
			}
			date, err := time.Parse("2006-01-02", a.prompt("Date (YYYY-MM-DD)"))
			if err != nil {
				fmt.Fprintln(a.out, "Invalid date")
				continue
			}
			p.Date = date
			rate, err := decimal.NewFromString(a.prompt("Rate to home currency"))
			if err != nil {
				fmt.Fprintln(a.out, "Invalid rate")
				continue
			}
			p.RateToHome = rate
			r, err := a.rates.Upsert(p)
			if err != nil {
				fmt.Fprintln(a.out, err.Error())
				continue
			}
			a.record("exchange-rate-saved", r.Name, r.Code)
		case "x":
			if !a.rates.Delete(a.prompt("Code")) {
				fmt.Fprintln(a.out, "Currency not found")
			}
		case "b":
			return
		}
	}
}

func (a *shellApp) newCompanyForm() {
	p := companies.ProfileParams{
		FileNumber:        a.prompt("Company file number"),
		Name:              a.prompt("Company name"),
		RegisteredAddress: a.prompt("Registered address"),
		BRN:               a.prompt("BRN"),
		VATNumber:         a.prompt("VAT number"),
		Telephone:         a.prompt("Telephone"),
		BusinessNature:    a.prompt("Business nature"),
		YearEnded:         a.prompt("Year ended"),
		MultiCurrency:     a.prompt("Multi-currency? (y/n)") == "y",
		Directors:         a.prompt("Directors"),
	}
	if a.done {
		return
	}

	profile, err := a.companies.Register(p)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintf(a.out, "Company %s registered (selectable as %s)\n", profile.Name, profile.FileNumber)
	a.record("company-registered", profile.Name, profile.FileNumber)
}
