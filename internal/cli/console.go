package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	apierrors "atm-simulator/internal/errors"
	"atm-simulator/internal/models"
	"atm-simulator/internal/services"
	"atm-simulator/internal/validation"

	"github.com/shopspring/decimal"
)

var (
	ErrCardRetained    = errors.New("card retained: account is locked or card unusable")
	ErrSessionTimedOut = errors.New("session timed out")
	ErrNoInput         = errors.New("input closed before authentication")
)

const rule = "==============================================="

// StatementRenderer renders statement rows as markdown
type StatementRenderer interface {
	TransactionsMarkdown(rows []models.StatementTransaction) string
}

// Console drives one ATM session over a line oriented terminal
type Console struct {
	session    services.ATMServiceInterface
	statements StatementRenderer
	stats      *services.Statistics
	in         *bufio.Scanner
	out        io.Writer
	render     func(md string) string
}

type ConsoleOption func(*Console)

// WithStatistics prints the statistics report when the customer exits
func WithStatistics(stats *services.Statistics) ConsoleOption {
	return func(c *Console) {
		c.stats = stats
	}
}

// WithMarkdownRenderer replaces the terminal markdown renderer
func WithMarkdownRenderer(render func(md string) string) ConsoleOption {
	return func(c *Console) {
		c.render = render
	}
}

func NewConsole(session services.ATMServiceInterface, statements StatementRenderer, in io.Reader, out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		session:    session,
		statements: statements,
		in:         bufio.NewScanner(in),
		out:        out,
		render:     renderMarkdown,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run authenticates the customer and serves the main menu until they exit,
// input ends, the session times out or ctx is cancelled. The session is
// always ended or expired when Run returns.
func (c *Console) Run(ctx context.Context) error {
	c.banner()

	if err := c.login(); err != nil {
		c.session.EndSession()
		return err
	}
	c.session.ResetSessionTimeout()

	for {
		if err := ctx.Err(); err != nil {
			c.session.EndSession()
			return err
		}

		c.menu()
		choice, ok := c.prompt("Enter your choice (1-8): ")
		if !ok {
			c.goodbye()
			return nil
		}
		c.println()

		if c.session.IsSessionTimedOut() {
			c.session.ExpireSession()
			c.println("[X] " + apierrors.GetErrorMessage(apierrors.SessionTimedOut))
			return ErrSessionTimedOut
		}

		switch strings.TrimSpace(choice) {
		case "1":
			c.balance()
		case "2":
			c.deposit()
		case "3":
			c.withdraw()
		case "4":
			c.transfer()
		case "5":
			c.miniStatement()
		case "6":
			c.changePin()
		case "7":
			c.println(c.session.GenerateBalanceReceipt())
		case "8":
			c.goodbye()
			return nil
		default:
			c.println("[X] Invalid choice! Please select option 1-8.")
			c.println()
		}

		c.session.ResetSessionTimeout()
	}
}

func (c *Console) banner() {
	policy := c.session.Policy()
	c.println(rule)
	c.println()
	c.println("    WELCOME TO " + policy.BankName)
	c.println("          " + policy.BankTagline)
	c.println()
	c.println(rule)
	c.println()
}

func (c *Console) login() error {
	c.println(">>> AUTHENTICATION REQUIRED <<<")
	c.println()

	for {
		if code := apierrors.BlockedCode(c.session); code != "" {
			c.println("[X] " + apierrors.GetErrorMessage(code))
			c.println("Please contact your bank.")
			return ErrCardRetained
		}

		pin, ok := c.prompt("Enter your 4-digit PIN: ")
		if !ok {
			return ErrNoInput
		}

		if c.session.Authenticate(strings.TrimSpace(pin)) {
			c.println()
			c.println("[SUCCESS] PIN verified successfully!")
			c.println("Welcome, " + c.session.HolderName() + "!")
			c.println("Account Number: " + c.session.MaskedAccountNumber())
			c.println()
			return nil
		}

		if c.session.IsAccountFrozen() {
			c.println()
			c.println("[X] Maximum attempts exceeded! Card blocked for security.")
			c.println("Please contact your bank.")
			return ErrCardRetained
		}

		remaining := c.session.Policy().MaxFailedAttempts - c.session.FailedLoginAttempts()
		c.printf("[X] Incorrect PIN! You have %d attempt(s) remaining.\n\n", remaining)
	}
}

func (c *Console) menu() {
	c.println(rule)
	c.println("              ATM MAIN MENU")
	c.println(rule)
	c.println("  1. Check Balance")
	c.println("  2. Deposit Money")
	c.println("  3. Withdraw Money")
	c.println("  4. Transfer Money")
	c.println("  5. Mini Statement")
	c.println("  6. Change PIN")
	c.println("  7. Print Balance Receipt")
	c.println("  8. Exit")
	c.println(rule)
}

func (c *Console) balance() {
	c.section("BALANCE INQUIRY")
	c.printf("  Current Balance: %s\n", c.money(c.session.CheckBalance()))
	c.printf("  Daily withdrawal remaining: %s\n", c.money(c.session.RemainingDailyWithdrawalLimit()))
	c.println(rule)
	c.println()
}

func (c *Console) deposit() {
	c.section("CASH DEPOSIT")
	amount, ok := c.promptAmount("  Enter amount to deposit: ")
	if ok {
		if c.session.DepositMoney(amount) {
			c.println()
			c.println("  [SUCCESS] Amount deposited successfully!")
			c.printf("  Deposited Amount: %s\n", c.money(amount))
			c.printf("  Updated Balance: %s\n", c.money(c.session.CheckBalance()))
		} else {
			c.rejected(apierrors.Rejection{Operation: apierrors.OperationDeposit, Amount: amount})
		}
	}
	c.println(rule)
	c.println()
}

func (c *Console) withdraw() {
	c.section("CASH WITHDRAWAL")
	amount, ok := c.promptAmount("  Enter amount to withdraw: ")
	if ok {
		if c.session.WithdrawMoney(amount) {
			c.println()
			c.println("  [SUCCESS] Please collect your cash!")
			c.printf("  Withdrawn Amount: %s\n", c.money(amount))
			c.printf("  Remaining Balance: %s\n", c.money(c.session.CheckBalance()))
		} else {
			c.rejected(apierrors.Rejection{Operation: apierrors.OperationWithdraw, Amount: amount})
			if c.session.CheckBalance().LessThan(amount) {
				c.printf("  Your current balance: %s\n", c.money(c.session.CheckBalance()))
			}
		}
	}
	c.println(rule)
	c.println()
}

func (c *Console) transfer() {
	c.section("FUND TRANSFER")
	target, ok := c.prompt("  Enter target account number: ")
	if !ok {
		return
	}
	target = strings.TrimSpace(target)

	amount, ok := c.promptAmount("  Enter amount to transfer: ")
	if ok {
		fee := c.session.CalculateTransactionFee(models.TransactionTypeTransfer, amount)
		if c.session.TransferMoney(amount, target) {
			c.println()
			c.printf("  [SUCCESS] Transfer to %s successful!\n", models.MaskAccountNumber(target))
			c.printf("  Transferred Amount: %s\n", c.money(amount))
			if fee.IsPositive() {
				c.printf("  Transfer Fee (not charged): %s\n", c.money(fee))
			}
			c.printf("  Remaining Balance: %s\n", c.money(c.session.CheckBalance()))
		} else {
			c.rejected(apierrors.Rejection{Operation: apierrors.OperationTransfer, Amount: amount, Target: target})
		}
	}
	c.println(rule)
	c.println()
}

func (c *Console) miniStatement() {
	c.section("MINI STATEMENT")

	rows := c.session.Statement().Transactions
	if n := c.session.Policy().MiniStatementSize; n > 0 && len(rows) > n {
		rows = rows[len(rows)-n:]
	}
	c.println(c.render(c.statements.TransactionsMarkdown(rows)))
	c.printf("  Current Balance: %s\n", c.money(c.session.CheckBalance()))
	c.println(rule)
	c.println()
}

func (c *Console) changePin() {
	c.section("CHANGE PIN")
	oldPin, ok := c.prompt("  Enter current PIN: ")
	if !ok {
		return
	}
	newPin, ok := c.prompt("  Enter new 4-digit PIN: ")
	if !ok {
		return
	}
	oldPin, newPin = strings.TrimSpace(oldPin), strings.TrimSpace(newPin)

	if c.session.ChangePin(oldPin, newPin) {
		c.println()
		c.println("  [SUCCESS] PIN changed successfully!")
		if !validation.IsStrongPin(newPin) {
			c.println("  [!] Your new PIN is easy to guess. Consider choosing another one.")
		}
	} else {
		c.rejected(apierrors.Rejection{Operation: apierrors.OperationChangePin, NewPin: newPin})
	}
	c.println(rule)
	c.println()
}

func (c *Console) goodbye() {
	c.session.EndSession()

	c.println(rule)
	c.println()
	c.println("    Thank you for using " + c.session.Policy().BankName + "!")
	c.println("    Please collect your card.")
	c.println("    Have a great day!")
	c.println()
	c.println(rule)

	if c.stats != nil {
		c.println()
		c.println(c.stats.Report(c.session.Policy().Currency))
	}
}

func (c *Console) rejected(r apierrors.Rejection) {
	code := apierrors.ExplainRejection(c.session, r)
	c.println()
	c.println("  [X] Transaction failed!")
	c.println("  Reason: " + apierrors.GetErrorMessage(code) + ".")
}

func (c *Console) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		c.println()
		c.println("  [X] Invalid amount! Enter a number such as 1500 or 250.50.")
		return decimal.Zero, false
	}
	return amount, true
}

// prompt returns false once input is exhausted
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		c.println()
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) section(title string) {
	c.println(rule)
	c.println("           " + title)
	c.println(rule)
}

func (c *Console) money(amount decimal.Decimal) string {
	return services.FormatMoney(amount, c.session.Policy().Currency)
}

func (c *Console) println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}
