package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/carlot/internal/listing"
	"github.com/five82/carlot/internal/purchase"
)

// Modal is the interface for modal dialogs. Update returns the updated
// modal, a command, and whether the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// receiptModal acknowledges a "Buy Now" request.
type receiptModal struct {
	receipt purchase.Receipt
}

func newReceiptModal(r purchase.Receipt) receiptModal {
	return receiptModal{receipt: r}
}

func (r receiptModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil, false
	}
	if key.Matches(keyMsg, keys.Escape) || key.Matches(keyMsg, keys.Confirm) {
		return r, nil, true
	}
	return r, nil, false
}

func (r receiptModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Buy Now"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 36)))
	b.WriteString("\n\n")
	b.WriteString(styles.SuccessText.Render(r.receipt.Message))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Request: "))
	b.WriteString(styles.FaintText.Render(r.receipt.RequestID))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("Enter/Esc: Close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(56)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}

func buyCmd(ctx context.Context, buyer purchase.Buyer, rec listing.CarRecord) tea.Cmd {
	return func() tea.Msg {
		receipt, err := buyer.Buy(ctx, rec)
		return buyResultMsg{receipt: receipt, err: err}
	}
}
