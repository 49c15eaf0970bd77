package cli

import (
	"context"
	"fmt"
	"os"
)

// Insights fetches and prints the AI spending insights.
func (a *App) Insights(ctx context.Context) error {
	insights, err := a.ai.Insights(ctx)
	if err != nil {
		a.reportErr(err, "Could not load insights")
		return err
	}

	if len(insights.Insights) == 0 {
		printlnFn("No insights yet.")
		return nil
	}
	for _, line := range insights.Insights {
		printlnFn("* " + line)
	}
	return nil
}

// Chat sends one message to the assistant and prints the reply.
func (a *App) Chat(ctx context.Context) error {
	message, err := GetMultiline(a.reader, "Your message:", os.Stdout)
	if err != nil {
		return err
	}
	if message == "" {
		return nil
	}

	reply, err := a.ai.Chat(ctx, message)
	if err != nil {
		a.reportErr(err, "Assistant is unavailable")
		return err
	}

	printlnFn(reply.Response)
	return nil
}

// ParseTranscript turns a pasted voice transcript into a draft expense and
// offers to save it.
func (a *App) ParseTranscript(ctx context.Context) error {
	transcript, err := GetMultiline(a.reader, "Paste transcript:", os.Stdout)
	if err != nil {
		return err
	}
	if transcript == "" {
		return nil
	}

	parsed, err := a.ai.ParseTranscript(ctx, transcript)
	if err != nil {
		a.reportErr(err, "Could not parse transcript")
		return err
	}

	printlnFn(fmt.Sprintf("Parsed: %s for %s (%s)",
		parsed.Amount.StringFixed(2), parsed.Description, parsed.CategoryName))

	answer, err := getSimpleText(a.reader, "Save as expense? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "yes" {
		return nil
	}

	created, err := a.expenses.Create(ctx, parsed.ToExpenseCreate())
	if err != nil {
		a.reportErr(err, "Could not save expense")
		return err
	}

	a.bus.Success(fmt.Sprintf("Expense #%d saved", created.ID))
	return nil
}
