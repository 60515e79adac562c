package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"xymworkout/internal/adapters/email"
)

// EmailBackupInput carries input for the email-backup orchestrator.
type EmailBackupInput struct {
	To  string
	Now time.Time // optional: if zero, time.Now() is used
}

// EmailBackupDeps holds dependencies for EmailBackup.
type EmailBackupDeps struct {
	LedgerStore ImportExportStore
	Sender      email.Sender
	From        string
	ReplyTo     string
}

// ExecuteEmailBackup exports the ledger and mails it as a JSON attachment,
// so a backup can leave the device without a file download.
// PRE: To is a valid recipient address
// POST: Returns ErrNoData when nothing has ever been saved
func ExecuteEmailBackup(ctx context.Context, input EmailBackupInput, deps EmailBackupDeps) error {
	if input.To == "" {
		return errors.New("recipient address is required")
	}

	export, err := ExecuteExportData(ctx, ExportDataInput{Now: input.Now}, ImportExportDeps{LedgerStore: deps.LedgerStore})
	if err != nil {
		return err
	}

	result, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{input.To},
		From:    deps.From,
		ReplyTo: deps.ReplyTo,
		Subject: "Your workout data backup",
		HTML: "<p>Attached is your workout data backup (" + export.Filename + ").</p>" +
			"<p>Import it from the Data Management section to restore.</p>",
		Attachments: []email.Attachment{
			{Filename: export.Filename, Content: []byte(export.Data)},
		},
	})
	if err != nil {
		return err
	}

	slog.Info("backup_emailed", "to", input.To, "filename", export.Filename, "message_id", result.MessageID)
	return nil
}
