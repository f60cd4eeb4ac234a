package export

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/FranksOps/prospect/internal/lead"
)

// ensure SQLite implements Exporter
var _ Exporter = SQLite{}

// SQLite writes the lead table into a standalone database file, one row per
// lead. The file is a run artifact like the other formats, not a cross-run
// store.
type SQLite struct{}

// Ext implements Exporter.
func (SQLite) Ext() string { return "db" }

const schema = `
CREATE TABLE IF NOT EXISTS leads (
	company TEXT NOT NULL,
	website TEXT NOT NULL,
	domain TEXT NOT NULL,
	email TEXT,
	email_status TEXT,
	email_score INTEGER,
	phone TEXT,
	company_size TEXT,
	technology_stack TEXT,
	linkedin TEXT,
	twitter TEXT,
	facebook TEXT,
	key_contact TEXT,
	buying_signals TEXT,
	lead_score INTEGER NOT NULL,
	lead_analysis TEXT,
	email_variations TEXT,
	follow_up_sequence TEXT,
	multi_channel_outreach TEXT,
	meeting_link TEXT,
	generated_date TEXT NOT NULL
);
`

const insertLead = `
INSERT INTO leads (
	company, website, domain, email, email_status, email_score, phone,
	company_size, technology_stack, linkedin, twitter, facebook, key_contact,
	buying_signals, lead_score, lead_analysis, email_variations,
	follow_up_sequence, multi_channel_outreach, meeting_link, generated_date
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Export implements Exporter.
func (SQLite) Export(ctx context.Context, path string, leads []*lead.Lead) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, l := range leads {
		_, err := tx.ExecContext(ctx, insertLead,
			l.Company,
			l.Website,
			l.Domain,
			l.Email,
			l.EmailStatus,
			l.EmailScore,
			l.Phone,
			l.CompanySize,
			l.TechStack,
			l.LinkedIn,
			l.Twitter,
			l.Facebook,
			l.KeyContact,
			l.BuyingSignals,
			l.Score,
			l.Analysis,
			l.EmailVariations,
			l.FollowUps,
			l.MultiChannel,
			l.MeetingLink,
			l.GeneratedAt.Format(lead.GeneratedDateFormat),
		)
		if err != nil {
			return fmt.Errorf("failed to insert lead: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return db.Close()
}
