package migrations

import "github.com/BurntSushi/migration"

func AddSyncIndexes(tx migration.LimitedTx) error {
	_, err := tx.Exec(`
    CREATE INDEX ix_remote_repositories_full_name
    ON remote_repositories (full_name, account_id)
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
    CREATE INDEX ix_remote_organizations_slug
    ON remote_organizations (slug, account_id)
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
    CREATE INDEX ix_accounts_provider_login
    ON accounts (provider, login)
	`)
	return err
}
