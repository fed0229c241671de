package migrations

import "github.com/BurntSushi/migration"

func AddAdminToRemoteRepositories(tx migration.LimitedTx) error {
	_, err := tx.Exec(`
    ALTER TABLE remote_repositories
    ADD COLUMN admin bool NOT NULL DEFAULT false
	`)
	return err
}
