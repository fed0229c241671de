package migrations

import "github.com/BurntSushi/migration"

func AddProjects(tx migration.LimitedTx) error {
	_, err := tx.Exec(`
    CREATE TABLE projects (
      id int PRIMARY KEY AUTO_INCREMENT,
      created_at datetime NOT NULL,
      updated_at datetime NOT NULL,
      slug varchar(255) NOT NULL,
      repo_url text,
      UNIQUE KEY uix_projects_slug (slug)
    )
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
    CREATE TABLE project_users (
      project_id int NOT NULL,
      user_id int NOT NULL,
      PRIMARY KEY (project_id, user_id)
    )
	`)
	return err
}
