package migrations

import "github.com/BurntSushi/migration"

func InitialSchema(tx migration.LimitedTx) error {
	_, err := tx.Exec(`
    CREATE TABLE users (
      id int PRIMARY KEY AUTO_INCREMENT,
      created_at datetime NOT NULL,
      updated_at datetime NOT NULL,
      username varchar(255) NOT NULL,
      UNIQUE KEY uix_users_username (username)
    )
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
    CREATE TABLE accounts (
      id int PRIMARY KEY AUTO_INCREMENT,
      created_at datetime NOT NULL,
      updated_at datetime NOT NULL,
      provider varchar(32) NOT NULL,
      login varchar(255) NOT NULL,
      token text,
      user_id int NOT NULL
    )
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
    CREATE TABLE remote_organizations (
      id int PRIMARY KEY AUTO_INCREMENT,
      created_at datetime NOT NULL,
      updated_at datetime NOT NULL,
      slug varchar(255) NOT NULL,
      name varchar(255),
      email varchar(255),
      avatar_url text,
      html_url text,
      raw_json mediumtext,
      account_id int NOT NULL
    )
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
    CREATE TABLE remote_repositories (
      id int PRIMARY KEY AUTO_INCREMENT,
      created_at datetime NOT NULL,
      updated_at datetime NOT NULL,
      full_name varchar(255) NOT NULL,
      name varchar(255),
      description text,
      ssh_url text,
      html_url text,
      clone_url text,
      avatar_url text,
      private bool NOT NULL DEFAULT false,
      vcs varchar(32),
      raw_json mediumtext,
      account_id int NOT NULL,
      organization_id int
    )
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
    CREATE TABLE remote_repository_users (
      remote_repository_id int NOT NULL,
      user_id int NOT NULL,
      PRIMARY KEY (remote_repository_id, user_id)
    )
	`)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
    CREATE TABLE remote_organization_users (
      remote_organization_id int NOT NULL,
      user_id int NOT NULL,
      PRIMARY KEY (remote_organization_id, user_id)
    )
	`)
	return err
}
