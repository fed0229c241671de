package db

import "time"

const ProviderGitHub = "github"

type Model struct {
	ID        uint `gorm:"primary_key"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type User struct {
	Model

	Username string `gorm:"unique_index"`
}

type Account struct {
	Model

	Provider string
	Login    string
	Token    string

	User   User
	UserID uint
}

type RemoteRepository struct {
	Model

	FullName    string
	Name        string
	Description string
	SSHURL      string `gorm:"column:ssh_url"`
	HTMLURL     string `gorm:"column:html_url"`
	CloneURL    string `gorm:"column:clone_url"`
	AvatarURL   string `gorm:"column:avatar_url"`
	Private     bool
	Admin       bool
	VCS         string `gorm:"column:vcs"`
	RawJSON     []byte `gorm:"column:raw_json"`

	Account   Account
	AccountID uint

	Organization   *RemoteOrganization
	OrganizationID *uint

	Users []User `gorm:"many2many:remote_repository_users"`
}

type RemoteOrganization struct {
	Model

	Slug      string
	Name      string
	Email     string
	AvatarURL string `gorm:"column:avatar_url"`
	HTMLURL   string `gorm:"column:html_url"`
	RawJSON   []byte `gorm:"column:raw_json"`

	Account   Account
	AccountID uint

	Users []User `gorm:"many2many:remote_organization_users"`
}

type Project struct {
	Model

	Slug    string `gorm:"unique_index"`
	RepoURL string `gorm:"column:repo_url"`

	Users []User `gorm:"many2many:project_users"`
}
