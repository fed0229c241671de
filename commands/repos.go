package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
)

type ReposCommand struct {
	User string `short:"u" long:"user" description:"platform username to list repositories for" value-name:"USERNAME" required:"true"`
}

func (command *ReposCommand) Execute(args []string) error {
	client := Dewey.client()

	repositories, err := client.UserRepositories(Dewey.logger(), command.User)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Repository", "Organization", "Private", "Admin", "Clone URL"})

	for _, repository := range repositories {
		table.Append([]string{
			repository.FullName,
			repository.Organization,
			boolCell(repository.Private),
			boolCell(repository.Admin),
			repository.CloneURL,
		})
	}

	table.Render()

	return nil
}

func boolCell(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
