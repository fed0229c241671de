package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
)

type OrgsCommand struct {
	User string `short:"u" long:"user" description:"platform username to list organizations for" value-name:"USERNAME" required:"true"`
}

func (command *OrgsCommand) Execute(args []string) error {
	client := Dewey.client()

	organizations, err := client.UserOrganizations(Dewey.logger(), command.User)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Organization", "Name", "Email"})

	for _, organization := range organizations {
		table.Append([]string{
			organization.Slug,
			organization.Name,
			organization.Email,
		})
	}

	table.Render()

	return nil
}
