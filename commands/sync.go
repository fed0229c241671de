package commands

import (
	"fmt"
)

type SyncCommand struct {
	User string `short:"u" long:"user" description:"platform username to sync" value-name:"USERNAME" required:"true"`
}

func (command *SyncCommand) Execute(args []string) error {
	client := Dewey.client()

	result, err := client.SyncUser(Dewey.logger(), command.User)
	if err != nil {
		fmt.Printf("%s could not sync %s: %s\n", red("[FAILED]"), command.User, err)
		return err
	}

	fmt.Printf("%s synced %s\n", green("[OK]"), result.User)

	return nil
}
