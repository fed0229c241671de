package commands

import (
	"fmt"
)

type WebhookCommand struct {
	Project string `short:"p" long:"project" description:"project slug to install the hook for" value-name:"SLUG" required:"true"`
}

func (command *WebhookCommand) Execute(args []string) error {
	client := Dewey.client()

	outcome, err := client.SetupWebhook(Dewey.logger(), command.Project)
	if err != nil {
		fmt.Printf("%s could not set up webhook for %s: %s\n", red("[FAILED]"), command.Project, err)
		return err
	}

	switch outcome {
	case "created":
		fmt.Printf("%s webhook created for %s\n", green("[OK]"), command.Project)
	case "rejected":
		fmt.Printf("%s webhook already present on %s\n", yellow("[SKIP]"), command.Project)
	default:
		fmt.Printf("%s webhook setup for %s: %s\n", yellow("[?]"), command.Project, outcome)
	}

	return nil
}
