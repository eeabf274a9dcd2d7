package cli

import (
	"fmt"
	"log"
	"os"
)

var Stderr = log.New(os.Stderr, "", 0)
var Stdout = log.New(os.Stdout, "", 0)

func Exit(err error) {
	if err != nil {
		Stderr.Println(err)
		os.Exit(1)
	}
	os.Exit(0)
}

// AskForConfirmation prompts for a yes/no answer. Only a capital "Y" confirms; "n", "N", "no", "No"
// and "NO" decline, and anything else asks again. If skipConfirmation is true the prompt is skipped
// and true is returned.
func AskForConfirmation(prompt string, skipConfirmation bool) bool {
	if skipConfirmation {
		return true
	}
	for {
		Stdout.Printf("%s (please type Y or N): ", prompt)
		var response string
		_, err := fmt.Scanln(&response)
		if err != nil {
			Stdout.Printf("Error reading confirmation response: %s", err)
			return false
		}
		switch response {
		case "Y":
			return true
		case "n", "N", "no", "No", "NO":
			return false
		}
		prompt = "Please type (capital) Y for Yes or N for No and press enter"
	}
}
