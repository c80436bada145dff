// crm is the demo CRM dashboard CLI: the presentation collaborator
// over the in-memory data layer.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}
