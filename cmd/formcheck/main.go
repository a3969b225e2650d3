// Command formcheck validates a form snapshot file against one of the
// dashboard form rule sets and prints the result as JSON.
//
//	formcheck forms
//	formcheck validate --form beneficiary --file data.yaml --lang en
//
// The exit status is non-zero when the form is invalid. Numeric values are
// validated as written, so unquoted ids keep their leading zeros.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/t4thdd/aid-efrh/pkg/validator"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, validator.ErrValidationFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
