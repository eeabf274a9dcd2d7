package workflow

import "github.com/hashicorp/go-multierror"

func appendError(result error, err error) error {
	return multierror.Append(result, err).ErrorOrNil()
}
