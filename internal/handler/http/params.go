package http

import "fmt"

func errInvalidDateParam(name string) error {
	return fmt.Errorf("query parameter %q must be YYYY-MM-DD", name)
}
