package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// dateFlag is a pflag.Value that validates ISO dates at parse time, so
// a typo fails before any request is built.
type dateFlag struct {
	s *string
}

var _ pflag.Value = dateFlag{}

func (d dateFlag) String() string {
	if d.s == nil {
		return ""
	}
	return *d.s
}

func (d dateFlag) Set(v string) error {
	if _, err := time.Parse("2006-01-02", v); err != nil {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", v)
	}
	*d.s = v
	return nil
}

func (d dateFlag) Type() string { return "date" }
