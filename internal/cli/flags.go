package cli

import (
	"github.com/alexanderramin/crewplan/internal/app"
	"github.com/spf13/pflag"
)

// dateFlag is a flag that only accepts ISO-8601 dates or timestamps. The
// raw text is kept so the service parses it the same way it parses
// payload files.
type dateFlag struct {
	name  string
	value string
}

var _ pflag.Value = (*dateFlag)(nil)

func newDateFlag(name string) *dateFlag {
	return &dateFlag{name: name}
}

func (f *dateFlag) String() string { return f.value }

func (f *dateFlag) Set(s string) error {
	if _, err := app.ParseTimestamp(f.name, s); err != nil {
		return err
	}
	f.value = s
	return nil
}

func (f *dateFlag) Type() string { return "date" }

// addDateFlag registers a date flag on fs and returns it.
func addDateFlag(fs *pflag.FlagSet, name, usage string) *dateFlag {
	f := newDateFlag(name)
	fs.Var(f, name, usage)
	return f
}
