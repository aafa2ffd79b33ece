package cli

import "github.com/tonylang/confval/print"

// colorOption turns the --color flag's three-way string into a
// print.Option. "auto" passes no override and lets print.Print fall
// back to its own isatty detection.
func (f *globalFlags) colorOption() []print.Option {
	switch f.color {
	case "always":
		return []print.Option{print.WithColor(true)}
	case "never":
		return []print.Option{print.WithColor(false)}
	default:
		return nil
	}
}
