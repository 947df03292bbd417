package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/picklist/pkg/timeutil"
)

// SinceOptions
type SinceOptions struct {
	Since string
}

func AddSinceArgs(cmd *cobra.Command, o *SinceOptions) {
	cmd.Flags().StringVar(&o.Since, "since", "",
		`Only lists updated within this window, such as "3d" or "1w2d".`)
}

// Window parses Since, returning zero when it is unset.
func (o *SinceOptions) Window() (time.Duration, error) {
	return timeutil.ParseWindow(o.Since)
}
