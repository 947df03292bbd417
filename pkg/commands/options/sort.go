package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/picklist/pkg/sorted"
)

// SortFlag is a pflag.Value holding an optional sort order.
type SortFlag struct {
	Order sorted.SortOrder
	IsSet bool
}

var _ pflag.Value = (*SortFlag)(nil)

func (f *SortFlag) String() string {
	if !f.IsSet {
		return ""
	}
	return f.Order.String()
}

func (f *SortFlag) Set(s string) error {
	order, err := sorted.ParseSortOrder(s)
	if err != nil {
		return err
	}
	f.Order = order
	f.IsSet = true
	return nil
}

func (f *SortFlag) Type() string {
	return "key:dir"
}

// SortOptions
type SortOptions struct {
	Sort SortFlag
}

func AddSortArgs(cmd *cobra.Command, o *SortOptions) {
	cmd.Flags().Var(&o.Sort, "sort",
		`Sort order such as "name", "size:desc" or "-timestamp". Defaults to the configured sort.`)
}
