package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/pathfinder/internal/domain"
	"github.com/spf13/pflag"
)

// classFlag is a --class value restricted to the known group classes.
type classFlag struct {
	class domain.GroupClass
}

var _ pflag.Value = (*classFlag)(nil)

func (f *classFlag) String() string { return string(f.class) }

func (f *classFlag) Type() string { return "class" }

func (f *classFlag) Set(s string) error {
	v := strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidGroupClasses[v] {
		return fmt.Errorf("unknown class %q (valid: %s)", s, strings.Join(validClassNames(), ", "))
	}
	f.class = domain.GroupClass(v)
	return nil
}

func validClassNames() []string {
	names := make([]string, 0, len(domain.ValidGroupClasses))
	for name := range domain.ValidGroupClasses {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
