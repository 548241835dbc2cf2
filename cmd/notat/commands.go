package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/staffline/notat/pkg/config"
	"github.com/staffline/notat/pkg/notation"
	"github.com/staffline/notat/pkg/notes"
	"github.com/staffline/notat/pkg/streamfactory"
	"github.com/staffline/notat/pkg/ui/styles"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered stream types",
		Long: `List shows every type name registered with the default factory and
whether its descriptor has been materialized yet. Listing never triggers
resolution.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			factory := streamfactory.Default()

			fmt.Println(styles.GetStyle("Header").Render("Registered stream types"))
			for _, name := range factory.Names() {
				state := styles.GetStyle("Pending").Render("pending")
				if factory.Resolved(name) {
					state = styles.GetStyle("Resolved").Render("resolved")
				}
				fmt.Printf("  %s  %s\n", styles.GetStyle("TypeName").Render(name), state)
			}
			return nil
		},
	}
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <name>",
		Short: "Resolve a stream type and show its descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			desc, err := streamfactory.Type(name)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n", styles.GetStyle("TypeName").Render(desc.Name),
				styles.GetStyle("Success").Render("resolved"))
			fmt.Printf("  go type: %s\n", desc.GoType)
			return nil
		},
	}
}

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Construct an instance of a registered stream type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := streamfactory.NewContainer(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("built %s\n", styles.GetStyle("TypeName").Render(args[0]))
			fmt.Printf("  classes:  %v\n", c.Classes())
			fmt.Printf("  elements: %d\n", c.Len())
			return nil
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build a small score through the factory and print it",
		Long: `Demo assembles a one-measure score using only symbolic type names: the
note layer never imports the container types directly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			measure, err := notes.WrapIn("Measure",
				notes.NewNote("C4", 1.0),
				notes.NewNote("E4", 1.0),
				notes.NewNote("G4", 1.0),
				notes.NewChord([]string{"C4", "E4", "G4"}, 1.0),
			)
			if err != nil {
				return err
			}

			part, err := notes.WrapIn("Part", measure)
			if err != nil {
				return err
			}

			score, err := notes.WrapIn("Score", part)
			if err != nil {
				return err
			}

			fmt.Println(styles.GetStyle("Header").Render("Demo score"))
			printContainer(score, 1)
			return nil
		},
	}
}

func printContainer(c notation.Container, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Printf("%s%s (%d elements)\n", indent,
		styles.GetStyle("TypeName").Render(c.Classes()[0]), c.Len())

	for _, el := range c.Elements() {
		if child, ok := el.(notation.Container); ok {
			printContainer(child, depth+1)
			continue
		}
		fmt.Printf("%s  %s at %.2g (%.2g ql)\n", indent,
			el.Classes()[0], el.Offset(), el.QuarterLength())
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: "Print the default configuration file",
		Long: `Genconfig prints the built-in defaults. Redirect the output to
` + config.UserConfigPath() + ` to start a user configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(config.GetDefaultConfigContent())
			return nil
		},
	}
}
